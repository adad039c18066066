package domain

// Guest lives in the relational store; its preferences live in the document
// store under the same id. Preferences is nil when none are attached.
type Guest struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Preferences *GuestPreferences `json:"preferences,omitempty"`
}

// GuestPreferences is keyed by the owning guest's id. The rules layer always
// overwrites GuestID with the authoritative guest id before persisting.
type GuestPreferences struct {
	GuestID                    string `json:"guestId"`
	PrefersSmokingRoom         bool   `json:"prefersSmokingRoom"`
	BedTypePreference          string `json:"bedTypePreference,omitempty"`
	NeedsAccessibilityFeatures bool   `json:"needsAccessibilityFeatures"`
}
