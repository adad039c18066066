package domain

// Hotel is identified by a client-supplied id. Name is required, address is
// optional.
type Hotel struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}
