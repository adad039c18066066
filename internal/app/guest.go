package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"stayhub/internal/domain"
)

// GuestRules owns the guest lifecycle and the dual-store consistency between
// the guest row (relational) and its preferences document. There is no
// cross-store transaction: writes go row-then-document, deletes go
// document-then-row, and a failure in the second step leaves a logged
// inconsistency window.
type GuestRules struct {
	guests   domain.GuestRepository
	prefs    domain.PreferencesStore
	bookings domain.BookingDirectory
}

func NewGuestRules(
	guests domain.GuestRepository,
	prefs domain.PreferencesStore,
	bookings domain.BookingDirectory,
) *GuestRules {
	return &GuestRules{guests: guests, prefs: prefs, bookings: bookings}
}

func (s *GuestRules) Create(ctx context.Context, g *domain.Guest) (domain.Guest, error) {
	if g == nil {
		return domain.Guest{}, domain.Missingf("guest must not be nil")
	}
	if err := requireNonBlank(g.ID, "guest id"); err != nil {
		return domain.Guest{}, err
	}
	if err := requireNonBlank(g.Name, "guest name"); err != nil {
		return domain.Guest{}, err
	}

	exists, err := s.guests.ExistsByID(ctx, g.ID)
	if err != nil {
		return domain.Guest{}, err
	}
	if exists {
		return domain.Guest{}, domain.Existsf("guest already exists: %s", g.ID)
	}

	return s.saveWithPreferences(ctx, *g)
}

// GetByID returns the guest joined with its preferences document, or
// (nil, nil) when the guest row does not exist.
func (s *GuestRules) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	if err := requireNonBlank(id, "guest id"); err != nil {
		return nil, err
	}
	g, err := s.guests.FindByID(ctx, id)
	if err != nil || g == nil {
		return nil, err
	}
	p, err := s.prefs.FindByGuestID(ctx, id)
	if err != nil {
		return nil, err
	}
	g.Preferences = p
	return g, nil
}

func (s *GuestRules) All(ctx context.Context) ([]domain.Guest, error) {
	guests, err := s.guests.FindAll(ctx)
	if err != nil || len(guests) == 0 {
		return guests, err
	}
	ids := make([]string, 0, len(guests))
	for _, g := range guests {
		ids = append(ids, g.ID)
	}
	byID, err := s.prefs.FindByGuestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range guests {
		if p, ok := byID[guests[i].ID]; ok {
			prefs := p
			guests[i].Preferences = &prefs
		}
	}
	return guests, nil
}

func (s *GuestRules) Update(ctx context.Context, id string, g *domain.Guest) (domain.Guest, error) {
	if err := requireNonBlank(id, "guest id"); err != nil {
		return domain.Guest{}, err
	}
	if g == nil {
		return domain.Guest{}, domain.Missingf("guest must not be nil")
	}
	if err := requireNonBlank(g.Name, "guest name"); err != nil {
		return domain.Guest{}, err
	}

	exists, err := s.guests.ExistsByID(ctx, id)
	if err != nil {
		return domain.Guest{}, err
	}
	if !exists {
		return domain.Guest{}, domain.NotFoundf("guest not found: %s", id)
	}

	upd := *g
	upd.ID = id
	return s.saveWithPreferences(ctx, upd)
}

// Delete removes the guest and its preferences document. A guest with
// bookings cannot be deleted; nothing is removed in that case. The
// preferences delete runs first so a failure never strands an orphaned
// document behind a missing guest row.
func (s *GuestRules) Delete(ctx context.Context, id string) (bool, error) {
	if err := requireNonBlank(id, "guest id"); err != nil {
		return false, err
	}

	exists, err := s.guests.ExistsByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	hasBookings, err := s.bookings.ExistsByGuestID(ctx, id)
	if err != nil {
		return false, err
	}
	if hasBookings {
		return false, domain.Conflictf("cannot delete guest %s because it has bookings", id)
	}

	if _, err := s.prefs.DeleteByGuestID(ctx, id); err != nil {
		return false, err
	}
	if err := s.guests.DeleteByID(ctx, id); err != nil {
		log.Warn().Str("guest_id", id).Err(err).
			Msg("preferences document deleted but guest row delete failed; stores are inconsistent")
		return false, err
	}
	return true, nil
}

// UpdatePreferences upserts the preferences document for an existing guest.
// The payload's guestId is always overwritten with the path value.
func (s *GuestRules) UpdatePreferences(ctx context.Context, guestID string, p *domain.GuestPreferences) (domain.GuestPreferences, error) {
	if err := requireNonBlank(guestID, "guest id"); err != nil {
		return domain.GuestPreferences{}, err
	}
	if p == nil {
		return domain.GuestPreferences{}, domain.Missingf("preferences must not be nil")
	}

	exists, err := s.guests.ExistsByID(ctx, guestID)
	if err != nil {
		return domain.GuestPreferences{}, err
	}
	if !exists {
		return domain.GuestPreferences{}, domain.NotFoundf("guest not found: %s", guestID)
	}

	upd := *p
	upd.GuestID = guestID
	return s.prefs.Save(ctx, upd)
}

func (s *GuestRules) PreferencesByGuestID(ctx context.Context, guestID string) (*domain.GuestPreferences, error) {
	if err := requireNonBlank(guestID, "guest id"); err != nil {
		return nil, err
	}
	return s.prefs.FindByGuestID(ctx, guestID)
}

func (s *GuestRules) DeletePreferencesByGuestID(ctx context.Context, guestID string) (bool, error) {
	if err := requireNonBlank(guestID, "guest id"); err != nil {
		return false, err
	}
	return s.prefs.DeleteByGuestID(ctx, guestID)
}

// saveWithPreferences writes the guest row first, then the preferences
// document when one is attached. The returned guest carries the document as
// the store round-tripped it, not the pre-save payload.
func (s *GuestRules) saveWithPreferences(ctx context.Context, g domain.Guest) (domain.Guest, error) {
	saved, err := s.guests.Save(ctx, g)
	if err != nil {
		return domain.Guest{}, err
	}

	if g.Preferences == nil {
		saved.Preferences = nil
		return saved, nil
	}

	p := *g.Preferences
	p.GuestID = saved.ID
	stored, err := s.prefs.Save(ctx, p)
	if err != nil {
		log.Warn().Str("guest_id", saved.ID).Err(err).
			Msg("guest row saved but preferences write failed; stores are inconsistent")
		return domain.Guest{}, err
	}
	saved.Preferences = &stored
	return saved, nil
}
