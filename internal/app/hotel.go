package app

import (
	"context"

	"stayhub/internal/domain"
)

// HotelRules owns the hotel lifecycle. Deleting a hotel cascades into its
// rooms, but only after the booking guard confirms no booking references any
// of them.
type HotelRules struct {
	hotels   domain.HotelRepository
	rooms    domain.RoomPurger
	bookings domain.BookingDirectory
}

func NewHotelRules(
	hotels domain.HotelRepository,
	rooms domain.RoomPurger,
	bookings domain.BookingDirectory,
) *HotelRules {
	return &HotelRules{hotels: hotels, rooms: rooms, bookings: bookings}
}

// Create persists unconditionally; the relational save is an upsert, so a
// duplicate id overwrites rather than erroring.
func (s *HotelRules) Create(ctx context.Context, h *domain.Hotel) (domain.Hotel, error) {
	if h == nil {
		return domain.Hotel{}, domain.Missingf("hotel must not be nil")
	}
	if err := requireNonBlank(h.ID, "hotel id"); err != nil {
		return domain.Hotel{}, err
	}
	if err := requireNonBlank(h.Name, "hotel name"); err != nil {
		return domain.Hotel{}, err
	}
	return s.hotels.Save(ctx, *h)
}

func (s *HotelRules) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	if err := requireNonBlank(id, "hotel id"); err != nil {
		return nil, err
	}
	return s.hotels.FindByID(ctx, id)
}

func (s *HotelRules) All(ctx context.Context) ([]domain.Hotel, error) {
	return s.hotels.FindAll(ctx)
}

func (s *HotelRules) ByName(ctx context.Context, name string) ([]domain.Hotel, error) {
	if err := requireNonBlank(name, "name"); err != nil {
		return nil, err
	}
	return s.hotels.FindByName(ctx, name)
}

func (s *HotelRules) Update(ctx context.Context, id string, h *domain.Hotel) (domain.Hotel, error) {
	if err := requireNonBlank(id, "hotel id"); err != nil {
		return domain.Hotel{}, err
	}
	if h == nil {
		return domain.Hotel{}, domain.Missingf("hotel must not be nil")
	}
	if err := requireNonBlank(h.Name, "hotel name"); err != nil {
		return domain.Hotel{}, err
	}

	exists, err := s.hotels.ExistsByID(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	if !exists {
		return domain.Hotel{}, domain.NotFoundf("hotel not found: %s", id)
	}

	upd := *h
	upd.ID = id
	return s.hotels.Save(ctx, upd)
}

// Delete returns false without error when the hotel does not exist. When any
// booking references a room of this hotel the delete is rejected and nothing
// is removed; otherwise the hotel's rooms go first, then the hotel row.
func (s *HotelRules) Delete(ctx context.Context, id string) (bool, error) {
	if err := requireNonBlank(id, "hotel id"); err != nil {
		return false, err
	}

	exists, err := s.hotels.ExistsByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	hasBookings, err := s.bookings.ExistsByHotelID(ctx, id)
	if err != nil {
		return false, err
	}
	if hasBookings {
		return false, domain.Conflictf("cannot delete hotel %s because it has bookings", id)
	}

	if _, err := s.rooms.DeleteByHotelID(ctx, id); err != nil {
		return false, err
	}
	if err := s.hotels.DeleteByID(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
