package app

import (
	"context"

	"stayhub/internal/domain"
)

// RoomRules owns the room lifecycle. Every write verifies the referenced
// hotel; deletes are guarded against dangling bookings.
type RoomRules struct {
	rooms    domain.RoomRepository
	hotels   domain.HotelDirectory
	bookings domain.BookingDirectory
}

func NewRoomRules(
	rooms domain.RoomRepository,
	hotels domain.HotelDirectory,
	bookings domain.BookingDirectory,
) *RoomRules {
	return &RoomRules{rooms: rooms, hotels: hotels, bookings: bookings}
}

func (s *RoomRules) Create(ctx context.Context, r *domain.Room) (domain.Room, error) {
	if r == nil {
		return domain.Room{}, domain.Missingf("room must not be nil")
	}
	if err := requireNonBlank(r.ID, "room id"); err != nil {
		return domain.Room{}, err
	}
	if err := requireNonBlank(r.Number, "room number"); err != nil {
		return domain.Room{}, err
	}
	if err := requireNonBlank(r.HotelID, "hotel id"); err != nil {
		return domain.Room{}, err
	}
	if err := s.requireHotelExists(ctx, r.HotelID); err != nil {
		return domain.Room{}, err
	}
	return s.rooms.Save(ctx, *r)
}

func (s *RoomRules) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	if err := requireNonBlank(id, "room id"); err != nil {
		return nil, err
	}
	return s.rooms.FindByID(ctx, id)
}

func (s *RoomRules) All(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.FindAll(ctx)
}

func (s *RoomRules) ByHotelID(ctx context.Context, hotelID string) ([]domain.Room, error) {
	if err := requireNonBlank(hotelID, "hotel id"); err != nil {
		return nil, err
	}
	if err := s.requireHotelExists(ctx, hotelID); err != nil {
		return nil, err
	}
	return s.rooms.FindByHotelID(ctx, hotelID)
}

func (s *RoomRules) ByHotelIDAndType(ctx context.Context, hotelID, roomType string) ([]domain.Room, error) {
	if err := requireNonBlank(hotelID, "hotel id"); err != nil {
		return nil, err
	}
	if err := requireNonBlank(roomType, "room type"); err != nil {
		return nil, err
	}
	if err := s.requireHotelExists(ctx, hotelID); err != nil {
		return nil, err
	}
	return s.rooms.FindByHotelIDAndType(ctx, hotelID, roomType)
}

func (s *RoomRules) Update(ctx context.Context, id string, r *domain.Room) (domain.Room, error) {
	if err := requireNonBlank(id, "room id"); err != nil {
		return domain.Room{}, err
	}
	if r == nil {
		return domain.Room{}, domain.Missingf("room must not be nil")
	}
	if err := requireNonBlank(r.Number, "room number"); err != nil {
		return domain.Room{}, err
	}
	if err := requireNonBlank(r.HotelID, "hotel id"); err != nil {
		return domain.Room{}, err
	}

	exists, err := s.rooms.ExistsByID(ctx, id)
	if err != nil {
		return domain.Room{}, err
	}
	if !exists {
		return domain.Room{}, domain.NotFoundf("room not found: %s", id)
	}
	if err := s.requireHotelExists(ctx, r.HotelID); err != nil {
		return domain.Room{}, err
	}

	upd := *r
	upd.ID = id
	return s.rooms.Save(ctx, upd)
}

// Delete returns false without error when the room does not exist, and
// rejects the delete while any booking references it.
func (s *RoomRules) Delete(ctx context.Context, id string) (bool, error) {
	if err := requireNonBlank(id, "room id"); err != nil {
		return false, err
	}

	exists, err := s.rooms.ExistsByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	hasBookings, err := s.bookings.ExistsByRoomID(ctx, id)
	if err != nil {
		return false, err
	}
	if hasBookings {
		return false, domain.Conflictf("cannot delete room %s because it has bookings", id)
	}

	if err := s.rooms.DeleteByID(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (s *RoomRules) DeleteByHotelID(ctx context.Context, hotelID string) (int64, error) {
	if err := requireNonBlank(hotelID, "hotel id"); err != nil {
		return 0, err
	}
	if err := s.requireHotelExists(ctx, hotelID); err != nil {
		return 0, err
	}

	hasBookings, err := s.bookings.ExistsByHotelID(ctx, hotelID)
	if err != nil {
		return 0, err
	}
	if hasBookings {
		return 0, domain.Conflictf("cannot delete rooms for hotel %s because there are bookings", hotelID)
	}

	return s.rooms.DeleteByHotelID(ctx, hotelID)
}

func (s *RoomRules) requireHotelExists(ctx context.Context, hotelID string) error {
	ok, err := s.hotels.ExistsByID(ctx, hotelID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundf("hotel not found: %s", hotelID)
	}
	return nil
}
