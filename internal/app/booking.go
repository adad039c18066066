package app

import (
	"context"

	"stayhub/internal/domain"
)

// BookingRules owns the booking lifecycle. It consults the room, guest and
// hotel directories so a booking can never reference a nonexistent aggregate
// at the moment it is written.
type BookingRules struct {
	bookings domain.BookingRepository
	rooms    domain.RoomDirectory
	guests   domain.GuestDirectory
	hotels   domain.HotelDirectory
}

func NewBookingRules(
	bookings domain.BookingRepository,
	rooms domain.RoomDirectory,
	guests domain.GuestDirectory,
	hotels domain.HotelDirectory,
) *BookingRules {
	return &BookingRules{bookings: bookings, rooms: rooms, guests: guests, hotels: hotels}
}

func (s *BookingRules) Create(ctx context.Context, b *domain.Booking) (domain.Booking, error) {
	if b == nil {
		return domain.Booking{}, domain.Missingf("booking must not be nil")
	}
	if err := requireNonBlank(b.ID, "booking id"); err != nil {
		return domain.Booking{}, err
	}
	if err := requireNonBlank(b.RoomID, "room id"); err != nil {
		return domain.Booking{}, err
	}
	if err := requireNonBlank(b.GuestID, "guest id"); err != nil {
		return domain.Booking{}, err
	}

	if err := s.requireGuestExists(ctx, b.GuestID); err != nil {
		return domain.Booking{}, err
	}
	if err := s.requireRoomExists(ctx, b.RoomID); err != nil {
		return domain.Booking{}, err
	}
	if err := validateStayDates(b.CheckIn, b.CheckOut); err != nil {
		return domain.Booking{}, err
	}

	exists, err := s.bookings.ExistsByID(ctx, b.ID)
	if err != nil {
		return domain.Booking{}, err
	}
	if exists {
		return domain.Booking{}, domain.Existsf("booking already exists: %s", b.ID)
	}

	return s.bookings.Save(ctx, *b)
}

func (s *BookingRules) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if err := requireNonBlank(id, "booking id"); err != nil {
		return nil, err
	}
	return s.bookings.FindByID(ctx, id)
}

func (s *BookingRules) All(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.FindAll(ctx)
}

func (s *BookingRules) ByRoomID(ctx context.Context, roomID string) ([]domain.Booking, error) {
	if err := requireNonBlank(roomID, "room id"); err != nil {
		return nil, err
	}
	if err := s.requireRoomExists(ctx, roomID); err != nil {
		return nil, err
	}
	return s.bookings.FindByRoomID(ctx, roomID)
}

func (s *BookingRules) ByGuestID(ctx context.Context, guestID string) ([]domain.Booking, error) {
	if err := requireNonBlank(guestID, "guest id"); err != nil {
		return nil, err
	}
	if err := s.requireGuestExists(ctx, guestID); err != nil {
		return nil, err
	}
	return s.bookings.FindByGuestID(ctx, guestID)
}

func (s *BookingRules) ByHotelID(ctx context.Context, hotelID string) ([]domain.Booking, error) {
	if err := requireNonBlank(hotelID, "hotel id"); err != nil {
		return nil, err
	}
	if err := s.requireHotelExists(ctx, hotelID); err != nil {
		return nil, err
	}
	return s.bookings.FindByHotelID(ctx, hotelID)
}

// Update rewrites an existing booking. The payload's own id field is never
// trusted; the path id wins.
func (s *BookingRules) Update(ctx context.Context, id string, b *domain.Booking) (domain.Booking, error) {
	if err := requireNonBlank(id, "booking id"); err != nil {
		return domain.Booking{}, err
	}
	if b == nil {
		return domain.Booking{}, domain.Missingf("booking must not be nil")
	}
	if err := requireNonBlank(b.RoomID, "room id"); err != nil {
		return domain.Booking{}, err
	}
	if err := requireNonBlank(b.GuestID, "guest id"); err != nil {
		return domain.Booking{}, err
	}

	exists, err := s.bookings.ExistsByID(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}
	if !exists {
		return domain.Booking{}, domain.NotFoundf("booking not found: %s", id)
	}

	if err := s.requireGuestExists(ctx, b.GuestID); err != nil {
		return domain.Booking{}, err
	}
	if err := s.requireRoomExists(ctx, b.RoomID); err != nil {
		return domain.Booking{}, err
	}
	if err := validateStayDates(b.CheckIn, b.CheckOut); err != nil {
		return domain.Booking{}, err
	}

	upd := *b
	upd.ID = id
	return s.bookings.Save(ctx, upd)
}

// Delete reports false without error when the booking does not exist.
func (s *BookingRules) Delete(ctx context.Context, id string) (bool, error) {
	if err := requireNonBlank(id, "booking id"); err != nil {
		return false, err
	}
	exists, err := s.bookings.ExistsByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if err := s.bookings.DeleteByID(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (s *BookingRules) DeleteByGuestID(ctx context.Context, guestID string) (int64, error) {
	if err := requireNonBlank(guestID, "guest id"); err != nil {
		return 0, err
	}
	if err := s.requireGuestExists(ctx, guestID); err != nil {
		return 0, err
	}
	return s.bookings.DeleteByGuestID(ctx, guestID)
}

func (s *BookingRules) DeleteByRoomID(ctx context.Context, roomID string) (int64, error) {
	if err := requireNonBlank(roomID, "room id"); err != nil {
		return 0, err
	}
	if err := s.requireRoomExists(ctx, roomID); err != nil {
		return 0, err
	}
	return s.bookings.DeleteByRoomID(ctx, roomID)
}

func (s *BookingRules) requireRoomExists(ctx context.Context, roomID string) error {
	ok, err := s.rooms.ExistsByID(ctx, roomID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundf("room not found: %s", roomID)
	}
	return nil
}

func (s *BookingRules) requireGuestExists(ctx context.Context, guestID string) error {
	ok, err := s.guests.ExistsByID(ctx, guestID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundf("guest not found: %s", guestID)
	}
	return nil
}

func (s *BookingRules) requireHotelExists(ctx context.Context, hotelID string) error {
	ok, err := s.hotels.ExistsByID(ctx, hotelID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundf("hotel not found: %s", hotelID)
	}
	return nil
}
