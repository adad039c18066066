package domain

import "context"

// Storage-access ports. The mysql package implements the four row-entity
// repositories; redisdoc implements PreferencesStore. Find-by-id returns
// (nil, nil) when the record is absent.

type HotelRepository interface {
	Save(ctx context.Context, h Hotel) (Hotel, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) (*Hotel, error)
	FindAll(ctx context.Context) ([]Hotel, error)
	FindByName(ctx context.Context, name string) ([]Hotel, error)
	DeleteByID(ctx context.Context, id string) error
}

type RoomRepository interface {
	Save(ctx context.Context, r Room) (Room, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) (*Room, error)
	FindAll(ctx context.Context) ([]Room, error)
	FindByHotelID(ctx context.Context, hotelID string) ([]Room, error)
	FindByHotelIDAndType(ctx context.Context, hotelID, roomType string) ([]Room, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByHotelID(ctx context.Context, hotelID string) (int64, error)
}

type GuestRepository interface {
	Save(ctx context.Context, g Guest) (Guest, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) (*Guest, error)
	FindAll(ctx context.Context) ([]Guest, error)
	DeleteByID(ctx context.Context, id string) error
}

type BookingRepository interface {
	Save(ctx context.Context, b Booking) (Booking, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) (*Booking, error)
	FindAll(ctx context.Context) ([]Booking, error)
	FindByRoomID(ctx context.Context, roomID string) ([]Booking, error)
	FindByGuestID(ctx context.Context, guestID string) ([]Booking, error)
	FindByHotelID(ctx context.Context, hotelID string) ([]Booking, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByGuestID(ctx context.Context, guestID string) (int64, error)
	DeleteByRoomID(ctx context.Context, roomID string) (int64, error)
}

// PreferencesStore is the document-store port. Save returns the document as
// durably stored; FindByGuestID returns (nil, nil) on a miss; DeleteByGuestID
// reports whether a document was removed.
type PreferencesStore interface {
	Save(ctx context.Context, p GuestPreferences) (GuestPreferences, error)
	FindByGuestID(ctx context.Context, guestID string) (*GuestPreferences, error)
	FindByGuestIDs(ctx context.Context, guestIDs []string) (map[string]GuestPreferences, error)
	DeleteByGuestID(ctx context.Context, guestID string) (bool, error)
}

// Narrow capability views for cross-aggregate existence checks. Rules
// components depend on these instead of on sibling repositories, keeping the
// dependency graph acyclic and easy to fake in tests.

type HotelDirectory interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

type RoomDirectory interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

type GuestDirectory interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

type BookingDirectory interface {
	ExistsByGuestID(ctx context.Context, guestID string) (bool, error)
	ExistsByRoomID(ctx context.Context, roomID string) (bool, error)
	ExistsByHotelID(ctx context.Context, hotelID string) (bool, error)
}

// RoomPurger is the slice of the room store the hotel rules need for
// cascading deletion.
type RoomPurger interface {
	DeleteByHotelID(ctx context.Context, hotelID string) (int64, error)
}
