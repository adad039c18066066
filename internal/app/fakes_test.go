package app_test

import (
	"context"
	"sort"

	"stayhub/internal/domain"
)

// In-memory fakes for the storage ports. The optional log slice records
// mutation order so tests can assert delete sequencing.

type fakeHotels struct {
	items map[string]domain.Hotel
	log   *[]string
}

func newFakeHotels(hs ...domain.Hotel) *fakeHotels {
	f := &fakeHotels{items: map[string]domain.Hotel{}}
	for _, h := range hs {
		f.items[h.ID] = h
	}
	return f
}

func (f *fakeHotels) Save(_ context.Context, h domain.Hotel) (domain.Hotel, error) {
	f.items[h.ID] = h
	return h, nil
}

func (f *fakeHotels) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

func (f *fakeHotels) FindByID(_ context.Context, id string) (*domain.Hotel, error) {
	h, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (f *fakeHotels) FindAll(_ context.Context) ([]domain.Hotel, error) {
	out := make([]domain.Hotel, 0, len(f.items))
	for _, h := range f.items {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeHotels) FindByName(_ context.Context, name string) ([]domain.Hotel, error) {
	var out []domain.Hotel
	for _, h := range f.items {
		if h.Name == name {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHotels) DeleteByID(_ context.Context, id string) error {
	record(f.log, "hotels.delete:"+id)
	delete(f.items, id)
	return nil
}

type fakeRooms struct {
	items map[string]domain.Room
	log   *[]string
}

func newFakeRooms(rs ...domain.Room) *fakeRooms {
	f := &fakeRooms{items: map[string]domain.Room{}}
	for _, r := range rs {
		f.items[r.ID] = r
	}
	return f
}

func (f *fakeRooms) Save(_ context.Context, r domain.Room) (domain.Room, error) {
	f.items[r.ID] = r
	return r, nil
}

func (f *fakeRooms) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

func (f *fakeRooms) FindByID(_ context.Context, id string) (*domain.Room, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeRooms) FindAll(_ context.Context) ([]domain.Room, error) {
	out := make([]domain.Room, 0, len(f.items))
	for _, r := range f.items {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRooms) FindByHotelID(_ context.Context, hotelID string) ([]domain.Room, error) {
	var out []domain.Room
	for _, r := range f.items {
		if r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRooms) FindByHotelIDAndType(_ context.Context, hotelID, roomType string) ([]domain.Room, error) {
	var out []domain.Room
	for _, r := range f.items {
		if r.HotelID == hotelID && r.Type == roomType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRooms) DeleteByID(_ context.Context, id string) error {
	record(f.log, "rooms.delete:"+id)
	delete(f.items, id)
	return nil
}

func (f *fakeRooms) DeleteByHotelID(_ context.Context, hotelID string) (int64, error) {
	record(f.log, "rooms.deleteByHotel:"+hotelID)
	var n int64
	for id, r := range f.items {
		if r.HotelID == hotelID {
			delete(f.items, id)
			n++
		}
	}
	return n, nil
}

type fakeGuests struct {
	items map[string]domain.Guest
	log   *[]string
}

func newFakeGuests(gs ...domain.Guest) *fakeGuests {
	f := &fakeGuests{items: map[string]domain.Guest{}}
	for _, g := range gs {
		f.items[g.ID] = g
	}
	return f
}

func (f *fakeGuests) Save(_ context.Context, g domain.Guest) (domain.Guest, error) {
	g.Preferences = nil // row fields only, like the mysql repo
	f.items[g.ID] = g
	return g, nil
}

func (f *fakeGuests) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

func (f *fakeGuests) FindByID(_ context.Context, id string) (*domain.Guest, error) {
	g, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (f *fakeGuests) FindAll(_ context.Context) ([]domain.Guest, error) {
	out := make([]domain.Guest, 0, len(f.items))
	for _, g := range f.items {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeGuests) DeleteByID(_ context.Context, id string) error {
	record(f.log, "guests.delete:"+id)
	delete(f.items, id)
	return nil
}

type fakeBookings struct {
	items   map[string]domain.Booking
	hotelOf map[string]string // roomID -> hotelID, for the transitive check
}

func newFakeBookings(bs ...domain.Booking) *fakeBookings {
	f := &fakeBookings{items: map[string]domain.Booking{}, hotelOf: map[string]string{}}
	for _, b := range bs {
		f.items[b.ID] = b
	}
	return f
}

func (f *fakeBookings) Save(_ context.Context, b domain.Booking) (domain.Booking, error) {
	f.items[b.ID] = b
	return b, nil
}

func (f *fakeBookings) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

func (f *fakeBookings) ExistsByGuestID(_ context.Context, guestID string) (bool, error) {
	for _, b := range f.items {
		if b.GuestID == guestID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookings) ExistsByRoomID(_ context.Context, roomID string) (bool, error) {
	for _, b := range f.items {
		if b.RoomID == roomID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookings) ExistsByHotelID(_ context.Context, hotelID string) (bool, error) {
	for _, b := range f.items {
		if f.hotelOf[b.RoomID] == hotelID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookings) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (f *fakeBookings) FindAll(_ context.Context) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0, len(f.items))
	for _, b := range f.items {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBookings) FindByRoomID(_ context.Context, roomID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.items {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) FindByGuestID(_ context.Context, guestID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.items {
		if b.GuestID == guestID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) FindByHotelID(_ context.Context, hotelID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.items {
		if f.hotelOf[b.RoomID] == hotelID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) DeleteByID(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeBookings) DeleteByGuestID(_ context.Context, guestID string) (int64, error) {
	var n int64
	for id, b := range f.items {
		if b.GuestID == guestID {
			delete(f.items, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeBookings) DeleteByRoomID(_ context.Context, roomID string) (int64, error) {
	var n int64
	for id, b := range f.items {
		if b.RoomID == roomID {
			delete(f.items, id)
			n++
		}
	}
	return n, nil
}

type fakePrefs struct {
	docs    map[string]domain.GuestPreferences
	saveErr error
	log     *[]string
}

func newFakePrefs() *fakePrefs {
	return &fakePrefs{docs: map[string]domain.GuestPreferences{}}
}

func (f *fakePrefs) Save(_ context.Context, p domain.GuestPreferences) (domain.GuestPreferences, error) {
	if f.saveErr != nil {
		return domain.GuestPreferences{}, f.saveErr
	}
	f.docs[p.GuestID] = p
	return p, nil
}

func (f *fakePrefs) FindByGuestID(_ context.Context, guestID string) (*domain.GuestPreferences, error) {
	p, ok := f.docs[guestID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePrefs) FindByGuestIDs(_ context.Context, guestIDs []string) (map[string]domain.GuestPreferences, error) {
	out := map[string]domain.GuestPreferences{}
	for _, id := range guestIDs {
		if p, ok := f.docs[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (f *fakePrefs) DeleteByGuestID(_ context.Context, guestID string) (bool, error) {
	record(f.log, "prefs.delete:"+guestID)
	_, ok := f.docs[guestID]
	delete(f.docs, guestID)
	return ok, nil
}

func record(log *[]string, op string) {
	if log != nil {
		*log = append(*log, op)
	}
}
