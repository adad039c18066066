package domain

// Booking references a Room and a Guest by id. CheckIn/CheckOut are opaque
// yyyy-MM-dd strings; both present or both absent.
type Booking struct {
	ID       string `json:"id"`
	RoomID   string `json:"roomId"`
	GuestID  string `json:"guestId"`
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`
}
