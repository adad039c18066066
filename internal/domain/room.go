package domain

type Room struct {
	ID            string  `json:"id"`
	Number        string  `json:"number"`
	Type          string  `json:"type,omitempty"`
	PricePerNight float64 `json:"pricePerNight,omitempty"`
	HotelID       string  `json:"hotelId"`
}
