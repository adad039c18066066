package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"stayhub/internal/app"
	"stayhub/internal/domain"
)

type chiRouter = chi.Router

// Handlers exposes the four rules components over REST.
type Handlers struct {
	Hotels   *app.HotelRules
	Rooms    *app.RoomRules
	Guests   *app.GuestRules
	Bookings *app.BookingRules
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/api/hotels", func(r chiRouter) {
		r.Post("/", h.createHotel)
		r.Get("/", h.listHotels)
		r.Get("/{id}", h.getHotel)
		r.Put("/{id}", h.updateHotel)
		r.Delete("/{id}", h.deleteHotel)
	})
	s.mux.Route("/api/rooms", func(r chiRouter) {
		r.Post("/", h.createRoom)
		r.Get("/", h.listRooms)
		r.Get("/{id}", h.getRoom)
		r.Put("/{id}", h.updateRoom)
		r.Delete("/{id}", h.deleteRoom)
		r.Delete("/hotel/{hotelId}", h.deleteRoomsByHotel)
	})
	s.mux.Route("/api/guests", func(r chiRouter) {
		r.Post("/", h.createGuest)
		r.Get("/", h.listGuests)
		r.Get("/{id}", h.getGuest)
		r.Put("/{id}", h.updateGuest)
		r.Delete("/{id}", h.deleteGuest)
		r.Get("/{id}/preferences", h.getPreferences)
		r.Put("/{id}/preferences", h.upsertPreferences)
		r.Delete("/{id}/preferences", h.deletePreferences)
	})
	s.mux.Route("/api/bookings", func(r chiRouter) {
		r.Post("/", h.createBooking)
		r.Get("/", h.listBookings)
		r.Get("/{id}", h.getBooking)
		r.Put("/{id}", h.updateBooking)
		r.Delete("/{id}", h.deleteBooking)
		r.Delete("/guest/{guestId}", h.deleteBookingsByGuest)
		r.Delete("/room/{roomId}", h.deleteBookingsByRoom)
	})
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeRuleError maps the domain error taxonomy onto HTTP statuses.
func writeRuleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissing), errors.Is(err, domain.ErrBlank), errors.Is(err, domain.ErrMalformed):
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrExists), errors.Is(err, domain.ErrConflict):
		writeProblem(w, http.StatusConflict, "Conflict", err.Error())
	default:
		log.Error().Err(err).Msg("unexpected rules-layer failure")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "Unexpected error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// decode rejects bodies that are not valid JSON for the target type.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return false
	}
	return true
}

type countResponse struct {
	Deleted int64 `json:"deleted"`
}
