package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"stayhub/internal/domain"
)

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var payload domain.Booking
	if !decode(w, r, &payload) {
		return
	}
	created, err := h.Bookings.Create(r.Context(), &payload)
	if err != nil {
		writeRuleError(w, err)
		return
	}
	w.Header().Set("Location", "/api/bookings/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

// listBookings accepts at most one of ?roomId=, ?guestId=, ?hotelId=.
func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("roomId")
	guestID := r.URL.Query().Get("guestId")
	hotelID := r.URL.Query().Get("hotelId")

	filters := 0
	for _, f := range []string{roomID, guestID, hotelID} {
		if f != "" {
			filters++
		}
	}
	if filters > 1 {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "at most one of roomId, guestId, hotelId may be given")
		return
	}

	var (
		bookings []domain.Booking
		err      error
	)
	switch {
	case roomID != "":
		bookings, err = h.Bookings.ByRoomID(r.Context(), roomID)
	case guestID != "":
		bookings, err = h.Bookings.ByGuestID(r.Context(), guestID)
	case hotelID != "":
		bookings, err = h.Bookings.ByHotelID(r.Context(), hotelID)
	default:
		bookings, err = h.Bookings.All(r.Context())
	}
	if err != nil {
		writeRuleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.Bookings.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRuleError(w, err)
		return
	}
	if booking == nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "booking not found")
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *Handlers) updateBooking(w http.ResponseWriter, r *http.Request) {
	var payload domain.Booking
	if !decode(w, r, &payload) {
		return
	}
	updated, err := h.Bookings.Update(r.Context(), chi.URLParam(r, "id"), &payload)
	if err != nil {
		writeRuleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) deleteBooking(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Bookings.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRuleError(w, err)
		return
	}
	if !deleted {
		writeProblem(w, http.StatusNotFound, "Not Found", "booking not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) deleteBookingsByGuest(w http.ResponseWriter, r *http.Request) {
	n, err := h.Bookings.DeleteByGuestID(r.Context(), chi.URLParam(r, "guestId"))
	if err != nil {
		writeRuleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Deleted: n})
}

func (h *Handlers) deleteBookingsByRoom(w http.ResponseWriter, r *http.Request) {
	n, err := h.Bookings.DeleteByRoomID(r.Context(), chi.URLParam(r, "roomId"))
	if err != nil {
		writeRuleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Deleted: n})
}
