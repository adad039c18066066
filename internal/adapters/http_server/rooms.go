package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"stayhub/internal/domain"
)

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var payload domain.Room
	if !decode(w, r, &payload) {
		return
	}
	created, err := h.Rooms.Create(r.Context(), &payload)
	if err != nil {
		writeRuleError(w, err)
		return
	}
	w.Header().Set("Location", "/api/rooms/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

// listRooms supports ?hotelId= and ?hotelId=&type= filters.
func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	hotelID := r.URL.Query().Get("hotelId")
	roomType := r.URL.Query().Get("type")

	var (
		rooms []domain.Room
		err   error
	)
	switch {
	case hotelID != "" && roomType != "":
		rooms, err = h.Rooms.ByHotelIDAndType(r.Context(), hotelID, roomType)
	case hotelID != "":
		rooms, err = h.Rooms.ByHotelID(r.Context(), hotelID)
	case roomType != "":
		writeProblem(w, http.StatusBadRequest, "Bad Request", "type filter requires hotelId")
		return
	default:
		rooms, err = h.Rooms.All(r.Context())
	}
	if err != nil {
		writeRuleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.Rooms.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRuleError(w, err)
		return
	}
	if room == nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "room not found")
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *Handlers) updateRoom(w http.ResponseWriter, r *http.Request) {
	var payload domain.Room
	if !decode(w, r, &payload) {
		return
	}
	updated, err := h.Rooms.Update(r.Context(), chi.URLParam(r, "id"), &payload)
	if err != nil {
		writeRuleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) deleteRoom(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Rooms.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRuleError(w, err)
		return
	}
	if !deleted {
		writeProblem(w, http.StatusNotFound, "Not Found", "room not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) deleteRoomsByHotel(w http.ResponseWriter, r *http.Request) {
	n, err := h.Rooms.DeleteByHotelID(r.Context(), chi.URLParam(r, "hotelId"))
	if err != nil {
		writeRuleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Deleted: n})
}
