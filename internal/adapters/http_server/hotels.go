package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"stayhub/internal/domain"
)

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var payload domain.Hotel
	if !decode(w, r, &payload) {
		return
	}
	created, err := h.Hotels.Create(r.Context(), &payload)
	if err != nil {
		writeRuleError(w, err)
		return
	}
	w.Header().Set("Location", "/api/hotels/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		hotels, err := h.Hotels.ByName(r.Context(), name)
		if err != nil {
			writeRuleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, hotels)
		return
	}
	hotels, err := h.Hotels.All(r.Context())
	if err != nil {
		writeRuleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hotels)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Hotels.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRuleError(w, err)
		return
	}
	if hotel == nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	var payload domain.Hotel
	if !decode(w, r, &payload) {
		return
	}
	updated, err := h.Hotels.Update(r.Context(), chi.URLParam(r, "id"), &payload)
	if err != nil {
		writeRuleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Hotels.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRuleError(w, err)
		return
	}
	if !deleted {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
