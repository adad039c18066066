package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"stayhub/internal/domain"
)

func (h *Handlers) createGuest(w http.ResponseWriter, r *http.Request) {
	var payload domain.Guest
	if !decode(w, r, &payload) {
		return
	}
	created, err := h.Guests.Create(r.Context(), &payload)
	if err != nil {
		writeRuleError(w, err)
		return
	}
	w.Header().Set("Location", "/api/guests/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) listGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := h.Guests.All(r.Context())
	if err != nil {
		writeRuleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, guests)
}

func (h *Handlers) getGuest(w http.ResponseWriter, r *http.Request) {
	guest, err := h.Guests.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRuleError(w, err)
		return
	}
	if guest == nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "guest not found")
		return
	}
	writeJSON(w, http.StatusOK, guest)
}

func (h *Handlers) updateGuest(w http.ResponseWriter, r *http.Request) {
	var payload domain.Guest
	if !decode(w, r, &payload) {
		return
	}
	updated, err := h.Guests.Update(r.Context(), chi.URLParam(r, "id"), &payload)
	if err != nil {
		writeRuleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) deleteGuest(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Guests.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRuleError(w, err)
		return
	}
	if !deleted {
		writeProblem(w, http.StatusNotFound, "Not Found", "guest not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) getPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.Guests.PreferencesByGuestID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRuleError(w, err)
		return
	}
	if prefs == nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "preferences not found")
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

func (h *Handlers) upsertPreferences(w http.ResponseWriter, r *http.Request) {
	var payload domain.GuestPreferences
	if !decode(w, r, &payload) {
		return
	}
	saved, err := h.Guests.UpdatePreferences(r.Context(), chi.URLParam(r, "id"), &payload)
	if err != nil {
		writeRuleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *Handlers) deletePreferences(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Guests.DeletePreferencesByGuestID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRuleError(w, err)
		return
	}
	if !deleted {
		writeProblem(w, http.StatusNotFound, "Not Found", "preferences not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
