package handlers

import (
	"net/http"

	"dmbookAdmin/internal/services"
)

type BookingHandler struct {
	Service *services.BookingService
}

func (h *BookingHandler) GetEstateBookingsWithUsers(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.GetEstateBookings(r.Context(), getParam(r, "estateId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}
