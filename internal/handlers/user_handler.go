package handlers

import (
	"encoding/json"
	"net/http"

	"dmbookAdmin/internal/models"
	"dmbookAdmin/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAllUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	h.usersByType(w, r, models.UserCustomer)
}

func (h *UserHandler) GetProviderUsers(w http.ResponseWriter, r *http.Request) {
	h.usersByType(w, r, models.UserProvider)
}

func (h *UserHandler) usersByType(w http.ResponseWriter, r *http.Request, t models.UserType) {
	users, err := h.Service.GetUsersByType(r.Context(), t)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetProviderProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Service.GetProviderProfile(r.Context(), getParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) GetUserWithBookings(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.GetUserWithBookings(r.Context(), getParam(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// UpdateUserType stores TypeAccount exactly as sent. Only a missing key is
// rejected; null clears the field.
func (h *UserHandler) UpdateUserType(w http.ResponseWriter, r *http.Request) {
	var body map[string]json.RawMessage
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	raw, ok := body["TypeAccount"]
	if !ok {
		writeError(w, r, models.ErrTypeAccountRequired)
		return
	}
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		writeError(w, r, models.ErrInvalidBody)
		return
	}

	if err := h.Service.UpdateTypeAccount(r.Context(), getParam(r, "userId"), value); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "User TypeAccount updated successfully.")
}
