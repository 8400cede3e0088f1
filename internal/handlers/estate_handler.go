package handlers

import (
	"encoding/json"
	"net/http"

	"dmbookAdmin/internal/models"
	"dmbookAdmin/internal/services"
)

type EstateHandler struct {
	Service *services.EstateService
}

type isAcceptedRequest struct {
	IsAccepted json.RawMessage `json:"IsAccepted"`
}

func (h *EstateHandler) GetEstateWithOwner(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.GetEstateWithOwner(r.Context(), getParam(r, "estateId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *EstateHandler) GetProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.Service.GetAcceptedEstates(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, providers)
}

func (h *EstateHandler) GetNewEstates(w http.ResponseWriter, r *http.Request) {
	estates, err := h.Service.GetPendingEstates(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, estates)
}

// UpdateIsAccepted accepts ("2") or rejects ("3") a pending estate. The value
// may arrive as a string or a number.
func (h *EstateHandler) UpdateIsAccepted(w http.ResponseWriter, r *http.Request) {
	var req isAcceptedRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	decision := models.LooseString(req.IsAccepted)
	if err := getValidator().Var(decision, "oneof=2 3"); err != nil {
		writeError(w, r, models.ErrInvalidIsAccepted)
		return
	}

	result, err := h.Service.DecideEstate(r.Context(), getParam(r, "category"), getParam(r, "estateId"), models.EstateState(decision))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
