package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"dmbookAdmin/internal/models"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// writeError maps domain errors onto status codes. Anything that is not a
// client error is logged and reported as a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *models.Error
	if errors.As(err, &apiErr) {
		switch {
		case errors.Is(err, models.ErrNoRecord):
			writeMessage(w, http.StatusNotFound, apiErr.Message)
			return
		case errors.Is(err, models.ErrInvalidInput):
			writeMessage(w, http.StatusBadRequest, apiErr.Message)
			return
		}
	}
	zerolog.Ctx(r.Context()).Error().Err(err).
		Str("method", r.Method).
		Str("uri", r.URL.RequestURI()).
		Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
}

// NotFound answers requests no route matched.
func NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeMessage(w, http.StatusNotFound, "Route not found")
}

// decodeBody reads a JSON body into dst. An empty body leaves dst untouched.
func decodeBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return models.ErrInvalidBody
}
