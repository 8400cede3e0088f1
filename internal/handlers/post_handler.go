package handlers

import (
	"encoding/json"
	"net/http"

	"dmbookAdmin/internal/models"
	"dmbookAdmin/internal/services"
)

type PostHandler struct {
	Service *services.PostService
}

type postStatusRequest struct {
	Status string `validate:"required,oneof=1 2"`
}

func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Service.GetPosts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	post, err := h.Service.GetPostByID(r.Context(), getParam(r, "postId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// UpdatePostStatus sets status "1" or "2". The value must be sent as a
// JSON string.
func (h *PostHandler) UpdatePostStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status json.RawMessage `json:"status"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	var req postStatusRequest
	if err := json.Unmarshal(body.Status, &req.Status); err != nil {
		writeError(w, r, models.ErrInvalidPostStatus)
		return
	}
	if err := getValidator().Struct(req); err != nil {
		writeError(w, r, models.ErrInvalidPostStatus)
		return
	}

	if err := h.Service.UpdateStatus(r.Context(), getParam(r, "postId"), models.PostStatus(req.Status)); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Post status updated successfully.")
}
