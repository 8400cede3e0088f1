package handlers

import (
	"net/http"
	"strings"

	"dmbookAdmin/internal/docstore"
	"dmbookAdmin/internal/models"
	"dmbookAdmin/internal/services"
)

type FeedbackHandler struct {
	Service *services.FeedbackService
}

type commentRequest struct {
	CommentText string `json:"commentText" validate:"required,max=4000"`
	Author      string `json:"author" validate:"max=200"`
}

type commentsResponse struct {
	Comments []*docstore.Node `json:"comments"`
}

func (h *FeedbackHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := getValidator().Struct(req); err != nil {
		writeError(w, r, models.Invalid(strings.Join(parseErrors(err), "; ")))
		return
	}

	comments, err := h.Service.AddComment(r.Context(), getParam(r, "feedbackId"), req.CommentText, req.Author)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commentsResponse{Comments: comments})
}

func (h *FeedbackHandler) GetFeedbacks(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.GetCustomerFeedback(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *FeedbackHandler) GetProviderFeedback(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.GetProviderFeedback(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
