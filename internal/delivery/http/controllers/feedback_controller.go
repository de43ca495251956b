package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

type FeedbackController struct {
	Logger  *slog.Logger
	Service domain.FeedbackService
}

func NewFeedbackController(logger *slog.Logger, svc domain.FeedbackService) *FeedbackController {
	return &FeedbackController{
		Logger:  logger,
		Service: svc,
	}
}

// SubmitFeedbackRequest is the request body for POST /events/{eventID}/feedback.
type SubmitFeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Validate implements Validator.
func (s SubmitFeedbackRequest) Validate() []string {
	var errs []string
	if s.Rating < domain.MinRating || s.Rating > domain.MaxRating {
		errs = append(errs, "rating must be between 1 and 5")
	}
	return errs
}

// SubmitFeedbackSuccessResponse is the success response envelope for POST /events/{eventID}/feedback (201).
type SubmitFeedbackSuccessResponse struct {
	Data  *domain.Feedback  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SubmitFeedback godoc
// @Summary Submit event feedback
// @Description Submit a rating and optional comment for an event. Only students who were marked present can submit, once per event.
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body SubmitFeedbackRequest true "Rating (1-5) and optional comment"
// @Success 201 {object} controllers.SubmitFeedbackSuccessResponse "data contains the feedback"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (rating out of range)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not a student, or did not attend)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already submitted)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/feedback [post]
func (c *FeedbackController) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req SubmitFeedbackRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	fb, err := c.Service.SubmitFeedback(r.Context(), actor, eventID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "only students can submit feedback")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "rating must be between 1 and 5")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrNotAttended) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "feedback requires attendance")
			return
		}
		if errors.Is(err, domain.ErrDuplicateFeedback) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "feedback already submitted")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, fb)
}

// ListFeedbackSuccessResponse is the success response envelope for GET /events/{eventID}/feedback (200).
type ListFeedbackSuccessResponse struct {
	Data  []*domain.FeedbackEntry `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// ListEventFeedback godoc
// @Summary List feedback for an event
// @Description Returns the feedback entries for the event, newest first. Requires authentication.
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.ListFeedbackSuccessResponse "data is an array of feedback entries"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/feedback [get]
func (c *FeedbackController) ListEventFeedback(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	entries, err := c.Service.ListEventFeedback(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if entries == nil {
		entries = []*domain.FeedbackEntry{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}
