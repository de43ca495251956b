package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

type AttendanceController struct {
	Logger  *slog.Logger
	Service domain.AttendanceService
}

func NewAttendanceController(logger *slog.Logger, svc domain.AttendanceService) *AttendanceController {
	return &AttendanceController{
		Logger:  logger,
		Service: svc,
	}
}

// MarkAttendanceRequest is the request body for POST /events/{eventID}/attendance.
// QRData is the base64 badge payload scanned from the student's QR code.
type MarkAttendanceRequest struct {
	QRData string `json:"qr_data"`
}

// Validate implements Validator.
func (m MarkAttendanceRequest) Validate() []string {
	if m.QRData == "" {
		return []string{"qr_data is required"}
	}
	return nil
}

// MarkAttendanceSuccessResponse is the success response envelope for POST /events/{eventID}/attendance (201).
type MarkAttendanceSuccessResponse struct {
	Data  *domain.Attendance `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// MarkAttendance godoc
// @Summary Mark a student's attendance
// @Description Validates the scanned QR badge and records attendance for the event. Only FACULTY and ADMIN callers may mark. Each student can be marked once per event; prior registration is not required.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body MarkAttendanceRequest true "Scanned QR payload"
// @Success 201 {object} controllers.MarkAttendanceSuccessResponse "data contains the attendance record"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed badge or non-student subject)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event or badge subject)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already marked)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/attendance [post]
func (c *AttendanceController) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req MarkAttendanceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	att, err := c.Service.MarkAttendance(r.Context(), actor, eventID, req.QRData)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event or student not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidQRFormat) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "malformed QR payload")
			return
		}
		if errors.Is(err, domain.ErrNotAStudent) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "badge does not belong to a student")
			return
		}
		if errors.Is(err, domain.ErrDuplicateAttendance) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "attendance already marked")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, att)
}

// ListAttendanceSuccessResponse is the success response envelope for GET /events/{eventID}/attendance (200).
type ListAttendanceSuccessResponse struct {
	Data  []*domain.AttendedStudent `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// ListEventAttendance godoc
// @Summary List attendance for an event
// @Description Returns the students marked present at the event. Requires authentication.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.ListAttendanceSuccessResponse "data is an array of attended students"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/attendance [get]
func (c *AttendanceController) ListEventAttendance(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	students, err := c.Service.ListEventAttendance(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if students == nil {
		students = []*domain.AttendedStudent{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, students)
}
