package controllers

import (
	"log/slog"
	"net/http"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

type AnalyticsController struct {
	Logger  *slog.Logger
	Service domain.AnalyticsService
}

func NewAnalyticsController(logger *slog.Logger, svc domain.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		Logger:  logger,
		Service: svc,
	}
}

// StudentStatsSuccessResponse is the success response envelope for GET /users/me/stats (200).
type StudentStatsSuccessResponse struct {
	Data  *domain.StudentAttendanceStats `json:"data"`
	Error *helpers.APIError              `json:"error"`
}

// MyAttendanceStats godoc
// @Summary Get my participation statistics
// @Description Returns the authenticated user's registration and attendance counts, the attendance percentage, and the most recently attended events.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.StudentStatsSuccessResponse "data contains the stats"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/me/stats [get]
func (c *AnalyticsController) MyAttendanceStats(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	stats, err := c.Service.StudentAttendanceStats(r.Context(), actor.ID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}

// EventReportSuccessResponse is the success response envelope for GET /events/{eventID}/report (200).
type EventReportSuccessResponse struct {
	Data  *domain.EventParticipationReport `json:"data"`
	Error *helpers.APIError                `json:"error"`
}

// EventParticipationReport godoc
// @Summary Get an event's participation report
// @Description Returns registration and attendance totals for the event plus the attendance rate. Requires authentication.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventReportSuccessResponse "data contains the report"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/report [get]
func (c *AnalyticsController) EventParticipationReport(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	report, err := c.Service.EventParticipationReport(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}
