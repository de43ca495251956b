package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

// Controllers groups the handlers wired into the router.
type Controllers struct {
	Auth       *controllers.AuthController
	User       *controllers.UserController
	Event      *controllers.EventController
	Attendance *controllers.AttendanceController
	Feedback   *controllers.FeedbackController
	Analytics  *controllers.AnalyticsController
}

// NewRouter initializes the HTTP router with all application routes.
// Everything except signup, login, and swagger requires a Bearer token.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	authed := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Users
	mux.HandleFunc("GET /users/me", authed(c.User.GetMe))
	mux.HandleFunc("GET /users/me/qr", authed(c.User.GetMyQRBadge))
	mux.HandleFunc("GET /users/me/stats", authed(c.Analytics.MyAttendanceStats))

	// Events
	mux.HandleFunc("POST /events", authed(c.Event.CreateEvent))
	mux.HandleFunc("GET /events", authed(c.Event.ListUpcomingEvents))
	mux.HandleFunc("GET /events/{eventID}", authed(c.Event.GetEventByID))
	mux.HandleFunc("PATCH /events/{eventID}", authed(c.Event.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", authed(c.Event.DeleteEvent))

	// Registration
	mux.HandleFunc("POST /events/{eventID}/register", authed(c.Event.RegisterForEvent))
	mux.HandleFunc("GET /events/{eventID}/registrations", authed(c.Event.ListEventRegistrations))

	// Attendance
	mux.HandleFunc("POST /events/{eventID}/attendance", authed(c.Attendance.MarkAttendance))
	mux.HandleFunc("GET /events/{eventID}/attendance", authed(c.Attendance.ListEventAttendance))

	// Feedback
	mux.HandleFunc("POST /events/{eventID}/feedback", authed(c.Feedback.SubmitFeedback))
	mux.HandleFunc("GET /events/{eventID}/feedback", authed(c.Feedback.ListEventFeedback))

	// Analytics
	mux.HandleFunc("GET /events/{eventID}/report", authed(c.Analytics.EventParticipationReport))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
