package controllers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var testActor = domain.Actor{ID: "user-123", Email: "ada@campus.edu", Role: domain.RoleStudent}

// withActor sets the authenticated caller on the request context
// (the router's auth middleware would do this in production).
func withActor(r *http.Request, actor domain.Actor) *http.Request {
	return r.WithContext(middleware.SetActor(r.Context(), actor))
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createErr       error
	createdEvent    *domain.Event
	getErr          error
	getResult       *domain.Event
	listErr         error
	listResult      []*domain.Event
	updateErr       error
	updateResult    *domain.Event
	deleteErr       error
	registerErr     error
	registerResult  *domain.Registration
	listRegsErr     error
	listRegsResult  []*domain.RegisteredStudent
	lastEventID     string
	lastActor       domain.Actor
	lastCreateTitle string
}

func (f *fakeEventService) CreateEvent(ctx context.Context, actor domain.Actor, title, description string, eventDate time.Time, location string) (*domain.Event, error) {
	f.lastActor = actor
	f.lastCreateTitle = title
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createdEvent != nil {
		return f.createdEvent, nil
	}
	return &domain.Event{ID: "ev-created", Title: title, Description: description, EventDate: eventDate, Location: location, CreatedBy: actor.ID}, nil
}

func (f *fakeEventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	f.lastEventID = eventID
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeEventService) ListUpcomingEvents(ctx context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, actor domain.Actor, eventID string, upd domain.EventUpdate) (*domain.Event, error) {
	f.lastActor = actor
	f.lastEventID = eventID
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateResult, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, actor domain.Actor, eventID string) error {
	f.lastActor = actor
	f.lastEventID = eventID
	return f.deleteErr
}

func (f *fakeEventService) RegisterForEvent(ctx context.Context, actor domain.Actor, eventID string) (*domain.Registration, error) {
	f.lastActor = actor
	f.lastEventID = eventID
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	if f.registerResult != nil {
		return f.registerResult, nil
	}
	return &domain.Registration{ID: "reg-created", EventID: eventID, StudentID: actor.ID}, nil
}

func (f *fakeEventService) ListEventRegistrations(ctx context.Context, eventID string) ([]*domain.RegisteredStudent, error) {
	f.lastEventID = eventID
	if f.listRegsErr != nil {
		return nil, f.listRegsErr
	}
	return f.listRegsResult, nil
}

// fakeAttendanceService implements domain.AttendanceService for handler tests.
type fakeAttendanceService struct {
	markErr     error
	markResult  *domain.Attendance
	listErr     error
	listResult  []*domain.AttendedStudent
	lastEventID string
	lastActor   domain.Actor
	lastQRData  string
}

func (f *fakeAttendanceService) MarkAttendance(ctx context.Context, actor domain.Actor, eventID, qrData string) (*domain.Attendance, error) {
	f.lastActor = actor
	f.lastEventID = eventID
	f.lastQRData = qrData
	if f.markErr != nil {
		return nil, f.markErr
	}
	if f.markResult != nil {
		return f.markResult, nil
	}
	return &domain.Attendance{ID: "att-created", EventID: eventID, StudentID: "stu-1", MarkedBy: actor.ID, QRData: qrData}, nil
}

func (f *fakeAttendanceService) ListEventAttendance(ctx context.Context, eventID string) ([]*domain.AttendedStudent, error) {
	f.lastEventID = eventID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

// fakeFeedbackService implements domain.FeedbackService for handler tests.
type fakeFeedbackService struct {
	submitErr    error
	submitResult *domain.Feedback
	listErr      error
	listResult   []*domain.FeedbackEntry
	lastEventID  string
	lastActor    domain.Actor
	lastRating   int
	lastComment  string
}

func (f *fakeFeedbackService) SubmitFeedback(ctx context.Context, actor domain.Actor, eventID string, rating int, comment string) (*domain.Feedback, error) {
	f.lastActor = actor
	f.lastEventID = eventID
	f.lastRating = rating
	f.lastComment = comment
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	if f.submitResult != nil {
		return f.submitResult, nil
	}
	return &domain.Feedback{ID: "fb-created", EventID: eventID, StudentID: actor.ID, Rating: rating, Comment: comment}, nil
}

func (f *fakeFeedbackService) ListEventFeedback(ctx context.Context, eventID string) ([]*domain.FeedbackEntry, error) {
	f.lastEventID = eventID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

// fakeUserService implements domain.UserService for handler tests.
type fakeUserService struct {
	signUpErr    error
	signUpResult *domain.User
	loginErr     error
	loginToken   string
	loginUser    *domain.User
	getErr       error
	getResult    *domain.User
	badgeErr     error
	badgeResult  string
	lastEmail    string
	lastRole     domain.Role
	lastUserID   string
}

func (f *fakeUserService) SignUp(ctx context.Context, email, password, fullName string, role domain.Role, studentID string) (*domain.User, error) {
	f.lastEmail = email
	f.lastRole = role
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	if f.signUpResult != nil {
		return f.signUpResult, nil
	}
	return &domain.User{ID: "user-created", Email: email, FullName: fullName, Role: role, StudentID: studentID}, nil
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	f.lastEmail = email
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return f.loginToken, f.loginUser, nil
}

func (f *fakeUserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	f.lastUserID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeUserService) StudentQRBadge(ctx context.Context, userID string) (string, error) {
	f.lastUserID = userID
	if f.badgeErr != nil {
		return "", f.badgeErr
	}
	return f.badgeResult, nil
}

// fakeAnalyticsService implements domain.AnalyticsService for handler tests.
type fakeAnalyticsService struct {
	statsErr      error
	statsResult   *domain.StudentAttendanceStats
	reportErr     error
	reportResult  *domain.EventParticipationReport
	lastStudentID string
	lastEventID   string
}

func (f *fakeAnalyticsService) StudentAttendanceStats(ctx context.Context, studentID string) (*domain.StudentAttendanceStats, error) {
	f.lastStudentID = studentID
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.statsResult, nil
}

func (f *fakeAnalyticsService) EventParticipationReport(ctx context.Context, eventID string) (*domain.EventParticipationReport, error) {
	f.lastEventID = eventID
	if f.reportErr != nil {
		return nil, f.reportErr
	}
	return f.reportResult, nil
}
