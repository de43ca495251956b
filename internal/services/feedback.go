package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campusevents/internal/domain"
)

type feedbackService struct {
	feedbackRepo   domain.FeedbackRepository
	attendanceRepo domain.AttendanceRepository
	eventRepo      domain.EventRepository
	now            func() time.Time
}

// NewFeedbackService creates a FeedbackService. now is the clock used for
// submitted-at timestamps; nil defaults to time.Now.
func NewFeedbackService(
	feedbackRepo domain.FeedbackRepository,
	attendanceRepo domain.AttendanceRepository,
	eventRepo domain.EventRepository,
	now func() time.Time,
) domain.FeedbackService {
	if now == nil {
		now = time.Now
	}
	return &feedbackService{
		feedbackRepo:   feedbackRepo,
		attendanceRepo: attendanceRepo,
		eventRepo:      eventRepo,
		now:            now,
	}
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, actor domain.Actor, eventID string, rating int, comment string) (*domain.Feedback, error) {
	if !domain.MayPerform(actor.Role, domain.ActionSubmitFeedback) {
		return nil, domain.ErrForbidden
	}
	if rating < domain.MinRating || rating > domain.MaxRating {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	// Feedback is only open to students who attended.
	attended, err := s.attendanceRepo.ExistsByEventAndStudent(ctx, eventID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("check attendance: %w", err)
	}
	if !attended {
		return nil, domain.ErrNotAttended
	}

	// Fast-fail duplicate check; the unique constraint on
	// (event_id, student_id) is the authoritative guard.
	exists, err := s.feedbackRepo.ExistsByEventAndStudent(ctx, eventID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("check feedback: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateFeedback
	}

	fb := domain.NewFeedback(eventID, actor.ID, rating, strings.TrimSpace(comment), s.now())
	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		if errors.Is(err, domain.ErrDuplicateFeedback) {
			return nil, domain.ErrDuplicateFeedback
		}
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return fb, nil
}

func (s *feedbackService) ListEventFeedback(ctx context.Context, eventID string) ([]*domain.FeedbackEntry, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	entries, err := s.feedbackRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return entries, nil
}
