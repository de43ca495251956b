package domain

import (
	"context"
	"time"
)

// Rating bounds for event feedback.
const (
	MinRating = 1
	MaxRating = 5
)

// Feedback represents a student's one-time feedback on an attended event.
// swagger:model Feedback
type Feedback struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	StudentID   string    `json:"student_id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewFeedback creates a new Feedback. ID is typically set by the repository on create.
func NewFeedback(eventID, studentID string, rating int, comment string, submittedAt time.Time) *Feedback {
	return &Feedback{
		EventID:     eventID,
		StudentID:   studentID,
		Rating:      rating,
		Comment:     comment,
		SubmittedAt: submittedAt,
	}
}

// FeedbackEntry is a row of an event's feedback list, joined with the
// student's name for display.
type FeedbackEntry struct {
	ID          string    `json:"id"`
	StudentName string    `json:"student_name"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// FeedbackRepository defines storage operations for event feedback.
// Create returns ErrDuplicateFeedback when the unique (event_id, student_id)
// constraint is violated.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *Feedback) error
	ExistsByEventAndStudent(ctx context.Context, eventID, studentID string) (bool, error)
	ListByEvent(ctx context.Context, eventID string) ([]*FeedbackEntry, error)
}

// FeedbackService accepts and lists event feedback.
type FeedbackService interface {
	// SubmitFeedback records the student's rating and comment for an event
	// they attended. One submission per (event, student) pair.
	SubmitFeedback(ctx context.Context, actor Actor, eventID string, rating int, comment string) (*Feedback, error)
	ListEventFeedback(ctx context.Context, eventID string) ([]*FeedbackEntry, error)
}
