package domain

import (
	"context"
	"time"
)

// Registration represents a student's registration for an event.
// At most one registration exists per (event, student) pair; the pair is
// unique-constrained at the storage level.
// swagger:model Registration
type Registration struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	StudentID    string    `json:"student_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

// NewRegistration creates a new Registration. ID is typically set by the repository on create.
func NewRegistration(eventID, studentID string, registeredAt time.Time) *Registration {
	return &Registration{
		EventID:      eventID,
		StudentID:    studentID,
		RegisteredAt: registeredAt,
	}
}

// RegistrationRepository defines storage operations for event registrations.
// Create returns ErrDuplicateRegistration when the unique (event_id, student_id)
// constraint is violated; that constraint is the authoritative idempotency guard.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	ExistsByEventAndStudent(ctx context.Context, eventID, studentID string) (bool, error)
	ListByEvent(ctx context.Context, eventID string) ([]*RegisteredStudent, error)
	CountByEvent(ctx context.Context, eventID string) (int, error)
	CountByStudent(ctx context.Context, studentID string) (int, error)
}
