package domain

import (
	"context"
	"time"
)

// Event represents a campus event
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	Location    string    `json:"location"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(title, description string, eventDate time.Time, location, createdBy string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		EventDate:   eventDate,
		Location:    location,
		CreatedBy:   createdBy,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventUpdate carries the mutable event fields for an update. Nil means keep.
type EventUpdate struct {
	Title       *string
	Description *string
	EventDate   *time.Time
	Location    *string
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	ListUpcoming(ctx context.Context, after time.Time) ([]*Event, error)
	Update(ctx context.Context, id string, upd EventUpdate, updatedAt time.Time) (*Event, error)
	// Delete removes the event. Registrations, attendance, and feedback rows
	// follow through ON DELETE CASCADE at the storage level.
	Delete(ctx context.Context, id string) error
}

// RegisteredStudent is a row of an event's registration list (faculty read path).
type RegisteredStudent struct {
	UserID       string    `json:"user_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	StudentID    string    `json:"student_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

// EventService defines event lifecycle operations and student registration.
type EventService interface {
	CreateEvent(ctx context.Context, actor Actor, title, description string, eventDate time.Time, location string) (*Event, error)
	GetEventByID(ctx context.Context, eventID string) (*Event, error)
	ListUpcomingEvents(ctx context.Context) ([]*Event, error)
	UpdateEvent(ctx context.Context, actor Actor, eventID string, upd EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, actor Actor, eventID string) error

	// RegisterForEvent records the student's interest in the event.
	RegisterForEvent(ctx context.Context, actor Actor, eventID string) (*Registration, error)
	// ListEventRegistrations returns the registration sheet for an event.
	ListEventRegistrations(ctx context.Context, eventID string) ([]*RegisteredStudent, error)
}
