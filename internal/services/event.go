package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"campusevents/internal/domain"
)

type eventService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	userRepo         domain.UserRepository
	emailService     domain.EmailService
	now              func() time.Time
}

// NewEventService creates an EventService with the given repositories.
// emailService may be nil to disable registration confirmation emails.
// now is the clock used for timestamps; nil defaults to time.Now.
func NewEventService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	userRepo domain.UserRepository,
	emailService domain.EmailService,
	now func() time.Time,
) domain.EventService {
	if now == nil {
		now = time.Now
	}
	return &eventService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
		emailService:     emailService,
		now:              now,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, actor domain.Actor, title, description string, eventDate time.Time, location string) (*domain.Event, error) {
	if !domain.MayPerform(actor.Role, domain.ActionCreateEvent) {
		return nil, domain.ErrForbidden
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrInvalidInput
	}

	now := s.now()
	event := domain.NewEvent(title, description, eventDate, location, actor.ID, now, now)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListUpcomingEvents(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.ListUpcoming(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, actor domain.Actor, eventID string, upd domain.EventUpdate) (*domain.Event, error) {
	if !domain.MayPerform(actor.Role, domain.ActionUpdateEvent) {
		return nil, domain.ErrForbidden
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	// Only the creator may touch the event, with an admin override.
	if event.CreatedBy != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	updated, err := s.eventRepo.Update(ctx, eventID, upd, s.now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, actor domain.Actor, eventID string) error {
	if !domain.MayPerform(actor.Role, domain.ActionDeleteEvent) {
		return domain.ErrForbidden
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if event.CreatedBy != actor.ID && actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) RegisterForEvent(ctx context.Context, actor domain.Actor, eventID string) (*domain.Registration, error) {
	if !domain.MayPerform(actor.Role, domain.ActionRegisterForEvent) {
		return nil, domain.ErrForbidden
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	// Fast-fail duplicate check; the unique constraint on
	// (event_id, student_id) is the authoritative guard.
	exists, err := s.registrationRepo.ExistsByEventAndStudent(ctx, eventID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("check registration: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateRegistration
	}

	reg := domain.NewRegistration(eventID, actor.ID, s.now())
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			return nil, domain.ErrDuplicateRegistration
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.sendConfirmation(ctx, event, actor)
	return reg, nil
}

// sendConfirmation emails the student after a successful registration.
// Best-effort: failures are logged and never fail the registration.
func (s *eventService) sendConfirmation(ctx context.Context, event *domain.Event, actor domain.Actor) {
	if s.emailService == nil {
		return
	}
	name := actor.Email
	if user, err := s.userRepo.GetByID(ctx, actor.ID); err == nil && user.FullName != "" {
		name = user.FullName
	}
	data := &domain.RegistrationEmailData{
		Email:       actor.Email,
		StudentName: name,
		EventTitle:  event.Title,
		EventDate:   event.EventDate.Format("Mon, 02 Jan 2006 15:04"),
		Location:    event.Location,
	}
	if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
		log.Printf("[EMAIL] registration confirmation to %s failed: %v", actor.Email, err)
	}
}

func (s *eventService) ListEventRegistrations(ctx context.Context, eventID string) ([]*domain.RegisteredStudent, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	students, err := s.registrationRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return students, nil
}
