package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusevents/internal/domain"
)

type attendanceService struct {
	attendanceRepo domain.AttendanceRepository
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	codec          domain.QRCodec
	now            func() time.Time
}

// NewAttendanceService creates an AttendanceService. now is the clock used for
// marked-at timestamps; nil defaults to time.Now.
func NewAttendanceService(
	attendanceRepo domain.AttendanceRepository,
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	codec domain.QRCodec,
	now func() time.Time,
) domain.AttendanceService {
	if now == nil {
		now = time.Now
	}
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		codec:          codec,
		now:            now,
	}
}

func (s *attendanceService) MarkAttendance(ctx context.Context, actor domain.Actor, eventID, qrData string) (*domain.Attendance, error) {
	if !domain.MayPerform(actor.Role, domain.ActionMarkAttendance) {
		return nil, domain.ErrForbidden
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	badge, err := s.codec.Decode(qrData)
	if err != nil {
		return nil, domain.ErrInvalidQRFormat
	}

	student, err := s.userRepo.GetByID(ctx, badge.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	if student.Role != domain.RoleStudent {
		return nil, domain.ErrNotAStudent
	}

	// Fast-fail duplicate check; the unique constraint on
	// (event_id, student_id) is the authoritative guard.
	exists, err := s.attendanceRepo.ExistsByEventAndStudent(ctx, eventID, student.ID)
	if err != nil {
		return nil, fmt.Errorf("check attendance: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateAttendance
	}

	att := domain.NewAttendance(eventID, student.ID, actor.ID, qrData, s.now())
	if err := s.attendanceRepo.Create(ctx, att); err != nil {
		if errors.Is(err, domain.ErrDuplicateAttendance) {
			return nil, domain.ErrDuplicateAttendance
		}
		return nil, fmt.Errorf("create attendance: %w", err)
	}
	return att, nil
}

func (s *attendanceService) ListEventAttendance(ctx context.Context, eventID string) ([]*domain.AttendedStudent, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	students, err := s.attendanceRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return students, nil
}
