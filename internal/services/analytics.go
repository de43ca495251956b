package services

import (
	"context"
	"fmt"
	"math"

	"campusevents/internal/domain"
)

const recentAttendanceLimit = 5

type analyticsService struct {
	registrationRepo domain.RegistrationRepository
	attendanceRepo   domain.AttendanceRepository
}

// NewAnalyticsService creates a read-only AnalyticsService over the same
// registration and attendance records the workflow writes.
func NewAnalyticsService(
	registrationRepo domain.RegistrationRepository,
	attendanceRepo domain.AttendanceRepository,
) domain.AnalyticsService {
	return &analyticsService{
		registrationRepo: registrationRepo,
		attendanceRepo:   attendanceRepo,
	}
}

func (s *analyticsService) StudentAttendanceStats(ctx context.Context, studentID string) (*domain.StudentAttendanceStats, error) {
	registered, err := s.registrationRepo.CountByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}
	attended, err := s.attendanceRepo.CountByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("count attendance: %w", err)
	}

	recent, err := s.attendanceRepo.ListRecentByStudent(ctx, studentID, recentAttendanceLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent attendance: %w", err)
	}
	if recent == nil {
		recent = []*domain.RecentAttendance{}
	}

	return &domain.StudentAttendanceStats{
		TotalEventsRegistered: registered,
		TotalEventsAttended:   attended,
		AttendancePercentage:  rate(attended, registered),
		RecentAttendance:      recent,
	}, nil
}

func (s *analyticsService) EventParticipationReport(ctx context.Context, eventID string) (*domain.EventParticipationReport, error) {
	registered, err := s.registrationRepo.CountByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}
	attended, err := s.attendanceRepo.CountByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("count attendance: %w", err)
	}

	return &domain.EventParticipationReport{
		EventID:         eventID,
		TotalRegistered: registered,
		TotalAttended:   attended,
		AttendanceRate:  rate(attended, registered),
	}, nil
}

// rate returns attended/registered as a percentage rounded to two decimals,
// or 0 when there are no registrations. Both analytics use the same rounding.
func rate(attended, registered int) float64 {
	if registered <= 0 {
		return 0
	}
	p := float64(attended) * 100.0 / float64(registered)
	return math.Round(p*100) / 100
}
