package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusevents/internal/domain"
)

func TestAnalyticsService_StudentAttendanceStats(t *testing.T) {
	regRepo := newMemRegistrationRepo()
	attRepo := newMemAttendanceRepo()
	svc := NewAnalyticsService(regRepo, attRepo)

	base := time.Date(2025, 2, 1, 18, 0, 0, 0, time.UTC)
	// Registered for 4 events, attended 3.
	for i := 1; i <= 4; i++ {
		eventID := fmt.Sprintf("ev-%d", i)
		require.NoError(t, regRepo.Create(context.Background(), domain.NewRegistration(eventID, "stu-1", base)))
		attRepo.titles[eventID] = fmt.Sprintf("Event %d", i)
		attRepo.dates[eventID] = base.AddDate(0, 0, i)
	}
	for i := 1; i <= 3; i++ {
		eventID := fmt.Sprintf("ev-%d", i)
		att := domain.NewAttendance(eventID, "stu-1", "fac-1", "badge", base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, attRepo.Create(context.Background(), att))
	}

	stats, err := svc.StudentAttendanceStats(context.Background(), "stu-1")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalEventsRegistered)
	assert.Equal(t, 3, stats.TotalEventsAttended)
	assert.Equal(t, 75.0, stats.AttendancePercentage)

	// Recent attendance comes back most recently marked first.
	require.Len(t, stats.RecentAttendance, 3)
	assert.Equal(t, "Event 3", stats.RecentAttendance[0].EventTitle)
	assert.Equal(t, "Event 2", stats.RecentAttendance[1].EventTitle)
	assert.Equal(t, "Event 1", stats.RecentAttendance[2].EventTitle)
}

func TestAnalyticsService_StudentAttendanceStats_NoRegistrations(t *testing.T) {
	svc := NewAnalyticsService(newMemRegistrationRepo(), newMemAttendanceRepo())

	stats, err := svc.StudentAttendanceStats(context.Background(), "stu-unknown")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalEventsRegistered)
	assert.Equal(t, 0, stats.TotalEventsAttended)
	assert.Equal(t, 0.0, stats.AttendancePercentage)
	assert.Empty(t, stats.RecentAttendance)
}

func TestAnalyticsService_StudentAttendanceStats_Rounding(t *testing.T) {
	regRepo := newMemRegistrationRepo()
	attRepo := newMemAttendanceRepo()
	svc := NewAnalyticsService(regRepo, attRepo)

	base := time.Date(2025, 2, 1, 18, 0, 0, 0, time.UTC)
	// 1 of 3 attended: 33.333... rounds to 33.33.
	for i := 1; i <= 3; i++ {
		require.NoError(t, regRepo.Create(context.Background(), domain.NewRegistration(fmt.Sprintf("ev-%d", i), "stu-1", base)))
	}
	require.NoError(t, attRepo.Create(context.Background(), domain.NewAttendance("ev-1", "stu-1", "fac-1", "badge", base)))

	stats, err := svc.StudentAttendanceStats(context.Background(), "stu-1")
	require.NoError(t, err)
	assert.Equal(t, 33.33, stats.AttendancePercentage)
}

func TestAnalyticsService_EventParticipationReport(t *testing.T) {
	regRepo := newMemRegistrationRepo()
	attRepo := newMemAttendanceRepo()
	svc := NewAnalyticsService(regRepo, attRepo)

	base := time.Date(2025, 2, 1, 18, 0, 0, 0, time.UTC)
	// 10 registrations, 4 attendances.
	for i := 1; i <= 10; i++ {
		studentID := fmt.Sprintf("stu-%d", i)
		require.NoError(t, regRepo.Create(context.Background(), domain.NewRegistration("ev-1", studentID, base)))
	}
	for i := 1; i <= 4; i++ {
		studentID := fmt.Sprintf("stu-%d", i)
		require.NoError(t, attRepo.Create(context.Background(), domain.NewAttendance("ev-1", studentID, "fac-1", "badge", base)))
	}

	report, err := svc.EventParticipationReport(context.Background(), "ev-1")
	require.NoError(t, err)
	assert.Equal(t, "ev-1", report.EventID)
	assert.Equal(t, 10, report.TotalRegistered)
	assert.Equal(t, 4, report.TotalAttended)
	assert.Equal(t, 40.0, report.AttendanceRate)
}

func TestAnalyticsService_EventParticipationReport_Empty(t *testing.T) {
	svc := NewAnalyticsService(newMemRegistrationRepo(), newMemAttendanceRepo())

	report, err := svc.EventParticipationReport(context.Background(), "ev-empty")
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalRegistered)
	assert.Equal(t, 0, report.TotalAttended)
	assert.Equal(t, 0.0, report.AttendanceRate)
}
