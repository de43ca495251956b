package domain

import "context"

// StudentAttendanceStats summarizes a student's participation across events.
// AttendancePercentage is attended/registered, rounded to two decimals; 0 when
// the student has no registrations.
type StudentAttendanceStats struct {
	TotalEventsRegistered int                 `json:"totalEventsRegistered"`
	TotalEventsAttended   int                 `json:"totalEventsAttended"`
	AttendancePercentage  float64             `json:"attendancePercentage"`
	RecentAttendance      []*RecentAttendance `json:"recentAttendance"`
}

// EventParticipationReport summarizes one event's turnout.
// AttendanceRate uses the same two-decimal rounding as the student percentage.
type EventParticipationReport struct {
	EventID         string  `json:"eventId"`
	TotalRegistered int     `json:"totalRegistered"`
	TotalAttended   int     `json:"totalAttended"`
	AttendanceRate  float64 `json:"attendanceRate"`
}

// AnalyticsService computes read-only participation statistics from
// registration and attendance records.
type AnalyticsService interface {
	StudentAttendanceStats(ctx context.Context, studentID string) (*StudentAttendanceStats, error)
	EventParticipationReport(ctx context.Context, eventID string) (*EventParticipationReport, error)
}
