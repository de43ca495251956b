package domain

import (
	"context"
	"time"
)

// Attendance represents a student's verified presence at an event.
// MarkedBy is the faculty/admin user who scanned the badge; QRData is the raw
// consumed badge payload, kept for audit.
// swagger:model Attendance
type Attendance struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	StudentID string    `json:"student_id"`
	MarkedBy  string    `json:"marked_by"`
	QRData    string    `json:"qr_data"`
	MarkedAt  time.Time `json:"marked_at"`
}

// NewAttendance creates a new Attendance. ID is typically set by the repository on create.
func NewAttendance(eventID, studentID, markedBy, qrData string, markedAt time.Time) *Attendance {
	return &Attendance{
		EventID:   eventID,
		StudentID: studentID,
		MarkedBy:  markedBy,
		QRData:    qrData,
		MarkedAt:  markedAt,
	}
}

// AttendedStudent is a row of an event's attendance sheet (faculty read path).
type AttendedStudent struct {
	UserID    string    `json:"user_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	StudentID string    `json:"student_id"`
	MarkedAt  time.Time `json:"marked_at"`
}

// RecentAttendance is one entry of a student's recent attendance history,
// joined with the event for display.
type RecentAttendance struct {
	EventTitle string    `json:"event_title"`
	EventDate  time.Time `json:"event_date"`
	MarkedAt   time.Time `json:"marked_at"`
}

// AttendanceRepository defines storage operations for attendance records.
// Create returns ErrDuplicateAttendance when the unique (event_id, student_id)
// constraint is violated.
type AttendanceRepository interface {
	Create(ctx context.Context, att *Attendance) error
	ExistsByEventAndStudent(ctx context.Context, eventID, studentID string) (bool, error)
	ListByEvent(ctx context.Context, eventID string) ([]*AttendedStudent, error)
	// ListRecentByStudent returns up to limit attendances for the student,
	// most recently marked first.
	ListRecentByStudent(ctx context.Context, studentID string, limit int) ([]*RecentAttendance, error)
	CountByEvent(ctx context.Context, eventID string) (int, error)
	CountByStudent(ctx context.Context, studentID string) (int, error)
}

// AttendanceService marks attendance from scanned QR badges.
type AttendanceService interface {
	// MarkAttendance validates the scanned badge and records attendance for
	// the student it identifies. A prior registration is not required.
	MarkAttendance(ctx context.Context, actor Actor, eventID, qrData string) (*Attendance, error)
	ListEventAttendance(ctx context.Context, eventID string) ([]*AttendedStudent, error)
}
