package postgres

import (
	"context"
	"database/sql"

	"campusevents/internal/domain"
)

type attendanceRepository struct {
	DB *sql.DB
}

func NewAttendanceRepository(db *sql.DB) domain.AttendanceRepository {
	return &attendanceRepository{
		DB: db,
	}
}

func (r *attendanceRepository) Create(ctx context.Context, att *domain.Attendance) error {
	query := `
		INSERT INTO attendance (event_id, student_id, marked_by, qr_data, marked_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		att.EventID, att.StudentID, att.MarkedBy, att.QRData, att.MarkedAt).
		Scan(&att.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateAttendance
		}
		return err
	}
	return nil
}

func (r *attendanceRepository) ExistsByEventAndStudent(ctx context.Context, eventID, studentID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance WHERE event_id = $1 AND student_id = $2
		)
	`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, eventID, studentID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *attendanceRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.AttendedStudent, error) {
	query := `
		SELECT u.id, u.full_name, u.email, COALESCE(u.student_id, ''), a.marked_at
		FROM attendance a
		JOIN users u ON u.id = a.student_id
		WHERE a.event_id = $1
		ORDER BY a.marked_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*domain.AttendedStudent
	for rows.Next() {
		s := &domain.AttendedStudent{}
		if err := rows.Scan(&s.UserID, &s.FullName, &s.Email, &s.StudentID, &s.MarkedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if students == nil {
		students = []*domain.AttendedStudent{}
	}
	return students, nil
}

func (r *attendanceRepository) ListRecentByStudent(ctx context.Context, studentID string, limit int) ([]*domain.RecentAttendance, error) {
	query := `
		SELECT e.title, e.event_date, a.marked_at
		FROM attendance a
		JOIN events e ON e.id = a.event_id
		WHERE a.student_id = $1
		ORDER BY a.marked_at DESC
		LIMIT $2
	`
	rows, err := r.DB.QueryContext(ctx, query, studentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recent []*domain.RecentAttendance
	for rows.Next() {
		ra := &domain.RecentAttendance{}
		if err := rows.Scan(&ra.EventTitle, &ra.EventDate, &ra.MarkedAt); err != nil {
			return nil, err
		}
		recent = append(recent, ra)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []*domain.RecentAttendance{}
	}
	return recent, nil
}

func (r *attendanceRepository) CountByEvent(ctx context.Context, eventID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attendance WHERE event_id = $1`, eventID).
		Scan(&count)
	return count, err
}

func (r *attendanceRepository) CountByStudent(ctx context.Context, studentID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attendance WHERE student_id = $1`, studentID).
		Scan(&count)
	return count, err
}
