package postgres

import (
	"context"
	"database/sql"

	"campusevents/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO event_registrations (event_id, student_id, registered_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, reg.EventID, reg.StudentID, reg.RegisteredAt).
		Scan(&reg.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateRegistration
		}
		return err
	}
	return nil
}

func (r *registrationRepository) ExistsByEventAndStudent(ctx context.Context, eventID, studentID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM event_registrations WHERE event_id = $1 AND student_id = $2
		)
	`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, eventID, studentID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *registrationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.RegisteredStudent, error) {
	query := `
		SELECT u.id, u.full_name, u.email, COALESCE(u.student_id, ''), r.registered_at
		FROM event_registrations r
		JOIN users u ON u.id = r.student_id
		WHERE r.event_id = $1
		ORDER BY r.registered_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*domain.RegisteredStudent
	for rows.Next() {
		s := &domain.RegisteredStudent{}
		if err := rows.Scan(&s.UserID, &s.FullName, &s.Email, &s.StudentID, &s.RegisteredAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if students == nil {
		students = []*domain.RegisteredStudent{}
	}
	return students, nil
}

func (r *registrationRepository) CountByEvent(ctx context.Context, eventID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_registrations WHERE event_id = $1`, eventID).
		Scan(&count)
	return count, err
}

func (r *registrationRepository) CountByStudent(ctx context.Context, studentID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_registrations WHERE student_id = $1`, studentID).
		Scan(&count)
	return count, err
}
