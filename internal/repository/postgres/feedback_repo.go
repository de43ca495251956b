package postgres

import (
	"context"
	"database/sql"

	"campusevents/internal/domain"
)

type feedbackRepository struct {
	DB *sql.DB
}

func NewFeedbackRepository(db *sql.DB) domain.FeedbackRepository {
	return &feedbackRepository{
		DB: db,
	}
}

func (r *feedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	query := `
		INSERT INTO event_feedback (event_id, student_id, rating, comment, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		fb.EventID, fb.StudentID, fb.Rating, fb.Comment, fb.SubmittedAt).
		Scan(&fb.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateFeedback
		}
		return err
	}
	return nil
}

func (r *feedbackRepository) ExistsByEventAndStudent(ctx context.Context, eventID, studentID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM event_feedback WHERE event_id = $1 AND student_id = $2
		)
	`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, eventID, studentID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *feedbackRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.FeedbackEntry, error) {
	query := `
		SELECT f.id, u.full_name, f.rating, f.comment, f.submitted_at
		FROM event_feedback f
		JOIN users u ON u.id = f.student_id
		WHERE f.event_id = $1
		ORDER BY f.submitted_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.FeedbackEntry
	for rows.Next() {
		e := &domain.FeedbackEntry{}
		if err := rows.Scan(&e.ID, &e.StudentName, &e.Rating, &e.Comment, &e.SubmittedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.FeedbackEntry{}
	}
	return entries, nil
}
