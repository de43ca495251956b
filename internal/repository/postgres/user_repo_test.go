package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"campusevents/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		user    *domain.User
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			user: &domain.User{Email: "ada@campus.edu", FullName: "Ada Lovelace", Role: domain.RoleStudent, StudentID: "STU-001", PasswordHash: "hash", Salt: "salt", CreatedAt: createdAt},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users \(email, full_name, role, student_id, password_hash, salt, created_at\)`).
					WithArgs("ada@campus.edu", "Ada Lovelace", domain.RoleStudent, sql.NullString{String: "STU-001", Valid: true}, "hash", "salt", createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-uuid-1"))
			},
			wantID: "user-uuid-1",
		},
		{
			name: "faculty stores null student_id",
			user: &domain.User{Email: "prof@campus.edu", FullName: "Prof", Role: domain.RoleFaculty, PasswordHash: "hash", Salt: "salt", CreatedAt: createdAt},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("prof@campus.edu", "Prof", domain.RoleFaculty, sql.NullString{}, "hash", "salt", createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-uuid-2"))
			},
			wantID: "user-uuid-2",
		},
		{
			name: "unique violation maps to duplicate email",
			user: &domain.User{Email: "ada@campus.edu", FullName: "Ada", Role: domain.RoleStudent, StudentID: "STU-001", CreatedAt: createdAt},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})
			},
			wantErr: domain.ErrDuplicateEmail,
		},
		{
			name: "other db error passes through",
			user: &domain.User{Email: "ada@campus.edu", FullName: "Ada", Role: domain.RoleStudent, StudentID: "STU-001", CreatedAt: createdAt},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			err = repo.Create(ctx, tt.user)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.user.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, email, full_name, role`).
			WithArgs("ada@campus.edu").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name", "role", "student_id", "password_hash", "salt", "created_at"}).
				AddRow("user-1", "ada@campus.edu", "Ada Lovelace", "STUDENT", "STU-001", "hash", "salt", createdAt))

		repo := NewUserRepository(db)
		user, err := repo.GetByEmail(ctx, "ada@campus.edu")
		require.NoError(t, err)
		require.Equal(t, "user-1", user.ID)
		require.Equal(t, domain.RoleStudent, user.Role)
		require.Equal(t, "STU-001", user.StudentID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, email, full_name, role`).
			WithArgs("ghost@campus.edu").
			WillReturnError(sql.ErrNoRows)

		repo := NewUserRepository(db)
		_, err = repo.GetByEmail(ctx, "ghost@campus.edu")
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
