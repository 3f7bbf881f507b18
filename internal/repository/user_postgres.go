package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jaekwang-park/userpool-auth/internal/model"
)

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUser(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// RecordSignIn creates the user on first sign-in and otherwise refreshes the
// username, email and sign-in counters.
func (r *PostgresUserRepository) RecordSignIn(ctx context.Context, cognitoSub, username, email string) (model.User, error) {
	query := `
		INSERT INTO users (cognito_sub, username, email, sign_in_count, last_sign_in_at)
		VALUES ($1, $2, $3, 1, now())
		ON CONFLICT (cognito_sub) DO UPDATE
		SET username = EXCLUDED.username,
		    email = EXCLUDED.email,
		    sign_in_count = users.sign_in_count + 1,
		    last_sign_in_at = now(),
		    updated_at = now()
		RETURNING id, cognito_sub, username, email, sign_in_count, last_sign_in_at, created_at, updated_at`

	row := r.db.QueryRowContext(ctx, query, cognitoSub, username, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByCognitoSub(ctx context.Context, cognitoSub string) (model.User, error) {
	query := `
		SELECT id, cognito_sub, username, email, sign_in_count, last_sign_in_at, created_at, updated_at
		FROM users
		WHERE cognito_sub = $1`

	row := r.db.QueryRowContext(ctx, query, cognitoSub)
	return scanUser(row)
}

type scannable interface {
	Scan(dest ...any) error
}

func scanUser(row scannable) (model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.CognitoSub, &u.Username, &u.Email,
		&u.SignInCount, &u.LastSignInAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to scan user: %w", err)
	}
	return u, nil
}

var _ UserRepository = (*PostgresUserRepository)(nil)
