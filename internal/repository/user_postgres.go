package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jaekwang-park/compliance-api/internal/model"
)

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUser(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) GetOrCreate(ctx context.Context, cognitoSub, email, username string) (model.User, error) {
	query := `
		INSERT INTO users (id, cognito_sub, email, username)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (cognito_sub) DO UPDATE SET email = EXCLUDED.email, username = EXCLUDED.username
		RETURNING id, cognito_sub, email, username, created_at, updated_at`

	row := r.db.QueryRowContext(ctx, query, uuid.NewString(), cognitoSub, email, username)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, userID string) (model.User, error) {
	query := `
		SELECT id, cognito_sub, email, username, created_at, updated_at
		FROM users
		WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, userID)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByCognitoSub(ctx context.Context, cognitoSub string) (model.User, error) {
	query := `
		SELECT id, cognito_sub, email, username, created_at, updated_at
		FROM users
		WHERE cognito_sub = $1`

	row := r.db.QueryRowContext(ctx, query, cognitoSub)
	return scanUser(row)
}

func (r *PostgresUserRepository) Update(ctx context.Context, user model.User) (model.User, error) {
	query := `
		UPDATE users
		SET username = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, cognito_sub, email, username, created_at, updated_at`

	row := r.db.QueryRowContext(ctx, query, user.Username, user.ID)
	return scanUser(row)
}

func scanUser(row scannable) (model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.CognitoSub, &u.Email, &u.Username,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to scan user: %w", err)
	}
	return u, nil
}

var _ UserRepository = (*PostgresUserRepository)(nil)
