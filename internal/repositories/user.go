package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/dino-pet-server/internal/logger"
	"github.com/sbilibin2017/dino-pet-server/internal/models"
)

// ErrConflict is returned when an insert violates a uniqueness constraint.
var ErrConflict = errors.New("unique constraint violation")

const pgUniqueViolation = "23505"

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername looks a user up by the normalized form of the given username.
// Returns (nil, nil) when no user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT id, username, username_norm, password_hash, created_at
		FROM users
		WHERE username_norm = $1
	`
	normalized := models.NormalizeUsername(username)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, normalized)

	logger.Log.Infow("user lookup",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{normalized},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. A concurrent insert of the same normalized username
// surfaces as ErrConflict via the username_norm unique constraint.
func (r *UserWriteRepository) Save(ctx context.Context, username, usernameNorm, passwordHash string) (*models.User, error) {
	const query = `
		INSERT INTO users (username, username_norm, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, username_norm, password_hash, created_at
	`
	args := []any{username, usernameNorm, passwordHash, time.Now().UTC()}

	var user models.User
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"username_norm", usernameNorm,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
