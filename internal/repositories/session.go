package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/dino-pet-server/internal/logger"
	"github.com/sbilibin2017/dino-pet-server/internal/models"
)

// SessionReadRepository handles session read operations.
type SessionReadRepository struct {
	db *sqlx.DB
}

func NewSessionReadRepository(db *sqlx.DB) *SessionReadRepository {
	return &SessionReadRepository{db: db}
}

// GetWithUser joins the session to its owning user. Returns (nil, nil) when the
// session does not exist. Expiry is not checked here; the service layer owns the
// lazy-expiry rule.
func (r *SessionReadRepository) GetWithUser(ctx context.Context, id models.SessionID) (*models.SessionUser, error) {
	const query = `
		SELECT s.id AS session_id,
		       s.user_id AS session_user_id,
		       s.created_at AS session_created_at,
		       s.expires_at AS session_expires_at,
		       u.id, u.username, u.username_norm, u.password_hash, u.created_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1
	`

	var row struct {
		SessionID        models.SessionID `db:"session_id"`
		SessionUserID    models.UserID    `db:"session_user_id"`
		SessionCreatedAt time.Time        `db:"session_created_at"`
		SessionExpiresAt time.Time        `db:"session_expires_at"`
		ID               models.UserID    `db:"id"`
		Username         string           `db:"username"`
		UsernameNorm     string           `db:"username_norm"`
		PasswordHash     string           `db:"password_hash"`
		CreatedAt        time.Time        `db:"created_at"`
	}

	err := r.db.GetContext(ctx, &row, query, id)

	logger.Log.Infow("session lookup",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &models.SessionUser{
		Session: models.Session{
			ID:        row.SessionID,
			UserID:    row.SessionUserID,
			CreatedAt: row.SessionCreatedAt,
			ExpiresAt: row.SessionExpiresAt,
		},
		User: models.User{
			ID:           row.ID,
			Username:     row.Username,
			UsernameNorm: row.UsernameNorm,
			PasswordHash: row.PasswordHash,
			CreatedAt:    row.CreatedAt,
		},
	}, nil
}

// SessionWriteRepository handles session write operations.
type SessionWriteRepository struct {
	db *sqlx.DB
}

func NewSessionWriteRepository(db *sqlx.DB) *SessionWriteRepository {
	return &SessionWriteRepository{db: db}
}

// Save inserts a new session row.
func (r *SessionWriteRepository) Save(ctx context.Context, session models.Session) error {
	const query = `
		INSERT INTO sessions (id, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`
	args := []any{session.ID, session.UserID, session.CreatedAt, session.ExpiresAt}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("session insert",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", session.UserID,
		"error", err,
	)

	return err
}

// Delete removes a session. Deleting a session that does not exist is not an
// error, which keeps concurrent lazy-expiry deletions harmless.
func (r *SessionWriteRepository) Delete(ctx context.Context, id models.SessionID) error {
	const query = `DELETE FROM sessions WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("session delete",
		"query", query,
		"rows_affected", rowsAffected,
		"error", err,
	)

	return err
}
