package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/dino-pet-server/internal/logger"
	"github.com/sbilibin2017/dino-pet-server/internal/models"
)

// SaveReadRepository handles save read operations.
type SaveReadRepository struct {
	db *sqlx.DB
}

func NewSaveReadRepository(db *sqlx.DB) *SaveReadRepository {
	return &SaveReadRepository{db: db}
}

// Get returns the persisted save record for a user, or (nil, nil) when the user
// has never persisted. The caller synthesizes the default document in that case.
func (r *SaveReadRepository) Get(ctx context.Context, userID models.UserID) (*models.SaveRecord, error) {
	const query = `
		SELECT user_id, revision, updated_at, save_json
		FROM saves
		WHERE user_id = $1
	`

	var record models.SaveRecord
	err := r.db.GetContext(ctx, &record, query, userID)

	logger.Log.Infow("save lookup",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// SaveWriteRepository handles save write operations.
type SaveWriteRepository struct {
	db *sqlx.DB
}

func NewSaveWriteRepository(db *sqlx.DB) *SaveWriteRepository {
	return &SaveWriteRepository{db: db}
}

// Upsert persists the serialized document, incrementing the revision by exactly
// one in the same statement. The single INSERT ... ON CONFLICT DO UPDATE makes
// the read-increment-write atomic: concurrent persists for the same user
// serialize to revision N+1, N+2, never two N+1s.
func (r *SaveWriteRepository) Upsert(ctx context.Context, userID models.UserID, saveJSON string) (*models.SaveRecord, error) {
	const query = `
		INSERT INTO saves (user_id, revision, updated_at, save_json)
		VALUES ($1, 1, NOW(), $2)
		ON CONFLICT (user_id) DO UPDATE
		SET revision = saves.revision + 1,
		    updated_at = EXCLUDED.updated_at,
		    save_json = EXCLUDED.save_json
		RETURNING user_id, revision, updated_at, save_json
	`

	var record models.SaveRecord
	err := r.db.GetContext(ctx, &record, query, userID, saveJSON)

	logger.Log.Infow("save upsert",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"revision", record.Revision,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &record, nil
}
