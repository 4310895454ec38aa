package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sbilibin2017/dino-pet-server/internal/dinos"
	"github.com/sbilibin2017/dino-pet-server/internal/logger"
	"github.com/sbilibin2017/dino-pet-server/internal/models"
	"github.com/sbilibin2017/dino-pet-server/internal/pet"
)

// ErrUnknownDino is returned when a player picks a slug missing from the catalog.
var ErrUnknownDino = errors.New("unknown dino selection")

// SaveReader defines read operations for save records.
type SaveReader interface {
	Get(ctx context.Context, userID models.UserID) (*models.SaveRecord, error)
}

// SaveWriter defines the atomic revision-incrementing upsert.
type SaveWriter interface {
	Upsert(ctx context.Context, userID models.UserID, saveJSON string) (*models.SaveRecord, error)
}

// SaveService loads and persists per-user save documents.
type SaveService struct {
	reader SaveReader
	writer SaveWriter
}

// NewSaveService creates a new SaveService.
func NewSaveService(reader SaveReader, writer SaveWriter) *SaveService {
	return &SaveService{reader: reader, writer: writer}
}

// SaveResult pairs the sanitized document with its revision metadata.
type SaveResult struct {
	Payload   pet.Save
	Revision  models.Revision
	UpdatedAt time.Time
}

// Load returns the user's save. When the user has never persisted, a default
// document with revision 0 is synthesized without writing anything; the default
// is materialized only on the first explicit persist.
func (svc *SaveService) Load(ctx context.Context, userID models.UserID) (*SaveResult, error) {
	record, err := svc.reader.Get(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load save", "user_id", userID, "err", err)
		return nil, err
	}

	if record == nil {
		return &SaveResult{
			Payload:   pet.DefaultSave(),
			Revision:  0,
			UpdatedAt: time.Now().UTC(),
		}, nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(record.SaveJSON), &decoded); err != nil {
		// A corrupt row still loads: sanitization substitutes defaults.
		logger.Log.Errorw("stored save is not valid JSON", "user_id", userID, "err", err)
	}

	return &SaveResult{
		Payload:   pet.Sanitize(decoded),
		Revision:  record.Revision,
		UpdatedAt: record.UpdatedAt,
	}, nil
}

// Persist sanitizes the raw payload and upserts it, bumping the revision by
// exactly one. Malformed input never fails; it is normalized instead.
func (svc *SaveService) Persist(ctx context.Context, userID models.UserID, payload any) (*SaveResult, error) {
	parsed := pet.Sanitize(payload)

	data, err := json.Marshal(parsed)
	if err != nil {
		logger.Log.Errorw("failed to marshal save", "user_id", userID, "err", err)
		return nil, err
	}

	record, err := svc.writer.Upsert(ctx, userID, string(data))
	if err != nil {
		logger.Log.Errorw("failed to persist save", "user_id", userID, "err", err)
		return nil, err
	}

	return &SaveResult{
		Payload:   parsed,
		Revision:  record.Revision,
		UpdatedAt: record.UpdatedAt,
	}, nil
}

// SetActiveDino validates the slug against the catalog and persists the current
// save with the new active dino.
func (svc *SaveService) SetActiveDino(ctx context.Context, userID models.UserID, slug string) (*SaveResult, error) {
	dino := dinos.FindBySlug(slug)
	if dino == nil {
		return nil, ErrUnknownDino
	}

	current, err := svc.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := current.Payload
	updated.ActiveDinoSlug = dino.Slug

	data, err := json.Marshal(updated)
	if err != nil {
		logger.Log.Errorw("failed to marshal save", "user_id", userID, "err", err)
		return nil, err
	}

	record, err := svc.writer.Upsert(ctx, userID, string(data))
	if err != nil {
		logger.Log.Errorw("failed to persist save", "user_id", userID, "err", err)
		return nil, err
	}

	return &SaveResult{
		Payload:   updated,
		Revision:  record.Revision,
		UpdatedAt: record.UpdatedAt,
	}, nil
}
