package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/dino-pet-server/internal/models"
	"github.com/sbilibin2017/dino-pet-server/internal/pet"
	"github.com/sbilibin2017/dino-pet-server/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveService_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockSaveReader(ctrl)
	mockWriter := services.NewMockSaveWriter(ctrl)
	svc := services.NewSaveService(mockReader, mockWriter)
	ctx := context.Background()

	t.Run("missing row synthesizes default at revision 0 without writing", func(t *testing.T) {
		mockReader.EXPECT().
			Get(gomock.Any(), models.UserID(7)).
			Return(nil, nil)
		// No Upsert expectation: load never writes.

		result, err := svc.Load(ctx, 7)
		require.NoError(t, err)
		assert.EqualValues(t, 0, result.Revision)
		assert.Equal(t, pet.MoodCalm, result.Payload.Stats.Mood)
		assert.Equal(t, 50.0, result.Payload.Stats.Hunger)
		assert.Equal(t, 3.0, result.Payload.Inventory.Food)
	})

	t.Run("existing row is sanitized on the way out", func(t *testing.T) {
		record := &models.SaveRecord{
			UserID:    7,
			Revision:  3,
			UpdatedAt: time.Now().UTC(),
			SaveJSON:  `{"stats":{"hunger":60,"mood":"bogus"}}`,
		}
		mockReader.EXPECT().
			Get(gomock.Any(), models.UserID(7)).
			Return(record, nil)

		result, err := svc.Load(ctx, 7)
		require.NoError(t, err)
		assert.EqualValues(t, 3, result.Revision)
		assert.Equal(t, 60.0, result.Payload.Stats.Hunger)
		assert.Equal(t, pet.MoodCalm, result.Payload.Stats.Mood)
	})

	t.Run("corrupt stored JSON still loads with defaults", func(t *testing.T) {
		record := &models.SaveRecord{UserID: 7, Revision: 5, SaveJSON: `{broken`}
		mockReader.EXPECT().
			Get(gomock.Any(), models.UserID(7)).
			Return(record, nil)

		result, err := svc.Load(ctx, 7)
		require.NoError(t, err)
		assert.EqualValues(t, 5, result.Revision)
		assert.Equal(t, 50.0, result.Payload.Stats.Hunger)
	})
}

func TestSaveService_Persist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockSaveReader(ctrl)
	mockWriter := services.NewMockSaveWriter(ctrl)
	svc := services.NewSaveService(mockReader, mockWriter)
	ctx := context.Background()

	t.Run("payload is sanitized before hitting storage", func(t *testing.T) {
		mockWriter.EXPECT().
			Upsert(gomock.Any(), models.UserID(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, userID models.UserID, saveJSON string) (*models.SaveRecord, error) {
				var decoded pet.Save
				require.NoError(t, json.Unmarshal([]byte(saveJSON), &decoded))
				assert.Equal(t, 50.0, decoded.Stats.Hunger, "non-numeric hunger must fall back")
				return &models.SaveRecord{UserID: userID, Revision: 1, UpdatedAt: time.Now().UTC(), SaveJSON: saveJSON}, nil
			})

		result, err := svc.Persist(ctx, 7, map[string]any{
			"stats": map[string]any{"hunger": "not-a-number"},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, result.Revision)
		assert.Equal(t, 50.0, result.Payload.Stats.Hunger)
	})

	t.Run("revision comes from storage, not the client", func(t *testing.T) {
		mockWriter.EXPECT().
			Upsert(gomock.Any(), models.UserID(7), gomock.Any()).
			Return(&models.SaveRecord{UserID: 7, Revision: 9, UpdatedAt: time.Now().UTC()}, nil)

		result, err := svc.Persist(ctx, 7, map[string]any{
			"revision": 99.0, // ignored
			"stats":    map[string]any{"hunger": 60.0},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 9, result.Revision)
	})
}

func TestSaveService_SetActiveDino(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockSaveReader(ctrl)
	mockWriter := services.NewMockSaveWriter(ctrl)
	svc := services.NewSaveService(mockReader, mockWriter)
	ctx := context.Background()

	t.Run("unknown slug is rejected without touching storage", func(t *testing.T) {
		_, err := svc.SetActiveDino(ctx, 7, "raptor-9000")
		assert.ErrorIs(t, err, services.ErrUnknownDino)
	})

	t.Run("known slug is written into the current save", func(t *testing.T) {
		mockReader.EXPECT().
			Get(gomock.Any(), models.UserID(7)).
			Return(nil, nil)
		mockWriter.EXPECT().
			Upsert(gomock.Any(), models.UserID(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, userID models.UserID, saveJSON string) (*models.SaveRecord, error) {
				var decoded pet.Save
				require.NoError(t, json.Unmarshal([]byte(saveJSON), &decoded))
				assert.Equal(t, "willow", decoded.ActiveDinoSlug)
				return &models.SaveRecord{UserID: userID, Revision: 1, UpdatedAt: time.Now().UTC(), SaveJSON: saveJSON}, nil
			})

		result, err := svc.SetActiveDino(ctx, 7, "willow")
		require.NoError(t, err)
		assert.Equal(t, "willow", result.Payload.ActiveDinoSlug)
	})
}
