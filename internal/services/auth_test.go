package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/dino-pet-server/internal/models"
	"github.com/sbilibin2017/dino-pet-server/internal/password"
	"github.com/sbilibin2017/dino-pet-server/internal/repositories"
	"github.com/sbilibin2017/dino-pet-server/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionTTL = 7 * 24 * time.Hour

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserReader := services.NewMockUserReader(ctrl)
	mockUserWriter := services.NewMockUserWriter(ctrl)
	mockSessionReader := services.NewMockSessionReader(ctrl)
	mockSessionWriter := services.NewMockSessionWriter(ctrl)

	svc := services.NewAuthService(mockUserReader, mockUserWriter, mockSessionReader, mockSessionWriter, nil, nil, sessionTTL)
	ctx := context.Background()

	t.Run("successful registration opens a session", func(t *testing.T) {
		created := &models.User{ID: 1, Username: "DinoMaster", UsernameNorm: "dinomaster"}

		mockUserReader.EXPECT().
			GetByUsername(gomock.Any(), "DinoMaster").
			Return(nil, nil)
		mockUserWriter.EXPECT().
			Save(gomock.Any(), "DinoMaster", "dinomaster", gomock.Any()).
			Return(created, nil)
		mockSessionWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s models.Session) error {
				assert.EqualValues(t, 1, s.UserID)
				assert.NotEmpty(t, s.ID)
				assert.WithinDuration(t, s.CreatedAt.Add(sessionTTL), s.ExpiresAt, time.Second)
				return nil
			})

		user, session, err := svc.Register(ctx, "DinoMaster", "secretpass1")
		require.NoError(t, err)
		assert.Equal(t, created, user)
		require.NotNil(t, session)
		assert.EqualValues(t, 1, session.UserID)
	})

	t.Run("existing normalized username conflicts", func(t *testing.T) {
		mockUserReader.EXPECT().
			GetByUsername(gomock.Any(), " dinoMASTER ").
			Return(&models.User{ID: 1}, nil)

		_, _, err := svc.Register(ctx, " dinoMASTER ", "secretpass1")
		assert.ErrorIs(t, err, services.ErrUsernameTaken)
	})

	t.Run("constraint race on insert maps to conflict", func(t *testing.T) {
		mockUserReader.EXPECT().
			GetByUsername(gomock.Any(), "DinoMaster").
			Return(nil, nil)
		mockUserWriter.EXPECT().
			Save(gomock.Any(), "DinoMaster", "dinomaster", gomock.Any()).
			Return(nil, repositories.ErrConflict)

		_, _, err := svc.Register(ctx, "DinoMaster", "secretpass1")
		assert.ErrorIs(t, err, services.ErrUsernameTaken)
	})

	t.Run("reader error surfaces", func(t *testing.T) {
		dbErr := errors.New("db error")
		mockUserReader.EXPECT().
			GetByUsername(gomock.Any(), "DinoMaster").
			Return(nil, dbErr)

		_, _, err := svc.Register(ctx, "DinoMaster", "secretpass1")
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserReader := services.NewMockUserReader(ctrl)
	mockUserWriter := services.NewMockUserWriter(ctrl)
	mockSessionReader := services.NewMockSessionReader(ctrl)
	mockSessionWriter := services.NewMockSessionWriter(ctrl)

	svc := services.NewAuthService(mockUserReader, mockUserWriter, mockSessionReader, mockSessionWriter, nil, nil, sessionTTL)
	ctx := context.Background()

	hash, err := password.Hash("secretpass1")
	require.NoError(t, err)
	user := &models.User{ID: 7, Username: "DinoMaster", UsernameNorm: "dinomaster", PasswordHash: hash}

	t.Run("successful login", func(t *testing.T) {
		mockUserReader.EXPECT().
			GetByUsername(gomock.Any(), "dinomaster").
			Return(user, nil)
		mockSessionWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(nil)

		got, session, err := svc.Login(ctx, "dinomaster", "secretpass1")
		require.NoError(t, err)
		assert.Equal(t, user, got)
		assert.EqualValues(t, 7, session.UserID)
	})

	t.Run("unknown user is indistinguishable from wrong password", func(t *testing.T) {
		mockUserReader.EXPECT().
			GetByUsername(gomock.Any(), "ghost").
			Return(nil, nil)

		_, _, err := svc.Login(ctx, "ghost", "secretpass1")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUserReader.EXPECT().
			GetByUsername(gomock.Any(), "dinomaster").
			Return(user, nil)

		_, _, err := svc.Login(ctx, "dinomaster", "secretpass1x")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})
}

func TestAuthService_Login_AttemptLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserReader := services.NewMockUserReader(ctrl)
	mockUserWriter := services.NewMockUserWriter(ctrl)
	mockSessionReader := services.NewMockSessionReader(ctrl)
	mockSessionWriter := services.NewMockSessionWriter(ctrl)
	mockLimiter := services.NewMockAttemptLimiter(ctrl)

	svc := services.NewAuthService(mockUserReader, mockUserWriter, mockSessionReader, mockSessionWriter, mockLimiter, nil, sessionTTL)
	ctx := context.Background()

	t.Run("limited login is rejected before credentials are checked", func(t *testing.T) {
		mockLimiter.EXPECT().
			Allow(gomock.Any(), "auth:login:dinomaster").
			Return(false, nil)

		_, _, err := svc.Login(ctx, " DinoMaster ", "secretpass1")
		assert.ErrorIs(t, err, services.ErrTooManyAttempts)
	})

	t.Run("broken limiter does not lock players out", func(t *testing.T) {
		mockLimiter.EXPECT().
			Allow(gomock.Any(), "auth:login:ghost").
			Return(false, errors.New("redis down"))
		mockUserReader.EXPECT().
			GetByUsername(gomock.Any(), "ghost").
			Return(nil, nil)

		_, _, err := svc.Login(ctx, "ghost", "secretpass1")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})
}

func TestAuthService_Login_PublishesAuditEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserReader := services.NewMockUserReader(ctrl)
	mockUserWriter := services.NewMockUserWriter(ctrl)
	mockSessionReader := services.NewMockSessionReader(ctrl)
	mockSessionWriter := services.NewMockSessionWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewAuthService(mockUserReader, mockUserWriter, mockSessionReader, mockSessionWriter, nil, mockKafka, sessionTTL)

	hash, err := password.Hash("secretpass1")
	require.NoError(t, err)
	user := &models.User{ID: 7, Username: "DinoMaster", PasswordHash: hash}

	mockUserReader.EXPECT().
		GetByUsername(gomock.Any(), "dinomaster").
		Return(user, nil)
	mockSessionWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil)
	mockKafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(nil)

	_, _, err = svc.Login(context.Background(), "dinomaster", "secretpass1")
	assert.NoError(t, err)
}

func TestAuthService_ResolveSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserReader := services.NewMockUserReader(ctrl)
	mockUserWriter := services.NewMockUserWriter(ctrl)
	mockSessionReader := services.NewMockSessionReader(ctrl)
	mockSessionWriter := services.NewMockSessionWriter(ctrl)

	svc := services.NewAuthService(mockUserReader, mockUserWriter, mockSessionReader, mockSessionWriter, nil, nil, sessionTTL)
	ctx := context.Background()

	t.Run("valid session resolves to its user", func(t *testing.T) {
		su := &models.SessionUser{
			User:    models.User{ID: 7, Username: "DinoMaster"},
			Session: models.Session{ID: "tok", UserID: 7, ExpiresAt: time.Now().Add(time.Hour)},
		}
		mockSessionReader.EXPECT().
			GetWithUser(gomock.Any(), models.SessionID("tok")).
			Return(su, nil)

		got, err := svc.ResolveSession(ctx, "tok")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.EqualValues(t, 7, got.User.ID)
	})

	t.Run("unknown session resolves to nothing", func(t *testing.T) {
		mockSessionReader.EXPECT().
			GetWithUser(gomock.Any(), models.SessionID("gone")).
			Return(nil, nil)

		got, err := svc.ResolveSession(ctx, "gone")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("expired session is deleted lazily", func(t *testing.T) {
		su := &models.SessionUser{
			User:    models.User{ID: 7},
			Session: models.Session{ID: "stale", UserID: 7, ExpiresAt: time.Now().Add(-time.Minute)},
		}
		mockSessionReader.EXPECT().
			GetWithUser(gomock.Any(), models.SessionID("stale")).
			Return(su, nil)
		mockSessionWriter.EXPECT().
			Delete(gomock.Any(), models.SessionID("stale")).
			Return(nil)

		got, err := svc.ResolveSession(ctx, "stale")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserReader := services.NewMockUserReader(ctrl)
	mockUserWriter := services.NewMockUserWriter(ctrl)
	mockSessionReader := services.NewMockSessionReader(ctrl)
	mockSessionWriter := services.NewMockSessionWriter(ctrl)

	svc := services.NewAuthService(mockUserReader, mockUserWriter, mockSessionReader, mockSessionWriter, nil, nil, sessionTTL)

	mockSessionWriter.EXPECT().
		Delete(gomock.Any(), models.SessionID("tok")).
		Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), "tok"))
}
