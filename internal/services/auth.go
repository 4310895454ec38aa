package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dino-pet-server/internal/logger"
	"github.com/sbilibin2017/dino-pet-server/internal/models"
	"github.com/sbilibin2017/dino-pet-server/internal/password"
	"github.com/sbilibin2017/dino-pet-server/internal/repositories"
	"github.com/sbilibin2017/dino-pet-server/internal/security"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials covers both unknown usernames and wrong passwords so
	// the two stay indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTooManyAttempts    = errors.New("too many attempts")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, usernameNorm, passwordHash string) (*models.User, error)
}

// SessionReader resolves sessions joined to their users.
type SessionReader interface {
	GetWithUser(ctx context.Context, id models.SessionID) (*models.SessionUser, error)
}

// SessionWriter defines write operations for sessions.
type SessionWriter interface {
	Save(ctx context.Context, session models.Session) error
	Delete(ctx context.Context, id models.SessionID) error
}

// AttemptLimiter throttles repeated auth attempts.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuthService handles registration, login and the session lifecycle.
type AuthService struct {
	userReader    UserReader
	userWriter    UserWriter
	sessionReader SessionReader
	sessionWriter SessionWriter
	limiter       AttemptLimiter // optional
	kafkaWriter   KafkaWriter    // optional
	sessionTTL    time.Duration
}

// NewAuthService creates a new AuthService. The limiter and Kafka writer may be
// nil; both features degrade gracefully.
func NewAuthService(
	userReader UserReader,
	userWriter UserWriter,
	sessionReader SessionReader,
	sessionWriter SessionWriter,
	limiter AttemptLimiter,
	kafkaWriter KafkaWriter,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		userReader:    userReader,
		userWriter:    userWriter,
		sessionReader: sessionReader,
		sessionWriter: sessionWriter,
		limiter:       limiter,
		kafkaWriter:   kafkaWriter,
		sessionTTL:    sessionTTL,
	}
}

// Register creates a new user and opens a session for it.
func (svc *AuthService) Register(ctx context.Context, username, pass string) (*models.User, *models.Session, error) {
	normalized := models.NormalizeUsername(username)

	if err := svc.enforceLimit(ctx, "auth:register:"+normalized); err != nil {
		return nil, nil, err
	}

	existing, err := svc.userReader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, ErrUsernameTaken
	}

	hash, err := password.Hash(pass)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, nil, err
	}

	user, err := svc.userWriter.Save(ctx, username, normalized, hash)
	if err != nil {
		// Two concurrent registrations can both pass the existence check;
		// the unique constraint decides the winner.
		if errors.Is(err, repositories.ErrConflict) {
			return nil, nil, ErrUsernameTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, nil, err
	}

	session, err := svc.createSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	svc.publishEvent(ctx, user.ID, "register")

	return user, session, nil
}

// Login authenticates a user and opens a session for it.
func (svc *AuthService) Login(ctx context.Context, username, pass string) (*models.User, *models.Session, error) {
	normalized := models.NormalizeUsername(username)

	if err := svc.enforceLimit(ctx, "auth:login:"+normalized); err != nil {
		return nil, nil, err
	}

	user, err := svc.userReader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}

	ok, err := password.Verify(user.PasswordHash, pass)
	if err != nil {
		logger.Log.Errorw("failed to verify password", "err", err)
		return nil, nil, err
	}
	if !ok {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := svc.createSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	svc.publishEvent(ctx, user.ID, "login")

	return user, session, nil
}

// Logout revokes a session. Revoking a session that no longer exists succeeds.
func (svc *AuthService) Logout(ctx context.Context, id models.SessionID) error {
	if err := svc.sessionWriter.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete session", "err", err)
		return err
	}
	return nil
}

// ResolveSession returns the session-user pair for a token, or (nil, nil) when
// the token is unknown or expired. An expired session is deleted as a side
// effect; there is no background sweep.
func (svc *AuthService) ResolveSession(ctx context.Context, id models.SessionID) (*models.SessionUser, error) {
	su, err := svc.sessionReader.GetWithUser(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to resolve session", "err", err)
		return nil, err
	}
	if su == nil {
		return nil, nil
	}

	if !su.Session.ExpiresAt.After(time.Now()) {
		// Lazy expiry. A concurrent resolver may delete the same row;
		// Delete is idempotent so both paths succeed.
		if err := svc.sessionWriter.Delete(ctx, id); err != nil {
			logger.Log.Errorw("failed to delete expired session", "err", err)
			return nil, err
		}
		return nil, nil
	}

	return su, nil
}

func (svc *AuthService) createSession(ctx context.Context, userID models.UserID) (*models.Session, error) {
	token, err := security.NewToken()
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return nil, err
	}

	now := time.Now().UTC()
	session := models.Session{
		ID:        models.SessionID(token),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(svc.sessionTTL),
	}

	if err := svc.sessionWriter.Save(ctx, session); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return nil, err
	}

	return &session, nil
}

func (svc *AuthService) enforceLimit(ctx context.Context, key string) error {
	if svc.limiter == nil {
		return nil
	}

	ok, err := svc.limiter.Allow(ctx, key)
	if err != nil {
		// A broken limiter must not lock players out.
		logger.Log.Errorw("attempt limiter unavailable", "key", key, "err", err)
		return nil
	}
	if !ok {
		return ErrTooManyAttempts
	}
	return nil
}

// publishEvent publishes an auth event to Kafka.
func (svc *AuthService) publishEvent(ctx context.Context, userID models.UserID, operation string) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "operation", operation)
		return
	}

	event := models.AuthEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    strconv.FormatInt(int64(userID), 10),
		Operation: operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal auth event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish auth event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Auth event published to Kafka", "event_id", event.EventID, "operation", operation)
	}
}
