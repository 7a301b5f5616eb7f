package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"vastratrota-backend/internal/models"
	"vastratrota-backend/internal/redisclient"
	"vastratrota-backend/internal/store"
	"vastratrota-backend/internal/util"

	"go.uber.org/zap"
)

// ErrInvalidCredentials rejects unknown username/password pairs.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService checks credentials and issues opaque session tokens. Tokens are
// base64-encoded JSON claims; this is the toy encoding the UI expects, not a
// signed credential. Sessions live in Redis when configured, otherwise in an
// in-process map.
type AuthService struct {
	store      *store.Store
	redis      *redisclient.Client
	sessionTTL time.Duration
	logger     *zap.Logger

	mu       sync.Mutex
	sessions map[string]localSession
}

type localSession struct {
	payload   []byte
	expiresAt time.Time
}

// TokenClaims are the decoded contents of a session token.
type TokenClaims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	Exp    int64  `json:"exp"`
}

// NewAuthService creates a new auth service. redis may be nil.
func NewAuthService(store *store.Store, redis *redisclient.Client, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		store:      store,
		redis:      redis,
		sessionTTL: sessionTTL,
		logger:     util.GetLogger(),
		sessions:   make(map[string]localSession),
	}
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login validates credentials and issues a session token with TTL.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	ctx, span := util.StartSpan(ctx, "AuthService.Login")
	defer span.End()

	user, err := s.store.GetUserByCredentials(username, password)
	if err != nil {
		util.AuthAttemptsTotal.WithLabelValues("rejected").Inc()
		return nil, ErrInvalidCredentials
	}

	claims := TokenClaims{
		UserID: user.ID,
		Role:   user.Role,
		Exp:    time.Now().Add(s.sessionTTL).UnixMilli(),
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to encode token claims: %w", err)
	}
	token := base64.StdEncoding.EncodeToString(payload)

	if err := s.storeSession(ctx, token, payload); err != nil {
		s.logger.Warn("Failed to store session", zap.Error(err))
	}

	util.AuthAttemptsTotal.WithLabelValues("accepted").Inc()
	s.logger.Info("User logged in",
		zap.String("username", user.Username),
		zap.String("role", user.Role))

	return &LoginResponse{Token: token, User: user}, nil
}

// Validate resolves a token to its claims, failing for unknown or expired
// sessions.
func (s *AuthService) Validate(ctx context.Context, token string) (*TokenClaims, error) {
	payload, err := s.loadSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, ErrInvalidCredentials
	}

	var claims TokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("failed to decode token claims: %w", err)
	}
	if time.Now().UnixMilli() > claims.Exp {
		return nil, ErrInvalidCredentials
	}
	return &claims, nil
}

func (s *AuthService) storeSession(ctx context.Context, token string, payload []byte) error {
	if s.redis != nil {
		return s.redis.SetSession(ctx, token, payload, s.sessionTTL)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = localSession{
		payload:   payload,
		expiresAt: time.Now().Add(s.sessionTTL),
	}
	return nil
}

func (s *AuthService) loadSession(ctx context.Context, token string) ([]byte, error) {
	if s.redis != nil {
		return s.redis.GetSession(ctx, token)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	if time.Now().After(session.expiresAt) {
		delete(s.sessions, token)
		return nil, nil
	}
	return session.payload, nil
}
