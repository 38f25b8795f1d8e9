package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/config"
)

type SessionStore interface {
	Create(ctx context.Context, session SessionRecord) error
	Get(ctx context.Context, sid string) (SessionRecord, error)
	Delete(ctx context.Context, sid string) error
}

type Service struct {
	cfg      config.AuthConfig
	jwt      *JWTManager
	sessions SessionStore
	now      func() time.Time
}

func NewService(cfg config.AuthConfig, jwtManager *JWTManager, sessions SessionStore) *Service {
	return &Service{
		cfg:      cfg,
		jwt:      jwtManager,
		sessions: sessions,
		now:      time.Now,
	}
}

// Login checks the static moderator credentials and opens a session. When a
// bcrypt hash is configured it wins over the plain password.
func (s *Service) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidInput
	}

	if !strings.EqualFold(email, s.cfg.AdminEmail) || !s.passwordMatches(password) {
		return AuthResult{}, ErrInvalidCredentials
	}

	session := SessionRecord{
		SID:       uuid.NewString(),
		Email:     s.cfg.AdminEmail,
		ExpiresAt: s.now().UTC().Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return AuthResult{}, fmt.Errorf("create session: %w", err)
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(session.SID, session.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate access token: %w", err)
	}

	return AuthResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Email:       session.Email,
	}, nil
}

// Validate parses the bearer token and checks the session still exists. The
// session is the unit everything else keys off: view caches, overrides.
func (s *Service) Validate(ctx context.Context, token string) (Identity, error) {
	claims, err := s.jwt.ParseAccessToken(token)
	if err != nil {
		return Identity{}, err
	}

	session, err := s.sessions.Get(ctx, claims.SID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return Identity{}, ErrUnauthorized
		}
		return Identity{}, fmt.Errorf("get session: %w", err)
	}
	if s.now().After(session.ExpiresAt) {
		return Identity{}, ErrUnauthorized
	}

	return Identity{SID: session.SID, Email: session.Email}, nil
}

func (s *Service) Logout(ctx context.Context, sid string) error {
	if strings.TrimSpace(sid) == "" {
		return ErrInvalidInput
	}
	if err := s.sessions.Delete(ctx, sid); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *Service) passwordMatches(password string) bool {
	if s.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.cfg.AdminPassword), []byte(password)) == 1
}
