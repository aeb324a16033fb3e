// Package auth implements cookie-session login for staff accounts.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"freshmarket/internal/domain"
	sessionrepo "freshmarket/internal/repository/session"
	userrepo "freshmarket/internal/repository/user"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when username/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidSession indicates the session token is unknown or expired.
	ErrInvalidSession = errors.New("invalid session")
)

type Service struct {
	users      usersRepo
	sessions   sessionsRepo
	sessionTTL time.Duration
}

type usersRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type sessionsRepo interface {
	Create(ctx context.Context, token, userID string, expiresAt time.Time) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

func New(users userrepo.Repository, sessions sessionrepo.Repository, sessionTTL time.Duration) *Service {
	if sessionTTL <= 0 {
		sessionTTL = 7 * 24 * time.Hour
	}
	return &Service{users: users, sessions: sessions, sessionTTL: sessionTTL}
}

// Login validates credentials and opens a session, returning the user and
// the session token for the cookie.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.sessions.Create(ctx, token, u.ID, time.Now().Add(s.sessionTTL)); err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Logout discards the session. Unknown tokens are not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// CurrentUser resolves a session token to the logged-in user.
func (s *Service) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	u, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	return u, nil
}

// SessionTTL exposes the configured session lifetime for the cookie Max-Age.
func (s *Service) SessionTTL() time.Duration {
	return s.sessionTTL
}
