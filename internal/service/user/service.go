package user

import (
	"context"
	"errors"
	"strings"

	"freshmarket/internal/domain"
	auditrepo "freshmarket/internal/repository/auditlog"
	userrepo "freshmarket/internal/repository/user"
	"golang.org/x/crypto/bcrypt"
)

// ErrUsernameTaken is returned when the username is already registered.
var ErrUsernameTaken = errors.New("username already taken")

type Service struct {
	repo  usersRepo
	audit auditWriter
}

type usersRepo interface {
	Create(ctx context.Context, in userrepo.CreateUserInput) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type auditWriter interface {
	Create(ctx context.Context, in auditrepo.CreateAuditLogInput) (*domain.AuditLog, error)
}

func New(repo userrepo.Repository, audit auditrepo.Repository) *Service {
	return &Service{repo: repo, audit: audit}
}

type CreateInput struct {
	Name     string      `json:"name" binding:"required"`
	Username string      `json:"username" binding:"required"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     domain.Role `json:"role" binding:"required"`
	Avatar   string      `json:"avatar"`
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Create registers a staff account, hashing the password and writing an
// audit entry attributed to the acting admin.
func (s *Service) Create(ctx context.Context, actor domain.User, in CreateInput) (*domain.User, error) {
	if !in.Role.Valid() {
		return nil, domain.Invalid("invalid role %q", in.Role)
	}
	username := strings.TrimSpace(strings.ToLower(in.Username))

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.Create(ctx, userrepo.CreateUserInput{
		Name:         in.Name,
		Username:     username,
		PasswordHash: string(hashed),
		Role:         in.Role,
		Avatar:       in.Avatar,
	})
	if err != nil {
		return nil, err
	}

	_, err = s.audit.Create(ctx, auditrepo.CreateAuditLogInput{
		UserID:     actor.ID,
		Action:     "CREATE_USER",
		EntityType: "user",
		EntityID:   u.ID,
		Details:    map[string]interface{}{"username": u.Username, "role": u.Role},
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}
