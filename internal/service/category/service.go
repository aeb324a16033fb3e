package category

import (
	"context"
	"strings"

	"freshmarket/internal/domain"
	auditrepo "freshmarket/internal/repository/auditlog"
	categoryrepo "freshmarket/internal/repository/category"
)

type Service struct {
	repo  categoriesRepo
	audit auditWriter
}

type categoriesRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name, color string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type auditWriter interface {
	Create(ctx context.Context, in auditrepo.CreateAuditLogInput) (*domain.AuditLog, error)
}

func New(repo categoryrepo.Repository, audit auditrepo.Repository) *Service {
	return &Service{repo: repo, audit: audit}
}

type CreateInput struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required"`
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, actor domain.User, in CreateInput) (*domain.Category, error) {
	c, err := s.repo.Create(ctx, strings.TrimSpace(in.Name), in.Color)
	if err != nil {
		return nil, err
	}
	_, err = s.audit.Create(ctx, auditrepo.CreateAuditLogInput{
		UserID:     actor.ID,
		Action:     "CREATE_CATEGORY",
		EntityType: "category",
		EntityID:   c.ID,
		Details:    map[string]interface{}{"name": c.Name},
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, actor domain.User, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_, err := s.audit.Create(ctx, auditrepo.CreateAuditLogInput{
		UserID:     actor.ID,
		Action:     "DELETE_CATEGORY",
		EntityType: "category",
		EntityID:   id,
		Details:    map[string]interface{}{},
	})
	return err
}
