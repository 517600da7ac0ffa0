// Package category implements category management: create, list, get, delete.
package category

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/mynotes-backend/internal/config"
	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

type categoryRepo interface {
	Create(ctx context.Context, name string) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

// Service provides category management operations.
type Service struct {
	categories categoryRepo
	log        *slog.Logger
	cfg        config.NotesConfig
}

// NewService creates a new Category service.
func NewService(log *slog.Logger, categories categoryRepo, cfg config.NotesConfig) *Service {
	return &Service{
		categories: categories,
		log:        log.With("service", "category"),
		cfg:        cfg,
	}
}
