package application

import (
	"context"
	"errors"
	"sync"

	"github.com/Apurer/bites-ordering-api/internal/domains/menu/domain"
	"github.com/Apurer/bites-ordering-api/internal/domains/menu/ports"
)

// Service serves the menu loaded once from the repository.
type Service struct {
	repo ports.Repository

	once sync.Once
	menu *domain.Menu
	err  error
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) load(ctx context.Context) (*domain.Menu, error) {
	s.once.Do(func() {
		if s.repo == nil {
			s.err = errors.New("menu repository not configured")
			return
		}
		s.menu, s.err = s.repo.Load(ctx)
	})
	return s.menu, s.err
}

func (s *Service) ListItems(ctx context.Context, category string) ([]domain.MenuItem, error) {
	menu, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return menu.Filter(category), nil
}

// Categories returns the filter choices, "All" first.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	menu, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{domain.AllCategories}, menu.Categories()...), nil
}

func (s *Service) Lookup(ctx context.Context, name string) (*domain.MenuItem, error) {
	menu, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	item, ok := menu.Lookup(name)
	if !ok {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

var _ ports.Service = (*Service)(nil)
