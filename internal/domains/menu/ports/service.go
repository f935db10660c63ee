package ports

import (
	"context"

	"github.com/Apurer/bites-ordering-api/internal/domains/menu/domain"
)

// Service exposes menu browsing use cases to adapters.
type Service interface {
	ListItems(ctx context.Context, category string) ([]domain.MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
	Lookup(ctx context.Context, name string) (*domain.MenuItem, error)
}
