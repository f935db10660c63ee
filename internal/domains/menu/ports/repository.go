package ports

import (
	"context"

	"github.com/Apurer/bites-ordering-api/internal/domains/menu/domain"
)

// Repository loads the active menu.
type Repository interface {
	Load(ctx context.Context) (*domain.Menu, error)
}
