package account

import (
	"context"

	"github.com/baechuer/leads-api/internal/domain"
)

type AccountRepo interface {
	List(ctx context.Context, f ListFilter) ([]domain.Account, error)
	GetByID(ctx context.Context, id int64) (domain.Account, error)
	// Create returns the stored row with ID and timestamps assigned.
	Create(ctx context.Context, a domain.Account) (domain.Account, error)
	Update(ctx context.Context, a domain.Account) (domain.Account, error)
	Delete(ctx context.Context, id int64) error
}
