package email

import (
	"context"

	"github.com/baechuer/leads-api/internal/domain"
)

// EmailRepo loads emails together with their owning account, if any.
type EmailRepo interface {
	List(ctx context.Context, f ListFilter) ([]domain.Email, error)
	GetByID(ctx context.Context, id int64) (domain.Email, error)
	Create(ctx context.Context, e domain.Email) (domain.Email, error)
	Update(ctx context.Context, e domain.Email) (domain.Email, error)
	Delete(ctx context.Context, id int64) error
}

type AccountLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
