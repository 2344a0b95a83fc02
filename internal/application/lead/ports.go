package lead

import (
	"context"

	"github.com/baechuer/leads-api/internal/domain"
)

type LeadRepo interface {
	List(ctx context.Context, f ListFilter) ([]domain.Lead, error)
	GetByID(ctx context.Context, id int64) (domain.Lead, error)
	Create(ctx context.Context, l domain.Lead) (domain.Lead, error)
	Update(ctx context.Context, l domain.Lead) (domain.Lead, error)
	Delete(ctx context.Context, id int64) error
}
