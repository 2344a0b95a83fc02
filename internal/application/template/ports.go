package template

import (
	"context"
	"time"

	"github.com/baechuer/leads-api/internal/domain"
)

type TemplateRepo interface {
	ListMessages(ctx context.Context, f MessageFilter) ([]domain.MessageTemplate, error)
	GetMessage(ctx context.Context, id int64) (domain.MessageTemplate, error)
	ListSubjects(ctx context.Context, f SubjectFilter) ([]domain.SubjectTemplate, error)
	GetSubject(ctx context.Context, id int64) (domain.SubjectTemplate, error)
}

// Cache stores JSON-serializable values. Failures are never fatal to reads.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
}
