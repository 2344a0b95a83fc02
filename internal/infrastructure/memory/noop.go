package memory

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/leads-api/internal/application/leadimport"
)

// NoopPublisher stands in for RabbitMQ when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (p *NoopPublisher) PublishLeadsImported(ctx context.Context, ev leadimport.ImportedEvent) error {
	zlog.Info().
		Str("filename", ev.Filename).
		Str("user_email", ev.UserEmail).
		Int("created", ev.Created).
		Int("failed", ev.Failed).
		Msg("[noop-pub] leads imported")
	return nil
}
