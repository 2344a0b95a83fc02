package leadimport

import (
	"context"
	"time"

	"github.com/baechuer/leads-api/internal/domain"
)

type LeadStore interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, l domain.Lead) (domain.Lead, error)
}

// Archiver keeps a copy of the raw upload.
type Archiver interface {
	Archive(ctx context.Context, key string, body []byte, contentType string) error
}

type EventPublisher interface {
	PublishLeadsImported(ctx context.Context, ev ImportedEvent) error
}

// ImportedEvent is emitted once per finished import.
type ImportedEvent struct {
	Processed  int       `json:"processed"`
	Created    int       `json:"created"`
	Failed     int       `json:"failed"`
	Filename   string    `json:"filename"`
	UserEmail  string    `json:"user_email"`
	ImportedAt time.Time `json:"imported_at"`
}
