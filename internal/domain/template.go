package domain

import "time"

// TemplateStats are usage counters maintained by the outreach sender.
type TemplateStats struct {
	Used      int
	Replied   int
	Succeeded int
}

type MessageTemplate struct {
	ID        int64
	Content   string
	Industry  string
	Skills    []string
	Stats     TemplateStats
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SubjectTemplate struct {
	ID        int64
	Content   string
	Stats     TemplateStats
	CreatedAt time.Time
	UpdatedAt time.Time
}
