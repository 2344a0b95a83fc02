package postgres

import (
	"context"

	"github.com/baechuer/leads-api/internal/domain"
	zlog "github.com/rs/zerolog/log"
)

type TemplateSeeder interface {
	CountTemplates(ctx context.Context) (messages, subjects int, err error)
	InsertMessageTemplate(ctx context.Context, m domain.MessageTemplate) error
	InsertSubjectTemplate(ctx context.Context, t domain.SubjectTemplate) error
}

// SeedTemplates fills empty template tables with starter content for local setups.
// Tables that already hold rows are left alone, so restarts are safe.
func SeedTemplates(ctx context.Context, repo TemplateSeeder) {
	messages := []domain.MessageTemplate{
		{
			Content:  "Hi {first_name}, I noticed {company} is hiring engineers. We help SaaS teams ship faster with vetted contractors.",
			Industry: "SaaS",
			Skills:   []string{"go", "kubernetes", "postgres"},
		},
		{
			Content:  "Hello {first_name}, we work with retailers like {company} to automate inventory reporting.",
			Industry: "Retail",
			Skills:   []string{"data", "etl"},
		},
	}
	subjects := []domain.SubjectTemplate{
		{Content: "Quick question about {company}"},
		{Content: "Idea for {company}'s engineering team"},
	}

	nMsg, nSubj, err := repo.CountTemplates(ctx)
	if err != nil {
		zlog.Warn().Err(err).Msg("[seed] count templates failed")
		return
	}

	if nMsg == 0 {
		for _, m := range messages {
			if err := repo.InsertMessageTemplate(ctx, m); err != nil {
				zlog.Warn().Err(err).Str("industry", m.Industry).Msg("[seed] insert message template failed")
			}
		}
	}
	if nSubj == 0 {
		for _, s := range subjects {
			if err := repo.InsertSubjectTemplate(ctx, s); err != nil {
				zlog.Warn().Err(err).Msg("[seed] insert subject template failed")
			}
		}
	}

	zlog.Info().Int("message_templates", nMsg).Int("subject_templates", nSubj).Msg("[seed] templates checked")
}
