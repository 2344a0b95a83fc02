package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/baechuer/leads-api/internal/application/template"
	"github.com/baechuer/leads-api/internal/domain"
)

type TemplateRepo struct {
	db *sql.DB
}

func NewTemplateRepo(db *sql.DB) *TemplateRepo {
	return &TemplateRepo{db: db}
}

const (
	messageTemplateColumns = `id, content, industry, skills, used, replied, succeeded, created_at, updated_at`
	subjectTemplateColumns = `id, content, used, replied, succeeded, created_at, updated_at`
)

func scanMessageTemplate(s rowScanner) (domain.MessageTemplate, error) {
	var (
		m      domain.MessageTemplate
		skills []byte
	)
	err := s.Scan(&m.ID, &m.Content, &m.Industry, &skills,
		&m.Stats.Used, &m.Stats.Replied, &m.Stats.Succeeded, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return domain.MessageTemplate{}, err
	}
	m.Skills = []string{}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &m.Skills); err != nil {
			return domain.MessageTemplate{}, fmt.Errorf("decode skills of template %d: %w", m.ID, err)
		}
	}
	return m, nil
}

func scanSubjectTemplate(s rowScanner) (domain.SubjectTemplate, error) {
	var t domain.SubjectTemplate
	err := s.Scan(&t.ID, &t.Content, &t.Stats.Used, &t.Stats.Replied, &t.Stats.Succeeded, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *TemplateRepo) ListMessages(ctx context.Context, f template.MessageFilter) ([]domain.MessageTemplate, error) {
	var w whereBuilder
	w.addSearch(f.Search, "content", "industry")
	w.addSearch(f.Industry, "industry")

	q := `SELECT ` + messageTemplateColumns + ` FROM message_templates` + w.clause() + ` ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, mapErr(err, nil)
	}
	defer rows.Close()

	out := []domain.MessageTemplate{}
	for rows.Next() {
		m, err := scanMessageTemplate(rows)
		if err != nil {
			return nil, mapErr(err, nil)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err, nil)
	}
	return out, nil
}

func (r *TemplateRepo) GetMessage(ctx context.Context, id int64) (domain.MessageTemplate, error) {
	const q = `SELECT ` + messageTemplateColumns + ` FROM message_templates WHERE id = $1`
	m, err := scanMessageTemplate(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return domain.MessageTemplate{}, mapErr(err, domain.ErrTemplateNotFound)
	}
	return m, nil
}

func (r *TemplateRepo) ListSubjects(ctx context.Context, f template.SubjectFilter) ([]domain.SubjectTemplate, error) {
	var w whereBuilder
	w.addSearch(f.Search, "content")

	q := `SELECT ` + subjectTemplateColumns + ` FROM subject_templates` + w.clause() + ` ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, mapErr(err, nil)
	}
	defer rows.Close()

	out := []domain.SubjectTemplate{}
	for rows.Next() {
		t, err := scanSubjectTemplate(rows)
		if err != nil {
			return nil, mapErr(err, nil)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err, nil)
	}
	return out, nil
}

func (r *TemplateRepo) GetSubject(ctx context.Context, id int64) (domain.SubjectTemplate, error) {
	const q = `SELECT ` + subjectTemplateColumns + ` FROM subject_templates WHERE id = $1`
	t, err := scanSubjectTemplate(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return domain.SubjectTemplate{}, mapErr(err, domain.ErrTemplateNotFound)
	}
	return t, nil
}

// ---------- seeding ----------

func (r *TemplateRepo) CountTemplates(ctx context.Context) (messages, subjects int, err error) {
	const q = `SELECT (SELECT COUNT(*) FROM message_templates), (SELECT COUNT(*) FROM subject_templates)`
	if err := r.db.QueryRowContext(ctx, q).Scan(&messages, &subjects); err != nil {
		return 0, 0, mapErr(err, nil)
	}
	return messages, subjects, nil
}

func (r *TemplateRepo) InsertMessageTemplate(ctx context.Context, m domain.MessageTemplate) error {
	skills := m.Skills
	if skills == nil {
		skills = []string{}
	}
	raw, err := json.Marshal(skills)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO message_templates (content, industry, skills) VALUES ($1, $2, $3::jsonb)`,
		m.Content, m.Industry, string(raw))
	return mapErr(err, nil)
}

func (r *TemplateRepo) InsertSubjectTemplate(ctx context.Context, t domain.SubjectTemplate) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO subject_templates (content) VALUES ($1)`, t.Content)
	return mapErr(err, nil)
}
