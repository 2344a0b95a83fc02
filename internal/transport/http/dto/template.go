package dto

import (
	"time"

	"github.com/baechuer/leads-api/internal/domain"
)

type MessageTemplateView struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Industry  string    `json:"industry"`
	Skills    []string  `json:"skills"`
	Used      int       `json:"used"`
	Replied   int       `json:"replied"`
	Succeeded int       `json:"succeeded"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewMessageTemplateView(m domain.MessageTemplate) MessageTemplateView {
	skills := m.Skills
	if skills == nil {
		skills = []string{}
	}
	return MessageTemplateView{
		ID:        m.ID,
		Content:   m.Content,
		Industry:  m.Industry,
		Skills:    skills,
		Used:      m.Stats.Used,
		Replied:   m.Stats.Replied,
		Succeeded: m.Stats.Succeeded,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewMessageTemplateViews(in []domain.MessageTemplate) []MessageTemplateView {
	out := make([]MessageTemplateView, 0, len(in))
	for _, m := range in {
		out = append(out, NewMessageTemplateView(m))
	}
	return out
}

type SubjectTemplateView struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Used      int       `json:"used"`
	Replied   int       `json:"replied"`
	Succeeded int       `json:"succeeded"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSubjectTemplateView(s domain.SubjectTemplate) SubjectTemplateView {
	return SubjectTemplateView{
		ID:        s.ID,
		Content:   s.Content,
		Used:      s.Stats.Used,
		Replied:   s.Stats.Replied,
		Succeeded: s.Stats.Succeeded,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func NewSubjectTemplateViews(in []domain.SubjectTemplate) []SubjectTemplateView {
	out := make([]SubjectTemplateView, 0, len(in))
	for _, s := range in {
		out = append(out, NewSubjectTemplateView(s))
	}
	return out
}
