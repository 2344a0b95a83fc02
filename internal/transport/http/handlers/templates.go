package http_handlers

import (
	"context"
	"net/http"

	"github.com/baechuer/leads-api/internal/application/template"
	"github.com/baechuer/leads-api/internal/domain"
	"github.com/baechuer/leads-api/internal/transport/http/dto"
	"github.com/baechuer/leads-api/internal/transport/http/response"
)

type TemplateService interface {
	ListMessages(ctx context.Context, f template.MessageFilter) ([]domain.MessageTemplate, error)
	GetMessage(ctx context.Context, id int64) (domain.MessageTemplate, error)
	ListSubjects(ctx context.Context, f template.SubjectFilter) ([]domain.SubjectTemplate, error)
	GetSubject(ctx context.Context, id int64) (domain.SubjectTemplate, error)
}

// TemplateHandler is read-only.
type TemplateHandler struct {
	svc TemplateService
}

func NewTemplateHandler(svc TemplateService) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

// ListMessages handles GET /message-templates?search=&industry=
func (h *TemplateHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.svc.ListMessages(r.Context(), template.MessageFilter{
		Search:   q.Get("search"),
		Industry: q.Get("industry"),
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, dto.NewMessageTemplateViews(items))
}

func (h *TemplateHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	m, err := h.svc.GetMessage(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, dto.NewMessageTemplateView(m))
}

// ListSubjects handles GET /subject-templates?search=
func (h *TemplateHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListSubjects(r.Context(), template.SubjectFilter{Search: r.URL.Query().Get("search")})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, dto.NewSubjectTemplateViews(items))
}

func (h *TemplateHandler) GetSubject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	s, err := h.svc.GetSubject(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, dto.NewSubjectTemplateView(s))
}
