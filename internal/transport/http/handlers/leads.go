package http_handlers

import (
	"context"
	"net/http"

	"github.com/baechuer/leads-api/internal/application/lead"
	"github.com/baechuer/leads-api/internal/domain"
	"github.com/baechuer/leads-api/internal/transport/http/dto"
	"github.com/baechuer/leads-api/internal/transport/http/response"
)

type LeadService interface {
	List(ctx context.Context, f lead.ListFilter) ([]domain.Lead, error)
	Get(ctx context.Context, id int64) (domain.Lead, error)
	Create(ctx context.Context, cmd lead.CreateCmd) (domain.Lead, error)
	Update(ctx context.Context, cmd lead.UpdateCmd) (domain.Lead, error)
	Delete(ctx context.Context, id int64) error
}

type LeadHandler struct {
	svc LeadService
}

func NewLeadHandler(svc LeadService) *LeadHandler {
	return &LeadHandler{svc: svc}
}

// List handles GET /leads?search=&status=&assignedTo=
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.svc.List(r.Context(), lead.ListFilter{
		Search:     q.Get("search"),
		Status:     q.Get("status"),
		AssignedTo: q.Get("assignedTo"),
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, dto.NewLeadViews(items))
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, dto.NewLeadView(l))
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.LeadRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	l, err := h.svc.Create(r.Context(), req.ToCreateCmd())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusCreated, dto.NewLeadView(l))
}

// Update serves both PUT and PATCH.
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var req dto.LeadRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	l, err := h.svc.Update(r.Context(), req.ToUpdateCmd(id))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, dto.NewLeadView(l))
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.NoContent(w)
}
