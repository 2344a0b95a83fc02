package http_handlers

import (
	"context"
	"net/http"

	"github.com/baechuer/leads-api/internal/application/email"
	"github.com/baechuer/leads-api/internal/domain"
	"github.com/baechuer/leads-api/internal/transport/http/dto"
	"github.com/baechuer/leads-api/internal/transport/http/response"
)

type EmailService interface {
	List(ctx context.Context, f email.ListFilter) ([]domain.Email, error)
	Get(ctx context.Context, id int64) (domain.Email, error)
	Create(ctx context.Context, cmd email.CreateCmd) (domain.Email, error)
	Update(ctx context.Context, cmd email.UpdateCmd) (domain.Email, error)
	Delete(ctx context.Context, id int64) error
}

type EmailHandler struct {
	svc EmailService
}

func NewEmailHandler(svc EmailService) *EmailHandler {
	return &EmailHandler{svc: svc}
}

// List handles GET /emails?search=&accountId=
func (h *EmailHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID, err := queryInt64(r, "accountId")
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	items, err := h.svc.List(r.Context(), email.ListFilter{
		Search:    r.URL.Query().Get("search"),
		AccountID: accountID,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, dto.NewEmailViews(items))
}

func (h *EmailHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, dto.NewEmailView(e))
}

func (h *EmailHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.EmailRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	e, err := h.svc.Create(r.Context(), req.ToCreateCmd())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusCreated, dto.NewEmailView(e))
}

// Update serves both PUT and PATCH.
func (h *EmailHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var req dto.EmailRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	e, err := h.svc.Update(r.Context(), req.ToUpdateCmd(id))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, dto.NewEmailView(e))
}

func (h *EmailHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
