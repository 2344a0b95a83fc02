package http_handlers

import (
	"context"
	"net/http"

	"github.com/baechuer/leads-api/internal/application/account"
	"github.com/baechuer/leads-api/internal/domain"
	"github.com/baechuer/leads-api/internal/transport/http/dto"
	"github.com/baechuer/leads-api/internal/transport/http/response"
)

type AccountService interface {
	List(ctx context.Context, f account.ListFilter) ([]domain.Account, error)
	Get(ctx context.Context, id int64) (domain.Account, error)
	Create(ctx context.Context, cmd account.CreateCmd) (domain.Account, error)
	Update(ctx context.Context, cmd account.UpdateCmd) (domain.Account, error)
	Delete(ctx context.Context, id int64) error
}

type AccountHandler struct {
	svc AccountService
}

func NewAccountHandler(svc AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// List handles GET /accounts?search=
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), account.ListFilter{Search: r.URL.Query().Get("search")})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, dto.NewAccountViews(items))
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, dto.NewAccountView(a))
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AccountRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	a, err := h.svc.Create(r.Context(), req.ToCreateCmd())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusCreated, dto.NewAccountView(a))
}

// Update serves both PUT and PATCH.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var req dto.AccountRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	a, err := h.svc.Update(r.Context(), req.ToUpdateCmd(id))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, dto.NewAccountView(a))
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
