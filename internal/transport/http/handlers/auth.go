package http_handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/baechuer/leads-api/internal/application/auth"
	"github.com/baechuer/leads-api/internal/domain"
	"github.com/baechuer/leads-api/internal/infrastructure/security"
	"github.com/baechuer/leads-api/internal/logger"
	"github.com/baechuer/leads-api/internal/transport/http/dto"
	"github.com/baechuer/leads-api/internal/transport/http/middleware"
	"github.com/baechuer/leads-api/internal/transport/http/response"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (auth.LoginResult, error)
	Me(ctx context.Context, userID int64) (domain.User, error)
}

type AuthHandler struct {
	svc           AuthService
	cookieMaxAge  time.Duration
	secureCookies bool
}

func NewAuthHandler(svc AuthService, cookieMaxAge time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		svc:           svc,
		cookieMaxAge:  cookieMaxAge,
		secureCookies: secureCookies,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		middleware.LoginAttemptsTotal.WithLabelValues(errorCode(err)).Inc()
		response.WriteError(w, r, err)
		return
	}

	status := "success"
	if res.Created {
		status = "provisioned"
		logger.WithCtx(r.Context()).Info().
			Str("user_id", strconv.FormatInt(res.User.ID, 10)).
			Msg("user_auto_provisioned")
	}
	middleware.LoginAttemptsTotal.WithLabelValues(status).Inc()

	logger.WithCtx(r.Context()).Info().
		Str("user_id", strconv.FormatInt(res.User.ID, 10)).
		Msg("user_logged_in")

	security.SetSessionCookies(w, res.Token, res.User.Email, h.cookieMaxAge, h.secureCookies)

	response.JSON(w, r, http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   res.Token,
		User:    dto.NewUserView(res.User),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	security.ClearSessionCookies(w, h.secureCookies)
	response.JSON(w, r, http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	u, err := h.svc.Me(r.Context(), u.ID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, dto.NewUserView(u))
}

func errorCode(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Code
	}
	return "internal_error"
}
