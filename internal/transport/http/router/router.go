package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baechuer/leads-api/internal/transport/http/middleware"
)

type HealthHandler interface {
	Health(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

// ResourceHandler is the full CRUD surface shared by accounts, leads and emails.
type ResourceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TemplateHandler interface {
	ListMessages(w http.ResponseWriter, r *http.Request)
	GetMessage(w http.ResponseWriter, r *http.Request)
	ListSubjects(w http.ResponseWriter, r *http.Request)
	GetSubject(w http.ResponseWriter, r *http.Request)
}

type UploadHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health    HealthHandler
	Auth      AuthHandler
	Accounts  ResourceHandler
	Leads     ResourceHandler
	Emails    ResourceHandler
	Templates TemplateHandler
	Upload    UploadHandler

	AuthMW func(http.Handler) http.Handler
	// LoginRateMW is optional.
	LoginRateMW func(http.Handler) http.Handler

	CORSAllowedOrigins []string
	RLEnabled          bool
	RLLimit            int
	RLWindow           time.Duration
}

func New(deps Deps) (http.Handler, error) {
	switch {
	case deps.Health == nil:
		return nil, fmt.Errorf("nil Health handler")
	case deps.Auth == nil:
		return nil, fmt.Errorf("nil Auth handler")
	case deps.Accounts == nil, deps.Leads == nil, deps.Emails == nil:
		return nil, fmt.Errorf("nil resource handler")
	case deps.Templates == nil:
		return nil, fmt.Errorf("nil Templates handler")
	case deps.Upload == nil:
		return nil, fmt.Errorf("nil Upload handler")
	case deps.AuthMW == nil:
		return nil, fmt.Errorf("nil Auth middleware")
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.SecurityHeaders)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.HeaderXRequestID},
		ExposedHeaders:   []string{middleware.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if deps.RLEnabled && deps.RLLimit > 0 {
		r.Use(httprate.LimitByIP(deps.RLLimit, deps.RLWindow))
	}

	r.Get("/health", deps.Health.Health)
	r.Get("/readyz", deps.Health.Readyz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		login := http.HandlerFunc(deps.Auth.Login)
		if deps.LoginRateMW != nil {
			r.With(deps.LoginRateMW).Post("/login", login)
		} else {
			r.Post("/login", login)
		}
		r.Post("/logout", deps.Auth.Logout)
		r.With(deps.AuthMW).Get("/me", deps.Auth.Me)
	})

	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMW)

		mountResource(r, "/accounts", deps.Accounts, nil)
		mountResource(r, "/leads", deps.Leads, func(r chi.Router) {
			r.Post("/upload", deps.Upload.Upload)
		})
		mountResource(r, "/emails", deps.Emails, nil)

		r.Get("/message-templates", deps.Templates.ListMessages)
		r.Get("/message-templates/{id}", deps.Templates.GetMessage)
		r.Get("/subject-templates", deps.Templates.ListSubjects)
		r.Get("/subject-templates/{id}", deps.Templates.GetSubject)
	})

	return r, nil
}

// mountResource registers list/create on the collection and get/put/patch/delete on /{id}.
func mountResource(r chi.Router, path string, h ResourceHandler, extra func(chi.Router)) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		if extra != nil {
			extra(r)
		}
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
