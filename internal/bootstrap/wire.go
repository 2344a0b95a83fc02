package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/baechuer/leads-api/internal/application/account"
	"github.com/baechuer/leads-api/internal/application/auth"
	"github.com/baechuer/leads-api/internal/application/email"
	"github.com/baechuer/leads-api/internal/application/lead"
	"github.com/baechuer/leads-api/internal/application/leadimport"
	"github.com/baechuer/leads-api/internal/application/template"
	"github.com/baechuer/leads-api/internal/config"
	"github.com/baechuer/leads-api/internal/infrastructure/db/postgres"
	"github.com/baechuer/leads-api/internal/infrastructure/memory"
	rabbitmq_pub "github.com/baechuer/leads-api/internal/infrastructure/messaging/rabbitmq"
	"github.com/baechuer/leads-api/internal/infrastructure/redis"
	"github.com/baechuer/leads-api/internal/infrastructure/security"
	"github.com/baechuer/leads-api/internal/infrastructure/storage"
	"github.com/baechuer/leads-api/internal/logger"
	http_handlers "github.com/baechuer/leads-api/internal/transport/http/handlers"
	"github.com/baechuer/leads-api/internal/transport/http/middleware"
	"github.com/baechuer/leads-api/internal/transport/http/response"
	"github.com/baechuer/leads-api/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(dsn string, debug bool) (*sql.DB, error)

	// Optional. Nil skips Redis entirely.
	NewRedis func(ctx context.Context, url string) (*redis.Client, error)

	NewPublisher func(url, exchange string) (Publisher, error)

	// Optional. Nil disables upload archiving.
	NewArchive func(ctx context.Context, cfg storage.S3Config) (Archive, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

type Publisher interface {
	leadimport.EventPublisher
}

type Archive interface {
	leadimport.Archiver
	EnsureBucket(ctx context.Context) error
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db
	db, err := deps.NewDB(cfg.DatabaseURL, cfg.DBDebug)
	if err != nil {
		return nil, nil, err
	}
	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	if cfg.DBAutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := postgres.Migrate(ctx, db)
		cancel()
		if err != nil {
			runCleanup(cleanupFns)
			return nil, nil, err
		}
		logger.Logger.Info().Msg("schema migrated")
	}

	userRepo := postgres.NewUserRepo(db)
	accountRepo := postgres.NewAccountRepo(db)
	leadRepo := postgres.NewLeadRepo(db)
	emailRepo := postgres.NewEmailRepo(db)
	templateRepo := postgres.NewTemplateRepo(db)

	if cfg.DBSeed {
		postgres.SeedTemplates(context.Background(), templateRepo)
	}

	// 2) redis (best-effort)
	var redisCli *redis.Client
	if deps.NewRedis != nil && cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		c, err := deps.NewRedis(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; cache and login rate limit disabled")
		} else {
			logger.Logger.Info().Msg("redis connected")
			redisCli = c
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
	}

	var templateCache template.Cache
	if redisCli != nil {
		templateCache = redis.NewCache(redisCli)
	}

	// 3) publisher
	var pub Publisher
	if cfg.RabbitURL != "" {
		pub, err = deps.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
	} else {
		err = errors.New("RABBIT_URL not set")
	}
	if err != nil {
		if cfg.Env != "dev" {
			runCleanup(cleanupFns)
			return nil, nil, err
		}
		logger.Logger.Warn().Err(err).Msg("rabbitmq unavailable; using noop publisher")
		pub = memory.NewNoopPublisher()
	}
	if c, ok := pub.(interface{ Close() error }); ok {
		cleanupFns = append(cleanupFns, func() { _ = c.Close() })
	}

	// 4) upload archive (optional)
	var archive leadimport.Archiver
	if deps.NewArchive != nil && cfg.S3Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		a, err := deps.NewArchive(ctx, storage.S3Config{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			UsePathStyle:    cfg.S3UsePathStyle,
		})
		if err == nil {
			err = a.EnsureBucket(ctx)
		}
		cancel()
		if err != nil {
			logger.Logger.Warn().Err(err).Str("bucket", cfg.S3Bucket).Msg("s3 unavailable; upload archiving disabled")
		} else {
			archive = a
		}
	}

	// 5) security
	logger.Logger.Info().Str("issuer", cfg.JWTIssuer).Msg("initializing jwt signer")
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	// 6) services
	authSvc := auth.NewService(userRepo, hasher, signer, auth.Config{
		TokenTTL:        cfg.TokenTTL,
		AutoCreateUsers: cfg.AutoCreateUsers,
		DefaultPassword: cfg.DefaultPassword,
	})
	authSvc = authSvc.WithAudit(func(action string, fields map[string]string) {
		evt := logger.Logger.Info().
			Bool("audit", true).
			Str("action", action)
		for k, v := range fields {
			evt = evt.Str(k, v)
		}
		evt.Msg("audit")
	})

	accountSvc := account.New(accountRepo)
	leadSvc := lead.New(leadRepo)
	emailSvc := email.New(emailRepo, accountRepo)
	templateSvc := template.New(templateRepo, templateCache, cfg.CacheTTLTemplates)
	importer := leadimport.New(leadRepo, archive, pub)

	// 7) handlers + middleware
	authMW := middleware.Auth(authSvc, response.WriteError)

	var loginRL func(http.Handler) http.Handler
	if redisCli != nil && cfg.LoginRLLimit > 0 {
		loginRL = middleware.RateLimitFixedWindow(
			redis.NewFixedWindowLimiter(redisCli),
			middleware.FixedWindowConfig{
				RouteKey: "login",
				Limit:    cfg.LoginRLLimit,
				Window:   cfg.LoginRLWindow,
			},
			response.WriteError,
		)
	}

	// 8) router
	mux, err := deps.NewRouter(router.Deps{
		Health:    http_handlers.NewHealthHandler(db),
		Auth:      http_handlers.NewAuthHandler(authSvc, cfg.CookieMaxAge, cfg.CookieSecure),
		Accounts:  http_handlers.NewAccountHandler(accountSvc),
		Leads:     http_handlers.NewLeadHandler(leadSvc),
		Emails:    http_handlers.NewEmailHandler(emailSvc),
		Templates: http_handlers.NewTemplateHandler(templateSvc),
		Upload:    http_handlers.NewUploadHandler(importer, cfg.UploadMaxBytes),

		AuthMW:      authMW,
		LoginRateMW: loginRL,

		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RLEnabled:          cfg.RLEnabled,
		RLLimit:            cfg.RLLimit,
		RLWindow:           cfg.RLWindow,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 9) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB:      config.NewDB,
		NewRedis:   redis.New,
		NewPublisher: func(url, exchange string) (Publisher, error) {
			p, err := rabbitmq_pub.NewPublisher(url, exchange)
			if err != nil {
				return nil, err
			}
			return p, nil
		},
		NewArchive: func(ctx context.Context, cfg storage.S3Config) (Archive, error) {
			a, err := storage.NewS3Archive(ctx, cfg, logger.Logger.With().Str("component", "s3").Logger())
			if err != nil {
				return nil, err
			}
			return a, nil
		},
		NewRouter: router.New,
	}
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
