package auth

import (
	"time"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner

	tokenTTL        time.Duration
	autoCreateUsers bool
	defaultPassword string
	audit           func(action string, fields map[string]string)
}

type Config struct {
	TokenTTL time.Duration

	// AutoCreateUsers provisions a user on first login with an unknown email.
	AutoCreateUsers bool
	// DefaultPassword is hashed for auto-provisioned users that log in without a password.
	DefaultPassword string
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, cfg Config) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Service{
		users:           users,
		hasher:          hasher,
		signer:          signer,
		tokenTTL:        ttl,
		autoCreateUsers: cfg.AutoCreateUsers,
		defaultPassword: cfg.DefaultPassword,
		audit:           func(string, map[string]string) {},
	}
}

// WithAudit installs a hook called for security-relevant actions.
func (s *Service) WithAudit(fn func(action string, fields map[string]string)) *Service {
	if fn != nil {
		s.audit = fn
	}
	return s
}

func (s *Service) TokenTTL() time.Duration { return s.tokenTTL }
