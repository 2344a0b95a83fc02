package auth

import (
	"context"
	"strconv"

	"github.com/baechuer/leads-api/internal/domain"
)

type LoginResult struct {
	User    domain.User
	Token   string
	Created bool // user was auto-provisioned by this login
}

// Login resolves (or provisions) the user for email and issues a token.
// An existing user's password is checked only when both a password is
// supplied and a hash is stored.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return LoginResult{}, domain.ErrMissingField("email")
	}

	u, err := s.users.GetByEmail(ctx, email)
	created := false
	switch {
	case err == nil:
		if password != "" && u.HasPassword() {
			if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
				s.audit("login_failed", map[string]string{"email": email, "reason": "bad_password"})
				return LoginResult{}, domain.ErrInvalidCredentials()
			}
		}

	case domain.Is(err, "user_not_found"):
		if !s.autoCreateUsers {
			s.audit("login_failed", map[string]string{"email": email, "reason": "unknown_user"})
			return LoginResult{}, domain.ErrInvalidCredentials()
		}
		u, err = s.provision(ctx, email, password)
		if err != nil {
			return LoginResult{}, err
		}
		created = true

	default:
		return LoginResult{}, err
	}

	tok, err := s.signer.SignToken(u, s.tokenTTL)
	if err != nil {
		return LoginResult{}, err
	}

	s.audit("login", map[string]string{"user_id": strconv.FormatInt(u.ID, 10)})
	return LoginResult{User: u, Token: tok, Created: created}, nil
}

func (s *Service) provision(ctx context.Context, email, password string) (domain.User, error) {
	if password == "" {
		password = s.defaultPassword
	}

	var hash string
	if password != "" {
		h, err := s.hasher.Hash(password)
		if err != nil {
			return domain.User{}, err
		}
		hash = h
	}

	u, err := s.users.Create(ctx, domain.User{Email: email, PasswordHash: hash})
	if domain.Is(err, "email_already_exists") {
		// lost a race with a concurrent first login
		return s.users.GetByEmail(ctx, email)
	}
	if err != nil {
		return domain.User{}, err
	}

	s.audit("user_auto_provisioned", map[string]string{"user_id": strconv.FormatInt(u.ID, 10)})
	return u, nil
}
