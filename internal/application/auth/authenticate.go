package auth

import (
	"context"
	"strings"

	"github.com/baechuer/leads-api/internal/domain"
)

// Authenticate verifies a raw token and resolves its subject.
func (s *Service) Authenticate(ctx context.Context, token string) (domain.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.User{}, domain.ErrTokenMissing()
	}

	claims, err := s.signer.VerifyToken(token)
	if err != nil {
		return domain.User{}, err
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			return domain.User{}, domain.ErrUnknownSubject()
		}
		return domain.User{}, err
	}
	return u, nil
}

// Me returns the current user by id.
func (s *Service) Me(ctx context.Context, userID int64) (domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
