package email

import (
	"context"
	"strings"

	"github.com/baechuer/leads-api/internal/domain"
)

type Service struct {
	repo     EmailRepo
	accounts AccountLookup
}

func New(repo EmailRepo, accounts AccountLookup) *Service {
	return &Service{repo: repo, accounts: accounts}
}

type ListFilter struct {
	Search    string
	AccountID *int64
}

func (f *ListFilter) Normalize() {
	f.Search = strings.TrimSpace(f.Search)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.Email, error) {
	f.Normalize()
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Email, error) {
	return s.repo.GetByID(ctx, id)
}

type CreateCmd struct {
	Address   string
	AccountID *int64
}

func (s *Service) Create(ctx context.Context, cmd CreateCmd) (domain.Email, error) {
	addr := domain.NormalizeEmail(cmd.Address)
	if addr == "" {
		return domain.Email{}, domain.ErrMissingField("email")
	}
	accountID, err := s.resolveAccount(ctx, cmd.AccountID)
	if err != nil {
		return domain.Email{}, err
	}
	return s.repo.Create(ctx, domain.Email{Address: addr, AccountID: accountID})
}

// UpdateCmd applies only the non-nil fields. ClearAccount detaches the owner.
type UpdateCmd struct {
	ID           int64
	Address      *string
	AccountID    *int64
	ClearAccount bool
}

func (s *Service) Update(ctx context.Context, cmd UpdateCmd) (domain.Email, error) {
	e, err := s.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return domain.Email{}, err
	}

	if cmd.Address != nil {
		addr := domain.NormalizeEmail(*cmd.Address)
		if addr == "" {
			return domain.Email{}, domain.ErrMissingField("email")
		}
		e.Address = addr
	}
	switch {
	case cmd.ClearAccount:
		e.AccountID = nil
	case cmd.AccountID != nil:
		id, err := s.resolveAccount(ctx, cmd.AccountID)
		if err != nil {
			return domain.Email{}, err
		}
		e.AccountID = id
	}
	e.Account = nil

	return s.repo.Update(ctx, e)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// resolveAccount drops references to accounts that do not exist.
func (s *Service) resolveAccount(ctx context.Context, id *int64) (*int64, error) {
	if id == nil {
		return nil, nil
	}
	ok, err := s.accounts.Exists(ctx, *id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	v := *id
	return &v, nil
}
