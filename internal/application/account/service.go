package account

import (
	"context"
	"strings"

	"github.com/baechuer/leads-api/internal/domain"
)

type Service struct {
	repo AccountRepo
}

func New(repo AccountRepo) *Service {
	return &Service{repo: repo}
}

type ListFilter struct {
	Search string
}

func (f *ListFilter) Normalize() {
	f.Search = strings.TrimSpace(f.Search)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.Account, error) {
	f.Normalize()
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Account, error) {
	return s.repo.GetByID(ctx, id)
}

type CreateCmd struct {
	Name      string
	FirstName string
	LastName  string
	MainEmail string
}

func (s *Service) Create(ctx context.Context, cmd CreateCmd) (domain.Account, error) {
	a := domain.Account{
		Name:      strings.TrimSpace(cmd.Name),
		FirstName: strings.TrimSpace(cmd.FirstName),
		LastName:  strings.TrimSpace(cmd.LastName),
		MainEmail: domain.NormalizeEmail(cmd.MainEmail),
	}
	if a.Name == "" {
		return domain.Account{}, domain.ErrMissingField("name")
	}
	return s.repo.Create(ctx, a)
}

// UpdateCmd applies only the non-nil fields.
type UpdateCmd struct {
	ID        int64
	Name      *string
	FirstName *string
	LastName  *string
	MainEmail *string
}

func (s *Service) Update(ctx context.Context, cmd UpdateCmd) (domain.Account, error) {
	a, err := s.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return domain.Account{}, err
	}

	if cmd.Name != nil {
		name := strings.TrimSpace(*cmd.Name)
		if name == "" {
			return domain.Account{}, domain.ErrMissingField("name")
		}
		a.Name = name
	}
	if cmd.FirstName != nil {
		a.FirstName = strings.TrimSpace(*cmd.FirstName)
	}
	if cmd.LastName != nil {
		a.LastName = strings.TrimSpace(*cmd.LastName)
	}
	if cmd.MainEmail != nil {
		a.MainEmail = domain.NormalizeEmail(*cmd.MainEmail)
	}

	return s.repo.Update(ctx, a)
}

// Delete removes the account; emails referencing it keep existing with no owner.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
