package lead

import (
	"context"
	"strings"
	"time"

	"github.com/baechuer/leads-api/internal/domain"
)

type Service struct {
	repo LeadRepo
}

func New(repo LeadRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.Lead, error) {
	f.Normalize()
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Lead, error) {
	return s.repo.GetByID(ctx, id)
}

type CreateCmd struct {
	Email      string
	Status     string
	SentAt     *time.Time
	AssignedTo *string
	FirstName  string
	LastName   string
	Company    string
	Title      string
	Phone      string
	LinkedIn   string
	Website    string
	City       string
	State      string
	Country    string
}

func (s *Service) Create(ctx context.Context, cmd CreateCmd) (domain.Lead, error) {
	email := domain.NormalizeEmail(cmd.Email)
	if email == "" {
		return domain.Lead{}, domain.ErrMissingField("email")
	}
	status, err := domain.ParseLeadStatus(cmd.Status)
	if err != nil {
		return domain.Lead{}, err
	}

	l := domain.Lead{
		Email:      email,
		Status:     status,
		SentAt:     cmd.SentAt,
		AssignedTo: optionalLabel(cmd.AssignedTo),
		FirstName:  strings.TrimSpace(cmd.FirstName),
		LastName:   strings.TrimSpace(cmd.LastName),
		Company:    strings.TrimSpace(cmd.Company),
		Title:      strings.TrimSpace(cmd.Title),
		Phone:      strings.TrimSpace(cmd.Phone),
		LinkedIn:   strings.TrimSpace(cmd.LinkedIn),
		Website:    strings.TrimSpace(cmd.Website),
		City:       strings.TrimSpace(cmd.City),
		State:      strings.TrimSpace(cmd.State),
		Country:    strings.TrimSpace(cmd.Country),
	}
	return s.repo.Create(ctx, l)
}

// UpdateCmd applies only the non-nil fields.
// ClearSentAt and a blank AssignedTo reset those columns to NULL.
type UpdateCmd struct {
	ID          int64
	Email       *string
	Status      *string
	SentAt      *time.Time
	ClearSentAt bool
	AssignedTo  *string
	FirstName   *string
	LastName    *string
	Company     *string
	Title       *string
	Phone       *string
	LinkedIn    *string
	Website     *string
	City        *string
	State       *string
	Country     *string
}

func (s *Service) Update(ctx context.Context, cmd UpdateCmd) (domain.Lead, error) {
	l, err := s.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return domain.Lead{}, err
	}

	if cmd.Email != nil {
		email := domain.NormalizeEmail(*cmd.Email)
		if email == "" {
			return domain.Lead{}, domain.ErrMissingField("email")
		}
		l.Email = email
	}
	if cmd.Status != nil {
		status, err := domain.ParseLeadStatus(*cmd.Status)
		if err != nil {
			return domain.Lead{}, err
		}
		l.Status = status
	}
	switch {
	case cmd.ClearSentAt:
		l.SentAt = nil
	case cmd.SentAt != nil:
		l.SentAt = cmd.SentAt
	}
	if cmd.AssignedTo != nil {
		l.AssignedTo = optionalLabel(cmd.AssignedTo)
	}

	setText(&l.FirstName, cmd.FirstName)
	setText(&l.LastName, cmd.LastName)
	setText(&l.Company, cmd.Company)
	setText(&l.Title, cmd.Title)
	setText(&l.Phone, cmd.Phone)
	setText(&l.LinkedIn, cmd.LinkedIn)
	setText(&l.Website, cmd.Website)
	setText(&l.City, cmd.City)
	setText(&l.State, cmd.State)
	setText(&l.Country, cmd.Country)

	return s.repo.Update(ctx, l)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func setText(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func optionalLabel(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}
