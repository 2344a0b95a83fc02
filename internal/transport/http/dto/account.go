package dto

import (
	"time"

	"github.com/baechuer/leads-api/internal/application/account"
	"github.com/baechuer/leads-api/internal/domain"
)

// AccountRequest serves create, PUT and PATCH. Absent fields are left unchanged on update.
type AccountRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=255"`
	FirstName *string `json:"first_name" validate:"omitempty,max=255"`
	LastName  *string `json:"last_name" validate:"omitempty,max=255"`
	MainEmail *string `json:"main_email" validate:"omitempty,email,max=254"`
}

func (r *AccountRequest) Validate() error { return validateStruct(r) }

func (r AccountRequest) ToCreateCmd() account.CreateCmd {
	return account.CreateCmd{
		Name:      deref(r.Name),
		FirstName: deref(r.FirstName),
		LastName:  deref(r.LastName),
		MainEmail: deref(r.MainEmail),
	}
}

func (r AccountRequest) ToUpdateCmd(id int64) account.UpdateCmd {
	return account.UpdateCmd{
		ID:        id,
		Name:      r.Name,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		MainEmail: r.MainEmail,
	}
}

type AccountView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	MainEmail string    `json:"main_email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAccountView(a domain.Account) AccountView {
	return AccountView{
		ID:        a.ID,
		Name:      a.Name,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		MainEmail: a.MainEmail,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func NewAccountViews(in []domain.Account) []AccountView {
	out := make([]AccountView, 0, len(in))
	for _, a := range in {
		out = append(out, NewAccountView(a))
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
