package dto

import (
	"time"

	"github.com/baechuer/leads-api/internal/application/email"
	"github.com/baechuer/leads-api/internal/domain"
)

// EmailRequest takes the owning account as "accountId" or "account"; "accountId" wins.
type EmailRequest struct {
	Email     *string    `json:"email" validate:"omitempty,email,max=254"`
	AccountID OptionalID `json:"accountId"`
	Account   OptionalID `json:"account"`
}

func (r *EmailRequest) Validate() error { return validateStruct(r) }

func (r EmailRequest) account() OptionalID {
	if r.AccountID.Set {
		return r.AccountID
	}
	return r.Account
}

func (r EmailRequest) ToCreateCmd() email.CreateCmd {
	cmd := email.CreateCmd{Address: deref(r.Email)}
	if acc := r.account(); acc.Set && !acc.Null {
		id := acc.Value
		cmd.AccountID = &id
	}
	return cmd
}

func (r EmailRequest) ToUpdateCmd(id int64) email.UpdateCmd {
	cmd := email.UpdateCmd{ID: id, Address: r.Email}
	if acc := r.account(); acc.Set {
		if acc.Null {
			cmd.ClearAccount = true
		} else {
			v := acc.Value
			cmd.AccountID = &v
		}
	}
	return cmd
}

type EmailView struct {
	ID             int64        `json:"id"`
	Email          string       `json:"email"`
	Account        *int64       `json:"account"`
	AccountDetails *AccountView `json:"account_details"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func NewEmailView(e domain.Email) EmailView {
	v := EmailView{
		ID:        e.ID,
		Email:     e.Address,
		Account:   e.AccountID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.Account != nil {
		av := NewAccountView(*e.Account)
		v.AccountDetails = &av
	}
	return v
}

func NewEmailViews(in []domain.Email) []EmailView {
	out := make([]EmailView, 0, len(in))
	for _, e := range in {
		out = append(out, NewEmailView(e))
	}
	return out
}
