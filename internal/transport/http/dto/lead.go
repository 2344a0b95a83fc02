package dto

import (
	"time"

	"github.com/baechuer/leads-api/internal/application/lead"
	"github.com/baechuer/leads-api/internal/domain"
)

// LeadRequest accepts the address as "email" or "Email"; "email" wins when both are sent.
type LeadRequest struct {
	EmailLower *string             `json:"email" validate:"omitempty,email,max=254"`
	EmailUpper *string             `json:"Email" validate:"omitempty,email,max=254"`
	Status     *string             `json:"status"`
	SentAt     Nullable[time.Time] `json:"sent_at"`
	AssignedTo Nullable[string]    `json:"assigned_to"`
	FirstName  *string             `json:"first_name" validate:"omitempty,max=255"`
	LastName   *string             `json:"last_name" validate:"omitempty,max=255"`
	Company    *string             `json:"company" validate:"omitempty,max=255"`
	Title      *string             `json:"title" validate:"omitempty,max=255"`
	Phone      *string             `json:"phone" validate:"omitempty,max=255"`
	LinkedIn   *string             `json:"linkedin" validate:"omitempty,url,max=200"`
	Website    *string             `json:"website" validate:"omitempty,url,max=200"`
	City       *string             `json:"city" validate:"omitempty,max=255"`
	State      *string             `json:"state" validate:"omitempty,max=255"`
	Country    *string             `json:"country" validate:"omitempty,max=255"`
}

func (r *LeadRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.AssignedTo.Set && len(r.AssignedTo.Value) > 255 {
		return domain.ErrInvalidField("assigned_to", "must be at most 255 characters")
	}
	return nil
}

func (r LeadRequest) email() *string {
	if r.EmailLower != nil {
		return r.EmailLower
	}
	return r.EmailUpper
}

func (r LeadRequest) ToCreateCmd() lead.CreateCmd {
	return lead.CreateCmd{
		Email:      deref(r.email()),
		Status:     deref(r.Status),
		SentAt:     r.SentAt.Ptr(),
		AssignedTo: r.AssignedTo.Ptr(),
		FirstName:  deref(r.FirstName),
		LastName:   deref(r.LastName),
		Company:    deref(r.Company),
		Title:      deref(r.Title),
		Phone:      deref(r.Phone),
		LinkedIn:   deref(r.LinkedIn),
		Website:    deref(r.Website),
		City:       deref(r.City),
		State:      deref(r.State),
		Country:    deref(r.Country),
	}
}

func (r LeadRequest) ToUpdateCmd(id int64) lead.UpdateCmd {
	cmd := lead.UpdateCmd{
		ID:        id,
		Email:     r.email(),
		Status:    r.Status,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Company:   r.Company,
		Title:     r.Title,
		Phone:     r.Phone,
		LinkedIn:  r.LinkedIn,
		Website:   r.Website,
		City:      r.City,
		State:     r.State,
		Country:   r.Country,
	}
	if r.SentAt.Set {
		cmd.ClearSentAt = r.SentAt.Null
		cmd.SentAt = r.SentAt.Ptr()
	}
	if r.AssignedTo.Set {
		// null clears, same as ""
		v := ""
		if p := r.AssignedTo.Ptr(); p != nil {
			v = *p
		}
		cmd.AssignedTo = &v
	}
	return cmd
}

// LeadView exposes the address under both "email" and "Email".
type LeadView struct {
	ID         int64      `json:"id"`
	Email      string     `json:"email"`
	EmailUpper string     `json:"Email"`
	Status     string     `json:"status"`
	SentAt     *time.Time `json:"sent_at"`
	AssignedTo *string    `json:"assigned_to"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Company    string     `json:"company"`
	Title      string     `json:"title"`
	Phone      string     `json:"phone"`
	LinkedIn   string     `json:"linkedin"`
	Website    string     `json:"website"`
	City       string     `json:"city"`
	State      string     `json:"state"`
	Country    string     `json:"country"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewLeadView(l domain.Lead) LeadView {
	return LeadView{
		ID:         l.ID,
		Email:      l.Email,
		EmailUpper: l.Email,
		Status:     string(l.Status),
		SentAt:     l.SentAt,
		AssignedTo: l.AssignedTo,
		FirstName:  l.FirstName,
		LastName:   l.LastName,
		Company:    l.Company,
		Title:      l.Title,
		Phone:      l.Phone,
		LinkedIn:   l.LinkedIn,
		Website:    l.Website,
		City:       l.City,
		State:      l.State,
		Country:    l.Country,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func NewLeadViews(in []domain.Lead) []LeadView {
	out := make([]LeadView, 0, len(in))
	for _, l := range in {
		out = append(out, NewLeadView(l))
	}
	return out
}
