package domain

import (
	"strings"
	"time"
)

type LeadStatus string

const (
	LeadUnused  LeadStatus = "unused"
	LeadSent    LeadStatus = "sent"
	LeadBad     LeadStatus = "bad"
	LeadBounced LeadStatus = "bounced"
	LeadOpened  LeadStatus = "opened"
	LeadReplied LeadStatus = "replied"
	LeadDemoed  LeadStatus = "demoed"
)

var leadStatuses = []LeadStatus{
	LeadUnused, LeadSent, LeadBad, LeadBounced, LeadOpened, LeadReplied, LeadDemoed,
}

func (s LeadStatus) Valid() bool {
	for _, v := range leadStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseLeadStatus accepts any casing and surrounding whitespace.
// An empty value yields LeadUnused.
func ParseLeadStatus(raw string) (LeadStatus, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return LeadUnused, nil
	}
	s := LeadStatus(raw)
	if !s.Valid() {
		return "", ErrInvalidField("status", "must be one of: unused, sent, bad, bounced, opened, replied, demoed")
	}
	return s, nil
}

type Lead struct {
	ID         int64
	Email      string
	Status     LeadStatus
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
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NormalizeEmail lowercases and trims an address. Used for users, leads and emails alike.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
