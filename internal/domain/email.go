package domain

import "time"

// Email is a known mailbox, optionally owned by an Account.
// AccountID becomes nil when the account is deleted.
type Email struct {
	ID        int64
	Address   string
	AccountID *int64
	Account   *Account
	CreatedAt time.Time
	UpdatedAt time.Time
}
