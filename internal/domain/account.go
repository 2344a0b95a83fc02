package domain

import "time"

type Account struct {
	ID        int64
	Name      string
	FirstName string
	LastName  string
	MainEmail string
	CreatedAt time.Time
	UpdatedAt time.Time
}
