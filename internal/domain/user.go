package domain

import "time"

type User struct {
	ID           int64
	Email        string
	PasswordHash string // empty when no password is stored
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) HasPassword() bool { return u.PasswordHash != "" }
