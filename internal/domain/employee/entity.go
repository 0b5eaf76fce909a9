package employee

import "time"

type Employee struct {
	ID           string
	Name         string
	Email        string // case-insensitive unique
	PasswordHash string
	IsAdmin      bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
