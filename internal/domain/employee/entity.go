package employee

import (
	"time"
)

// Employee is owned by the directory. The presence engine only ever reads it;
// mutations happen through sign-up and admin flows.
type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash *string
	Position     string
	Division     string
	CardNumber   *int64
	PhotoURL     *string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
