package readmodel

import (
	"github.com/google/uuid"
)

// AdminRM never carries the password hash.
type AdminRM struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}
