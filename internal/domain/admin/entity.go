package admin

import (
	"github.com/google/uuid"
)

// Admin is the single privileged identity. Admins are provisioned out of band.
type Admin struct {
	id           uuid.UUID
	username     Username
	passwordHash string
}

func NewAdmin(username Username, passwordHash string) *Admin {
	return &Admin{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
	}
}

func Reconstruct(id uuid.UUID, username Username, passwordHash string) *Admin {
	return &Admin{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
	}
}

func (a *Admin) ID() uuid.UUID        { return a.id }
func (a *Admin) Username() Username   { return a.username }
func (a *Admin) PasswordHash() string { return a.passwordHash }
