package memstore

import (
	"context"
	"sync"

	"couponhub/internal/domain/admin"
	"couponhub/internal/infra"
)

type AdminRepository struct {
	mu     sync.RWMutex
	admins map[string]*admin.Admin
}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{
		admins: make(map[string]*admin.Admin),
	}
}

func (r *AdminRepository) FindByUsername(_ context.Context, username admin.Username) (*admin.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.admins[username.Value()]
	if !ok {
		return nil, infra.NotFound("admin not found")
	}
	return a, nil
}

func (r *AdminRepository) Upsert(_ context.Context, a *admin.Admin) (*admin.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := a.Username().Value()
	if existing, ok := r.admins[key]; ok {
		updated := admin.Reconstruct(existing.ID(), existing.Username(), a.PasswordHash())
		r.admins[key] = updated
		return updated, nil
	}
	r.admins[key] = a
	return a, nil
}
