package usecase

import (
	"context"

	"couponhub/internal/domain/admin"
	"couponhub/internal/pkg/errs"
	"couponhub/internal/pkg/password"
	"couponhub/internal/usecase/readmodel"
)

var ErrPasswordHashing = errs.New("password hashing failed")

// AdminUseCase provisions the single admin account. It is driven by the
// couponctl CLI and never exposed over HTTP.
type AdminUseCase interface {
	Provision(ctx context.Context, username, plainPassword string) (*readmodel.AdminRM, error)
}

type adminUseCaseImpl struct {
	adminRepo AdminRepository
}

func NewAdminUseCase(adminRepo AdminRepository) AdminUseCase {
	return &adminUseCaseImpl{
		adminRepo: adminRepo,
	}
}

func (u *adminUseCaseImpl) Provision(ctx context.Context, username, plainPassword string) (*readmodel.AdminRM, error) {
	credentials, err := admin.NewCredentials(username, plainPassword)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrPasswordHashing)
	}

	saved, err := u.adminRepo.Upsert(ctx, admin.NewAdmin(credentials.Username(), hash))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &readmodel.AdminRM{
		ID:       saved.ID(),
		Username: saved.Username().Value(),
	}, nil
}
