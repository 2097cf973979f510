package usecase

import (
	"context"
	"log/slog"

	"couponhub/internal/domain/admin"
	"couponhub/internal/infra"
	"couponhub/internal/pkg/errs"
	"couponhub/internal/pkg/jwt"
	"couponhub/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.ErrInvalidCredentials
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type LoginResult struct {
	AdminID uuid.UUID
	Token   string
}

type AuthUseCase interface {
	Login(ctx context.Context, username, plainPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	adminRepo  AdminRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(adminRepo AdminRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, username, plainPassword string) (*LoginResult, error) {
	credentials, err := admin.NewCredentials(username, plainPassword)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	adm, err := a.validateAdmin(ctx, credentials)
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(adm.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		AdminID: adm.ID(),
		Token:   token,
	}, nil
}

func (a *authUseCaseImpl) validateAdmin(ctx context.Context, credentials admin.Credentials) (*admin.Admin, error) {
	adm, err := a.adminRepo.FindByUsername(ctx, credentials.Username())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a wrong password so usernames cannot be probed
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	err = password.ComparePassword(adm.PasswordHash(), credentials.Password().Value())
	if err != nil {
		slog.Debug("password comparison failed", "admin_id", adm.ID().String(), "error", err.Error())
		return nil, ErrInvalidCredentials
	}

	return adm, nil
}
