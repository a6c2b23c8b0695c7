package impl

import (
	"context"
	"log/slog"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface. Admin accounts live in
// the same accounts table as donors; listing filters on the admin role.
type adminService struct {
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *adminService) Get(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, err
	}
	if account.Role == entity.RoleDonor {
		return nil, domainerrors.ErrAccountNotFound
	}

	return account, nil
}

func (srv *adminService) List(ctx context.Context) ([]*entity.Account, error) {
	role := entity.RoleAdmin

	return srv.accountRepo.FindAll(ctx, &role)
}

// Update modifies an admin account's profile. Donor accounts are invisible to
// this path, and the role can only move between the non-donor values. The
// password hash is never part of the update.
func (srv *adminService) Update(ctx context.Context, id uuid.UUID, input usecase.AdminInput) (*entity.Account, error) {
	account, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = account.Role
	}
	if !role.IsValid() || role == entity.RoleDonor {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("role must be admin or hospital")
	}

	account.FirstName = input.FirstName
	account.LastName = input.LastName
	account.Email = input.Email
	account.Role = role

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		srv.logger.Warn("Admin update failed", slog.Any("accountID", id), slog.Any("error", err))

		return nil, err
	}

	return srv.Get(ctx, id)
}

// Delete removes an admin account. Donor accounts are invisible to this path.
func (srv *adminService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.Get(ctx, id); err != nil {
		return err
	}

	if err := srv.accountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		srv.logger.Warn("Admin delete failed", slog.Any("accountID", id), slog.Any("error", err))

		return err
	}

	return nil
}
