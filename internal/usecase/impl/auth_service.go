// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// RegisterDonor creates the credential record and the donor profile in one
// transaction, so a duplicate email leaves no orphaned profile behind.
func (srv *authService) RegisterDonor(ctx context.Context, input usecase.RegisterDonorInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting donor registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	account := &entity.Account{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleDonor,
	}

	var profile *entity.Donor

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AccountRepo().Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account during registration")
		}

		profile = &entity.Donor{
			AccountID: &account.ID,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Contact:   entity.ContactInfo{Email: input.Email},
		}
		if err := repoFactory.DonorRepo().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create donor profile during registration")
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Donor registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Debug("Donor registration completed", slog.Any("accountID", account.ID))

	return &usecase.RegisterOutput{Account: account, Donor: profile}, nil
}

// RegisterAdmin creates an admin (or hospital) credential record.
func (srv *authService) RegisterAdmin(ctx context.Context, input usecase.RegisterAdminInput) (*usecase.RegisterOutput, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleAdmin
	}
	if !role.IsValid() || role == entity.RoleDonor {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("role must be admin or hospital")
	}

	srv.logger.Info("Starting admin registration", slog.String("email", input.Email), slog.Any("role", role))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	account := &entity.Account{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		srv.logger.Warn("Admin registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Debug("Admin registration completed", slog.Any("accountID", account.ID))

	return &usecase.RegisterOutput{Account: account}, nil
}

// Login verifies the credentials and issues an access token. An unknown
// email and a role mismatch return the same account-not-found error, so the
// response does not reveal which role an email is registered under. A wrong
// password returns invalid-credentials without any timing shortcut; the
// bcrypt comparison always runs.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput, expectedRole entity.Role) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.logger.Warn("Login attempt for unknown email", slog.Any("role", expectedRole))

			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to look up account during login")
	}

	if account.Role != expectedRole {
		srv.logger.Warn("Login role mismatch", slog.Any("expected", expectedRole), slog.Any("actual", account.Role))

		return nil, domainerrors.ErrAccountNotFound
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.logger.Warn("Login password mismatch", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(account.ID, account.Email)
	if err != nil {
		srv.logger.Error("Failed to sign access token", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign access token")
	}

	srv.logger.Debug("Login completed", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{Token: token}, nil
}
