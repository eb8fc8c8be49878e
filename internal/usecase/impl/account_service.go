// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface. Each call is an
// independent, stateless unit of work; the only shared state between
// concurrent invocations is the credential store behind accountRepo.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	tokenIssuer service.TokenIssuer
	logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	accountRepo repository.AccountRepository,
	hasher service.PasswordHasher,
	tokenIssuer service.TokenIssuer,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		accountRepo: accountRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account from the given credentials.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil || input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required registration fields")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	account := &entity.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			srv.log(ctx).Warn("Registration rejected, credential already taken", slog.String("email", input.Email))

			return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("duplicate username or email")
		}

		srv.log(ctx).Error("Failed to create account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("accountID", account.ID))

	return &usecase.RegisterOutput{Account: account}, nil
}

// Login authenticates an account by email and password and issues a session
// token. An unknown email and a wrong password yield the same outcome so the
// caller cannot enumerate accounts.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required login fields")
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		srv.log(ctx).Error("Failed to load account for login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenIssuer.Issue(account.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Int64("accountID", account.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("failed to issue session token")
	}

	srv.log(ctx).Debug("Login completed", slog.Int64("accountID", account.ID))

	return &usecase.LoginOutput{
		Token:   token,
		Account: account,
	}, nil
}
