package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test stubs ---

type stubAccountRepo struct {
	createErr error
	created   []*entity.Account
	byEmail   map[string]*entity.Account
	findErr   error
	nextID    int64
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{
		byEmail: make(map[string]*entity.Account),
		nextID:  1,
	}
}

func (r *stubAccountRepo) Create(_ context.Context, account *entity.Account) error {
	if r.createErr != nil {
		return r.createErr
	}
	account.ID = r.nextID
	r.nextID++
	r.created = append(r.created, account)
	r.byEmail[account.Email] = account

	return nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	account, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return account, nil
}

type stubHasher struct {
	hashErr error
}

func (h *stubHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type stubIssuer struct {
	issueErr error
	issued   []int64
}

func (i *stubIssuer) Issue(userID int64) (string, error) {
	if i.issueErr != nil {
		return "", i.issueErr
	}
	i.issued = append(i.issued, userID)

	return "signed-token", nil
}

func (i *stubIssuer) Validate(string) (*service.Claims, error) {
	panic("not used in these tests")
}

// --- Fixtures ---

type accountServiceFixtures struct {
	service usecase.AccountUsecase
	repo    *stubAccountRepo
	hasher  *stubHasher
	issuer  *stubIssuer
}

func createTestAccountService() accountServiceFixtures {
	repo := newStubAccountRepo()
	hasher := &stubHasher{}
	issuer := &stubIssuer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return accountServiceFixtures{
		service: NewAccountService(repo, hasher, issuer, logger),
		repo:    repo,
		hasher:  hasher,
		issuer:  issuer,
	}
}

func registerAlice(t *testing.T, fx accountServiceFixtures) *entity.Account {
	t.Helper()

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	return output.Account
}

// --- Register ---

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService()

	account := registerAlice(t, fx)

	assert.Equal(t, int64(1), account.ID)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, "a@x.com", account.Email)
	// The stored hash comes from the hasher, never the plaintext.
	assert.Equal(t, "hashed:secret1", account.PasswordHash)
}

func TestAccountService_Register_MissingFields(t *testing.T) {
	fx := createTestAccountService()

	inputs := []*usecase.RegisterInput{
		nil,
		{Username: "", Email: "a@x.com", Password: "secret1"},
		{Username: "alice", Email: "", Password: "secret1"},
		{Username: "alice", Email: "a@x.com", Password: ""},
	}

	for _, input := range inputs {
		_, err := fx.service.Register(context.Background(), input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}

	assert.Empty(t, fx.repo.created)
}

func TestAccountService_Register_Duplicate(t *testing.T) {
	fx := createTestAccountService()
	fx.repo.createErr = repository.ErrDuplicateAccount

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAccountService_Register_StoreUnavailable(t *testing.T) {
	fx := createTestAccountService()
	fx.repo.createErr = errors.New("connection refused")

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	// The opaque message must not leak the driver error.
	assert.NotContains(t, appErr.Message(), "connection refused")
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService()
	fx.hasher.hashErr = errors.New("entropy exhausted")

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	assert.Empty(t, fx.repo.created)
}

// --- Login ---

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService()
	account := registerAlice(t, fx)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@x.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, account.ID, output.Account.ID)
	assert.Equal(t, []int64{account.ID}, fx.issuer.issued)
}

func TestAccountService_Login_MissingFields(t *testing.T) {
	fx := createTestAccountService()

	inputs := []*usecase.LoginInput{
		nil,
		{Email: "", Password: "secret1"},
		{Email: "a@x.com", Password: ""},
	}

	for _, input := range inputs {
		_, err := fx.service.Login(context.Background(), input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestAccountService_Login_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	fx := createTestAccountService()
	registerAlice(t, fx)

	_, unknownErr := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@x.com",
		Password: "secret1",
	})
	_, wrongErr := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@x.com",
		Password: "wrong-password",
	})

	require.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)

	// Both paths surface the exact same user-visible error.
	var unknownApp, wrongApp domainerrors.AppError
	require.ErrorAs(t, unknownErr, &unknownApp)
	require.ErrorAs(t, wrongErr, &wrongApp)
	assert.Equal(t, unknownApp.HTTPCode(), wrongApp.HTTPCode())
	assert.Equal(t, unknownApp.ErrorCode(), wrongApp.ErrorCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())

	// No token is ever issued on a failed login.
	assert.Empty(t, fx.issuer.issued)
}

func TestAccountService_Login_CaseSensitiveEmail(t *testing.T) {
	fx := createTestAccountService()
	registerAlice(t, fx)

	// Email lookup is an exact, case-sensitive match.
	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "A@X.COM",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_StoreUnavailable(t *testing.T) {
	fx := createTestAccountService()
	fx.repo.findErr = errors.New("connection refused")

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@x.com",
		Password: "secret1",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestAccountService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestAccountService()
	registerAlice(t, fx)
	fx.issuer.issueErr = errors.New("signing failed")

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@x.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrTokenIssueFailed)
}
