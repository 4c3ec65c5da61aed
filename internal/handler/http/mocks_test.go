package http

import (
	"context"

	"github.com/ametelin/veriauth/internal/logger"
	"github.com/ametelin/veriauth/internal/service"
	"github.com/ametelin/veriauth/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Set only the funcs your test needs; the rest return zero values.
type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	verifyEmailFn func(ctx context.Context, rawToken string) (models.User, error)
	loginFn       func(ctx context.Context, email, password string) (models.User, models.Token, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) VerifyEmail(ctx context.Context, rawToken string) (models.User, error) {
	if m.verifyEmailFn != nil {
		return m.verifyEmailFn(ctx, rawToken)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return models.User{}, models.Token{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

// mockAccountService implements service.AccountService for unit tests.
type mockAccountService struct {
	listUsersFn      func(ctx context.Context) ([]models.User, error)
	deleteUserFn     func(ctx context.Context, id string) error
	deleteAllUsersFn func(ctx context.Context) (int64, error)
}

func (m *mockAccountService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, nil
}

func (m *mockAccountService) DeleteUser(ctx context.Context, id string) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(ctx, id)
	}
	return nil
}

func (m *mockAccountService) DeleteAllUsers(ctx context.Context) (int64, error) {
	if m.deleteAllUsersFn != nil {
		return m.deleteAllUsersFn(ctx)
	}
	return 0, nil
}

func newTestHandler(auth service.AuthService, account service.AccountService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:    auth,
			AccountService: account,
		},
	}
}
