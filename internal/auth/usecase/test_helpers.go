package usecase

import (
	"context"

	"calendar-assistant/internal/model"
	"calendar-assistant/internal/user/repository"
	"calendar-assistant/pkg/goauth"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock user repository for testing
type mockRepository struct {
	user       model.User
	getErr     error
	upsertErr  error
	upserted   []repository.UpsertTokensOptions
	getCalls   int
	emailAsked string
}

func (m *mockRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	m.getCalls++
	m.emailAsked = email
	return m.user, m.getErr
}

func (m *mockRepository) UpsertTokens(ctx context.Context, opt repository.UpsertTokensOptions) error {
	m.upserted = append(m.upserted, opt)
	return m.upsertErr
}

// Mock OAuth provider for testing
type mockOAuthProvider struct {
	exchangeToken goauth.Token
	exchangeErr   error
	refreshToken  goauth.Token
	refreshErr    error
	userInfo      goauth.UserInfo
	userInfoErr   error

	refreshCalls   int
	refreshedWith  string
	exchangedCode  string
	authCodeStates []string
}

func (m *mockOAuthProvider) AuthCodeURL(state string) string {
	m.authCodeStates = append(m.authCodeStates, state)
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (m *mockOAuthProvider) Exchange(ctx context.Context, code string) (goauth.Token, error) {
	m.exchangedCode = code
	return m.exchangeToken, m.exchangeErr
}

func (m *mockOAuthProvider) Refresh(ctx context.Context, refreshToken string) (goauth.Token, error) {
	m.refreshCalls++
	m.refreshedWith = refreshToken
	return m.refreshToken, m.refreshErr
}

func (m *mockOAuthProvider) UserInfo(ctx context.Context, accessToken string) (goauth.UserInfo, error) {
	return m.userInfo, m.userInfoErr
}
