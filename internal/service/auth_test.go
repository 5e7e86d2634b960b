package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	repomocks "github.com/Egor213/LogSentinel/internal/mocks/repository"
	"github.com/Egor213/LogSentinel/internal/repo/repoerrs"
	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func hashPassword(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newAuth(ctrl *gomock.Controller) (*service.AuthService, *repomocks.MockUser, *repomocks.MockPreferences) {
	users := repomocks.NewMockUser(ctrl)
	prefs := repomocks.NewMockPreferences(ctrl)
	svc := service.NewAuthService(users, prefs, passThroughTx(ctrl), service.AuthConfig{
		JWTSecret:   testSecret,
		MaxAttempts: 3,
		LockFor:     time.Minute,
	})
	return svc, users, prefs
}

func TestAuthService_Login(t *testing.T) {
	hash := hashPassword(t, "correct-horse")
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	testCases := []struct {
		name         string
		password     string
		mockBehavior func(u *repomocks.MockUser)
		wantErr      error
	}{
		{
			name:     "success",
			password: "correct-horse",
			mockBehavior: func(u *repomocks.MockUser) {
				u.EXPECT().GetUserByUsername(gomock.Any(), "admin").
					Return(domain.User{Id: 1, Username: "admin", PasswordHash: hash, IsActive: true, LoginAttempts: 2}, nil)
				u.EXPECT().RecordLoginSuccess(gomock.Any(), 1, "10.0.0.1").Return(nil)
			},
		},
		{
			name:     "unknown user",
			password: "x",
			mockBehavior: func(u *repomocks.MockUser) {
				u.EXPECT().GetUserByUsername(gomock.Any(), "admin").Return(domain.User{}, repoerrs.ErrNotFound)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:     "wrong password counts attempt",
			password: "wrong",
			mockBehavior: func(u *repomocks.MockUser) {
				u.EXPECT().GetUserByUsername(gomock.Any(), "admin").
					Return(domain.User{Id: 1, PasswordHash: hash, IsActive: true, LoginAttempts: 0}, nil)
				u.EXPECT().RecordLoginFailure(gomock.Any(), 1, 1, gomock.Nil()).Return(nil)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:     "last allowed failure locks the account",
			password: "wrong",
			mockBehavior: func(u *repomocks.MockUser) {
				u.EXPECT().GetUserByUsername(gomock.Any(), "admin").
					Return(domain.User{Id: 1, PasswordHash: hash, IsActive: true, LoginAttempts: 2}, nil)
				u.EXPECT().RecordLoginFailure(gomock.Any(), 1, 3, gomock.Not(gomock.Nil())).
					DoAndReturn(func(_ context.Context, _, _ int, until *time.Time) error {
						assert.True(t, until.After(time.Now()))
						return nil
					})
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:     "expired lock resets the counter",
			password: "wrong",
			mockBehavior: func(u *repomocks.MockUser) {
				u.EXPECT().GetUserByUsername(gomock.Any(), "admin").
					Return(domain.User{Id: 1, PasswordHash: hash, IsActive: true, LoginAttempts: 3, LockedUntil: &past}, nil)
				u.EXPECT().RecordLoginFailure(gomock.Any(), 1, 1, gomock.Nil()).Return(nil)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:     "locked account",
			password: "correct-horse",
			mockBehavior: func(u *repomocks.MockUser) {
				u.EXPECT().GetUserByUsername(gomock.Any(), "admin").
					Return(domain.User{Id: 1, PasswordHash: hash, IsActive: true, LockedUntil: &future}, nil)
			},
			wantErr: service.ErrAccountLocked,
		},
		{
			name:     "inactive account",
			password: "correct-horse",
			mockBehavior: func(u *repomocks.MockUser) {
				u.EXPECT().GetUserByUsername(gomock.Any(), "admin").
					Return(domain.User{Id: 1, PasswordHash: hash, IsActive: false}, nil)
			},
			wantErr: service.ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, users, _ := newAuth(ctrl)
			tc.mockBehavior(users)

			token, err := svc.Login(context.Background(), "admin", tc.password, "10.0.0.1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)

			claims, err := svc.ParseToken(token)
			require.NoError(t, err)
			assert.Equal(t, 1, claims.UserID)
			assert.Equal(t, "admin", claims.Username)
		})
	}
}

func TestAuthService_ParseTokenRejectsForeignSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := repomocks.NewMockUser(ctrl)
	users.EXPECT().GetUserByUsername(gomock.Any(), "admin").
		Return(domain.User{Id: 1, Username: "admin", PasswordHash: hashPassword(t, "pw-123456"), IsActive: true}, nil)
	users.EXPECT().RecordLoginSuccess(gomock.Any(), 1, "").Return(nil)

	other := service.NewAuthService(users, repomocks.NewMockPreferences(ctrl), passThroughTx(ctrl),
		service.AuthConfig{JWTSecret: "another-secret"})
	token, err := other.Login(context.Background(), "admin", "pw-123456", "")
	require.NoError(t, err)

	svc, _, _ := newAuth(ctrl)
	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthService_ChangePassword(t *testing.T) {
	hash := hashPassword(t, "old-password")

	testCases := []struct {
		name    string
		change  domain.PasswordChange
		wantErr error
	}{
		{
			name:    "wrong current password is reported first",
			change:  domain.PasswordChange{Current: "nope", New: "a", Confirm: "b"},
			wantErr: service.ErrWrongPassword,
		},
		{
			name:    "mismatch",
			change:  domain.PasswordChange{Current: "old-password", New: "new-password-1", Confirm: "new-password-2"},
			wantErr: service.ErrPasswordMismatch,
		},
		{
			name:    "too short",
			change:  domain.PasswordChange{Current: "old-password", New: "short", Confirm: "short"},
			wantErr: service.ErrPasswordTooShort,
		},
		{
			name:   "success",
			change: domain.PasswordChange{Current: "old-password", New: "new-password", Confirm: "new-password"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, users, _ := newAuth(ctrl)
			users.EXPECT().GetUserByID(gomock.Any(), 1).Return(domain.User{Id: 1, PasswordHash: hash}, nil)
			if tc.wantErr == nil {
				users.EXPECT().UpdatePassword(gomock.Any(), 1, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, h string) error {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("new-password")))
						return nil
					})
			}

			err := svc.ChangePassword(context.Background(), 1, tc.change)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAuthService_CreateUser(t *testing.T) {
	testCases := []struct {
		name         string
		in           domain.NewUser
		mockBehavior func(u *repomocks.MockUser, p *repomocks.MockPreferences)
		wantID       int
		wantErr      error
	}{
		{
			name: "stores user and default preferences",
			in:   domain.NewUser{Username: " ops ", Password: "long-enough"},
			mockBehavior: func(u *repomocks.MockUser, p *repomocks.MockPreferences) {
				u.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) (int, error) {
						assert.Equal(t, "ops", user.Username)
						assert.True(t, user.IsActive)
						return 4, nil
					})
				p.EXPECT().CreatePreferences(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, pr *domain.UserPreferences) error {
						assert.Equal(t, 4, pr.UserId)
						return nil
					})
			},
			wantID: 4,
		},
		{
			name:         "short password",
			in:           domain.NewUser{Username: "ops", Password: "short"},
			mockBehavior: func(u *repomocks.MockUser, p *repomocks.MockPreferences) {},
			wantErr:      service.ErrPasswordTooShort,
		},
		{
			name: "duplicate username",
			in:   domain.NewUser{Username: "ops", Password: "long-enough"},
			mockBehavior: func(u *repomocks.MockUser, p *repomocks.MockPreferences) {
				u.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(0, repoerrs.ErrAlreadyExists)
			},
			wantErr: service.ErrUserAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, users, prefs := newAuth(ctrl)
			tc.mockBehavior(users, prefs)

			id, err := svc.CreateUser(context.Background(), tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}
