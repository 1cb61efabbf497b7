package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bengkel/config"
	"bengkel/infras/otel/mocks"
	authMocks "bengkel/internal/domains/auth/mocks"
	authModel "bengkel/internal/domains/auth/model"
	"bengkel/internal/domains/auth/service"
	userMocks "bengkel/internal/domains/user/mocks"
	userModel "bengkel/internal/domains/user/model"
	userDto "bengkel/internal/domains/user/model/dto"
	userService "bengkel/internal/domains/user/service"
	"bengkel/shared/constant"
	"bengkel/shared/failure"
)

type fixture struct {
	svc         service.Auth
	sessionRepo *authMocks.MockSession
	userRepo    *userMocks.MockUser
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sessionRepo := authMocks.NewMockSession(ctrl)
	userRepo := userMocks.NewMockUser(ctrl)

	users := userService.New(userRepo, &config.Config{}, mocks.NewOtel())

	return fixture{
		svc:         service.New(sessionRepo, users, mocks.NewOtel()),
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
	}
}

var storedUser = userModel.User{
	ID:       "user_1",
	FullName: "Budi Santoso",
	Username: "budi",
	Password: "rahasia1",
	Email:    "budi@example.com",
	Role:     constant.RoleUser,
}

func expectCredentialLookup(repo *userMocks.MockUser) {
	repo.EXPECT().
		FindOne(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pred func(userModel.User) bool) (userModel.User, bool, error) {
			if pred(storedUser) {
				return storedUser, true, nil
			}

			return userModel.User{}, false, nil
		})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("successful login with remember me", func(t *testing.T) {
		f := newFixture(t)

		expectCredentialLookup(f.userRepo)

		f.sessionRepo.EXPECT().
			SaveCurrent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s authModel.Session) error {
				assert.Equal(t, storedUser.ID, s.UserID)
				assert.Equal(t, constant.RoleUser, s.Role)
				assert.False(t, s.LoggedInAt.IsZero())

				return nil
			})

		f.sessionRepo.EXPECT().
			SetRemembered(gomock.Any(), true).
			Return(nil)

		res, err := f.svc.Login(context.Background(), userDto.LoginRequest{
			Identity: "budi",
			Password: "rahasia1",
			Remember: true,
		})
		require.NoError(t, err)

		assert.Equal(t, storedUser.ID, res.User.ID)
		assert.True(t, res.Remembered)
		assert.NotEmpty(t, res.LoggedInAt)
	})

	t.Run("login without remember me clears the flag", func(t *testing.T) {
		f := newFixture(t)

		expectCredentialLookup(f.userRepo)

		f.sessionRepo.EXPECT().
			SaveCurrent(gomock.Any(), gomock.Any()).
			Return(nil)

		f.sessionRepo.EXPECT().
			ClearRemembered(gomock.Any()).
			Return(nil)

		res, err := f.svc.Login(context.Background(), userDto.LoginRequest{
			Identity: "budi@example.com",
			Password: "rahasia1",
		})
		require.NoError(t, err)
		assert.False(t, res.Remembered)
	})

	t.Run("invalid credentials leave no session behind", func(t *testing.T) {
		f := newFixture(t)

		expectCredentialLookup(f.userRepo)

		_, err := f.svc.Login(context.Background(), userDto.LoginRequest{
			Identity: "budi",
			Password: "salah1",
		})
		assert.ErrorIs(t, err, failure.InvalidCredentials)
	})
}

func TestAuthService_Logout(t *testing.T) {
	f := newFixture(t)

	f.sessionRepo.EXPECT().
		ClearCurrent(gomock.Any()).
		Return(nil)

	f.sessionRepo.EXPECT().
		ClearRemembered(gomock.Any()).
		Return(nil)

	require.NoError(t, f.svc.Logout(context.Background()))
}

func TestAuthService_Current(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		f := newFixture(t)

		f.sessionRepo.EXPECT().
			Current(gomock.Any()).
			Return(authModel.Session{}, false, nil)

		_, found, err := f.svc.Current(context.Background())
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("session resolves to its user", func(t *testing.T) {
		f := newFixture(t)

		f.sessionRepo.EXPECT().
			Current(gomock.Any()).
			Return(authModel.Session{UserID: storedUser.ID, Role: storedUser.Role}, true, nil)

		f.userRepo.EXPECT().
			Get(gomock.Any(), storedUser.ID).
			Return(storedUser, true, nil)

		res, found, err := f.svc.Current(context.Background())
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, storedUser.Username, res.Username)
	})

	t.Run("session for a deleted user is cleaned up", func(t *testing.T) {
		f := newFixture(t)

		f.sessionRepo.EXPECT().
			Current(gomock.Any()).
			Return(authModel.Session{UserID: "user_gone"}, true, nil)

		f.userRepo.EXPECT().
			Get(gomock.Any(), "user_gone").
			Return(userModel.User{}, false, nil)

		f.sessionRepo.EXPECT().
			ClearCurrent(gomock.Any()).
			Return(nil)

		_, found, err := f.svc.Current(context.Background())
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestAuthService_Remembered(t *testing.T) {
	f := newFixture(t)

	f.sessionRepo.EXPECT().
		Remembered(gomock.Any()).
		Return(true, nil)

	remembered, err := f.svc.Remembered(context.Background())
	require.NoError(t, err)
	assert.True(t, remembered)
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	t.Run("known account", func(t *testing.T) {
		f := newFixture(t)

		expectCredentialLookup(f.userRepo)

		require.NoError(t, f.svc.RequestPasswordReset(context.Background(), "budi"))
	})

	t.Run("unknown account", func(t *testing.T) {
		f := newFixture(t)

		expectCredentialLookup(f.userRepo)

		err := f.svc.RequestPasswordReset(context.Background(), "hilang@example.com")
		assert.ErrorIs(t, err, failure.AccountNotFound)
	})
}

func TestAuthService_IsAdmin(t *testing.T) {
	f := newFixture(t)

	assert.True(t, f.svc.IsAdmin(userDto.UserResponse{Role: constant.RoleAdmin}))
	assert.False(t, f.svc.IsAdmin(userDto.UserResponse{Role: constant.RoleUser}))
	assert.False(t, f.svc.IsAdmin(userDto.UserResponse{}))
}

func TestAuthService_Authorize(t *testing.T) {
	f := newFixture(t)

	admin := userDto.UserResponse{Role: constant.RoleAdmin}
	user := userDto.UserResponse{Role: constant.RoleUser}

	tests := []struct {
		name    string
		user    userDto.UserResponse
		action  string
		allowed bool
	}{
		{"user creates a booking", user, constant.ActionBookingCreate, true},
		{"user lists own bookings", user, constant.ActionBookingListOwn, true},
		{"user cannot list all bookings", user, constant.ActionBookingListAll, false},
		{"user cannot edit bookings", user, constant.ActionBookingUpdate, false},
		{"user cannot delete bookings", user, constant.ActionBookingDelete, false},
		{"admin edits bookings", admin, constant.ActionBookingUpdate, true},
		{"admin deletes bookings", admin, constant.ActionBookingDelete, true},
		{"unknown action is denied even for admin", admin, "booking:archive", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.svc.Authorize(tt.user, tt.action)
			if tt.allowed {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
		})
	}
}
