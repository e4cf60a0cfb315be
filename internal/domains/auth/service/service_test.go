package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"condovia/config"
	"condovia/infras/jwt"
	jwtMocks "condovia/infras/jwt/mocks"
	"condovia/infras/otel/mocks"
	"condovia/internal/domains/auth/model/dto"
	"condovia/internal/domains/auth/service"
	userModel "condovia/internal/domains/user/model"
	userMocks "condovia/internal/domains/user/mocks"
	"condovia/shared/constant"
	"condovia/shared/password"
)

func newService(ctrl *gomock.Controller) (service.Auth, *userMocks.MockUser, *jwtMocks.MockJWT) {
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT)

	return svc, mockUserRepo, mockJWT
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUserRepo, _ := newService(ctrl)

	fullName := "Alex Souza"
	req := dto.RegisterRequest{
		Email:    "resident@condo.test",
		Password: "secret-password",
		FullName: &fullName,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   string
	}{
		{
			name: "successful registration",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, constant.RoleResident, user.Role)
						assert.True(t, user.Active)
						assert.NotEqual(t, req.Password, user.Password)

						return nil
					})
			},
		},
		{
			name: "email already registered",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: "email already registered",
		},
		{
			name: "repository error",
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: "failed to check if user exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Register(context.Background(), req)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUserRepo, mockJWT := newService(ctrl)

	hashed, err := password.Hash("secret-password")
	assert.NoError(t, err)

	activeUser := userModel.User{
		ID:       "user-1",
		Email:    "resident@condo.test",
		Password: hashed,
		Role:     constant.RoleResident,
		Active:   true,
	}

	req := dto.LoginRequest{
		Email:    "resident@condo.test",
		Password: "secret-password",
	}

	t.Run("successful login", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeUser, nil)

		mockJWT.EXPECT().
			GenerateTokenPair("user-1", "resident@condo.test", constant.RoleResident).
			Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

		mockUserRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Login(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
		assert.Equal(t, "refresh", res.RefreshToken)
		assert.Equal(t, constant.RoleResident, res.Role)
	})

	t.Run("unknown email yields generic message", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := svc.Login(context.Background(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid email or password")
	})

	t.Run("wrong password yields generic message", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeUser, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "resident@condo.test",
			Password: "wrong-password",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid email or password")
	})

	t.Run("deactivated account", func(t *testing.T) {
		deactivated := activeUser
		deactivated.Active = false

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deactivated, nil)

		_, err := svc.Login(context.Background(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "user account is deactivated")
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockJWT := newService(ctrl)

	t.Run("successful refresh", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("valid-refresh").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "valid-refresh"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("bad-refresh").
			Return(nil, jwt.ErrInvalidToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-refresh"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid refresh token")
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUserRepo, _ := newService(ctrl)

	hashed, err := password.Hash("current-password")
	assert.NoError(t, err)

	user := userModel.User{
		ID:       "user-1",
		Email:    "resident@condo.test",
		Password: hashed,
		Active:   true,
	}

	t.Run("successful change", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		mockUserRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "current-password",
			NewPassword:     "next-password",
		}, "user-1")

		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "wrong-password",
			NewPassword:     "next-password",
		}, "user-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "current password is incorrect")
	})

	t.Run("user not found", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "current-password",
			NewPassword:     "next-password",
		}, "missing-user")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "user not found")
	})
}
