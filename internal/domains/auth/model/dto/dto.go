package dto

import (
	"time"

	"condovia/infras/jwt"
	userModel "condovia/internal/domains/user/model"
	"condovia/shared/constant"
	gModel "condovia/shared/model"
	"condovia/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email     string  `json:"email"               validate:"required,email"`
	Password  string  `json:"password"            validate:"required,min=8"`
	FullName  *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Apartment *string `json:"apartment,omitempty" validate:"omitempty,max=10"`
	Block     *string `json:"block,omitempty"     validate:"omitempty,max=10"`
	Phone     *string `json:"phone,omitempty"     validate:"omitempty,max=20"`
}

func (r *RegisterRequest) ToUserModel(username string, hashedPassword string) userModel.User {
	return userModel.User{
		ID:        uuid.NewString(),
		Email:     r.Email,
		Password:  hashedPassword,
		FullName:  r.FullName,
		Role:      constant.RoleResident,
		Apartment: r.Apartment,
		Block:     r.Block,
		Phone:     r.Phone,
		Active:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Role         string `json:"role"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair, role string) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
	l.Role = role
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}
