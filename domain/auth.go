package domain

import (
	"context"

	"github.com/kelias-gh/CRM/utils"
)

type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (string, *User, error)
	GetAccessTokenManager() *utils.JWTManager
}

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
