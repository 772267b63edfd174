package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kelias-gh/CRM/domain"
	"github.com/kelias-gh/CRM/utils"
)

type authService struct {
	userRepo    domain.UserRepository
	accessToken *utils.JWTManager
}

func NewAuthService(userRepo domain.UserRepository, secret string) domain.AuthUseCase {
	return &authService{
		userRepo:    userRepo,
		accessToken: utils.NewJWTManager(secret, time.Hour),
	}
}

// Login verifies credentials and issues an access token. Every failure
// surfaces as the same generic error.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.accessToken.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *authService) GetAccessTokenManager() *utils.JWTManager {
	return s.accessToken
}
