package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

func NewJWTManager(secretKey string, duration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: duration,
	}
}

// GenerateToken signs a token carrying the user id and role.
func (j *JWTManager) GenerateToken(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(userID), 10),
		"role": role,
		"exp":  time.Now().Add(j.tokenDuration).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// VerifyToken validates the token and returns the user id and role.
func (j *JWTManager) VerifyToken(tokenStr string) (uint, string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return j.secretKey, nil
	})

	if err != nil || !token.Valid {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, "", fmt.Errorf("invalid sub claim")
	}
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid sub claim: %w", err)
	}

	role, ok := claims["role"].(string)
	if !ok {
		return 0, "", fmt.Errorf("invalid role claim")
	}

	return uint(userID), role, nil
}
