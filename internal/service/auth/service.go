package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"lumiere-photography/internal/config"
	"lumiere-photography/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNotConfigured      = errors.New("admin credentials are not configured")
)

// adminSubject is the stable subject id for the single admin identity.
const adminSubject = "1"

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service gates mutating operations behind the single configured admin
// identity. Tokens are stateless; logout is purely a client-side concern.
type Service interface {
	Login(ctx context.Context, input domain.LoginInput) (string, *domain.AdminUser, error)
	ValidateAccessToken(token string) (*Claims, error)
}

type service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{cfg: cfg}
}

func (s *service) Login(ctx context.Context, input domain.LoginInput) (string, *domain.AdminUser, error) {
	if s.cfg.AdminPasswordHash == "" {
		// Distinguishable from a wrong password in logs; clients get a
		// generic message so configuration state is not leaked.
		log.Println("Login rejected: no admin password hash configured")
		return "", nil, ErrNotConfigured
	}

	if input.Email != s.cfg.AdminEmail {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(input.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := &Claims{
		Email: input.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", nil, err
	}

	return signed, &domain.AdminUser{ID: adminSubject, Email: input.Email}, nil
}

func (s *service) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
