package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"lumiere-photography/internal/config"
	"lumiere-photography/internal/domain"
	"lumiere-photography/internal/service/auth"
)

func testConfig(t *testing.T, password string) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiry:         time.Hour,
		AdminEmail:        "admin@studio.com",
		AdminPasswordHash: string(hash),
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc := auth.NewService(testConfig(t, "secret-password"))

		token, user, err := svc.Login(ctx, domain.LoginInput{
			Email:    "admin@studio.com",
			Password: "secret-password",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "1", user.ID)
		assert.Equal(t, "admin@studio.com", user.Email)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		svc := auth.NewService(testConfig(t, "secret-password"))

		_, _, err := svc.Login(ctx, domain.LoginInput{
			Email:    "admin@studio.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("Wrong Email", func(t *testing.T) {
		svc := auth.NewService(testConfig(t, "secret-password"))

		_, _, err := svc.Login(ctx, domain.LoginInput{
			Email:    "intruder@studio.com",
			Password: "secret-password",
		})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("Not Configured", func(t *testing.T) {
		cfg := testConfig(t, "secret-password")
		cfg.AdminPasswordHash = ""
		svc := auth.NewService(cfg)

		_, _, err := svc.Login(ctx, domain.LoginInput{
			Email:    "admin@studio.com",
			Password: "secret-password",
		})

		assert.ErrorIs(t, err, auth.ErrNotConfigured)
	})
}

func TestAuthService_ValidateAccessToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip", func(t *testing.T) {
		svc := auth.NewService(testConfig(t, "secret-password"))

		token, _, err := svc.Login(ctx, domain.LoginInput{
			Email:    "admin@studio.com",
			Password: "secret-password",
		})
		assert.NoError(t, err)

		claims, err := svc.ValidateAccessToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "admin@studio.com", claims.Email)
		assert.Equal(t, "1", claims.Subject)
	})

	t.Run("Tampered Token", func(t *testing.T) {
		svc := auth.NewService(testConfig(t, "secret-password"))

		token, _, err := svc.Login(ctx, domain.LoginInput{
			Email:    "admin@studio.com",
			Password: "secret-password",
		})
		assert.NoError(t, err)

		_, err = svc.ValidateAccessToken(token + "x")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		cfg := testConfig(t, "secret-password")
		svc := auth.NewService(cfg)

		token, _, err := svc.Login(ctx, domain.LoginInput{
			Email:    "admin@studio.com",
			Password: "secret-password",
		})
		assert.NoError(t, err)

		otherCfg := testConfig(t, "secret-password")
		otherCfg.JWTSecret = "different-secret"
		otherSvc := auth.NewService(otherCfg)

		_, err = otherSvc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Expired Token", func(t *testing.T) {
		cfg := testConfig(t, "secret-password")
		cfg.JWTExpiry = -time.Minute
		svc := auth.NewService(cfg)

		token, _, err := svc.Login(ctx, domain.LoginInput{
			Email:    "admin@studio.com",
			Password: "secret-password",
		})
		assert.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
