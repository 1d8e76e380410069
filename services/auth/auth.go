package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"lacquer/config"
	"lacquer/database/repository"
	"lacquer/models"
	"lacquer/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenTTL is the lifetime of an issued admin bearer token.
const TokenTTL = 24 * time.Hour

// ErrInvalidCredentials is returned for a bad username or password. The two
// cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthResponse is the login payload.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// AuthService signs the single back-office admin in and out.
type AuthService interface {
	SignIn(ctx context.Context, username, password string) (*AuthResponse, error)
	SignOut(ctx context.Context, token string) error
	SeedDefaultAdmin(ctx context.Context) error
}

type DefaultAuthService struct {
	Repo repository.AdminRepository
}

// SignIn verifies the password and issues a bearer token whose hash is
// registered in the auth cache for its lifetime. Only registered hashes
// pass the auth middleware, which is what makes SignOut a real revocation.
func (s *DefaultAuthService) SignIn(ctx context.Context, username, password string) (*AuthResponse, error) {
	admin, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		utils.GetLogger().Error("SignIn: failed to fetch admin", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(strconv.FormatUint(uint64(admin.ID), 10), admin.Username, TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	if err := utils.SaveAuthToken(utils.GetAuthCacheClient(), utils.HashToken(token), TokenTTL); err != nil {
		return nil, fmt.Errorf("failed to register token: %w", err)
	}

	return &AuthResponse{Token: token, Username: admin.Username}, nil
}

// SignOut revokes the bearer token by dropping its hash from the auth cache.
func (s *DefaultAuthService) SignOut(ctx context.Context, token string) error {
	return utils.RevokeAuthToken(utils.GetAuthCacheClient(), utils.HashToken(token))
}

// SeedDefaultAdmin creates the configured admin account on first boot.
// Idempotent: an existing account with that username is left untouched.
func (s *DefaultAuthService) SeedDefaultAdmin(ctx context.Context) error {
	username := config.AppConfig.AdminUsername
	if _, err := s.Repo.GetByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing default admin password: %w", err)
	}
	admin := &models.AdminUser{Username: username, PasswordHash: string(hash)}
	if err := s.Repo.Create(ctx, admin); err != nil {
		return fmt.Errorf("creating default admin: %w", err)
	}
	utils.GetLogger().Info("Default admin user created", zap.String("username", username))
	return nil
}
