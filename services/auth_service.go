package services

import (
	"context"
	"errors"
	"fmt"
	"luxehaven_server/database"
	"luxehaven_server/lib"
	"luxehaven_server/structs"
	"luxehaven_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// AuthService authenticates admin panel operators and issues access tokens.
// The storefront itself has no end-user accounts.
type AuthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, db *database.DB) *AuthService {
	return &AuthService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}

// Login verifies admin credentials and returns a signed access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (as *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := database.Query[tables.Admin](as.db).
		Where("email", email).
		First(ctx)
	if err != nil {
		as.logger.Error("Failed to look up admin", gecho.Field("error", err))
		return "", fmt.Errorf("failed to look up admin: %w", err)
	}

	if admin == nil {
		return "", lib.ErrInvalidCredentials
	}

	ok, err := lib.VerifyPassword(password, admin.PasswordHash)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidHash) || errors.Is(err, lib.ErrIncompatibleVersion) {
			as.logger.Error("Admin password hash is malformed", gecho.Field("email", email))
			return "", lib.ErrInvalidCredentials
		}
		return "", err
	}
	if !ok {
		return "", lib.ErrInvalidCredentials
	}

	token, err := lib.GenerateAccessToken(admin.ID, admin.Email, as.cfg.Auth.AccessTokenSecret, as.cfg.Auth.AccessTokenExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return token, nil
}
