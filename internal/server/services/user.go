// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential verification, and
// resolving bearer tokens back to user records.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"database/sql"

	"github.com/google/uuid"

	"github.com/Pritish2005/Event-Hub/internal/common"
	"github.com/Pritish2005/Event-Hub/internal/dbx"
	"github.com/Pritish2005/Event-Hub/internal/server/auth"
	"github.com/Pritish2005/Event-Hub/internal/server/config"
	"github.com/Pritish2005/Event-Hub/internal/server/models"
	"github.com/Pritish2005/Event-Hub/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint a session token
// - Authenticate: resolve a bearer token to a live user record
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new user. Field checks run first, then the email
// uniqueness check and the insert execute inside one transaction so a
// concurrent registration with the same email cannot slip between them
// (the unique index backs this up either way).
//
// Registration does not issue a token; the caller logs in separately.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" || strings.TrimSpace(password) == "" {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{ID: uuid.NewString(), Name: name, Email: email, PasswordHash: hash}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetByEmail(ctx, email)
		if err == nil {
			return common.ErrorEmailTaken
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error checking email: %w", err)
		}

		user, err = repo.Create(ctx, user)
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and, on success, returns a signed session
// token. An unknown email and a wrong password both yield
// common.ErrorUnauthorized so callers cannot probe which emails exist.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// Authenticate resolves a bearer token to the user it was issued to. A valid
// signature with an unknown user (account removed after issuance) is rejected
// the same way as a bad token.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
