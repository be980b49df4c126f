// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login and profile lookups.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tamakara/booth/internal/common"
	"github.com/tamakara/booth/internal/server/auth"
	"github.com/tamakara/booth/internal/server/config"
	"github.com/tamakara/booth/internal/server/models"
	"github.com/tamakara/booth/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

const maxPasswordBytes = 72

// dummyHash is compared against when the phone is unknown so a failed login
// costs the same either way.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("booth-dummy-password"), bcrypt.DefaultCost)

type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	now                   func() time.Time
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		now:                   time.Now,
	}
}

// Register creates an account with a bcrypt hash of password. A phone that
// is already taken yields common.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, phone, password string) (*models.User, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return nil, fmt.Errorf("%w: phone and password are required", common.ErrInvalidArgument)
	}
	if len(password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password longer than %d bytes", common.ErrInvalidArgument, maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Phone: phone, PasswordHash: hash, CreatedAt: s.now()}
	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and returns a signed bearer token.
func (s *UserService) Login(ctx context.Context, phone, password string) (string, error) {
	user, err := s.repomanager.Users(s.db).GetByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error loading user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// Authenticate resolves a bearer token to the account it was issued for.
func (s *UserService) Authenticate(tokenString string) (int64, error) {
	return auth.GetUserIDFromToken(tokenString, s.jwtSecret)
}
