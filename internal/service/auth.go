package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/ivmart/tracker-service/internal/apperr"
	"github.com/ivmart/tracker-service/internal/auth"
	"github.com/ivmart/tracker-service/internal/config"
	"github.com/ivmart/tracker-service/internal/models"
	"github.com/ivmart/tracker-service/internal/repository"
)

// Login failures never reveal whether the username exists.
const invalidCredentials = "invalid username or password"

// AuthResult is returned from both Register and Login.
type AuthResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// AuthService handles registration and authentication
type AuthService struct {
	users    repository.UserRepository
	log      *logrus.Logger
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService initializes a new auth service
func NewAuthService(users repository.UserRepository, log *logrus.Logger, cfg *config.Config) *AuthService {
	return &AuthService{
		users:    users,
		log:      log,
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
	}
}

// Register creates a new user with a hashed password and issues a token.
// A taken username is a Conflict; the unique index backs up the pre-check
// in case two registrations race.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (*AuthResult, error) {
	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return nil, apperr.Conflict("user already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict("user already exists")
		}
		return nil, err
	}

	token, err := auth.GenerateToken(user, s.secret, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Username)
	return &AuthResult{Token: token, Username: user.Username}, nil
}

// Login verifies the password against the stored hash and issues a token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Unauthorized(invalidCredentials)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Unauthorized(invalidCredentials)
	}

	token, err := auth.GenerateToken(user, s.secret, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	s.log.Infof("User logged in: %s", user.Username)
	return &AuthResult{Token: token, Username: user.Username}, nil
}
