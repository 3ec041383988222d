package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rcabrera/studentrecords/internal/app/models"
	"github.com/rcabrera/studentrecords/internal/app/models/dto"
	"github.com/rcabrera/studentrecords/internal/app/repositories"
	"github.com/rcabrera/studentrecords/internal/pkg/apperrors"
	"github.com/rcabrera/studentrecords/internal/pkg/auth"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Login verifies credentials and returns the user together with a
	// signed session token for the cookie.
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo       repositories.IUserRepository
	sessionService *auth.SessionService
	logger         zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo repositories.IUserRepository, sessionService *auth.SessionService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:       userRepo,
		sessionService: sessionService,
		logger:         logger,
	}
}

// Login authenticates a user by username and password.
// An unknown username and a wrong password are indistinguishable to the
// caller: both fail with apperrors.ErrInvalidCredentials.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	if req.Username == "" || req.Password == "" {
		return nil, "", fmt.Errorf("%w: username and password are required", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.sessionService.IssueToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing session token: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("User logged in")
	return user, token, nil
}
