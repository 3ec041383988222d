package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcabrera/studentrecords/internal/app/models"
	"github.com/rcabrera/studentrecords/internal/app/models/dto"
	"github.com/rcabrera/studentrecords/internal/pkg/apperrors"
	"github.com/rcabrera/studentrecords/internal/pkg/auth"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func newAuthTestFixture(t *testing.T) (AuthService, *auth.SessionService) {
	t.Helper()

	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*models.User{
		"admin": {ID: 1, Username: "admin", PasswordHash: hash, Role: models.RoleAdmin},
	}}

	sessionService := auth.NewSessionService(auth.SessionConfig{
		SecretKey:   "test-secret-key",
		TokenExpiry: time.Hour,
		Issuer:      "studentrecords.test",
	})

	return NewAuthService(repo, sessionService, zerolog.Nop()), sessionService
}

func TestLoginSuccessIssuesVerifiableToken(t *testing.T) {
	svc, sessionService := newAuthTestFixture(t)

	user, token, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, models.RoleAdmin, user.Role)

	claims, err := sessionService.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, string(models.RoleAdmin), claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthTestFixture(t)

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUserLooksLikeWrongPassword(t *testing.T) {
	svc, _ := newAuthTestFixture(t)

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody",
		Password: "admin123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginEmptyCredentials(t *testing.T) {
	svc, _ := newAuthTestFixture(t)

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
