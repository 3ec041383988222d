package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcabrera/studentrecords/internal/app/models"
	"github.com/rcabrera/studentrecords/internal/pkg/apperrors"
)

func newTestSessionService(expiry time.Duration) *SessionService {
	return NewSessionService(SessionConfig{
		SecretKey:   "test-secret-key",
		TokenExpiry: expiry,
		Issuer:      "studentrecords.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Username: "staff",
		Role:     models.RoleStaff,
	}
}

func TestSessionRoundTrip(t *testing.T) {
	svc := newTestSessionService(time.Hour)

	token, err := svc.IssueToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "staff", claims.Username)
	assert.Equal(t, string(models.RoleStaff), claims.Role)
	assert.True(t, claims.IsLoggedIn)
	assert.Equal(t, "studentrecords.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID, "token should carry a unique id")
}

func TestSessionTokensAreUnique(t *testing.T) {
	svc := newTestSessionService(time.Hour)

	first, err := svc.IssueToken(testUser())
	require.NoError(t, err)
	second, err := svc.IssueToken(testUser())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyTokenRejectsEmpty(t *testing.T) {
	svc := newTestSessionService(time.Hour)

	_, err := svc.VerifyToken("")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := newTestSessionService(time.Hour)

	_, err := svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestVerifyTokenRejectsTampered(t *testing.T) {
	svc := newTestSessionService(time.Hour)

	token, err := svc.IssueToken(testUser())
	require.NoError(t, err)

	// Flip the last character of the signature
	tampered := token[:len(token)-1]
	if token[len(token)-1] == 'A' {
		tampered += "B"
	} else {
		tampered += "A"
	}

	_, err = svc.VerifyToken(tampered)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestVerifyTokenRejectsWrongKey(t *testing.T) {
	issuer := newTestSessionService(time.Hour)
	verifier := NewSessionService(SessionConfig{
		SecretKey:   "a-different-key",
		TokenExpiry: time.Hour,
		Issuer:      "studentrecords.test",
	})

	token, err := issuer.IssueToken(testUser())
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	svc := newTestSessionService(-time.Minute)

	token, err := svc.IssueToken(testUser())
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestCookieMaxAgeMatchesExpiry(t *testing.T) {
	svc := newTestSessionService(168 * time.Hour)

	assert.Equal(t, 168*60*60, svc.CookieMaxAge())
}
