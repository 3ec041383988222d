package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rcabrera/studentrecords/internal/app/models"
	"github.com/rcabrera/studentrecords/internal/pkg/apperrors"
)

// SessionCookieName is the fixed name of the session cookie.
const SessionCookieName = "student_records_session"

// SessionConfig defines session token settings
type SessionConfig struct {
	SecretKey   string
	TokenExpiry time.Duration
	Issuer      string
}

// SessionService issues and verifies the signed session tokens carried in the
// session cookie. Tokens are stateless; there is no server-side session store.
type SessionService struct {
	config SessionConfig
}

// NewSessionService creates a new session service
func NewSessionService(config SessionConfig) *SessionService {
	return &SessionService{
		config: config,
	}
}

// SessionClaims defines the session token content
type SessionClaims struct {
	UserID     int64  `json:"userId"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	IsLoggedIn bool   `json:"isLoggedIn"`
	jwt.RegisteredClaims
}

// IssueToken creates a signed session token for the given user
func (s *SessionService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID:     user.ID,
		Username:   user.Username,
		Role:       string(user.Role),
		IsLoggedIn: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   fmt.Sprintf("%d", user.ID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// VerifyToken validates a session token and returns its claims.
// Returns apperrors.ErrTokenExpired for expired tokens and
// apperrors.ErrTokenInvalid for anything tampered with or malformed.
func (s *SessionService) VerifyToken(tokenString string) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	// A token without a logged-in identity is no session at all
	if !claims.IsLoggedIn || claims.UserID <= 0 || claims.Username == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}

// CookieMaxAge returns the session cookie max age in seconds
func (s *SessionService) CookieMaxAge() int {
	return int(s.config.TokenExpiry.Seconds())
}
