// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rcabrera/studentrecords/internal/app/models/dto"
	"github.com/rcabrera/studentrecords/internal/app/services"
	"github.com/rcabrera/studentrecords/internal/middleware"
	"github.com/rcabrera/studentrecords/internal/pkg/auth"
)

// AuthController handles login, logout and session lookup
type AuthController struct {
	authService    services.AuthService
	sessionService *auth.SessionService
	secureCookies  bool
	logger         zerolog.Logger
}

// NewAuthController creates a new AuthController. secureCookies should be
// true in production so the session cookie is HTTPS-only.
func NewAuthController(authService services.AuthService, sessionService *auth.SessionService, secureCookies bool, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:    authService,
		sessionService: sessionService,
		secureCookies:  secureCookies,
		logger:         logger,
	}
}

// Login handles user login
// @Summary User login
// @Description Verifies credentials and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Username and password are required"))
		return
	}

	user, token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(auth.SessionCookieName, token, c.sessionService.CookieMaxAge(), "/", "", c.secureCookies, true)

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User: dto.SessionUser{
			ID:       user.ID,
			Username: user.Username,
			Role:     string(user.Role),
		},
	})
}

// Logout clears the session cookie. Idempotent: logging out without a
// session is still a success.
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse "Session cleared"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(auth.SessionCookieName, "", -1, "/", "", c.secureCookies, true)

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Session returns the identity behind the current session cookie
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginResponse "Active session"
// @Failure 401 {object} dto.ErrorResponse "No valid session"
// @Router /auth/session [get]
func (c *AuthController) Session(ctx *gin.Context) {
	token, err := ctx.Cookie(auth.SessionCookieName)
	if err != nil || token == "" {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	claims, err := c.sessionService.VerifyToken(token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User: dto.SessionUser{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		},
	})
}
