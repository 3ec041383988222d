package middleware

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/rcabrera/studentrecords/internal/app/models/dto"
	"github.com/rcabrera/studentrecords/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Anything not in
// the taxonomy is logged and surfaces as a generic 500; internals are
// never exposed to the caller.
func HandleAPIError(c *gin.Context, err error) {
	if field, ok := apperrors.IsMissingField(err); ok {
		c.JSON(400, dto.NewErrorResponse(fmt.Sprintf("Missing required field: %s", field)))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.NewErrorResponse("Unauthorized"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse("Invalid username or password"))
	case errors.Is(err, apperrors.ErrAdminRequired):
		c.JSON(403, dto.NewErrorResponse("Forbidden: Admin access required"))
	case errors.Is(err, apperrors.ErrRoleRequired):
		c.JSON(403, dto.NewErrorResponse("Forbidden: Only staff and admin can add students"))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(404, dto.NewErrorResponse("Student not found"))
	case errors.Is(err, apperrors.ErrStudentIDExists):
		c.JSON(409, dto.NewErrorResponse("Student ID already exists"))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(err.Error()))
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(500, dto.NewErrorResponse("An internal error occurred"))
	}
}
