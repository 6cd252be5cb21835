package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/selim/gradebook/internal/app/models/dto"
	"github.com/selim/gradebook/internal/pkg/apperrors"
	"github.com/selim/gradebook/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Not-found errors
// become 404, validation and uniqueness errors become 400, everything else is
// a 500 with the detail kept out of the response body.
func HandleAPIError(c *gin.Context, err error) {
	var status int
	var code dto.ErrorCode

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status = http.StatusNotFound
		code = dto.ErrorCodeResourceNotFound
	case errors.Is(err, apperrors.ErrValidationFailed):
		status = http.StatusBadRequest
		code = dto.ErrorCodeValidationFailed
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusBadRequest
		code = dto.ErrorCodeResourceAlreadyExists
	case errors.Is(err, apperrors.ErrBadRequest):
		status = http.StatusBadRequest
		code = dto.ErrorCodeBadRequest
	default:
		logger.Error().Err(err).
			Str("request_id", c.GetString(RequestIDKey)).
			Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
			Timestamp: time.Now(),
		})
		return
	}

	detail := dto.NewErrorDetail(code, err.Error())

	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		if custom.Field != "" {
			detail = detail.WithField(custom.Field)
		}
		if custom.Details != nil {
			detail = detail.WithDetails(custom.Details)
		}
	}

	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}
