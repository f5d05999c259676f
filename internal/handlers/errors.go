package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
	"github.com/letsgoparty/letsgoparty_backend/internal/middleware"
)

const (
	msgServerError  = "Erro no servidor, tente novamente mais tarde"
	msgInvalidInput = "Dados inválidos"
)

// respondError writes the JSON error body for err. Errors that are not an
// *AppError are resolved through the sentinels, and anything left becomes a
// 500. The underlying cause is only exposed outside production.
func respondError(c *gin.Context, err error, isProduction bool) {
	logger := middleware.GetLoggerFromContext(c)

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = fromSentinel(err)
	}

	if appErr.Code >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.Int("status", appErr.Code), slog.String("error", err.Error()))
	}

	if errors.Is(err, apperrors.ErrNotVerified) {
		c.JSON(appErr.Code, dto.NeedsVerificationResponse{Message: appErr.Message, NeedsVerification: true})
		return
	}

	body := dto.ErrorResponse{Message: appErr.Message, Kind: string(appErr.Kind)}
	if !isProduction && appErr.Err != nil && appErr.Code >= http.StatusInternalServerError {
		body.Error = appErr.Err.Error()
	}
	c.JSON(appErr.Code, body)
}

func fromSentinel(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NewNotFoundError("Recurso não encontrado")
	case errors.Is(err, apperrors.ErrDuplicate):
		return apperrors.NewConflictError("Registro já existe")
	case errors.Is(err, apperrors.ErrForbidden):
		return apperrors.NewForbiddenError("Acesso negado")
	case errors.Is(err, apperrors.ErrValidation):
		return apperrors.NewValidationError(msgInvalidInput, err)
	default:
		return apperrors.NewInternalServerError(msgServerError, err)
	}
}

// respondBindError answers a request whose body or query failed binding.
func respondBindError(c *gin.Context, err error, isProduction bool) {
	middleware.GetLoggerFromContext(c).Warn("Failed to bind request", slog.String("error", err.Error()))
	body := dto.ErrorResponse{Message: msgInvalidInput, Kind: string(apperrors.KindValidation)}
	if !isProduction {
		body.Error = err.Error()
	}
	c.JSON(http.StatusBadRequest, body)
}
