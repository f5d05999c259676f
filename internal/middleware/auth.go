package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
	"github.com/letsgoparty/letsgoparty_backend/internal/utils"
)

const (
	msgTokenMissing   = "Acesso negado: Token não fornecido"
	msgTokenMalformed = "Erro no formato do token"
	msgSchemeInvalid  = "Formato de token inválido"
	msgTokenInvalid   = "Token inválido ou expirado"
)

// AuthMiddleware creates a Gin middleware handler that validates bearer JWTs.
// The token's subject becomes the request's user id. Outside production the
// JWT library's diagnostic is returned in the error field.
func AuthMiddleware(jwtSecret string, isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			abortUnauthorized(c, apperrors.KindUnauthenticated, msgTokenMissing, nil, isProduction)
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 {
			logger.Warn("Authorization header format invalid", slog.Int("parts", len(parts)))
			abortUnauthorized(c, apperrors.KindMalformedToken, msgTokenMalformed, nil, isProduction)
			return
		}
		if !strings.EqualFold(parts[0], "Bearer") {
			logger.Warn("Authorization scheme is not Bearer")
			abortUnauthorized(c, apperrors.KindMalformedToken, msgSchemeInvalid, nil, isProduction)
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			abortUnauthorized(c, apperrors.KindInvalidOrExpiredToken, msgTokenInvalid, err, isProduction)
			return
		}

		userID := claims.Subject
		setUserID(c, userID)
		setLogger(c, logger.With(slog.String("user_id", userID)))

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, kind apperrors.Kind, message string, cause error, isProduction bool) {
	body := dto.ErrorResponse{Message: message, Kind: string(kind)}
	if cause != nil && !isProduction {
		body.Error = cause.Error()
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, body)
}

// RequireUserID returns the authenticated user's id, or writes a 401 and
// returns false when the route was mounted without AuthMiddleware.
func RequireUserID(c *gin.Context) (string, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		GetLoggerFromContext(c).Error("User ID not found in context for a private route")
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
			Message: msgTokenMissing,
			Kind:    string(apperrors.KindUnauthenticated),
		})
		return "", false
	}
	return userID, true
}
