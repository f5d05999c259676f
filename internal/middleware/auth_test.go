package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
	"github.com/letsgoparty/letsgoparty_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(isProduction bool, logs *bytes.Buffer) *gin.Engine {
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.New(slog.NewJSONHandler(logs, nil))))
	r.GET("/private", AuthMiddleware(testSecret, isProduction), func(c *gin.Context) {
		userID, ok := RequireUserID(c)
		if !ok {
			return
		}
		GetLoggerFromCtx(c.Request.Context()).Info("handler reached")
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return r
}

func call(r *gin.Engine, header string) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body dto.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func signed(t *testing.T, subject string, expiresAt time.Time) string {
	claims := jwt.RegisteredClaims{Subject: subject, ExpiresAt: jwt.NewNumericDate(expiresAt)}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	w, body := call(newAuthRouter(false, &bytes.Buffer{}), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthenticated", body.Kind)
	assert.Equal(t, "Acesso negado: Token não fornecido", body.Message)
}

func TestAuthMiddleware_Malformed(t *testing.T) {
	r := newAuthRouter(false, &bytes.Buffer{})

	for _, header := range []string{"Bearer", "Bearer a b", "tokenonly"} {
		w, body := call(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.Equal(t, "MalformedToken", body.Kind, header)
		assert.Equal(t, "Erro no formato do token", body.Message, header)
	}

	w, body := call(r, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "MalformedToken", body.Kind)
	assert.Equal(t, "Formato de token inválido", body.Message)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token := signed(t, "u1", time.Now().Add(-time.Minute))

	w, body := call(newAuthRouter(false, &bytes.Buffer{}), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "InvalidOrExpiredToken", body.Kind)
	assert.Equal(t, "Token inválido ou expirado", body.Message)
	assert.Contains(t, body.Error, "expired")
}

func TestAuthMiddleware_HidesDiagnosticInProduction(t *testing.T) {
	token := signed(t, "u1", time.Now().Add(-time.Minute))

	_, body := call(newAuthRouter(true, &bytes.Buffer{}), "Bearer "+token)

	assert.Equal(t, "InvalidOrExpiredToken", body.Kind)
	assert.Empty(t, body.Error)
}

func TestAuthMiddleware_RejectsTamperedAndForeignTokens(t *testing.T) {
	r := newAuthRouter(false, &bytes.Buffer{})

	good := signed(t, "u1", time.Now().Add(time.Hour))
	tampered := good[:len(good)-2] + "xx"
	w, body := call(r, "Bearer "+tampered)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "InvalidOrExpiredToken", body.Kind)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, body = call(r, "Bearer "+none)
	assert.Equal(t, "InvalidOrExpiredToken", body.Kind)

	noSubject := signed(t, "", time.Now().Add(time.Hour))
	_, body = call(r, "Bearer "+noSubject)
	assert.Equal(t, "InvalidOrExpiredToken", body.Kind)
}

func TestAuthMiddleware_Success(t *testing.T) {
	var logs bytes.Buffer
	token, err := utils.GenerateJWT("u1", testSecret, time.Now(), time.Hour, "letsgoparty")
	require.NoError(t, err)

	w, _ := call(newAuthRouter(false, &logs), "bearer   "+token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"u1"}`, w.Body.String())

	var handlerLine string
	for _, line := range strings.Split(logs.String(), "\n") {
		if strings.Contains(line, "handler reached") {
			handlerLine = line
		}
	}
	assert.Contains(t, handlerLine, `"user_id":"u1"`)
}
