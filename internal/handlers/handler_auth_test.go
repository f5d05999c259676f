package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

func (suite *HandlerTestSuite) TestLogin_ReturnsBareToken() {
	suite.auth.On("Login", mock.Anything, "ana@example.com", "secret1").Return("jwt-value", nil).Once()

	w := suite.do(http.MethodPost, "/login", dto.LoginRequest{Email: "ana@example.com", Password: "secret1"})

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`"jwt-value"`, w.Body.String())
}

func (suite *HandlerTestSuite) TestLogin_NotVerified() {
	suite.auth.On("Login", mock.Anything, "ana@example.com", "secret1").
		Return("", apperrors.NewNotVerifiedError("Por favor, verifique seu email antes de fazer login.")).Once()

	w := suite.do(http.MethodPost, "/login", dto.LoginRequest{Email: "ana@example.com", Password: "secret1"})

	suite.Equal(http.StatusForbidden, w.Code)
	var body dto.NeedsVerificationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.NeedsVerification)
	suite.Equal("Por favor, verifique seu email antes de fazer login.", body.Message)
}

func (suite *HandlerTestSuite) TestLogin_InvalidBody() {
	w := suite.do(http.MethodPost, "/login", map[string]string{"email": "not-an-email"})

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decodeError(w)
	suite.Equal("ValidationError", body.Kind)
	suite.Equal("Dados inválidos", body.Message)
	suite.auth.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRegister() {
	req := dto.RegisterRequest{Email: "bia@example.com", Name: "Bia", Password: "secret1"}
	suite.registration.On("Register", mock.Anything, req).Return(nil).Once()

	w := suite.do(http.MethodPost, "/cadastro", req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(suite.decodeMessage(w), "Usuário cadastrado com sucesso")
}

func (suite *HandlerTestSuite) TestRegister_DuplicateEmail() {
	req := dto.RegisterRequest{Email: "bia@example.com", Name: "Bia", Password: "secret1"}
	suite.registration.On("Register", mock.Anything, req).Return(apperrors.NewConflictError("Email já cadastrado")).Once()

	w := suite.do(http.MethodPost, "/cadastro", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decodeError(w)
	suite.Equal("Conflict", body.Kind)
	suite.Equal("Email já cadastrado", body.Message)
}

func (suite *HandlerTestSuite) TestRegister_UnexpectedErrorShowsDetailOutsideProduction() {
	req := dto.RegisterRequest{Email: "bia@example.com", Name: "Bia", Password: "secret1"}
	suite.registration.On("Register", mock.Anything, req).Return(errors.New("connection reset")).Once()

	w := suite.do(http.MethodPost, "/cadastro", req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	body := suite.decodeError(w)
	suite.Equal("ServerError", body.Kind)
	suite.Equal("Erro no servidor, tente novamente mais tarde", body.Message)
	suite.Equal("connection reset", body.Error)
}

func (suite *HandlerTestSuite) TestVerifyEmail() {
	suite.registration.On("VerifyEmail", mock.Anything, "tok-1").Return(nil).Once()
	suite.registration.On("VerifyEmail", mock.Anything, "tok-1").
		Return(apperrors.NewValidationError("Token inválido ou já utilizado.", apperrors.ErrInvalidToken)).Once()

	w := suite.do(http.MethodGet, "/verificar-email/tok-1", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Email verificado com sucesso!", suite.decodeMessage(w))

	w = suite.do(http.MethodGet, "/verificar-email/tok-1", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Token inválido ou já utilizado.", suite.decodeError(w).Message)
}

func (suite *HandlerTestSuite) TestResendVerification_SameShapeForEveryAddress() {
	suite.registration.On("ResendVerification", mock.Anything, "ghost@example.com").Return(false, nil).Once()
	suite.registration.On("ResendVerification", mock.Anything, "done@example.com").Return(true, nil).Once()

	w := suite.do(http.MethodPost, "/reenviar-verificacao", dto.EmailRequest{Email: "ghost@example.com"})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Se o email estiver cadastrado, enviaremos um novo link de verificação.", suite.decodeMessage(w))

	w = suite.do(http.MethodPost, "/reenviar-verificacao", dto.EmailRequest{Email: "done@example.com"})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Este email já foi verificado. Você pode fazer login normalmente.", suite.decodeMessage(w))
}

func (suite *HandlerTestSuite) TestPasswordResetFlow() {
	suite.passwordReset.On("RequestPasswordReset", mock.Anything, "ana@example.com").Return(nil).Once()
	suite.passwordReset.On("CheckResetToken", mock.Anything, "bad").
		Return(apperrors.NewValidationError("O token é inválido ou expirou", apperrors.ErrInvalidToken)).Once()
	suite.passwordReset.On("ResetPassword", mock.Anything, "good", "newsecret").Return(nil).Once()

	w := suite.do(http.MethodPost, "/solicitar-redefinicao-senha", dto.EmailRequest{Email: "ana@example.com"})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Se o email estiver cadastrado, enviaremos um link para recuperação de senha.", suite.decodeMessage(w))

	w = suite.do(http.MethodGet, "/verificar-token-redefinicao/bad", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("O token é inválido ou expirou", suite.decodeError(w).Message)

	w = suite.do(http.MethodPost, "/redefinir-senha", dto.ResetPasswordRequest{Token: "good", NewPassword: "newsecret"})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Senha redefinida com sucesso", suite.decodeMessage(w))
}

func (suite *HandlerTestSuite) TestGoogleLogin_SetsStateAndRedirects() {
	suite.google.On("GenerateStateString", mock.Anything).Return("state-1", nil).Once()
	suite.google.On("GetGoogleLoginURL", mock.Anything, "state-1").Return("https://accounts.google.test/auth?state=state-1").Once()

	w := suite.do(http.MethodGet, "/auth/google", nil)

	suite.Equal(http.StatusTemporaryRedirect, w.Code)
	suite.Equal("https://accounts.google.test/auth?state=state-1", w.Header().Get("Location"))
	cookie := w.Header().Get("Set-Cookie")
	suite.Contains(cookie, "oauth_state=state-1")
	suite.Contains(cookie, "HttpOnly")
}

func (suite *HandlerTestSuite) callback(query, cookieState string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?"+query, nil)
	if cookieState != "" {
		req.AddCookie(&http.Cookie{Name: "oauth_state", Value: cookieState})
	}
	return suite.serve(req)
}

func (suite *HandlerTestSuite) TestGoogleCallback_StateMismatch() {
	w := suite.callback("state=other&code=c1", "state-1")

	suite.Equal(http.StatusTemporaryRedirect, w.Code)
	suite.Equal("https://front.test/login", w.Header().Get("Location"))
	suite.google.AssertNotCalled(suite.T(), "ExchangeCodeForToken", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGoogleCallback_Success() {
	token := (&oauth2.Token{AccessToken: "at"}).WithExtra(map[string]interface{}{"id_token": "idt"})
	info := &domain.GoogleUserInfo{ID: "g-1", Email: "ana@example.com", Name: "Ana"}
	suite.google.On("ExchangeCodeForToken", mock.Anything, "c1").Return(token, nil).Once()
	suite.google.On("GetUserInfo", mock.Anything, token).Return(info, nil).Once()
	suite.google.On("ValidateGoogleIDToken", mock.Anything, "idt").Return(&idtoken.Payload{Subject: "g-1"}, nil).Once()
	suite.auth.On("LoginWithGoogle", mock.Anything, *info).Return("jwt+/=", nil).Once()

	w := suite.callback("state=state-1&code=c1", "state-1")

	suite.Equal(http.StatusTemporaryRedirect, w.Code)
	suite.Equal("https://front.test/oauth-callback?token=jwt%2B%2F%3D", w.Header().Get("Location"))
}

func (suite *HandlerTestSuite) TestGoogleCallback_IDTokenForAnotherAccount() {
	token := (&oauth2.Token{AccessToken: "at"}).WithExtra(map[string]interface{}{"id_token": "idt"})
	info := &domain.GoogleUserInfo{ID: "g-1", Email: "ana@example.com"}
	suite.google.On("ExchangeCodeForToken", mock.Anything, "c1").Return(token, nil).Once()
	suite.google.On("GetUserInfo", mock.Anything, token).Return(info, nil).Once()
	suite.google.On("ValidateGoogleIDToken", mock.Anything, "idt").Return(&idtoken.Payload{Subject: "g-2"}, nil).Once()

	w := suite.callback("state=state-1&code=c1", "state-1")

	suite.True(strings.HasSuffix(w.Header().Get("Location"), "/login"))
	suite.auth.AssertNotCalled(suite.T(), "LoginWithGoogle", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGoogleCallback_ExchangeFails() {
	suite.google.On("ExchangeCodeForToken", mock.Anything, "c1").Return(nil, errors.New("invalid_grant")).Once()

	w := suite.callback("state=state-1&code=c1", "state-1")

	suite.Equal("https://front.test/login", w.Header().Get("Location"))
}
