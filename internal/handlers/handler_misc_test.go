package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestToggleLike() {
	suite.likes.On("ToggleLike", mock.Anything, testUserID, "e1").Return(true, nil).Once()
	suite.likes.On("ToggleLike", mock.Anything, testUserID, "e1").Return(false, nil).Once()

	w := suite.doAuthed(http.MethodPost, "/curtir-evento/e1", nil)
	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("Evento curtido", suite.decodeMessage(w))

	w = suite.doAuthed(http.MethodPost, "/curtir-evento/e1", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Curtida removida", suite.decodeMessage(w))
}

func (suite *HandlerTestSuite) TestRemoveLike() {
	suite.likes.On("RemoveLike", mock.Anything, testUserID, "e1").Return(nil).Once()
	suite.likes.On("RemoveLike", mock.Anything, testUserID, "e2").Return(apperrors.NewNotFoundError("Curtida não encontrada.")).Once()

	w := suite.doAuthed(http.MethodDelete, "/descurtir-evento/e1", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Curtida removida com sucesso.", suite.decodeMessage(w))

	w = suite.doAuthed(http.MethodDelete, "/descurtir-evento/e2", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Curtida não encontrada.", suite.decodeError(w).Message)
}

func (suite *HandlerTestSuite) TestIsLikedAndFavorites() {
	suite.likes.On("IsLiked", mock.Anything, testUserID, "e1").Return(true, nil).Once()
	suite.likes.On("ListFavorites", mock.Anything, testUserID, "").
		Return(&domain.EventPage{Events: []domain.Event{sampleEvent("e1")}, TotalPages: 1}, nil).Once()

	w := suite.doAuthed(http.MethodGet, "/verificar-curtida/e1", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"liked":true}`, w.Body.String())

	w = suite.doAuthed(http.MethodGet, "/listar-meus-favoritos", nil)
	suite.Equal(http.StatusOK, w.Code)
	var body dto.EventPageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(1, body.TotalPages)
}

func (suite *HandlerTestSuite) TestContact() {
	req := dto.ContactRequest{Email: "ana@example.com", HelpType: "Suporte", Subject: "Oi", Message: "Olá"}
	suite.contact.On("Send", mock.Anything, req).Return(nil).Once()
	suite.contact.On("Send", mock.Anything, dto.ContactRequest{Email: "ana@example.com"}).
		Return(apperrors.NewBadRequestError("Todos os campos são obrigatórios")).Once()

	w := suite.do(http.MethodPost, "/contato", req)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Mensagem enviada com sucesso. Entraremos em contato em breve.", suite.decodeMessage(w))

	w = suite.do(http.MethodPost, "/contato", dto.ContactRequest{Email: "ana@example.com"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Todos os campos são obrigatórios", suite.decodeError(w).Message)
}

func (suite *HandlerTestSuite) TestProfileRoutes() {
	googleID := "g-1"
	last := "Souza"
	user := &domain.User{
		UserID:   testUserID,
		Name:     "Ana",
		LastName: &last,
		Email:    "ana@example.com",
		GoogleID: &googleID,
		Image:    &domain.Image{Path: "https://lh3.google.test/a", Filename: "google_g-1"},
	}
	suite.users.On("GetUserByID", mock.Anything, testUserID).Return(user, nil).Times(3)

	w := suite.doAuthed(http.MethodGet, "/meu-perfil", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"googleId":"g-1"`)

	w = suite.doAuthed(http.MethodGet, "/me", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.NotContains(w.Body.String(), "googleId")
	suite.Contains(w.Body.String(), `"lastName":"Souza"`)

	w = suite.doAuthed(http.MethodGet, "/carregar-imagem-perfil", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"name":"Ana","image":{"path":"https://lh3.google.test/a","filename":"google_g-1"}}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestUpdateProfile() {
	updated := &domain.User{UserID: testUserID, Name: "Ana Clara", Email: "ana@example.com"}
	suite.users.On("UpdateProfile", mock.Anything, testUserID,
		dto.UpdateProfileRequest{Name: "Ana Clara", Password: "novasenha"},
		mock.MatchedBy(func(u *domain.ImageUpload) bool { return u != nil && u.ContentType == "image/jpeg" }),
	).Return(updated, nil).Once()

	req := suite.multipartRequest(http.MethodPost, "/alterar-perfil",
		map[string]string{"name": "Ana Clara", "password": "novasenha"},
		&filePart{name: "me.jpg", contentType: "image/jpeg", body: "jpeg-bytes"})
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"name":"Ana Clara"`)
}

func (suite *HandlerTestSuite) TestUpdateProfile_ShortPassword() {
	req := suite.multipartRequest(http.MethodPost, "/alterar-perfil", map[string]string{"password": "123"}, nil)
	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.users.AssertNotCalled(suite.T(), "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestServeImage() {
	suite.images.On("Open", mock.Anything, "a.png").Return(&domain.StoredObject{
		Body:        io.NopCloser(strings.NewReader("png-bytes")),
		ContentType: "image/png",
		Size:        9,
	}, nil).Once()
	suite.images.On("Open", mock.Anything, "missing.png").Return(nil, apperrors.ErrNotFound).Once()
	suite.images.On("Open", mock.Anything, "broken.png").Return(nil, errors.New("bucket unreachable")).Once()

	w := suite.do(http.MethodGet, "/assets/uploads/images/a.png", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("image/png", w.Header().Get("Content-Type"))
	suite.Equal("png-bytes", w.Body.String())

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/assets/uploads/images/missing.png", nil).Code)
	suite.Equal(http.StatusInternalServerError, suite.do(http.MethodGet, "/assets/uploads/images/broken.png", nil).Code)
}

func (suite *HandlerTestSuite) TestMetricsEndpoint() {
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/nao-existe", nil).Code)

	w := suite.do(http.MethodGet, "/metrics", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `letsgoparty_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
}
