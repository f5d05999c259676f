package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/letsgoparty/letsgoparty_backend/internal/apperrors"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

func sampleEvent(id string) domain.Event {
	return domain.Event{
		EventID:  id,
		UserID:   testUserID,
		Title:    "Festa " + id,
		Date:     time.Date(2025, 3, 1, 22, 0, 0, 0, time.UTC),
		Category: "Show",
		Image:    &domain.Image{Path: "/assets/uploads/images/" + id + ".png", Filename: id + ".png"},
	}
}

func (suite *HandlerTestSuite) TestListRecent() {
	suite.events.On("ListRecent", mock.Anything).Return([]domain.Event{sampleEvent("e1"), sampleEvent("e2")}, nil).Once()

	w := suite.do(http.MethodGet, "/listar-eventos-recentes", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.EventListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Últimos 5 eventos listados com sucesso", body.Message)
	suite.Len(body.Events, 2)
	suite.Equal("e1", body.Events[0].ID)
}

func (suite *HandlerTestSuite) TestListUpcoming() {
	suite.events.On("ListUpcoming", mock.Anything).Return([]domain.Event{}, nil).Once()

	w := suite.do(http.MethodGet, "/listar-todos-eventos", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"message":"Últimos 20 eventos futuros listados com sucesso","events":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestSlider_ExpandsStoredImagesOnly() {
	remote := sampleEvent("e2")
	remote.Image = &domain.Image{Path: "https://cdn.test/e2.png", Filename: "e2.png"}
	suite.events.On("ListSlider", mock.Anything).Return([]domain.Event{sampleEvent("e1"), remote}, nil).Once()

	w := suite.do(http.MethodGet, "/eventos-slider", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.SliderEventResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 2)
	suite.Equal("http://api.test/assets/uploads/images/e1.png", body[0].Image)
	suite.Equal("Festa e1", body[0].TitleEvent)
	suite.Equal("https://cdn.test/e2.png", body[1].Image)
}

func (suite *HandlerTestSuite) TestPaginated_PassesQuery() {
	expected := dto.EventListQuery{Page: "2", Limit: "20", StartDate: "2025-01-10", EndDate: "2025-01-31"}
	suite.events.On("ListPaginated", mock.Anything, expected).
		Return(&domain.EventPage{Events: []domain.Event{sampleEvent("e1")}, TotalPages: 3}, nil).Once()

	w := suite.do(http.MethodGet, "/listar-eventos-paginados?page=2&limit=20&startDate=2025-01-10&endDate=2025-01-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.EventPageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(3, body.TotalPages)
	suite.Len(body.Events, 1)
}

func (suite *HandlerTestSuite) TestPaginated_RejectsImpossibleDate() {
	w := suite.do(http.MethodGet, "/listar-eventos-paginados?startDate=2025-02-30", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("ValidationError", suite.decodeError(w).Kind)
	suite.events.AssertNotCalled(suite.T(), "ListPaginated", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestFilterSearchAndDateBucketRoutes() {
	page := &domain.EventPage{Events: []domain.Event{}, TotalPages: 0}
	suite.events.On("FilterByCategory", mock.Anything, dto.EventListQuery{Category: "Show"}).Return(page, nil).Once()
	suite.events.On("Search", mock.Anything, dto.EventListQuery{Search: "rock", Category: "Show"}).Return(page, nil).Once()
	suite.events.On("SearchByDate", mock.Anything, dto.EventListQuery{Search: "rock", DateFilter: "hoje"}).Return(page, nil).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/filtrar-eventos?category=Show", nil).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/buscar-eventos?search=rock&category=Show", nil).Code)
	w := suite.do(http.MethodGet, "/buscar-eventos-data?search=rock&dateFilter=hoje", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"events":[],"totalPages":0}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestShowEvent() {
	event := sampleEvent("e1")
	suite.events.On("GetEvent", mock.Anything, "e1").Return(&event, nil).Once()
	suite.events.On("GetEvent", mock.Anything, "missing").Return(nil, apperrors.NewNotFoundError("Evento não encontrado")).Once()

	w := suite.do(http.MethodGet, "/mostrar-evento/e1", nil)
	suite.Equal(http.StatusOK, w.Code)
	var body dto.EventDetailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("e1", body.Event.ID)
	suite.Equal("/assets/uploads/images/e1.png", body.Event.Image.Path)

	w = suite.do(http.MethodGet, "/mostrar-evento/missing", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("NotFound", suite.decodeError(w).Kind)
}

func (suite *HandlerTestSuite) TestListMine() {
	suite.events.On("ListMine", mock.Anything, testUserID, "2").
		Return(&domain.EventPage{Events: []domain.Event{sampleEvent("e1")}, TotalPages: 2}, nil).Once()

	w := suite.doAuthed(http.MethodGet, "/listar-meus-eventos?page=2", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"totalPages":2`)
}

func (suite *HandlerTestSuite) TestCreateEvent_WithImage() {
	created := sampleEvent("e9")
	suite.events.On("CreateEvent", mock.Anything, testUserID,
		mock.MatchedBy(func(r dto.CreateEventRequest) bool {
			return r.Title == "Festa" && r.Category == "Show" && r.Date == "2025-03-01"
		}),
		mock.MatchedBy(func(u *domain.ImageUpload) bool {
			return u != nil && u.ContentType == "image/png" && u.OriginalName == "cover.png" &&
				u.Size == int64(len("png-bytes")) && u.Content != nil
		}),
	).Return(&created, nil).Once()

	req := suite.multipartRequest(http.MethodPost, "/criar-evento",
		map[string]string{"title": "Festa", "date": "2025-03-01", "category": "Show"},
		&filePart{name: "cover.png", contentType: "image/png", body: "png-bytes"})
	w := suite.serve(req)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.EventResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("e9", body.ID)
	suite.True(strings.HasPrefix(body.Image.Path, "/assets/uploads/images/"))
}

func (suite *HandlerTestSuite) TestCreateEvent_NonImageCountsAsMissing() {
	suite.events.On("CreateEvent", mock.Anything, testUserID, mock.Anything,
		mock.MatchedBy(func(u *domain.ImageUpload) bool { return u == nil }),
	).Return(nil, apperrors.NewBadRequestError("Imagem não enviada")).Once()

	req := suite.multipartRequest(http.MethodPost, "/criar-evento",
		map[string]string{"title": "Festa", "date": "2025-03-01", "category": "Show"},
		&filePart{name: "notes.txt", contentType: "text/plain", body: "hello"})
	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Imagem não enviada", suite.decodeError(w).Message)
}

func (suite *HandlerTestSuite) TestCreateEvent_MissingTitle() {
	req := suite.multipartRequest(http.MethodPost, "/criar-evento",
		map[string]string{"date": "2025-03-01", "category": "Show"}, nil)
	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.events.AssertNotCalled(suite.T(), "CreateEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetOwnedEvent_Forbidden() {
	suite.events.On("GetOwnedEvent", mock.Anything, testUserID, "e1").
		Return(nil, apperrors.NewForbiddenError("Você não tem permissão para editar este evento.")).Once()

	w := suite.doAuthed(http.MethodGet, "/eventos/e1", nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Forbidden", suite.decodeError(w).Kind)
}

func (suite *HandlerTestSuite) TestUpdateEvent_PartialForm() {
	updated := sampleEvent("e1")
	updated.Title = "Nova"
	suite.events.On("UpdateEvent", mock.Anything, testUserID, "e1",
		mock.MatchedBy(func(r dto.UpdateEventRequest) bool {
			return r.Title != nil && *r.Title == "Nova" && r.Description == nil
		}),
		mock.MatchedBy(func(u *domain.ImageUpload) bool { return u == nil }),
	).Return(&updated, nil).Once()

	req := suite.multipartRequest(http.MethodPut, "/eventos/e1", map[string]string{"title": "Nova"}, nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"title":"Nova"`)
}

func (suite *HandlerTestSuite) TestDeleteEvent() {
	suite.events.On("DeleteEvent", mock.Anything, testUserID, "e1").Return(nil).Once()
	suite.events.On("DeleteEvent", mock.Anything, testUserID, "e2").Return(apperrors.ErrForbidden).Once()

	w := suite.doAuthed(http.MethodDelete, "/eventos/e1", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Evento deletado com sucesso.", suite.decodeMessage(w))

	w = suite.doAuthed(http.MethodDelete, "/eventos/e2", nil)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Acesso negado", suite.decodeError(w).Message)
}
