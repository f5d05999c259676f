package handlers_test

import (
	"context"
	"time"

	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}
func (m *MockAuthService) LoginWithGoogle(ctx context.Context, info domain.GoogleUserInfo) (string, error) {
	args := m.Called(ctx, info)
	return args.String(0), args.Error(1)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return m.Called(ctx, state).String(0)
}
func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}
func (m *MockGoogleOAuthService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleUserInfo), args.Error(1)
}
func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

// --- Mock RegistrationService ---
type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) Register(ctx context.Context, req dto.RegisterRequest) error {
	return m.Called(ctx, req).Error(0)
}
func (m *MockRegistrationService) VerifyEmail(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
func (m *MockRegistrationService) ResendVerification(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// --- Mock PasswordResetService ---
type MockPasswordResetService struct {
	mock.Mock
}

func (m *MockPasswordResetService) RequestPasswordReset(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *MockPasswordResetService) CheckResetToken(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
func (m *MockPasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return m.Called(ctx, token, newPassword).Error(0)
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest, upload *domain.ImageUpload) (*domain.User, error) {
	args := m.Called(ctx, userID, req, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock EventService ---
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) events(args mock.Arguments) ([]domain.Event, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventService) page(args mock.Arguments) (*domain.EventPage, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventPage), args.Error(1)
}
func (m *MockEventService) event(args mock.Arguments) (*domain.Event, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventService) ListRecent(ctx context.Context) ([]domain.Event, error) {
	return m.events(m.Called(ctx))
}
func (m *MockEventService) ListUpcoming(ctx context.Context) ([]domain.Event, error) {
	return m.events(m.Called(ctx))
}
func (m *MockEventService) ListSlider(ctx context.Context) ([]domain.Event, error) {
	return m.events(m.Called(ctx))
}
func (m *MockEventService) ListPaginated(ctx context.Context, q dto.EventListQuery) (*domain.EventPage, error) {
	return m.page(m.Called(ctx, q))
}
func (m *MockEventService) FilterByCategory(ctx context.Context, q dto.EventListQuery) (*domain.EventPage, error) {
	return m.page(m.Called(ctx, q))
}
func (m *MockEventService) Search(ctx context.Context, q dto.EventListQuery) (*domain.EventPage, error) {
	return m.page(m.Called(ctx, q))
}
func (m *MockEventService) SearchByDate(ctx context.Context, q dto.EventListQuery) (*domain.EventPage, error) {
	return m.page(m.Called(ctx, q))
}
func (m *MockEventService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	return m.event(m.Called(ctx, eventID))
}
func (m *MockEventService) ListMine(ctx context.Context, userID, rawPage string) (*domain.EventPage, error) {
	return m.page(m.Called(ctx, userID, rawPage))
}
func (m *MockEventService) GetOwnedEvent(ctx context.Context, userID, eventID string) (*domain.Event, error) {
	return m.event(m.Called(ctx, userID, eventID))
}
func (m *MockEventService) CreateEvent(ctx context.Context, userID string, req dto.CreateEventRequest, upload *domain.ImageUpload) (*domain.Event, error) {
	return m.event(m.Called(ctx, userID, req, upload))
}
func (m *MockEventService) UpdateEvent(ctx context.Context, userID, eventID string, req dto.UpdateEventRequest, upload *domain.ImageUpload) (*domain.Event, error) {
	return m.event(m.Called(ctx, userID, eventID, req, upload))
}
func (m *MockEventService) DeleteEvent(ctx context.Context, userID, eventID string) error {
	return m.Called(ctx, userID, eventID).Error(0)
}

// --- Mock LikeService ---
type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) ToggleLike(ctx context.Context, userID, eventID string) (bool, error) {
	args := m.Called(ctx, userID, eventID)
	return args.Bool(0), args.Error(1)
}
func (m *MockLikeService) RemoveLike(ctx context.Context, userID, eventID string) error {
	return m.Called(ctx, userID, eventID).Error(0)
}
func (m *MockLikeService) IsLiked(ctx context.Context, userID, eventID string) (bool, error) {
	args := m.Called(ctx, userID, eventID)
	return args.Bool(0), args.Error(1)
}
func (m *MockLikeService) ListFavorites(ctx context.Context, userID, rawPage string) (*domain.EventPage, error) {
	args := m.Called(ctx, userID, rawPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventPage), args.Error(1)
}

// --- Mock ContactService ---
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Send(ctx context.Context, req dto.ContactRequest) error {
	return m.Called(ctx, req).Error(0)
}

// --- Mock ImageStore ---
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Save(ctx context.Context, filename string, upload domain.ImageUpload) error {
	return m.Called(ctx, filename, upload).Error(0)
}
func (m *MockImageStore) Delete(ctx context.Context, filename string) error {
	return m.Called(ctx, filename).Error(0)
}
func (m *MockImageStore) Open(ctx context.Context, filename string) (*domain.StoredObject, error) {
	args := m.Called(ctx, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredObject), args.Error(1)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.AuthSvcFacade          = (*MockAuthService)(nil)
	_ portssvc.TokenSvcFacade         = (*MockTokenService)(nil)
	_ portssvc.GoogleOAuthSvcFacade   = (*MockGoogleOAuthService)(nil)
	_ portssvc.RegistrationSvcFacade  = (*MockRegistrationService)(nil)
	_ portssvc.PasswordResetSvcFacade = (*MockPasswordResetService)(nil)
	_ portssvc.UserSvcFacade          = (*MockUserService)(nil)
	_ portssvc.EventSvcFacade         = (*MockEventService)(nil)
	_ portssvc.LikeSvcFacade          = (*MockLikeService)(nil)
	_ portssvc.ContactSvc             = (*MockContactService)(nil)
	_ portssvc.ImageStore             = (*MockImageStore)(nil)
)
