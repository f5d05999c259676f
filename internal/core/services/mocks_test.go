package services_test

import (
	"context"
	"io"
	"time"

	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	"github.com/letsgoparty/letsgoparty_backend/internal/core/eventquery"
	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) user(args mock.Arguments) (*domain.User, error) {
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return m.user(m.Called(ctx, userID))
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.user(m.Called(ctx, email))
}

func (m *MockUserRepository) FindUserByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	return m.user(m.Called(ctx, token))
}

func (m *MockUserRepository) FindUserByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	return m.user(m.Called(ctx, token, now))
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) LinkGoogleAccount(ctx context.Context, userID, googleID string, image *domain.Image, updatedAt time.Time) error {
	return m.Called(ctx, userID, googleID, image, updatedAt).Error(0)
}

func (m *MockUserRepository) SetVerificationToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	return m.Called(ctx, userID, token, expiresAt).Error(0)
}

func (m *MockUserRepository) ConsumeVerificationToken(ctx context.Context, userID, token string, now time.Time) error {
	return m.Called(ctx, userID, token, now).Error(0)
}

func (m *MockUserRepository) SetResetToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	return m.Called(ctx, userID, token, expiresAt).Error(0)
}

func (m *MockUserRepository) ConsumeResetToken(ctx context.Context, userID, token, passwordHash string, now time.Time) error {
	return m.Called(ctx, userID, token, passwordHash, now).Error(0)
}

// --- MockEventRepository ---
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	var event *domain.Event
	if args.Get(0) != nil {
		event = args.Get(0).(*domain.Event)
	}
	return event, args.Error(1)
}

func (m *MockEventRepository) FindEvents(ctx context.Context, criteria eventquery.Criteria, limit, offset int) ([]domain.Event, error) {
	args := m.Called(ctx, criteria, limit, offset)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Error(1)
}

func (m *MockEventRepository) CountEvents(ctx context.Context, criteria eventquery.Criteria) (int, error) {
	args := m.Called(ctx, criteria)
	return args.Int(0), args.Error(1)
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	return m.Called(ctx, eventID).Error(0)
}

// --- MockLikeRepository ---
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) ToggleLike(ctx context.Context, userID, eventID string, now time.Time) (bool, error) {
	args := m.Called(ctx, userID, eventID, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) DeleteLike(ctx context.Context, userID, eventID string) error {
	return m.Called(ctx, userID, eventID).Error(0)
}

func (m *MockLikeRepository) LikeExists(ctx context.Context, userID, eventID string) (bool, error) {
	args := m.Called(ctx, userID, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) FindLikedEvents(ctx context.Context, userID string, limit, offset int) ([]domain.Event, error) {
	args := m.Called(ctx, userID, limit, offset)
	var events []domain.Event
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.Event)
	}
	return events, args.Error(1)
}

func (m *MockLikeRepository) CountLikes(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// --- MockMailer ---
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg domain.MailMessage) error {
	return m.Called(ctx, msg).Error(0)
}

// --- MockImageStore ---
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
	var obj *domain.StoredObject
	if args.Get(0) != nil {
		obj = args.Get(0).(*domain.StoredObject)
	}
	return obj, args.Error(1)
}

// fixedClock always answers the same instant.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func pngUpload(name string, body io.Reader) *domain.ImageUpload {
	return &domain.ImageUpload{OriginalName: name, ContentType: "image/png", Size: 4, Content: body}
}
