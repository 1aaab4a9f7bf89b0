package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/service"
)

// MockS3Storage
type MockS3Storage struct {
	mock.Mock
}

func (m *MockS3Storage) UploadObject(ctx context.Context, key string, file ports.UploadedFile) (string, error) {
	args := m.Called(ctx, key, file)
	return args.String(0), args.Error(1)
}

func (m *MockS3Storage) GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockS3Storage) DeleteObject(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockCacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) GetVideo(ctx context.Context, uuid string) (*model.VideoWithOwner, error) {
	args := m.Called(ctx, uuid)
	if v, ok := args.Get(0).(*model.VideoWithOwner); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCacheRepository) SetVideo(ctx context.Context, video *model.VideoWithOwner) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockCacheRepository) DeleteVideo(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

func (m *MockCacheRepository) GetChannelProfile(ctx context.Context, username, viewerUUID string) (*model.ChannelProfile, error) {
	args := m.Called(ctx, username, viewerUUID)
	if p, ok := args.Get(0).(*model.ChannelProfile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCacheRepository) SetChannelProfile(ctx context.Context, username, viewerUUID string, profile *model.ChannelProfile) error {
	args := m.Called(ctx, username, viewerUUID, profile)
	return args.Error(0)
}

func (m *MockCacheRepository) DeleteChannelProfile(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

// ===== HELPERS =====

func newTestUserService() (*service.UserService, *MockUserRepository, *MockCacheRepository, *MockS3Storage) {
	mockUserRepo := new(MockUserRepository)
	mockCache := new(MockCacheRepository)
	mockStorage := new(MockS3Storage)

	svc := service.NewUserService(mockUserRepo, mockCache, mockStorage)

	return svc, mockUserRepo, mockCache, mockStorage
}

func registerInput() ports.RegisterInput {
	return ports.RegisterInput{
		Username: "NewUser",
		Email:    "NewUser@Example.com",
		FullName: "New User",
		Password: "P@ssw0rd123",
		Avatar: ports.UploadedFile{
			Reader:      strings.NewReader("avatar-bytes"),
			Size:        12,
			Filename:    "avatar.png",
			ContentType: "image/png",
		},
	}
}

// ===== TESTS =====

// 1. Регистрация: занятый username или email
func TestRegister_Duplicate(t *testing.T) {
	svc, mockUserRepo, _, _ := newTestUserService()
	ctx := context.Background()

	mockUserRepo.On("FindByUsernameOrEmail", ctx, "newuser", "newuser@example.com").
		Return(&model.User{UUID: "existing"}, nil)

	user, err := svc.Register(ctx, registerInput())

	assert.Nil(t, user)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "уже существует")
	mockUserRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

// 2. Регистрация: ошибка загрузки аватара — аккаунт не создаётся
func TestRegister_AvatarUploadError(t *testing.T) {
	svc, mockUserRepo, _, mockStorage := newTestUserService()
	ctx := context.Background()

	mockUserRepo.On("FindByUsernameOrEmail", ctx, "newuser", "newuser@example.com").
		Return(nil, errors.New("not found"))
	mockStorage.On("UploadObject", ctx, mock.AnythingOfType("string"), mock.Anything).
		Return("", errors.New("s3 error"))

	user, err := svc.Register(ctx, registerInput())

	assert.Nil(t, user)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "не удалось загрузить аватар")
	mockUserRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

// 3. Успешная регистрация: username и email в нижнем регистре,
// пароль наружу не уходит
func TestRegister_Success(t *testing.T) {
	svc, mockUserRepo, _, mockStorage := newTestUserService()
	ctx := context.Background()

	mockUserRepo.On("FindByUsernameOrEmail", ctx, "newuser", "newuser@example.com").
		Return(nil, errors.New("not found"))
	mockStorage.On("UploadObject", ctx, mock.AnythingOfType("string"), mock.Anything).
		Return("http://s3/avatar.png", nil)

	var created *model.User
	mockUserRepo.On("CreateUser", ctx, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.User)
		}).
		Return(&model.User{UUID: "u-new", Username: "newuser", Email: "newuser@example.com", PasswordHash: "hash"}, nil)

	user, err := svc.Register(ctx, registerInput())

	assert.NoError(t, err)
	assert.Equal(t, "newuser", created.Username)
	assert.Equal(t, "newuser@example.com", created.Email)
	assert.NotEmpty(t, created.PasswordHash)
	assert.NotEqual(t, "P@ssw0rd123", created.PasswordHash)
	assert.Empty(t, user.PasswordHash)
	mockUserRepo.AssertExpectations(t)
}

// 4. Профиль канала читается из кэша без похода в БД
func TestGetChannelProfile_CacheHit(t *testing.T) {
	svc, mockUserRepo, mockCache, _ := newTestUserService()
	ctx := context.Background()

	cached := &model.ChannelProfile{UUID: "u1", Username: "user1", SubscriberCount: 5}
	mockCache.On("GetChannelProfile", ctx, "user1", "viewer1").Return(cached, nil)

	profile, err := svc.GetChannelProfile(ctx, "User1", "viewer1")

	assert.NoError(t, err)
	assert.Equal(t, cached, profile)
	mockUserRepo.AssertNotCalled(t, "GetChannelProfile", mock.Anything, mock.Anything, mock.Anything)
}

// 5. Промах кэша: профиль берётся из БД и кладётся в кэш
func TestGetChannelProfile_CacheMiss(t *testing.T) {
	svc, mockUserRepo, mockCache, _ := newTestUserService()
	ctx := context.Background()

	profile := &model.ChannelProfile{UUID: "u1", Username: "user1", SubscriberCount: 5}
	mockCache.On("GetChannelProfile", ctx, "user1", "viewer1").Return(nil, nil)
	mockUserRepo.On("GetChannelProfile", ctx, "user1", "viewer1").Return(profile, nil)
	mockCache.On("SetChannelProfile", ctx, "user1", "viewer1", profile).Return(nil)

	result, err := svc.GetChannelProfile(ctx, "user1", "viewer1")

	assert.NoError(t, err)
	assert.Equal(t, profile, result)
	mockCache.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}
