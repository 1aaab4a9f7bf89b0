package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"video-hosting-server/internal/model"
	"video-hosting-server/internal/service"
)

// MockVideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, video *model.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByUUID(ctx context.Context, videoUUID string) (*model.VideoWithOwner, error) {
	args := m.Called(ctx, videoUUID)
	if v, ok := args.Get(0).(*model.VideoWithOwner); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) List(ctx context.Context, opts model.VideoListOptions) ([]model.VideoWithOwner, int64, error) {
	args := m.Called(ctx, opts)
	if v, ok := args.Get(0).([]model.VideoWithOwner); ok {
		return v, args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *MockVideoRepository) Update(ctx context.Context, video *model.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(ctx context.Context, videoUUID string) (*model.Video, error) {
	args := m.Called(ctx, videoUUID)
	if v, ok := args.Get(0).(*model.Video); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) SetPublished(ctx context.Context, videoUUID string, published bool) error {
	args := m.Called(ctx, videoUUID, published)
	return args.Error(0)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, videoUUID string) (int64, error) {
	args := m.Called(ctx, videoUUID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) Exists(ctx context.Context, videoUUID string) (bool, error) {
	args := m.Called(ctx, videoUUID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoRepository) ListByChannel(ctx context.Context, ownerUUID string, page, limit int) ([]model.Video, int64, error) {
	args := m.Called(ctx, ownerUUID, page, limit)
	if v, ok := args.Get(0).([]model.Video); ok {
		return v, args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *MockVideoRepository) GetChannelStats(ctx context.Context, ownerUUID string) (*model.ChannelStats, error) {
	args := m.Called(ctx, ownerUUID)
	if s, ok := args.Get(0).(*model.ChannelStats); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

// ===== HELPERS =====

const testPlaybackTTL = 5 * time.Minute

func newTestVideoService() (*service.VideoService, *MockVideoRepository, *MockUserRepository, *MockCacheRepository, *MockS3Storage) {
	mockVideoRepo := new(MockVideoRepository)
	mockUserRepo := new(MockUserRepository)
	mockCache := new(MockCacheRepository)
	mockStorage := new(MockS3Storage)

	svc := service.NewVideoService(mockVideoRepo, mockUserRepo, mockCache, mockStorage, testPlaybackTTL)

	return svc, mockVideoRepo, mockUserRepo, mockCache, mockStorage
}

func testVideo(ownerUUID string) *model.VideoWithOwner {
	return &model.VideoWithOwner{
		Video: model.Video{
			UUID:         "v1",
			OwnerUUID:    ownerUUID,
			Title:        "title",
			VideoKey:     "videos/u1/file.mp4",
			ThumbnailKey: "thumbnails/u1/thumb.png",
			IsPublished:  true,
		},
		OwnerUsername: "user1",
	}
}

// ===== TESTS =====

// 1. Попадание в кэш: БД не трогаем, просмотр анонима в историю не пишем
func TestGetVideo_CacheHit(t *testing.T) {
	svc, mockVideoRepo, mockUserRepo, mockCache, mockStorage := newTestVideoService()
	ctx := context.Background()

	video := testVideo("u1")
	mockCache.On("GetVideo", ctx, "v1").Return(video, nil)
	mockStorage.On("GeneratePresignedGetURL", ctx, "videos/u1/file.mp4", testPlaybackTTL).
		Return("https://signed/videos/u1/file.mp4", nil)

	result, err := svc.GetByUUID(ctx, "v1", "")

	assert.NoError(t, err)
	assert.Equal(t, video, result)
	mockVideoRepo.AssertNotCalled(t, "GetByUUID", mock.Anything, mock.Anything)
	mockUserRepo.AssertNotCalled(t, "AppendWatchHistory", mock.Anything, mock.Anything, mock.Anything)
}

// 2. Промах кэша: видео читается из БД, кладётся в кэш,
// просмотр авторизованного зрителя попадает в историю
func TestGetVideo_CacheMissWithHistory(t *testing.T) {
	svc, mockVideoRepo, mockUserRepo, mockCache, mockStorage := newTestVideoService()
	ctx := context.Background()

	video := testVideo("u1")
	mockCache.On("GetVideo", ctx, "v1").Return(nil, nil)
	mockVideoRepo.On("GetByUUID", ctx, "v1").Return(video, nil)
	mockCache.On("SetVideo", ctx, video).Return(nil)
	mockStorage.On("GeneratePresignedGetURL", ctx, "videos/u1/file.mp4", testPlaybackTTL).
		Return("https://signed/videos/u1/file.mp4", nil)
	mockUserRepo.On("AppendWatchHistory", ctx, "viewer1", "v1").Return(nil)

	result, err := svc.GetByUUID(ctx, "v1", "viewer1")

	assert.NoError(t, err)
	assert.Equal(t, video, result)
	mockVideoRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

// 3. Выдача содержит подписанную ссылку на воспроизведение, а не
// постоянный URL объекта; при ошибке подписи остаётся постоянный URL
func TestGetVideo_PresignedPlaybackURL(t *testing.T) {
	svc, mockVideoRepo, _, mockCache, mockStorage := newTestVideoService()
	ctx := context.Background()

	video := testVideo("u1")
	video.VideoURL = "http://localhost:9000/video-hosting/videos/u1/file.mp4"
	mockCache.On("GetVideo", ctx, "v1").Return(video, nil)
	mockStorage.On("GeneratePresignedGetURL", ctx, "videos/u1/file.mp4", testPlaybackTTL).
		Return("https://signed/videos/u1/file.mp4?X-Amz-Expires=300", nil).Once()

	result, err := svc.GetByUUID(ctx, "v1", "")

	assert.NoError(t, err)
	assert.Equal(t, "https://signed/videos/u1/file.mp4?X-Amz-Expires=300", result.VideoURL)
	mockVideoRepo.AssertNotCalled(t, "GetByUUID", mock.Anything, mock.Anything)

	// хранилище недоступно: выдача не ломается, остаётся сохранённый URL
	stored := testVideo("u1")
	stored.VideoURL = "http://localhost:9000/video-hosting/videos/u1/file.mp4"
	mockCache.On("GetVideo", ctx, "v2").Return(stored, nil)
	mockStorage.On("GeneratePresignedGetURL", ctx, "videos/u1/file.mp4", testPlaybackTTL).
		Return("", errors.New("s3 недоступен")).Once()

	result, err = svc.GetByUUID(ctx, "v2", "")

	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/video-hosting/videos/u1/file.mp4", result.VideoURL)
}

// 4. Удаление чужого видео запрещено
func TestDeleteVideo_NotOwner(t *testing.T) {
	svc, mockVideoRepo, _, _, _ := newTestVideoService()
	ctx := context.Background()

	mockVideoRepo.On("GetByUUID", ctx, "v1").Return(testVideo("u1"), nil)

	err := svc.Delete(ctx, "v1", "intruder")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "доступ запрещён")
	mockVideoRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// 5. Удаление своего видео подчищает объекты в хранилище и кэш
func TestDeleteVideo_Success(t *testing.T) {
	svc, mockVideoRepo, _, mockCache, mockStorage := newTestVideoService()
	ctx := context.Background()

	video := testVideo("u1")
	mockVideoRepo.On("GetByUUID", ctx, "v1").Return(video, nil)
	mockVideoRepo.On("Delete", ctx, "v1").Return(&video.Video, nil)
	mockStorage.On("DeleteObject", ctx, "videos/u1/file.mp4").Return(nil)
	mockStorage.On("DeleteObject", ctx, "thumbnails/u1/thumb.png").Return(nil)
	mockCache.On("DeleteVideo", ctx, "v1").Return(nil)

	err := svc.Delete(ctx, "v1", "u1")

	assert.NoError(t, err)
	mockVideoRepo.AssertExpectations(t)
	mockStorage.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

// 6. Переключение видимости инвертирует текущее состояние
func TestTogglePublish(t *testing.T) {
	svc, mockVideoRepo, _, mockCache, _ := newTestVideoService()
	ctx := context.Background()

	video := testVideo("u1")
	mockVideoRepo.On("GetByUUID", ctx, "v1").Return(video, nil)
	mockVideoRepo.On("SetPublished", ctx, "v1", false).Return(nil)
	mockCache.On("DeleteVideo", ctx, "v1").Return(nil)

	published, err := svc.TogglePublish(ctx, "v1", "u1")

	assert.NoError(t, err)
	assert.False(t, published)
	mockVideoRepo.AssertExpectations(t)
}

// 7. Ошибка БД при инкременте просмотров пробрасывается наверх
func TestAddView_Error(t *testing.T) {
	svc, mockVideoRepo, _, _, _ := newTestVideoService()
	ctx := context.Background()

	mockVideoRepo.On("IncrementViews", ctx, "v1").
		Return(int64(0), errors.New("db error"))

	views, err := svc.AddView(ctx, "v1")

	assert.Error(t, err)
	assert.Zero(t, views)
}
