package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/util"
)

type VideoService struct {
	videoRepository ports.VideoRepository
	userRepository  ports.UserRepository
	cache           ports.CacheRepository
	storage         ports.S3Storage
	// время жизни подписанной ссылки на воспроизведение
	playbackTTL time.Duration
}

func NewVideoService(
	videoRepository ports.VideoRepository,
	userRepository ports.UserRepository,
	cache ports.CacheRepository,
	storage ports.S3Storage,
	playbackTTL time.Duration,
) *VideoService {
	return &VideoService{
		videoRepository: videoRepository,
		userRepository:  userRepository,
		cache:           cache,
		storage:         storage,
		playbackTTL:     playbackTTL,
	}
}

// Publish загружает видеофайл и превью в S3 и создаёт запись.
// Видео сразу публикуется, скрыть его можно через TogglePublish
func (s *VideoService) Publish(ctx context.Context, ownerUUID, title, description string, duration float64, videoFile, thumbnail ports.UploadedFile) (*model.VideoWithOwner, error) {
	videoUUID := uuid.New().String()

	videoKey := objectKey("videos", ownerUUID, videoFile.Filename)
	videoURL, err := s.storage.UploadObject(ctx, videoKey, videoFile)
	if err != nil {
		return nil, fmt.Errorf("[VideoService] не удалось загрузить видеофайл: %w", err)
	}

	thumbKey := objectKey("thumbnails", ownerUUID, thumbnail.Filename)
	thumbURL, err := s.storage.UploadObject(ctx, thumbKey, thumbnail)
	if err != nil {
		// видеофайл уже в бакете, подчищаем за собой
		if delErr := s.storage.DeleteObject(ctx, videoKey); delErr != nil {
			util.Logger().Warnf("не удалось удалить видеофайл %s после ошибки: %v", videoKey, delErr)
		}
		return nil, fmt.Errorf("[VideoService] не удалось загрузить превью: %w", err)
	}

	video := &model.Video{
		UUID:         videoUUID,
		OwnerUUID:    ownerUUID,
		Title:        title,
		Description:  description,
		VideoURL:     videoURL,
		VideoKey:     videoKey,
		ThumbnailURL: thumbURL,
		ThumbnailKey: thumbKey,
		Duration:     duration,
		IsPublished:  true,
	}

	if err := s.videoRepository.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("[VideoService] ошибка создания видео: %w", err)
	}

	return s.videoRepository.GetByUUID(ctx, videoUUID)
}

// GetByUUID : видео через кэш. Для авторизованного зрителя просмотр
// попадает в историю
func (s *VideoService) GetByUUID(ctx context.Context, videoUUID, viewerUUID string) (*model.VideoWithOwner, error) {
	video, err := s.cache.GetVideo(ctx, videoUUID)
	if err != nil {
		util.Logger().Warnf("ошибка чтения видео из кэша: %v", err)
	}

	if video == nil {
		video, err = s.videoRepository.GetByUUID(ctx, videoUUID)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetVideo(ctx, video); err != nil {
			util.Logger().Warnf("ошибка записи видео в кэш: %v", err)
		}
	}

	// в кэше и в БД лежит постоянный URL объекта; подписанная ссылка
	// короткоживущая, поэтому генерируется на каждую выдачу
	if video.VideoKey != "" {
		signedURL, err := s.storage.GeneratePresignedGetURL(ctx, video.VideoKey, s.playbackTTL)
		if err != nil {
			util.Logger().Warnf("не удалось подписать ссылку на видео %s: %v", video.VideoKey, err)
		} else {
			video.VideoURL = signedURL
		}
	}

	if viewerUUID != "" {
		if err := s.userRepository.AppendWatchHistory(ctx, viewerUUID, videoUUID); err != nil {
			util.Logger().Warnf("не удалось записать просмотр в историю: %v", err)
		}
	}

	return video, nil
}

func (s *VideoService) List(ctx context.Context, opts model.VideoListOptions) ([]model.VideoWithOwner, int64, error) {
	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.Limit <= 0 || opts.Limit > 50 {
		opts.Limit = 10
	}
	return s.videoRepository.List(ctx, opts)
}

// Update меняет метаданные видео. Новое превью заменяет старое в хранилище
func (s *VideoService) Update(ctx context.Context, videoUUID, userUUID, title, description string, thumbnail *ports.UploadedFile) (*model.VideoWithOwner, error) {
	current, err := s.videoRepository.GetByUUID(ctx, videoUUID)
	if err != nil {
		return nil, err
	}
	if current.OwnerUUID != userUUID {
		return nil, fmt.Errorf("[VideoService] доступ запрещён: видео принадлежит другому пользователю")
	}

	updated := &model.Video{
		UUID:        videoUUID,
		Title:       title,
		Description: description,
	}

	if thumbnail != nil {
		key := objectKey("thumbnails", userUUID, thumbnail.Filename)
		url, err := s.storage.UploadObject(ctx, key, *thumbnail)
		if err != nil {
			return nil, fmt.Errorf("[VideoService] не удалось загрузить превью: %w", err)
		}
		updated.ThumbnailURL = url
		updated.ThumbnailKey = key
	}

	if err := s.videoRepository.Update(ctx, updated); err != nil {
		return nil, err
	}

	if thumbnail != nil && current.ThumbnailKey != "" {
		if err := s.storage.DeleteObject(ctx, current.ThumbnailKey); err != nil {
			util.Logger().Warnf("не удалось удалить старое превью %s: %v", current.ThumbnailKey, err)
		}
	}

	s.invalidateVideo(ctx, videoUUID)

	return s.videoRepository.GetByUUID(ctx, videoUUID)
}

// Delete удаляет видео вместе с объектами в хранилище
func (s *VideoService) Delete(ctx context.Context, videoUUID, userUUID string) error {
	current, err := s.videoRepository.GetByUUID(ctx, videoUUID)
	if err != nil {
		return err
	}
	if current.OwnerUUID != userUUID {
		return fmt.Errorf("[VideoService] доступ запрещён: видео принадлежит другому пользователю")
	}

	deleted, err := s.videoRepository.Delete(ctx, videoUUID)
	if err != nil {
		return err
	}

	for _, key := range []string{deleted.VideoKey, deleted.ThumbnailKey} {
		if key == "" {
			continue
		}
		if err := s.storage.DeleteObject(ctx, key); err != nil {
			util.Logger().Warnf("не удалось удалить объект %s: %v", key, err)
		}
	}

	s.invalidateVideo(ctx, videoUUID)
	return nil
}

// TogglePublish переключает видимость видео, возвращает новое состояние
func (s *VideoService) TogglePublish(ctx context.Context, videoUUID, userUUID string) (bool, error) {
	current, err := s.videoRepository.GetByUUID(ctx, videoUUID)
	if err != nil {
		return false, err
	}
	if current.OwnerUUID != userUUID {
		return false, fmt.Errorf("[VideoService] доступ запрещён: видео принадлежит другому пользователю")
	}

	next := !current.IsPublished
	if err := s.videoRepository.SetPublished(ctx, videoUUID, next); err != nil {
		return false, err
	}

	s.invalidateVideo(ctx, videoUUID)
	return next, nil
}

func (s *VideoService) AddView(ctx context.Context, videoUUID string) (int64, error) {
	views, err := s.videoRepository.IncrementViews(ctx, videoUUID)
	if err != nil {
		return 0, err
	}
	s.invalidateVideo(ctx, videoUUID)
	return views, nil
}

func (s *VideoService) invalidateVideo(ctx context.Context, videoUUID string) {
	if err := s.cache.DeleteVideo(ctx, videoUUID); err != nil {
		util.Logger().Warnf("ошибка инвалидации кэша видео %s: %v", videoUUID, err)
	}
}
