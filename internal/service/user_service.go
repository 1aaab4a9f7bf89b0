package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/util"
)

type UserService struct {
	userRepository ports.UserRepository
	cache          ports.CacheRepository
	storage        ports.S3Storage
}

func NewUserService(
	userRepository ports.UserRepository,
	cache ports.CacheRepository,
	storage ports.S3Storage,
) *UserService {
	return &UserService{
		userRepository: userRepository,
		cache:          cache,
		storage:        storage,
	}
}

// Register создаёт аккаунт. Аватар обязателен, обложка опциональна.
// Username и email приводятся к нижнему регистру, уникальность
// обеспечивается на уровне БД
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*model.User, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.userRepository.FindByUsernameOrEmail(ctx, username, email)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("[UserService] пользователь с таким username или email уже существует")
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("[UserService] не удалось создать хэш пароля: %w", err)
	}

	userUUID := uuid.New().String()

	avatarKey := objectKey("avatars", userUUID, input.Avatar.Filename)
	avatarURL, err := s.storage.UploadObject(ctx, avatarKey, input.Avatar)
	if err != nil {
		return nil, fmt.Errorf("[UserService] не удалось загрузить аватар: %w", err)
	}

	var coverURL, coverKey string
	if input.CoverImage != nil {
		coverKey = objectKey("covers", userUUID, input.CoverImage.Filename)
		coverURL, err = s.storage.UploadObject(ctx, coverKey, *input.CoverImage)
		if err != nil {
			return nil, fmt.Errorf("[UserService] не удалось загрузить обложку: %w", err)
		}
	}

	user := &model.User{
		UUID:         userUUID,
		Username:     username,
		Email:        email,
		FullName:     input.FullName,
		AvatarURL:    avatarURL,
		AvatarKey:    avatarKey,
		CoverURL:     coverURL,
		CoverKey:     coverKey,
		PasswordHash: hash,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("[UserService] ошибка создания пользователя: %w", err)
	}

	created.Sanitize()
	return created, nil
}

func (s *UserService) UpdateAccount(ctx context.Context, uuid, fullName, email string) (*model.User, error) {
	updated, err := s.userRepository.UpdateAccount(ctx, uuid, fullName, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	s.invalidateChannel(ctx, updated.Username)

	updated.Sanitize()
	return updated, nil
}

// UpdateAvatar загружает новый аватар и удаляет старый объект из хранилища
func (s *UserService) UpdateAvatar(ctx context.Context, uuid string, file ports.UploadedFile) (*model.User, error) {
	user, err := s.userRepository.FindByUUID(ctx, uuid)
	if err != nil {
		return nil, fmt.Errorf("[UserService] пользователь не найден")
	}

	key := objectKey("avatars", uuid, file.Filename)
	url, err := s.storage.UploadObject(ctx, key, file)
	if err != nil {
		return nil, fmt.Errorf("[UserService] не удалось загрузить аватар: %w", err)
	}

	if err := s.userRepository.UpdateAvatar(ctx, uuid, url, key); err != nil {
		return nil, err
	}

	if user.AvatarKey != "" && user.AvatarKey != key {
		if err := s.storage.DeleteObject(ctx, user.AvatarKey); err != nil {
			util.Logger().Warnf("не удалось удалить старый аватар %s: %v", user.AvatarKey, err)
		}
	}

	s.invalidateChannel(ctx, user.Username)

	user.AvatarURL = url
	user.AvatarKey = key
	user.Sanitize()
	return user, nil
}

// UpdateCoverImage загружает новую обложку и удаляет старую
func (s *UserService) UpdateCoverImage(ctx context.Context, uuid string, file ports.UploadedFile) (*model.User, error) {
	user, err := s.userRepository.FindByUUID(ctx, uuid)
	if err != nil {
		return nil, fmt.Errorf("[UserService] пользователь не найден")
	}

	key := objectKey("covers", uuid, file.Filename)
	url, err := s.storage.UploadObject(ctx, key, file)
	if err != nil {
		return nil, fmt.Errorf("[UserService] не удалось загрузить обложку: %w", err)
	}

	if err := s.userRepository.UpdateCoverImage(ctx, uuid, url, key); err != nil {
		return nil, err
	}

	if user.CoverKey != "" && user.CoverKey != key {
		if err := s.storage.DeleteObject(ctx, user.CoverKey); err != nil {
			util.Logger().Warnf("не удалось удалить старую обложку %s: %v", user.CoverKey, err)
		}
	}

	s.invalidateChannel(ctx, user.Username)

	user.CoverURL = url
	user.CoverKey = key
	user.Sanitize()
	return user, nil
}

// GetChannelProfile : профиль канала с агрегатами, через кэш
func (s *UserService) GetChannelProfile(ctx context.Context, username, viewerUUID string) (*model.ChannelProfile, error) {
	username = strings.ToLower(username)

	cached, err := s.cache.GetChannelProfile(ctx, username, viewerUUID)
	if err != nil {
		util.Logger().Warnf("ошибка чтения профиля канала из кэша: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	profile, err := s.userRepository.GetChannelProfile(ctx, username, viewerUUID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetChannelProfile(ctx, username, viewerUUID, profile); err != nil {
		util.Logger().Warnf("ошибка записи профиля канала в кэш: %v", err)
	}

	return profile, nil
}

func (s *UserService) GetWatchHistory(ctx context.Context, userUUID string, limit int) ([]model.WatchHistoryEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.userRepository.GetWatchHistory(ctx, userUUID, limit)
}

func (s *UserService) invalidateChannel(ctx context.Context, username string) {
	if err := s.cache.DeleteChannelProfile(ctx, username); err != nil {
		util.Logger().Warnf("ошибка инвалидации кэша канала %s: %v", username, err)
	}
}

func objectKey(prefix, userUUID, filename string) string {
	return fmt.Sprintf("%s/%s/%s%s", prefix, userUUID, uuid.New().String(), filepath.Ext(filename))
}
