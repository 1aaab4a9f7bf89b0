package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"
)

type PlaylistService struct {
	playlistRepository ports.PlaylistRepository
	videoRepository    ports.VideoRepository
}

func NewPlaylistService(
	playlistRepository ports.PlaylistRepository,
	videoRepository ports.VideoRepository,
) *PlaylistService {
	return &PlaylistService{
		playlistRepository: playlistRepository,
		videoRepository:    videoRepository,
	}
}

func (s *PlaylistService) Create(ctx context.Context, ownerUUID, name, description string) (*model.Playlist, error) {
	playlist := &model.Playlist{
		UUID:        uuid.New().String(),
		OwnerUUID:   ownerUUID,
		Name:        name,
		Description: description,
	}
	if err := s.playlistRepository.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) GetByUUID(ctx context.Context, playlistUUID string) (*model.PlaylistWithVideos, error) {
	return s.playlistRepository.GetByUUID(ctx, playlistUUID)
}

func (s *PlaylistService) ListByOwner(ctx context.Context, ownerUUID string) ([]model.Playlist, error) {
	return s.playlistRepository.ListByOwner(ctx, ownerUUID)
}

func (s *PlaylistService) Update(ctx context.Context, playlistUUID, userUUID, name, description string) (*model.PlaylistWithVideos, error) {
	if err := s.playlistRepository.Update(ctx, playlistUUID, userUUID, name, description); err != nil {
		return nil, err
	}
	return s.playlistRepository.GetByUUID(ctx, playlistUUID)
}

func (s *PlaylistService) Delete(ctx context.Context, playlistUUID, userUUID string) error {
	return s.playlistRepository.Delete(ctx, playlistUUID, userUUID)
}

// AddVideo добавляет видео в плейлист. Менять состав может только владелец
func (s *PlaylistService) AddVideo(ctx context.Context, playlistUUID, videoUUID, userUUID string) error {
	if err := s.requireOwner(ctx, playlistUUID, userUUID); err != nil {
		return err
	}

	exists, err := s.videoRepository.Exists(ctx, videoUUID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("[PlaylistService] видео не найдено")
	}

	return s.playlistRepository.AddVideo(ctx, playlistUUID, videoUUID)
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistUUID, videoUUID, userUUID string) error {
	if err := s.requireOwner(ctx, playlistUUID, userUUID); err != nil {
		return err
	}
	return s.playlistRepository.RemoveVideo(ctx, playlistUUID, videoUUID)
}

func (s *PlaylistService) requireOwner(ctx context.Context, playlistUUID, userUUID string) error {
	isOwner, err := s.playlistRepository.IsOwner(ctx, playlistUUID, userUUID)
	if err != nil {
		return err
	}
	if !isOwner {
		return fmt.Errorf("[PlaylistService] доступ запрещён: плейлист принадлежит другому пользователю")
	}
	return nil
}
