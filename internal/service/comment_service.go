package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"
)

type CommentService struct {
	commentRepository ports.CommentRepository
	videoRepository   ports.VideoRepository
}

func NewCommentService(
	commentRepository ports.CommentRepository,
	videoRepository ports.VideoRepository,
) *CommentService {
	return &CommentService{
		commentRepository: commentRepository,
		videoRepository:   videoRepository,
	}
}

// Add создаёт комментарий под существующим видео
func (s *CommentService) Add(ctx context.Context, videoUUID, ownerUUID, content string) (*model.CommentWithOwner, error) {
	exists, err := s.videoRepository.Exists(ctx, videoUUID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("[CommentService] видео не найдено")
	}

	comment := &model.Comment{
		UUID:      uuid.New().String(),
		VideoUUID: videoUUID,
		OwnerUUID: ownerUUID,
		Content:   content,
	}
	if err := s.commentRepository.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepository.GetByUUID(ctx, comment.UUID, ownerUUID)
}

func (s *CommentService) ListByVideo(ctx context.Context, videoUUID, viewerUUID string, page, limit int) ([]model.CommentWithOwner, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	exists, err := s.videoRepository.Exists(ctx, videoUUID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, fmt.Errorf("[CommentService] видео не найдено")
	}

	return s.commentRepository.ListByVideo(ctx, videoUUID, viewerUUID, page, limit)
}

// Update меняет текст комментария, только владелец
func (s *CommentService) Update(ctx context.Context, commentUUID, ownerUUID, content string) (*model.CommentWithOwner, error) {
	if err := s.commentRepository.Update(ctx, commentUUID, ownerUUID, content); err != nil {
		return nil, err
	}
	return s.commentRepository.GetByUUID(ctx, commentUUID, ownerUUID)
}

func (s *CommentService) Delete(ctx context.Context, commentUUID, ownerUUID string) error {
	return s.commentRepository.Delete(ctx, commentUUID, ownerUUID)
}
