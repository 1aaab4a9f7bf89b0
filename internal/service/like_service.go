package service

import (
	"context"
	"fmt"

	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"
)

const (
	LikeActionLiked   = "liked"
	LikeActionUnliked = "unliked"
)

type LikeService struct {
	likeRepository    ports.LikeRepository
	videoRepository   ports.VideoRepository
	commentRepository ports.CommentRepository
	tweetRepository   ports.TweetRepository
}

func NewLikeService(
	likeRepository ports.LikeRepository,
	videoRepository ports.VideoRepository,
	commentRepository ports.CommentRepository,
	tweetRepository ports.TweetRepository,
) *LikeService {
	return &LikeService{
		likeRepository:    likeRepository,
		videoRepository:   videoRepository,
		commentRepository: commentRepository,
		tweetRepository:   tweetRepository,
	}
}

func (s *LikeService) ToggleVideoLike(ctx context.Context, userUUID, videoUUID string) (string, error) {
	exists, err := s.videoRepository.Exists(ctx, videoUUID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("[LikeService] видео не найдено")
	}
	return s.toggle(ctx, userUUID, model.TargetVideo, videoUUID)
}

func (s *LikeService) ToggleCommentLike(ctx context.Context, userUUID, commentUUID string) (string, error) {
	exists, err := s.commentRepository.Exists(ctx, commentUUID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("[LikeService] комментарий не найден")
	}
	return s.toggle(ctx, userUUID, model.TargetComment, commentUUID)
}

func (s *LikeService) ToggleTweetLike(ctx context.Context, userUUID, tweetUUID string) (string, error) {
	exists, err := s.tweetRepository.Exists(ctx, tweetUUID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("[LikeService] твит не найден")
	}
	return s.toggle(ctx, userUUID, model.TargetTweet, tweetUUID)
}

func (s *LikeService) GetLikedVideos(ctx context.Context, userUUID string) ([]model.LikedVideo, error) {
	return s.likeRepository.ListLikedVideos(ctx, userUUID)
}

func (s *LikeService) CountLikes(ctx context.Context, kind model.TargetKind, targetUUID string) (int64, error) {
	return s.likeRepository.Count(ctx, kind, targetUUID)
}

func (s *LikeService) toggle(ctx context.Context, userUUID string, kind model.TargetKind, targetUUID string) (string, error) {
	liked, err := s.likeRepository.Toggle(ctx, userUUID, kind, targetUUID)
	if err != nil {
		return "", err
	}
	if liked {
		return LikeActionLiked, nil
	}
	return LikeActionUnliked, nil
}
