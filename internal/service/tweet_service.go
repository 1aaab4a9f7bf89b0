package service

import (
	"context"

	"github.com/google/uuid"

	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"
)

type TweetService struct {
	tweetRepository ports.TweetRepository
}

func NewTweetService(tweetRepository ports.TweetRepository) *TweetService {
	return &TweetService{tweetRepository: tweetRepository}
}

func (s *TweetService) Create(ctx context.Context, ownerUUID, content string) (*model.TweetWithOwner, error) {
	tweet := &model.Tweet{
		UUID:      uuid.New().String(),
		OwnerUUID: ownerUUID,
		Content:   content,
	}
	if err := s.tweetRepository.Create(ctx, tweet); err != nil {
		return nil, err
	}
	return s.tweetRepository.GetByUUID(ctx, tweet.UUID, ownerUUID)
}

func (s *TweetService) ListByOwner(ctx context.Context, ownerUUID, viewerUUID string, page, limit int) ([]model.TweetWithOwner, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.tweetRepository.ListByOwner(ctx, ownerUUID, viewerUUID, page, limit)
}

func (s *TweetService) Update(ctx context.Context, tweetUUID, ownerUUID, content string) (*model.TweetWithOwner, error) {
	if err := s.tweetRepository.Update(ctx, tweetUUID, ownerUUID, content); err != nil {
		return nil, err
	}
	return s.tweetRepository.GetByUUID(ctx, tweetUUID, ownerUUID)
}

func (s *TweetService) Delete(ctx context.Context, tweetUUID, ownerUUID string) error {
	return s.tweetRepository.Delete(ctx, tweetUUID, ownerUUID)
}
