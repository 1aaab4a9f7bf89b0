package service

import (
	"context"
	"fmt"

	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/util"
)

const (
	SubscriptionActionSubscribed   = "subscribed"
	SubscriptionActionUnsubscribed = "unsubscribed"
)

type SubscriptionService struct {
	subscriptionRepository ports.SubscriptionRepository
	userRepository         ports.UserRepository
	cache                  ports.CacheRepository
}

func NewSubscriptionService(
	subscriptionRepository ports.SubscriptionRepository,
	userRepository ports.UserRepository,
	cache ports.CacheRepository,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
		cache:                  cache,
	}
}

// Toggle переключает подписку. Подписка на себя запрещена
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberUUID, channelUUID string) (string, error) {
	if subscriberUUID == channelUUID {
		return "", fmt.Errorf("[SubscriptionService] нельзя подписаться на самого себя")
	}

	channel, err := s.userRepository.FindByUUID(ctx, channelUUID)
	if err != nil {
		return "", fmt.Errorf("[SubscriptionService] канал не найден")
	}

	subscribed, err := s.subscriptionRepository.Toggle(ctx, subscriberUUID, channelUUID)
	if err != nil {
		return "", err
	}

	// счётчик подписчиков в профиле изменился
	if err := s.cache.DeleteChannelProfile(ctx, channel.Username); err != nil {
		util.Logger().Warnf("ошибка инвалидации кэша канала %s: %v", channel.Username, err)
	}

	if subscribed {
		return SubscriptionActionSubscribed, nil
	}
	return SubscriptionActionUnsubscribed, nil
}

func (s *SubscriptionService) GetChannelSubscribers(ctx context.Context, channelUUID string, page, limit int) ([]model.Subscriber, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.subscriptionRepository.ListSubscribers(ctx, channelUUID, page, limit)
}

func (s *SubscriptionService) GetSubscribedChannels(ctx context.Context, subscriberUUID string) ([]model.SubscribedChannel, error) {
	return s.subscriptionRepository.ListSubscribedChannels(ctx, subscriberUUID)
}
