package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"video-hosting-server/config"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/util"
)

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetVideo(ctx context.Context, video *model.VideoWithOwner) error {
	data, err := json.Marshal(video)
	if err != nil {
		return util.LogError("ошибка сериализации видео", err)
	}

	cmd := r.client.Client.Set(ctx, r.videoKey(video.UUID), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

func (r *CacheRepository) GetVideo(ctx context.Context, uuid string) (*model.VideoWithOwner, error) {
	val, err := r.client.Client.Get(ctx, r.videoKey(uuid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения видео из Redis", err)
	}

	var video model.VideoWithOwner
	if err := json.Unmarshal([]byte(val), &video); err != nil {
		return nil, util.LogError("ошибка десериализации видео из кэша", err)
	}
	return &video, nil
}

func (r *CacheRepository) DeleteVideo(ctx context.Context, uuid string) error {
	if err := r.client.Client.Del(ctx, r.videoKey(uuid)).Err(); err != nil {
		return util.LogError("ошибка удаления видео из Redis", err)
	}
	return nil
}

func (r *CacheRepository) SetChannelProfile(ctx context.Context, username, viewerUUID string, profile *model.ChannelProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return util.LogError("ошибка сериализации профиля канала", err)
	}

	cmd := r.client.Client.Set(ctx, r.channelKey(username, viewerUUID), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

func (r *CacheRepository) GetChannelProfile(ctx context.Context, username, viewerUUID string) (*model.ChannelProfile, error) {
	val, err := r.client.Client.Get(ctx, r.channelKey(username, viewerUUID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения профиля канала из Redis", err)
	}

	var profile model.ChannelProfile
	if err := json.Unmarshal([]byte(val), &profile); err != nil {
		return nil, util.LogError("ошибка десериализации профиля канала из кэша", err)
	}
	return &profile, nil
}

// DeleteChannelProfile : профиль закэширован отдельно для каждого зрителя
// (флаг is_subscribed), поэтому инвалидируем все ключи канала через SCAN
func (r *CacheRepository) DeleteChannelProfile(ctx context.Context, username string) error {
	pattern := fmt.Sprintf("channel:%s:*", username)
	iter := r.client.Client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return util.LogError("ошибка удаления профиля канала из Redis", err)
		}
	}
	if err := iter.Err(); err != nil {
		return util.LogError("ошибка обхода ключей Redis", err)
	}
	return nil
}

func (r *CacheRepository) videoKey(uuid string) string {
	return fmt.Sprintf("video:%s", uuid)
}

func (r *CacheRepository) channelKey(username, viewerUUID string) string {
	if viewerUUID == "" {
		viewerUUID = "anonymous"
	}
	return fmt.Sprintf("channel:%s:%s", username, viewerUUID)
}
