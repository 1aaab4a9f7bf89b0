package repository

import (
	"context"

	"video-hosting-server/config"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/util"
)

type SubscriptionRepository struct {
	*config.Database
}

func NewSubscriptionRepository(database *config.Database) *SubscriptionRepository {
	return &SubscriptionRepository{database}
}

// Toggle : переключает подписку на канал.
// Сначала пробуем отписаться, если строки не было — подписываемся.
// Возвращает true, если в итоге подписка оформлена
func (r *SubscriptionRepository) Toggle(ctx context.Context, subscriberUUID, channelUUID string) (bool, error) {
	deleteQuery := `DELETE FROM subscriptions WHERE subscriber_uuid = $1 AND channel_uuid = $2`
	result, err := r.DB.ExecContext(ctx, deleteQuery, subscriberUUID, channelUUID)
	if err != nil {
		return false, util.LogError("[SubscriptionRepo] не удалось отписаться от канала", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, util.LogError("[SubscriptionRepo] не удалось проверить результат отписки", err)
	}
	if rowsAffected > 0 {
		return false, nil
	}

	insertQuery := `
		INSERT INTO subscriptions (subscriber_uuid, channel_uuid, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (subscriber_uuid, channel_uuid) DO NOTHING
	`
	if _, err := r.DB.ExecContext(ctx, insertQuery, subscriberUUID, channelUUID); err != nil {
		return false, util.LogError("[SubscriptionRepo] не удалось подписаться на канал", err)
	}
	return true, nil
}

// ListSubscribers : подписчики канала постранично, новые сверху
func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, channelUUID string, page, limit int) ([]model.Subscriber, int64, error) {
	countQuery := `SELECT COUNT(*) FROM subscriptions WHERE channel_uuid = $1`
	var totalCount int64
	if err := r.DB.GetContext(ctx, &totalCount, countQuery, channelUUID); err != nil {
		return nil, 0, util.LogError("[SubscriptionRepo] не удалось посчитать подписчиков", err)
	}

	query := `
		SELECT u.uuid, u.username, u.full_name, u.avatar_url, s.created_at AS subscribed_at
		FROM subscriptions s
		JOIN users u ON u.uuid = s.subscriber_uuid
		WHERE s.channel_uuid = $1
		ORDER BY s.created_at DESC
		LIMIT $2 OFFSET $3
	`
	subscribers := []model.Subscriber{}
	offset := (page - 1) * limit
	if err := r.DB.SelectContext(ctx, &subscribers, query, channelUUID, limit, offset); err != nil {
		return nil, 0, util.LogError("[SubscriptionRepo] не удалось получить подписчиков", err)
	}
	return subscribers, totalCount, nil
}

// ListSubscribedChannels : каналы, на которые подписан пользователь
func (r *SubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberUUID string) ([]model.SubscribedChannel, error) {
	query := `
		SELECT u.uuid, u.username, u.full_name, u.avatar_url,
		       (SELECT COUNT(*) FROM subscriptions sc WHERE sc.channel_uuid = u.uuid) AS subscriber_count
		FROM subscriptions s
		JOIN users u ON u.uuid = s.channel_uuid
		WHERE s.subscriber_uuid = $1
		ORDER BY s.created_at DESC
	`
	channels := []model.SubscribedChannel{}
	if err := r.DB.SelectContext(ctx, &channels, query, subscriberUUID); err != nil {
		return nil, util.LogError("[SubscriptionRepo] не удалось получить подписки", err)
	}
	return channels, nil
}
