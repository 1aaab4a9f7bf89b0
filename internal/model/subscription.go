package model

import "time"

// Subscription : подписка пользователя subscriber на канал channel
type Subscription struct {
	SubscriberUUID string    `db:"subscriber_uuid" json:"subscriber_uuid"`
	ChannelUUID    string    `db:"channel_uuid" json:"channel_uuid"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Subscriber : подписчик канала для выдачи списка
type Subscriber struct {
	Username     string    `db:"username" json:"username"`
	AvatarURL    string    `db:"avatar_url" json:"avatar_url"`
	SubscribedAt time.Time `db:"subscribed_at" json:"subscribed_at"`
}

// SubscribedChannel : канал, на который подписан пользователь
type SubscribedChannel struct {
	ChannelUUID string `db:"channel_uuid" json:"channel_uuid"`
	Username    string `db:"username" json:"username"`
	AvatarURL   string `db:"avatar_url" json:"avatar_url"`
}

// ChannelStats : агрегаты для дашборда канала
type ChannelStats struct {
	TotalVideos      int64 `db:"total_videos" json:"total_videos"`
	TotalViews       int64 `db:"total_views" json:"total_views"`
	TotalSubscribers int64 `db:"total_subscribers" json:"total_subscribers"`
	TotalLikes       int64 `db:"total_likes" json:"total_likes"`
}
