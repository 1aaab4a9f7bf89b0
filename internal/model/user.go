package model

import (
	"database/sql"
	"time"
)

type User struct {
	UUID         string    `db:"uuid" json:"uuid"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	FullName     string    `db:"full_name" json:"full_name"`
	AvatarURL    string    `db:"avatar_url" json:"avatar_url"`
	AvatarKey    string    `db:"avatar_key" json:"-"`
	CoverURL     string    `db:"cover_url" json:"cover_url,omitempty"`
	CoverKey     string    `db:"cover_key" json:"-"`
	PasswordHash string    `db:"password_hash" json:"-"`
	// RefreshToken — единственный действующий refresh-токен аккаунта.
	// Перезапись этого поля отзывает все ранее выданные refresh-токены
	RefreshToken sql.NullString `db:"refresh_token" json:"-"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// Sanitize обнуляет поля, которые не должны покидать сервис
func (u *User) Sanitize() {
	u.PasswordHash = ""
	u.RefreshToken = sql.NullString{}
}

// ChannelProfile : профиль канала с агрегатами по подпискам
type ChannelProfile struct {
	UUID            string `db:"uuid" json:"uuid"`
	Username        string `db:"username" json:"username"`
	FullName        string `db:"full_name" json:"full_name"`
	AvatarURL       string `db:"avatar_url" json:"avatar_url"`
	CoverURL        string `db:"cover_url" json:"cover_url,omitempty"`
	SubscriberCount int    `db:"subscriber_count" json:"subscriber_count"`
	SubscribedTo    int    `db:"subscribed_to_count" json:"subscribed_to_count"`
	IsSubscribed    bool   `db:"is_subscribed" json:"is_subscribed"`
}

// WatchHistoryEntry : просмотренное видео вместе с данными владельца
type WatchHistoryEntry struct {
	VideoUUID     string    `db:"video_uuid" json:"video_uuid"`
	Title         string    `db:"title" json:"title"`
	ThumbnailURL  string    `db:"thumbnail_url" json:"thumbnail_url"`
	Duration      float64   `db:"duration" json:"duration"`
	Views         int64     `db:"views" json:"views"`
	OwnerUsername string    `db:"owner_username" json:"owner_username"`
	OwnerAvatar   string    `db:"owner_avatar" json:"owner_avatar"`
	WatchedAt     time.Time `db:"watched_at" json:"watched_at"`
}
