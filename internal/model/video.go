package model

import "time"

type Video struct {
	UUID         string    `db:"uuid" json:"uuid"`
	OwnerUUID    string    `db:"owner_uuid" json:"owner_uuid"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	VideoURL     string    `db:"video_url" json:"video_url"`
	VideoKey     string    `db:"video_key" json:"-"`
	ThumbnailURL string    `db:"thumbnail_url" json:"thumbnail_url"`
	ThumbnailKey string    `db:"thumbnail_key" json:"-"`
	Duration     float64   `db:"duration" json:"duration"`
	Views        int64     `db:"views" json:"views"`
	IsPublished  bool      `db:"is_published" json:"is_published"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// VideoWithOwner : видео, дополненное данными владельца для выдачи
type VideoWithOwner struct {
	Video
	OwnerUsername string `db:"owner_username" json:"owner_username"`
	OwnerAvatar   string `db:"owner_avatar" json:"owner_avatar"`
}

// VideoListOptions : параметры выборки списка видео
type VideoListOptions struct {
	Query     string
	OwnerUUID string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}
