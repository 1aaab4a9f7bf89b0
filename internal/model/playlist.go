package model

import "time"

type Playlist struct {
	UUID        string    `db:"uuid" json:"uuid"`
	OwnerUUID   string    `db:"owner_uuid" json:"owner_uuid"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// PlaylistVideo : сокращённая карточка видео внутри плейлиста
type PlaylistVideo struct {
	VideoUUID    string  `db:"video_uuid" json:"video_uuid"`
	Title        string  `db:"title" json:"title"`
	ThumbnailURL string  `db:"thumbnail_url" json:"thumbnail_url"`
	Duration     float64 `db:"duration" json:"duration"`
}

// PlaylistWithVideos : плейлист вместе с содержимым и данными владельца
type PlaylistWithVideos struct {
	Playlist
	OwnerUsername string          `json:"owner_username"`
	OwnerAvatar   string          `json:"owner_avatar"`
	Videos        []PlaylistVideo `json:"videos"`
}
