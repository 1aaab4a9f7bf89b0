package model

import "time"

// TargetKind перечисляет сущности, к которым может относиться лайк
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

// Like : одна запись на пару (пользователь, цель)
type Like struct {
	UUID       string     `db:"uuid" json:"uuid"`
	UserUUID   string     `db:"user_uuid" json:"user_uuid"`
	TargetKind TargetKind `db:"target_kind" json:"target_kind"`
	TargetUUID string     `db:"target_uuid" json:"target_uuid"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// LikedVideo : лайкнутое видео с данными владельца
type LikedVideo struct {
	VideoUUID     string    `db:"video_uuid" json:"video_uuid"`
	Title         string    `db:"title" json:"title"`
	ThumbnailURL  string    `db:"thumbnail_url" json:"thumbnail_url"`
	Duration      float64   `db:"duration" json:"duration"`
	Views         int64     `db:"views" json:"views"`
	OwnerUsername string    `db:"owner_username" json:"owner_username"`
	OwnerAvatar   string    `db:"owner_avatar" json:"owner_avatar"`
	LikedAt       time.Time `db:"liked_at" json:"liked_at"`
}
