package model

import "time"

type Tweet struct {
	UUID      string    `db:"uuid" json:"uuid"`
	OwnerUUID string    `db:"owner_uuid" json:"owner_uuid"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TweetWithOwner : твит с данными автора и счётчиком лайков
type TweetWithOwner struct {
	Tweet
	OwnerUsername string `db:"owner_username" json:"owner_username"`
	OwnerFullName string `db:"owner_full_name" json:"owner_full_name"`
	OwnerAvatar   string `db:"owner_avatar" json:"owner_avatar"`
	LikesCount    int    `db:"likes_count" json:"likes_count"`
	IsLiked       bool   `db:"is_liked" json:"is_liked"`
}
