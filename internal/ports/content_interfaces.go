package ports

import (
	"context"

	"video-hosting-server/internal/model"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByUUID(ctx context.Context, commentUUID, viewerUUID string) (*model.CommentWithOwner, error)
	ListByVideo(ctx context.Context, videoUUID, viewerUUID string, page, limit int) ([]model.CommentWithOwner, int64, error)
	Update(ctx context.Context, commentUUID, ownerUUID, content string) error
	Delete(ctx context.Context, commentUUID, ownerUUID string) error
	Exists(ctx context.Context, commentUUID string) (bool, error)
}

type CommentService interface {
	Add(ctx context.Context, videoUUID, ownerUUID, content string) (*model.CommentWithOwner, error)
	ListByVideo(ctx context.Context, videoUUID, viewerUUID string, page, limit int) ([]model.CommentWithOwner, int64, error)
	Update(ctx context.Context, commentUUID, ownerUUID, content string) (*model.CommentWithOwner, error)
	Delete(ctx context.Context, commentUUID, ownerUUID string) error
}

type LikeRepository interface {
	Toggle(ctx context.Context, userUUID string, kind model.TargetKind, targetUUID string) (bool, error)
	Count(ctx context.Context, kind model.TargetKind, targetUUID string) (int64, error)
	ListLikedVideos(ctx context.Context, userUUID string) ([]model.LikedVideo, error)
}

type LikeService interface {
	ToggleVideoLike(ctx context.Context, userUUID, videoUUID string) (string, error)
	ToggleCommentLike(ctx context.Context, userUUID, commentUUID string) (string, error)
	ToggleTweetLike(ctx context.Context, userUUID, tweetUUID string) (string, error)
	GetLikedVideos(ctx context.Context, userUUID string) ([]model.LikedVideo, error)
	CountLikes(ctx context.Context, kind model.TargetKind, targetUUID string) (int64, error)
}

type TweetRepository interface {
	Create(ctx context.Context, tweet *model.Tweet) error
	GetByUUID(ctx context.Context, tweetUUID, viewerUUID string) (*model.TweetWithOwner, error)
	ListByOwner(ctx context.Context, ownerUUID, viewerUUID string, page, limit int) ([]model.TweetWithOwner, int64, error)
	Update(ctx context.Context, tweetUUID, ownerUUID, content string) error
	Delete(ctx context.Context, tweetUUID, ownerUUID string) error
	Exists(ctx context.Context, tweetUUID string) (bool, error)
}

type TweetService interface {
	Create(ctx context.Context, ownerUUID, content string) (*model.TweetWithOwner, error)
	ListByOwner(ctx context.Context, ownerUUID, viewerUUID string, page, limit int) ([]model.TweetWithOwner, int64, error)
	Update(ctx context.Context, tweetUUID, ownerUUID, content string) (*model.TweetWithOwner, error)
	Delete(ctx context.Context, tweetUUID, ownerUUID string) error
}

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *model.Playlist) error
	GetByUUID(ctx context.Context, playlistUUID string) (*model.PlaylistWithVideos, error)
	ListByOwner(ctx context.Context, ownerUUID string) ([]model.Playlist, error)
	Update(ctx context.Context, playlistUUID, ownerUUID, name, description string) error
	Delete(ctx context.Context, playlistUUID, ownerUUID string) error
	AddVideo(ctx context.Context, playlistUUID, videoUUID string) error
	RemoveVideo(ctx context.Context, playlistUUID, videoUUID string) error
	IsOwner(ctx context.Context, playlistUUID, userUUID string) (bool, error)
}

type PlaylistService interface {
	Create(ctx context.Context, ownerUUID, name, description string) (*model.Playlist, error)
	GetByUUID(ctx context.Context, playlistUUID string) (*model.PlaylistWithVideos, error)
	ListByOwner(ctx context.Context, ownerUUID string) ([]model.Playlist, error)
	Update(ctx context.Context, playlistUUID, userUUID, name, description string) (*model.PlaylistWithVideos, error)
	Delete(ctx context.Context, playlistUUID, userUUID string) error
	AddVideo(ctx context.Context, playlistUUID, videoUUID, userUUID string) error
	RemoveVideo(ctx context.Context, playlistUUID, videoUUID, userUUID string) error
}

type SubscriptionRepository interface {
	Toggle(ctx context.Context, subscriberUUID, channelUUID string) (bool, error)
	ListSubscribers(ctx context.Context, channelUUID string, page, limit int) ([]model.Subscriber, int64, error)
	ListSubscribedChannels(ctx context.Context, subscriberUUID string) ([]model.SubscribedChannel, error)
}

type SubscriptionService interface {
	Toggle(ctx context.Context, subscriberUUID, channelUUID string) (string, error)
	GetChannelSubscribers(ctx context.Context, channelUUID string, page, limit int) ([]model.Subscriber, int64, error)
	GetSubscribedChannels(ctx context.Context, subscriberUUID string) ([]model.SubscribedChannel, error)
}
