package ports

import (
	"context"

	"video-hosting-server/internal/model"
)

// CacheRepository : Redis слой для горячих read-путей
type CacheRepository interface {
	GetVideo(ctx context.Context, uuid string) (*model.VideoWithOwner, error)
	SetVideo(ctx context.Context, video *model.VideoWithOwner) error
	DeleteVideo(ctx context.Context, uuid string) error

	GetChannelProfile(ctx context.Context, username, viewerUUID string) (*model.ChannelProfile, error)
	SetChannelProfile(ctx context.Context, username, viewerUUID string, profile *model.ChannelProfile) error
	DeleteChannelProfile(ctx context.Context, username string) error
}
