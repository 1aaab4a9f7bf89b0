package ports

import (
	"context"

	"video-hosting-server/internal/model"
)

type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) error
	GetByUUID(ctx context.Context, videoUUID string) (*model.VideoWithOwner, error)
	List(ctx context.Context, opts model.VideoListOptions) ([]model.VideoWithOwner, int64, error)
	Update(ctx context.Context, video *model.Video) error
	Delete(ctx context.Context, videoUUID string) (*model.Video, error)
	SetPublished(ctx context.Context, videoUUID string, published bool) error
	IncrementViews(ctx context.Context, videoUUID string) (int64, error)
	Exists(ctx context.Context, videoUUID string) (bool, error)
	ListByChannel(ctx context.Context, ownerUUID string, page, limit int) ([]model.Video, int64, error)
	GetChannelStats(ctx context.Context, ownerUUID string) (*model.ChannelStats, error)
}

type VideoService interface {
	Publish(ctx context.Context, ownerUUID, title, description string, duration float64, videoFile, thumbnail UploadedFile) (*model.VideoWithOwner, error)
	GetByUUID(ctx context.Context, videoUUID, viewerUUID string) (*model.VideoWithOwner, error)
	List(ctx context.Context, opts model.VideoListOptions) ([]model.VideoWithOwner, int64, error)
	Update(ctx context.Context, videoUUID, userUUID, title, description string, thumbnail *UploadedFile) (*model.VideoWithOwner, error)
	Delete(ctx context.Context, videoUUID, userUUID string) error
	TogglePublish(ctx context.Context, videoUUID, userUUID string) (bool, error)
	AddView(ctx context.Context, videoUUID string) (int64, error)
}

type DashboardService interface {
	GetChannelStats(ctx context.Context, ownerUUID string) (*model.ChannelStats, error)
	GetChannelVideos(ctx context.Context, ownerUUID string, page, limit int) ([]model.Video, int64, error)
}
