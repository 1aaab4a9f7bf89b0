package service

import (
	"context"

	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"
)

// DashboardService : агрегаты канала для владельца
type DashboardService struct {
	videoRepository ports.VideoRepository
}

func NewDashboardService(videoRepository ports.VideoRepository) *DashboardService {
	return &DashboardService{videoRepository: videoRepository}
}

func (s *DashboardService) GetChannelStats(ctx context.Context, ownerUUID string) (*model.ChannelStats, error) {
	return s.videoRepository.GetChannelStats(ctx, ownerUUID)
}

// GetChannelVideos : все видео канала, включая скрытые
func (s *DashboardService) GetChannelVideos(ctx context.Context, ownerUUID string, page, limit int) ([]model.Video, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.videoRepository.ListByChannel(ctx, ownerUUID, page, limit)
}
