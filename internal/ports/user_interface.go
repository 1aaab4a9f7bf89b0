package ports

import (
	"context"

	"video-hosting-server/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	FindByUUID(ctx context.Context, uuid string) (*model.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)
	Exists(ctx context.Context, uuid string) (bool, error)

	UpdateAccount(ctx context.Context, uuid, fullName, email string) (*model.User, error)
	UpdateAvatar(ctx context.Context, uuid, url, key string) error
	UpdateCoverImage(ctx context.Context, uuid, url, key string) error
	UpdatePassword(ctx context.Context, uuid, newPasswordHash string) error

	// UpdateRefreshToken безусловно перезаписывает указатель сессии —
	// так логин невидимо отзывает предыдущий refresh-токен
	UpdateRefreshToken(ctx context.Context, uuid, refreshToken string) error
	// RotateRefreshToken атомарно меняет указатель только если текущее значение
	// совпадает с presented (условный UPDATE, защита от гонки двух refresh)
	RotateRefreshToken(ctx context.Context, uuid, presented, next string) error
	ClearRefreshToken(ctx context.Context, uuid string) error

	GetChannelProfile(ctx context.Context, username, viewerUUID string) (*model.ChannelProfile, error)
	AppendWatchHistory(ctx context.Context, userUUID, videoUUID string) error
	GetWatchHistory(ctx context.Context, userUUID string, limit int) ([]model.WatchHistoryEntry, error)
}

type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	UpdateAccount(ctx context.Context, uuid, fullName, email string) (*model.User, error)
	UpdateAvatar(ctx context.Context, uuid string, file UploadedFile) (*model.User, error)
	UpdateCoverImage(ctx context.Context, uuid string, file UploadedFile) (*model.User, error)
	GetChannelProfile(ctx context.Context, username, viewerUUID string) (*model.ChannelProfile, error)
	GetWatchHistory(ctx context.Context, userUUID string, limit int) ([]model.WatchHistoryEntry, error)
}

// RegisterInput : данные регистрации вместе с загружаемыми файлами
type RegisterInput struct {
	Username   string
	Email      string
	FullName   string
	Password   string
	Avatar     UploadedFile
	CoverImage *UploadedFile
}
