package ports

import (
	"context"

	"video-hosting-server/internal/model"
)

type AuthenticationService interface {
	// IssueTokens подписывает пару и сохраняет refresh-токен на аккаунте,
	// перезаписывая предыдущий. Пара считается выданной только после записи
	IssueTokens(ctx context.Context, user *model.User) (*model.TokensPair, error)
	Login(ctx context.Context, username, email, password string) (*model.User, *model.TokensPair, error)
	VerifyAccess(ctx context.Context, accessToken string) (*model.User, error)
	Refresh(ctx context.Context, presentedRefreshToken string) (*model.TokensPair, error)
	Logout(ctx context.Context, userUUID string) error
	ChangePassword(ctx context.Context, userUUID, oldPassword, newPassword string) error
}
