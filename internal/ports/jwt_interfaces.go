package ports

import (
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/security"
)

type JWTServiceInterface interface {
	GenerateTokenPair(user *model.User) (*model.TokensPair, error)
	ValidateAccessToken(tokenStr string) (*security.AccessClaims, error)
	ValidateRefreshToken(tokenStr string) (*security.RefreshClaims, error)
}
