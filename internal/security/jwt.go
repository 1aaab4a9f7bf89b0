package security

import (
	"fmt"
	"time"

	"video-hosting-server/config"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/util"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims : payload access токена.
// Денормализованные поля (email, username, full_name) — только для удобства
// клиента; для авторизации сервер доверяет исключительно UserUUID и всегда
// заново читает аккаунт из БД
type AccessClaims struct {
	UserUUID string `json:"user_uuid"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	jwt.RegisteredClaims
}

// RefreshClaims : payload refresh токена — только идентификатор аккаунта,
// чтобы в долгоживущем токене не протухали встроенные данные
type RefreshClaims struct {
	UserUUID string `json:"user_uuid"`
	jwt.RegisteredClaims
}

type JWTService struct {
	*config.JWTConfig
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{cfg}
}

// GenerateTokenPair подписывает пару токенов разными секретами
// и с разным временем жизни
func (service *JWTService) GenerateTokenPair(user *model.User) (*model.TokensPair, error) {
	accessTTL, err := time.ParseDuration(service.AccessTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка парсинга access_token_ttl", err)
	}
	refreshTTL, err := time.ParseDuration(service.RefreshTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка парсинга refresh_token_ttl", err)
	}

	now := time.Now()

	accessClaims := AccessClaims{
		UserUUID: user.UUID,
		Email:    user.Email,
		Username: user.Username,
		FullName: user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "video-hosting-server",
		},
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS512, accessClaims).
		SignedString([]byte(service.AccessSecretKey))
	if err != nil {
		return nil, util.LogError("ошибка подписи access токена", err)
	}

	refreshClaims := RefreshClaims{
		UserUUID: user.UUID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(refreshTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "video-hosting-server",
		},
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS512, refreshClaims).
		SignedString([]byte(service.RefreshSecretKey))
	if err != nil {
		return nil, util.LogError("ошибка подписи refresh токена", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ValidateAccessToken проверяет подпись и срок действия access токена
func (service *JWTService) ValidateAccessToken(tokenStr string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := service.parse(tokenStr, claims, []byte(service.AccessSecretKey)); err != nil {
		return nil, err
	}
	return claims, nil
}

// ValidateRefreshToken проверяет подпись и срок действия refresh токена
func (service *JWTService) ValidateRefreshToken(tokenStr string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := service.parse(tokenStr, claims, []byte(service.RefreshSecretKey)); err != nil {
		return nil, err
	}
	return claims, nil
}

func (service *JWTService) parse(tokenStr string, claims jwt.Claims, secretKey []byte) error {
	jwtToken, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return secretKey, nil
	})

	if err != nil || !jwtToken.Valid {
		return util.LogError("невалидный токен", err)
	}

	return nil
}
