package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"video-hosting-server/config"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/security"
)

func newTestJWTService(accessTTL, refreshTTL string) *security.JWTService {
	return security.NewJWTService(&config.JWTConfig{
		AccessSecretKey:  "access-secret",
		RefreshSecretKey: "refresh-secret",
		AccessTokenTTL:   accessTTL,
		RefreshTokenTTL:  refreshTTL,
	})
}

func tokenUser() *model.User {
	return &model.User{
		UUID:     "u1",
		Username: "user1",
		Email:    "user1@example.com",
		FullName: "User One",
	}
}

// 1. Выданная пара проходит проверку, claims совпадают с аккаунтом
func TestGenerateTokenPair_RoundTrip(t *testing.T) {
	svc := newTestJWTService("15m", "240h")

	tokens, err := svc.GenerateTokenPair(tokenUser())
	assert.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	accessClaims, err := svc.ValidateAccessToken(tokens.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "u1", accessClaims.UserUUID)
	assert.Equal(t, "user1", accessClaims.Username)
	assert.Equal(t, "user1@example.com", accessClaims.Email)

	refreshClaims, err := svc.ValidateRefreshToken(tokens.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, "u1", refreshClaims.UserUUID)
}

// 2. Просроченный access токен отклоняется
func TestValidateAccessToken_Expired(t *testing.T) {
	svc := newTestJWTService("-1s", "240h")

	tokens, err := svc.GenerateTokenPair(tokenUser())
	assert.NoError(t, err)

	claims, err := svc.ValidateAccessToken(tokens.AccessToken)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

// 3. Секреты access и refresh токенов не взаимозаменяемы
func TestTokens_SeparateSecrets(t *testing.T) {
	svc := newTestJWTService("15m", "240h")

	tokens, err := svc.GenerateTokenPair(tokenUser())
	assert.NoError(t, err)

	_, err = svc.ValidateAccessToken(tokens.RefreshToken)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(tokens.AccessToken)
	assert.Error(t, err)
}

// 4. Токен, подписанный другим секретом, отклоняется
func TestValidateAccessToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService("15m", "240h")
	other := security.NewJWTService(&config.JWTConfig{
		AccessSecretKey:  "other-secret",
		RefreshSecretKey: "other-refresh",
		AccessTokenTTL:   "15m",
		RefreshTokenTTL:  "240h",
	})

	tokens, err := other.GenerateTokenPair(tokenUser())
	assert.NoError(t, err)

	claims, err := svc.ValidateAccessToken(tokens.AccessToken)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

// 5. Повреждённый токен отклоняется
func TestValidateAccessToken_Tampered(t *testing.T) {
	svc := newTestJWTService("15m", "240h")

	tokens, err := svc.GenerateTokenPair(tokenUser())
	assert.NoError(t, err)

	tampered := tokens.AccessToken + "x"
	claims, err := svc.ValidateAccessToken(tampered)
	assert.Nil(t, claims)
	assert.Error(t, err)
}
