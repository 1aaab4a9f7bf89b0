package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"video-hosting-server/internal/model"
	"video-hosting-server/internal/repository"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/service"
)

// ===== MOCKS =====

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	args := m.Called(ctx, uuid)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	args := m.Called(ctx, username, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, uuid string) (bool, error) {
	args := m.Called(ctx, uuid)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateAccount(ctx context.Context, uuid, fullName, email string) (*model.User, error) {
	args := m.Called(ctx, uuid, fullName, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, uuid, url, key string) error {
	args := m.Called(ctx, uuid, url, key)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateCoverImage(ctx context.Context, uuid, url, key string) error {
	args := m.Called(ctx, uuid, url, key)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, uuid, newPasswordHash string) error {
	args := m.Called(ctx, uuid, newPasswordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, uuid, refreshToken string) error {
	args := m.Called(ctx, uuid, refreshToken)
	return args.Error(0)
}

func (m *MockUserRepository) RotateRefreshToken(ctx context.Context, uuid, presented, next string) error {
	args := m.Called(ctx, uuid, presented, next)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

func (m *MockUserRepository) GetChannelProfile(ctx context.Context, username, viewerUUID string) (*model.ChannelProfile, error) {
	args := m.Called(ctx, username, viewerUUID)
	if p, ok := args.Get(0).(*model.ChannelProfile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) AppendWatchHistory(ctx context.Context, userUUID, videoUUID string) error {
	args := m.Called(ctx, userUUID, videoUUID)
	return args.Error(0)
}

func (m *MockUserRepository) GetWatchHistory(ctx context.Context, userUUID string, limit int) ([]model.WatchHistoryEntry, error) {
	args := m.Called(ctx, userUUID, limit)
	if h, ok := args.Get(0).([]model.WatchHistoryEntry); ok {
		return h, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockJWTService
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateTokenPair(user *model.User) (*model.TokensPair, error) {
	args := m.Called(user)
	if t, ok := args.Get(0).(*model.TokensPair); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) ValidateAccessToken(tokenStr string) (*security.AccessClaims, error) {
	args := m.Called(tokenStr)
	if c, ok := args.Get(0).(*security.AccessClaims); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) ValidateRefreshToken(tokenStr string) (*security.RefreshClaims, error) {
	args := m.Called(tokenStr)
	if c, ok := args.Get(0).(*security.RefreshClaims); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// ===== HELPERS =====

func newTestAuthService() (*service.AuthenticationService, *MockUserRepository, *MockJWTService) {
	mockUserRepo := new(MockUserRepository)
	mockJWTService := new(MockJWTService)

	svc := service.NewAuthenticationService(mockJWTService, mockUserRepo)

	return svc, mockUserRepo, mockJWTService
}

func testUser(password string) *model.User {
	hash, _ := security.HashPassword(password)
	return &model.User{
		UUID:         "u1",
		Username:     "user1",
		Email:        "user1@example.com",
		PasswordHash: hash,
	}
}

// ===== TESTS =====

// 1. Пара не выдана, если refresh-токен не записался в БД
func TestIssueTokens_SaveError(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	user := testUser("goodpass")
	tokens := &model.TokensPair{AccessToken: "acc", RefreshToken: "ref"}

	mockJWTService.On("GenerateTokenPair", user).Return(tokens, nil)
	mockUserRepo.On("UpdateRefreshToken", ctx, "u1", "ref").
		Return(errors.New("db error"))

	result, err := svc.IssueTokens(ctx, user)

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ошибка сохранения refresh токена")
	mockUserRepo.AssertExpectations(t)
}

// 2. Успешная выдача: refresh-токен сохраняется на аккаунте
func TestIssueTokens_Success(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	user := testUser("goodpass")
	tokens := &model.TokensPair{AccessToken: "acc", RefreshToken: "ref"}

	mockJWTService.On("GenerateTokenPair", user).Return(tokens, nil)
	mockUserRepo.On("UpdateRefreshToken", ctx, "u1", "ref").Return(nil)

	result, err := svc.IssueTokens(ctx, user)

	assert.NoError(t, err)
	assert.Equal(t, tokens, result)
	mockUserRepo.AssertExpectations(t)
	mockJWTService.AssertExpectations(t)
}

// 3. Логин: пользователь не найден
func TestLogin_UserNotFound(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByUsernameOrEmail", ctx, "user1", "").
		Return(nil, errors.New("not found"))

	_, _, err := svc.Login(ctx, "user1", "", "pass")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "пользователь не найден")
	mockUserRepo.AssertExpectations(t)
}

// 4. Логин: неверный пароль
func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByUsernameOrEmail", ctx, "user1", "").
		Return(testUser("goodpass"), nil)

	_, _, err := svc.Login(ctx, "user1", "", "badpass")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "неверный пароль")
	mockUserRepo.AssertExpectations(t)
}

// 5. Логин: идентификаторы приводятся к нижнему регистру
func TestLogin_Success(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	user := testUser("goodpass")
	tokens := &model.TokensPair{AccessToken: "acc", RefreshToken: "ref"}

	mockUserRepo.On("FindByUsernameOrEmail", ctx, "user1", "").
		Return(user, nil)
	mockJWTService.On("GenerateTokenPair", user).Return(tokens, nil)
	mockUserRepo.On("UpdateRefreshToken", ctx, "u1", "ref").Return(nil)

	loggedIn, result, err := svc.Login(ctx, "USER1", "", "goodpass")

	assert.NoError(t, err)
	assert.Equal(t, tokens, result)
	assert.Empty(t, loggedIn.PasswordHash)
	assert.False(t, loggedIn.RefreshToken.Valid)
	mockUserRepo.AssertExpectations(t)
}

// 6. VerifyAccess: невалидный токен — всегда один и тот же отказ
func TestVerifyAccess_InvalidToken(t *testing.T) {
	svc, _, mockJWTService := newTestAuthService()

	mockJWTService.On("ValidateAccessToken", "badtoken").
		Return(nil, errors.New("invalid"))

	user, err := svc.VerifyAccess(context.Background(), "badtoken")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

// 7. VerifyAccess: токен удалённого аккаунта бесполезен,
// аккаунт перечитывается из БД при каждой проверке
func TestVerifyAccess_AccountGone(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	claims := &security.AccessClaims{UserUUID: "u1"}
	mockJWTService.On("ValidateAccessToken", "token").Return(claims, nil)
	mockUserRepo.On("FindByUUID", ctx, "u1").
		Return(nil, errors.New("not found"))

	user, err := svc.VerifyAccess(ctx, "token")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, service.ErrUnauthorized)
	mockUserRepo.AssertExpectations(t)
}

// 8. VerifyAccess: успех, чувствительные поля стёрты
func TestVerifyAccess_Success(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	claims := &security.AccessClaims{UserUUID: "u1"}
	mockJWTService.On("ValidateAccessToken", "token").Return(claims, nil)
	mockUserRepo.On("FindByUUID", ctx, "u1").Return(testUser("goodpass"), nil)

	user, err := svc.VerifyAccess(ctx, "token")

	assert.NoError(t, err)
	assert.Equal(t, "u1", user.UUID)
	assert.Empty(t, user.PasswordHash)
}

// 9. Refresh: невалидная подпись
func TestRefresh_InvalidToken(t *testing.T) {
	svc, _, mockJWTService := newTestAuthService()

	mockJWTService.On("ValidateRefreshToken", "badtoken").
		Return(nil, errors.New("invalid"))

	tokens, err := svc.Refresh(context.Background(), "badtoken")

	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

// 10. Refresh: предъявленный токен не совпал с сохранённым —
// ротация после логина с другого устройства или повтор старого токена
func TestRefresh_RotatedOut(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	user := testUser("goodpass")
	claims := &security.RefreshClaims{UserUUID: "u1"}
	newTokens := &model.TokensPair{AccessToken: "acc2", RefreshToken: "ref2"}

	mockJWTService.On("ValidateRefreshToken", "stale").Return(claims, nil)
	mockUserRepo.On("FindByUUID", ctx, "u1").Return(user, nil)
	mockJWTService.On("GenerateTokenPair", user).Return(newTokens, nil)
	mockUserRepo.On("RotateRefreshToken", ctx, "u1", "stale", "ref2").
		Return(fmt.Errorf("[UserRepo] %w", repository.ErrRefreshTokenMismatch))

	tokens, err := svc.Refresh(ctx, "stale")

	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, service.ErrUnauthorized)
	mockUserRepo.AssertExpectations(t)
}

// 11. Refresh: из двух конкурентных запросов выигрывает ровно один.
// Репозиторий делает условный UPDATE, поэтому второй запрос с тем же
// токеном получает mismatch
func TestRefresh_ConcurrentSingleWinner(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	user := testUser("goodpass")
	claims := &security.RefreshClaims{UserUUID: "u1"}
	winnerTokens := &model.TokensPair{AccessToken: "accW", RefreshToken: "refW"}

	mockJWTService.On("ValidateRefreshToken", "ref").Return(claims, nil)
	mockUserRepo.On("FindByUUID", ctx, "u1").Return(user, nil)
	mockJWTService.On("GenerateTokenPair", user).Return(winnerTokens, nil)

	// первый запрос успевает, второй натыкается на уже изменённый указатель
	mockUserRepo.On("RotateRefreshToken", ctx, "u1", "ref", "refW").
		Return(nil).Once()
	mockUserRepo.On("RotateRefreshToken", ctx, "u1", "ref", "refW").
		Return(fmt.Errorf("[UserRepo] %w", repository.ErrRefreshTokenMismatch)).Once()

	first, err1 := svc.Refresh(ctx, "ref")
	second, err2 := svc.Refresh(ctx, "ref")

	assert.NoError(t, err1)
	assert.Equal(t, winnerTokens, first)
	assert.Nil(t, second)
	assert.ErrorIs(t, err2, service.ErrUnauthorized)
	mockUserRepo.AssertExpectations(t)
}

// 12. Refresh: успешная ротация возвращает новую пару
func TestRefresh_Success(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	user := testUser("goodpass")
	claims := &security.RefreshClaims{UserUUID: "u1"}
	newTokens := &model.TokensPair{AccessToken: "acc2", RefreshToken: "ref2"}

	mockJWTService.On("ValidateRefreshToken", "ref1").Return(claims, nil)
	mockUserRepo.On("FindByUUID", ctx, "u1").Return(user, nil)
	mockJWTService.On("GenerateTokenPair", user).Return(newTokens, nil)
	mockUserRepo.On("RotateRefreshToken", ctx, "u1", "ref1", "ref2").Return(nil)

	tokens, err := svc.Refresh(ctx, "ref1")

	assert.NoError(t, err)
	assert.Equal(t, newTokens, tokens)
	mockUserRepo.AssertExpectations(t)
	mockJWTService.AssertExpectations(t)
}

// 13. Logout стирает указатель сессии
func TestLogout(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("ClearRefreshToken", ctx, "u1").Return(nil)

	err := svc.Logout(ctx, "u1")

	assert.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}

// 14. Смена пароля: старый пароль не подошёл
func TestChangePassword_WrongOldPassword(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByUUID", ctx, "u1").Return(testUser("goodpass"), nil)

	err := svc.ChangePassword(ctx, "u1", "badpass", "newpass123")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "неверный пароль")
	mockUserRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

// 15. Смена пароля не трогает refresh-токен: сессия живёт дальше
func TestChangePassword_SessionSurvives(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByUUID", ctx, "u1").Return(testUser("goodpass"), nil)
	mockUserRepo.On("UpdatePassword", ctx, "u1", mock.AnythingOfType("string")).Return(nil)

	err := svc.ChangePassword(ctx, "u1", "goodpass", "newpass123")

	assert.NoError(t, err)
	mockUserRepo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
	mockUserRepo.AssertNotCalled(t, "ClearRefreshToken", mock.Anything, mock.Anything)
	mockUserRepo.AssertNotCalled(t, "RotateRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockUserRepo.AssertExpectations(t)
}
