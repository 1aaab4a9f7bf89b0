package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"video-hosting-server/internal/model"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/repository"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/util"
)

// ErrUnauthorized : единый ответ на любой отказ проверки токенов.
// Наружу не уходит причина (подпись, срок, отозванный токен, удалённый
// аккаунт) — злоумышленнику незачем знать, что именно не сошлось
var ErrUnauthorized = errors.New("не авторизован")

type AuthenticationService struct {
	jwtServiceInterface ports.JWTServiceInterface
	userRepository      ports.UserRepository
}

func NewAuthenticationService(
	service ports.JWTServiceInterface,
	userInterface ports.UserRepository,
) *AuthenticationService {
	return &AuthenticationService{
		service,
		userInterface,
	}
}

// IssueTokens подписывает новую пару токенов и сохраняет refresh-токен
// на аккаунте. На аккаунте живёт ровно один refresh-токен: запись
// перезаписывает предыдущий, молча отзывая старую сессию.
// Если запись в БД не удалась, пара не считается выданной
func (s *AuthenticationService) IssueTokens(ctx context.Context, user *model.User) (*model.TokensPair, error) {
	tokens, err := s.jwtServiceInterface.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации токенов: %w", err)
	}

	if err := s.userRepository.UpdateRefreshToken(ctx, user.UUID, tokens.RefreshToken); err != nil {
		return nil, fmt.Errorf("ошибка сохранения refresh токена: %w", err)
	}

	return tokens, nil
}

// Login проверяет учётные данные и выдаёт новую пару токенов.
// Достаточно одного из идентификаторов: username или email
func (s *AuthenticationService) Login(ctx context.Context, username, email, password string) (*model.User, *model.TokensPair, error) {
	if username == "" && email == "" {
		return nil, nil, fmt.Errorf("требуется username или email")
	}

	user, err := s.userRepository.FindByUsernameOrEmail(ctx,
		strings.ToLower(username), strings.ToLower(email))
	if err != nil {
		return nil, nil, fmt.Errorf("пользователь не найден: %w", err)
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, nil, fmt.Errorf("неверный пароль")
	}

	tokens, err := s.IssueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	user.Sanitize()
	return user, tokens, nil
}

// VerifyAccess проверяет access токен и возвращает живой аккаунт.
// Claims токена — не источник истины: аккаунт всегда перечитывается
// из БД, поэтому токен удалённого пользователя бесполезен даже до
// истечения срока
func (s *AuthenticationService) VerifyAccess(ctx context.Context, accessToken string) (*model.User, error) {
	claims, err := s.jwtServiceInterface.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.userRepository.FindByUUID(ctx, claims.UserUUID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user.Sanitize()
	return user, nil
}

// Refresh выполняет ротацию пары токенов.
// Предъявленный refresh-токен должен быть байт-в-байт равен сохранённому
// на аккаунте; сравнение и замена выполняются одним условным UPDATE,
// так что из двух конкурентных запросов с одним токеном выигрывает
// ровно один, второй получает отказ
func (s *AuthenticationService) Refresh(ctx context.Context, presentedRefreshToken string) (*model.TokensPair, error) {
	claims, err := s.jwtServiceInterface.ValidateRefreshToken(presentedRefreshToken)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.userRepository.FindByUUID(ctx, claims.UserUUID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	tokens, err := s.jwtServiceInterface.GenerateTokenPair(user)
	if err != nil {
		return nil, util.LogError("ошибка генерации токенов", err)
	}

	err = s.userRepository.RotateRefreshToken(ctx, user.UUID, presentedRefreshToken, tokens.RefreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenMismatch) {
			return nil, ErrUnauthorized
		}
		return nil, util.LogError("не удалось сохранить refresh токен", err)
	}

	return tokens, nil
}

// Logout стирает refresh-токен аккаунта. Уже выданный access токен
// доживает свой короткий срок — отзыв касается только продления сессии
func (s *AuthenticationService) Logout(ctx context.Context, userUUID string) error {
	if err := s.userRepository.ClearRefreshToken(ctx, userUUID); err != nil {
		return fmt.Errorf("не удалось завершить сессию: %w", err)
	}
	return nil
}

// ChangePassword меняет пароль после проверки старого.
// Refresh-токен намеренно не трогаем: текущая сессия переживает смену
// пароля, отзыв делается отдельным logout
func (s *AuthenticationService) ChangePassword(ctx context.Context, userUUID, oldPassword, newPassword string) error {
	user, err := s.userRepository.FindByUUID(ctx, userUUID)
	if err != nil {
		return fmt.Errorf("пользователь не найден: %w", err)
	}

	if !security.CheckPassword(oldPassword, user.PasswordHash) {
		return fmt.Errorf("неверный пароль")
	}

	newHash, err := security.HashPassword(newPassword)
	if err != nil {
		return util.LogError("ошибка хэширования пароля", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, userUUID, newHash); err != nil {
		return fmt.Errorf("не удалось обновить пароль: %w", err)
	}
	return nil
}
