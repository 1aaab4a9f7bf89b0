package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"video-hosting-server/config"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/util"
)

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

const userColumns = `uuid, username, email, full_name, avatar_url, avatar_key,
	cover_url, cover_key, password_hash, refresh_token, created_at, updated_at`

// CreateUser : сохраняет нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uuid, username, email, full_name, avatar_url, avatar_key, cover_url, cover_key, password_hash)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING ` + userColumns

	created := &model.User{}
	err := r.DB.QueryRowxContext(ctx, query,
		user.UUID,
		user.Username,
		user.Email,
		user.FullName,
		user.AvatarURL,
		user.AvatarKey,
		user.CoverURL,
		user.CoverKey,
		user.PasswordHash,
	).StructScan(created)

	if err != nil {
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return created, nil
}

// FindByUUID : ищет пользователя по UUID
func (r *UserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uuid = $1`
	var user model.User
	if err := r.DB.GetContext(ctx, &user, query, uuid); err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}

// FindByUsernameOrEmail : ищет пользователя по username либо email
// (оба значения нормализованы к нижнему регистру на уровне сервиса)
func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $2`
	var user model.User
	if err := r.DB.GetContext(ctx, &user, query, username, email); err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по username/email", err)
	}
	return &user, nil
}

// Exists : проверяет, существует ли пользователь по UUID
func (r *UserRepository) Exists(ctx context.Context, uuid string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE uuid = $1)`
	if err := r.DB.GetContext(ctx, &exists, query, uuid); err != nil {
		return false, util.LogError("[UserRepo] ошибка проверки существования пользователя", err)
	}
	return exists, nil
}

// UpdateAccount : обновляет поля профиля
func (r *UserRepository) UpdateAccount(ctx context.Context, uuid, fullName, email string) (*model.User, error) {
	query := `
		UPDATE users
		SET full_name = COALESCE(NULLIF($2, ''), full_name),
		    email = COALESCE(NULLIF($3, ''), email),
		    updated_at = NOW()
		WHERE uuid = $1
		RETURNING ` + userColumns

	updated := &model.User{}
	if err := r.DB.QueryRowxContext(ctx, query, uuid, fullName, email).StructScan(updated); err != nil {
		return nil, util.LogError("[UserRepo] не удалось обновить пользователя", err)
	}
	return updated, nil
}

// UpdateAvatar : меняет аватар пользователя
func (r *UserRepository) UpdateAvatar(ctx context.Context, uuid, url, key string) error {
	query := `UPDATE users SET avatar_url = $2, avatar_key = $3, updated_at = NOW() WHERE uuid = $1`
	if _, err := r.DB.ExecContext(ctx, query, uuid, url, key); err != nil {
		return util.LogError("[UserRepo] не удалось обновить аватар", err)
	}
	return nil
}

// UpdateCoverImage : меняет обложку канала
func (r *UserRepository) UpdateCoverImage(ctx context.Context, uuid, url, key string) error {
	query := `UPDATE users SET cover_url = $2, cover_key = $3, updated_at = NOW() WHERE uuid = $1`
	if _, err := r.DB.ExecContext(ctx, query, uuid, url, key); err != nil {
		return util.LogError("[UserRepo] не удалось обновить обложку", err)
	}
	return nil
}

// UpdatePassword : меняет хэш пароля. Указатель refresh-токена не трогаем:
// активная сессия переживает смену пароля
func (r *UserRepository) UpdatePassword(ctx context.Context, uuid, newPasswordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE uuid = $1`
	if _, err := r.DB.ExecContext(ctx, query, uuid, newPasswordHash); err != nil {
		return util.LogError("[UserRepo] не удалось обновить пароль", err)
	}
	return nil
}

// UpdateRefreshToken безусловно перезаписывает указатель сессии.
// Предыдущий refresh-токен с этого момента недействителен
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, uuid, refreshToken string) error {
	query := `UPDATE users SET refresh_token = $2 WHERE uuid = $1`

	result, err := r.DB.ExecContext(ctx, query, uuid, refreshToken)
	if err != nil {
		return util.LogError("[UserRepo] не удалось сохранить refresh токен", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[UserRepo] не удалось проверить, сохранён ли refresh токен", err)
	}
	if rowsAffected == 0 {
		return util.LogError("[UserRepo] пользователь для записи refresh токена не найден", sql.ErrNoRows)
	}

	return nil
}

// ErrRefreshTokenMismatch : сохранённый указатель не совпал с предъявленным.
// Либо токен уже ротирован (replay), либо сессию перебил новый логин
var ErrRefreshTokenMismatch = errors.New("refresh токен уже использован или отозван")

// RotateRefreshToken : атомарная ротация указателя сессии.
// Условный UPDATE гарантирует, что из двух конкурентных refresh с одним и тем же
// токеном победит ровно один: у второго rowsAffected будет 0
func (r *UserRepository) RotateRefreshToken(ctx context.Context, uuid, presented, next string) error {
	query := `UPDATE users SET refresh_token = $3 WHERE uuid = $1 AND refresh_token = $2`

	result, err := r.DB.ExecContext(ctx, query, uuid, presented, next)
	if err != nil {
		return util.LogError("[UserRepo] не удалось ротировать refresh токен", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[UserRepo] не удалось проверить, ротирован ли refresh токен", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("[UserRepo] %w", ErrRefreshTokenMismatch)
	}

	return nil
}

// ClearRefreshToken : сбрасывает указатель сессии (logout)
func (r *UserRepository) ClearRefreshToken(ctx context.Context, uuid string) error {
	query := `UPDATE users SET refresh_token = NULL WHERE uuid = $1`
	if _, err := r.DB.ExecContext(ctx, query, uuid); err != nil {
		return util.LogError("[UserRepo] не удалось сбросить refresh токен", err)
	}
	return nil
}

// GetChannelProfile : профиль канала со счётчиками подписок.
// Агрегаты считаются подзапросами по таблице subscriptions
func (r *UserRepository) GetChannelProfile(ctx context.Context, username, viewerUUID string) (*model.ChannelProfile, error) {
	query := `
		SELECT u.uuid, u.username, u.full_name, u.avatar_url, u.cover_url,
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_uuid = u.uuid)    AS subscriber_count,
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_uuid = u.uuid) AS subscribed_to_count,
		       EXISTS (
		           SELECT 1 FROM subscriptions s
		           WHERE s.channel_uuid = u.uuid AND s.subscriber_uuid = $2
		       ) AS is_subscribed
		FROM users u
		WHERE u.username = $1
	`

	var profile model.ChannelProfile
	if err := r.DB.GetContext(ctx, &profile, query, username, viewerUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.LogError("[UserRepo] канал не найден", err)
		}
		return nil, util.LogError("[UserRepo] ошибка при выполнении запроса профиля канала", err)
	}

	return &profile, nil
}

// AppendWatchHistory : добавляет просмотр в историю.
// Повторный просмотр поднимает запись наверх, а не создаёт дубликат
func (r *UserRepository) AppendWatchHistory(ctx context.Context, userUUID, videoUUID string) error {
	query := `
		INSERT INTO watch_history (user_uuid, video_uuid, watched_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_uuid, video_uuid) DO UPDATE SET watched_at = NOW()
	`
	if _, err := r.DB.ExecContext(ctx, query, userUUID, videoUUID); err != nil {
		return util.LogError("[UserRepo] не удалось записать историю просмотров", err)
	}
	return nil
}

// GetWatchHistory : история просмотров с данными владельцев видео
func (r *UserRepository) GetWatchHistory(ctx context.Context, userUUID string, limit int) ([]model.WatchHistoryEntry, error) {
	query := `
		SELECT v.uuid AS video_uuid, v.title, v.thumbnail_url, v.duration, v.views,
		       o.username AS owner_username, o.avatar_url AS owner_avatar,
		       h.watched_at
		FROM watch_history h
		JOIN videos v ON v.uuid = h.video_uuid
		JOIN users o  ON o.uuid = v.owner_uuid
		WHERE h.user_uuid = $1
		ORDER BY h.watched_at DESC
		LIMIT $2
	`

	entries := []model.WatchHistoryEntry{}
	if err := r.DB.SelectContext(ctx, &entries, query, userUUID, limit); err != nil {
		return nil, util.LogError("[UserRepo] не удалось получить историю просмотров", err)
	}
	return entries, nil
}
