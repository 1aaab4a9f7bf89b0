package repository

import (
	"context"

	"video-hosting-server/config"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/util"

	"github.com/google/uuid"
)

type LikeRepository struct {
	*config.Database
}

func NewLikeRepository(database *config.Database) *LikeRepository {
	return &LikeRepository{database}
}

// Toggle : ставит либо снимает лайк. Возвращает true, если лайк поставлен.
// Сначала пробуем удалить существующую запись: ноль затронутых строк
// означает, что лайка не было и его надо создать
func (r *LikeRepository) Toggle(ctx context.Context, userUUID string, kind model.TargetKind, targetUUID string) (bool, error) {
	deleteQuery := `
		DELETE FROM likes
		WHERE user_uuid = $1 AND target_kind = $2 AND target_uuid = $3
	`
	result, err := r.DB.ExecContext(ctx, deleteQuery, userUUID, string(kind), targetUUID)
	if err != nil {
		return false, util.LogError("[LikeRepo] не удалось снять лайк", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, util.LogError("[LikeRepo] не удалось проверить результат удаления", err)
	}
	if rowsAffected > 0 {
		return false, nil
	}

	insertQuery := `
		INSERT INTO likes (uuid, user_uuid, target_kind, target_uuid)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_uuid, target_kind, target_uuid) DO NOTHING
	`
	if _, err := r.DB.ExecContext(ctx, insertQuery, uuid.New().String(), userUUID, string(kind), targetUUID); err != nil {
		return false, util.LogError("[LikeRepo] не удалось поставить лайк", err)
	}

	return true, nil
}

// Count : число лайков цели
func (r *LikeRepository) Count(ctx context.Context, kind model.TargetKind, targetUUID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM likes WHERE target_kind = $1 AND target_uuid = $2`
	if err := r.DB.GetContext(ctx, &count, query, string(kind), targetUUID); err != nil {
		return 0, util.LogError("[LikeRepo] не удалось посчитать лайки", err)
	}
	return count, nil
}

// ListLikedVideos : лайкнутые пользователем видео с данными владельцев.
// Снятые с публикации видео в выдачу не попадают
func (r *LikeRepository) ListLikedVideos(ctx context.Context, userUUID string) ([]model.LikedVideo, error) {
	query := `
		SELECT v.uuid AS video_uuid, v.title, v.thumbnail_url, v.duration, v.views,
		       o.username AS owner_username, o.avatar_url AS owner_avatar,
		       l.created_at AS liked_at
		FROM likes l
		JOIN videos v ON v.uuid = l.target_uuid AND v.is_published = TRUE
		JOIN users o  ON o.uuid = v.owner_uuid
		WHERE l.user_uuid = $1 AND l.target_kind = 'video'
		ORDER BY l.created_at DESC
	`

	videos := []model.LikedVideo{}
	if err := r.DB.SelectContext(ctx, &videos, query, userUUID); err != nil {
		return nil, util.LogError("[LikeRepo] не удалось получить лайкнутые видео", err)
	}
	return videos, nil
}
