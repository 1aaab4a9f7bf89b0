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

type VideoRepository struct {
	*config.Database
}

func NewVideoRepository(database *config.Database) *VideoRepository {
	return &VideoRepository{database}
}

// Create : сохраняет новое видео
func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	query := `
		INSERT INTO videos (uuid, owner_uuid, title, description, video_url, video_key,
		                    thumbnail_url, thumbnail_key, duration, views, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, TRUE)
	`
	_, err := r.DB.ExecContext(ctx, query,
		video.UUID,
		video.OwnerUUID,
		video.Title,
		video.Description,
		video.VideoURL,
		video.VideoKey,
		video.ThumbnailURL,
		video.ThumbnailKey,
		video.Duration,
	)
	if err != nil {
		return util.LogError("[VideoRepo] ошибка вставки данных в БД", err)
	}
	return nil
}

// GetByUUID : возвращает видео вместе с данными владельца
func (r *VideoRepository) GetByUUID(ctx context.Context, videoUUID string) (*model.VideoWithOwner, error) {
	query := `
		SELECT v.uuid, v.owner_uuid, v.title, v.description, v.video_url, v.video_key,
		       v.thumbnail_url, v.thumbnail_key, v.duration, v.views, v.is_published,
		       v.created_at, v.updated_at,
		       o.username AS owner_username, o.avatar_url AS owner_avatar
		FROM videos v
		JOIN users o ON o.uuid = v.owner_uuid
		WHERE v.uuid = $1
	`

	var video model.VideoWithOwner
	if err := r.DB.GetContext(ctx, &video, query, videoUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.LogError("[VideoRepo] видео не найдено", err)
		}
		return nil, util.LogError("[VideoRepo] ошибка при выполнении запроса", err)
	}
	return &video, nil
}

// допустимые поля сортировки, всё остальное приводится к created_at
var videoSortColumns = map[string]string{
	"created_at": "v.created_at",
	"views":      "v.views",
	"duration":   "v.duration",
	"title":      "v.title",
}

// List : выборка списка видео с текстовым поиском, фильтром по владельцу,
// сортировкой и постраничной выдачей. Возвращает страницу и общее число строк
func (r *VideoRepository) List(ctx context.Context, opts model.VideoListOptions) ([]model.VideoWithOwner, int64, error) {
	where := `WHERE v.is_published = TRUE`
	args := []interface{}{}
	n := 1

	if opts.Query != "" {
		where += fmt.Sprintf(" AND (v.title ILIKE $%d OR v.description ILIKE $%d)", n, n)
		args = append(args, "%"+opts.Query+"%")
		n++
	}
	if opts.OwnerUUID != "" {
		where += fmt.Sprintf(" AND v.owner_uuid = $%d", n)
		args = append(args, opts.OwnerUUID)
		n++
	}

	sortColumn, ok := videoSortColumns[opts.SortBy]
	if !ok {
		sortColumn = "v.created_at"
	}
	order := "DESC"
	if opts.SortOrder == "asc" {
		order = "ASC"
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM videos v ` + where
	if err := r.DB.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, util.LogError("[VideoRepo] не удалось посчитать количество видео", err)
	}

	query := fmt.Sprintf(`
		SELECT v.uuid, v.owner_uuid, v.title, v.description, v.video_url, v.video_key,
		       v.thumbnail_url, v.thumbnail_key, v.duration, v.views, v.is_published,
		       v.created_at, v.updated_at,
		       o.username AS owner_username, o.avatar_url AS owner_avatar
		FROM videos v
		JOIN users o ON o.uuid = v.owner_uuid
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, where, sortColumn, order, n, n+1)

	args = append(args, opts.Limit, (opts.Page-1)*opts.Limit)

	videos := []model.VideoWithOwner{}
	if err := r.DB.SelectContext(ctx, &videos, query, args...); err != nil {
		return nil, 0, util.LogError("[VideoRepo] не удалось получить список видео", err)
	}

	return videos, total, nil
}

// Update : обновляет заголовок, описание и thumbnail
func (r *VideoRepository) Update(ctx context.Context, video *model.Video) error {
	query := `
		UPDATE videos
		SET title = COALESCE(NULLIF($2, ''), title),
		    description = COALESCE(NULLIF($3, ''), description),
		    thumbnail_url = COALESCE(NULLIF($4, ''), thumbnail_url),
		    thumbnail_key = COALESCE(NULLIF($5, ''), thumbnail_key),
		    updated_at = NOW()
		WHERE uuid = $1
	`
	result, err := r.DB.ExecContext(ctx, query,
		video.UUID, video.Title, video.Description, video.ThumbnailURL, video.ThumbnailKey)
	if err != nil {
		return util.LogError("[VideoRepo] не удалось обновить видео", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[VideoRepo] не удалось проверить, обновлено ли видео", err)
	}
	if rowsAffected == 0 {
		return util.LogError("[VideoRepo] видео не найдено", sql.ErrNoRows)
	}
	return nil
}

// Delete : удаляет видео и возвращает удалённую строку
// (ключи S3 нужны сервису, чтобы убрать объекты из хранилища)
func (r *VideoRepository) Delete(ctx context.Context, videoUUID string) (*model.Video, error) {
	query := `
		DELETE FROM videos WHERE uuid = $1
		RETURNING uuid, owner_uuid, title, description, video_url, video_key,
		          thumbnail_url, thumbnail_key, duration, views, is_published,
		          created_at, updated_at
	`
	deleted := &model.Video{}
	if err := r.DB.QueryRowxContext(ctx, query, videoUUID).StructScan(deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.LogError("[VideoRepo] видео не найдено", err)
		}
		return nil, util.LogError("[VideoRepo] не удалось удалить видео", err)
	}
	return deleted, nil
}

// SetPublished : переключает видимость видео
func (r *VideoRepository) SetPublished(ctx context.Context, videoUUID string, published bool) error {
	query := `UPDATE videos SET is_published = $2, updated_at = NOW() WHERE uuid = $1`
	if _, err := r.DB.ExecContext(ctx, query, videoUUID, published); err != nil {
		return util.LogError("[VideoRepo] не удалось переключить публикацию", err)
	}
	return nil
}

// IncrementViews : атомарно увеличивает счётчик просмотров
func (r *VideoRepository) IncrementViews(ctx context.Context, videoUUID string) (int64, error) {
	query := `UPDATE videos SET views = views + 1 WHERE uuid = $1 RETURNING views`
	var views int64
	if err := r.DB.GetContext(ctx, &views, query, videoUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, util.LogError("[VideoRepo] видео не найдено", err)
		}
		return 0, util.LogError("[VideoRepo] не удалось увеличить счётчик просмотров", err)
	}
	return views, nil
}

// Exists : проверяет, существует ли видео
func (r *VideoRepository) Exists(ctx context.Context, videoUUID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM videos WHERE uuid = $1)`
	if err := r.DB.GetContext(ctx, &exists, query, videoUUID); err != nil {
		return false, util.LogError("[VideoRepo] ошибка проверки существования видео", err)
	}
	return exists, nil
}

// ListByChannel : все видео канала, включая снятые с публикации (для дашборда)
func (r *VideoRepository) ListByChannel(ctx context.Context, ownerUUID string, page, limit int) ([]model.Video, int64, error) {
	var total int64
	if err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM videos WHERE owner_uuid = $1`, ownerUUID); err != nil {
		return nil, 0, util.LogError("[VideoRepo] не удалось посчитать видео канала", err)
	}

	query := `
		SELECT uuid, owner_uuid, title, description, video_url, video_key,
		       thumbnail_url, thumbnail_key, duration, views, is_published,
		       created_at, updated_at
		FROM videos
		WHERE owner_uuid = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	videos := []model.Video{}
	if err := r.DB.SelectContext(ctx, &videos, query, ownerUUID, limit, (page-1)*limit); err != nil {
		return nil, 0, util.LogError("[VideoRepo] не удалось получить видео канала", err)
	}
	return videos, total, nil
}

// GetChannelStats : агрегаты канала одним запросом
func (r *VideoRepository) GetChannelStats(ctx context.Context, ownerUUID string) (*model.ChannelStats, error) {
	query := `
		SELECT
		    (SELECT COUNT(*) FROM videos WHERE owner_uuid = $1)               AS total_videos,
		    (SELECT COALESCE(SUM(views), 0) FROM videos WHERE owner_uuid = $1) AS total_views,
		    (SELECT COUNT(*) FROM subscriptions WHERE channel_uuid = $1)       AS total_subscribers,
		    (SELECT COUNT(*) FROM likes l
		       JOIN videos v ON v.uuid = l.target_uuid
		      WHERE l.target_kind = 'video' AND v.owner_uuid = $1)             AS total_likes
	`
	var stats model.ChannelStats
	if err := r.DB.GetContext(ctx, &stats, query, ownerUUID); err != nil {
		return nil, util.LogError("[VideoRepo] не удалось получить статистику канала", err)
	}
	return &stats, nil
}
