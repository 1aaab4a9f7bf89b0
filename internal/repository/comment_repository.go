package repository

import (
	"context"
	"database/sql"
	"errors"

	"video-hosting-server/config"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/util"
)

type CommentRepository struct {
	*config.Database
}

func NewCommentRepository(database *config.Database) *CommentRepository {
	return &CommentRepository{database}
}

// Create : сохраняет новый комментарий
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `
		INSERT INTO comments (uuid, video_uuid, owner_uuid, content)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.DB.ExecContext(ctx, query,
		comment.UUID, comment.VideoUUID, comment.OwnerUUID, comment.Content)
	if err != nil {
		return util.LogError("[CommentRepo] ошибка вставки данных в БД", err)
	}
	return nil
}

const commentWithOwnerSelect = `
	SELECT c.uuid, c.video_uuid, c.owner_uuid, c.content, c.created_at, c.updated_at,
	       o.username AS owner_username, o.full_name AS owner_full_name, o.avatar_url AS owner_avatar,
	       (SELECT COUNT(*) FROM likes l
	          WHERE l.target_kind = 'comment' AND l.target_uuid = c.uuid) AS likes_count,
	       EXISTS (SELECT 1 FROM likes l
	          WHERE l.target_kind = 'comment' AND l.target_uuid = c.uuid AND l.user_uuid = $2) AS is_liked
	FROM comments c
	JOIN users o ON o.uuid = c.owner_uuid
`

// GetByUUID : комментарий с автором и счётчиком лайков
func (r *CommentRepository) GetByUUID(ctx context.Context, commentUUID, viewerUUID string) (*model.CommentWithOwner, error) {
	query := commentWithOwnerSelect + ` WHERE c.uuid = $1`

	var comment model.CommentWithOwner
	if err := r.DB.GetContext(ctx, &comment, query, commentUUID, viewerUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.LogError("[CommentRepo] комментарий не найден", err)
		}
		return nil, util.LogError("[CommentRepo] ошибка при выполнении запроса", err)
	}
	return &comment, nil
}

// ListByVideo : комментарии видео, новые сверху, с пагинацией
func (r *CommentRepository) ListByVideo(ctx context.Context, videoUUID, viewerUUID string, page, limit int) ([]model.CommentWithOwner, int64, error) {
	var total int64
	if err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM comments WHERE video_uuid = $1`, videoUUID); err != nil {
		return nil, 0, util.LogError("[CommentRepo] не удалось посчитать комментарии", err)
	}

	query := commentWithOwnerSelect + `
		WHERE c.video_uuid = $1
		ORDER BY c.created_at DESC
		LIMIT $3 OFFSET $4
	`

	comments := []model.CommentWithOwner{}
	if err := r.DB.SelectContext(ctx, &comments, query, videoUUID, viewerUUID, limit, (page-1)*limit); err != nil {
		return nil, 0, util.LogError("[CommentRepo] не удалось получить комментарии", err)
	}
	return comments, total, nil
}

// Update : обновляет текст, только если комментарий принадлежит ownerUUID
func (r *CommentRepository) Update(ctx context.Context, commentUUID, ownerUUID, content string) error {
	query := `
		UPDATE comments SET content = $3, updated_at = NOW()
		WHERE uuid = $1 AND owner_uuid = $2
	`
	result, err := r.DB.ExecContext(ctx, query, commentUUID, ownerUUID, content)
	if err != nil {
		return util.LogError("[CommentRepo] не удалось обновить комментарий", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[CommentRepo] не удалось проверить, обновлён ли комментарий", err)
	}
	if rowsAffected == 0 {
		return util.LogError("[CommentRepo] комментарий не найден или доступ запрещён", sql.ErrNoRows)
	}
	return nil
}

// Delete : удаляет комментарий владельца
func (r *CommentRepository) Delete(ctx context.Context, commentUUID, ownerUUID string) error {
	query := `DELETE FROM comments WHERE uuid = $1 AND owner_uuid = $2`
	result, err := r.DB.ExecContext(ctx, query, commentUUID, ownerUUID)
	if err != nil {
		return util.LogError("[CommentRepo] не удалось удалить комментарий", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[CommentRepo] не удалось проверить, удалён ли комментарий", err)
	}
	if rowsAffected == 0 {
		return util.LogError("[CommentRepo] комментарий не найден или доступ запрещён", sql.ErrNoRows)
	}
	return nil
}

// Exists : проверяет, существует ли комментарий
func (r *CommentRepository) Exists(ctx context.Context, commentUUID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM comments WHERE uuid = $1)`
	if err := r.DB.GetContext(ctx, &exists, query, commentUUID); err != nil {
		return false, util.LogError("[CommentRepo] ошибка проверки существования комментария", err)
	}
	return exists, nil
}
