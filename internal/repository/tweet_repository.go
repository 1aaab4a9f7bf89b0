package repository

import (
	"context"
	"database/sql"
	"errors"

	"video-hosting-server/config"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/util"
)

type TweetRepository struct {
	*config.Database
}

func NewTweetRepository(database *config.Database) *TweetRepository {
	return &TweetRepository{database}
}

// Create : сохраняет новый твит
func (r *TweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
	query := `INSERT INTO tweets (uuid, owner_uuid, content) VALUES ($1, $2, $3)`
	if _, err := r.DB.ExecContext(ctx, query, tweet.UUID, tweet.OwnerUUID, tweet.Content); err != nil {
		return util.LogError("[TweetRepo] ошибка вставки данных в БД", err)
	}
	return nil
}

const tweetWithOwnerSelect = `
	SELECT t.uuid, t.owner_uuid, t.content, t.created_at, t.updated_at,
	       o.username AS owner_username, o.full_name AS owner_full_name, o.avatar_url AS owner_avatar,
	       (SELECT COUNT(*) FROM likes l
	          WHERE l.target_kind = 'tweet' AND l.target_uuid = t.uuid) AS likes_count,
	       EXISTS (SELECT 1 FROM likes l
	          WHERE l.target_kind = 'tweet' AND l.target_uuid = t.uuid AND l.user_uuid = $2) AS is_liked
	FROM tweets t
	JOIN users o ON o.uuid = t.owner_uuid
`

// GetByUUID : твит с автором и счётчиком лайков
func (r *TweetRepository) GetByUUID(ctx context.Context, tweetUUID, viewerUUID string) (*model.TweetWithOwner, error) {
	query := tweetWithOwnerSelect + ` WHERE t.uuid = $1`

	var tweet model.TweetWithOwner
	if err := r.DB.GetContext(ctx, &tweet, query, tweetUUID, viewerUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.LogError("[TweetRepo] твит не найден", err)
		}
		return nil, util.LogError("[TweetRepo] ошибка при выполнении запроса", err)
	}
	return &tweet, nil
}

// ListByOwner : твиты пользователя, новые сверху, с пагинацией
func (r *TweetRepository) ListByOwner(ctx context.Context, ownerUUID, viewerUUID string, page, limit int) ([]model.TweetWithOwner, int64, error) {
	var total int64
	if err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM tweets WHERE owner_uuid = $1`, ownerUUID); err != nil {
		return nil, 0, util.LogError("[TweetRepo] не удалось посчитать твиты", err)
	}

	query := tweetWithOwnerSelect + `
		WHERE t.owner_uuid = $1
		ORDER BY t.created_at DESC
		LIMIT $3 OFFSET $4
	`

	tweets := []model.TweetWithOwner{}
	if err := r.DB.SelectContext(ctx, &tweets, query, ownerUUID, viewerUUID, limit, (page-1)*limit); err != nil {
		return nil, 0, util.LogError("[TweetRepo] не удалось получить твиты", err)
	}
	return tweets, total, nil
}

// Update : обновляет текст твита владельца
func (r *TweetRepository) Update(ctx context.Context, tweetUUID, ownerUUID, content string) error {
	query := `
		UPDATE tweets SET content = $3, updated_at = NOW()
		WHERE uuid = $1 AND owner_uuid = $2
	`
	result, err := r.DB.ExecContext(ctx, query, tweetUUID, ownerUUID, content)
	if err != nil {
		return util.LogError("[TweetRepo] не удалось обновить твит", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[TweetRepo] не удалось проверить, обновлён ли твит", err)
	}
	if rowsAffected == 0 {
		return util.LogError("[TweetRepo] твит не найден или доступ запрещён", sql.ErrNoRows)
	}
	return nil
}

// Delete : удаляет твит владельца
func (r *TweetRepository) Delete(ctx context.Context, tweetUUID, ownerUUID string) error {
	query := `DELETE FROM tweets WHERE uuid = $1 AND owner_uuid = $2`
	result, err := r.DB.ExecContext(ctx, query, tweetUUID, ownerUUID)
	if err != nil {
		return util.LogError("[TweetRepo] не удалось удалить твит", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[TweetRepo] не удалось проверить, удалён ли твит", err)
	}
	if rowsAffected == 0 {
		return util.LogError("[TweetRepo] твит не найден или доступ запрещён", sql.ErrNoRows)
	}
	return nil
}

// Exists : проверяет, существует ли твит
func (r *TweetRepository) Exists(ctx context.Context, tweetUUID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM tweets WHERE uuid = $1)`
	if err := r.DB.GetContext(ctx, &exists, query, tweetUUID); err != nil {
		return false, util.LogError("[TweetRepo] ошибка проверки существования твита", err)
	}
	return exists, nil
}
