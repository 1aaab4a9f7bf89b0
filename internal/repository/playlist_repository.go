package repository

import (
	"context"
	"database/sql"
	"errors"

	"video-hosting-server/config"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/util"
)

type PlaylistRepository struct {
	*config.Database
}

func NewPlaylistRepository(database *config.Database) *PlaylistRepository {
	return &PlaylistRepository{database}
}

// Create : сохраняет новый плейлист
func (r *PlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	query := `
		INSERT INTO playlists (uuid, owner_uuid, name, description)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.DB.ExecContext(ctx, query,
		playlist.UUID, playlist.OwnerUUID, playlist.Name, playlist.Description)
	if err != nil {
		return util.LogError("[PlaylistRepo] ошибка вставки данных в БД", err)
	}
	return nil
}

// GetByUUID : плейлист с владельцем и содержимым.
// Видео выбираются отдельным запросом в порядке добавления
func (r *PlaylistRepository) GetByUUID(ctx context.Context, playlistUUID string) (*model.PlaylistWithVideos, error) {
	headQuery := `
		SELECT p.uuid, p.owner_uuid, p.name, p.description, p.created_at, p.updated_at,
		       o.username AS owner_username, o.avatar_url AS owner_avatar
		FROM playlists p
		JOIN users o ON o.uuid = p.owner_uuid
		WHERE p.uuid = $1
	`

	var head struct {
		model.Playlist
		OwnerUsername string `db:"owner_username"`
		OwnerAvatar   string `db:"owner_avatar"`
	}
	if err := r.DB.GetContext(ctx, &head, headQuery, playlistUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.LogError("[PlaylistRepo] плейлист не найден", err)
		}
		return nil, util.LogError("[PlaylistRepo] ошибка при выполнении запроса", err)
	}

	videosQuery := `
		SELECT v.uuid AS video_uuid, v.title, v.thumbnail_url, v.duration
		FROM playlist_videos pv
		JOIN videos v ON v.uuid = pv.video_uuid
		WHERE pv.playlist_uuid = $1
		ORDER BY pv.added_at ASC
	`
	videos := []model.PlaylistVideo{}
	if err := r.DB.SelectContext(ctx, &videos, videosQuery, playlistUUID); err != nil {
		return nil, util.LogError("[PlaylistRepo] не удалось получить видео плейлиста", err)
	}

	return &model.PlaylistWithVideos{
		Playlist:      head.Playlist,
		OwnerUsername: head.OwnerUsername,
		OwnerAvatar:   head.OwnerAvatar,
		Videos:        videos,
	}, nil
}

// ListByOwner : плейлисты пользователя, новые сверху
func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerUUID string) ([]model.Playlist, error) {
	query := `
		SELECT uuid, owner_uuid, name, description, created_at, updated_at
		FROM playlists
		WHERE owner_uuid = $1
		ORDER BY created_at DESC
	`
	playlists := []model.Playlist{}
	if err := r.DB.SelectContext(ctx, &playlists, query, ownerUUID); err != nil {
		return nil, util.LogError("[PlaylistRepo] не удалось получить плейлисты", err)
	}
	return playlists, nil
}

// Update : обновляет имя и описание плейлиста владельца
func (r *PlaylistRepository) Update(ctx context.Context, playlistUUID, ownerUUID, name, description string) error {
	query := `
		UPDATE playlists
		SET name = COALESCE(NULLIF($3, ''), name),
		    description = COALESCE(NULLIF($4, ''), description),
		    updated_at = NOW()
		WHERE uuid = $1 AND owner_uuid = $2
	`
	result, err := r.DB.ExecContext(ctx, query, playlistUUID, ownerUUID, name, description)
	if err != nil {
		return util.LogError("[PlaylistRepo] не удалось обновить плейлист", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[PlaylistRepo] не удалось проверить, обновлён ли плейлист", err)
	}
	if rowsAffected == 0 {
		return util.LogError("[PlaylistRepo] плейлист не найден или доступ запрещён", sql.ErrNoRows)
	}
	return nil
}

// Delete : удаляет плейлист владельца (содержимое уходит каскадом)
func (r *PlaylistRepository) Delete(ctx context.Context, playlistUUID, ownerUUID string) error {
	query := `DELETE FROM playlists WHERE uuid = $1 AND owner_uuid = $2`
	result, err := r.DB.ExecContext(ctx, query, playlistUUID, ownerUUID)
	if err != nil {
		return util.LogError("[PlaylistRepo] не удалось удалить плейлист", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[PlaylistRepo] не удалось проверить, удалён ли плейлист", err)
	}
	if rowsAffected == 0 {
		return util.LogError("[PlaylistRepo] плейлист не найден или доступ запрещён", sql.ErrNoRows)
	}
	return nil
}

// AddVideo : добавляет видео в плейлист, повтор — no-op
func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistUUID, videoUUID string) error {
	query := `
		INSERT INTO playlist_videos (playlist_uuid, video_uuid, added_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (playlist_uuid, video_uuid) DO NOTHING
	`
	if _, err := r.DB.ExecContext(ctx, query, playlistUUID, videoUUID); err != nil {
		return util.LogError("[PlaylistRepo] не удалось добавить видео в плейлист", err)
	}
	return nil
}

// RemoveVideo : убирает видео из плейлиста
func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistUUID, videoUUID string) error {
	query := `DELETE FROM playlist_videos WHERE playlist_uuid = $1 AND video_uuid = $2`
	result, err := r.DB.ExecContext(ctx, query, playlistUUID, videoUUID)
	if err != nil {
		return util.LogError("[PlaylistRepo] не удалось убрать видео из плейлиста", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[PlaylistRepo] не удалось проверить, убрано ли видео", err)
	}
	if rowsAffected == 0 {
		return util.LogError("[PlaylistRepo] видео в плейлисте не найдено", sql.ErrNoRows)
	}
	return nil
}

// IsOwner : проверяет владельца плейлиста
func (r *PlaylistRepository) IsOwner(ctx context.Context, playlistUUID, userUUID string) (bool, error) {
	var isOwner bool
	query := `SELECT EXISTS (SELECT 1 FROM playlists WHERE uuid = $1 AND owner_uuid = $2)`
	if err := r.DB.GetContext(ctx, &isOwner, query, playlistUUID, userUUID); err != nil {
		return false, util.LogError("[PlaylistRepo] ошибка проверки владельца плейлиста", err)
	}
	return isOwner, nil
}
