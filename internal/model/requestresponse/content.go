package requestresponse

// AddCommentRequest : тело запроса на создание комментария
type AddCommentRequest struct {
	Content string `json:"content" example:"Отличное видео!" validate:"required"`
}

// UpdateCommentRequest : тело запроса на обновление комментария
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// CreateTweetRequest : тело запроса на создание твита
type CreateTweetRequest struct {
	Content string `json:"content" example:"Сегодня новое видео" validate:"required,max=280"`
}

// UpdateTweetRequest : тело запроса на обновление твита
type UpdateTweetRequest struct {
	Content string `json:"content" validate:"required,max=280"`
}

// CreatePlaylistRequest : тело запроса на создание плейлиста
type CreatePlaylistRequest struct {
	Name        string `json:"name" example:"Лучшее за год" validate:"required"`
	Description string `json:"description" example:"Подборка" validate:"required"`
}

// UpdatePlaylistRequest : тело запроса на обновление плейлиста
type UpdatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToggleResult : результат операции-переключателя (лайк, подписка)
type ToggleResult struct {
	TargetUUID string `json:"target_uuid"`
	Action     string `json:"action" example:"liked"`
}

// LikeCountResult : счётчик лайков цели
type LikeCountResult struct {
	TargetUUID string `json:"target_uuid"`
	Likes      int64  `json:"likes"`
}
