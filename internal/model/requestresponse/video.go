package requestresponse

import "video-hosting-server/internal/model"

// UpdateVideoRequest : тело запроса на обновление видео.
// Новый thumbnail передаётся отдельной multipart-частью
type UpdateVideoRequest struct {
	Title       string `json:"title" example:"Новый заголовок"`
	Description string `json:"description" example:"Новое описание"`
}

// VideoListPage : страница списка видео
type VideoListPage struct {
	Videos     []model.VideoWithOwner `json:"videos"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalCount int64                  `json:"total_count"`
	TotalPages int                    `json:"total_pages"`
}

// CommentListPage : страница комментариев к видео
type CommentListPage struct {
	Comments   []model.CommentWithOwner `json:"comments"`
	Page       int                      `json:"page"`
	Limit      int                      `json:"limit"`
	TotalCount int64                    `json:"total_count"`
	TotalPages int                      `json:"total_pages"`
}

// TweetListPage : страница твитов пользователя
type TweetListPage struct {
	Tweets     []model.TweetWithOwner `json:"tweets"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalCount int64                  `json:"total_count"`
	TotalPages int                    `json:"total_pages"`
}

// SubscriberListPage : страница подписчиков канала
type SubscriberListPage struct {
	Subscribers []model.Subscriber `json:"subscribers"`
	Page        int                `json:"page"`
	Limit       int                `json:"limit"`
	TotalCount  int64              `json:"total_count"`
	TotalPages  int                `json:"total_pages"`
}
