package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"video-hosting-server/internal/model/requestresponse"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/util"
)

type TweetHandler struct {
	ports.TweetService
}

func NewTweetHandler(tweetService ports.TweetService) *TweetHandler {
	return &TweetHandler{tweetService}
}

// CreateTweet godoc
// @Summary Создание твита
// @Tags Tweets
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateTweetRequest true "Тело запроса"
// @Success 201 {object} util.ApiResponse
// @Failure 400 {object} util.ApiErrorResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/tweets [post]
func (h *TweetHandler) CreateTweet(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	var req requestresponse.CreateTweetRequest
	if err := decodeAndValidate(r, &req); err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}

	tweet, err := h.TweetService.Create(r.Context(), user.UUID, req.Content)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusCreated, tweet, "твит создан")
}

// ListUserTweets godoc
// @Summary Твиты пользователя
// @Tags Tweets
// @Produce json
// @Param userUUID path string true "UUID пользователя"
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} util.ApiResponse
// @Router /api/v1/tweets/user/{userUUID} [get]
func (h *TweetHandler) ListUserTweets(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	tweets, totalCount, err := h.TweetService.ListByOwner(r.Context(),
		chi.URLParam(r, "userUUID"), viewerUUID(r), page, limit)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, requestresponse.TweetListPage{
		Tweets:     tweets,
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages(totalCount, limit),
	}, "твиты пользователя")
}

// UpdateTweet godoc
// @Summary Обновление твита
// @Tags Tweets
// @Accept json
// @Produce json
// @Param uuid path string true "UUID твита"
// @Param body body requestresponse.UpdateTweetRequest true "Тело запроса"
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 403 {object} util.ApiErrorResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/tweets/{uuid} [patch]
func (h *TweetHandler) UpdateTweet(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	var req requestresponse.UpdateTweetRequest
	if err := decodeAndValidate(r, &req); err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}

	tweet, err := h.TweetService.Update(r.Context(), chi.URLParam(r, "uuid"), user.UUID, req.Content)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, tweet, "твит обновлён")
}

// DeleteTweet godoc
// @Summary Удаление твита
// @Tags Tweets
// @Produce json
// @Param uuid path string true "UUID твита"
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 403 {object} util.ApiErrorResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/tweets/{uuid} [delete]
func (h *TweetHandler) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	if err := h.TweetService.Delete(r.Context(), chi.URLParam(r, "uuid"), user.UUID); err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, nil, "твит удалён")
}
