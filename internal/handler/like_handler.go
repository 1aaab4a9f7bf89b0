package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"video-hosting-server/internal/model"
	"video-hosting-server/internal/model/requestresponse"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/util"
)

type LikeHandler struct {
	ports.LikeService
}

func NewLikeHandler(likeService ports.LikeService) *LikeHandler {
	return &LikeHandler{likeService}
}

// ToggleVideoLike godoc
// @Summary Лайк видео
// @Description Ставит лайк либо снимает его, если он уже стоит
// @Tags Likes
// @Produce json
// @Param uuid path string true "UUID видео"
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/likes/video/{uuid} [post]
func (h *LikeHandler) ToggleVideoLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.LikeService.ToggleVideoLike)
}

// ToggleCommentLike godoc
// @Summary Лайк комментария
// @Tags Likes
// @Produce json
// @Param uuid path string true "UUID комментария"
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/likes/comment/{uuid} [post]
func (h *LikeHandler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.LikeService.ToggleCommentLike)
}

// ToggleTweetLike godoc
// @Summary Лайк твита
// @Tags Likes
// @Produce json
// @Param uuid path string true "UUID твита"
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/likes/tweet/{uuid} [post]
func (h *LikeHandler) ToggleTweetLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.LikeService.ToggleTweetLike)
}

// GetLikedVideos godoc
// @Summary Лайкнутые видео
// @Tags Likes
// @Produce json
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/likes/videos [get]
func (h *LikeHandler) GetLikedVideos(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	videos, err := h.LikeService.GetLikedVideos(r.Context(), user.UUID)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, videos, "лайкнутые видео")
}

// CountLikes godoc
// @Summary Количество лайков цели
// @Tags Likes
// @Produce json
// @Param kind path string true "Тип цели: video, comment, tweet"
// @Param uuid path string true "UUID цели"
// @Success 200 {object} util.ApiResponse
// @Failure 400 {object} util.ApiErrorResponse
// @Router /api/v1/likes/{kind}/{uuid}/count [get]
func (h *LikeHandler) CountLikes(w http.ResponseWriter, r *http.Request) {
	kind := model.TargetKind(chi.URLParam(r, "kind"))
	switch kind {
	case model.TargetVideo, model.TargetComment, model.TargetTweet:
	default:
		util.HandleError(w, "неизвестный тип цели", http.StatusBadRequest)
		return
	}

	targetUUID := chi.URLParam(r, "uuid")
	count, err := h.LikeService.CountLikes(r.Context(), kind, targetUUID)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, requestresponse.LikeCountResult{
		TargetUUID: targetUUID,
		Likes:      count,
	}, "количество лайков")
}

func (h *LikeHandler) toggle(
	w http.ResponseWriter,
	r *http.Request,
	toggleFn func(ctx context.Context, userUUID, targetUUID string) (string, error),
) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	targetUUID := chi.URLParam(r, "uuid")
	action, err := toggleFn(r.Context(), user.UUID, targetUUID)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, requestresponse.ToggleResult{
		TargetUUID: targetUUID,
		Action:     action,
	}, "лайк переключён")
}
