package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"video-hosting-server/internal/model/requestresponse"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/util"
)

type CommentHandler struct {
	ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService}
}

// AddComment godoc
// @Summary Добавление комментария
// @Tags Comments
// @Accept json
// @Produce json
// @Param videoUUID path string true "UUID видео"
// @Param body body requestresponse.AddCommentRequest true "Тело запроса"
// @Success 201 {object} util.ApiResponse
// @Failure 400 {object} util.ApiErrorResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/videos/{videoUUID}/comments [post]
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	var req requestresponse.AddCommentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.Add(r.Context(), chi.URLParam(r, "videoUUID"), user.UUID, req.Content)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusCreated, comment, "комментарий добавлен")
}

// ListComments godoc
// @Summary Комментарии к видео
// @Tags Comments
// @Produce json
// @Param videoUUID path string true "UUID видео"
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} util.ApiResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Router /api/v1/videos/{videoUUID}/comments [get]
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	comments, totalCount, err := h.CommentService.ListByVideo(r.Context(),
		chi.URLParam(r, "videoUUID"), viewerUUID(r), page, limit)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, requestresponse.CommentListPage{
		Comments:   comments,
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages(totalCount, limit),
	}, "комментарии")
}

// UpdateComment godoc
// @Summary Обновление комментария
// @Tags Comments
// @Accept json
// @Produce json
// @Param uuid path string true "UUID комментария"
// @Param body body requestresponse.UpdateCommentRequest true "Тело запроса"
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 403 {object} util.ApiErrorResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/comments/{uuid} [patch]
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	var req requestresponse.UpdateCommentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.Update(r.Context(), chi.URLParam(r, "uuid"), user.UUID, req.Content)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, comment, "комментарий обновлён")
}

// DeleteComment godoc
// @Summary Удаление комментария
// @Tags Comments
// @Produce json
// @Param uuid path string true "UUID комментария"
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 403 {object} util.ApiErrorResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/comments/{uuid} [delete]
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	if err := h.CommentService.Delete(r.Context(), chi.URLParam(r, "uuid"), user.UUID); err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, nil, "комментарий удалён")
}
