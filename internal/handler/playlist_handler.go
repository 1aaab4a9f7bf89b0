package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"video-hosting-server/internal/model/requestresponse"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/util"
)

type PlaylistHandler struct {
	ports.PlaylistService
}

func NewPlaylistHandler(playlistService ports.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService}
}

// CreatePlaylist godoc
// @Summary Создание плейлиста
// @Tags Playlists
// @Accept json
// @Produce json
// @Param body body requestresponse.CreatePlaylistRequest true "Тело запроса"
// @Success 201 {object} util.ApiResponse
// @Failure 400 {object} util.ApiErrorResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/playlists [post]
func (h *PlaylistHandler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	var req requestresponse.CreatePlaylistRequest
	if err := decodeAndValidate(r, &req); err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}

	playlist, err := h.PlaylistService.Create(r.Context(), user.UUID, req.Name, req.Description)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusCreated, playlist, "плейлист создан")
}

// GetPlaylist godoc
// @Summary Плейлист с содержимым
// @Tags Playlists
// @Produce json
// @Param uuid path string true "UUID плейлиста"
// @Success 200 {object} util.ApiResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Router /api/v1/playlists/{uuid} [get]
func (h *PlaylistHandler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := h.PlaylistService.GetByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, playlist, "плейлист")
}

// ListUserPlaylists godoc
// @Summary Плейлисты пользователя
// @Tags Playlists
// @Produce json
// @Param userUUID path string true "UUID пользователя"
// @Success 200 {object} util.ApiResponse
// @Router /api/v1/playlists/user/{userUUID} [get]
func (h *PlaylistHandler) ListUserPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.PlaylistService.ListByOwner(r.Context(), chi.URLParam(r, "userUUID"))
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, playlists, "плейлисты пользователя")
}

// UpdatePlaylist godoc
// @Summary Обновление плейлиста
// @Tags Playlists
// @Accept json
// @Produce json
// @Param uuid path string true "UUID плейлиста"
// @Param body body requestresponse.UpdatePlaylistRequest true "Тело запроса"
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 403 {object} util.ApiErrorResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/playlists/{uuid} [patch]
func (h *PlaylistHandler) UpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	var req requestresponse.UpdatePlaylistRequest
	if err := decodeAndValidate(r, &req); err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" && req.Description == "" {
		util.HandleError(w, "нет полей для обновления", http.StatusBadRequest)
		return
	}

	playlist, err := h.PlaylistService.Update(r.Context(), chi.URLParam(r, "uuid"), user.UUID, req.Name, req.Description)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, playlist, "плейлист обновлён")
}

// DeletePlaylist godoc
// @Summary Удаление плейлиста
// @Tags Playlists
// @Produce json
// @Param uuid path string true "UUID плейлиста"
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 403 {object} util.ApiErrorResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/playlists/{uuid} [delete]
func (h *PlaylistHandler) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	if err := h.PlaylistService.Delete(r.Context(), chi.URLParam(r, "uuid"), user.UUID); err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, nil, "плейлист удалён")
}

// AddVideoToPlaylist godoc
// @Summary Добавление видео в плейлист
// @Tags Playlists
// @Produce json
// @Param uuid path string true "UUID плейлиста"
// @Param videoUUID path string true "UUID видео"
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 403 {object} util.ApiErrorResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/playlists/{uuid}/videos/{videoUUID} [post]
func (h *PlaylistHandler) AddVideoToPlaylist(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	err = h.PlaylistService.AddVideo(r.Context(),
		chi.URLParam(r, "uuid"), chi.URLParam(r, "videoUUID"), user.UUID)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, nil, "видео добавлено в плейлист")
}

// RemoveVideoFromPlaylist godoc
// @Summary Удаление видео из плейлиста
// @Tags Playlists
// @Produce json
// @Param uuid path string true "UUID плейлиста"
// @Param videoUUID path string true "UUID видео"
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 403 {object} util.ApiErrorResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/playlists/{uuid}/videos/{videoUUID} [delete]
func (h *PlaylistHandler) RemoveVideoFromPlaylist(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	err = h.PlaylistService.RemoveVideo(r.Context(),
		chi.URLParam(r, "uuid"), chi.URLParam(r, "videoUUID"), user.UUID)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, nil, "видео убрано из плейлиста")
}
