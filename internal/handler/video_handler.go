package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"video-hosting-server/internal/model"
	"video-hosting-server/internal/model/requestresponse"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/util"
)

type VideoHandler struct {
	ports.VideoService
}

func NewVideoHandler(videoService ports.VideoService) *VideoHandler {
	return &VideoHandler{videoService}
}

// PublishVideo godoc
// @Summary Публикация видео
// @Description Загружает видеофайл и превью из multipart-формы и создаёт запись
// @Tags Videos
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Заголовок"
// @Param description formData string true "Описание"
// @Param duration formData number false "Длительность в секундах"
// @Param videoFile formData file true "Видеофайл"
// @Param thumbnail formData file true "Превью"
// @Success 201 {object} util.ApiResponse
// @Failure 400 {object} util.ApiErrorResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 500 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/videos [post]
func (h *VideoHandler) PublishVideo(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		util.HandleError(w, "некорректная multipart-форма", http.StatusBadRequest)
		return
	}

	title := r.FormValue("title")
	description := r.FormValue("description")
	if title == "" || description == "" {
		util.HandleError(w, "title и description обязательны", http.StatusBadRequest)
		return
	}
	duration, _ := strconv.ParseFloat(r.FormValue("duration"), 64)

	videoFile, vf, err := formFile(r, "videoFile")
	if err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer vf.Close()

	thumbnail, tf, err := formFile(r, "thumbnail")
	if err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer tf.Close()

	video, err := h.VideoService.Publish(r.Context(), user.UUID, title, description, duration, *videoFile, *thumbnail)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusCreated, video, "видео опубликовано")
}

// GetVideo godoc
// @Summary Видео по UUID
// @Description Для авторизованного зрителя просмотр записывается в историю
// @Tags Videos
// @Produce json
// @Param uuid path string true "UUID видео"
// @Success 200 {object} util.ApiResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Router /api/v1/videos/{uuid} [get]
func (h *VideoHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	videoUUID := chi.URLParam(r, "uuid")

	video, err := h.VideoService.GetByUUID(r.Context(), videoUUID, viewerUUID(r))
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, video, "видео")
}

// ListVideos godoc
// @Summary Список видео
// @Description Постраничный список опубликованных видео с поиском и сортировкой
// @Tags Videos
// @Produce json
// @Param query query string false "Поиск по заголовку и описанию"
// @Param owner query string false "UUID владельца"
// @Param sortBy query string false "Поле сортировки: created_at, views, duration, title"
// @Param sortOrder query string false "asc или desc"
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} util.ApiResponse
// @Failure 500 {object} util.ApiErrorResponse
// @Router /api/v1/videos [get]
func (h *VideoHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	opts := model.VideoListOptions{
		Query:     r.URL.Query().Get("query"),
		OwnerUUID: r.URL.Query().Get("owner"),
		SortBy:    r.URL.Query().Get("sortBy"),
		SortOrder: r.URL.Query().Get("sortOrder"),
		Page:      page,
		Limit:     limit,
	}

	videos, totalCount, err := h.VideoService.List(r.Context(), opts)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, requestresponse.VideoListPage{
		Videos:     videos,
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages(totalCount, limit),
	}, "список видео")
}

// UpdateVideo godoc
// @Summary Обновление видео
// @Description Меняет метаданные. Новое превью можно передать multipart-частью thumbnail
// @Tags Videos
// @Accept multipart/form-data
// @Produce json
// @Param uuid path string true "UUID видео"
// @Param title formData string false "Заголовок"
// @Param description formData string false "Описание"
// @Param thumbnail formData file false "Новое превью"
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 403 {object} util.ApiErrorResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/videos/{uuid} [patch]
func (h *VideoHandler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	videoUUID := chi.URLParam(r, "uuid")

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		util.HandleError(w, "некорректная multipart-форма", http.StatusBadRequest)
		return
	}

	var thumbnail *ports.UploadedFile
	if uploaded, file, err := formFile(r, "thumbnail"); err == nil {
		defer file.Close()
		thumbnail = uploaded
	}

	video, err := h.VideoService.Update(r.Context(), videoUUID, user.UUID,
		r.FormValue("title"), r.FormValue("description"), thumbnail)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, video, "видео обновлено")
}

// DeleteVideo godoc
// @Summary Удаление видео
// @Description Удаляет запись вместе с файлами в хранилище
// @Tags Videos
// @Produce json
// @Param uuid path string true "UUID видео"
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 403 {object} util.ApiErrorResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/videos/{uuid} [delete]
func (h *VideoHandler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	videoUUID := chi.URLParam(r, "uuid")
	if err := h.VideoService.Delete(r.Context(), videoUUID, user.UUID); err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, nil, "видео удалено")
}

// TogglePublish godoc
// @Summary Переключение видимости видео
// @Tags Videos
// @Produce json
// @Param uuid path string true "UUID видео"
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 403 {object} util.ApiErrorResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/videos/{uuid}/toggle-publish [patch]
func (h *VideoHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	videoUUID := chi.URLParam(r, "uuid")
	published, err := h.VideoService.TogglePublish(r.Context(), videoUUID, user.UUID)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, map[string]bool{"is_published": published}, "видимость переключена")
}

// AddView godoc
// @Summary Счётчик просмотров
// @Description Инкрементирует счётчик, возвращает новое значение
// @Tags Videos
// @Produce json
// @Param uuid path string true "UUID видео"
// @Success 200 {object} util.ApiResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Router /api/v1/videos/{uuid}/views [post]
func (h *VideoHandler) AddView(w http.ResponseWriter, r *http.Request) {
	videoUUID := chi.URLParam(r, "uuid")

	views, err := h.VideoService.AddView(r.Context(), videoUUID)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, map[string]int64{"views": views}, "просмотр засчитан")
}
