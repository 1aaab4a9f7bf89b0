package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"video-hosting-server/internal/model"
	"video-hosting-server/internal/model/requestresponse"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/util"
)

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// Register godoc
// @Summary Регистрация пользователя
// @Description Создаёт аккаунт из multipart-формы. Поле avatar обязательно, coverImage опционально
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Имя пользователя"
// @Param email formData string true "Email"
// @Param fullName formData string true "Полное имя"
// @Param password formData string true "Пароль"
// @Param avatar formData file true "Аватар"
// @Param coverImage formData file false "Обложка канала"
// @Success 201 {object} util.ApiResponse
// @Failure 400 {object} util.ApiErrorResponse
// @Failure 409 {object} util.ApiErrorResponse "Username или email занят"
// @Failure 500 {object} util.ApiErrorResponse
// @Router /api/v1/users/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		util.HandleError(w, "некорректная multipart-форма", http.StatusBadRequest)
		return
	}

	req := requestresponse.RegisterRequest{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		FullName: r.FormValue("fullName"),
		Password: r.FormValue("password"),
	}
	if err := validate.Struct(req); err != nil {
		util.HandleError(w, "некорректные данные запроса", http.StatusBadRequest, err.Error())
		return
	}

	avatar, avatarFile, err := formFile(r, "avatar")
	if err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer avatarFile.Close()

	input := ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Avatar:   *avatar,
	}

	if cover, coverFile, err := formFile(r, "coverImage"); err == nil {
		defer coverFile.Close()
		input.CoverImage = cover
	}

	user, err := h.UserService.Register(r.Context(), input)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusCreated, user, "пользователь зарегистрирован")
}

// UpdateAccount godoc
// @Summary Обновление профиля
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.UpdateAccountRequest true "Тело запроса"
// @Success 200 {object} util.ApiResponse
// @Failure 400 {object} util.ApiErrorResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/users/update-account [patch]
func (h *UserHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	var req requestresponse.UpdateAccountRequest
	if err := decodeAndValidate(r, &req); err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.FullName == "" && req.Email == "" {
		util.HandleError(w, "нет полей для обновления", http.StatusBadRequest)
		return
	}

	updated, err := h.UserService.UpdateAccount(r.Context(), user.UUID, req.FullName, req.Email)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, updated, "профиль обновлён")
}

// UpdateAvatar godoc
// @Summary Замена аватара
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Новый аватар"
// @Success 200 {object} util.ApiResponse
// @Failure 400 {object} util.ApiErrorResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/users/avatar [patch]
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, "avatar", h.UserService.UpdateAvatar)
}

// UpdateCoverImage godoc
// @Summary Замена обложки канала
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param coverImage formData file true "Новая обложка"
// @Success 200 {object} util.ApiResponse
// @Failure 400 {object} util.ApiErrorResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/users/cover-image [patch]
func (h *UserHandler) UpdateCoverImage(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, "coverImage", h.UserService.UpdateCoverImage)
}

// GetChannelProfile godoc
// @Summary Профиль канала
// @Description Профиль с количеством подписчиков и флагом подписки текущего зрителя
// @Tags Users
// @Produce json
// @Param username path string true "Username канала"
// @Success 200 {object} util.ApiResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Router /api/v1/users/c/{username} [get]
func (h *UserHandler) GetChannelProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		util.HandleError(w, "username не указан", http.StatusBadRequest)
		return
	}

	profile, err := h.UserService.GetChannelProfile(r.Context(), username, viewerUUID(r))
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, profile, "профиль канала")
}

// GetWatchHistory godoc
// @Summary История просмотров
// @Tags Users
// @Produce json
// @Param limit query int false "Количество записей"
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/users/history [get]
func (h *UserHandler) GetWatchHistory(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	history, err := h.UserService.GetWatchHistory(r.Context(), user.UUID, limit)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, history, "история просмотров")
}

func (h *UserHandler) updateImage(
	w http.ResponseWriter,
	r *http.Request,
	field string,
	update func(ctx context.Context, uuid string, file ports.UploadedFile) (*model.User, error),
) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		util.HandleError(w, "некорректная multipart-форма", http.StatusBadRequest)
		return
	}

	uploaded, file, err := formFile(r, field)
	if err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	updated, err := update(r.Context(), user.UUID, *uploaded)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, updated, "изображение обновлено")
}
