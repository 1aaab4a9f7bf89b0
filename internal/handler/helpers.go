package handler

import (
	"encoding/json"
	"fmt"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/util"
)

// максимальный размер multipart-формы: видеофайлы крупные
const maxUploadSize = 512 << 20

var validate = validator.New()

// decodeAndValidate читает JSON тела и прогоняет struct-теги validate
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("некорректный JSON")
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("некорректные данные запроса: %w", err)
	}
	return nil
}

// mapServiceError переводит ошибку сервисного слоя в HTTP статус.
// Сервисы сигнализируют категорию ошибки текстом сообщения
func mapServiceError(w http.ResponseWriter, err error) {
	util.Logger().Infof("ошибка обработки запроса: %v", err)
	switch {
	case strings.Contains(err.Error(), "не авторизован"),
		strings.Contains(err.Error(), "неверный пароль"):
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
	case strings.Contains(err.Error(), "доступ запрещён"):
		util.HandleError(w, "доступ запрещён", http.StatusForbidden)
	case strings.Contains(err.Error(), "не найден"),
		strings.Contains(err.Error(), "не найдено"),
		strings.Contains(err.Error(), "не найдена"):
		util.HandleError(w, "ресурс не найден", http.StatusNotFound)
	case strings.Contains(err.Error(), "уже существует"):
		util.HandleError(w, "ресурс уже существует", http.StatusConflict)
	case strings.Contains(err.Error(), "нельзя подписаться"):
		util.HandleError(w, err.Error(), http.StatusBadRequest)
	default:
		util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}

// parsePagination : query-параметры page и limit с дефолтами
func parsePagination(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return page, limit
}

func totalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(limit)))
}

// formFile достаёт файл из multipart-формы и оборачивает его для загрузки
// в хранилище. Закрыть reader обязан вызывающий
func formFile(r *http.Request, field string) (*ports.UploadedFile, multipart.File, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, fmt.Errorf("файл %s не передан", field)
	}

	return &ports.UploadedFile{
		Reader:      file,
		Size:        header.Size,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}, file, nil
}

// viewerUUID : UUID зрителя, пустая строка для анонима
func viewerUUID(r *http.Request) string {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		return ""
	}
	return user.UUID
}
