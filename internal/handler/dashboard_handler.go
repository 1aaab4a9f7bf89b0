package handler

import (
	"net/http"

	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/util"
)

type DashboardHandler struct {
	ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService}
}

// GetChannelStats godoc
// @Summary Статистика канала
// @Description Суммарные видео, просмотры, подписчики и лайки текущего пользователя
// @Tags Dashboard
// @Produce json
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) GetChannelStats(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	stats, err := h.DashboardService.GetChannelStats(r.Context(), user.UUID)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, stats, "статистика канала")
}

// GetChannelVideos godoc
// @Summary Видео канала для владельца
// @Description Все видео текущего пользователя, включая скрытые
// @Tags Dashboard
// @Produce json
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/dashboard/videos [get]
func (h *DashboardHandler) GetChannelVideos(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	page, limit := parsePagination(r)
	videos, totalCount, err := h.DashboardService.GetChannelVideos(r.Context(), user.UUID, page, limit)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, map[string]interface{}{
		"videos":      videos,
		"page":        page,
		"limit":       limit,
		"total_count": totalCount,
		"total_pages": totalPages(totalCount, limit),
	}, "видео канала")
}
