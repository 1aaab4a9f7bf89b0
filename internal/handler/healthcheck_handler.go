package handler

import (
	"net/http"

	"video-hosting-server/config"
	"video-hosting-server/internal/util"
)

type HealthcheckHandler struct {
	database *config.Database
	redis    *config.RedisClient
}

func NewHealthcheckHandler(database *config.Database, redis *config.RedisClient) *HealthcheckHandler {
	return &HealthcheckHandler{database: database, redis: redis}
}

// Healthcheck godoc
// @Summary Проверка живости сервиса
// @Description Пингует БД и Redis, отвечает 503 при недоступности любого из них
// @Tags Healthcheck
// @Produce json
// @Success 200 {object} util.ApiResponse
// @Failure 503 {object} util.ApiErrorResponse
// @Router /api/v1/healthcheck [get]
func (h *HealthcheckHandler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.database.DB.PingContext(ctx); err != nil {
		util.Logger().Errorf("healthcheck: БД недоступна: %v", err)
		util.HandleError(w, "сервис недоступен", http.StatusServiceUnavailable, "база данных недоступна")
		return
	}

	if err := h.redis.Client.Ping(ctx).Err(); err != nil {
		util.Logger().Errorf("healthcheck: Redis недоступен: %v", err)
		util.HandleError(w, "сервис недоступен", http.StatusServiceUnavailable, "redis недоступен")
		return
	}

	util.SendResponse(w, http.StatusOK, map[string]string{"status": "ok"}, "сервис работает")
}
