package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"video-hosting-server/internal/model/requestresponse"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/util"
)

type SubscriptionHandler struct {
	ports.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService ports.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService}
}

// ToggleSubscription godoc
// @Summary Подписка на канал
// @Description Подписывает либо отписывает, если подписка уже есть
// @Tags Subscriptions
// @Produce json
// @Param channelUUID path string true "UUID канала"
// @Success 200 {object} util.ApiResponse
// @Failure 400 {object} util.ApiErrorResponse "Подписка на себя"
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 404 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/subscriptions/{channelUUID} [post]
func (h *SubscriptionHandler) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	channelUUID := chi.URLParam(r, "channelUUID")
	action, err := h.SubscriptionService.Toggle(r.Context(), user.UUID, channelUUID)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, requestresponse.ToggleResult{
		TargetUUID: channelUUID,
		Action:     action,
	}, "подписка переключена")
}

// GetChannelSubscribers godoc
// @Summary Подписчики канала
// @Tags Subscriptions
// @Produce json
// @Param channelUUID path string true "UUID канала"
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} util.ApiResponse
// @Router /api/v1/subscriptions/{channelUUID}/subscribers [get]
func (h *SubscriptionHandler) GetChannelSubscribers(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	subscribers, totalCount, err := h.SubscriptionService.GetChannelSubscribers(r.Context(),
		chi.URLParam(r, "channelUUID"), page, limit)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, requestresponse.SubscriberListPage{
		Subscribers: subscribers,
		Page:        page,
		Limit:       limit,
		TotalCount:  totalCount,
		TotalPages:  totalPages(totalCount, limit),
	}, "подписчики канала")
}

// GetSubscribedChannels godoc
// @Summary Каналы, на которые подписан пользователь
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/subscriptions [get]
func (h *SubscriptionHandler) GetSubscribedChannels(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	channels, err := h.SubscriptionService.GetSubscribedChannels(r.Context(), user.UUID)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, channels, "подписки пользователя")
}
