package handler

import (
	"net/http"
	"time"

	"video-hosting-server/config"
	"video-hosting-server/internal/model"
	"video-hosting-server/internal/model/requestresponse"
	"video-hosting-server/internal/ports"
	"video-hosting-server/internal/security"
	"video-hosting-server/internal/util"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
	jwtConfig    *config.JWTConfig
	cookieConfig *config.CookieConfig
}

func NewAuthenticationHandler(
	authenticationService ports.AuthenticationService,
	jwtConfig *config.JWTConfig,
	cookieConfig *config.CookieConfig,
) *AuthenticationHandler {
	return &AuthenticationHandler{
		authenticationService,
		jwtConfig,
		cookieConfig,
	}
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Выдаёт пару токенов по username/email и паролю. Токены дублируются в httpOnly cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} util.ApiResponse
// @Failure 400 {object} util.ApiErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} util.ApiErrorResponse "Неверный пароль"
// @Failure 404 {object} util.ApiErrorResponse "Пользователь не найден"
// @Failure 500 {object} util.ApiErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req requestresponse.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Username == "" && req.Email == "" {
		util.HandleError(w, "требуется username или email", http.StatusBadRequest)
		return
	}

	user, tokens, err := h.AuthenticationService.Login(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	h.setAuthCookies(w, tokens)
	util.SendResponse(w, http.StatusOK, map[string]interface{}{
		"user":   user,
		"tokens": tokens,
	}, "успешный вход")
}

// RefreshToken godoc
// @Summary Обновление пары токенов
// @Description Ротация по refresh-токену из cookie либо тела запроса. Токен одноразовый: повторное предъявление отклоняется
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest false "Тело запроса"
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse "Невалидный или уже использованный токен"
// @Failure 500 {object} util.ApiErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/auth/refresh [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	refreshToken := ""
	if cookie, err := r.Cookie(security.RefreshTokenCookie); err == nil {
		refreshToken = cookie.Value
	}
	if refreshToken == "" {
		var req requestresponse.RefreshTokenRequest
		if err := decodeAndValidate(r, &req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	tokens, err := h.AuthenticationService.Refresh(ctx, refreshToken)
	if err != nil {
		mapServiceError(w, err)
		return
	}

	h.setAuthCookies(w, tokens)
	util.SendResponse(w, http.StatusOK, tokens, "токены обновлены")
}

// Logout godoc
// @Summary Завершение сессии
// @Description Стирает refresh-токен аккаунта и очищает cookie
// @Tags Authentication
// @Produce json
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Failure 500 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	if err := h.AuthenticationService.Logout(r.Context(), user.UUID); err != nil {
		mapServiceError(w, err)
		return
	}

	h.clearAuthCookies(w)
	util.SendResponse(w, http.StatusOK, nil, "сессия завершена")
}

// ChangePassword godoc
// @Summary Смена пароля
// @Description Меняет пароль после проверки старого. Текущая сессия остаётся активной
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.ChangePasswordRequest true "Тело запроса"
// @Success 200 {object} util.ApiResponse
// @Failure 400 {object} util.ApiErrorResponse
// @Failure 401 {object} util.ApiErrorResponse "Старый пароль не подошёл"
// @Failure 500 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/auth/change-password [post]
func (h *AuthenticationHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	var req requestresponse.ChangePasswordRequest
	if err := decodeAndValidate(r, &req); err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.AuthenticationService.ChangePassword(r.Context(), user.UUID, req.OldPassword, req.NewPassword); err != nil {
		mapServiceError(w, err)
		return
	}

	util.SendResponse(w, http.StatusOK, nil, "пароль изменён")
}

// GetCurrentUser godoc
// @Summary Текущий пользователь
// @Description Возвращает аккаунт, которому принадлежит access токен
// @Tags Authentication
// @Produce json
// @Success 200 {object} util.ApiResponse
// @Failure 401 {object} util.ApiErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/auth/current-user [get]
func (h *AuthenticationHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", http.StatusUnauthorized)
		return
	}

	util.SendResponse(w, http.StatusOK, user, "текущий пользователь")
}

func (h *AuthenticationHandler) setAuthCookies(w http.ResponseWriter, tokens *model.TokensPair) {
	accessTTL, _ := time.ParseDuration(h.jwtConfig.AccessTokenTTL)
	refreshTTL, _ := time.ParseDuration(h.jwtConfig.RefreshTokenTTL)

	http.SetCookie(w, &http.Cookie{
		Name:     security.AccessTokenCookie,
		Value:    tokens.AccessToken,
		Path:     "/",
		MaxAge:   int(accessTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieConfig.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     security.RefreshTokenCookie,
		Value:    tokens.RefreshToken,
		Path:     "/",
		MaxAge:   int(refreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieConfig.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthenticationHandler) clearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{security.AccessTokenCookie, security.RefreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.cookieConfig.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
