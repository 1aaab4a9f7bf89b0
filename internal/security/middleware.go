package security

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"video-hosting-server/internal/model"
	"video-hosting-server/internal/util"
)

type contextKey string

const (
	UserContextKey contextKey = "user"

	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// AccountResolver превращает предъявленный access токен в аккаунт
type AccountResolver interface {
	VerifyAccess(ctx context.Context, accessToken string) (*model.User, error)
}

// JWTMiddleware извлекает access токен из cookie (приоритет) либо из
// заголовка Authorization, резолвит аккаунт и кладёт его в context.
// Любая причина отказа снаружи выглядит одинаково: 401
func JWTMiddleware(resolver AccountResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := ExtractAccessToken(request)
			if token == "" {
				util.HandleError(writer, "не авторизован", http.StatusUnauthorized)
				return
			}

			user, err := resolver.VerifyAccess(request.Context(), token)
			if err != nil {
				util.Logger().Infof("отказ в авторизации: %v", err)
				util.HandleError(writer, "не авторизован", http.StatusUnauthorized)
				return
			}

			req := request.WithContext(context.WithValue(request.Context(), UserContextKey, user))
			next.ServeHTTP(writer, req)
		})
	}
}

// OptionalJWTMiddleware : для публичных маршрутов, где личность зрителя
// лишь обогащает ответ (is_liked, история просмотров). Невалидный или
// отсутствующий токен не ошибка, запрос идёт дальше анонимно
func OptionalJWTMiddleware(resolver AccountResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := ExtractAccessToken(request)
			if token != "" {
				if user, err := resolver.VerifyAccess(request.Context(), token); err == nil {
					request = request.WithContext(
						context.WithValue(request.Context(), UserContextKey, user))
				}
			}
			next.ServeHTTP(writer, request)
		})
	}
}

// ExtractAccessToken : cookie accessToken имеет приоритет над заголовком
func ExtractAccessToken(request *http.Request) string {
	if cookie, err := request.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authorizationHeader := request.Header.Get("Authorization")
	if strings.HasPrefix(authorizationHeader, "Bearer ") {
		return strings.TrimPrefix(authorizationHeader, "Bearer ")
	}

	return ""
}

// GetUserFromContext возвращает аккаунт, положенный middleware-ом
func GetUserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(UserContextKey).(*model.User)
	if !ok || user == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return user, nil
}
