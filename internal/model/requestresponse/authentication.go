package requestresponse

// LoginRequest : тело запроса на аутентификацию.
// Можно передать username или email (хотя бы одно поле)
type LoginRequest struct {
	Username string `json:"username" example:"user1"`
	Email    string `json:"email" example:"user1@example.com"`
	Password string `json:"password" example:"P@ssw0rd123" validate:"required"`
}

// RefreshTokenRequest : запрос на обновление пары токенов.
// Токен можно передать в теле либо в cookie refreshToken
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzUxMiJ9..."`
}

// ChangePasswordRequest : тело запроса на смену пароля
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}
