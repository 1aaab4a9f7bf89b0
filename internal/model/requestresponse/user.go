package requestresponse

// RegisterRequest : поля multipart-формы регистрации.
// Файлы avatar (обязательный) и coverImage (необязательный) идут отдельными частями
type RegisterRequest struct {
	Username string `json:"username" example:"newuser" validate:"required,min=3,max=30,alphanum"`
	Email    string `json:"email" example:"newuser@example.com" validate:"required,email"`
	FullName string `json:"fullName" example:"New User" validate:"required"`
	Password string `json:"password" example:"P@ssw0rd123" validate:"required,min=8"`
}

// UpdateAccountRequest : тело запроса на обновление профиля
type UpdateAccountRequest struct {
	FullName string `json:"fullName" example:"Updated Name"`
	Email    string `json:"email" example:"updated@example.com" validate:"omitempty,email"`
}
