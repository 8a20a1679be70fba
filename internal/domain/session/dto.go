package session

// RegisterRequest - данные формы регистрации
type RegisterRequest struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Address  string         `json:"address"`
	Extra    map[string]any `json:"extra,omitempty"`
}

// ChangePasswordRequest - данные формы смены пароля
type ChangePasswordRequest struct {
	ID              string `json:"id"`
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
