package dto

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserName string `json:"user_name"`
}
