package handler

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type resetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type updatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
	Token    string `json:"token"    validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}
