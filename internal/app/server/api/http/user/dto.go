package user

type registerInput struct {
	Body RegisterRequest
}

type RegisterRequest struct {
	Username string `json:"username" minLength:"1" doc:"Отображаемое имя"`
	Email    string `json:"email" minLength:"1" format:"email" doc:"Email, уникален"`
	Password string `json:"password" minLength:"1" maxLength:"72" doc:"Пароль"`
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID     int    `json:"user_id"`
	Status string `json:"status"`
}

type loginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	Email    string `json:"email" minLength:"1"`
	Password string `json:"password" minLength:"1"`
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type" example:"Bearer"`
	ExpiresIn int    `json:"expires_in" doc:"Время жизни токена в секундах"`
}
