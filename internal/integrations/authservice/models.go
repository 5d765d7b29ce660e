package authservice

// Identity учетная запись, возвращаемая сервисом проверки учетных данных
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// signInRequest тело запроса на вход
type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ErrorResponse модель ошибки от сервиса проверки учетных данных
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
