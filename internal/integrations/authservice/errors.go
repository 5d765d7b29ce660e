package authservice

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль,
	// а также когда учетная запись не существует (не раскрываем, что именно не так)
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmptyCredentials возвращается, когда email или пароль не заполнены
	ErrEmptyCredentials = errors.New("please enter an email and password")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("authservice client: invalid response")
)
