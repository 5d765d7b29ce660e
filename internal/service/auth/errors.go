package auth

import "errors"

var (
	// ErrNotSignedIn возвращается, когда текущей сессии нет
	ErrNotSignedIn = errors.New("not signed in")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth service: internal error")
)
