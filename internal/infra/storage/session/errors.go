package session

import "errors"

var (
	// ErrStorage возвращается при ошибках обращения к key-value хранилищу
	ErrStorage = errors.New("session.repository: storage error")

	// ErrEncode возвращается при ошибке сериализации сессии
	ErrEncode = errors.New("session.repository: failed to encode session")

	// ErrInvalidTheme возвращается при попытке сохранить неизвестную тему
	ErrInvalidTheme = errors.New("session.repository: invalid theme value")
)
