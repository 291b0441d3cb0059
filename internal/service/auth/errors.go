package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken возвращается, когда токен отсутствует, подделан или истёк
	ErrInvalidToken = errors.New("invalid token")

	// ErrValidation возвращается при пустом логине или пароле
	ErrValidation = errors.New("username and password required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
