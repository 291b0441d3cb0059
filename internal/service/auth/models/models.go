package models

import "time"

// LoginRequest запрос на вход администратора
type LoginRequest struct {
	Username string
	Password string
}

// LoginResponse выданный токен администратора
type LoginResponse struct {
	Token     string
	ExpiresAt time.Time
}
