package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ParkingService/internal/service/auth/models"
)

const issuer = "smc-parking"

// Config учётные данные администратора и параметры токена
type Config struct {
	Username string
	// PasswordHash bcrypt-хеш пароля. Если пуст, используется Password.
	PasswordHash string
	Password     string
	JWTSecret    string
	TokenTTL     time.Duration
}

// Service выдаёт и проверяет токены администратора
type Service struct {
	cfg          Config
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(cfg Config, logger Logger) *Service {
	return &Service{
		cfg:          cfg,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Login проверяет учётные данные и выдаёт подписанный токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrValidation
	}

	if !s.checkCredentials(req.Username, req.Password) {
		s.logger.Warn("Login: invalid credentials for username=%q", req.Username)
		return nil, ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	expiresAt := now.Add(s.cfg.TokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   req.Username,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.logger.Error("Login: failed to sign token: %v", err)
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: issued admin token for username=%q, expires_at=%s", req.Username, expiresAt.Format(time.RFC3339))

	return &models.LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt.UTC(),
	}, nil
}

// VerifyToken проверяет подпись и срок действия токена, возвращает имя администратора
func (s *Service) VerifyToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.timeProvider.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: token expired", ErrInvalidToken)
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject != s.cfg.Username {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

func (s *Service) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) == 1

	var passOK bool
	if s.cfg.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Password)) == 1
	}

	return userOK && passOK
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
