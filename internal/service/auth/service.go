package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/moonbarber/MB-SiteService/internal/domain"
	adminRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/adminuser"
	"github.com/moonbarber/MB-SiteService/internal/service/auth/models"
)

// Claims полезная нагрузка токена админки
type Claims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service сервис аутентификации админки
type Service struct {
	userRepo  AdminUserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo AdminUserRepository, jwtSecret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login проверяет логин и пароль и выдает JWT.
// Отличия между "нет пользователя" и "неверный пароль" наружу не раскрываем.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, adminRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown username=%q", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username=%q: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for username=%q", req.Username)
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		s.logger.Error("Login: failed to sign token for username=%q: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn("Login: failed to update last login for user id=%d: %v", user.ID, err)
	}

	s.logger.Info("Login: successful login username=%q", req.Username)

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  user.Username,
	}, nil
}

// VerifyToken разбирает и проверяет JWT, возвращая claims
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// EnsureDefaultAdmin создает администратора по умолчанию при пустой таблице.
// Вызывается один раз при старте сервиса.
func (s *Service) EnsureDefaultAdmin(ctx context.Context, username, email, password string) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("%w: EnsureDefaultAdmin - count users: %v", ErrInternal, err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: EnsureDefaultAdmin - hash password: %v", ErrInternal, err)
	}

	user := &domain.AdminUser{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("%w: EnsureDefaultAdmin - create user: %v", ErrInternal, err)
	}

	s.logger.Info("EnsureDefaultAdmin: created default admin username=%q", username)
	return nil
}
