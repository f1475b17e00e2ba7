package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
	adminRepo "github.com/dvbeauty/DVB-BookingService/internal/infra/storage/adminuser"
)

// Service сервис администраторского доступа
type Service struct {
	repo     AdminUserRepository
	sessions *SessionStore
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(repo AdminUserRepository, sessions *SessionStore, logger Logger) *Service {
	return &Service{repo: repo, sessions: sessions, logger: logger}
}

// Login проверяет логин/пароль и выдает токен сессии
// При неверном имени пользователя и неверном пароле возвращается одна и
// та же ошибка, чтобы не раскрывать существование аккаунта
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, adminRepo.ErrAdminNotFound) {
		s.logger.Warn("Login: unknown admin username=%s", username)
		return "", ErrInvalidCredentials
	}
	if err != nil {
		s.logger.Error("Login: repository error for username=%s: %v", username, err)
		return "", fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: invalid password for username=%s", username)
		return "", ErrInvalidCredentials
	}

	token := s.sessions.Issue()
	s.logger.Info("Login: admin username=%s logged in", username)
	return token, nil
}

// Logout завершает сессию по токену
func (s *Service) Logout(token string) {
	s.sessions.Revoke(token)
}

// IsAdmin проверяет валидность токена сессии
func (s *Service) IsAdmin(token string) bool {
	return s.sessions.Valid(token)
}

// EnsureDefaultAdmin создает администратора из конфигурации, если его нет
// Вызывается при старте сервиса
func (s *Service) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, adminRepo.ErrAdminNotFound) {
		return fmt.Errorf("%w: EnsureDefaultAdmin - repository error: %v", ErrInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: EnsureDefaultAdmin - hash password: %v", ErrInternal, err)
	}

	if _, err := s.repo.Create(ctx, &domain.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
	}); err != nil {
		return fmt.Errorf("%w: EnsureDefaultAdmin - create admin: %v", ErrInternal, err)
	}

	s.logger.Info("EnsureDefaultAdmin: created admin user %s", username)
	return nil
}
