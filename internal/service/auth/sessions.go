package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore хранилище админ-сессий в памяти
// Токен - случайный UUID; сессия живет TTL с момента выдачи
// При перезапуске сервиса сессии теряются, администратор логинится заново
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]time.Time
	now      func() time.Time
}

// NewSessionStore создает новое хранилище сессий
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Issue выдает новый токен сессии
func (s *SessionStore) Issue() string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = s.now().Add(s.ttl)
	s.prune()

	return token
}

// Valid проверяет, что токен существует и не истек
func (s *SessionStore) Valid(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.sessions[token]
	if !ok {
		return false
	}
	if s.now().After(expiresAt) {
		delete(s.sessions, token)
		return false
	}
	return true
}

// Revoke удаляет сессию (logout)
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// prune удаляет истекшие сессии; вызывается под мьютексом
func (s *SessionStore) prune() {
	now := s.now()
	for token, expiresAt := range s.sessions {
		if now.After(expiresAt) {
			delete(s.sessions, token)
		}
	}
}
