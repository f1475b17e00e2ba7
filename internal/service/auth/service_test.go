package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
	adminRepo "github.com/dvbeauty/DVB-BookingService/internal/infra/storage/adminuser"
)

type fakeAdminRepo struct {
	users   map[string]*domain.AdminUser
	created []*domain.AdminUser
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{users: make(map[string]*domain.AdminUser)}
}

func (f *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, adminRepo.ErrAdminNotFound
	}
	return user, nil
}

func (f *fakeAdminRepo) Create(ctx context.Context, u *domain.AdminUser) (*domain.AdminUser, error) {
	created := *u
	created.ID = int64(len(f.users) + 1)
	f.users[u.Username] = &created
	f.created = append(f.created, &created)
	return &created, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newAuthService(t *testing.T, repo *fakeAdminRepo) *Service {
	t.Helper()
	return NewService(repo, NewSessionStore(time.Hour), noopLogger{})
}

func addAdmin(t *testing.T, repo *fakeAdminRepo, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users[username] = &domain.AdminUser{ID: 1, Username: username, PasswordHash: string(hash)}
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeAdminRepo()
	addAdmin(t, repo, "admin", "secret")
	svc := newAuthService(t, repo)

	token, err := svc.Login(context.Background(), "admin", "secret")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, svc.IsAdmin(token))
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeAdminRepo()
	addAdmin(t, repo, "admin", "secret")
	svc := newAuthService(t, repo)

	_, err := svc.Login(context.Background(), "admin", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	repo := newFakeAdminRepo()
	addAdmin(t, repo, "admin", "secret")
	svc := newAuthService(t, repo)

	_, errUnknown := svc.Login(context.Background(), "ghost", "secret")
	_, errWrongPass := svc.Login(context.Background(), "admin", "wrong")

	// Одинаковая ошибка не раскрывает существование аккаунта
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.Equal(t, errWrongPass, errUnknown)
}

func TestLogout_RevokesSession(t *testing.T) {
	repo := newFakeAdminRepo()
	addAdmin(t, repo, "admin", "secret")
	svc := newAuthService(t, repo)

	token, err := svc.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	svc.Logout(token)

	assert.False(t, svc.IsAdmin(token))
}

func TestEnsureDefaultAdmin_CreatesOnce(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := newAuthService(t, repo)

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background(), "admin", "secret"))
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background(), "admin", "secret"))

	assert.Len(t, repo.created, 1)

	// Пароль хранится как bcrypt-хеш, не в открытом виде
	user := repo.users["admin"]
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
}

func TestEnsureDefaultAdmin_LoginAfterBootstrap(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := newAuthService(t, repo)

	require.NoError(t, svc.EnsureDefaultAdmin(context.Background(), "admin", "secret"))

	token, err := svc.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.True(t, svc.IsAdmin(token))
}
