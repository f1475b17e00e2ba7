package admin_logout

// AuthService интерфейс сервиса аутентификации
type AuthService interface {
	Logout(token string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
