package middleware

import "net/http"

// SessionCookie имя cookie админ-сессии
const SessionCookie = "dvb_admin"

// SessionChecker интерфейс проверки админ-сессии
type SessionChecker interface {
	IsAdmin(token string) bool
}

// AdminAuth пропускает только запросы с валидной админ-сессией,
// остальных отправляет на страницу входа
func AdminAuth(sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || !sessions.IsAdmin(cookie.Value) {
				http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
