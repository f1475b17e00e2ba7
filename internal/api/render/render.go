package render

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
	"github.com/dvbeauty/DVB-BookingService/internal/service/content"
)

// Renderer рендерит HTML-страницы сайта
// Шаблоны парсятся один раз при старте; html/template экранирует
// пользовательский ввод (имена, комментарии, заметки)
type Renderer struct {
	templates *template.Template
}

// New создает рендерер, загружая все шаблоны из каталога
func New(dir string) (*Renderer, error) {
	tmpl, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("render: parse templates from %s: %w", dir, err)
	}
	return &Renderer{templates: tmpl}, nil
}

// HomeData данные публичной страницы
// Errors - сообщения отклоненной заявки, Success - флаг после редиректа
type HomeData struct {
	Services []*domain.Service
	Slots    []*domain.SlotWithCount
	Gallery  []*domain.GalleryImage
	Posts    []*domain.BlogPost
	Errors   []string
	Success  bool
}

// PostData данные страницы поста
type PostData struct {
	Post     *domain.BlogPost
	Comments []*domain.Comment
}

// AdminLoginData данные страницы входа администратора
type AdminLoginData struct {
	Error string
}

// AdminDashboardData данные админ-панели
type AdminDashboardData struct {
	Bookings []*domain.AdminBookingRow
	Slots    []*domain.AvailabilitySlot
	Services []*domain.Service
	Posts    []*domain.BlogPost
}

// Home рендерит публичную страницу
func (r *Renderer) Home(w http.ResponseWriter, status int, data HomeData) error {
	return r.render(w, status, "home.html", data)
}

// Post рендерит страницу поста с комментариями
func (r *Renderer) Post(w http.ResponseWriter, status int, pwc *content.PostWithComments) error {
	return r.render(w, status, "post.html", PostData{Post: pwc.Post, Comments: pwc.Comments})
}

// AdminLogin рендерит страницу входа администратора
func (r *Renderer) AdminLogin(w http.ResponseWriter, status int, data AdminLoginData) error {
	return r.render(w, status, "admin_login.html", data)
}

// AdminDashboard рендерит админ-панель
func (r *Renderer) AdminDashboard(w http.ResponseWriter, status int, data AdminDashboardData) error {
	return r.render(w, status, "admin_dashboard.html", data)
}

func (r *Renderer) render(w http.ResponseWriter, status int, name string, data interface{}) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render: execute %s: %w", name, err)
	}
	return nil
}
