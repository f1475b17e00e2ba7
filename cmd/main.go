package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminAddGalleryHandler "github.com/dvbeauty/DVB-BookingService/internal/api/handlers/admin_add_gallery"
	adminCreatePostHandler "github.com/dvbeauty/DVB-BookingService/internal/api/handlers/admin_create_post"
	adminCreateServiceHandler "github.com/dvbeauty/DVB-BookingService/internal/api/handlers/admin_create_service"
	adminCreateSlotHandler "github.com/dvbeauty/DVB-BookingService/internal/api/handlers/admin_create_slot"
	adminLoginHandler "github.com/dvbeauty/DVB-BookingService/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/dvbeauty/DVB-BookingService/internal/api/handlers/admin_logout"
	adminPanelHandler "github.com/dvbeauty/DVB-BookingService/internal/api/handlers/admin_panel"
	createBookingHandler "github.com/dvbeauty/DVB-BookingService/internal/api/handlers/create_booking"
	createCommentHandler "github.com/dvbeauty/DVB-BookingService/internal/api/handlers/create_comment"
	customerLookupHandler "github.com/dvbeauty/DVB-BookingService/internal/api/handlers/customer_lookup"
	renderHomeHandler "github.com/dvbeauty/DVB-BookingService/internal/api/handlers/render_home"
	viewPostHandler "github.com/dvbeauty/DVB-BookingService/internal/api/handlers/view_post"
	"github.com/dvbeauty/DVB-BookingService/internal/api/middleware"
	"github.com/dvbeauty/DVB-BookingService/internal/api/render"
	"github.com/dvbeauty/DVB-BookingService/internal/config"
	adminUserRepo "github.com/dvbeauty/DVB-BookingService/internal/infra/storage/adminuser"
	bookingRepo "github.com/dvbeauty/DVB-BookingService/internal/infra/storage/booking"
	customerRepo "github.com/dvbeauty/DVB-BookingService/internal/infra/storage/customer"
	galleryRepo "github.com/dvbeauty/DVB-BookingService/internal/infra/storage/gallery"
	postRepo "github.com/dvbeauty/DVB-BookingService/internal/infra/storage/post"
	serviceRepo "github.com/dvbeauty/DVB-BookingService/internal/infra/storage/service"
	slotRepo "github.com/dvbeauty/DVB-BookingService/internal/infra/storage/slot"
	authService "github.com/dvbeauty/DVB-BookingService/internal/service/auth"
	catalogService "github.com/dvbeauty/DVB-BookingService/internal/service/catalog"
	contentService "github.com/dvbeauty/DVB-BookingService/internal/service/content"
	customersService "github.com/dvbeauty/DVB-BookingService/internal/service/customers"
	createBookingUC "github.com/dvbeauty/DVB-BookingService/internal/usecase/create_booking"
	lookupCustomerUC "github.com/dvbeauty/DVB-BookingService/internal/usecase/lookup_customer"
	"github.com/dvbeauty/DVB-BookingService/pkg/dbmetrics"
	"github.com/dvbeauty/DVB-BookingService/pkg/logger"
	"github.com/dvbeauty/DVB-BookingService/pkg/metrics"
	"github.com/dvbeauty/DVB-BookingService/pkg/simpletxmanager"
	"github.com/dvbeauty/DVB-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting DVB-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции (если включено)
	if cfg.Database.RunMigrations {
		if err := runMigrations(cfg); err != nil {
			log.Fatal("Failed to run migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Загружаем шаблоны страниц
	renderer, err := render.New(cfg.Templates.Dir)
	if err != nil {
		log.Fatal("Failed to load templates: %v", err)
	}
	log.Info("Templates loaded from %s", cfg.Templates.Dir)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository      *slotRepo.Repository
		bookingRepository   *bookingRepo.Repository
		customerRepository  *customerRepo.Repository
		serviceRepository   *serviceRepo.Repository
		galleryRepository   *galleryRepo.Repository
		postRepository      *postRepo.Repository
		adminUserRepository *adminUserRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		galleryRepository = galleryRepo.NewRepository(wrappedDB)
		postRepository = postRepo.NewRepository(wrappedDB)
		adminUserRepository = adminUserRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		galleryRepository = galleryRepo.NewRepository(db)
		postRepository = postRepo.NewRepository(db)
		adminUserRepository = adminUserRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	customersSvc := customersService.NewService(customerRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, slotRepository, log)
	contentSvc := contentService.NewService(galleryRepository, postRepository, bookingRepository, log)

	sessionTTL := time.Duration(cfg.Admin.SessionTTLMinutes) * time.Minute
	sessions := authService.NewSessionStore(sessionTTL)
	authSvc := authService.NewService(adminUserRepository, sessions, log)

	// Создаем администратора из конфигурации, если его еще нет
	if err := authSvc.EnsureDefaultAdmin(context.Background(), cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Fatal("Failed to ensure default admin: %v", err)
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.New(
		slotRepository,
		bookingRepository,
		serviceRepository,
		customersSvc,
		txMgr,
		log,
	)
	lookupCustomerUseCase := lookupCustomerUC.New(customersSvc, log)

	// Инициализируем handlers
	renderHome := renderHomeHandler.NewHandler(catalogSvc, contentSvc, renderer, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, renderHome, log)
	customerLookup := customerLookupHandler.NewHandler(lookupCustomerUseCase, log)
	viewPost := viewPostHandler.NewHandler(contentSvc, renderer, log)
	createComment := createCommentHandler.NewHandler(contentSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, renderer, sessionTTL, log)
	adminLogout := adminLogoutHandler.NewHandler(authSvc, log)
	adminPanel := adminPanelHandler.NewHandler(catalogSvc, contentSvc, renderer, log)
	adminCreateSlot := adminCreateSlotHandler.NewHandler(catalogSvc, log)
	adminCreateService := adminCreateServiceHandler.NewHandler(catalogSvc, log)
	adminCreatePost := adminCreatePostHandler.NewHandler(contentSvc, log)
	adminAddGallery := adminAddGalleryHandler.NewHandler(contentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Публичная страница с формой записи
	r.HandleFunc("/", renderHome.Handle).Methods(http.MethodGet)

	// Создание бронирования с формы записи
	r.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Автоподстановка имени клиента по контакту
	r.HandleFunc("/api/customer-lookup", customerLookup.Handle).Methods(http.MethodGet)

	// Блог и комментарии
	r.HandleFunc("/blog/{id}", viewPost.Handle).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id}/comments", createComment.Handle).Methods(http.MethodPost)

	// Вход и выход администратора
	r.HandleFunc("/admin/login", adminLogin.HandleForm).Methods(http.MethodGet)
	r.HandleFunc("/admin/login", adminLogin.HandleSubmit).Methods(http.MethodPost)
	r.HandleFunc("/admin/logout", adminLogout.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют админ-сессии)
	// ============================================================

	protected := r.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.AdminAuth(authSvc))

	// Админ-панель
	protected.HandleFunc("", adminPanel.Handle).Methods(http.MethodGet)

	// Управление расписанием и каталогом
	protected.HandleFunc("/slots", adminCreateSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services", adminCreateService.Handle).Methods(http.MethodPost)

	// Управление контентом
	protected.HandleFunc("/posts", adminCreatePost.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/gallery/instagram", adminAddGallery.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// runMigrations применяет миграции схемы из каталога migrations
func runMigrations(cfg *config.Config) error {
	mig, err := migrate.New("file://"+cfg.Database.MigrationsPath, cfg.Database.MigrateURL())
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer mig.Close()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
