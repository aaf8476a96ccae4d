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
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	activityHandler "github.com/moonbarber/MB-SiteService/internal/api/handlers/activity"
	createBookingHandler "github.com/moonbarber/MB-SiteService/internal/api/handlers/create_booking"
	dashboardHandler "github.com/moonbarber/MB-SiteService/internal/api/handlers/dashboard"
	exportBookingsHandler "github.com/moonbarber/MB-SiteService/internal/api/handlers/export_bookings"
	galleryHandler "github.com/moonbarber/MB-SiteService/internal/api/handlers/gallery"
	getAvailableSlotsHandler "github.com/moonbarber/MB-SiteService/internal/api/handlers/get_available_slots"
	listBookingsHandler "github.com/moonbarber/MB-SiteService/internal/api/handlers/list_bookings"
	loginHandler "github.com/moonbarber/MB-SiteService/internal/api/handlers/login"
	reviewsHandler "github.com/moonbarber/MB-SiteService/internal/api/handlers/reviews"
	servicesHandler "github.com/moonbarber/MB-SiteService/internal/api/handlers/services"
	settingsHandler "github.com/moonbarber/MB-SiteService/internal/api/handlers/settings"
	teamHandler "github.com/moonbarber/MB-SiteService/internal/api/handlers/team"
	updateBookingStatusHandler "github.com/moonbarber/MB-SiteService/internal/api/handlers/update_booking_status"
	"github.com/moonbarber/MB-SiteService/internal/api/middleware"
	"github.com/moonbarber/MB-SiteService/internal/config"
	activityRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/activity"
	adminUserRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/adminuser"
	bookingRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/booking"
	galleryRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/gallery"
	reviewRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/review"
	serviceRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/service"
	settingsRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/settings"
	teamRepo "github.com/moonbarber/MB-SiteService/internal/infra/storage/team"
	authService "github.com/moonbarber/MB-SiteService/internal/service/auth"
	bookingsService "github.com/moonbarber/MB-SiteService/internal/service/bookings"
	catalogService "github.com/moonbarber/MB-SiteService/internal/service/catalog"
	contentService "github.com/moonbarber/MB-SiteService/internal/service/content"
	dashboardService "github.com/moonbarber/MB-SiteService/internal/service/dashboard"
	createBookingUC "github.com/moonbarber/MB-SiteService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/moonbarber/MB-SiteService/internal/usecase/get_available_slots"
	"github.com/moonbarber/MB-SiteService/pkg/dbmetrics"
	"github.com/moonbarber/MB-SiteService/pkg/logger"
	"github.com/moonbarber/MB-SiteService/pkg/metrics"
	"github.com/moonbarber/MB-SiteService/pkg/simpletxmanager"
	"github.com/moonbarber/MB-SiteService/pkg/txmanager"
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

	log.Info("Starting MB-SiteService...")
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

	// Применяем миграции схемы
	if err := runMigrations(db, cfg.Migration.Path); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Каталог для загружаемых фото галереи
	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		log.Fatal("Failed to create uploads dir %s: %v", cfg.Uploads.Dir, err)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		serviceRepository   *serviceRepo.Repository
		teamRepository      *teamRepo.Repository
		galleryRepository   *galleryRepo.Repository
		reviewRepository    *reviewRepo.Repository
		settingsRepository  *settingsRepo.Repository
		activityRepository  *activityRepo.Repository
		adminUserRepository *adminUserRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		teamRepository = teamRepo.NewRepository(wrappedDB)
		galleryRepository = galleryRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		activityRepository = activityRepo.NewRepository(wrappedDB)
		adminUserRepository = adminUserRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		teamRepository = teamRepo.NewRepository(db)
		galleryRepository = galleryRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		activityRepository = activityRepo.NewRepository(db)
		adminUserRepository = adminUserRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(
		adminUserRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, activityRepository, txMgr, log)
	catalogSvc := catalogService.NewService(serviceRepository, teamRepository, activityRepository, log)
	contentSvc := contentService.NewService(
		galleryRepository,
		reviewRepository,
		settingsRepository,
		activityRepository,
		contentService.UploadsConfig{
			Dir:        cfg.Uploads.Dir,
			MaxSizeMB:  cfg.Uploads.MaxSizeMB,
			PublicPath: cfg.Uploads.PublicPath,
		},
		log,
	)
	dashboardSvc := dashboardService.NewService(bookingRepository, serviceRepository, teamRepository, log)

	// Создаем дефолтного администратора при первом запуске
	if err := authSvc.EnsureDefaultAdmin(
		context.Background(),
		cfg.Auth.DefaultAdminUsername,
		cfg.Auth.DefaultAdminEmail,
		cfg.Auth.DefaultAdminPassword,
	); err != nil {
		log.Fatal("Failed to ensure default admin: %v", err)
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		teamRepository,
		activityRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, teamRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	services := servicesHandler.NewHandler(catalogSvc, log)
	team := teamHandler.NewHandler(catalogSvc, log)
	gallery := galleryHandler.NewHandler(contentSvc, log)
	reviews := reviewsHandler.NewHandler(contentSvc, log)
	settings := settingsHandler.NewHandler(contentSvc, log)
	dashboard := dashboardHandler.NewHandler(dashboardSvc, log)
	activity := activityHandler.NewHandler(contentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Загруженные фото галереи
	r.PathPrefix(cfg.Uploads.PublicPath + "/").Handler(
		http.StripPrefix(cfg.Uploads.PublicPath+"/", http.FileServer(http.Dir(cfg.Uploads.Dir))),
	).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/login", login.Handle).Methods(http.MethodPost)

	api.HandleFunc("/services", services.HandlePublicList).Methods(http.MethodGet)
	api.HandleFunc("/team", team.HandlePublicList).Methods(http.MethodGet)
	api.HandleFunc("/gallery", gallery.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/reviews", reviews.HandlePublicList).Methods(http.MethodGet)
	api.HandleFunc("/contact", settings.HandlePublicContact).Methods(http.MethodGet)

	// Свободные слоты мастера на дату
	api.HandleFunc("/available-times", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи клиентом
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(authSvc))

	// --- Записи ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/status", updateBookingStatus.Handle).Methods(http.MethodPut)

	// --- Услуги ---
	admin.HandleFunc("/services", services.HandleAdminList).Methods(http.MethodGet)
	admin.HandleFunc("/services", services.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", services.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", services.HandleDelete).Methods(http.MethodDelete)

	// --- Команда ---
	admin.HandleFunc("/team", team.HandleAdminList).Methods(http.MethodGet)
	admin.HandleFunc("/team", team.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/team/{id}", team.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/team/{id}", team.HandleDelete).Methods(http.MethodDelete)

	// --- Галерея ---
	admin.HandleFunc("/gallery", gallery.HandleUpload).Methods(http.MethodPost)
	admin.HandleFunc("/gallery/{id}", gallery.HandleDelete).Methods(http.MethodDelete)

	// --- Отзывы ---
	admin.HandleFunc("/reviews", reviews.HandleAdminList).Methods(http.MethodGet)
	admin.HandleFunc("/reviews/{id}/approval", reviews.HandleUpdateApproval).Methods(http.MethodPut)
	admin.HandleFunc("/reviews/{id}", reviews.HandleDelete).Methods(http.MethodDelete)

	// --- Настройки ---
	admin.HandleFunc("/settings", settings.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/settings", settings.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/settings/hours", settings.HandleUpdateHours).Methods(http.MethodPut)

	// --- Дашборд и журнал ---
	admin.HandleFunc("/dashboard", dashboard.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/activity", activity.Handle).Methods(http.MethodGet)

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

// runMigrations применяет миграции из каталога migrationsPath
func runMigrations(db *sql.DB, migrationsPath string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
