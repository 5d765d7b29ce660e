package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminDeleteBookingHandler "github.com/m04kA/WashE-BookingService/internal/api/handlers/admin_delete_booking"
	advanceStatusHandler "github.com/m04kA/WashE-BookingService/internal/api/handlers/advance_status"
	createBookingHandler "github.com/m04kA/WashE-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/WashE-BookingService/internal/api/handlers/delete_booking"
	getAllBookingsHandler "github.com/m04kA/WashE-BookingService/internal/api/handlers/get_all_bookings"
	getNotificationsHandler "github.com/m04kA/WashE-BookingService/internal/api/handlers/get_notifications"
	getSessionHandler "github.com/m04kA/WashE-BookingService/internal/api/handlers/get_session"
	getUserBookingsHandler "github.com/m04kA/WashE-BookingService/internal/api/handlers/get_user_bookings"
	guestSignInHandler "github.com/m04kA/WashE-BookingService/internal/api/handlers/guest_sign_in"
	signInHandler "github.com/m04kA/WashE-BookingService/internal/api/handlers/sign_in"
	signOutHandler "github.com/m04kA/WashE-BookingService/internal/api/handlers/sign_out"
	themeHandler "github.com/m04kA/WashE-BookingService/internal/api/handlers/theme"
	updateAdminCommentHandler "github.com/m04kA/WashE-BookingService/internal/api/handlers/update_admin_comment"
	updateStatusHandler "github.com/m04kA/WashE-BookingService/internal/api/handlers/update_status"
	"github.com/m04kA/WashE-BookingService/internal/api/middleware"
	"github.com/m04kA/WashE-BookingService/internal/config"
	"github.com/m04kA/WashE-BookingService/internal/domain"
	kvMemory "github.com/m04kA/WashE-BookingService/internal/infra/kvstore/memory"
	kvPostgres "github.com/m04kA/WashE-BookingService/internal/infra/kvstore/postgres"
	kvRedis "github.com/m04kA/WashE-BookingService/internal/infra/kvstore/redisstore"
	bookingsRepo "github.com/m04kA/WashE-BookingService/internal/infra/storage/bookings"
	sessionRepo "github.com/m04kA/WashE-BookingService/internal/infra/storage/session"
	"github.com/m04kA/WashE-BookingService/internal/integrations/authservice"
	adminService "github.com/m04kA/WashE-BookingService/internal/service/admin"
	authService "github.com/m04kA/WashE-BookingService/internal/service/auth"
	bookingsService "github.com/m04kA/WashE-BookingService/internal/service/bookings"
	"github.com/m04kA/WashE-BookingService/internal/service/statuswatch"
	createBookingUC "github.com/m04kA/WashE-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/WashE-BookingService/pkg/logger"
	"github.com/m04kA/WashE-BookingService/pkg/metrics"
	"github.com/m04kA/WashE-BookingService/pkg/storemetrics"
)

// kvStore общий контракт бэкендов хранилища
type kvStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

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

	log.Info("Starting WashE-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаем выбранный бэкенд хранилища
	var store kvStore
	switch cfg.Storage.Backend {
	case "memory":
		store = kvMemory.NewStore()
		log.Info("Using in-memory storage backend")

	case "redis":
		redisStore, err := kvRedis.Connect(context.Background(),
			cfg.Storage.Redis.Addr, cfg.Storage.Redis.Password, cfg.Storage.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		store = redisStore
		log.Info("Using redis storage backend (addr=%s, db=%d)", cfg.Storage.Redis.Addr, cfg.Storage.Redis.DB)

	case "postgres":
		db, err := sql.Open("postgres", cfg.Storage.Postgres.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Storage.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Storage.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Storage.Postgres.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		store = kvPostgres.NewStore(db)
		log.Info("Using postgres storage backend (host=%s, port=%d, db=%s)",
			cfg.Storage.Postgres.Host, cfg.Storage.Postgres.Port, cfg.Storage.Postgres.DBName)
	}

	if cfg.Metrics.Enabled {
		store = storemetrics.Wrap(store, metricsCollector)
		log.Info("Storage metrics collection enabled")
	}

	// Инициализируем репозитории
	bookingRepository := bookingsRepo.NewRepository(store, log)
	sessionRepository := sessionRepo.NewRepository(store, log)

	// Провайдер идентичности: встроенный демо-режим или внешний сервис
	var verifier authService.Verifier
	switch cfg.Auth.Mode {
	case "remote":
		verifier = authservice.NewClient(cfg.Auth.URL, time.Duration(cfg.Auth.Timeout)*time.Second, log)
		log.Info("Auth mode: remote (url=%s, timeout=%ds)", cfg.Auth.URL, cfg.Auth.Timeout)
	default:
		verifier = authservice.NewStub(cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
		log.Info("Auth mode: demo")
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(verifier, sessionRepository, cfg.Auth.AdminEmail, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	adminSvc := adminService.NewService(bookingRepository, store, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, log)

	// Наблюдатель за сменой статусов
	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()

	watcher := statuswatch.New(bookingRepository,
		time.Duration(cfg.Sync.IntervalSeconds)*time.Second, log)
	if cfg.Metrics.Enabled {
		watcher.OnEmit(func(n domain.StatusNotification) {
			metricsCollector.NotificationsTotal.WithLabelValues(string(n.Status)).Inc()
		})
	}
	go watcher.Start(watchCtx)

	// Инициализируем handlers
	signIn := signInHandler.NewHandler(authSvc, log)
	guestSignIn := guestSignInHandler.NewHandler(authSvc, log)
	signOut := signOutHandler.NewHandler(authSvc, log)
	getSession := getSessionHandler.NewHandler(authSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	advanceStatus := advanceStatusHandler.NewHandler(bookingSvc, log)
	getNotifications := getNotificationsHandler.NewHandler(watcher, log)
	themeH := themeHandler.NewHandler(sessionRepository, log)
	getAllBookings := getAllBookingsHandler.NewHandler(adminSvc, log)
	updateStatus := updateStatusHandler.NewHandler(adminSvc, log)
	updateAdminComment := updateAdminCommentHandler.NewHandler(adminSvc, log)
	adminDeleteBooking := adminDeleteBookingHandler.NewHandler(adminSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/sign-in", signIn.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/guest", guestSignIn.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/sign-out", signOut.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/session", getSession.Handle).Methods(http.MethodGet)

	// Тема оформления хранится на пользователя, но эндпоинт доступен
	// и до входа: выбор темы переживает выход из аккаунта
	api.HandleFunc("/preferences/theme", themeH.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/preferences/theme", themeH.HandleSet).Methods(http.MethodPut)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-Email header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/users/{ownerId}/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{ownerId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{ownerId}/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/users/{ownerId}/bookings/{bookingId}/advance", advanceStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{ownerId}/notifications", getNotifications.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют идентичность администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly(cfg.Auth.AdminEmail))

	admin.HandleFunc("/bookings", getAllBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/users/{ownerId}/bookings/{bookingId}/status", updateStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/users/{ownerId}/bookings/{bookingId}/comment", updateAdminComment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/users/{ownerId}/bookings/{bookingId}", adminDeleteBooking.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем цикл опроса статусов
	stopWatch()

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
