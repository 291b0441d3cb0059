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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	adminLoginHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/admin_login"
	bookSlotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/book_slot"
	generateInvoiceHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/generate_invoice"
	getLogsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_logs"
	getSlotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_slots"
	healthCheckHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/health_check"
	markOccupiedHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/mark_occupied"
	resetSlotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/reset_slot"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/migrations"
	logRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parkinglog"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	authService "github.com/m04kA/SMC-ParkingService/internal/service/auth"
	ledgerService "github.com/m04kA/SMC-ParkingService/internal/service/ledger"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

const configPath = "config.toml"

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from %s (slots=%d, rate_per_hour=%.2f)",
		configPath, cfg.Parking.SlotCount, cfg.Parking.RatePerHour)

	// Инициализируем метрики (если включены). При выключенных метриках collector = nil
	var metricsCollector *metrics.Metrics
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

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	defer cancelStartup()

	// Проверяем соединение
	if err := db.PingContext(startupCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	migrator, err := migrations.NewMigrator(db, log)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Up(startupCtx); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if version, err := migrator.Version(startupCtx); err == nil {
		log.Info("Database schema version: %d", version)
	}

	// Оборачиваем БД для замера запросов
	wrappedDB := dbmetrics.Wrap(db, metricsCollector)
	if cfg.Metrics.Enabled {
		if err := dbmetrics.RegisterPoolCollector(prometheus.DefaultRegisterer, db, cfg.Database.DBName); err != nil {
			log.Warn("Failed to register connection pool collector: %v", err)
		}
	}

	// Инициализируем репозитории
	slotRepository := slotRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	logRepository := logRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	ledgerSvc := ledgerService.NewService(
		slotRepository,
		bookingRepository,
		logRepository,
		txMgr,
		domain.Tariff{RatePerHour: cfg.Parking.RatePerHour},
		metricsCollector,
		log,
	)
	authSvc := authService.NewService(authService.Config{
		Username:     cfg.Admin.Username,
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
		JWTSecret:    cfg.Admin.JWTSecret,
		TokenTTL:     cfg.Admin.TokenTTL(),
	}, log)

	// Создаём слоты при первом запуске
	if err := ledgerSvc.EnsureSlots(startupCtx, cfg.Parking.SlotCount); err != nil {
		log.Fatal("Failed to initialize parking slots: %v", err)
	}

	// Инициализируем handlers
	getSlots := getSlotsHandler.NewHandler(ledgerSvc, log)
	bookSlot := bookSlotHandler.NewHandler(ledgerSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	getLogs := getLogsHandler.NewHandler(ledgerSvc, log)
	markOccupied := markOccupiedHandler.NewHandler(ledgerSvc, log)
	generateInvoice := generateInvoiceHandler.NewHandler(ledgerSvc, log)
	resetSlot := resetSlotHandler.NewHandler(ledgerSvc, log)
	healthCheck := healthCheckHandler.NewHandler(db, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = handlers.MethodNotAllowed()
	r.NotFoundHandler = handlers.NotFound()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", healthCheck.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/book", bookSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (X-Admin-Token или Authorization: Bearer)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, log))

	admin.HandleFunc("/logs", getLogs.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/mark-occupied", markOccupied.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/generate-invoice", generateInvoice.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/reset-slot", resetSlot.Handle).Methods(http.MethodPost)

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
