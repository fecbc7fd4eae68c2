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

	cancelReservationHandler "github.com/m04kA/SMC-StringingService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-StringingService/internal/api/handlers/create_reservation"
	getDayScheduleHandler "github.com/m04kA/SMC-StringingService/internal/api/handlers/get_day_schedule"
	getReservationHandler "github.com/m04kA/SMC-StringingService/internal/api/handlers/get_reservation"
	getSettingsHandler "github.com/m04kA/SMC-StringingService/internal/api/handlers/get_settings"
	getSlotSummaryHandler "github.com/m04kA/SMC-StringingService/internal/api/handlers/get_slot_summary"
	updateSettingsHandler "github.com/m04kA/SMC-StringingService/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-StringingService/internal/api/middleware"
	"github.com/m04kA/SMC-StringingService/internal/config"
	reservationRepo "github.com/m04kA/SMC-StringingService/internal/infra/storage/reservation"
	settingsRepo "github.com/m04kA/SMC-StringingService/internal/infra/storage/settings"
	reservationsService "github.com/m04kA/SMC-StringingService/internal/service/reservations"
	settingsService "github.com/m04kA/SMC-StringingService/internal/service/settings"
	createReservationUC "github.com/m04kA/SMC-StringingService/internal/usecase/create_reservation"
	getDayScheduleUC "github.com/m04kA/SMC-StringingService/internal/usecase/get_day_schedule"
	getSlotSummaryUC "github.com/m04kA/SMC-StringingService/internal/usecase/get_slot_summary"
	"github.com/m04kA/SMC-StringingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StringingService/pkg/logger"
	"github.com/m04kA/SMC-StringingService/pkg/metrics"
	"github.com/m04kA/SMC-StringingService/pkg/txmanager"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

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

	log.Info("Starting SMC-StringingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены). nil-сборщик ничего не пишет
	var metricsCollector *metrics.Metrics
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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Проверяем соединение
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = wrappedDB.PingContext(pingCtx)
	pingCancel()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Параметры расчета слотов
	scheduleLocation := cfg.Scheduling.Location()
	spanPolicy := cfg.Scheduling.SpanPolicy()
	log.Info("Scheduling: timezone=%s, strict_span_policy=%t, admins=%d",
		scheduleLocation, cfg.Scheduling.StrictSpanPolicy, len(cfg.Admin.UserIDs))

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, cfg.Admin, txMgr, log)
	settingsSvc := settingsService.NewService(settingsRepository, cfg.Admin, log)

	// Инициализируем use cases
	getSlotSummaryUseCase := getSlotSummaryUC.NewUseCase(
		settingsRepository,
		reservationRepository,
		metricsCollector,
		log,
		getSlotSummaryUC.Options{Location: scheduleLocation, SpanPolicy: spanPolicy},
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		settingsRepository,
		reservationRepository,
		txMgr,
		metricsCollector,
		log,
		createReservationUC.Options{Location: scheduleLocation, SpanPolicy: spanPolicy},
	)

	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(settingsRepository, log)

	// Инициализируем handlers
	getSlotSummary := getSlotSummaryHandler.NewHandler(getSlotSummaryUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сводка по слотам на дату
	api.HandleFunc("/slots", getSlotSummary.Handle).Methods(http.MethodGet)

	// Нормализованные настройки расписания
	api.HandleFunc("/settings/scheduling", getSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (сотрудники магазина)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin(cfg.Admin))

	admin.HandleFunc("/settings/scheduling", updateSettings.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/schedule/days/{date}", getDaySchedule.Handle).Methods(http.MethodGet)

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
	close(stopMetricsCh)

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
