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

	blockEquipmentHandler "github.com/AdrianLinares/microreserva/internal/api/handlers/block_equipment"
	createBookingHandler "github.com/AdrianLinares/microreserva/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/AdrianLinares/microreserva/internal/api/handlers/delete_booking"
	getSettingsHandler "github.com/AdrianLinares/microreserva/internal/api/handlers/get_settings"
	listBookingsHandler "github.com/AdrianLinares/microreserva/internal/api/handlers/list_bookings"
	relocateBookingHandler "github.com/AdrianLinares/microreserva/internal/api/handlers/relocate_booking"
	swapBookingsHandler "github.com/AdrianLinares/microreserva/internal/api/handlers/swap_bookings"
	unblockEquipmentHandler "github.com/AdrianLinares/microreserva/internal/api/handlers/unblock_equipment"
	updateBookingStatusHandler "github.com/AdrianLinares/microreserva/internal/api/handlers/update_booking_status"
	updateSettingsHandler "github.com/AdrianLinares/microreserva/internal/api/handlers/update_settings"
	"github.com/AdrianLinares/microreserva/internal/api/middleware"
	"github.com/AdrianLinares/microreserva/internal/config"
	bookingRepo "github.com/AdrianLinares/microreserva/internal/infra/storage/booking"
	settingsRepo "github.com/AdrianLinares/microreserva/internal/infra/storage/settings"
	bookingsService "github.com/AdrianLinares/microreserva/internal/service/bookings"
	occupancyService "github.com/AdrianLinares/microreserva/internal/service/occupancy"
	quotaService "github.com/AdrianLinares/microreserva/internal/service/quota"
	settingsService "github.com/AdrianLinares/microreserva/internal/service/settings"
	blockEquipmentUC "github.com/AdrianLinares/microreserva/internal/usecase/block_equipment"
	createBookingUC "github.com/AdrianLinares/microreserva/internal/usecase/create_booking"
	relocateBookingUC "github.com/AdrianLinares/microreserva/internal/usecase/relocate_booking"
	swapBookingsUC "github.com/AdrianLinares/microreserva/internal/usecase/swap_bookings"
	"github.com/AdrianLinares/microreserva/pkg/dbmetrics"
	"github.com/AdrianLinares/microreserva/pkg/logger"
	"github.com/AdrianLinares/microreserva/pkg/metrics"
	"github.com/AdrianLinares/microreserva/pkg/simpletxmanager"
	"github.com/AdrianLinares/microreserva/pkg/txmanager"
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

	log.Info("Starting microreserva...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		settingsRepository *settingsRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	occupancySvc := occupancyService.NewService(bookingRepository, log)
	quotaSvc := quotaService.NewService(
		bookingRepository,
		nil,
		quotaService.Limits{
			MaxSlotsPerPerson:   cfg.Limits.MaxSlotsPerPerson,
			RateLimitMaxInserts: cfg.Limits.RateLimitMaxInserts,
			RateLimitWindow:     cfg.Limits.RateLimitWindow,
		},
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		occupancySvc,
		quotaSvc,
		txMgr,
		nil,
		log,
	)
	relocateBookingUseCase := relocateBookingUC.NewUseCase(
		bookingRepository,
		occupancySvc,
		txMgr,
		log,
	)
	swapBookingsUseCase := swapBookingsUC.NewUseCase(bookingRepository, txMgr, log)
	blockEquipmentCoordinator := blockEquipmentUC.NewCoordinator(bookingRepository, nil, log)

	// Инициализируем handlers
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	relocateBooking := relocateBookingHandler.NewHandler(relocateBookingUseCase, log)
	swapBookings := swapBookingsHandler.NewHandler(swapBookingsUseCase, log)
	blockEquipment := blockEquipmentHandler.NewHandler(blockEquipmentCoordinator, log)
	unblockEquipment := unblockEquipmentHandler.NewHandler(blockEquipmentCoordinator, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.CORS(cfg.CORS.AllowedOrigin))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	creds := middleware.Credentials{
		Username:     cfg.Auth.AdminUsername,
		PasswordHash: cfg.Auth.AdminPasswordHash,
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарь занятости: все записи видны всем
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Создание заявки: доступно всем, администратор опознается
	// по необязательным Basic credentials
	api.Handle("/bookings",
		middleware.IdentifyAdmin(creds)(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Basic auth администратора)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(creds))

	// --- Записи ---
	// Подтверждение заявки
	admin.HandleFunc("/bookings/{id}/status", updateBookingStatus.Handle).Methods(http.MethodPut)

	// Перенос записи в другой слот
	admin.HandleFunc("/bookings/{id}/slot", relocateBooking.Handle).Methods(http.MethodPut)

	// Отклонение заявки / отмена записи
	admin.HandleFunc("/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Обмен слотов двух записей
	admin.HandleFunc("/bookings/swap", swapBookings.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/swap/reconcile", swapBookings.HandleReconcile).Methods(http.MethodPost)

	// --- Блокировки оборудования ---
	admin.HandleFunc("/blocks", blockEquipment.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocks/{id}", unblockEquipment.Handle).Methods(http.MethodDelete)

	// --- Настройки ---
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

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

	log.Info("Server exited")
}
