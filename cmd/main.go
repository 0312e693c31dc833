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

	cancelReservationHandler "github.com/m04kA/Park-ReservationService/internal/api/handlers/cancel_reservation"
	confirmReservationHandler "github.com/m04kA/Park-ReservationService/internal/api/handlers/confirm_reservation"
	createReservationHandler "github.com/m04kA/Park-ReservationService/internal/api/handlers/create_reservation"
	createSlotHandler "github.com/m04kA/Park-ReservationService/internal/api/handlers/create_slot"
	createVisitTypeHandler "github.com/m04kA/Park-ReservationService/internal/api/handlers/create_visit_type"
	expireReservationsHandler "github.com/m04kA/Park-ReservationService/internal/api/handlers/expire_reservations"
	getReservationHandler "github.com/m04kA/Park-ReservationService/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/m04kA/Park-ReservationService/internal/api/handlers/list_reservations"
	listSlotsHandler "github.com/m04kA/Park-ReservationService/internal/api/handlers/list_slots"
	listNotificationsHandler "github.com/m04kA/Park-ReservationService/internal/api/handlers/list_notifications"
	listVisitTypesHandler "github.com/m04kA/Park-ReservationService/internal/api/handlers/list_visit_types"
	modifyReservationHandler "github.com/m04kA/Park-ReservationService/internal/api/handlers/modify_reservation"
	occupancyDashboardHandler "github.com/m04kA/Park-ReservationService/internal/api/handlers/occupancy_dashboard"
	"github.com/m04kA/Park-ReservationService/internal/api/middleware"
	"github.com/m04kA/Park-ReservationService/internal/config"
	changeLogRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/changelog"
	notificationRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/notification"
	reservationRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/slot"
	visitorRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/visitor"
	visitTypeRepo "github.com/m04kA/Park-ReservationService/internal/infra/storage/visittype"
	notificationsService "github.com/m04kA/Park-ReservationService/internal/service/notifications"
	reservationsService "github.com/m04kA/Park-ReservationService/internal/service/reservations"
	slotsService "github.com/m04kA/Park-ReservationService/internal/service/slots"
	visitTypesService "github.com/m04kA/Park-ReservationService/internal/service/visittypes"
	createReservationUC "github.com/m04kA/Park-ReservationService/internal/usecase/create_reservation"
	expireReservationsUC "github.com/m04kA/Park-ReservationService/internal/usecase/expire_reservations"
	modifyReservationUC "github.com/m04kA/Park-ReservationService/internal/usecase/modify_reservation"
	occupancyReportUC "github.com/m04kA/Park-ReservationService/internal/usecase/occupancy_report"
	"github.com/m04kA/Park-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Park-ReservationService/pkg/logger"
	"github.com/m04kA/Park-ReservationService/pkg/metrics"
	"github.com/m04kA/Park-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/Park-ReservationService/pkg/txmanager"
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

	log.Info("Starting Park-ReservationService...")
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

	// Интерфейс transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository         *slotRepo.Repository
		reservationRepository  *reservationRepo.Repository
		visitorRepository      *visitorRepo.Repository
		visitTypeRepository    *visitTypeRepo.Repository
		changeLogRepository    *changeLogRepo.Repository
		notificationRepository *notificationRepo.Repository
		txMgr                  TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		visitorRepository = visitorRepo.NewRepository(wrappedDB)
		visitTypeRepository = visitTypeRepo.NewRepository(wrappedDB)
		changeLogRepository = changeLogRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		visitorRepository = visitorRepo.NewRepository(db)
		visitTypeRepository = visitTypeRepo.NewRepository(db)
		changeLogRepository = changeLogRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		slotRepository,
		visitorRepository,
		visitTypeRepository,
		changeLogRepository,
		txMgr,
		log,
	)
	slotSvc := slotsService.NewService(slotRepository, log)
	visitTypeSvc := visitTypesService.NewService(visitTypeRepository, log)
	notificationSvc := notificationsService.NewService(notificationRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		visitorRepository,
		slotRepository,
		visitTypeRepository,
		reservationRepository,
		notificationRepository,
		txMgr,
		log,
	)

	modifyReservationUseCase := modifyReservationUC.NewUseCase(
		reservationRepository,
		slotRepository,
		visitTypeRepository,
		changeLogRepository,
		notificationRepository,
		txMgr,
		log,
	)

	occupancyReportUseCase := occupancyReportUC.NewUseCase(
		reservationRepository,
		slotRepository,
		notificationRepository,
		txMgr,
		log,
	)

	expireReservationsUseCase := expireReservationsUC.NewUseCase(
		reservationRepository,
		slotRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	modifyReservation := modifyReservationHandler.NewHandler(modifyReservationUseCase, log)
	confirmReservation := confirmReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	expireReservations := expireReservationsHandler.NewHandler(expireReservationsUseCase, log)
	createSlot := createSlotHandler.NewHandler(slotSvc, log)
	listSlots := listSlotsHandler.NewHandler(slotSvc, log)
	createVisitType := createVisitTypeHandler.NewHandler(visitTypeSvc, log)
	listVisitTypes := listVisitTypesHandler.NewHandler(visitTypeSvc, log)
	occupancyDashboard := occupancyDashboardHandler.NewHandler(occupancyReportUseCase, log)
	listNotifications := listNotificationsHandler.NewHandler(notificationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Создание брони посетителем
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Слоты посещений за период
	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)

	// Справочник типов визитов
	api.HandleFunc("/visit-types", listVisitTypes.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-ID header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth)

	// --- Брони ---
	// Просрочка активных броней на прошедшие даты
	admin.HandleFunc("/reservations/expire", expireReservations.Handle).Methods(http.MethodPost)

	// Список броней с фильтрацией
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Получение брони по ID
	admin.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Перенос брони на другой слот или тип визита
	admin.HandleFunc("/reservations/{reservationId}/modify", modifyReservation.Handle).Methods(http.MethodPatch)

	// Отметка посещения
	admin.HandleFunc("/reservations/{reservationId}/confirm", confirmReservation.Handle).Methods(http.MethodPatch)

	// Отмена брони
	admin.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Управление парком ---
	// Создание слота посещений
	admin.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)

	// Создание типа визита
	admin.HandleFunc("/visit-types", createVisitType.Handle).Methods(http.MethodPost)

	// Дашборд загруженности
	admin.HandleFunc("/monitoring/dashboard", occupancyDashboard.Handle).Methods(http.MethodGet)

	// Журнал системных событий
	admin.HandleFunc("/monitoring/notifications", listNotifications.Handle).Methods(http.MethodGet)

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
