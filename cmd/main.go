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
	"github.com/redis/go-redis/v9"

	claimReminderHandler "github.com/williamfinanuber/lariagendamentos/internal/api/handlers/claim_reminder"
	createBookingHandler "github.com/williamfinanuber/lariagendamentos/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/williamfinanuber/lariagendamentos/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/williamfinanuber/lariagendamentos/internal/api/handlers/get_booking"
	getOverrideEditorHandler "github.com/williamfinanuber/lariagendamentos/internal/api/handlers/get_override_editor"
	getPolicyHandler "github.com/williamfinanuber/lariagendamentos/internal/api/handlers/get_policy"
	getReminderWorklistHandler "github.com/williamfinanuber/lariagendamentos/internal/api/handlers/get_reminder_worklist"
	listBookingsHandler "github.com/williamfinanuber/lariagendamentos/internal/api/handlers/list_bookings"
	listOverridesHandler "github.com/williamfinanuber/lariagendamentos/internal/api/handlers/list_overrides"
	markReminderSentHandler "github.com/williamfinanuber/lariagendamentos/internal/api/handlers/mark_reminder_sent"
	releaseReminderClaimHandler "github.com/williamfinanuber/lariagendamentos/internal/api/handlers/release_reminder_claim"
	rescheduleBookingHandler "github.com/williamfinanuber/lariagendamentos/internal/api/handlers/reschedule_booking"
	saveOverrideHandler "github.com/williamfinanuber/lariagendamentos/internal/api/handlers/save_override"
	transitionBookingHandler "github.com/williamfinanuber/lariagendamentos/internal/api/handlers/transition_booking"
	updateWeekdaySlotsHandler "github.com/williamfinanuber/lariagendamentos/internal/api/handlers/update_weekday_slots"
	updateWeekendFlagHandler "github.com/williamfinanuber/lariagendamentos/internal/api/handlers/update_weekend_flag"
	"github.com/williamfinanuber/lariagendamentos/internal/api/middleware"
	"github.com/williamfinanuber/lariagendamentos/internal/config"
	"github.com/williamfinanuber/lariagendamentos/internal/domain"
	"github.com/williamfinanuber/lariagendamentos/internal/infra/cache/sendguard"
	bookingRepo "github.com/williamfinanuber/lariagendamentos/internal/infra/storage/booking"
	overrideRepo "github.com/williamfinanuber/lariagendamentos/internal/infra/storage/override"
	policyRepo "github.com/williamfinanuber/lariagendamentos/internal/infra/storage/policy"
	"github.com/williamfinanuber/lariagendamentos/internal/integrations/whatsapp"
	availabilityService "github.com/williamfinanuber/lariagendamentos/internal/service/availability"
	bookingsService "github.com/williamfinanuber/lariagendamentos/internal/service/bookings"
	createBookingUC "github.com/williamfinanuber/lariagendamentos/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/williamfinanuber/lariagendamentos/internal/usecase/get_available_slots"
	remindersUC "github.com/williamfinanuber/lariagendamentos/internal/usecase/reminders"
	rescheduleBookingUC "github.com/williamfinanuber/lariagendamentos/internal/usecase/reschedule_booking"
	remindersWorker "github.com/williamfinanuber/lariagendamentos/internal/worker/reminders"
	"github.com/williamfinanuber/lariagendamentos/pkg/dbmetrics"
	"github.com/williamfinanuber/lariagendamentos/pkg/logger"
	"github.com/williamfinanuber/lariagendamentos/pkg/metrics"
	"github.com/williamfinanuber/lariagendamentos/pkg/txmanager"
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

	log.Info("Starting lariagendamentos...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Часовой пояс студии и политика по умолчанию
	location, err := cfg.Schedule.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Schedule.Timezone, err)
	}
	defaultSlots, err := cfg.Schedule.Slots()
	if err != nil {
		log.Fatal("Invalid default slots: %v", err)
	}
	defaults := domain.NewDefaultPolicy(cfg.Schedule.SaturdayOpen, cfg.Schedule.SundayOpen, defaultSlots)
	log.Info("Schedule defaults: timezone=%s, slots=%d, saturday=%t, sunday=%t",
		location.String(), len(defaultSlots), cfg.Schedule.SaturdayOpen, cfg.Schedule.SundayOpen)

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

	// Обёртка собирает метрики запросов; без коллектора просто проксирует вызовы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Захват отправки напоминаний
	var (
		guard       remindersUC.SendGuard = sendguard.NewNop()
		redisClient *redis.Client
	)
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		pingCancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Address, err)
		}

		guard = sendguard.New(redisClient, cfg.Redis.ClaimTTL(), log)
		log.Info("Reminder send guard enabled (redis=%s, ttl=%s)", cfg.Redis.Address, cfg.Redis.ClaimTTL())
	} else {
		log.Warn("Redis disabled: reminder claims are not coordinated between operators")
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	policyRepository := policyRepo.NewRepository(wrappedDB)
	overrideRepository := overrideRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		policyRepository,
		overrideRepository,
		txMgr,
		defaults,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilitySvc,
		txMgr,
		metricsCollector,
		location,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		availabilitySvc,
		log,
	)

	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		availabilitySvc,
		txMgr,
		location,
		log,
	)

	remindersUseCase := remindersUC.NewUseCase(
		bookingRepository,
		bookingSvc,
		guard,
		whatsapp.NewComposer(cfg.Reminders.StudioName),
		metricsCollector,
		location,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getPolicy := getPolicyHandler.NewHandler(availabilitySvc, log)
	updateWeekendFlag := updateWeekendFlagHandler.NewHandler(availabilitySvc, log)
	updateWeekdaySlots := updateWeekdaySlotsHandler.NewHandler(availabilitySvc, log)
	listOverrides := listOverridesHandler.NewHandler(availabilitySvc, log)
	getOverrideEditor := getOverrideEditorHandler.NewHandler(availabilitySvc, log)
	saveOverride := saveOverrideHandler.NewHandler(availabilitySvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	transitionBooking := transitionBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	claimReminder := claimReminderHandler.NewHandler(remindersUseCase, log)
	releaseReminderClaim := releaseReminderClaimHandler.NewHandler(remindersUseCase, log)
	markReminderSent := markReminderSentHandler.NewHandler(remindersUseCase, log)
	reminderWorklist := getReminderWorklistHandler.NewHandler(remindersUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность ---
	// Слоты на дату
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Недельная политика
	api.HandleFunc("/availability/policy", getPolicy.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/policy/weekend", updateWeekendFlag.Handle).Methods(http.MethodPut)
	api.HandleFunc("/availability/policy/weekdays/{weekday}", updateWeekdaySlots.Handle).Methods(http.MethodPut)

	// Исключения по датам
	api.HandleFunc("/availability/overrides", listOverrides.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/overrides/{date}", getOverrideEditor.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/overrides/{date}", saveOverride.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/schedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/{action:confirm|complete|cancel}", transitionBooking.Handle).Methods(http.MethodPost)

	// --- Напоминания ---
	api.HandleFunc("/bookings/{bookingId}/reminders/{kind}/claim", claimReminder.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/reminders/{kind}/claim", releaseReminderClaim.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{bookingId}/reminders/{kind}/sent", markReminderSent.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reminders/day-before", reminderWorklist.HandleDayBefore).Methods(http.MethodGet)
	api.HandleFunc("/reminders/maintenance", reminderWorklist.HandleMaintenance).Methods(http.MethodGet)

	// Фоновый пересчёт очередей напоминаний
	worker, err := remindersWorker.New(remindersUseCase, cfg.Reminders.Cron, location, log)
	if err != nil {
		log.Fatal("Failed to create reminders worker: %v", err)
	}
	worker.Start()

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

	worker.Stop(shutdownCtx)

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
