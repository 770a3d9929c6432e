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

	cancelAppointmentHandler "github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/handlers/cancel_appointment"
	createTimeSlotHandler "github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/handlers/create_time_slot"
	getAppointmentHandler "github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/handlers/get_appointment"
	getAppointmentHistoryHandler "github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/handlers/get_appointment_history"
	getAvailabilityHandler "github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/handlers/get_availability"
	getCustomerAppointmentsHandler "github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/handlers/get_customer_appointments"
	getStoreAppointmentsHandler "github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/handlers/get_store_appointments"
	getStoreSlotsHandler "github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/handlers/get_store_slots"
	requestBookingHandler "github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/handlers/request_booking"
	updateAppointmentStatusHandler "github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/handlers/update_appointment_status"
	updateTimeSlotHandler "github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/handlers/update_time_slot"
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/api/middleware"
	"github.com/fixtrackhq/FixTrack-AppointmentService/internal/config"
	appointmentRepo "github.com/fixtrackhq/FixTrack-AppointmentService/internal/infra/storage/appointment"
	historyRepo "github.com/fixtrackhq/FixTrack-AppointmentService/internal/infra/storage/history"
	timeslotRepo "github.com/fixtrackhq/FixTrack-AppointmentService/internal/infra/storage/timeslot"
	storeServiceClient "github.com/fixtrackhq/FixTrack-AppointmentService/internal/integrations/storeservice"
	appointmentsService "github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/appointments"
	slotsService "github.com/fixtrackhq/FixTrack-AppointmentService/internal/service/slots"
	getAvailabilityUC "github.com/fixtrackhq/FixTrack-AppointmentService/internal/usecase/get_availability"
	requestBookingUC "github.com/fixtrackhq/FixTrack-AppointmentService/internal/usecase/request_booking"
	"github.com/fixtrackhq/FixTrack-AppointmentService/pkg/dbmetrics"
	"github.com/fixtrackhq/FixTrack-AppointmentService/pkg/logger"
	"github.com/fixtrackhq/FixTrack-AppointmentService/pkg/metrics"
	"github.com/fixtrackhq/FixTrack-AppointmentService/pkg/simpletxmanager"
	"github.com/fixtrackhq/FixTrack-AppointmentService/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting FixTrack-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configure the connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize integration clients
	storeClient := storeServiceClient.NewClient(
		cfg.StoreService.URL,
		time.Duration(cfg.StoreService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (StoreService=%s timeout=%ds)",
		cfg.StoreService.URL, cfg.StoreService.Timeout)

	// Initialize repositories (with or without metrics)
	var (
		apptRepository *appointmentRepo.Repository
		slotRepository *timeslotRepo.Repository
		histRepository *historyRepo.Repository
	)

	// Transaction manager surface shared by the use cases and services
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		apptRepository = appointmentRepo.NewRepository(wrappedDB)
		slotRepository = timeslotRepo.NewRepository(wrappedDB)
		histRepository = historyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		apptRepository = appointmentRepo.NewRepository(db)
		slotRepository = timeslotRepo.NewRepository(db)
		histRepository = historyRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Initialize services
	apptSvc := appointmentsService.NewService(
		apptRepository,
		histRepository,
		txMgr,
		log,
	)
	slotSvc := slotsService.NewService(
		slotRepository,
		log,
	)

	// Initialize use cases
	requestBookingUseCase := requestBookingUC.NewUseCase(
		apptRepository,
		slotRepository,
		histRepository,
		storeClient,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		slotRepository,
		apptRepository,
		log,
	)

	// Initialize handlers
	requestBooking := requestBookingHandler.NewHandler(requestBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(apptSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(apptSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(apptSvc, log)
	getAppointmentHistory := getAppointmentHistoryHandler.NewHandler(apptSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(apptSvc, log)
	getStoreAppointments := getStoreAppointmentsHandler.NewHandler(apptSvc, log)
	getStoreSlots := getStoreSlotsHandler.NewHandler(slotSvc, log)
	createTimeSlot := createTimeSlotHandler.NewHandler(slotSvc, log)
	updateTimeSlot := updateTimeSlotHandler.NewHandler(slotSvc, log)

	// Configure the router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (public, no authentication)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	// Availability report for a store's slots on a date
	api.HandleFunc("/stores/{storeId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Store slot configuration
	api.HandleFunc("/stores/{storeId}/slots",
		getStoreSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Appointments ---
	protected.HandleFunc("/appointments", requestBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/history", getAppointmentHistory.Handle).Methods(http.MethodGet)

	// --- Staff views ---
	protected.HandleFunc("/customers/{customerId}/appointments", getCustomerAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/stores/{storeId}/appointments", getStoreAppointments.Handle).Methods(http.MethodGet)

	// --- Slot management ---
	protected.HandleFunc("/slots", createTimeSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}", updateTimeSlot.Handle).Methods(http.MethodPut)

	// Create the HTTP server
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

	// Stop the connection pool metrics collector
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
