package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/kritsadaK/TTB-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/kritsadaK/TTB-BookingService/internal/api/handlers/delete_booking"
	getBookingsHandler "github.com/kritsadaK/TTB-BookingService/internal/api/handlers/get_bookings"
	getDaySlotsHandler "github.com/kritsadaK/TTB-BookingService/internal/api/handlers/get_day_slots"
	setSlotMinimumHandler "github.com/kritsadaK/TTB-BookingService/internal/api/handlers/set_slot_minimum"
	toggleSlotHandler "github.com/kritsadaK/TTB-BookingService/internal/api/handlers/toggle_slot_availability"
	"github.com/kritsadaK/TTB-BookingService/internal/api/middleware"
	"github.com/kritsadaK/TTB-BookingService/internal/config"
	bookingStoreClient "github.com/kritsadaK/TTB-BookingService/internal/integrations/bookingstore"
	catalogServiceClient "github.com/kritsadaK/TTB-BookingService/internal/integrations/catalogservice"
	vehicleServiceClient "github.com/kritsadaK/TTB-BookingService/internal/integrations/vehicleservice"
	bookingsService "github.com/kritsadaK/TTB-BookingService/internal/service/bookings"
	createBookingUC "github.com/kritsadaK/TTB-BookingService/internal/usecase/create_booking"
	getDaySlotsUC "github.com/kritsadaK/TTB-BookingService/internal/usecase/get_day_slots"
	"github.com/kritsadaK/TTB-BookingService/pkg/logger"
	"github.com/kritsadaK/TTB-BookingService/pkg/metrics"
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

	log.Info("Starting TTB-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Бизнес-таймзона: все гражданские даты считаются в ней
	businessTZ, err := cfg.Business.Location()
	if err != nil {
		log.Fatal("Failed to load business timezone: %v", err)
	}
	log.Info("Business timezone: %s", cfg.Business.Timezone)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	vehicleClient := vehicleServiceClient.NewClient(
		cfg.VehicleService.URL,
		time.Duration(cfg.VehicleService.Timeout)*time.Second,
		log,
	)
	storeClient := bookingStoreClient.NewClient(
		cfg.BookingStore.URL,
		time.Duration(cfg.BookingStore.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Catalog=%s, Vehicles=%s, BookingStore=%s)",
		cfg.CatalogService.URL, cfg.VehicleService.URL, cfg.BookingStore.URL)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(storeClient, catalogClient, businessTZ, log)

	// Инициализируем use cases
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(catalogClient, vehicleClient, storeClient, businessTZ, log)
	createBookingUseCase := createBookingUC.NewUseCase(catalogClient, vehicleClient, storeClient, businessTZ, log)

	// Инициализируем handlers
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	toggleSlot := toggleSlotHandler.NewHandler(bookingSvc, log)
	setSlotMinimum := setSlotMinimumHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Слоты пакета на дату с вычисленной занятостью
	api.HandleFunc("/packages/{packageId}/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/packages/{packageId}/bookings", getBookings.Handle).Methods(http.MethodGet)

	// --- Управление слотами ---
	protected.HandleFunc("/timeslots/availability", toggleSlot.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/timeslots/minimum-person", setSlotMinimum.Handle).Methods(http.MethodPut)

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
