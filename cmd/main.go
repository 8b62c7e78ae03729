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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"

	adminCustomersHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/admin_customers"
	adminLocationsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/admin_locations"
	adminLoginHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/admin_logout"
	adminRentalsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/admin_rentals"
	adminVehiclesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/admin_vehicles"
	checkAvailabilityHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/check_availability"
	getDraftHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_draft"
	getLocationsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_locations"
	getVehicleHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_vehicle"
	getVehiclesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_vehicles"
	healthHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/health"
	lookupCEPHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/lookup_cep"
	submitReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/submit_reservation"
	updateDraftHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_draft"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/cache"
	"github.com/m04kA/SMC-RentalService/internal/config"
	"github.com/m04kA/SMC-RentalService/internal/infra/draftstore"
	"github.com/m04kA/SMC-RentalService/internal/infra/sessions"
	adminsRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/admins"
	customersRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/customers"
	locationsRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/locations"
	rentalsRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rentals"
	vehiclesRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicles"
	viacepClient "github.com/m04kA/SMC-RentalService/internal/integrations/viacep"
	"github.com/m04kA/SMC-RentalService/internal/integrations/whatsapp"
	authService "github.com/m04kA/SMC-RentalService/internal/service/auth"
	customersService "github.com/m04kA/SMC-RentalService/internal/service/customers"
	locationsService "github.com/m04kA/SMC-RentalService/internal/service/locations"
	rentalsService "github.com/m04kA/SMC-RentalService/internal/service/rentals"
	vehiclesService "github.com/m04kA/SMC-RentalService/internal/service/vehicles"
	checkAvailabilityUC "github.com/m04kA/SMC-RentalService/internal/usecase/check_availability"
	createRentalUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
	submitReservationUC "github.com/m04kA/SMC-RentalService/internal/usecase/submit_reservation"
	"github.com/m04kA/SMC-RentalService/migrations"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RentalService...")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Apply pending migrations at startup
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatal("Failed to create migration provider: %v", err)
	}
	results, err := provider.Up(context.Background())
	if err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if len(results) > 0 {
		log.Info("Applied %d migration(s)", len(results))
	}

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	cepClient := viacepClient.NewClient(
		cfg.ViaCEP.URL,
		time.Duration(cfg.ViaCEP.Timeout)*time.Second,
		log,
	)

	linkBuilder, err := whatsapp.NewLinkBuilder(cfg.WhatsApp.Number)
	if err != nil {
		log.Fatal("Failed to initialize whatsapp link builder: %v", err)
	}

	var (
		locationsRepository *locationsRepo.Repository
		vehiclesRepository  *vehiclesRepo.Repository
		customersRepository *customersRepo.Repository
		rentalsRepository   *rentalsRepo.Repository
		adminsRepository    *adminsRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		locationsRepository = locationsRepo.NewRepository(wrappedDB)
		vehiclesRepository = vehiclesRepo.NewRepository(wrappedDB)
		customersRepository = customersRepo.NewRepository(wrappedDB)
		rentalsRepository = rentalsRepo.NewRepository(wrappedDB)
		adminsRepository = adminsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		locationsRepository = locationsRepo.NewRepository(db)
		vehiclesRepository = vehiclesRepo.NewRepository(db)
		customersRepository = customersRepo.NewRepository(db)
		rentalsRepository = rentalsRepo.NewRepository(db)
		adminsRepository = adminsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	locationsCache := cache.NewLocationsCache(
		locationsRepository.GetActive,
		time.Duration(cfg.Cache.LocationsTTLSeconds)*time.Second,
		log,
	)
	locationsCache.Preload(context.Background())

	draftStore := draftstore.New()
	sessionStore := sessions.NewStore(redisClient, time.Duration(cfg.Session.TTLMinutes)*time.Minute)

	locationsSvc := locationsService.NewService(locationsRepository, locationsCache, log)
	vehiclesSvc := vehiclesService.NewService(vehiclesRepository, log)
	customersSvc := customersService.NewService(customersRepository, log)
	rentalsSvc := rentalsService.NewService(rentalsRepository, log)
	authSvc := authService.NewService(adminsRepository, sessionStore, log)

	submitReservationUseCase := submitReservationUC.NewUseCase(
		draftStore,
		vehiclesRepository,
		customersRepository,
		rentalsRepository,
		locationsCache,
		linkBuilder,
		txMgr,
		log,
	)
	createRentalUseCase := createRentalUC.NewUseCase(
		rentalsRepository,
		vehiclesRepository,
		customersRepository,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		rentalsRepository,
		vehiclesRepository,
		log,
	)

	getLocations := getLocationsHandler.NewHandler(locationsSvc, log)
	lookupCEP := lookupCEPHandler.NewHandler(cepClient, log)
	getVehicles := getVehiclesHandler.NewHandler(vehiclesSvc, log)
	getVehicle := getVehicleHandler.NewHandler(vehiclesSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getDraft := getDraftHandler.NewHandler(draftStore, log)
	updateDraft := updateDraftHandler.NewHandler(draftStore, log)
	submitReservation := submitReservationHandler.NewHandler(submitReservationUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	adminLogout := adminLogoutHandler.NewHandler(authSvc, log)
	adminLocations := adminLocationsHandler.NewHandler(locationsSvc, log)
	adminVehicles := adminVehiclesHandler.NewHandler(vehiclesSvc, log)
	adminCustomers := adminCustomersHandler.NewHandler(customersSvc, log)
	adminRentals := adminRentalsHandler.NewHandler(rentalsSvc, createRentalUseCase, log)
	health := healthHandler.NewHandler(db)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Storefront routes, keyed by the X-Session-ID header
	storefront := api.PathPrefix("").Subrouter()
	storefront.Use(middleware.Session)

	storefront.HandleFunc("/locations", getLocations.Handle).Methods(http.MethodGet)
	storefront.HandleFunc("/vehicles", getVehicles.Handle).Methods(http.MethodGet)
	storefront.HandleFunc("/vehicles/{id}", getVehicle.Handle).Methods(http.MethodGet)
	storefront.HandleFunc("/vehicles/{id}/availability", checkAvailability.Handle).Methods(http.MethodGet)
	storefront.HandleFunc("/cep/{cep}", lookupCEP.Handle).Methods(http.MethodGet)
	storefront.HandleFunc("/reservation/draft", getDraft.Handle).Methods(http.MethodGet)
	storefront.HandleFunc("/reservation/draft", updateDraft.Handle).Methods(http.MethodPatch)
	storefront.HandleFunc("/reservation/draft", updateDraft.HandleClear).Methods(http.MethodDelete)
	storefront.HandleFunc("/reservation/submit", submitReservation.Handle).Methods(http.MethodPost)

	// Back-office authentication
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", adminLogout.Handle).Methods(http.MethodPost)

	// Back-office routes, gated by the allow-list check
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, log))

	admin.HandleFunc("/locations", adminLocations.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/locations", adminLocations.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/locations/{id}", adminLocations.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/locations/{id}", adminLocations.HandleDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/vehicles", adminVehicles.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/vehicles", adminVehicles.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/vehicles/{id}", adminVehicles.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/vehicles/{id}", adminVehicles.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/vehicles/{id}", adminVehicles.HandleDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/customers", adminCustomers.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/customers", adminCustomers.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/customers/{id}", adminCustomers.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/customers/{id}", adminCustomers.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/customers/{id}", adminCustomers.HandleDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/rentals", adminRentals.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/rentals", adminRentals.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/rentals/{id}", adminRentals.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/rentals/{id}/status", adminRentals.HandleUpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/rentals/{id}/cancel", adminRentals.HandleCancel).Methods(http.MethodPost)
	admin.HandleFunc("/rentals/{id}", adminRentals.HandleDelete).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
