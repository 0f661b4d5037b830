package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/config"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/health"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/middleware"
	"github.com/piresc/dispatch/internal/pkg/models"
	natspkg "github.com/piresc/dispatch/internal/pkg/nats"
	nrpkg "github.com/piresc/dispatch/internal/pkg/newrelic"
	"github.com/piresc/dispatch/internal/pkg/retry"
	"github.com/piresc/dispatch/internal/pkg/scheduler"
	"github.com/piresc/dispatch/internal/pkg/server"
	wspkg "github.com/piresc/dispatch/internal/pkg/websocket"
	"github.com/piresc/dispatch/services/drivers"
	driverRepository "github.com/piresc/dispatch/services/drivers/repository"
	driverUsecase "github.com/piresc/dispatch/services/drivers/usecase"
	"github.com/piresc/dispatch/services/location"
	locationGateway "github.com/piresc/dispatch/services/location/gateway"
	locationHTTP "github.com/piresc/dispatch/services/location/handler/http"
	locationRepository "github.com/piresc/dispatch/services/location/repository"
	locationUsecase "github.com/piresc/dispatch/services/location/usecase"
	matchHTTP "github.com/piresc/dispatch/services/match/handler/http"
	matchUsecase "github.com/piresc/dispatch/services/match/usecase"
	notifyNATS "github.com/piresc/dispatch/services/notify/handler/nats"
	notifyWS "github.com/piresc/dispatch/services/notify/handler/websocket"
	"github.com/piresc/dispatch/services/notify/registry"
	notifyUsecase "github.com/piresc/dispatch/services/notify/usecase"
	"github.com/piresc/dispatch/services/rides"
	rideGateway "github.com/piresc/dispatch/services/rides/gateway"
	rideHTTP "github.com/piresc/dispatch/services/rides/handler/http"
	rideRepository "github.com/piresc/dispatch/services/rides/repository"
	rideUsecase "github.com/piresc/dispatch/services/rides/usecase"
	trackingUsecase "github.com/piresc/dispatch/services/tracking/usecase"
)

type storage struct {
	locations location.LocationRepo
	rides     rides.RideRepo
	drivers   drivers.DriverRepo
	redis     *database.RedisClient
	checkers  map[string]health.Checker
}

func main() {
	configPath := os.Getenv("DISPATCH_ENV_FILE")
	if configPath == "" {
		configPath = "config/dispatch.env"
	}
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("storage", configs.Storage.Backend))

	dispatchCfg := configs.Dispatch
	e := echo.New()
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error { return zapLogger.Close() })

	dialer := retry.New(retry.DefaultPolicy(), zapLogger)
	store := openStorage(configs, srv, dialer, zapLogger)

	var (
		natsClient *natspkg.Client
		locationGW location.LocationGW
		rideGW     rides.RideGW
	)
	if configs.NATS.URL != "" {
		natsClient, err = retry.Dial(context.Background(), dialer, "nats", func(context.Context) (*natspkg.Client, error) {
			return natspkg.NewClient(configs.NATS.URL, appName)
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		srv.OnShutdown(func(context.Context) error {
			natsClient.Close()
			return nil
		})
		store.checkers["nats"] = health.CheckerFunc(func(context.Context) error { return natsClient.CheckConnected() })
		locationGW = locationGateway.NewLocationGW(natsClient.GetConn())
		rideGW = rideGateway.NewRideGW(natsClient.GetConn())
	} else {
		zapLogger.Warn("NATS_URL not set, domain events will not be published")
	}

	arena := scheduler.NewArena(scheduler.Options{
		MaxConsecutiveFailures: dispatchCfg.MaxJobFailures,
		NewRelic:               nrApp,
		Logger:                 zapLogger,
	})
	srv.OnShutdown(func(context.Context) error {
		arena.Stop()
		return nil
	})

	// Domain
	driverUC := driverUsecase.NewDriverUC(store.drivers)
	notifier := notifyUsecase.NewNotifier(registry.New(), driverUC)

	matchUC, err := matchUsecase.NewMatchUC(dispatchCfg, store.locations, driverUC, store.rides, nil)
	if err != nil {
		zapLogger.Fatal("Invalid service area", logger.Err(err))
	}

	locationUC := locationUsecase.NewLocationUC(store.locations, locationGW, driverUC, store.rides, notifier, dispatchCfg.UpdateInterval, nil)

	fares := rideUsecase.NewFareCalculator(dispatchCfg.Fares, dispatchCfg.TaxRate)
	tracker := trackingUsecase.NewTracker(dispatchCfg, arena, store.rides, locationUC, driverUC, notifier, fares, matchUC, nil)
	rideUC := rideUsecase.NewRideUC(dispatchCfg, store.rides, rideGW, matchUC, driverUC, notifier, tracker, arena, nil)

	dashboardUC := notifyUsecase.NewDashboardUC(dispatchCfg, rideUC, matchUC, locationUC, nil)
	streams := trackingUsecase.NewStreams(dispatchCfg, arena, store.rides, notifier, dashboardUC, nil)

	// WebSocket
	manager := wspkg.NewManager(configs.JWT)
	srv.OnShutdown(func(context.Context) error {
		manager.CloseAll()
		return nil
	})
	wsHandler := notifyWS.NewHandler(notifier, dashboardUC, locationUC, rideUC, streams, nil)

	// NATS consumers
	if natsClient != nil {
		payments := notifyNATS.NewPaymentsHandler(natsClient, notifier, dashboardUC, nil)
		if err := payments.Start(); err != nil {
			zapLogger.Fatal("Failed to start payments consumers", logger.Err(err))
		}
		srv.OnShutdown(func(context.Context) error {
			payments.Stop()
			return nil
		})
	}

	// HTTP
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, store.checkers)
	wsHandler.RegisterRoutes(e, manager)

	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(configs.JWT))
	locationHTTP.NewLocationHandler(locationUC).RegisterRoutes(api)
	matchHTTP.NewMatchHandler(matchUC).RegisterRoutes(api)

	rideHandler := rideHTTP.NewRideHandler(rideUC)
	var createLimits []echo.MiddlewareFunc
	if store.redis != nil {
		createLimits = append(createLimits,
			middleware.UserRateLimiter(dispatchCfg.RideCreateLimit, dispatchCfg.RideCreateWindow, store.redis.GetClient()))
	}
	rideHandler.RegisterRoutes(api, createLimits...)

	internal := e.Group("/internal", middleware.ValidateAPIKey(configs.Server.InternalAPIKey))
	rideHandler.RegisterInternalRoutes(internal)

	// Background work
	ctx := context.Background()
	if err := rideUC.Resume(ctx); err != nil {
		zapLogger.Error("Failed to resume in-flight rides", logger.Err(err))
	}
	tracker.StartSweep()

	if err := srv.Start(ctx); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}

// openStorage connects the configured backends. The memory backend keeps everything in
// process and seeds driver profiles from the tuning file.
func openStorage(configs *models.Config, srv *server.GracefulServer, dialer *retry.Retrier, zapLogger *logger.ZapLogger) storage {
	dispatchCfg := configs.Dispatch
	store := storage{checkers: make(map[string]health.Checker)}

	if configs.Storage.Backend == models.StorageMemory {
		store.locations = locationRepository.NewMemoryLocationRepository(dispatchCfg.PositionRetention, nil)
		store.rides = rideRepository.NewMemoryRideRepository()
		store.drivers = driverRepository.NewMemoryDriverRepository(dispatchCfg.Drivers)
		zapLogger.Info("Using in-memory storage", logger.Int("drivers", len(dispatchCfg.Drivers)))
		return store
	}

	ctx := context.Background()
	postgresClient, err := retry.Dial(ctx, dialer, "postgres", func(context.Context) (*database.PostgresClient, error) {
		return database.NewPostgresClient(configs.Database)
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })

	redisClient, err := retry.Dial(ctx, dialer, "redis", func(context.Context) (*database.RedisClient, error) {
		return database.NewRedisClient(configs.Redis)
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	srv.OnShutdown(func(context.Context) error { return redisClient.Close() })

	store.redis = redisClient
	store.locations = locationRepository.NewRedisLocationRepository(redisClient, dispatchCfg.PositionRetention)
	store.rides = rideRepository.NewRideRepository(postgresClient.GetDB())
	store.drivers = driverRepository.NewDriverRepository(postgresClient.GetDB())
	store.checkers["postgres"] = health.CheckerFunc(postgresClient.Ping)
	store.checkers["redis"] = health.CheckerFunc(redisClient.Ping)
	return store
}
