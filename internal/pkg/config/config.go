package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// InitConfig loads the env file in local mode, then builds the config from the
// environment and merges the optional dispatch tuning file on top.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}

	configs := loadConfigFromEnv()
	if configs.Dispatch.TuningFile != "" {
		if err := LoadTuning(configs.Dispatch.TuningFile, &configs.Dispatch); err != nil {
			log.Println("error loading dispatch tuning file", err)
		}
	}
	return configs
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "dispatch")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 10)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 10)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)
	configs.Server.InternalAPIKey = GetEnv("INTERNAL_API_KEY", "")

	// Storage backend
	configs.Storage.Backend = GetEnv("APP_STORAGE", models.StorageExternal)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "postgres")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// Dispatch config
	d := DefaultDispatchConfig()
	d.TuningFile = GetEnv("DISPATCH_TUNING_FILE", "")
	d.SearchRadiusKm = GetEnvAsFloat("DISPATCH_SEARCH_RADIUS_KM", d.SearchRadiusKm)
	d.MaxCandidates = GetEnvAsInt("DISPATCH_MAX_CANDIDATES", d.MaxCandidates)
	d.DriverFreshness = GetEnvAsDuration("DISPATCH_DRIVER_FRESHNESS", d.DriverFreshness)
	d.RideRequestFreshness = GetEnvAsDuration("DISPATCH_RIDE_REQUEST_FRESHNESS", d.RideRequestFreshness)
	d.AverageSpeedKmh = GetEnvAsFloat("DISPATCH_AVERAGE_SPEED_KMH", d.AverageSpeedKmh)
	d.OfferTimeout = GetEnvAsDuration("DISPATCH_OFFER_TIMEOUT", d.OfferTimeout)
	d.UpdateInterval = GetEnvAsDuration("DISPATCH_LOCATION_UPDATE_INTERVAL", d.UpdateInterval)
	d.PositionRetention = GetEnvAsDuration("DISPATCH_POSITION_RETENTION", d.PositionRetention)
	d.RideCreateLimit = GetEnvAsInt("DISPATCH_RIDE_CREATE_LIMIT", d.RideCreateLimit)
	d.RideCreateWindow = GetEnvAsDuration("DISPATCH_RIDE_CREATE_WINDOW", d.RideCreateWindow)
	d.ActiveRideInterval = GetEnvAsDuration("DISPATCH_ACTIVE_RIDE_INTERVAL", d.ActiveRideInterval)
	d.RideStreamInterval = GetEnvAsDuration("DISPATCH_RIDE_STREAM_INTERVAL", d.RideStreamInterval)
	d.StalenessInterval = GetEnvAsDuration("DISPATCH_STALENESS_INTERVAL", d.StalenessInterval)
	d.DashboardInterval = GetEnvAsDuration("DISPATCH_DASHBOARD_INTERVAL", d.DashboardInterval)
	d.AgingAfter = GetEnvAsDuration("DISPATCH_LOCATION_AGING_AFTER", d.AgingAfter)
	d.StaleAfter = GetEnvAsDuration("DISPATCH_LOCATION_STALE_AFTER", d.StaleAfter)
	d.MaxJobFailures = GetEnvAsInt("DISPATCH_MAX_JOB_FAILURES", d.MaxJobFailures)
	d.TaxRate = GetEnvAsFloat("DISPATCH_TAX_RATE", d.TaxRate)
	d.Currency = GetEnv("DISPATCH_CURRENCY", d.Currency)
	d.Geofence.Strategy = GetEnv("DISPATCH_GEOFENCE_STRATEGY", d.Geofence.Strategy)
	configs.Dispatch = d

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration parses values like "30s" or "5m"
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
