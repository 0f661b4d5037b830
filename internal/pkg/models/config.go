package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	NewRelic NewRelicConfig
	Storage  StorageConfig
	Dispatch DispatchConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	InternalAPIKey  string
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains Zap logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	Enabled     bool
	LicenseKey  string
	AppName     string
	ForwardLogs bool
}

// Storage backends
const (
	StorageExternal = "external" // redis for positions, postgres for rides and driver profiles
	StorageMemory   = "memory"
)

// StorageConfig selects where positions, rides and driver profiles live
type StorageConfig struct {
	Backend string
}

// Geofence strategies
const (
	GeofenceBoundingBox = "bbox"
	GeofencePolygon     = "polygon"
)

// GeofenceConfig describes the service area
type GeofenceConfig struct {
	Strategy string     `mapstructure:"strategy"`
	Polygon  []Location `mapstructure:"polygon"`
}

// DispatchConfig holds the matching, pricing and scheduling knobs
type DispatchConfig struct {
	TuningFile string

	SearchRadiusKm       float64
	MaxCandidates        int
	DriverFreshness      time.Duration
	RideRequestFreshness time.Duration
	AverageSpeedKmh      float64
	OfferTimeout         time.Duration
	UpdateInterval       time.Duration
	PositionRetention    time.Duration
	RideCreateLimit      int
	RideCreateWindow     time.Duration

	ActiveRideInterval time.Duration
	RideStreamInterval time.Duration
	StalenessInterval  time.Duration
	DashboardInterval  time.Duration
	AgingAfter         time.Duration
	StaleAfter         time.Duration
	MaxJobFailures     int

	TaxRate  float64
	Currency string
	Fares    map[VehicleType]FareRate
	Geofence GeofenceConfig

	// Drivers seeds the in-memory driver directory
	Drivers []DriverProfile
}
