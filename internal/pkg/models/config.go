package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Gateway  GatewayConfig
	Internal InternalConfig
	Logger   LoggerConfig
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
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
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

// GatewayConfig contains the hosted payment gateway handshake configuration.
// MerchantKey, MerchantSalt and BaseURL are mandatory; the service refuses to
// start without them and every checkout re-checks them before hashing.
type GatewayConfig struct {
	MerchantKey  string
	MerchantSalt string
	PaymentURL   string // hosted checkout page the browser form posts to
	BaseURL      string // public base URL used to build surl/furl
	ProductInfo  string // fixed product description sent to the gateway
	TxnPrefix    string // transaction id prefix
}

// InternalConfig contains credentials for operator-facing endpoints
type InternalConfig struct {
	APIKey string
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
