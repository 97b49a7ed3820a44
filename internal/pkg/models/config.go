package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Daraja   DarajaConfig
	Sandbox  SandboxConfig
	Checkout CheckoutConfig
	Webhook  WebhookConfig
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

// DarajaConfig contains credentials and endpoints for the Daraja (M-Pesa) API
type DarajaConfig struct {
	Environment    string // "sandbox" or "production"
	BaseURL        string // overrides the environment default when set
	ConsumerKey    string
	ConsumerSecret string
	Shortcode      string
	Passkey        string
	CallbackURL    string
}

// SandboxConfig tunes the in-process gateway simulator
type SandboxConfig struct {
	ChargeDelayMs     int
	ChargeSuccessRate float64
	PayoutDelayMs     int
	PayoutSuccessRate float64
}

// CheckoutConfig contains the hosted checkout page configuration
type CheckoutConfig struct {
	AppURL string
}

// WebhookConfig contains outbound webhook delivery configuration
type WebhookConfig struct {
	TimeoutSeconds  int
	MaxResponseBody int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
