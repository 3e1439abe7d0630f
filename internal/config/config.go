package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds SQLite database configuration
type DatabaseConfig struct {
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	// GroupsSeedPath and EventsSeedPath point at the JSON fixtures loaded on
	// first boot when the corresponding tables are empty
	GroupsSeedPath string `mapstructure:"groups_seed_path"`
	EventsSeedPath string `mapstructure:"events_seed_path"`
}

// LedgerConfig holds external ledger gateway configuration. When RPCURL,
// TokenContract or BadgeContract is missing (or Mock is set) the in-process
// mock gateway is used instead of the live one.
type LedgerConfig struct {
	RPCURL        string        `mapstructure:"rpc_url"`
	ChainID       int64         `mapstructure:"chain_id"`
	TokenContract string        `mapstructure:"token_contract"`
	BadgeContract string        `mapstructure:"badge_contract"`
	PrivateKey    string        `mapstructure:"private_key"`
	StoreAddress  string        `mapstructure:"store_address"`
	Decimals      uint8         `mapstructure:"decimals"`
	Symbol        string        `mapstructure:"symbol"`
	Mock          bool          `mapstructure:"mock"`
	ConfirmWait   time.Duration `mapstructure:"confirm_wait"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// BootstrapConfig holds the admin account created on first boot. No account
// is created when the password is empty.
type BootstrapConfig struct {
	AdminUsername string `mapstructure:"admin_username"`
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
}

// WorkerConfig holds worker pool configuration for batch reward distribution
type WorkerConfig struct {
	PoolSize  int `mapstructure:"pool_size"`
	QueueSize int `mapstructure:"queue_size"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Ledger     LedgerConfig    `mapstructure:"ledger"`
	Auth       AuthConfig      `mapstructure:"auth"`
	Worker     WorkerConfig    `mapstructure:"worker"`
	Bootstrap  BootstrapConfig `mapstructure:"bootstrap"`
	// PublicBaseURL is used to build badge metadata references
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.path", "data/sds.sqlite")
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("database.max_idle_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("ledger.chain_id", 80002) // Polygon Amoy
	v.SetDefault("ledger.decimals", 18)
	v.SetDefault("ledger.symbol", "SDC")
	v.SetDefault("ledger.confirm_wait", "90s")
	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("bootstrap.admin_username", "admin")
	v.SetDefault("bootstrap.admin_email", "admin@sundevilsync.asu.edu")
	v.SetDefault("worker.pool_size", 10)
	v.SetDefault("worker.queue_size", 256)
	v.SetDefault("public_base_url", "http://localhost:3000")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Auth.JWTSecret == "" && !config.Debug {
		return nil, errors.New("auth.jwt_secret is required outside debug mode")
	}

	return &config, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("SDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// This is required for viper to map env vars to config struct fields when no
// config file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"public_base_url",
		// Database
		"database.path",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		"database.groups_seed_path",
		"database.events_seed_path",
		// Ledger
		"ledger.rpc_url",
		"ledger.chain_id",
		"ledger.token_contract",
		"ledger.badge_contract",
		"ledger.private_key",
		"ledger.store_address",
		"ledger.decimals",
		"ledger.symbol",
		"ledger.mock",
		"ledger.confirm_wait",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_secret",
		"auth.token_ttl",
		// Worker
		"worker.pool_size",
		"worker.queue_size",
		// Bootstrap
		"bootstrap.admin_username",
		"bootstrap.admin_email",
		"bootstrap.admin_password",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// UsesMockLedger reports whether the gateway should run in mock mode: either
// explicitly requested, or forced by missing connection details.
func (c *LedgerConfig) UsesMockLedger() bool {
	return c.Mock || c.RPCURL == "" || c.TokenContract == "" || c.BadgeContract == "" || c.PrivateKey == ""
}
