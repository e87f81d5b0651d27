package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// Config used for the application configuration.
// Values are layered: defaults, then an optional YAML file named by CONFIG_FILE,
// then environment variables. Keys match the environment variable names in lower case.
type Config struct {
	// Server Configuration
	Port        int    `koanf:"app_port" json:"port"`
	Host        string `koanf:"app_host" json:"host"`
	Environment string `koanf:"app_env" json:"environment"`

	// Logging configuration
	LogLevel string `koanf:"log_level" json:"log_level"`

	// Database configuration. DatabaseURI takes precedence over the discrete settings.
	DatabaseURI string `koanf:"db_uri" json:"database_uri"`
	DBDriver    string `koanf:"db_driver" json:"db_driver"`
	DBPath      string `koanf:"db_path" json:"db_path"`
	DBHost      string `koanf:"db_host" json:"db_host"`
	DBPort      string `koanf:"db_port" json:"db_port"`
	DBUser      string `koanf:"db_user" json:"db_user"`
	DBPassword  string `koanf:"db_password" json:"db_password"`
	DBName      string `koanf:"db_name" json:"db_name"`
	DBSSLMode   string `koanf:"db_sslmode" json:"db_sslmode"`
	SeedData    bool   `koanf:"seed_database" json:"seed_database"`

	// Security Configuration
	AuthEnabled bool   `koanf:"auth_enabled" json:"auth_enabled"`
	JWTSecret   string `koanf:"jwt_secret" json:"jwt_secret"`

	// CORSAllowedOrigins is a comma-separated list; "*" allows any origin
	CORSAllowedOrigins string `koanf:"cors_allowed_origins" json:"cors_allowed_origins"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Port:               5555,
		Host:               "0.0.0.0",
		Environment:        "development",
		LogLevel:           "info",
		DBDriver:           "sqlite",
		DBPath:             "app.db",
		DBHost:             "localhost",
		DBPort:             "5432",
		DBUser:             "user",
		DBName:             "pizza_restaurants",
		DBSSLMode:          "disable",
		SeedData:           true,
		AuthEnabled:        false,
		JWTSecret:          "secret",
		CORSAllowedOrigins: "*",
	}
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, LogLevel: %s, DatabaseURI: %s, DBDriver: %s, DBPath: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], SeedData: %t, AuthEnabled: %t, JWTSecret: [REDACTED], CORSAllowedOrigins: %s}",
		c.Port, c.Host, c.Environment, c.LogLevel, database.MaskURL(c.DatabaseURI), c.DBDriver, c.DBPath, c.DBHost, c.DBName, c.DBUser, c.SeedData, c.AuthEnabled, c.CORSAllowedOrigins)
}

// Address returns the host:port the server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AllowedOrigins splits CORSAllowedOrigins into its entries
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSAllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// Database builds the database configuration, resolving DatabaseURI when set
func (c *Config) Database() (database.DatabaseConfig, error) {
	base := database.DatabaseConfig{
		Driver:   c.DBDriver,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSSLMode,
		Path:     c.DBPath,
	}
	return database.ParseDatabaseURI(c.DatabaseURI, base)
}

// LoadConfig reads the configuration and returns a Config struct
// Returns an error if the config file cannot be read or a value is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration")
	k := koanf.New(".")

	if path := GetEnvWithDefault("CONFIG_FILE", ""); path != "" {
		log.WithField("config_file", path).Info("Loading configuration file")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// APP_PORT -> app_port, matching the koanf struct tags. Empty variables count as unset.
	envProvider := env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	config := Default()
	if err := k.UnmarshalWithConf("", config, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid APP_PORT %d: must be between 1 and 65535", c.Port)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if _, err := c.Database(); err != nil {
		return fmt.Errorf("invalid DB_URI: %w", err)
	}
	if c.AuthEnabled && c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required when AUTH_ENABLED is true")
	}
	return nil
}

// LevelForEnvironment maps APP_ENV to the default log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}
