package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			} else {
				os.Unsetenv(tt.key)
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	vars := []string{
		"APP_PORT", "APP_HOST", "LOG_LEVEL", "JWT_SECRET", "DB_URI", "DB_PATH",
		"AUTH_ENABLED", "SEED_DATABASE", "CONFIG_FILE", "CORS_ALLOWED_ORIGINS",
	}

	// Helper function to cleanup env vars
	cleanupTestEnv := func() {
		for _, v := range vars {
			os.Unsetenv(v)
		}
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("APP_PORT", "9000")
		os.Setenv("APP_HOST", "127.0.0.1")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("JWT_SECRET", "super_secret_jwt_key")
		os.Setenv("AUTH_ENABLED", "true")
		os.Setenv("SEED_DATABASE", "false")
		defer cleanupTestEnv()

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}

		if config.Port != 9000 {
			t.Errorf("Port = %d, expected 9000", config.Port)
		}
		if config.Host != "127.0.0.1" {
			t.Errorf("Host = %s, expected 127.0.0.1", config.Host)
		}
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %s, expected debug", config.LogLevel)
		}
		if !config.AuthEnabled {
			t.Error("AuthEnabled = false, expected true")
		}
		if config.SeedData {
			t.Error("SeedData = true, expected false")
		}
		if config.JWTSecret != "super_secret_jwt_key" {
			t.Errorf("JWTSecret = %s, expected super_secret_jwt_key", config.JWTSecret)
		}
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("APP_PORT", "not_a_number")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is invalid")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should fail with out of range port", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("APP_PORT", "70000")
		defer cleanupTestEnv()

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is out of range")
		}
	})

	t.Run("should fail with unsupported database uri", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("DB_URI", "mysql://user:pw@localhost/db")
		defer cleanupTestEnv()

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should return error when DB_URI has an unsupported scheme")
		}
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}

		if config.Port != 5555 {
			t.Errorf("Port = %d, expected default 5555", config.Port)
		}
		if config.Host != "0.0.0.0" {
			t.Errorf("Host = %s, expected default 0.0.0.0", config.Host)
		}
		if config.LogLevel != "info" {
			t.Errorf("LogLevel = %s, expected default info", config.LogLevel)
		}
		if config.DBPath != "app.db" {
			t.Errorf("DBPath = %s, expected default app.db", config.DBPath)
		}
		if config.AuthEnabled {
			t.Error("AuthEnabled should default to false")
		}
		if !config.SeedData {
			t.Error("SeedData should default to true")
		}
	})

	t.Run("should layer env over config file", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()

		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "app_port: 7000\napp_host: filehost\ndb_path: file.db\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("writing config file: %v", err)
		}
		os.Setenv("CONFIG_FILE", path)
		os.Setenv("APP_HOST", "envhost")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}

		if config.Port != 7000 {
			t.Errorf("Port = %d, expected 7000 from file", config.Port)
		}
		if config.Host != "envhost" {
			t.Errorf("Host = %s, expected envhost from environment", config.Host)
		}
		if config.DBPath != "file.db" {
			t.Errorf("DBPath = %s, expected file.db from file", config.DBPath)
		}
	})

	t.Run("should fail with missing config file", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
		defer cleanupTestEnv()

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should return error when CONFIG_FILE does not exist")
		}
	})
}

func TestConfigDatabase(t *testing.T) {
	t.Run("uses discrete settings without a uri", func(t *testing.T) {
		config := Default()

		db, err := config.Database()
		if err != nil {
			t.Fatalf("Database() returned error: %v", err)
		}
		if db.Driver != "sqlite" || db.Path != "app.db" {
			t.Errorf("Database() = %+v, expected sqlite app.db", db)
		}
	})

	t.Run("uri overrides discrete settings", func(t *testing.T) {
		config := Default()
		config.DatabaseURI = "postgresql://pizza:pw@db:5432/restaurants"

		db, err := config.Database()
		if err != nil {
			t.Fatalf("Database() returned error: %v", err)
		}
		if db.Driver != "postgres" || db.Host != "db" || db.Name != "restaurants" {
			t.Errorf("Database() = %+v, expected postgres on db/restaurants", db)
		}
	})
}

func TestConfigString(t *testing.T) {
	config := Default()
	config.JWTSecret = "do-not-print"
	config.DBPassword = "hunter2"
	config.DatabaseURI = "postgres://pizza:hunter2@db:5432/restaurants"

	out := config.String()

	for _, secret := range []string{"do-not-print", "hunter2"} {
		if strings.Contains(out, secret) {
			t.Errorf("String() leaked %q: %s", secret, out)
		}
	}
}

func TestAllowedOrigins(t *testing.T) {
	config := Default()
	config.CORSAllowedOrigins = "http://localhost:3000, https://pizza.example ,"

	origins := config.AllowedOrigins()

	if len(origins) != 2 || origins[0] != "http://localhost:3000" || origins[1] != "https://pizza.example" {
		t.Errorf("AllowedOrigins() = %v", origins)
	}
}

func TestLevelForEnvironment(t *testing.T) {
	cases := map[string]logrus.Level{
		"development": logrus.DebugLevel,
		"production":  logrus.ErrorLevel,
		"staging":     logrus.InfoLevel,
	}
	for environment, expected := range cases {
		if got := LevelForEnvironment(environment); got != expected {
			t.Errorf("LevelForEnvironment(%q) = %v, expected %v", environment, got, expected)
		}
	}
}

func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
