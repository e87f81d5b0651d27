package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/auth"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/routes"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// @title Pizza Restaurants API
// @version 1.0
// @description Restaurants, pizzas and the menu offerings linking them
// @host localhost:5555
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	// Initialize database connection
	db := setupDatabase(configuration)

	metricsManager := metrics.NewManager()

	router := routes.NewRouter(db, routes.Options{
		AuthEnabled:    configuration.AuthEnabled,
		JWTSecret:      configuration.JWTSecret,
		AllowedOrigins: configuration.AllowedOrigins(),
		Logger:         log.StandardLogger(),
		Metrics:        metricsManager,
	})

	srv := &http.Server{
		Addr:              configuration.Address(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
	closeDatabase(db)
	log.Info("Server stopped")
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// loadConfig loads the application configuration
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setUpLogger configures the standard logger and every package logger.
// LOG_LEVEL wins when it was set explicitly, otherwise APP_ENV picks the level.
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})

	level := config.LevelForEnvironment(conf.Environment)
	if config.GetEnvWithDefault("LOG_LEVEL", "") != "" {
		parsed, err := log.ParseLevel(conf.LogLevel)
		checkPanicErr(err)
		level = parsed
	}
	log.SetLevel(level)

	database.SetLogLevel(level)
	controllers.SetLogLevel(level)
	auth.SetLogLevel(level)

	if level != log.DebugLevel && level != log.TraceLevel {
		gin.SetMode(gin.ReleaseMode)
	}
}

// setupDatabase opens the database, migrates the schema and seeds it when requested
func setupDatabase(conf *config.Config) *gorm.DB {
	dbConfig, err := conf.Database()
	checkPanicErr(err)

	db, err := database.InitDatabase(dbConfig)
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	if conf.SeedData {
		checkPanicErr(database.Seed(db))
	} else {
		log.Info("Database seeding disabled")
	}
	return db
}

func closeDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Warn("Could not get database handle")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Warn("Closing database failed")
	}
}
