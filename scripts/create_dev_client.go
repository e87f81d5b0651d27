package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Parse command line flags
	role := flag.String("role", models.RoleAdmin, "Client role (admin or user)")
	clientID := flag.String("id", "", "Client ID (defaults to dev-<role>-client)")
	clientSecret := flag.String("secret", "", "Client secret (generated when empty)")
	flag.Parse()

	if *role != models.RoleAdmin && *role != models.RoleUser {
		log.Fatalf("Invalid role %q: must be %s or %s", *role, models.RoleAdmin, models.RoleUser)
	}
	if *clientID == "" {
		*clientID = fmt.Sprintf("dev-%s-client", *role)
	}
	if *clientSecret == "" {
		*clientSecret = uuid.NewString()
	}

	_ = godotenv.Load()
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	dbConfig, err := conf.Database()
	if err != nil {
		log.Fatal("Invalid database configuration: ", err)
	}
	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	clients := services.NewClientService(db)

	// Check if client already exists
	if existing, err := clients.GetClientByID(*clientID); err == nil {
		fmt.Printf("Client %q already exists with role '%s'; secrets are stored hashed and cannot be shown.\n", existing.ID, existing.Role)
		return
	} else if !errors.Is(err, services.ErrClientNotFound) {
		log.Fatal("Failed to look up client: ", err)
	}

	client := &models.OAuthClient{
		ID:     *clientID,
		Secret: *clientSecret,
		Name:   fmt.Sprintf("Development %s Client", *role),
		Domain: "http://localhost",
		Role:   *role,
		Scopes: "read write",
	}
	if err := clients.CreateClient(client); err != nil {
		log.Fatal("Failed to create client: ", err)
	}

	fmt.Printf("✓ Development OAuth client created for role '%s'!\n", *role)
	fmt.Printf("Client ID: %s\n", *clientID)
	fmt.Printf("Client Secret: %s\n", *clientSecret)
	fmt.Println("\nUse these credentials for testing:")
	fmt.Printf("curl -X POST http://localhost:%d/oauth/token \\\n", conf.Port)
	fmt.Printf("  -d 'grant_type=client_credentials' \\\n")
	fmt.Printf("  -d 'client_id=%s' \\\n", *clientID)
	fmt.Printf("  -d 'client_secret=%s'\n", *clientSecret)
}
