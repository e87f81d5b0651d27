package routes

import (
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/pizza-restaurants-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/auth"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const serviceName = "pizza-restaurants-api"

// Options controls the optional parts of the router
type Options struct {
	// AuthEnabled protects the write routes with OAuth2 bearer tokens
	AuthEnabled bool
	JWTSecret   string

	AllowedOrigins []string

	// Logger receives request logs; nil disables request logging
	Logger *logrus.Logger
	// Metrics records request and domain metrics; nil disables /metrics
	Metrics *metrics.Manager
}

// NewRouter builds the gin engine with every route of the API
func NewRouter(db *gorm.DB, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if opts.Logger != nil {
		router.Use(middleware.RequestLogger(opts.Logger))
	}
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}
	router.Use(middleware.CORS(opts.AllowedOrigins))

	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db), opts.Metrics)
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db), opts.Metrics)
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db), opts.Metrics)

	router.GET("/", indexHandler)
	router.GET("/health", healthCheckHandler)
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	// Public read routes
	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.GET("/pizzas", pizzaController.GetAllPizzas)

	// Write routes, admin-only when auth is enabled
	writeApi := router.Group("")
	if opts.AuthEnabled {
		oauthService := auth.NewOAuthService(db, opts.JWTSecret)
		router.POST("/oauth/token", oauthService.HandleToken)

		writeApi.Use(middleware.OAuth2Auth([]byte(opts.JWTSecret)), middleware.RequireRole(models.RoleAdmin))
	}
	{
		writeApi.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)
		writeApi.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// indexHandler serves the landing page
func indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Code challenge</h1>"))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	})
}
