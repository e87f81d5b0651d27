package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
}

type controller struct {
	service services.PizzaService
	metrics *metrics.Manager
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService, m *metrics.Manager) PizzaController {
	return &controller{service: service, metrics: m}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *controller) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas()
	if err != nil {
		c.metrics.RecordDatabaseError("list_pizzas")
		log.WithError(err).Error("Failed to list pizzas")
		serverError(ctx, err)
		return
	}

	summaries := make([]models.PizzaSummary, 0, len(pizzas))
	for _, pizza := range pizzas {
		summaries = append(summaries, pizza.Summary())
	}
	ctx.JSON(http.StatusOK, summaries)
}
