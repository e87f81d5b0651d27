package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// RestaurantPizzaController handles HTTP requests related to menu offerings
type RestaurantPizzaController interface {
	// CreateRestaurantPizza adds a pizza to a restaurant's menu
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
	metrics *metrics.Manager
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService, m *metrics.Manager) RestaurantPizzaController {
	return &restaurantPizzaController{service: service, metrics: m}
}

// CreateRestaurantPizza godoc
// @Summary Add a pizza to a restaurant's menu
// @Description Create a restaurant pizza with a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body models.RestaurantPizzaInput true "Offering"
// @Success 201 {object} models.RestaurantPizzaExpanded
// @Failure 400 {object} models.ErrorsResponse
// @Failure 401 {object} models.OAuth2Error
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorsResponse
// @Failure 500 {object} models.ErrorsResponse
// @Security BearerAuth
// @Router /restaurant_pizzas [post]
func (rc *restaurantPizzaController) CreateRestaurantPizza(c *gin.Context) {
	var input models.RestaurantPizzaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		rc.metrics.RecordValidationFailure("restaurant_pizzas")
		log.WithFields(logrus.Fields{"fields": invalidFields(err)}).WithError(err).Debug("Rejected restaurant pizza payload")
		errorsResponse(c, http.StatusBadRequest, models.MsgValidationErrors)
		return
	}

	created, err := rc.service.CreateRestaurantPizza(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPrice):
			rc.metrics.RecordValidationFailure("restaurant_pizzas")
			errorsResponse(c, http.StatusBadRequest, models.MsgValidationErrors)
		case errors.Is(err, services.ErrPizzaNotFound):
			errorsResponse(c, http.StatusNotFound, models.MsgPizzaNotFound)
		case errors.Is(err, services.ErrRestaurantNotFound):
			errorsResponse(c, http.StatusNotFound, models.MsgRestaurantNotFound)
		default:
			rc.metrics.RecordDatabaseError("create_restaurant_pizza")
			log.WithError(err).WithFields(logrus.Fields{
				"pizza_id":      input.PizzaID,
				"restaurant_id": input.RestaurantID,
			}).Error("Failed to create restaurant pizza")
			_ = c.Error(err)
			errorsResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	rc.metrics.RecordRestaurantPizzaCreated()
	c.JSON(http.StatusCreated, created.Expanded())
}

// invalidFields lists the failing field and rule pairs of a binding error
func invalidFields(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fe.Field()+":"+fe.Tag())
	}
	return fields
}
