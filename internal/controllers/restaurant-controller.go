package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/metrics"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants lists every restaurant
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID returns a restaurant with its menu
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its menu
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
	metrics *metrics.Manager
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService, m *metrics.Manager) RestaurantController {
	return &restaurantController{service: service, metrics: m}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (rc *restaurantController) GetAllRestaurants(c *gin.Context) {
	restaurants, err := rc.service.GetAllRestaurants()
	if err != nil {
		rc.metrics.RecordDatabaseError("list_restaurants")
		log.WithError(err).Error("Failed to list restaurants")
		serverError(c, err)
		return
	}

	summaries := make([]models.RestaurantSummary, 0, len(restaurants))
	for _, restaurant := range restaurants {
		summaries = append(summaries, restaurant.Summary())
	}
	c.JSON(http.StatusOK, summaries)
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant with the pizzas it offers
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetail
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (rc *restaurantController) GetRestaurantByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		notFound(c, models.MsgRestaurantNotFound)
		return
	}

	restaurant, err := rc.service.GetRestaurantByID(id)
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			notFound(c, models.MsgRestaurantNotFound)
			return
		}
		rc.metrics.RecordDatabaseError("get_restaurant")
		log.WithError(err).WithField("restaurant_id", id).Error("Failed to load restaurant")
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant.Detail())
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant together with every pizza it offers
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 401 {object} models.OAuth2Error
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /restaurants/{id} [delete]
func (rc *restaurantController) DeleteRestaurant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		notFound(c, models.MsgRestaurantNotFound)
		return
	}

	if err := rc.service.DeleteRestaurant(id); err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			notFound(c, models.MsgRestaurantNotFound)
			return
		}
		rc.metrics.RecordDatabaseError("delete_restaurant")
		log.WithError(err).WithField("restaurant_id", id).Error("Failed to delete restaurant")
		serverError(c, err)
		return
	}

	rc.metrics.RecordRestaurantDeleted()
	log.WithFields(logrus.Fields{"restaurant_id": id}).Info("Restaurant deleted")
	c.Status(http.StatusNoContent)
}
