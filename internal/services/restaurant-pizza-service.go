package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService manages the menu offerings linking restaurants and pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates the input, checks both references and
	// stores the offering. The returned value has Pizza and Restaurant loaded.
	CreateRestaurantPizza(input models.RestaurantPizzaInput) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(input models.RestaurantPizzaInput) (models.RestaurantPizza, error) {
	if !models.ValidPrice(input.Price) {
		return models.RestaurantPizza{}, ErrInvalidPrice
	}

	var created models.RestaurantPizza
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := tx.First(&pizza, input.PizzaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPizzaNotFound
			}
			return fmt.Errorf("loading pizza %d: %w", input.PizzaID, err)
		}

		var restaurant models.Restaurant
		if err := tx.First(&restaurant, input.RestaurantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRestaurantNotFound
			}
			return fmt.Errorf("loading restaurant %d: %w", input.RestaurantID, err)
		}

		rp := models.RestaurantPizza{
			Price:        input.Price,
			PizzaID:      pizza.ID,
			RestaurantID: restaurant.ID,
		}
		if err := tx.Omit(clause.Associations).Create(&rp).Error; err != nil {
			return err
		}

		rp.Pizza = pizza
		rp.Restaurant = restaurant
		created = rp
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return created, nil
}
