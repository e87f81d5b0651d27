package services

import (
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllRestaurants(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)

	restaurants, err := service.GetAllRestaurants()
	require.NoError(t, err)
	assert.Empty(t, restaurants)

	f := seedFixtures(t, db)

	restaurants, err = service.GetAllRestaurants()
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, f.restaurants[0].ID, restaurants[0].ID)
	assert.Equal(t, "Sanjay's Pizza", restaurants[1].Name)
}

func TestGetRestaurantByID(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)
	f := seedFixtures(t, db)

	offering := models.RestaurantPizza{Price: 7, RestaurantID: f.restaurants[0].ID, PizzaID: f.pizzas[1].ID}
	require.NoError(t, db.Omit("Restaurant", "Pizza").Create(&offering).Error)

	t.Run("loads offerings with pizzas", func(t *testing.T) {
		restaurant, err := service.GetRestaurantByID(f.restaurants[0].ID)
		require.NoError(t, err)
		require.Len(t, restaurant.RestaurantPizzas, 1)
		assert.Equal(t, 7, restaurant.RestaurantPizzas[0].Price)
		assert.Equal(t, "Geri", restaurant.RestaurantPizzas[0].Pizza.Name)
	})

	t.Run("restaurant without offerings", func(t *testing.T) {
		restaurant, err := service.GetRestaurantByID(f.restaurants[1].ID)
		require.NoError(t, err)
		assert.Empty(t, restaurant.RestaurantPizzas)
	})

	t.Run("missing restaurant", func(t *testing.T) {
		_, err := service.GetRestaurantByID(999)
		assert.ErrorIs(t, err, ErrRestaurantNotFound)
	})
}

func TestDeleteRestaurantCascades(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)
	f := seedFixtures(t, db)

	offerings := []models.RestaurantPizza{
		{Price: 5, RestaurantID: f.restaurants[0].ID, PizzaID: f.pizzas[0].ID},
		{Price: 9, RestaurantID: f.restaurants[0].ID, PizzaID: f.pizzas[1].ID},
		{Price: 3, RestaurantID: f.restaurants[1].ID, PizzaID: f.pizzas[0].ID},
	}
	require.NoError(t, db.Omit("Restaurant", "Pizza").Create(&offerings).Error)

	require.NoError(t, service.DeleteRestaurant(f.restaurants[0].ID))

	var remaining int64
	db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", f.restaurants[0].ID).Count(&remaining)
	assert.Zero(t, remaining)

	var others int64
	db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", f.restaurants[1].ID).Count(&others)
	assert.Equal(t, int64(1), others)

	_, err := service.GetRestaurantByID(f.restaurants[0].ID)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	// pizzas are untouched
	var pizzas int64
	db.Model(&models.Pizza{}).Count(&pizzas)
	assert.Equal(t, int64(2), pizzas)
}

func TestDeleteMissingRestaurant(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)

	err := service.DeleteRestaurant(42)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestCreateRestaurant(t *testing.T) {
	db := setupTestDB(t)
	service := NewRestaurantService(db)

	created, err := service.CreateRestaurant(models.Restaurant{Name: "Kiki's Pizza", Address: "address3"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}
