package models

const (
	// MinPrice is the lowest price a restaurant can list a pizza at
	MinPrice = 1
	// MaxPrice is the highest price a restaurant can list a pizza at
	MaxPrice = 30
)

// RestaurantPizza is a restaurant's listing of a pizza at a given price
type RestaurantPizza struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	Price        int  `gorm:"not null;check:chk_restaurant_pizzas_price,price >= 1 AND price <= 30" json:"price"`
	RestaurantID uint `gorm:"not null;index" json:"restaurant_id"`
	PizzaID      uint `gorm:"not null;index" json:"pizza_id"`

	Restaurant Restaurant `json:"-"`
	Pizza      Pizza      `json:"-"`
}

// RestaurantPizzaInput is the payload accepted when creating a restaurant pizza.
// Zero values count as missing, matching the presence rules of the API.
type RestaurantPizzaInput struct {
	Price        int  `json:"price" binding:"required,min=1,max=30"`
	PizzaID      uint `json:"pizza_id" binding:"required"`
	RestaurantID uint `json:"restaurant_id" binding:"required"`
}

// RestaurantPizzaNested is an offering as listed inside its restaurant
type RestaurantPizzaNested struct {
	ID           uint         `json:"id"`
	Pizza        PizzaSummary `json:"pizza"`
	PizzaID      uint         `json:"pizza_id"`
	Price        int          `json:"price"`
	RestaurantID uint         `json:"restaurant_id"`
}

// RestaurantPizzaExpanded is an offering with both of its references expanded
type RestaurantPizzaExpanded struct {
	ID           uint              `json:"id"`
	Pizza        PizzaSummary      `json:"pizza"`
	PizzaID      uint              `json:"pizza_id"`
	Price        int               `json:"price"`
	Restaurant   RestaurantSummary `json:"restaurant"`
	RestaurantID uint              `json:"restaurant_id"`
}

// Nested returns the representation used inside a restaurant detail.
// Pizza must be loaded.
func (rp RestaurantPizza) Nested() RestaurantPizzaNested {
	return RestaurantPizzaNested{
		ID:           rp.ID,
		Pizza:        rp.Pizza.Summary(),
		PizzaID:      rp.PizzaID,
		Price:        rp.Price,
		RestaurantID: rp.RestaurantID,
	}
}

// Expanded returns the representation returned on creation.
// Pizza and Restaurant must be loaded.
func (rp RestaurantPizza) Expanded() RestaurantPizzaExpanded {
	return RestaurantPizzaExpanded{
		ID:           rp.ID,
		Pizza:        rp.Pizza.Summary(),
		PizzaID:      rp.PizzaID,
		Price:        rp.Price,
		Restaurant:   rp.Restaurant.Summary(),
		RestaurantID: rp.RestaurantID,
	}
}

// ValidPrice reports whether price is inside the allowed range
func ValidPrice(price int) bool {
	return price >= MinPrice && price <= MaxPrice
}
