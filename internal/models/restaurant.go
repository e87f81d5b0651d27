package models

// Restaurant represents a restaurant and its menu offerings
type Restaurant struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`

	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// RestaurantSummary is the representation used in restaurant listings
type RestaurantSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantDetail is a restaurant together with its menu offerings
type RestaurantDetail struct {
	ID               uint                    `json:"id"`
	Name             string                  `json:"name"`
	Address          string                  `json:"address"`
	RestaurantPizzas []RestaurantPizzaNested `json:"restaurant_pizzas"`
}

// Summary returns the listing representation of the restaurant
func (r Restaurant) Summary() RestaurantSummary {
	return RestaurantSummary{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
	}
}

// Detail returns the restaurant with its offerings.
// RestaurantPizzas and their Pizza must be preloaded.
func (r Restaurant) Detail() RestaurantDetail {
	offerings := make([]RestaurantPizzaNested, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		offerings = append(offerings, rp.Nested())
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: offerings,
	}
}
