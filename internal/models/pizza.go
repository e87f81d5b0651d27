package models

// Pizza represents a pizza that restaurants can put on their menu
type Pizza struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Ingredients string `json:"ingredients"`

	RestaurantPizzas []RestaurantPizza `json:"-"`
}

// PizzaSummary is the public representation of a pizza
type PizzaSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// Summary returns the public representation of the pizza
func (p Pizza) Summary() PizzaSummary {
	return PizzaSummary{
		ID:          p.ID,
		Name:        p.Name,
		Ingredients: p.Ingredients,
	}
}
