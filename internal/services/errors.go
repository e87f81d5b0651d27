package services

import "errors"

var (
	// ErrRestaurantNotFound is returned when a restaurant id does not exist
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrPizzaNotFound is returned when a pizza id does not exist
	ErrPizzaNotFound = errors.New("pizza not found")
	// ErrInvalidPrice is returned when a price falls outside the allowed range
	ErrInvalidPrice = errors.New("price must be between 1 and 30")
	// ErrClientNotFound is returned when an OAuth client id does not exist
	ErrClientNotFound = errors.New("client not found")
)
