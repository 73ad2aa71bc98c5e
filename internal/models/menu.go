package models

import (
	"strings"

	"github.com/quickbites/ordering/internal/errors"
)

// MenuItem is a catalog entry. The checkout flow only reads it to snapshot
// name and price into a cart line; catalog maintenance lives elsewhere.
type MenuItem struct {
	ItemID       int64   `json:"item_id"`
	RestaurantID int64   `json:"restaurant_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description,omitempty"`
	Available    bool    `json:"available"`
}

func NewMenuItem(itemID, restaurantID int64, name string, price float64, description string, available bool) (*MenuItem, error) {

	if strings.TrimSpace(name) == "" {
		return nil, errors.ValidationError("Name cannot be empty")
	}

	if price < 0 {
		return nil, errors.ValidationError("Price must be greater than or equal to 0")
	}

	return &MenuItem{
		ItemID:       itemID,
		RestaurantID: restaurantID,
		Name:         strings.TrimSpace(name),
		Price:        price,
		Description:  description,
		Available:    available,
	}, nil
}

type Restaurant struct {
	RestaurantID int64   `json:"restaurant_id"`
	Name         string  `json:"name"`
	Address      string  `json:"address,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	Rating       float64 `json:"rating"`
}

func NewRestaurant(restaurantID int64, name, address, phone string, rating float64) (*Restaurant, error) {

	if strings.TrimSpace(name) == "" {
		return nil, errors.ValidationError("Name cannot be empty")
	}

	if rating < 0 || rating > 5 {
		return nil, errors.ValidationError("Rating must be between 0 and 5")
	}

	return &Restaurant{
		RestaurantID: restaurantID,
		Name:         strings.TrimSpace(name),
		Address:      address,
		Phone:        phone,
		Rating:       rating,
	}, nil
}
