package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quickbites/ordering/internal/models"
	"github.com/quickbites/ordering/internal/utils"
)

// MenuRepository is the read-only catalog view the checkout flow needs to
// snapshot prices and verify restaurant membership. Catalog maintenance is a
// separate concern and not exposed here.
type MenuRepository interface {
	GetMenuItemByID(ctx context.Context, itemID int64) (*models.MenuItem, error)
	GetRestaurantByID(ctx context.Context, restaurantID int64) (*models.Restaurant, error)
}

type menuRepository struct {
	DB *sql.DB
}

func NewMenuRepository(db *sql.DB) MenuRepository {
	return &menuRepository{DB: db}
}

func (r *menuRepository) GetMenuItemByID(ctx context.Context, itemID int64) (*models.MenuItem, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT item_id, restaurant_id, name, price, description, available
		FROM menu_items
		WHERE item_id = $1
	`

	item := &models.MenuItem{}

	var description sql.NullString

	err := r.DB.QueryRowContext(dbCtx, query, itemID).
		Scan(&item.ItemID, &item.RestaurantID, &item.Name, &item.Price, &description, &item.Available)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	item.Description = description.String

	return item, nil
}

func (r *menuRepository) GetRestaurantByID(ctx context.Context, restaurantID int64) (*models.Restaurant, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT restaurant_id, name, address, phone, rating
		FROM restaurants
		WHERE restaurant_id = $1
	`

	restaurant := &models.Restaurant{}

	var address, phone sql.NullString

	err := r.DB.QueryRowContext(dbCtx, query, restaurantID).
		Scan(&restaurant.RestaurantID, &restaurant.Name, &address, &phone, &restaurant.Rating)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	restaurant.Address = address.String
	restaurant.Phone = phone.String

	return restaurant, nil
}
