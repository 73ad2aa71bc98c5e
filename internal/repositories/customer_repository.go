package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quickbites/ordering/internal/models"
	"github.com/quickbites/ordering/internal/utils"
)

// CustomerRepository resolves the account (and optional profile) an order is
// placed for. Registration and authentication live outside this service.
type CustomerRepository interface {
	GetCustomerByID(ctx context.Context, accountID int64) (*models.Customer, error)
}

type customerRepository struct {
	DB *sql.DB
}

func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{DB: db}
}

func (r *customerRepository) GetCustomerByID(ctx context.Context, accountID int64) (*models.Customer, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT a.account_id, a.username, a.email, p.address, p.phone
		FROM accounts a
		LEFT JOIN customer_profiles p ON p.account_id = a.account_id
		WHERE a.account_id = $1
	`

	customer := &models.Customer{}

	var address, phone sql.NullString

	err := r.DB.QueryRowContext(dbCtx, query, accountID).
		Scan(&customer.Account.AccountID, &customer.Account.Username, &customer.Account.Email, &address, &phone)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if address.Valid || phone.Valid {
		customer.Profile = &models.CustomerProfile{
			AccountID: customer.Account.AccountID,
			Address:   address.String,
			Phone:     phone.String,
		}
	}

	return customer, nil
}
