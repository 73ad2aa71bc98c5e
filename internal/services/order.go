package service

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/quickbites/ordering/internal/errors"
	"github.com/quickbites/ordering/internal/models"
	repository "github.com/quickbites/ordering/internal/repositories"
)

type OrderService interface {
	GetOrderByID(ctx context.Context, orderID int64) (*models.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID int64) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) (*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID int64) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.PersistenceFailureError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

func (s *orderService) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]models.Order, error) {

	orders, err := s.orderRepo.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, appErrors.PersistenceFailureError("Failed to fetch orders").WithError(err)
	}

	return orders, nil
}

// UpdateOrderStatus sets a new status string. Statuses are free-form; only
// emptiness is rejected.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (*models.Order, error) {

	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.SetStatus(status); err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, order.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.PersistenceFailureError("Failed to update order status").WithError(err)
	}

	return order, nil
}
