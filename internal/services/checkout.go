package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	appErrors "github.com/quickbites/ordering/internal/errors"
	"github.com/quickbites/ordering/internal/models"
	repository "github.com/quickbites/ordering/internal/repositories"
)

type CheckoutService interface {
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Order, error)
}

type checkoutService struct {
	orderRepo    repository.OrderRepository
	menuRepo     repository.MenuRepository
	customerRepo repository.CustomerRepository
	coupons      CouponService
	payments     *PaymentService
}

func NewCheckoutService(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuRepository,
	customerRepo repository.CustomerRepository,
	coupons CouponService,
	payments *PaymentService,
) CheckoutService {
	return &checkoutService{
		orderRepo:    orderRepo,
		menuRepo:     menuRepo,
		customerRepo: customerRepo,
		coupons:      coupons,
		payments:     payments,
	}
}

// Checkout runs one order placement end to end: build a cart from catalog
// snapshots, apply the coupon, compute the total, authorize payment, then
// persist the order atomically. The cart is cleared only after the order is
// durable. Nothing here coordinates concurrent checkouts for the same
// customer; two parallel calls can both succeed.
func (s *checkoutService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.Order, error) {

	customer, err := s.customerRepo.GetCustomerByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Customer not found").WithError(err)
		}

		return nil, appErrors.PersistenceFailureError("Failed to resolve customer").WithError(err)
	}

	restaurant, err := s.menuRepo.GetRestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Restaurant not found").WithError(err)
		}

		return nil, appErrors.PersistenceFailureError("Failed to resolve restaurant").WithError(err)
	}

	cart, err := s.buildCart(ctx, restaurant.RestaurantID, req.Items)
	if err != nil {
		return nil, err
	}

	// Coupon validity is not checked here: an applied but expired coupon
	// simply contributes zero discount at total time.
	var coupon *models.Coupon

	if req.CouponCode != "" {

		coupon, err = s.coupons.GetCouponByCode(ctx, req.CouponCode)
		if err != nil {
			return nil, err
		}

		cart.ApplyCoupon(coupon)
	}

	total := cart.CalculateTotal()

	if !s.payments.Process(MethodFromDetails(&req.Payment), total) {
		return nil, appErrors.BadRequestError("Payment was declined")
	}

	var couponID *int64
	if coupon != nil && coupon.IsValid() {
		couponID = &coupon.CouponID
	}

	order, err := models.NewOrder(customer.Account.AccountID, restaurant.RestaurantID, total, models.OrderStatusPending, couponID)
	if err != nil {
		return nil, err
	}

	for _, line := range cart.Items() {

		item, err := models.NewOrderItem(0, 0, line.ItemID, line.Quantity, line.UnitPrice)
		if err != nil {
			return nil, err
		}

		order.AddItem(*item)
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, appErrors.PersistenceFailureError("Failed to place order").WithError(err)
	}

	cart.Clear()

	return order, nil
}

// buildCart snapshots every requested line from the catalog. Prices and names
// are captured here and never re-read afterwards.
func (s *checkoutService) buildCart(ctx context.Context, restaurantID int64, items []models.CheckoutItem) (*models.Cart, error) {

	cart := models.NewCart()

	for _, reqItem := range items {

		menuItem, err := s.menuRepo.GetMenuItemByID(ctx, reqItem.ItemID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.NotFoundError(fmt.Sprintf("Menu item %d not found", reqItem.ItemID)).WithError(err)
			}

			return nil, appErrors.PersistenceFailureError("Failed to resolve menu item").WithError(err)
		}

		if menuItem.RestaurantID != restaurantID {
			return nil, appErrors.BadRequestError(fmt.Sprintf("Menu item %d does not belong to the ordered restaurant", reqItem.ItemID))
		}

		if !menuItem.Available {
			return nil, appErrors.BadRequestError(fmt.Sprintf("Menu item %d is not available", reqItem.ItemID))
		}

		if err := cart.AddItem(menuItem, reqItem.Quantity); err != nil {
			return nil, err
		}
	}

	if cart.IsEmpty() {
		return nil, appErrors.BadRequestError("Cannot place an order with an empty cart")
	}

	return cart, nil
}
