package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/quickbites/ordering/internal/api/middleware"
	"github.com/quickbites/ordering/internal/models"
	service "github.com/quickbites/ordering/internal/services"
	"github.com/quickbites/ordering/internal/utils"
	"github.com/quickbites/ordering/internal/utils/response"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

// Checkout places an order from the submitted cart lines: price snapshot,
// coupon discount, payment authorization and the atomic order write.
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")

			return
		}

		logger = logger.With(slog.Int64("customerId", req.CustomerID), slog.Int64("restaurantId", req.RestaurantID))

		order, err := h.checkoutService.Checkout(r.Context(), &req)
		if err != nil {
			logger.Error("Checkout failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order placed", slog.Int64("orderId", order.OrderID), slog.Float64("total", order.TotalPrice))
		response.Success(w, http.StatusCreated, models.CheckoutResponse{Order: order})
	}
}
