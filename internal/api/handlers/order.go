package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/quickbites/ordering/internal/api/middleware"
	"github.com/quickbites/ordering/internal/errors"
	"github.com/quickbites/ordering/internal/models"
	service "github.com/quickbites/ordering/internal/services"
	"github.com/quickbites/ordering/internal/utils"
	"github.com/quickbites/ordering/internal/utils/response"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		order, err := h.orderService.GetOrderByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to fetch order", slog.Int64("orderId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		customerID, err := strconv.ParseInt(r.URL.Query().Get("customer_id"), 10, 64)
		if err != nil || customerID <= 0 {
			logger.Warn("Invalid customer id on order listing")
			response.Error(w, errors.BadRequestError("Invalid customer_id"))

			return
		}

		orders, err := h.orderService.ListOrdersByCustomer(r.Context(), customerID)
		if err != nil {
			logger.Error("Failed to list orders", slog.Int64("customerId", customerID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

func (h *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid status update input", slog.Int64("orderId", id))

			return
		}

		order, err := h.orderService.UpdateOrderStatus(r.Context(), id, req.Status)
		if err != nil {
			logger.Error("Failed to update order status", slog.Int64("orderId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Order status updated", slog.Int64("orderId", id), slog.String("status", order.Status))
		response.Success(w, http.StatusOK, order)
	}
}
