package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quickbites/ordering/internal/api/handlers"
	appErrors "github.com/quickbites/ordering/internal/errors"
	"github.com/quickbites/ordering/internal/models"
	"github.com/quickbites/ordering/internal/services/mocks"
	"github.com/quickbites/ordering/internal/utils/response"
)

func TestGetOrder(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockOrderService := mocks.NewOrderService(t)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		expectedOrder := &models.Order{OrderID: 77, CustomerID: 10, Status: models.OrderStatusDelivered, TotalPrice: 22.03}
		mockOrderService.On("GetOrderByID", mock.Anything, int64(77)).Return(expectedOrder, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/77", nil)
		req.SetPathValue("id", "77")
		rr := httptest.NewRecorder()

		// Act
		orderHandler.GetOrder().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		dataBytes, err := json.Marshal(resp.Data)
		require.NoError(t, err)

		var respOrder models.Order
		require.NoError(t, json.Unmarshal(dataBytes, &respOrder))
		assert.Equal(t, int64(77), respOrder.OrderID)
		assert.Equal(t, models.OrderStatusDelivered, respOrder.Status)
	})

	t.Run("Failure - Invalid Id", func(t *testing.T) {
		// Arrange
		mockOrderService := mocks.NewOrderService(t)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/abc", nil)
		req.SetPathValue("id", "abc")
		rr := httptest.NewRecorder()

		// Act
		orderHandler.GetOrder().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockOrderService.AssertNotCalled(t, "GetOrderByID")
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockOrderService := mocks.NewOrderService(t)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		mockOrderService.On("GetOrderByID", mock.Anything, int64(404)).
			Return(nil, appErrors.NotFoundError("Order not found")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/404", nil)
		req.SetPathValue("id", "404")
		rr := httptest.NewRecorder()

		// Act
		orderHandler.GetOrder().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeNotFound, resp.Error.Code)
	})
}

func TestListOrders(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockOrderService := mocks.NewOrderService(t)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		expectedOrders := []models.Order{
			{OrderID: 78, CustomerID: 10},
			{OrderID: 77, CustomerID: 10},
		}
		mockOrderService.On("ListOrdersByCustomer", mock.Anything, int64(10)).Return(expectedOrders, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders?customer_id=10", nil)
		rr := httptest.NewRecorder()

		// Act
		orderHandler.ListOrders().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	})

	t.Run("Failure - Missing Customer Id", func(t *testing.T) {
		// Arrange
		mockOrderService := mocks.NewOrderService(t)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		rr := httptest.NewRecorder()

		// Act
		orderHandler.ListOrders().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockOrderService.AssertNotCalled(t, "ListOrdersByCustomer")
	})
}

func TestUpdateOrderStatus(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockOrderService := mocks.NewOrderService(t)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		updatedOrder := &models.Order{OrderID: 77, CustomerID: 10, Status: models.OrderStatusShipped}
		mockOrderService.On("UpdateOrderStatus", mock.Anything, int64(77), models.OrderStatusShipped).
			Return(updatedOrder, nil).Once()

		bodyBytes, err := json.Marshal(models.UpdateOrderStatusRequest{Status: models.OrderStatusShipped})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/orders/77/status", bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")
		req.SetPathValue("id", "77")
		rr := httptest.NewRecorder()

		// Act
		orderHandler.UpdateOrderStatus().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	})

	t.Run("Failure - Missing Status", func(t *testing.T) {
		// Arrange
		mockOrderService := mocks.NewOrderService(t)
		orderHandler := handlers.NewOrderHandler(mockOrderService)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/orders/77/status", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		req.SetPathValue("id", "77")
		rr := httptest.NewRecorder()

		// Act
		orderHandler.UpdateOrderStatus().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockOrderService.AssertNotCalled(t, "UpdateOrderStatus")
	})
}

func TestGetCoupon(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCouponService := mocks.NewCouponService(t)
		couponHandler := handlers.NewCouponHandler(mockCouponService)

		coupon := &models.Coupon{CouponID: 5, Code: "WELCOME10", Type: models.CouponTypePercentage, Value: 10, Active: true}
		mockCouponService.On("GetCouponByCode", mock.Anything, "WELCOME10").Return(coupon, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/coupons/WELCOME10", nil)
		req.SetPathValue("code", "WELCOME10")
		rr := httptest.NewRecorder()

		// Act
		couponHandler.GetCoupon().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Blank Code", func(t *testing.T) {
		// Arrange
		mockCouponService := mocks.NewCouponService(t)
		couponHandler := handlers.NewCouponHandler(mockCouponService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/coupons/%20", nil)
		req.SetPathValue("code", " ")
		rr := httptest.NewRecorder()

		// Act
		couponHandler.GetCoupon().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockCouponService.AssertNotCalled(t, "GetCouponByCode")
	})

	t.Run("Failure - Unknown Code", func(t *testing.T) {
		// Arrange
		mockCouponService := mocks.NewCouponService(t)
		couponHandler := handlers.NewCouponHandler(mockCouponService)

		mockCouponService.On("GetCouponByCode", mock.Anything, "NOPE").
			Return(nil, appErrors.NotFoundError("Coupon not found")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/coupons/NOPE", nil)
		req.SetPathValue("code", "NOPE")
		rr := httptest.NewRecorder()

		// Act
		couponHandler.GetCoupon().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
