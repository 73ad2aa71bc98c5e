package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/quickbites/ordering/internal/api/middleware"
	"github.com/quickbites/ordering/internal/errors"
	service "github.com/quickbites/ordering/internal/services"
	"github.com/quickbites/ordering/internal/utils/response"
)

type CouponHandler struct {
	couponService service.CouponService
}

func NewCouponHandler(couponService service.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// GetCoupon returns the coupon for a code so the storefront can preview the
// discount before checkout.
func (h *CouponHandler) GetCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		code := strings.TrimSpace(r.PathValue("code"))
		if code == "" {
			response.Error(w, errors.BadRequestError("Coupon code is required"))

			return
		}

		coupon, err := h.couponService.GetCouponByCode(r.Context(), code)
		if err != nil {
			logger.Warn("Coupon lookup failed", slog.String("code", code), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, coupon)
	}
}
