package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quickbites/ordering/internal/models"
	"github.com/quickbites/ordering/internal/utils"
)

type CouponRepository interface {
	GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error)
	GetCouponByID(ctx context.Context, couponID int64) (*models.Coupon, error)
}

type couponRepository struct {
	DB *sql.DB
}

func NewCouponRepository(db *sql.DB) CouponRepository {
	return &couponRepository{DB: db}
}

func (r *couponRepository) GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {

	query := `
		SELECT coupon_id, code, discount_type, discount_value, valid_until, active
		FROM coupons
		WHERE code = $1
	`

	return r.getCoupon(ctx, query, code)
}

func (r *couponRepository) GetCouponByID(ctx context.Context, couponID int64) (*models.Coupon, error) {

	query := `
		SELECT coupon_id, code, discount_type, discount_value, valid_until, active
		FROM coupons
		WHERE coupon_id = $1
	`

	return r.getCoupon(ctx, query, couponID)
}

func (r *couponRepository) getCoupon(ctx context.Context, query string, arg any) (*models.Coupon, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	coupon := &models.Coupon{}

	err := r.DB.QueryRowContext(dbCtx, query, arg).
		Scan(&coupon.CouponID, &coupon.Code, &coupon.Type, &coupon.Value, &coupon.ExpirationDate, &coupon.Active)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}

	return coupon, nil
}
