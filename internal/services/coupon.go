package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	appErrors "github.com/quickbites/ordering/internal/errors"
	"github.com/quickbites/ordering/internal/cache"
	"github.com/quickbites/ordering/internal/config"
	"github.com/quickbites/ordering/internal/models"
	repository "github.com/quickbites/ordering/internal/repositories"
)

type CouponService interface {
	GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error)
}

type couponService struct {
	repo     repository.CouponRepository
	cache    cache.Cache
	cacheCfg *config.CacheConfig
}

func NewCouponService(repo repository.CouponRepository, couponCache cache.Cache, cacheCfg *config.CacheConfig) CouponService {
	return &couponService{repo: repo, cache: couponCache, cacheCfg: cacheCfg}
}

// GetCouponByCode looks a coupon up cache-first. Cache failures only cost the
// lookup, never the request.
func (s *couponService) GetCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {

	key := cache.Key(cache.CouponKeyPrefix, code)

	var cached models.Coupon

	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		slog.Warn("Coupon cache lookup failed", slog.String("code", code), slog.String("error", err.Error()))
	} else if found {
		return &cached, nil
	}

	coupon, err := s.repo.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Coupon not found").WithError(err)
		}

		return nil, appErrors.PersistenceFailureError("Failed to fetch coupon").WithError(err)
	}

	if err := s.cache.Set(ctx, key, coupon, s.cacheCfg.CouponTTL); err != nil {
		slog.Warn("Coupon cache store failed", slog.String("code", code), slog.String("error", err.Error()))
	}

	return coupon, nil
}
