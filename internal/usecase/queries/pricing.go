package queries

import (
	"context"

	"cinema-pos/internal/domain/hall"

	"github.com/shopspring/decimal"
)

type PricingQueries interface {
	HallPrice(ctx context.Context, h hall.Hall) (decimal.Decimal, error)
	AgeDiscountRate(ctx context.Context) (decimal.Decimal, error)
	History(ctx context.Context, limit int) ([]*PriceChangeView, error)
}

type PricingViewRepo interface {
	FindHallPrice(ctx context.Context, h hall.Hall) (decimal.Decimal, error)
	FindAgeDiscountRate(ctx context.Context) (decimal.Decimal, error)
	FindHistory(ctx context.Context, limit int) ([]*PriceChangeView, error)
}

type pricingQueriesImpl struct {
	repo PricingViewRepo
}

func NewPricingQueries(repo PricingViewRepo) PricingQueries {
	return &pricingQueriesImpl{repo: repo}
}

func (q *pricingQueriesImpl) HallPrice(ctx context.Context, h hall.Hall) (decimal.Decimal, error) {
	return q.repo.FindHallPrice(ctx, h)
}

func (q *pricingQueriesImpl) AgeDiscountRate(ctx context.Context) (decimal.Decimal, error) {
	return q.repo.FindAgeDiscountRate(ctx)
}

func (q *pricingQueriesImpl) History(ctx context.Context, limit int) ([]*PriceChangeView, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.repo.FindHistory(ctx, limit)
}
