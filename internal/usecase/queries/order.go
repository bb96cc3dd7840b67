package queries

import (
	"context"

	"github.com/google/uuid"
)

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListPending(ctx context.Context) ([]*OrderListItem, error)
	// Stats is computed on demand from order rows; there is no stored
	// aggregate to drift out of sync.
	Stats(ctx context.Context) (*CancellationStats, error)
}

type OrderViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindPending(ctx context.Context) ([]*OrderListItem, error)
	CancellationStats(ctx context.Context) (*CancellationStats, error)
}

type orderQueriesImpl struct {
	repo OrderViewRepo
}

func NewOrderQueries(repo OrderViewRepo) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *orderQueriesImpl) ListPending(ctx context.Context) ([]*OrderListItem, error) {
	return q.repo.FindPending(ctx)
}

func (q *orderQueriesImpl) Stats(ctx context.Context) (*CancellationStats, error) {
	return q.repo.CancellationStats(ctx)
}
