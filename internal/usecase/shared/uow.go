package shared

import (
	"context"

	"cinema-pos/internal/domain/order"
	"cinema-pos/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Seats() SeatRepository
	Inventory() InventoryRepository
	PricingConfig() PricingConfigRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ScheduleByID(ctx context.Context, id uuid.UUID) (*ScheduleSnapshot, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*OrderSnapshot, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error)
	// UpdateStatusFromPending performs the guarded transition
	// "set status where status = PENDING" and reports whether a row moved.
	UpdateStatusFromPending(ctx context.Context, tx db.DBTX, id uuid.UUID, next order.Status) (bool, error)
}

type SeatRepository interface {
	// Reserve inserts one reservation row per seat. A primary key conflict
	// surfaces as SeatConflictError; the caller's transaction rollback
	// guarantees no partial reservation remains.
	Reserve(ctx context.Context, tx db.DBTX, orderID, scheduleID uuid.UUID, seats []int) error
	Release(ctx context.Context, tx db.DBTX, scheduleID uuid.UUID, seats []int) error
	TakenSeats(ctx context.Context, dbtx db.DBTX, scheduleID uuid.UUID) ([]int, error)
}

type InventoryRepository interface {
	// DecrementIfAvailable atomically applies
	// "stock = stock - qty where stock >= qty" and reports whether it took
	// effect. False means insufficient stock, not a storage fault.
	DecrementIfAvailable(ctx context.Context, tx db.DBTX, productID uuid.UUID, qty int) (bool, error)
	Increment(ctx context.Context, tx db.DBTX, productID uuid.UUID, qty int) error
}

type PricingConfigRepository interface {
	Get(ctx context.Context, dbtx db.DBTX, key ConfigKey) (decimal.Decimal, error)
	Set(ctx context.Context, tx db.DBTX, key ConfigKey, value decimal.Decimal) error
	// AppendHistory adds an immutable price change record; history rows are
	// never updated or deleted.
	AppendHistory(ctx context.Context, tx db.DBTX, change PriceChange) error
}
