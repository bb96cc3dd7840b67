//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sort"

	"cinema-pos/internal/domain/order"
	"cinema-pos/internal/infra"
	"cinema-pos/internal/infra/db"
	"cinema-pos/internal/usecase/queries"
	"cinema-pos/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// In-memory world backing all fake repositories. One instance per test;
// every repository mutates the same maps so cross-repository effects
// (stock vs. seats vs. orders) stay observable.
type fakeWorld struct {
	schedules map[uuid.UUID]*shared.ScheduleSnapshot
	products  map[uuid.UUID]*shared.ProductSnapshot
	orders    map[uuid.UUID]*shared.OrderSnapshot
	statuses  map[uuid.UUID]order.Status
	seats     map[uuid.UUID]map[int]uuid.UUID
	stock     map[uuid.UUID]int
	config    map[shared.ConfigKey]decimal.Decimal
	history   []shared.PriceChange

	created    []*order.Order
	increments map[uuid.UUID]int
	released   map[uuid.UUID][]int

	// Products whose conditional decrement reports no effect even though
	// the advisory read still shows stock, as when a concurrent checkout
	// takes the last units between the read and the update.
	raceLost map[uuid.UUID]bool
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		schedules:  map[uuid.UUID]*shared.ScheduleSnapshot{},
		products:   map[uuid.UUID]*shared.ProductSnapshot{},
		orders:     map[uuid.UUID]*shared.OrderSnapshot{},
		statuses:   map[uuid.UUID]order.Status{},
		seats:      map[uuid.UUID]map[int]uuid.UUID{},
		stock:      map[uuid.UUID]int{},
		config:     map[shared.ConfigKey]decimal.Decimal{},
		increments: map[uuid.UUID]int{},
		released:   map[uuid.UUID][]int{},
		raceLost:   map[uuid.UUID]bool{},
	}
}

// save captures the mutable state touched by commands so Within can roll
// it back, mirroring a database transaction abort.
func (w *fakeWorld) save() *fakeWorld {
	saved := &fakeWorld{
		statuses:   make(map[uuid.UUID]order.Status, len(w.statuses)),
		seats:      make(map[uuid.UUID]map[int]uuid.UUID, len(w.seats)),
		stock:      make(map[uuid.UUID]int, len(w.stock)),
		config:     make(map[shared.ConfigKey]decimal.Decimal, len(w.config)),
		history:    append([]shared.PriceChange(nil), w.history...),
		created:    append([]*order.Order(nil), w.created...),
		increments: make(map[uuid.UUID]int, len(w.increments)),
		released:   make(map[uuid.UUID][]int, len(w.released)),
	}
	for k, v := range w.statuses {
		saved.statuses[k] = v
	}
	for sched, taken := range w.seats {
		cp := make(map[int]uuid.UUID, len(taken))
		for seat, owner := range taken {
			cp[seat] = owner
		}
		saved.seats[sched] = cp
	}
	for k, v := range w.stock {
		saved.stock[k] = v
	}
	for k, v := range w.config {
		saved.config[k] = v
	}
	for k, v := range w.increments {
		saved.increments[k] = v
	}
	for k, v := range w.released {
		saved.released[k] = append([]int(nil), v...)
	}
	return saved
}

func (w *fakeWorld) restore(saved *fakeWorld) {
	w.statuses = saved.statuses
	w.seats = saved.seats
	w.stock = saved.stock
	w.config = saved.config
	w.history = saved.history
	w.created = saved.created
	w.increments = saved.increments
	w.released = saved.released
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows in result set"), infra.KindNotFound)
}

// ---- UnitOfWork ------------------------------------------------------------

type fakeUoW struct {
	world *fakeWorld
}

// Within rolls the world back when fn fails, so tests observe the same
// all-or-nothing behavior the real transaction provides.
func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	saved := u.world.save()
	if err := fn(ctx, &fakeTx{world: u.world}); err != nil {
		u.world.restore(saved)
		return err
	}
	return nil
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{world: u.world}
}

type fakeTx struct {
	world *fakeWorld
}

func (t *fakeTx) Orders() shared.OrderRepository                 { return &fakeOrderRepo{world: t.world} }
func (t *fakeTx) Seats() shared.SeatRepository                   { return &fakeSeatRepo{world: t.world} }
func (t *fakeTx) Inventory() shared.InventoryRepository          { return &fakeInventoryRepo{world: t.world} }
func (t *fakeTx) PricingConfig() shared.PricingConfigRepository  { return &fakePricingRepo{world: t.world} }
func (t *fakeTx) Reads() shared.CommandReads                     { return &fakeReads{world: t.world} }
func (t *fakeTx) DB() db.DBTX                                    { return nil }

// ---- CommandReads ----------------------------------------------------------

type fakeReads struct {
	world *fakeWorld
}

func (r *fakeReads) ScheduleByID(_ context.Context, id uuid.UUID) (*shared.ScheduleSnapshot, error) {
	s, ok := r.world.schedules[id]
	if !ok {
		return nil, notFound("schedule not found")
	}
	return s, nil
}

func (r *fakeReads) ProductByID(_ context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	p, ok := r.world.products[id]
	if !ok {
		return nil, notFound("product not found")
	}
	snapshot := *p
	snapshot.Stock = r.world.stock[id]
	return &snapshot, nil
}

func (r *fakeReads) OrderByID(_ context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	o, ok := r.world.orders[id]
	if !ok {
		return nil, notFound("order not found")
	}
	snapshot := *o
	snapshot.Status = r.world.statuses[id]
	return &snapshot, nil
}

// ---- Repositories ----------------------------------------------------------

type fakeOrderRepo struct {
	world *fakeWorld
}

func (r *fakeOrderRepo) Create(_ context.Context, _ db.DBTX, o *order.Order) (uuid.UUID, error) {
	r.world.created = append(r.world.created, o)
	r.world.statuses[o.ID()] = o.Status()
	return o.ID(), nil
}

func (r *fakeOrderRepo) UpdateStatusFromPending(_ context.Context, _ db.DBTX, id uuid.UUID, next order.Status) (bool, error) {
	if r.world.statuses[id] != order.StatusPending {
		return false, nil
	}
	r.world.statuses[id] = next
	return true, nil
}

type fakeSeatRepo struct {
	world *fakeWorld
}

func (r *fakeSeatRepo) Reserve(_ context.Context, _ db.DBTX, orderID, scheduleID uuid.UUID, seats []int) error {
	taken := r.world.seats[scheduleID]
	if taken == nil {
		taken = map[int]uuid.UUID{}
		r.world.seats[scheduleID] = taken
	}
	for _, seat := range seats {
		if _, exists := taken[seat]; exists {
			return shared.SeatConflictError{ScheduleID: scheduleID, Seat: seat}
		}
		taken[seat] = orderID
	}
	return nil
}

func (r *fakeSeatRepo) Release(_ context.Context, _ db.DBTX, scheduleID uuid.UUID, seats []int) error {
	for _, seat := range seats {
		delete(r.world.seats[scheduleID], seat)
	}
	released := append(r.world.released[scheduleID], seats...)
	sort.Ints(released)
	r.world.released[scheduleID] = released
	return nil
}

func (r *fakeSeatRepo) TakenSeats(_ context.Context, _ db.DBTX, scheduleID uuid.UUID) ([]int, error) {
	var out []int
	for seat := range r.world.seats[scheduleID] {
		out = append(out, seat)
	}
	sort.Ints(out)
	return out, nil
}

type fakeInventoryRepo struct {
	world *fakeWorld
}

func (r *fakeInventoryRepo) DecrementIfAvailable(_ context.Context, _ db.DBTX, productID uuid.UUID, qty int) (bool, error) {
	if r.world.raceLost[productID] || r.world.stock[productID] < qty {
		return false, nil
	}
	r.world.stock[productID] -= qty
	return true, nil
}

func (r *fakeInventoryRepo) Increment(_ context.Context, _ db.DBTX, productID uuid.UUID, qty int) error {
	r.world.stock[productID] += qty
	r.world.increments[productID] += qty
	return nil
}

type fakePricingRepo struct {
	world *fakeWorld
}

func (r *fakePricingRepo) Get(_ context.Context, _ db.DBTX, key shared.ConfigKey) (decimal.Decimal, error) {
	v, ok := r.world.config[key]
	if !ok {
		return decimal.Zero, notFound("pricing key not found")
	}
	return v, nil
}

func (r *fakePricingRepo) Set(_ context.Context, _ db.DBTX, key shared.ConfigKey, value decimal.Decimal) error {
	if _, ok := r.world.config[key]; !ok {
		return notFound("pricing key not found")
	}
	r.world.config[key] = value
	return nil
}

func (r *fakePricingRepo) AppendHistory(_ context.Context, _ db.DBTX, change shared.PriceChange) error {
	r.world.history = append(r.world.history, change)
	return nil
}

// ---- Read-after-write query fake -------------------------------------------

type fakeOrderQueries struct {
	world *fakeWorld
}

func (q *fakeOrderQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
	for _, o := range q.world.created {
		if o.ID() == id {
			return &queries.OrderView{
				ID:        o.ID(),
				CashierID: o.CashierID(),
				Status:    o.Status().String(),
				Total:     o.Total(),
				CreatedAt: o.CreatedAt(),
				UpdatedAt: o.UpdatedAt(),
			}, nil
		}
	}
	return nil, notFound("order not found")
}

func (q *fakeOrderQueries) ListPending(_ context.Context) ([]*queries.OrderListItem, error) {
	return nil, nil
}

func (q *fakeOrderQueries) Stats(_ context.Context) (*queries.CancellationStats, error) {
	return &queries.CancellationStats{}, nil
}
