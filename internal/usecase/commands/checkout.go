package commands

import (
	"context"
	"errors"
	"strconv"
	"time"

	"cinema-pos/internal/domain/order"
	"cinema-pos/internal/domain/pricing"
	"cinema-pos/internal/domain/schedule"
	"cinema-pos/internal/infra"
	"cinema-pos/internal/pkg/clock"
	"cinema-pos/internal/pkg/errs"
	"cinema-pos/internal/usecase/queries"
	"cinema-pos/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TicketRequest asks for one seat on one schedule. The occupant's age
// drives the discount decision; the name is stored for audit.
type TicketRequest struct {
	ScheduleID    uuid.UUID
	SeatNumber    int
	OccupantFirst string
	OccupantLast  string
	OccupantAge   int
}

type ProductRequest struct {
	ProductID uuid.UUID
	Quantity  int
}

// CheckoutItem is one requested line; exactly one field is set.
type CheckoutItem struct {
	Ticket  *TicketRequest
	Product *ProductRequest
}

type BookingCommands interface {
	// Checkout commits the whole order atomically: either seats are
	// reserved, stock is decremented and the PENDING order is persisted,
	// or nothing happened.
	Checkout(ctx context.Context, cashierID uuid.UUID, items []CheckoutItem) (*queries.OrderView, error)
}

type bookingCommandsImpl struct {
	uow          shared.UnitOfWork
	engine       *pricing.Engine
	orderQueries queries.OrderQueries
	clock        clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, engine *pricing.Engine, orderQueries queries.OrderQueries, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:          uow,
		engine:       engine,
		orderQueries: orderQueries,
		clock:        clk,
	}
}

func (c *bookingCommandsImpl) Checkout(ctx context.Context, cashierID uuid.UUID, items []CheckoutItem) (*queries.OrderView, error) {
	if len(items) == 0 {
		return nil, errs.ErrEmptyOrder
	}
	for _, it := range items {
		if (it.Ticket == nil) == (it.Product == nil) {
			return nil, errs.Mark(errs.New("checkout item must be exactly one of ticket or product"), errs.ErrDomainValidation)
		}
	}

	var orderID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := c.commitOrder(ctx, tx, cashierID, items)
		if err != nil {
			return err
		}
		orderID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the persisted view
	view, err := c.orderQueries.GetByID(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) commitOrder(ctx context.Context, tx shared.Tx, cashierID uuid.UUID, items []CheckoutItem) (uuid.UUID, error) {
	now := c.clock.Now()

	discountRate, err := tx.PricingConfig().Get(ctx, tx.DB(), shared.KeyAgeDiscountRate)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var (
		orderItems      []order.Item
		ticketSubtotal  = decimal.Zero
		productSubtotal = decimal.Zero
		seatsBySchedule = map[uuid.UUID][]int{}
		hallPrices      = map[shared.ConfigKey]decimal.Decimal{}
	)

	for _, req := range items {
		switch {
		case req.Ticket != nil:
			item, err := c.priceTicket(ctx, tx, req.Ticket, now, discountRate, hallPrices)
			if err != nil {
				return uuid.Nil, err
			}
			orderItems = append(orderItems, item)
			ticketSubtotal = ticketSubtotal.Add(item.Subtotal())
			seatsBySchedule[req.Ticket.ScheduleID] = append(seatsBySchedule[req.Ticket.ScheduleID], req.Ticket.SeatNumber)

		case req.Product != nil:
			item, err := c.priceProduct(ctx, tx, req.Product)
			if err != nil {
				return uuid.Nil, err
			}
			orderItems = append(orderItems, item)
			productSubtotal = productSubtotal.Add(item.Subtotal())
		}
	}

	tax := c.engine.Tax(ticketSubtotal, productSubtotal)
	newOrder, err := order.NewOrder(cashierID, orderItems, tax, now)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	// Seats first, then stock, then the order row; all under one
	// transaction so a conflict anywhere leaves no trace.
	for scheduleID, seats := range seatsBySchedule {
		if err := tx.Seats().Reserve(ctx, tx.DB(), newOrder.ID(), scheduleID, seats); err != nil {
			var conflict shared.SeatConflictError
			if errors.As(err, &conflict) {
				return uuid.Nil, errs.Mark(err, errs.ErrSeatConflict)
			}
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	for _, req := range items {
		if req.Product == nil {
			continue
		}
		ok, err := tx.Inventory().DecrementIfAvailable(ctx, tx.DB(), req.Product.ProductID, req.Product.Quantity)
		if err != nil {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !ok {
			stockErr := shared.InsufficientStockError{ProductID: req.Product.ProductID, Requested: req.Product.Quantity}
			return uuid.Nil, errs.Mark(stockErr, errs.ErrInsufficientStock)
		}
	}

	id, err := tx.Orders().Create(ctx, tx.DB(), newOrder)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *bookingCommandsImpl) priceTicket(
	ctx context.Context,
	tx shared.Tx,
	req *TicketRequest,
	now time.Time,
	discountRate decimal.Decimal,
	hallPrices map[shared.ConfigKey]decimal.Decimal,
) (order.Item, error) {
	sched, err := tx.Reads().ScheduleByID(ctx, req.ScheduleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return order.Item{}, errs.Mark(err, errs.ErrInvalidSchedule)
		}
		return order.Item{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := schedule.New(sched.ID, sched.MovieID, sched.Hall, sched.StartsAt)
	if err != nil {
		return order.Item{}, errs.Mark(err, errs.ErrInvalidSchedule)
	}
	if err := entity.ValidateBookable(now); err != nil {
		return order.Item{}, errs.Mark(err, errs.ErrInvalidSchedule)
	}
	if !sched.Hall.ContainsSeat(req.SeatNumber) {
		return order.Item{}, errs.Mark(
			errs.New("seat "+strconv.Itoa(req.SeatNumber)+" exceeds hall "+sched.Hall.String()+" capacity"),
			errs.ErrInvalidSeat)
	}

	priceKey := shared.HallPriceKey(sched.Hall)
	basePrice, ok := hallPrices[priceKey]
	if !ok {
		basePrice, err = tx.PricingConfig().Get(ctx, tx.DB(), priceKey)
		if err != nil {
			return order.Item{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		hallPrices[priceKey] = basePrice
	}

	unitPrice, discountApplied, err := c.engine.PriceTicket(basePrice, req.OccupantAge, discountRate)
	if err != nil {
		return order.Item{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	item, err := order.NewTicketItem(req.ScheduleID, req.SeatNumber, req.OccupantFirst, req.OccupantLast, unitPrice, discountApplied)
	if err != nil {
		return order.Item{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	return item, nil
}

func (c *bookingCommandsImpl) priceProduct(ctx context.Context, tx shared.Tx, req *ProductRequest) (order.Item, error) {
	prod, err := tx.Reads().ProductByID(ctx, req.ProductID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return order.Item{}, errs.Mark(err, errs.ErrProductNotFound)
		}
		return order.Item{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Advisory pre-check for a clean error; the conditional decrement is
	// the guard that actually holds under concurrency.
	if !prod.HasStock(req.Quantity) {
		stockErr := shared.InsufficientStockError{ProductID: req.ProductID, Requested: req.Quantity}
		return order.Item{}, errs.Mark(stockErr, errs.ErrInsufficientStock)
	}

	item, err := order.NewProductItem(req.ProductID, req.Quantity, prod.UnitPrice)
	if err != nil {
		return order.Item{}, errs.Mark(err, errs.ErrDomainValidation)
	}
	return item, nil
}
