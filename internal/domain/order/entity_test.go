//go:build unit

package order_test

import (
	"testing"
	"time"

	"cinema-pos/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func ticketItem(t *testing.T, price string) order.Item {
	t.Helper()
	item, err := order.NewTicketItem(uuid.New(), 7, "Ada", "Yilmaz", dec(price), false)
	require.NoError(t, err)
	return item
}

func productItem(t *testing.T, price string, qty int) order.Item {
	t.Helper()
	item, err := order.NewProductItem(uuid.New(), qty, dec(price))
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	now := time.Now()

	t.Run("total is subtotals plus tax", func(t *testing.T) {
		items := []order.Item{
			ticketItem(t, "50.00"),
			ticketItem(t, "50.00"),
			productItem(t, "15.00", 3),
		}

		o, err := order.NewOrder(uuid.New(), items, dec("24.50"), now)
		require.NoError(t, err)

		// 50 + 50 + 45 + 24.50
		assert.True(t, dec("169.50").Equal(o.Total()), "got %s", o.Total())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("empty order rejected", func(t *testing.T) {
		_, err := order.NewOrder(uuid.New(), nil, decimal.Zero, now)
		assert.ErrorIs(t, err, order.ErrNoItems)
	})

	t.Run("item partition preserves order", func(t *testing.T) {
		items := []order.Item{
			productItem(t, "10.00", 1),
			ticketItem(t, "50.00"),
			productItem(t, "5.00", 2),
		}

		o, err := order.NewOrder(uuid.New(), items, decimal.Zero, now)
		require.NoError(t, err)
		assert.Len(t, o.TicketItems(), 1)
		assert.Len(t, o.ProductItems(), 2)
		assert.True(t, dec("10.00").Equal(o.ProductItems()[0].UnitPrice()))
		assert.True(t, dec("5.00").Equal(o.ProductItems()[1].UnitPrice()))
	})
}

func TestTransition(t *testing.T) {
	now := time.Now()

	newPending := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(uuid.New(), []order.Item{ticketItem(t, "50.00")}, dec("10.00"), now)
		require.NoError(t, err)
		return o
	}

	t.Run("pending to processed", func(t *testing.T) {
		o := newPending(t)
		later := now.Add(time.Hour)

		require.NoError(t, o.Transition(order.StatusProcessed, later))
		assert.Equal(t, order.StatusProcessed, o.Status())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("pending to rejected", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.Transition(order.StatusRejected, now))
		assert.Equal(t, order.StatusRejected, o.Status())
	})

	t.Run("terminal states are final", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.Transition(order.StatusProcessed, now))

		err := o.Transition(order.StatusRejected, now)
		var transitionErr order.TransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.StatusProcessed, transitionErr.From)
		assert.Equal(t, order.StatusRejected, transitionErr.To)
		assert.Equal(t, order.StatusProcessed, o.Status())
	})

	t.Run("pending to pending rejected", func(t *testing.T) {
		o := newPending(t)
		assert.Error(t, o.Transition(order.StatusPending, now))
	})
}

func TestItems(t *testing.T) {
	t.Run("ticket quantity is always one", func(t *testing.T) {
		item := ticketItem(t, "50.00")
		assert.Equal(t, 1, item.Quantity())
		assert.True(t, item.IsTicket())
		assert.Nil(t, item.Product())
		require.NotNil(t, item.Ticket())
	})

	t.Run("occupant names trimmed", func(t *testing.T) {
		item, err := order.NewTicketItem(uuid.New(), 1, "  Ada ", " Yilmaz  ", dec("50.00"), true)
		require.NoError(t, err)
		assert.Equal(t, "Ada", item.Ticket().OccupantFirst)
		assert.Equal(t, "Yilmaz", item.Ticket().OccupantLast)
		assert.True(t, item.Ticket().DiscountApplied)
	})

	t.Run("missing occupant rejected", func(t *testing.T) {
		_, err := order.NewTicketItem(uuid.New(), 1, "   ", "Yilmaz", dec("50.00"), false)
		assert.ErrorIs(t, err, order.ErrMissingOccupant)
	})

	t.Run("invalid seat number rejected", func(t *testing.T) {
		_, err := order.NewTicketItem(uuid.New(), 0, "Ada", "Yilmaz", dec("50.00"), false)
		assert.ErrorIs(t, err, order.ErrInvalidSeatNumber)
	})

	t.Run("product subtotal multiplies quantity", func(t *testing.T) {
		item := productItem(t, "15.00", 3)
		assert.True(t, dec("45.00").Equal(item.Subtotal()))
		assert.False(t, item.IsTicket())
	})

	t.Run("zero product quantity rejected", func(t *testing.T) {
		_, err := order.NewProductItem(uuid.New(), 0, dec("15.00"))
		assert.ErrorIs(t, err, order.ErrInvalidQuantity)
	})

	t.Run("negative unit price rejected", func(t *testing.T) {
		_, err := order.NewProductItem(uuid.New(), 1, dec("-1"))
		assert.ErrorIs(t, err, order.ErrNegativeUnitPrice)
	})
}
