package api

import (
	"errors"
	"fmt"
	"net/http"

	reqdto "cinema-pos/internal/handler/dto/request"
	resdto "cinema-pos/internal/handler/dto/response"
	"cinema-pos/internal/handler/middleware"
	"cinema-pos/internal/infra"
	"cinema-pos/internal/pkg/errs"
	"cinema-pos/internal/usecase/commands"
	"cinema-pos/internal/usecase/queries"
	"cinema-pos/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	bookingCommands commands.BookingCommands
	orderQueries    queries.OrderQueries
}

func NewOrderHandler(bookingCommands commands.BookingCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		bookingCommands: bookingCommands,
		orderQueries:    orderQueries,
	}
}

// Checkout commits a whole basket (tickets and products) as one order.
// The reply is the persisted order; on any pricing or availability
// failure nothing is written.
func (h *OrderHandler) Checkout(c *gin.Context) {
	cashierID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.Checkout(c.Request.Context(), cashierID, req.ToCommand())
	if err != nil {
		h.respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

func (h *OrderHandler) respondCheckoutError(c *gin.Context, err error) {
	var seatConflict shared.SeatConflictError
	var noStock shared.InsufficientStockError

	switch {
	case errors.As(err, &seatConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": fmt.Sprintf("Seat %d is already taken for this schedule", seatConflict.Seat),
		})
	case errors.As(err, &noStock):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Insufficient stock for requested product",
		})
	case errs.Is(err, errs.ErrSeatConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Seat is already taken for this schedule",
		})
	case errs.Is(err, errs.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Insufficient stock for requested product",
		})
	case errs.Is(err, errs.ErrInvalidSchedule):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Schedule does not exist or is no longer bookable",
		})
	case errs.Is(err, errs.ErrInvalidSeat):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Seat number is outside the hall capacity",
		})
	case errs.Is(err, errs.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errs.Is(err, errs.ErrEmptyOrder):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Order must contain at least one item",
		})
	case errs.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrOrderNotFound), infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}
