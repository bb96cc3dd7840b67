package api

import (
	"context"
	"net/http"

	resdto "cinema-pos/internal/handler/dto/response"
	"cinema-pos/internal/infra"
	"cinema-pos/internal/pkg/errs"
	"cinema-pos/internal/usecase/commands"
	"cinema-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CancellationHandler struct {
	cancellationCommands commands.CancellationCommands
	orderQueries         queries.OrderQueries
}

func NewCancellationHandler(cancellationCommands commands.CancellationCommands, orderQueries queries.OrderQueries) *CancellationHandler {
	return &CancellationHandler{
		cancellationCommands: cancellationCommands,
		orderQueries:         orderQueries,
	}
}

func (h *CancellationHandler) ListPending(c *gin.Context) {
	items, err := h.orderQueries.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.OrderListResponse, len(items))
	for i, rm := range items {
		response[i] = resdto.FromOrderListItem(rm)
	}

	c.JSON(http.StatusOK, response)
}

func (h *CancellationHandler) Stats(c *gin.Context) {
	stats, err := h.orderQueries.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancellationStats(stats))
}

// Process approves a pending cancellation: stock comes back and the
// seats open up.
func (h *CancellationHandler) Process(c *gin.Context) {
	h.resolve(c, h.cancellationCommands.Process)
}

// Reject declines a pending cancellation without touching inventory.
func (h *CancellationHandler) Reject(c *gin.Context) {
	h.resolve(c, h.cancellationCommands.Reject)
}

func (h *CancellationHandler) resolve(c *gin.Context, action func(ctx context.Context, orderID uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	if err := action(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, errs.ErrOrderNotFound), infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errs.Is(err, errs.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order has already been resolved",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
