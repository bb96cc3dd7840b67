package api

import (
	"net/http"
	"strconv"

	"cinema-pos/internal/domain/hall"
	reqdto "cinema-pos/internal/handler/dto/request"
	resdto "cinema-pos/internal/handler/dto/response"
	"cinema-pos/internal/handler/middleware"
	"cinema-pos/internal/infra"
	"cinema-pos/internal/pkg/errs"
	"cinema-pos/internal/usecase/commands"
	"cinema-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricingCommands commands.PricingAdminCommands
	pricingQueries  queries.PricingQueries
}

func NewPricingHandler(pricingCommands commands.PricingAdminCommands, pricingQueries queries.PricingQueries) *PricingHandler {
	return &PricingHandler{
		pricingCommands: pricingCommands,
		pricingQueries:  pricingQueries,
	}
}

func (h *PricingHandler) GetHallPrice(c *gin.Context) {
	hl, err := hall.New(c.Param("hall"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown hall",
		})
		return
	}

	price, err := h.pricingQueries.HallPrice(c.Request.Context(), hl)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.HallPriceResponse{Hall: hl.String(), Price: price})
}

func (h *PricingHandler) SetHallPrice(c *gin.Context) {
	editorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	hl, err := hall.New(c.Param("hall"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown hall",
		})
		return
	}

	var req reqdto.SetHallPriceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.pricingCommands.SetHallPrice(c.Request.Context(), hl, req.Price, editorID); err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidPrice):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Price must be positive",
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

func (h *PricingHandler) GetAgeDiscount(c *gin.Context) {
	rate, err := h.pricingQueries.AgeDiscountRate(c.Request.Context())
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AgeDiscountResponse{Rate: rate})
}

func (h *PricingHandler) SetAgeDiscount(c *gin.Context) {
	editorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SetAgeDiscountRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.pricingCommands.SetAgeDiscount(c.Request.Context(), req.Rate, editorID); err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidDiscountRate):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Discount rate must be between 0 and 100",
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

func (h *PricingHandler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	changes, err := h.pricingQueries.History(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PriceChangeResponse, len(changes))
	for i, rm := range changes {
		response[i] = resdto.FromPriceChangeView(rm)
	}

	c.JSON(http.StatusOK, response)
}

func (h *PricingHandler) respondQueryError(c *gin.Context, err error) {
	if infra.IsKind(err, infra.KindNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Pricing entry not configured",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
