package api

import (
	"net/http"
	"strconv"

	resdto "cinema-pos/internal/handler/dto/response"
	"cinema-pos/internal/infra"
	"cinema-pos/internal/pkg/errs"
	"cinema-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	scheduleQueries queries.ScheduleQueries
}

func NewScheduleHandler(scheduleQueries queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleQueries: scheduleQueries,
	}
}

func (h *ScheduleHandler) SeatMap(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid schedule ID format",
		})
		return
	}

	view, err := h.scheduleQueries.SeatMap(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Schedule not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSeatMapView(view))
}

func (h *ScheduleHandler) SeatAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid schedule ID format",
		})
		return
	}

	seat, err := strconv.Atoi(c.Param("seat"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid seat number",
		})
		return
	}

	available, err := h.scheduleQueries.IsSeatAvailable(c.Request.Context(), id, seat)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidSeat):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Seat number is outside the hall capacity",
			})
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Schedule not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SeatAvailabilityResponse{
		ScheduleID: id,
		SeatNumber: seat,
		Available:  available,
	})
}
