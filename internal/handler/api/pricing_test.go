//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"cinema-pos/internal/domain/hall"
	"cinema-pos/internal/domain/user"
	"cinema-pos/internal/handler/api"
	"cinema-pos/internal/pkg/errs"
	"cinema-pos/internal/usecase/queries"
	"cinema-pos/tests/common/httptest"
	commandsmock "cinema-pos/tests/mock/commands"
	queriesmock "cinema-pos/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockAdmin   *commandsmock.MockPricingAdminCommands
	mockQueries *queriesmock.MockPricingQueries
	handler     *api.PricingHandler
	editorID    uuid.UUID
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.editorID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAdmin = commandsmock.NewMockPricingAdminCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.handler = api.NewPricingHandler(s.mockAdmin, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.editorID)
		c.Set("user_role", user.RoleManager)
		c.Next()
	}

	s.router.GET("/pricing/halls/:hall", authMiddleware, s.handler.GetHallPrice)
	s.router.PUT("/pricing/halls/:hall", authMiddleware, s.handler.SetHallPrice)
	s.router.GET("/pricing/age-discount", authMiddleware, s.handler.GetAgeDiscount)
	s.router.PUT("/pricing/age-discount", authMiddleware, s.handler.SetAgeDiscount)
	s.router.GET("/pricing/history", authMiddleware, s.handler.History)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func (s *PricingHandlerTestSuite) TestGetHallPrice() {
	s.Run("known hall", func() {
		s.mockQueries.EXPECT().
			HallPrice(gomock.Any(), hall.HallA).
			Return(decimal.RequireFromString("50.00"), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pricing/halls/A", nil, "token")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"hall":"A"`)
		s.Contains(w.Body.String(), "50")
	})

	s.Run("unknown hall", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pricing/halls/Z", nil, "token")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *PricingHandlerTestSuite) TestSetHallPrice() {
	s.Run("updates price", func() {
		s.mockAdmin.EXPECT().
			SetHallPrice(gomock.Any(), hall.HallB, gomock.Any(), s.editorID).
			Return(nil)

		body := map[string]any{"price": "45.00"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/pricing/halls/B", body, "token")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("invalid price maps to 422", func() {
		s.mockAdmin.EXPECT().
			SetHallPrice(gomock.Any(), hall.HallA, gomock.Any(), s.editorID).
			Return(errs.ErrInvalidPrice)

		body := map[string]any{"price": "-1"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/pricing/halls/A", body, "token")

		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})
}

func (s *PricingHandlerTestSuite) TestSetAgeDiscount() {
	s.Run("updates rate", func() {
		s.mockAdmin.EXPECT().
			SetAgeDiscount(gomock.Any(), gomock.Any(), s.editorID).
			Return(nil)

		body := map[string]any{"rate": "30"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/pricing/age-discount", body, "token")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("out of range rate maps to 422", func() {
		s.mockAdmin.EXPECT().
			SetAgeDiscount(gomock.Any(), gomock.Any(), s.editorID).
			Return(errs.ErrInvalidDiscountRate)

		body := map[string]any{"rate": "120"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/pricing/age-discount", body, "token")

		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})
}

func (s *PricingHandlerTestSuite) TestHistory() {
	change := &queries.PriceChangeView{
		ID:        uuid.New(),
		ChangedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		ItemName:  "hall_A_ticket_price",
		OldValue:  decimal.RequireFromString("50.00"),
		NewValue:  decimal.RequireFromString("55.00"),
		EditedBy:  s.editorID,
	}

	s.mockQueries.EXPECT().History(gomock.Any(), 10).Return([]*queries.PriceChangeView{change}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pricing/history?limit=10", nil, "token")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "hall_A_ticket_price")
}
