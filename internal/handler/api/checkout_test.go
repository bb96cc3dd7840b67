//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"cinema-pos/internal/domain/user"
	"cinema-pos/internal/handler/api"
	resdto "cinema-pos/internal/handler/dto/response"
	"cinema-pos/internal/pkg/errs"
	"cinema-pos/internal/usecase/shared"
	"cinema-pos/tests/common/builder"
	"cinema-pos/tests/common/httptest"
	"cinema-pos/tests/common/testutil"
	commandsmock "cinema-pos/tests/mock/commands"
	queriesmock "cinema-pos/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockBooking  *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
	cashierID    uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.cashierID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockBooking, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.cashierID)
		c.Set("user_role", user.RoleCashier)
		c.Next()
	}

	s.router.POST("/orders", authMiddleware, s.handler.Checkout)
	s.router.GET("/orders/:id", authMiddleware, s.handler.GetOrder)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestCheckout() {
	url := "/orders"

	s.Run("successful checkout returns 201 with persisted order", func() {
		b := builder.NewOrderBuilder()
		req := b.BuildCheckoutRequestDTO()
		view := b.BuildOrderView()

		s.mockBooking.EXPECT().
			Checkout(gomock.Any(), s.cashierID, gomock.Any()).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "token")

		var got resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &got)

		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.OrderItemResponse{}, "ID"),
			cmp.Comparer(decimal.Decimal.Equal),
		}
		if diff := cmp.Diff(resdto.FromOrderView(view), &got, opts...); diff != "" {
			s.T().Errorf("Order response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("seat conflict maps to 409", func() {
		b := builder.NewOrderBuilder()
		conflict := shared.SeatConflictError{ScheduleID: b.ScheduleID, Seat: b.SeatNumber}

		s.mockBooking.EXPECT().
			Checkout(gomock.Any(), s.cashierID, gomock.Any()).
			Return(nil, errs.Mark(conflict, errs.ErrSeatConflict))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCheckoutRequestDTO(), "token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already taken")
	})

	s.Run("insufficient stock maps to 409", func() {
		b := builder.NewOrderBuilder()
		stockErr := shared.InsufficientStockError{ProductID: b.ProductID, Requested: b.Quantity}

		s.mockBooking.EXPECT().
			Checkout(gomock.Any(), s.cashierID, gomock.Any()).
			Return(nil, errs.Mark(stockErr, errs.ErrInsufficientStock))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCheckoutRequestDTO(), "token")

		s.Equal(http.StatusConflict, w.Code)
		s.Contains(w.Body.String(), "Insufficient stock")
	})

	s.Run("invalid schedule maps to 422", func() {
		b := builder.NewOrderBuilder()

		s.mockBooking.EXPECT().
			Checkout(gomock.Any(), s.cashierID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("schedule gone"), errs.ErrInvalidSchedule))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCheckoutRequestDTO(), "token")

		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("seat outside capacity maps to 422", func() {
		b := builder.NewOrderBuilder()

		s.mockBooking.EXPECT().
			Checkout(gomock.Any(), s.cashierID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("seat 101"), errs.ErrInvalidSeat))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCheckoutRequestDTO(), "token")

		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("unknown product maps to 404", func() {
		b := builder.NewOrderBuilder()

		s.mockBooking.EXPECT().
			Checkout(gomock.Any(), s.cashierID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("missing"), errs.ErrProductNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCheckoutRequestDTO(), "token")

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("empty items rejected by binding", func() {
		body := testutil.DtoMap(s.T(), builder.NewOrderBuilder().BuildCheckoutRequestDTO(),
			testutil.Field("items", []any{}))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("missing items field rejected by binding", func() {
		body := testutil.DtoMap(s.T(), builder.NewOrderBuilder().BuildCheckoutRequestDTO(),
			testutil.Field("items", nil))
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unauthenticated request", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, builder.NewOrderBuilder().BuildCheckoutRequestDTO(), "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *OrderHandlerTestSuite) TestGetOrder() {
	s.Run("found", func() {
		b := builder.NewOrderBuilder()
		view := b.BuildOrderView()

		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), b.OrderID).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+b.OrderID.String(), nil, "token")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), b.OrderID.String())
	})

	s.Run("not found", func() {
		id := uuid.New()

		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrOrderNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+id.String(), nil, "token")

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "token")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}
