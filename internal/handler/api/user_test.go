//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"cinema-pos/internal/domain/user"
	"cinema-pos/internal/handler/api"
	"cinema-pos/internal/infra"
	"cinema-pos/internal/pkg/errs"
	"cinema-pos/internal/usecase/commands"
	"cinema-pos/tests/common/httptest"
	commandsmock "cinema-pos/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockCmds *commandsmock.MockUserAdminCommands
	handler  *api.UserHandler
	adminID  uuid.UUID
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.adminID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockUserAdminCommands(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockCmds)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.adminID)
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.POST("/users", authMiddleware, s.handler.CreateUser)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestCreateUser() {
	s.Run("creates a user", func() {
		created := &commands.CreateUserResult{
			UserID: uuid.New(),
			Email:  "new.cashier@cinema.example",
			Role:   user.RoleCashier,
		}
		s.mockCmds.EXPECT().
			CreateUser(gomock.Any(), "new.cashier@cinema.example", "s3cret-pass", "cashier").
			Return(created, nil)

		body := map[string]any{
			"email":    "new.cashier@cinema.example",
			"password": "s3cret-pass",
			"role":     "cashier",
		}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", body, "token")

		s.Equal(http.StatusCreated, w.Code)
		s.Contains(w.Body.String(), created.UserID.String())
		s.Contains(w.Body.String(), `"role":"cashier"`)
	})

	s.Run("duplicate email maps to 409", func() {
		s.mockCmds.EXPECT().
			CreateUser(gomock.Any(), "taken@cinema.example", "s3cret-pass", "manager").
			Return(nil, infra.WrapRepoErr("email already registered", errs.New("duplicate key"), infra.KindDuplicateKey))

		body := map[string]any{
			"email":    "taken@cinema.example",
			"password": "s3cret-pass",
			"role":     "manager",
		}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", body, "token")

		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("domain validation maps to 422", func() {
		s.mockCmds.EXPECT().
			CreateUser(gomock.Any(), "weak@cinema.example", "longenough", "cashier").
			Return(nil, errs.Mark(user.ErrPasswordTooWeak, errs.ErrDomainValidation))

		body := map[string]any{
			"email":    "weak@cinema.example",
			"password": "longenough",
			"role":     "cashier",
		}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", body, "token")

		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("malformed body maps to 400", func() {
		body := map[string]any{"email": "not-an-email", "password": "short"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", body, "token")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("missing token maps to 401", func() {
		body := map[string]any{
			"email":    "x@cinema.example",
			"password": "s3cret-pass",
			"role":     "cashier",
		}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", body, "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}
