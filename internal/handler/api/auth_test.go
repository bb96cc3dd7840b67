//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"cinema-pos/internal/domain/user"
	"cinema-pos/internal/handler/api"
	"cinema-pos/internal/pkg/errs"
	"cinema-pos/internal/usecase/commands"
	"cinema-pos/tests/common/httptest"
	commandsmock "cinema-pos/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAuth *commandsmock.MockAuthCommands
	handler  *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockAuth)

	s.router.POST("/auth/login", s.handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	s.Run("valid credentials return token and role", func() {
		result := &commands.LoginResult{
			Token:  "signed-token",
			UserID: uuid.New(),
			Role:   user.RoleCashier,
		}

		s.mockAuth.EXPECT().
			Login(gomock.Any(), "cashier@cinema.local", "secret123").
			Return(result, nil)

		body := map[string]any{"email": "cashier@cinema.local", "password": "secret123"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "signed-token")
		s.Contains(w.Body.String(), `"role":"cashier"`)
		httptest.AssertHeaders(s.T(), w, map[string]string{
			"Content-Type": "application/json; charset=utf-8",
		})
	})

	s.Run("bad credentials map to 401", func() {
		s.mockAuth.EXPECT().
			Login(gomock.Any(), "cashier@cinema.local", "wrong").
			Return(nil, errs.ErrInvalidCredentials)

		body := map[string]any{"email": "cashier@cinema.local", "password": "wrong"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("missing password rejected by binding", func() {
		body := map[string]any{"email": "cashier@cinema.local"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("malformed email rejected by binding", func() {
		body := map[string]any{"email": "not-an-email", "password": "secret123"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}
