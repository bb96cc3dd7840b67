package api

import (
	"net/http"

	reqdto "cinema-pos/internal/handler/dto/request"
	resdto "cinema-pos/internal/handler/dto/response"
	"cinema-pos/internal/infra"
	"cinema-pos/internal/pkg/errs"
	"cinema-pos/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userCommands commands.UserAdminCommands
}

func NewUserHandler(userCommands commands.UserAdminCommands) *UserHandler {
	return &UserHandler{
		userCommands: userCommands,
	}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.userCommands.CreateUser(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email is already registered",
			})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid email, password or role",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateUserResult(result))
}
