package handler

import (
	"net/http"

	"github.com/MAHBUBNISHAN/yoga-school-server/internal/dto"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/service"
	"github.com/MAHBUBNISHAN/yoga-school-server/pkg/response"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register handles POST /users. Re-registering an existing email is a
// neutral success.
func (h *UserHandler) Register(c *gin.Context) {
	var input dto.RegisterUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": formatValidationError(err)})
		return
	}

	user, created, err := h.userService.Register(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetAllUsers handles GET /users (admin).
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateRole handles PATCH /users/:id (admin).
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var input dto.UpdateRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": formatValidationError(err)})
		return
	}

	res, err := h.userService.UpdateRole(c.Request.Context(), c.Param("id"), input.Role)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
