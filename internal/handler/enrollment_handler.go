package handler

import (
	"net/http"

	"github.com/MAHBUBNISHAN/yoga-school-server/internal/dto"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/middleware"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/service"
	"github.com/MAHBUBNISHAN/yoga-school-server/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EnrollmentHandler struct {
	enrollmentService service.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// Select handles POST /enrollments.
func (h *EnrollmentHandler) Select(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.SelectClassInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": formatValidationError(err)})
		return
	}

	enrollment, err := h.enrollmentService.Select(c.Request.Context(), identity.Email, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, enrollment)
}

// MySelections handles GET /enrollments, scoped by the token email.
func (h *EnrollmentHandler) MySelections(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	enrollments, err := h.enrollmentService.MySelections(c.Request.Context(), identity.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, enrollments)
}

// Withdraw handles DELETE /enrollments/:id. Only the owner's rows can be
// removed; anything else reports zero affected.
func (h *EnrollmentHandler) Withdraw(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid enrollment id"})
		return
	}

	res, err := h.enrollmentService.Withdraw(c.Request.Context(), id, identity.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
