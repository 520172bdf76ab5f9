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

type ClassHandler struct {
	classService service.ClassService
}

func NewClassHandler(classService service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// Create handles POST /classes (instructor).
func (h *ClassHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.CreateClassInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": formatValidationError(err)})
		return
	}

	class, err := h.classService.Create(c.Request.Context(), identity.Email, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, class)
}

// MyClasses handles GET /my-classes, scoped by the token email.
func (h *ClassHandler) MyClasses(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	classes, err := h.classService.MyClasses(c.Request.Context(), identity.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

// AllClasses handles GET /all-classes (admin).
func (h *ClassHandler) AllClasses(c *gin.Context) {
	classes, err := h.classService.AllClasses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

// UpdateStatus handles PATCH /classes/:id/status (admin).
func (h *ClassHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid class id"})
		return
	}

	var input dto.UpdateClassStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": formatValidationError(err)})
		return
	}

	res, err := h.classService.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// AddFeedback handles PATCH /classes/:id/feedback (admin).
func (h *ClassHandler) AddFeedback(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": "invalid class id"})
		return
	}

	var input dto.AddFeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "message": formatValidationError(err)})
		return
	}

	res, err := h.classService.AddFeedback(c.Request.Context(), id, input.Feedback)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
