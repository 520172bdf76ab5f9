package handler

import (
	"net/http"

	"github.com/MAHBUBNISHAN/yoga-school-server/internal/service"
	"github.com/MAHBUBNISHAN/yoga-school-server/pkg/response"
	"github.com/gin-gonic/gin"
)

// ViewHandler serves the public read-only projections. Empty results are
// empty arrays, never errors.
type ViewHandler struct {
	viewService service.ViewService
}

func NewViewHandler(viewService service.ViewService) *ViewHandler {
	return &ViewHandler{viewService: viewService}
}

// TopClasses handles GET /top-classes.
func (h *ViewHandler) TopClasses(c *gin.Context) {
	classes, err := h.viewService.TopClasses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

// ApprovedClasses handles GET /classes.
func (h *ViewHandler) ApprovedClasses(c *gin.Context) {
	classes, err := h.viewService.ApprovedClasses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

// Instructors handles GET /instructors.
func (h *ViewHandler) Instructors(c *gin.Context) {
	entries, err := h.viewService.InstructorDirectory(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// PopularInstructors handles GET /popular-instructors.
func (h *ViewHandler) PopularInstructors(c *gin.Context) {
	entries, err := h.viewService.PopularInstructors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
