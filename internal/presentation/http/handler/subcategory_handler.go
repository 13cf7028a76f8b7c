package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tavolo/tavolo-api/internal/application/service"
	"github.com/tavolo/tavolo-api/internal/presentation/http/dto/request"
	"github.com/tavolo/tavolo-api/internal/presentation/http/dto/response"
)

// SubcategoryHandler handles subcategory HTTP requests
type SubcategoryHandler struct {
	subcategoryService *service.SubcategoryService
}

// NewSubcategoryHandler creates a new subcategory handler
func NewSubcategoryHandler(subcategoryService *service.SubcategoryService) *SubcategoryHandler {
	return &SubcategoryHandler{subcategoryService: subcategoryService}
}

// List handles listing subcategories
func (h *SubcategoryHandler) List(c *gin.Context) {
	subs, err := h.subcategoryService.ListSubcategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subcategories retrieved successfully", subs)
}

// Create handles subcategory creation
func (h *SubcategoryHandler) Create(c *gin.Context) {
	var req request.SubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sub, err := h.subcategoryService.CreateSubcategory(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Subcategory created successfully", sub)
}

// Update handles subcategory renames
func (h *SubcategoryHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.SubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sub, err := h.subcategoryService.UpdateSubcategory(c.Request.Context(), id, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subcategory updated successfully", sub)
}

// Delete handles subcategory deletion
func (h *SubcategoryHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.subcategoryService.DeleteSubcategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subcategory deleted successfully", nil)
}
