package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tavolo/tavolo-api/internal/application/service"
	"github.com/tavolo/tavolo-api/internal/domain/enum"
	"github.com/tavolo/tavolo-api/internal/domain/repository"
	"github.com/tavolo/tavolo-api/internal/presentation/http/dto/request"
	"github.com/tavolo/tavolo-api/internal/presentation/http/dto/response"
)

// ItemHandler handles menu item HTTP requests
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// List handles listing menu items
func (h *ItemHandler) List(c *gin.Context) {
	params := &repository.ItemFilterParams{
		Pagination: pageParams(c),
		Search:     c.Query("search"),
		ActiveOnly: c.Query("active") == "true",
	}

	if cat := c.Query("category"); cat != "" {
		category := enum.ItemCategory(cat)
		if !category.Valid() {
			response.BadRequest(c, "Invalid category")
			return
		}
		params.Category = &category
	}

	if sub := c.Query("subcategory_id"); sub != "" {
		subID, err := uuid.Parse(sub)
		if err != nil {
			response.BadRequest(c, "Invalid subcategory_id")
			return
		}
		params.SubcategoryID = &subID
	}

	result, err := h.itemService.ListItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Items retrieved successfully", result)
}

// Get handles retrieving a single menu item
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// Create handles menu item creation
func (h *ItemHandler) Create(c *gin.Context) {
	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateItemInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: enum.ItemCategory(req.Category),
	}
	if req.SubcategoryID != nil {
		subID, err := uuid.Parse(*req.SubcategoryID)
		if err != nil {
			response.BadRequest(c, "Invalid subcategory_id")
			return
		}
		input.SubcategoryID = &subID
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// Update handles menu item updates
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateItemInput{
		Name:   req.Name,
		Price:  req.Price,
		Active: req.Active,
	}
	if req.Category != nil {
		category := enum.ItemCategory(*req.Category)
		input.Category = &category
	}
	if req.SubcategoryID != nil {
		subID, err := uuid.Parse(*req.SubcategoryID)
		if err != nil {
			response.BadRequest(c, "Invalid subcategory_id")
			return
		}
		input.SubcategoryID = &subID
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", item)
}

// Delete handles menu item deletion
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item deleted successfully", nil)
}
