package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tavolo/tavolo-api/internal/application/service"
	"github.com/tavolo/tavolo-api/internal/domain/repository"
	"github.com/tavolo/tavolo-api/internal/presentation/http/dto/response"
)

// HistoryHandler handles settled bill HTTP requests
type HistoryHandler struct {
	historyService *service.HistoryService
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// List handles listing settled bills with optional filters
func (h *HistoryHandler) List(c *gin.Context) {
	params := &repository.HistoryFilterParams{
		Pagination: pageParams(c),
	}

	if table := c.Query("table_no"); table != "" {
		tableNo, err := strconv.Atoi(table)
		if err != nil {
			response.BadRequest(c, "Invalid table_no")
			return
		}
		params.TableNo = &tableNo
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			response.BadRequest(c, "Invalid from timestamp")
			return
		}
		params.From = &t
	}

	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			response.BadRequest(c, "Invalid to timestamp")
			return
		}
		params.To = &t
	}

	result, err := h.historyService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Get handles retrieving a single settled bill with its line snapshots
func (h *HistoryHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	bill, err := h.historyService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// PDF streams a settled bill rendered as a PDF receipt
func (h *HistoryHandler) PDF(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	data, err := h.historyService.BillPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=bill-%s.pdf", id))
	c.Data(200, "application/pdf", data)
}
