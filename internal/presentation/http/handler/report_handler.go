package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tavolo/tavolo-api/internal/application/service"
	"github.com/tavolo/tavolo-api/internal/presentation/http/dto/response"
)

// ReportHandler handles sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parseRange reads the from/to query range. Missing values default to the
// last 30 days ending now.
func (h *ReportHandler) parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -30)

	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.BadRequest(c, "Invalid from timestamp")
			return time.Time{}, time.Time{}, false
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.BadRequest(c, "Invalid to timestamp")
			return time.Time{}, time.Time{}, false
		}
		to = t
	}
	return from, to, true
}

type reportFunc func(ctx context.Context, from, to time.Time) ([]byte, error)

func (h *ReportHandler) serve(c *gin.Context, name, contentType string, fn reportFunc) {
	from, to, ok := h.parseRange(c)
	if !ok {
		return
	}

	data, err := fn(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", name))
	c.Data(200, contentType, data)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// OrdersCSV streams the settled orders report as CSV
func (h *ReportHandler) OrdersCSV(c *gin.Context) {
	h.serve(c, "orders.csv", "text/csv", h.reportService.OrdersCSV)
}

// OrdersXLSX streams the settled orders report as an Excel workbook
func (h *ReportHandler) OrdersXLSX(c *gin.Context) {
	h.serve(c, "orders.xlsx", xlsxContentType, h.reportService.OrdersXLSX)
}

// ItemSalesCSV streams the aggregated item sales report as CSV
func (h *ReportHandler) ItemSalesCSV(c *gin.Context) {
	h.serve(c, "item-sales.csv", "text/csv", h.reportService.ItemSalesCSV)
}

// ItemSalesXLSX streams the aggregated item sales report as an Excel workbook
func (h *ReportHandler) ItemSalesXLSX(c *gin.Context) {
	h.serve(c, "item-sales.xlsx", xlsxContentType, h.reportService.ItemSalesXLSX)
}
