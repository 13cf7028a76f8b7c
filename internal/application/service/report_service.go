package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/internal/domain/repository"
	"github.com/tavolo/tavolo-api/pkg/apperror"
)

// ReportService exports settlement history as CSV and XLSX documents
type ReportService struct {
	historyRepo repository.HistoryRepository
}

// NewReportService creates a new report service
func NewReportService(historyRepo repository.HistoryRepository) *ReportService {
	return &ReportService{historyRepo: historyRepo}
}

var ordersHeader = []string{"Bill No", "Table", "Closed At", "Subtotal", "Service Charge", "Discount", "Final Amount", "Payment Method"}

var itemSalesHeader = []string{"Item", "Category", "Quantity Sold", "Revenue"}

func (s *ReportService) billsInRange(ctx context.Context, from, to time.Time) ([]entity.HistoryBill, error) {
	if !to.After(from) {
		return nil, apperror.NewBadRequestError("Report range end must be after start")
	}
	return s.historyRepo.ListBillsInRange(ctx, from, to)
}

func ordersRow(b *entity.HistoryBill) []string {
	return []string{
		b.ID.String()[:8],
		fmt.Sprintf("%d", b.TableNo),
		b.ClosedAt.Format("2006-01-02 15:04:05"),
		fmt.Sprintf("%.2f", float64(b.SubTotal)/100),
		fmt.Sprintf("%.2f", float64(b.ServiceAmount)/100),
		fmt.Sprintf("%.2f", float64(b.Discount)/100),
		fmt.Sprintf("%.2f", float64(b.FinalAmount)/100),
		string(b.PaymentMethod),
	}
}

// aggregateItemSales folds all bill lines into one row per (item, category)
func aggregateItemSales(bills []entity.HistoryBill) []repository.ItemSalesRow {
	type key struct {
		name     string
		category string
	}
	agg := make(map[key]*repository.ItemSalesRow)
	for _, bill := range bills {
		for _, line := range bill.Lines {
			k := key{name: line.ItemName, category: string(line.Category)}
			row, ok := agg[k]
			if !ok {
				row = &repository.ItemSalesRow{ItemName: line.ItemName, Category: string(line.Category)}
				agg[k] = row
			}
			row.Quantity += line.Quantity
			row.Revenue += line.LineTotal
		}
	}

	rows := make([]repository.ItemSalesRow, 0, len(agg))
	for _, row := range agg {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Revenue != rows[j].Revenue {
			return rows[i].Revenue > rows[j].Revenue
		}
		return rows[i].ItemName < rows[j].ItemName
	})
	return rows
}

func itemSalesRow(r *repository.ItemSalesRow) []string {
	return []string{
		r.ItemName,
		r.Category,
		fmt.Sprintf("%d", r.Quantity),
		fmt.Sprintf("%.2f", float64(r.Revenue)/100),
	}
}

// OrdersCSV exports one row per settled bill in [from, to) as CSV
func (s *ReportService) OrdersCSV(ctx context.Context, from, to time.Time) ([]byte, error) {
	bills, err := s.billsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(ordersHeader); err != nil {
		return nil, err
	}
	for i := range bills {
		if err := w.Write(ordersRow(&bills[i])); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ItemSalesCSV exports aggregated per-item sales in [from, to) as CSV
func (s *ReportService) ItemSalesCSV(ctx context.Context, from, to time.Time) ([]byte, error) {
	bills, err := s.billsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(itemSalesHeader); err != nil {
		return nil, err
	}
	for _, row := range aggregateItemSales(bills) {
		if err := w.Write(itemSalesRow(&row)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// OrdersXLSX exports one row per settled bill in [from, to) as an Excel
// workbook
func (s *ReportService) OrdersXLSX(ctx context.Context, from, to time.Time) ([]byte, error) {
	bills, err := s.billsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(bills))
	for i := range bills {
		rows = append(rows, ordersRow(&bills[i]))
	}
	return writeXLSX("Orders", ordersHeader, rows)
}

// ItemSalesXLSX exports aggregated per-item sales in [from, to) as an Excel
// workbook
func (s *ReportService) ItemSalesXLSX(ctx context.Context, from, to time.Time) ([]byte, error) {
	bills, err := s.billsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	agg := aggregateItemSales(bills)
	rows := make([][]string, 0, len(agg))
	for _, row := range agg {
		rows = append(rows, itemSalesRow(&row))
	}
	return writeXLSX("Item Sales", itemSalesHeader, rows)
}

func writeXLSX(sheet string, header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	writeRow := func(rowNum int, values []string) error {
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeRow(1, header); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := writeRow(i+2, row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
