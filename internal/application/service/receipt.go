package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/tavolo/tavolo-api/internal/domain/entity"
	"github.com/tavolo/tavolo-api/pkg/printer"
)

// BuildReceipt composes a printable receipt from a settled bill and the shop
// profile. Pure function of its inputs; money converts from cents once here.
func BuildReceipt(bill *entity.HistoryBill, shop *entity.Shop) *entity.Receipt {
	r := &entity.Receipt{
		BillNo:        strings.ToUpper(bill.ID.String()[:8]),
		TableNo:       bill.TableNo,
		Date:          bill.ClosedAt.Format("2006-01-02 15:04"),
		PaymentMethod: string(bill.PaymentMethod),
		SubTotal:      float64(bill.SubTotal) / 100,
		Discount:      float64(bill.Discount) / 100,
		ServiceCharge: float64(bill.ServiceAmount) / 100,
		Total:         float64(bill.FinalAmount) / 100,
		Note:          bill.Note,
	}

	if shop != nil {
		r.Header = entity.ReceiptHeader{
			ShopName: shop.Name,
			Address:  shop.Address,
			Phone:    shop.Phone,
			TaxID:    shop.TaxID,
		}
		r.Footer = shop.ReceiptFooter
		r.Currency = shop.Currency
	}
	if bill.SettledBy != nil {
		r.Cashier = bill.SettledBy.Username
	}

	for _, line := range bill.Lines {
		r.Items = append(r.Items, entity.ReceiptItem{
			Name:      line.ItemName,
			Quantity:  line.Quantity,
			UnitPrice: float64(line.UnitPrice) / 100,
			Total:     float64(line.LineTotal) / 100,
		})
	}

	return r
}

// FormatReceipt converts a receipt into a fixed-width ESC/POS byte stream.
func FormatReceipt(r *entity.Receipt, width int) []byte {
	doc := printer.NewDocument(width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.ShopName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.TaxID != "" {
		doc.TextF("Tax ID: %s", r.Header.TaxID)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Bill:", r.BillNo).
		KeyValue("Table:", fmt.Sprintf("%d", r.TableNo)).
		KeyValue("Date:", r.Date)

	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}
	if r.PaymentMethod != "" {
		doc.KeyValue("Payment:", r.PaymentMethod)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.SubTotal))
	if r.ServiceCharge > 0 {
		doc.KeyValue("Service 10%:", fmt.Sprintf("%.2f", r.ServiceCharge))
	}
	if r.Discount > 0 {
		doc.KeyValue("Discount:", fmt.Sprintf("-%.2f", r.Discount))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%s%.2f", r.Currency, r.Total)).
		SetBold(false)

	if r.Note != "" {
		doc.Separator('-').
			Text(r.Note)
	}

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		LineFeed()
	if r.Footer != "" {
		doc.Text(r.Footer)
	} else {
		doc.Text("Thank you, visit again!")
	}
	doc.LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// FormatTicket converts a station ticket into an ESC/POS byte stream for
// the kitchen or bar printer.
func FormatTicket(t *entity.Ticket, width int) []byte {
	doc := printer.NewDocument(width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(strings.ToUpper(t.Station)).
		SetFontSize(printer.FontNormal).
		SetBold(false).
		SetAlign(printer.AlignLeft).
		Separator('=').
		KeyValue("Table:", fmt.Sprintf("%d", t.TableNo)).
		KeyValue("Time:", t.Date).
		Separator('=')

	doc.SetFontSize(printer.FontTall)
	for _, item := range t.Items {
		doc.TextF("%dx %s", item.Quantity, item.Name)
	}
	doc.SetFontSize(printer.FontNormal)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// RenderReceiptPDF renders a receipt as a PDF buffer sized for an 80mm
// paper roll, used for download and re-print of historical bills.
func RenderReceiptPDF(r *entity.Receipt) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: 80, Ht: 250},
	})
	pdf.SetMargins(5, 8, 5)
	pdf.SetAutoPageBreak(true, 8)
	pdf.AddPage()

	line := func(h float64) {
		pdf.SetDrawColor(120, 120, 120)
		x, y := pdf.GetX(), pdf.GetY()
		pdf.Line(x, y, x+70, y)
		pdf.SetY(y + h)
	}
	row := func(label, value string) {
		pdf.SetX(5)
		pdf.CellFormat(35, 5, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 5, value, "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(70, 6, r.Header.ShopName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	if r.Header.Address != "" {
		pdf.CellFormat(70, 4, r.Header.Address, "", 1, "C", false, 0, "")
	}
	if r.Header.Phone != "" {
		pdf.CellFormat(70, 4, r.Header.Phone, "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)
	line(2)

	pdf.SetFont("Helvetica", "", 9)
	row("Bill", r.BillNo)
	row("Table", fmt.Sprintf("%d", r.TableNo))
	row("Date", r.Date)
	if r.Cashier != "" {
		row("Cashier", r.Cashier)
	}
	if r.PaymentMethod != "" {
		row("Payment", r.PaymentMethod)
	}
	line(2)

	for _, item := range r.Items {
		row(fmt.Sprintf("%dx %s", item.Quantity, item.Name), fmt.Sprintf("%.2f", item.Total))
	}
	line(2)

	row("Subtotal", fmt.Sprintf("%.2f", r.SubTotal))
	if r.ServiceCharge > 0 {
		row("Service 10%", fmt.Sprintf("%.2f", r.ServiceCharge))
	}
	if r.Discount > 0 {
		row("Discount", fmt.Sprintf("-%.2f", r.Discount))
	}
	pdf.SetFont("Helvetica", "B", 10)
	row("TOTAL", fmt.Sprintf("%s%.2f", r.Currency, r.Total))
	pdf.SetFont("Helvetica", "", 8)

	if r.Note != "" {
		pdf.Ln(2)
		pdf.MultiCell(70, 4, r.Note, "", "L", false)
	}

	pdf.Ln(4)
	footer := r.Footer
	if footer == "" {
		footer = "Thank you, visit again!"
	}
	pdf.CellFormat(70, 4, footer, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt PDF: %w", err)
	}
	return buf.Bytes(), nil
}
