package entity

// ReceiptHeader holds the shop header printed at the top of a receipt.
type ReceiptHeader struct {
	ShopName string `json:"shop_name"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	TaxID    string `json:"tax_id,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable customer bill.
// It is NOT a database entity; it is composed from a history bill at
// render time.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	BillNo        string        `json:"bill_no"`
	TableNo       int           `json:"table_no"`
	Date          string        `json:"date"`
	Cashier       string        `json:"cashier,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Items         []ReceiptItem `json:"items"`
	SubTotal      float64       `json:"sub_total"`
	Discount      float64       `json:"discount"`
	ServiceCharge float64       `json:"service_charge"`
	Total         float64       `json:"total"`
	Note          string        `json:"note,omitempty"`
	Footer        string        `json:"footer,omitempty"`
	Currency      string        `json:"currency,omitempty"`
}

// Ticket is a value object for a kitchen or bar order ticket: the lines of
// one batch routed to a preparation station when they are added.
type Ticket struct {
	Station string        `json:"station"`
	TableNo int           `json:"table_no"`
	Date    string        `json:"date"`
	Items   []ReceiptItem `json:"items"`
}
