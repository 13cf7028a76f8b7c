package enum

// PrinterStation is the role a configured printer plays in the shop
type PrinterStation string

const (
	// StationKitchen receives KOT tickets
	StationKitchen PrinterStation = "kitchen"
	// StationBar receives BOT tickets
	StationBar PrinterStation = "bar"
	// StationReceipt receives customer receipts after settlement
	StationReceipt PrinterStation = "receipt"
)

func (s PrinterStation) String() string {
	return string(s)
}

// Valid reports whether the station is a known value
func (s PrinterStation) Valid() bool {
	switch s {
	case StationKitchen, StationBar, StationReceipt:
		return true
	}
	return false
}

// StationFor maps an item category to the station that prepares it
func StationFor(c ItemCategory) PrinterStation {
	if c == ItemCategoryBOT {
		return StationBar
	}
	return StationKitchen
}
