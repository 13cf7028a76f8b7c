package enum

import "database/sql/driver"

// ItemCategory routes an item to its preparation station.
// KOT items go to the kitchen printer, BOT items to the bar printer.
type ItemCategory string

const (
	ItemCategoryKOT ItemCategory = "kot"
	ItemCategoryBOT ItemCategory = "bot"
)

func (c ItemCategory) String() string {
	return string(c)
}

// Valid reports whether the category is one of the two fixed tags
func (c ItemCategory) Valid() bool {
	return c == ItemCategoryKOT || c == ItemCategoryBOT
}

func (c ItemCategory) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *ItemCategory) Scan(value interface{}) error {
	if value == nil {
		*c = ItemCategoryKOT
		return nil
	}
	switch v := value.(type) {
	case string:
		*c = ItemCategory(v)
	case []byte:
		*c = ItemCategory(v)
	}
	return nil
}
