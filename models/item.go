package models

// Item represents a single catalog entry offered by the shop.
type Item struct {
	// ItemID is the internal store-assigned identifier of the item.
	ItemID int64 `json:"_id"`

	// Name is the display name of the item.
	Name string `json:"Name"`

	// Brand is the manufacturer or product line of the item.
	Brand string `json:"Brand"`

	// Price is the item price in the shop's base currency.
	Price float64 `json:"Price"`

	// ImagePath is an optional URL or path to the item's product image.
	ImagePath string `json:"ImagePath,omitempty"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemFilter holds optional catalog search criteria. Zero-valued fields
// are ignored when the listing query is built.
type ItemFilter struct {
	// Brand restricts the listing to items of a single brand.
	Brand string

	// MinPrice and MaxPrice bound the price range. A nil bound is open.
	MinPrice *float64
	MaxPrice *float64
}
