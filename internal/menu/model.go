package menu

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultCategory = "Main Course"

type MenuItem struct {
	ID          int64  `json:"id"`
	ItemName    string `json:"item_name"`
	Description string `json:"description,omitempty"`
	// NUMERIC in Postgres; scanned via ::text to avoid float rounding
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	VegNonveg   string          `json:"veg_nonveg"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateItemRequest payload for adding a dish.
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	ItemName    string           `json:"item_name"    example:"Paneer Butter Masala"`
	Description string           `json:"description"  example:"Creamy paneer in a rich tomato gravy"`
	Price       *decimal.Decimal `json:"price"        example:"180.00"`
	Category    string           `json:"category"     example:"Main Course"`
	VegNonveg   string           `json:"veg_nonveg"   example:"Veg"`
	IsAvailable *bool            `json:"is_available"`
}

// UpdateItemRequest payload for a partial patch; nil fields are left unchanged.
// swagger:model UpdateItemRequest
type UpdateItemRequest struct {
	ItemName    *string          `json:"item_name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	VegNonveg   *string          `json:"veg_nonveg"`
	IsAvailable *bool            `json:"is_available"`
}

// Apply copies the provided fields onto m.
func (u UpdateItemRequest) Apply(m *MenuItem) {
	if u.ItemName != nil {
		m.ItemName = *u.ItemName
	}
	if u.Description != nil {
		m.Description = *u.Description
	}
	if u.Price != nil {
		m.Price = *u.Price
	}
	if u.Category != nil {
		m.Category = *u.Category
	}
	if u.VegNonveg != nil {
		m.VegNonveg = *u.VegNonveg
	}
	if u.IsAvailable != nil {
		m.IsAvailable = *u.IsAvailable
	}
}
