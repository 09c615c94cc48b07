package order

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// money fields go over the wire as JSON numbers, matching the dashboard
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	StatusPreparing = "Preparing"
	StatusReady     = "Ready"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// ValidStatus reports whether s is one of the four legal order states.
func ValidStatus(s string) bool {
	switch s {
	case StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// LineItem is the snapshot of one ordered dish taken at checkout time.
// Menu price changes after the order is placed do not affect it.
type LineItem struct {
	MenuItemID int64           `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

type Order struct {
	ID             int64           `json:"id"`
	CustomerName   string          `json:"customer_name"`
	CustomerMobile string          `json:"customer_mobile,omitempty"`
	Items          []LineItem      `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Status         string          `json:"status"`
	PaymentMethod  string          `json:"payment_method"`
	PaymentID      string          `json:"payment_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreateOrderRequest payload for checkout.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	CustomerName   string           `json:"customer_name"   example:"Asha"`
	CustomerMobile string           `json:"customer_mobile" example:"9999999999"`
	Items          []LineItem       `json:"items"`
	Subtotal       *decimal.Decimal `json:"subtotal"`
	Discount       *decimal.Decimal `json:"discount"`
	TotalPrice     *decimal.Decimal `json:"total_price"     example:"300"`
	PaymentMethod  string           `json:"payment_method"  example:"Cash"`
	PaymentID      string           `json:"payment_id"`
}

// UpdateStatusRequest payload for a status transition.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"Ready"`
}
