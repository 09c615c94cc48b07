package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stats is the admin dashboard summary. Revenue figures sum total_price over
// the calendar day of asOf and over the ISO week (Monday start) containing it.
type Stats struct {
	PreparingOrders  int             `json:"preparing_orders"`
	ReadyOrders      int             `json:"ready_orders"`
	TodayOrdersCount int             `json:"today_orders_count"`
	TodayRevenue     decimal.Decimal `json:"today_revenue"`
	WeekRevenue      decimal.Decimal `json:"week_revenue"`
	TotalOrders      int             `json:"total_orders"`
}

// WeekStart returns midnight of the Monday of the ISO week containing d.
func WeekStart(d time.Time) time.Time {
	wd := int(d.Weekday())
	if wd == 0 { // Sunday
		wd = 7
	}
	d = d.AddDate(0, 0, -(wd - 1))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}
