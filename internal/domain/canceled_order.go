package domain

import "time"

// CanceledOrderSummary is one row of the shift-manager canceled orders
// listing. Price and Type are echoed into the detail fetch because the
// detail page does not repeat them.
type CanceledOrderSummary struct {
	UUID  string `json:"order_uuid"`
	No    string `json:"order_no"`
	Price int    `json:"order_price"`
	Type  string `json:"order_type"`
}

// CanceledOrder is the detail-page view of a canceled order. RejectedAt is
// set only when the order history shows a printed refund receipt before the
// rejection event; without it the cancellation is not confirmed yet.
type CanceledOrder struct {
	Department string     `json:"department"`
	CreatedAt  *time.Time `json:"order_created_at"`
	RejectedAt *time.Time `json:"receipt_printed_at"`
	No         string     `json:"order_no"`
	Type       string     `json:"order_type"`
	Price      int        `json:"order_price"`
	UUID       string     `json:"order_uuid"`
}

// Confirmed reports whether the cancellation went through the refund receipt
// flow. Unconfirmed orders stay eligible for detection on a later tick.
func (o *CanceledOrder) Confirmed() bool {
	return o.RejectedAt != nil
}
