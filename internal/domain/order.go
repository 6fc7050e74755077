package domain

import "time"

// Order is one row of the restaurant orders report.
type Order struct {
	Department          string    `json:"department"`
	AcceptedAt          time.Time `json:"datetime"`
	No                  string    `json:"no"`
	Type                string    `json:"type"`
	CustomerName        string    `json:"customer_name"`
	CustomerPhoneNumber string    `json:"customer_phone_number"`
	Price               int       `json:"price"`
	PaymentMethod       string    `json:"payment_method"`
	Status              string    `json:"order_status"`
	AcceptedByEmployee  string    `json:"accepted_by_employee"`
}
