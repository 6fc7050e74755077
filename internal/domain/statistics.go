package domain

import "time"

// KitchenStatistics is the per-department kitchen panel. Durations are kept
// as total seconds.
type KitchenStatistics struct {
	RevenuePerHour        int     `json:"revenue_per_hour"`
	RevenueIncrease       int     `json:"revenue_increase_over_week_ago"`
	SpendingPerHour       float64 `json:"products_spending_per_hour"`
	SpendingIncrease      int     `json:"products_spending_increase_over_week_ago"`
	AverageCookingTimeSec int     `json:"average_cooking_time"`
	Postponed             int     `json:"postponed"`
	InQueue               int     `json:"in_queue"`
	InWork                int     `json:"in_work"`
}

// DeliveryStatistics is the per-department delivery panel.
type DeliveryStatistics struct {
	DeliveriesPerHour   float64 `json:"deliveries_amount_per_hour"`
	IncreaseOverWeekAgo int     `json:"increase_over_week_ago"`
	AwaitingOrders      int     `json:"awaiting_orders_amount"`
	CouriersTotal       int     `json:"couriers_total_amount"`
	CouriersInQueue     int     `json:"couriers_in_queue_amount"`
	AwaitingTimeSec     int     `json:"delivery_awaiting_time"`
}

// DeliveryStatisticsRow is one department row of the detailed delivery
// Excel export.
type DeliveryStatisticsRow struct {
	Department              string `json:"department"`
	TotalAverageTimeSec     int    `json:"total_average_time"`
	AverageCookingTimeSec   int    `json:"average_cooking_time"`
	AverageHeatShelfTimeSec int    `json:"average_awaiting_on_heat_shelf_time"`
	AverageDeliveryTimeSec  int    `json:"average_delivery_time"`
}

// OrdersStatistics aggregates the restaurant orders listing into bonus
// program coverage numbers.
type OrdersStatistics struct {
	CustomersWithBonus int     `json:"customers_with_bonus"`
	TotalCustomers     int     `json:"total_customers"`
	BonusPercentage    float64 `json:"bonus_percentage"`
}

// RevenueStatistics is the persisted daily revenue row shape.
type RevenueStatistics struct {
	DailyRevenue        int `json:"daily_revenue"`
	IncreaseOverWeekAgo int `json:"increase_over_week_ago"`
}

// BeingLateCertificate is one issued lateness certificate.
type BeingLateCertificate struct {
	Department        string    `json:"department"`
	IssuedAt          time.Time `json:"datetime"`
	OrderNo           string    `json:"order_no"`
	EstimatedDelivery string    `json:"approximately_delivery_time"`
	CourierMarkAt     string    `json:"courier_mark_at"`
	DeliveryDeadline  string    `json:"delivery_deadline"`
	CertificateType   string    `json:"certificate_type"`
	GivenBy           string    `json:"given_by"`
}

// BeingLateStatistics is the persisted certificate counters row shape.
type BeingLateStatistics struct {
	DailyAmount   int `json:"daily_amount"`
	AmountWeekAgo int `json:"amount_week_ago"`
}
