package domain

import "github.com/goretsky-band/dodo-reports/pkg/utils"

// OperationalStatistics is one aggregate block of the public statistics API.
// The upstream payload uses camelCase field names.
type OperationalStatistics struct {
	StationaryRevenue    int     `json:"stationaryRevenue"`
	StationaryOrderCount int     `json:"stationaryOrderCount"`
	DeliveryRevenue      int     `json:"deliveryRevenue"`
	DeliveryOrderCount   int     `json:"deliveryOrderCount"`
	Revenue              int     `json:"revenue"`
	OrderCount           int     `json:"orderCount"`
	AvgCheck             float64 `json:"avgCheck"`
}

// UnitOperationalStatistics is the today-and-week-before response of the
// public statistics API for one department.
type UnitOperationalStatistics struct {
	UnitID               int                   `json:"unitId"`
	Date                 string                `json:"date"`
	Today                OperationalStatistics `json:"today"`
	WeekBefore           OperationalStatistics `json:"weekBefore"`
	Yesterday            OperationalStatistics `json:"yesterday"`
	YesterdayToThisTime  OperationalStatistics `json:"yesterdayToThisTime"`
	WeekBeforeToThisTime OperationalStatistics `json:"weekBeforeToThisTime"`
}

// RevenueIncrease is today's revenue growth in percent against the same
// moment a week before. A zero base yields 0.
func (s *UnitOperationalStatistics) RevenueIncrease() int {
	return utils.PercentIncrease(float64(s.Today.Revenue), float64(s.WeekBeforeToThisTime.Revenue))
}
