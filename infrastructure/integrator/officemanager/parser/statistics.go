package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"github.com/goretsky-band/dodo-reports/internal/domain"
	"github.com/goretsky-band/dodo-reports/pkg/utils"
)

const (
	panelTitleSelector  = "h1.operationalStatistics_panelTitle"
	productsCountValue  = "h1.operationalStatistics_productsCountValue"
	departmentsSelector = "select#unitId"
)

// panelTitles collects the cleaned text of every numeric panel on an
// operational statistics page.
func panelTitles(doc *goquery.Document) []string {
	var titles []string
	doc.Find(panelTitleSelector).Each(func(_ int, panel *goquery.Selection) {
		titles = append(titles, cleanPanelText(panel.Text()))
	})
	return titles
}

// panelLines splits a multi-line panel into its non-empty lines.
func panelLines(title string) []string {
	var lines []string
	for _, line := range strings.Split(title, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ParseKitchenStatistics reads the kitchen panel block of the operational
// statistics page.
func ParseKitchenStatistics(html string) (*domain.KitchenStatistics, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	titles := panelTitles(doc)
	if len(titles) < 4 {
		return nil, errors.Errorf("kitchen statistics: expected at least 4 panels, got %d", len(titles))
	}

	revenueLines := panelLines(titles[0])
	spendingLines := panelLines(titles[1])
	if len(revenueLines) < 2 || len(spendingLines) < 2 {
		return nil, errors.New("kitchen statistics: revenue/spending panels missing the week-ago line")
	}

	revenuePerHour, err := parseInt(revenueLines[0])
	if err != nil {
		return nil, errors.Wrap(err, "kitchen statistics: revenue per hour")
	}
	revenueIncrease, err := parseInt(revenueLines[1])
	if err != nil {
		return nil, errors.Wrap(err, "kitchen statistics: revenue increase")
	}
	spendingPerHour, err := parseFloat(spendingLines[0])
	if err != nil {
		return nil, errors.Wrap(err, "kitchen statistics: spending per hour")
	}
	spendingIncrease, err := parseInt(spendingLines[1])
	if err != nil {
		return nil, errors.Wrap(err, "kitchen statistics: spending increase")
	}
	cookingTime, err := utils.ParseClockDuration(titles[3])
	if err != nil {
		return nil, errors.Wrap(err, "kitchen statistics: average cooking time")
	}

	counts := doc.Find(productsCountValue)
	if counts.Length() != 3 {
		return nil, errors.Errorf("kitchen statistics: expected 3 product counters, got %d", counts.Length())
	}

	values := make([]int, 0, 3)
	var countErr error
	counts.EachWithBreak(func(_ int, counter *goquery.Selection) bool {
		n, err := parseInt(counter.Text())
		if err != nil {
			countErr = errors.Wrap(err, "kitchen statistics: product counter")
			return false
		}
		values = append(values, n)
		return true
	})
	if countErr != nil {
		return nil, countErr
	}

	return &domain.KitchenStatistics{
		RevenuePerHour:        revenuePerHour,
		RevenueIncrease:       revenueIncrease,
		SpendingPerHour:       spendingPerHour,
		SpendingIncrease:      spendingIncrease,
		AverageCookingTimeSec: cookingTime,
		Postponed:             values[0],
		InQueue:               values[1],
		InWork:                values[2],
	}, nil
}

// ParseDeliveryStatistics reads the delivery panel block of the operational
// statistics page.
func ParseDeliveryStatistics(html string) (*domain.DeliveryStatistics, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	titles := panelTitles(doc)
	if len(titles) < 6 {
		return nil, errors.Errorf("delivery statistics: expected at least 6 panels, got %d", len(titles))
	}

	deliveriesLines := panelLines(titles[0])
	if len(deliveriesLines) < 2 {
		return nil, errors.New("delivery statistics: deliveries panel missing the week-ago line")
	}

	deliveriesPerHour, err := parseFloat(deliveriesLines[0])
	if err != nil {
		return nil, errors.Wrap(err, "delivery statistics: deliveries per hour")
	}
	increase, err := parseInt(deliveriesLines[1])
	if err != nil {
		return nil, errors.Wrap(err, "delivery statistics: increase over week ago")
	}
	awaitingOrders, err := parseInt(titles[2])
	if err != nil {
		return nil, errors.Wrap(err, "delivery statistics: awaiting orders")
	}

	couriers := strings.Split(titles[3], "/")
	if len(couriers) != 2 {
		return nil, errors.Errorf("delivery statistics: unexpected couriers panel %q", titles[3])
	}
	couriersTotal, err := parseInt(couriers[0])
	if err != nil {
		return nil, errors.Wrap(err, "delivery statistics: couriers total")
	}
	couriersInQueue, err := parseInt(couriers[1])
	if err != nil {
		return nil, errors.Wrap(err, "delivery statistics: couriers in queue")
	}

	awaitingTime, err := utils.ParseClockDuration(titles[5])
	if err != nil {
		return nil, errors.Wrap(err, "delivery statistics: awaiting time")
	}

	return &domain.DeliveryStatistics{
		DeliveriesPerHour:   deliveriesPerHour,
		IncreaseOverWeekAgo: increase,
		AwaitingOrders:      awaitingOrders,
		CouriersTotal:       couriersTotal,
		CouriersInQueue:     couriersInQueue,
		AwaitingTimeSec:     awaitingTime,
	}, nil
}

// ParseDepartments reads the department picker of the operational
// statistics page.
func ParseDepartments(html string) ([]domain.Department, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	picker := doc.Find(departmentsSelector)
	if picker.Length() == 0 {
		return nil, errors.New("departments list: unit picker not found")
	}

	var (
		departments []domain.Department
		parseErr    error
	)
	picker.Find("option").EachWithBreak(func(_ int, option *goquery.Selection) bool {
		value, ok := option.Attr("value")
		if !ok {
			parseErr = errors.New("departments list: option without value")
			return false
		}
		id, err := parseInt(value)
		if err != nil {
			parseErr = errors.Wrap(err, "departments list: unit id")
			return false
		}
		departments = append(departments, domain.Department{
			ID:   id,
			Name: domain.NormalizeDepartmentName(option.Text()),
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return departments, nil
}
