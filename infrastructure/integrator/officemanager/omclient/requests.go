package omclient

import (
	"net/url"
	"strconv"
	"time"

	"github.com/goretsky-band/dodo-reports/pkg/utils"
)

// ReportKind identifies which back-office page a descriptor targets.
type ReportKind string

const (
	KindDepartmentsList            ReportKind = "departments_list"
	KindKitchenStatistics          ReportKind = "kitchen_statistics"
	KindDeliveryStatistics         ReportKind = "delivery_statistics"
	KindDetailedDeliveryStatistics ReportKind = "detailed_delivery_statistics"
	KindCanceledOrders             ReportKind = "canceled_orders"
	KindCanceledOrderByUUID        ReportKind = "canceled_order_by_uuid"
	KindPizzeriaStopSales          ReportKind = "pizzeria_stop_sales"
	KindStreetStopSales            ReportKind = "street_stop_sales"
	KindSectorStopSales            ReportKind = "sector_stop_sales"
	KindIngredientStopSales        ReportKind = "ingredient_stop_sales"
	KindBeingLateCertificates      ReportKind = "being_late_certificates"
	KindRestaurantOrders           ReportKind = "restaurant_orders"
)

// Stop type discriminators of the stop-sale report endpoint.
const (
	stopTypePizzeria   = "0"
	stopTypeIngredient = "2"
	stopTypeStreet     = "3"
	stopTypeSector     = "4"
)

// Descriptor is a pure value describing one back-office call. Page is
// meaningful only for the canceled orders listing and is the single mutable
// field: it increments strictly after each fetched page.
type Descriptor struct {
	Kind   ReportKind
	Method string
	URL    string
	Query  url.Values
	Form   url.Values
	Page   int
}

// IncrementPage advances the pagination cursor. Only the canceled orders
// listing uses it.
func (d *Descriptor) IncrementPage() {
	d.Page++
}

// wireQuery renders the final query string, folding in the page cursor for
// the paginated listing.
func (d *Descriptor) wireQuery() url.Values {
	query := make(url.Values, len(d.Query)+1)
	for key, values := range d.Query {
		query[key] = values
	}
	if d.Kind == KindCanceledOrders {
		query.Set("page", strconv.Itoa(d.Page))
	}
	return query
}

func NewDepartmentsListRequest(baseURL string) Descriptor {
	return Descriptor{
		Kind:   KindDepartmentsList,
		Method: "GET",
		URL:    baseURL + "/OfficeManager/OperationalStatistics",
	}
}

func NewKitchenStatisticsRequest(baseURL string, departmentID int) Descriptor {
	return Descriptor{
		Kind:   KindKitchenStatistics,
		Method: "GET",
		URL:    baseURL + "/OfficeManager/OperationalStatistics/KitchenPartial",
		Query:  url.Values{"unitId": {strconv.Itoa(departmentID)}},
	}
}

func NewDeliveryStatisticsRequest(baseURL string, departmentID int) Descriptor {
	return Descriptor{
		Kind:   KindDeliveryStatistics,
		Method: "GET",
		URL:    baseURL + "/OfficeManager/OperationalStatistics/DeliveryWorkPartial",
		Query:  url.Values{"unitId": {strconv.Itoa(departmentID)}},
	}
}

func NewDetailedDeliveryStatisticsRequest(baseURL string, departmentIDs []int, begin, end time.Time) Descriptor {
	return Descriptor{
		Kind:   KindDetailedDeliveryStatistics,
		Method: "POST",
		URL:    baseURL + "/Reports/DeliveryStatistic/Export",
		Form:   datedUnitsForm("unitsIds", departmentIDs, begin, end),
	}
}

func NewCanceledOrdersRequest(baseURL string, date time.Time) Descriptor {
	return Descriptor{
		Kind:   KindCanceledOrders,
		Method: "GET",
		URL:    baseURL + "/Managment/ShiftManagment/PartialShiftOrders",
		Query: url.Values{
			"date":             {date.Format(time.DateOnly)},
			"orderStateFilter": {"Failure"},
		},
		Page: 1,
	}
}

func NewCanceledOrderByUUIDRequest(baseURL, orderUUID string) Descriptor {
	return Descriptor{
		Kind:   KindCanceledOrderByUUID,
		Method: "GET",
		URL:    baseURL + "/Managment/ShiftManagment/Order",
		Query:  url.Values{"orderUUId": {orderUUID}},
	}
}

func NewPizzeriaStopSalesRequest(baseURL string, departmentIDs []int, begin, end time.Time) Descriptor {
	return Descriptor{
		Kind:   KindPizzeriaStopSales,
		Method: "POST",
		URL:    baseURL + "/Reports/StopSaleStatistic/GetSaleStopSaleReport",
		Form:   stopSalesForm("stop_type", stopTypePizzeria, departmentIDs, begin, end),
	}
}

func NewStreetStopSalesRequest(baseURL string, departmentIDs []int, begin, end time.Time) Descriptor {
	return Descriptor{
		Kind:   KindStreetStopSales,
		Method: "POST",
		URL:    baseURL + "/Reports/StopSaleStatistic/GetDeliveryUnitStopSaleReport",
		Form:   stopSalesForm("stop_type", stopTypeStreet, departmentIDs, begin, end),
	}
}

func NewSectorStopSalesRequest(baseURL string, departmentIDs []int, begin, end time.Time) Descriptor {
	return Descriptor{
		Kind:   KindSectorStopSales,
		Method: "POST",
		URL:    baseURL + "/Reports/StopSaleStatistic/GetDeliverySectorsStopSaleReport",
		Form:   stopSalesForm("stop_type", stopTypeSector, departmentIDs, begin, end),
	}
}

// NewIngredientStopSalesRequest differs from the other stop-sale variants in
// the discriminator key the endpoint expects.
func NewIngredientStopSalesRequest(baseURL string, departmentIDs []int, begin, end time.Time) Descriptor {
	return Descriptor{
		Kind:   KindIngredientStopSales,
		Method: "POST",
		URL:    baseURL + "/Reports/StopSaleStatistic/GetIngredientsStopSaleReport",
		Form:   stopSalesForm("stopType", stopTypeIngredient, departmentIDs, begin, end),
	}
}

func NewBeingLateCertificatesRequest(baseURL string, departmentIDs []int, begin, end time.Time) Descriptor {
	return Descriptor{
		Kind:   KindBeingLateCertificates,
		Method: "POST",
		URL:    baseURL + "/Reports/BeingLateCertificates/Get",
		Form:   datedUnitsForm("unitsIds", departmentIDs, begin, end),
	}
}

func NewRestaurantOrdersRequest(baseURL string, departmentIDs []int, date time.Time) Descriptor {
	form := datedUnitsForm("unitsIds", departmentIDs, date, date)
	form.Set("filterType", "OrdersFromRestaurant")
	form.Set("OrderSources", "Restaurant")
	form["orderTypes"] = []string{"Delivery", "Pickup", "Stationary"}

	return Descriptor{
		Kind:   KindRestaurantOrders,
		Method: "POST",
		URL:    baseURL + "/Reports/Orders/Get",
		Form:   form,
	}
}

func datedUnitsForm(unitsKey string, departmentIDs []int, begin, end time.Time) url.Values {
	form := url.Values{
		"beginDate": {utils.FormatReportDate(begin)},
		"endDate":   {utils.FormatReportDate(end)},
	}
	for _, id := range departmentIDs {
		form.Add(unitsKey, strconv.Itoa(id))
	}
	return form
}

func stopSalesForm(stopTypeKey, stopType string, departmentIDs []int, begin, end time.Time) url.Values {
	form := datedUnitsForm("UnitsIds", departmentIDs, begin, end)
	form.Set(stopTypeKey, stopType)
	for reason := 0; reason < 7; reason++ {
		form.Add("productOrIngredientStopReasons", strconv.Itoa(reason))
	}
	return form
}
