package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goretsky-band/dodo-reports/internal/domain"
)

const kitchenStatisticsHTML = `
<div class="operationalStatistics">
	<h1 class="operationalStatistics_panelTitle">
		125&nbsp;000 ₽
		+12 %
	</h1>
	<h1 class="operationalStatistics_panelTitle">
		25,5
		−8 %
	</h1>
	<h1 class="operationalStatistics_panelTitle">whatever</h1>
	<h1 class="operationalStatistics_panelTitle">02:35</h1>
	<h1 class="operationalStatistics_productsCountValue">3</h1>
	<h1 class="operationalStatistics_productsCountValue">7</h1>
	<h1 class="operationalStatistics_productsCountValue">11</h1>
</div>`

func TestParseKitchenStatistics(t *testing.T) {
	statistics, err := ParseKitchenStatistics(kitchenStatisticsHTML)

	assert.NoError(t, err)
	assert.Equal(t, &domain.KitchenStatistics{
		RevenuePerHour:        125000,
		RevenueIncrease:       12,
		SpendingPerHour:       25.5,
		SpendingIncrease:      -8,
		AverageCookingTimeSec: 155,
		Postponed:             3,
		InQueue:               7,
		InWork:                11,
	}, statistics)
}

func TestParseKitchenStatisticsRejectsShortPage(t *testing.T) {
	_, err := ParseKitchenStatistics(`<h1 class="operationalStatistics_panelTitle">125000</h1>`)
	assert.Error(t, err)
}

const deliveryStatisticsHTML = `
<div class="operationalStatistics">
	<h1 class="operationalStatistics_panelTitle">
		7,5
		+10 %
	</h1>
	<h1 class="operationalStatistics_panelTitle">whatever</h1>
	<h1 class="operationalStatistics_panelTitle">4</h1>
	<h1 class="operationalStatistics_panelTitle">8/2</h1>
	<h1 class="operationalStatistics_panelTitle">whatever</h1>
	<h1 class="operationalStatistics_panelTitle">12:30</h1>
</div>`

func TestParseDeliveryStatistics(t *testing.T) {
	statistics, err := ParseDeliveryStatistics(deliveryStatisticsHTML)

	assert.NoError(t, err)
	assert.Equal(t, &domain.DeliveryStatistics{
		DeliveriesPerHour:   7.5,
		IncreaseOverWeekAgo: 10,
		AwaitingOrders:      4,
		CouriersTotal:       8,
		CouriersInQueue:     2,
		AwaitingTimeSec:     750,
	}, statistics)
}

func TestParseDepartments(t *testing.T) {
	html := `
	<select id="unitId">
		<option value="15">Москва 4-1</option>
		<option value="16"> Москва 4-2 </option>
	</select>`

	departments, err := ParseDepartments(html)

	assert.NoError(t, err)
	assert.Equal(t, []domain.Department{
		{ID: 15, Name: "москва 4-1"},
		{ID: 16, Name: "москва 4-2"},
	}, departments)
}

func TestParseDepartmentsRequiresPicker(t *testing.T) {
	_, err := ParseDepartments(`<select id="somethingElse"></select>`)
	assert.Error(t, err)
}

func TestParseDepartmentsRejectsBadUnitID(t *testing.T) {
	_, err := ParseDepartments(`<select id="unitId"><option value="abc">Москва 4-1</option></select>`)
	assert.Error(t, err)
}
