package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/goretsky-band/dodo-reports/internal/domain"
	"github.com/goretsky-band/dodo-reports/pkg/utils"
)

const canceledOrdersListingHTML = `
<table>
	<tr><th>Заказ</th><th>№</th><th></th><th></th><th>Сумма</th><th></th><th></th><th>Тип</th></tr>
	<tr>
		<td><a href="/Managment/ShiftManagment/Order?orderUUId=aaa-111">открыть</a></td>
		<td>42-5</td>
		<td></td>
		<td></td>
		<td>1 234 ₽</td>
		<td></td>
		<td></td>
		<td>Delivery</td>
	</tr>
	<tr>
		<td><a href="/Managment/ShiftManagment/Order?orderUUId=bbb-222">открыть</a></td>
		<td>42-6</td>
		<td></td>
		<td></td>
		<td>650 ₽</td>
		<td></td>
		<td></td>
		<td>Pickup</td>
	</tr>
</table>`

func TestParseCanceledOrderSummaries(t *testing.T) {
	summaries, err := ParseCanceledOrderSummaries(canceledOrdersListingHTML)

	assert.NoError(t, err)
	assert.Equal(t, []domain.CanceledOrderSummary{
		{UUID: "aaa-111", No: "42-5", Price: 1234, Type: "Delivery"},
		{UUID: "bbb-222", No: "42-6", Price: 650, Type: "Pickup"},
	}, summaries)
}

func TestParseCanceledOrderSummariesEmptyPage(t *testing.T) {
	summaries, err := ParseCanceledOrderSummaries(`<table><tr><th>Заказ</th></tr></table>`)

	assert.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestParseCanceledOrderSummariesRejectsRowWithoutLink(t *testing.T) {
	html := `
	<table>
		<tr><th></th></tr>
		<tr><td>no link</td><td></td><td></td><td></td><td>100</td><td></td><td></td><td></td></tr>
	</table>`

	_, err := ParseCanceledOrderSummaries(html)
	assert.Error(t, err)
}

func detailPageHTML(historyRows string) string {
	return `
	<span id="orderNumber">42-5</span>
	<div class="headerDepartment"> Москва 4-1 </div>
	<div id="history">
		<table>
			<tr><th>Время</th><th>Событие</th></tr>
			` + historyRows + `
		</table>
	</div>`
}

func TestParseCanceledOrderConfirmed(t *testing.T) {
	html := detailPageHTML(`
		<tr><td>15.01.2024 18:01:00</td><td>Order 42-5 has been accepted</td></tr>
		<tr><td>15.01.2024 18:31:00</td><td>Order 42-5 has been rejected</td></tr>
		<tr><td>15.01.2024 18:32:00</td><td>Refund receipt has been printed</td></tr>`)

	summary := domain.CanceledOrderSummary{UUID: "aaa-111", No: "42-5", Price: 1234, Type: "Delivery"}
	order, err := ParseCanceledOrder(html, summary)

	assert.NoError(t, err)
	assert.Equal(t, "москва 4-1", order.Department)
	assert.Equal(t, "42-5", order.No)
	assert.Equal(t, "Delivery", order.Type)
	assert.Equal(t, 1234, order.Price)
	assert.Equal(t, "aaa-111", order.UUID)
	assert.True(t, order.Confirmed())

	createdAt := time.Date(2024, 1, 15, 18, 1, 0, 0, utils.Moscow())
	rejectedAt := time.Date(2024, 1, 15, 18, 31, 0, 0, utils.Moscow())
	assert.True(t, order.CreatedAt.Equal(createdAt))
	assert.True(t, order.RejectedAt.Equal(rejectedAt))
}

func TestParseCanceledOrderWithoutRefundReceiptStaysUnconfirmed(t *testing.T) {
	html := detailPageHTML(`
		<tr><td>15.01.2024 18:01:00</td><td>Order 42-5 has been accepted</td></tr>
		<tr><td>15.01.2024 18:31:00</td><td>Order 42-5 has been rejected</td></tr>`)

	order, err := ParseCanceledOrder(html, domain.CanceledOrderSummary{UUID: "aaa-111"})

	assert.NoError(t, err)
	assert.False(t, order.Confirmed())
	assert.Nil(t, order.RejectedAt)
	assert.NotNil(t, order.CreatedAt)
}

func TestParseCanceledOrderRejectsEmptyHistory(t *testing.T) {
	_, err := ParseCanceledOrder(detailPageHTML(``), domain.CanceledOrderSummary{})
	assert.Error(t, err)
}

func TestParseCanceledOrderRequiresOrderNumber(t *testing.T) {
	_, err := ParseCanceledOrder(`<div class="headerDepartment">Москва 4-1</div>`, domain.CanceledOrderSummary{})
	assert.Error(t, err)
}
