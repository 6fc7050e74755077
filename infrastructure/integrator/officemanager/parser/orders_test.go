package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/goretsky-band/dodo-reports/pkg/utils"
)

func TestParseBeingLateCertificates(t *testing.T) {
	html := `
	<table><tr><th>Сводка</th></tr></table>
	<table>
		<tr><th></th></tr>
		<tr>
			<td> Москва 4-1 </td>
			<td>
				15.01.2024
				18:30:00
			</td>
			<td>42-5</td>
			<td>18:10</td>
			<td>18:45</td>
			<td>18:40</td>
			<td>Сертификат за опоздание</td>
			<td>Иванов И.</td>
		</tr>
	</table>`

	certificates, err := ParseBeingLateCertificates(html)

	assert.NoError(t, err)
	assert.Len(t, certificates, 1)

	certificate := certificates[0]
	assert.Equal(t, "москва 4-1", certificate.Department)
	assert.True(t, certificate.IssuedAt.Equal(time.Date(2024, 1, 15, 18, 30, 0, 0, utils.Moscow())))
	assert.Equal(t, "42-5", certificate.OrderNo)
	assert.Equal(t, "Сертификат за опоздание", certificate.CertificateType)
	assert.Equal(t, "Иванов И.", certificate.GivenBy)
}

func TestParseBeingLateCertificatesNoDataMarker(t *testing.T) {
	certificates, err := ParseBeingLateCertificates(`<div>Данные не найдены</div>`)

	assert.NoError(t, err)
	assert.Nil(t, certificates)
}

func TestParseBeingLateCertificatesEmptyTable(t *testing.T) {
	html := `<table></table><table><tr><th></th></tr></table>`

	certificates, err := ParseBeingLateCertificates(html)

	assert.NoError(t, err)
	assert.Empty(t, certificates)
}

func TestParseRestaurantOrders(t *testing.T) {
	html := `
	<table>
		<tbody>
			<tr>
				<td>Москва 4-1</td>
				<td>15.01.2024 13:05</td>
				<td>42-7</td>
				<td>Stationary</td>
				<td>Анна</td>
				<td>+79001234567</td>
				<td>1 050 ₽</td>
				<td>Наличные</td>
				<td>Выполнен</td>
				<td>Иванов И.</td>
			</tr>
			<tr>
				<td>Москва 4-1</td>
				<td>15.01.2024 13:10</td>
				<td>42-8</td>
				<td>Stationary</td>
				<td></td>
				<td></td>
				<td>450 ₽</td>
				<td>Карта</td>
				<td>Выполнен</td>
				<td>Иванов И.</td>
			</tr>
		</tbody>
	</table>`

	orders, err := ParseRestaurantOrders(html)

	assert.NoError(t, err)
	assert.Len(t, orders, 2)

	withBonus := orders[0]
	assert.Equal(t, "Москва 4-1", withBonus.Department)
	assert.Equal(t, "42-7", withBonus.No)
	assert.Equal(t, "+79001234567", withBonus.CustomerPhoneNumber)
	assert.Equal(t, 1050, withBonus.Price)
	assert.True(t, withBonus.AcceptedAt.Equal(time.Date(2024, 1, 15, 13, 5, 0, 0, utils.Moscow())))

	assert.Empty(t, orders[1].CustomerPhoneNumber)
	assert.Equal(t, 450, orders[1].Price)
}

func TestParseRestaurantOrdersRequiresTableBody(t *testing.T) {
	_, err := ParseRestaurantOrders(`<div>nothing here</div>`)
	assert.Error(t, err)
}
