package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/goretsky-band/dodo-reports/pkg/utils"
)

func TestParsePizzeriaStopSales(t *testing.T) {
	html := `
	<table id="bootgrid-table">
		<thead><tr><th></th></tr></thead>
		<tbody>
			<tr>
				<td>Москва 4-1</td>
				<td>Доставка</td>
				<td>Нет электричества</td>
				<td>15.01.2024 12:00</td>
				<td>Иванов И.</td>
				<td>15.01.2024 14:00</td>
				<td>Петров П.</td>
				<td>Полная остановка</td>
			</tr>
			<tr>
				<td>Москва 4-2</td>
				<td>Ресторан</td>
				<td>Прорвало трубу</td>
				<td>15.01.2024 13:00</td>
				<td>Сидоров С.</td>
				<td></td>
				<td></td>
				<td>Полная остановка</td>
			</tr>
		</tbody>
	</table>`

	stopSales, err := ParsePizzeriaStopSales(html)

	assert.NoError(t, err)
	assert.Len(t, stopSales, 2)

	renewed := stopSales[0]
	assert.Equal(t, "Москва 4-1", renewed.Department)
	assert.Equal(t, "Доставка", renewed.SaleType)
	assert.Equal(t, "Нет электричества", renewed.StopReason)
	assert.Equal(t, "Иванов И.", renewed.StopperName)
	assert.Equal(t, "Петров П.", renewed.RenewerName)
	assert.Equal(t, "Полная остановка", renewed.StopType)
	assert.True(t, renewed.StoppedAt.Equal(time.Date(2024, 1, 15, 12, 0, 0, 0, utils.Moscow())))
	assert.False(t, renewed.Open())

	assert.True(t, stopSales[1].Open())
}

func TestParsePizzeriaStopSalesRequiresGrid(t *testing.T) {
	_, err := ParsePizzeriaStopSales(`<table><tbody><tr><td>x</td></tr></tbody></table>`)
	assert.Error(t, err)
}

func TestParseStreetStopSales(t *testing.T) {
	html := `
	<table id="bootgrid-table">
		<tr><th></th></tr>
		<tr>
			<td>Москва 4-1</td>
			<td>Север</td>
			<td>ул. Ленина</td>
			<td>15.01.2024 12:00</td>
			<td>Иванов И.</td>
			<td></td>
			<td></td>
		</tr>
	</table>`

	stopSales, err := ParseStreetStopSales(html)

	assert.NoError(t, err)
	assert.Len(t, stopSales, 1)
	assert.Equal(t, "Москва 4-1", stopSales[0].Department)
	assert.Equal(t, "Север", stopSales[0].Sector)
	assert.Equal(t, "ул. Ленина", stopSales[0].Street)
	assert.True(t, stopSales[0].Open())
}

func TestParseStreetStopSalesEmptyGrid(t *testing.T) {
	stopSales, err := ParseStreetStopSales(`<table id="bootgrid-table"><tr><th></th></tr></table>`)

	assert.NoError(t, err)
	assert.Empty(t, stopSales)
}

func TestParseSectorStopSales(t *testing.T) {
	html := `
	<table id="bootgrid-table">
		<tbody>
			<tr>
				<td> Москва 4-1 </td>
				<td>Север</td>
				<td>15.01.2024 12:00</td>
				<td>Иванов И.</td>
				<td></td>
				<td></td>
			</tr>
		</tbody>
	</table>`

	stopSales, err := ParseSectorStopSales(html)

	assert.NoError(t, err)
	assert.Len(t, stopSales, 1)
	assert.Equal(t, "москва 4-1", stopSales[0].Department)
	assert.Equal(t, "Север", stopSales[0].Sector)
	assert.True(t, stopSales[0].Open())
}

func TestParseIngredientStopSales(t *testing.T) {
	html := `
	<table>
		<tbody>
			<tr>
				<td>Москва 4-1</td>
				<td>Сыр моцарелла</td>
				<td>Закончился на складе</td>
				<td>15.01.2024 12:00</td>
				<td>Иванов И.</td>
				<td>15.01.2024 16:00</td>
				<td>Петров П.</td>
			</tr>
		</tbody>
	</table>`

	stopSales, err := ParseIngredientStopSales(html)

	assert.NoError(t, err)
	assert.Len(t, stopSales, 1)
	assert.Equal(t, "москва 4-1", stopSales[0].Department)
	assert.Equal(t, "Сыр моцарелла", stopSales[0].Ingredient)
	assert.Equal(t, "Закончился на складе", stopSales[0].StopReason)
	assert.Equal(t, "Петров П.", stopSales[0].RenewerName)
	assert.False(t, stopSales[0].Open())
}

func TestParseIngredientStopSalesRequiresTableBody(t *testing.T) {
	_, err := ParseIngredientStopSales(`<div>данные не найдены</div>`)
	assert.Error(t, err)
}
