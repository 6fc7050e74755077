package parser

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"github.com/goretsky-band/dodo-reports/internal/domain"
	"github.com/goretsky-band/dodo-reports/pkg/utils"
)

const stopSalesTableSelector = "table#bootgrid-table"

// stopSaleRows locates the stop-sale report grid and returns its data rows.
// A present grid with an empty body parses to zero rows; a missing grid is
// a structural failure.
func stopSaleRows(doc *goquery.Document) (*goquery.Selection, error) {
	table := doc.Find(stopSalesTableSelector)
	if table.Length() == 0 {
		return nil, errors.New("stop sales: report grid not found")
	}
	return table.Find("tbody tr"), nil
}

// collectRows parses every row through build, requiring at least minCells
// cells per row.
func collectRows(rows *goquery.Selection, minCells int, build func(cells []string) error) error {
	var parseErr error
	rows.EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := rowCells(row)
		if len(cells) < minCells {
			parseErr = errors.Errorf("stop sales: expected at least %d cells, got %d", minCells, len(cells))
			return false
		}
		if err := build(cells); err != nil {
			parseErr = err
			return false
		}
		return true
	})
	return parseErr
}

// ParsePizzeriaStopSales reads the whole-pizzeria stop sales grid.
func ParsePizzeriaStopSales(html string) ([]domain.PizzeriaStopSale, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}
	rows, err := stopSaleRows(doc)
	if err != nil {
		return nil, err
	}

	var stopSales []domain.PizzeriaStopSale
	err = collectRows(rows, 8, func(cells []string) error {
		stoppedAt, err := utils.ParseReportTime(cells[3])
		if err != nil {
			return errors.Wrap(err, "pizzeria stop sales: stopped at")
		}
		stopSales = append(stopSales, domain.PizzeriaStopSale{
			Department:  cells[0],
			SaleType:    cells[1],
			StopReason:  cells[2],
			StoppedAt:   stoppedAt,
			StopperName: cells[4],
			RenewerName: cells[6],
			StopType:    cells[7],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stopSales, nil
}

// ParseStreetStopSales reads the delivery streets stop sales grid.
func ParseStreetStopSales(html string) ([]domain.StreetStopSale, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	table := doc.Find(stopSalesTableSelector)
	if table.Length() == 0 {
		return nil, errors.New("stop sales: report grid not found")
	}
	rows := table.Find("tr")
	if rows.Length() <= 1 {
		return nil, nil
	}
	rows = rows.Slice(1, goquery.ToEnd)

	var stopSales []domain.StreetStopSale
	err = collectRows(rows, 7, func(cells []string) error {
		stoppedAt, err := utils.ParseReportTime(cells[3])
		if err != nil {
			return errors.Wrap(err, "street stop sales: stopped at")
		}
		stopSales = append(stopSales, domain.StreetStopSale{
			Department:  cells[0],
			Sector:      cells[1],
			Street:      cells[2],
			StoppedAt:   stoppedAt,
			StopperName: cells[4],
			RenewerName: cells[6],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stopSales, nil
}

// ParseSectorStopSales reads the delivery sectors stop sales grid.
func ParseSectorStopSales(html string) ([]domain.SectorStopSale, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}
	rows, err := stopSaleRows(doc)
	if err != nil {
		return nil, err
	}

	var stopSales []domain.SectorStopSale
	err = collectRows(rows, 6, func(cells []string) error {
		stoppedAt, err := utils.ParseReportTime(cells[2])
		if err != nil {
			return errors.Wrap(err, "sector stop sales: stopped at")
		}
		stopSales = append(stopSales, domain.SectorStopSale{
			Department:  domain.NormalizeDepartmentName(cells[0]),
			Sector:      cells[1],
			StoppedAt:   stoppedAt,
			StopperName: cells[3],
			RenewerName: cells[5],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stopSales, nil
}

// ParseIngredientStopSales reads the ingredient stop sales table. This
// report renders a bare table without the grid id.
func ParseIngredientStopSales(html string) ([]domain.IngredientStopSale, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	body := doc.Find("tbody")
	if body.Length() == 0 {
		return nil, errors.New("ingredient stop sales: table body not found")
	}

	var stopSales []domain.IngredientStopSale
	err = collectRows(body.Find("tr"), 7, func(cells []string) error {
		stoppedAt, err := utils.ParseReportTime(cells[3])
		if err != nil {
			return errors.Wrap(err, "ingredient stop sales: stopped at")
		}
		stopSales = append(stopSales, domain.IngredientStopSale{
			Department:  domain.NormalizeDepartmentName(cells[0]),
			Ingredient:  cells[1],
			StopReason:  cells[2],
			StoppedAt:   stoppedAt,
			StopperName: cells[4],
			RenewerName: cells[6],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stopSales, nil
}
