package parser

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/goretsky-band/dodo-reports/internal/domain"
	"github.com/goretsky-band/dodo-reports/pkg/utils"
)

// Data rows of the detailed delivery export start below a six-row header.
const detailedDeliveryHeaderRows = 6

// ParseDetailedDeliveryStatistics reads the detailed delivery Excel export
// from disk. Columns A..G hold department name and duration columns; blank
// padding rows are skipped.
func ParseDetailedDeliveryStatistics(filePath string) ([]domain.DeliveryStatisticsRow, error) {
	workbook, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "opening delivery statistics workbook")
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("delivery statistics workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "reading delivery statistics rows")
	}

	var statistics []domain.DeliveryStatisticsRow
	for i := detailedDeliveryHeaderRows; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		if len(row) < 7 {
			return nil, errors.Errorf("delivery statistics row %d: expected 7 columns, got %d", i+1, len(row))
		}

		totalAverage, err := utils.ParseClockDuration(row[3])
		if err != nil {
			return nil, errors.Wrapf(err, "delivery statistics row %d: total average time", i+1)
		}
		cooking, err := utils.ParseClockDuration(row[4])
		if err != nil {
			return nil, errors.Wrapf(err, "delivery statistics row %d: cooking time", i+1)
		}
		heatShelf, err := utils.ParseClockDuration(row[5])
		if err != nil {
			return nil, errors.Wrapf(err, "delivery statistics row %d: heat shelf time", i+1)
		}
		delivery, err := utils.ParseClockDuration(row[6])
		if err != nil {
			return nil, errors.Wrapf(err, "delivery statistics row %d: delivery time", i+1)
		}

		statistics = append(statistics, domain.DeliveryStatisticsRow{
			Department:              domain.NormalizeDepartmentName(row[0]),
			TotalAverageTimeSec:     totalAverage,
			AverageCookingTimeSec:   cooking,
			AverageHeatShelfTimeSec: heatShelf,
			AverageDeliveryTimeSec:  delivery,
		})
	}

	return statistics, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
