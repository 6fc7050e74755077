package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/goretsky-band/dodo-reports/internal/domain"
)

func writeDeliveryExport(t *testing.T, rows [][]any) string {
	t.Helper()

	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, detailedDeliveryHeaderRows+1+i)
		require.NoError(t, err)
		require.NoError(t, workbook.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, workbook.SaveAs(path))
	require.NoError(t, workbook.Close())

	return path
}

func TestParseDetailedDeliveryStatistics(t *testing.T) {
	path := writeDeliveryExport(t, [][]any{
		{"Москва 4-1", "", "", "01:30:00", "00:12:00", "00:03:30", "00:25:00"},
		{"Москва 4-2", "", "", "45:10", "10:00", "02:05", "20:00"},
	})

	rows, err := ParseDetailedDeliveryStatistics(path)

	assert.NoError(t, err)
	assert.Equal(t, []domain.DeliveryStatisticsRow{
		{
			Department:              "москва 4-1",
			TotalAverageTimeSec:     5400,
			AverageCookingTimeSec:   720,
			AverageHeatShelfTimeSec: 210,
			AverageDeliveryTimeSec:  1500,
		},
		{
			Department:              "москва 4-2",
			TotalAverageTimeSec:     2710,
			AverageCookingTimeSec:   600,
			AverageHeatShelfTimeSec: 125,
			AverageDeliveryTimeSec:  1200,
		},
	}, rows)
}

func TestParseDetailedDeliveryStatisticsSkipsBlankRows(t *testing.T) {
	path := writeDeliveryExport(t, [][]any{
		{"", "", "", "", "", "", ""},
		{"Москва 4-1", "", "", "01:00:00", "00:10:00", "00:02:00", "00:20:00"},
	})

	rows, err := ParseDetailedDeliveryStatistics(path)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "москва 4-1", rows[0].Department)
}

func TestParseDetailedDeliveryStatisticsRejectsMalformedDuration(t *testing.T) {
	path := writeDeliveryExport(t, [][]any{
		{"Москва 4-1", "", "", "not a duration", "00:10:00", "00:02:00", "00:20:00"},
	})

	_, err := ParseDetailedDeliveryStatistics(path)
	assert.Error(t, err)
}

func TestParseDetailedDeliveryStatisticsMissingFile(t *testing.T) {
	_, err := ParseDetailedDeliveryStatistics(filepath.Join(t.TempDir(), "absent.xlsx"))
	assert.Error(t, err)
}
