package reader

import (
	"fmt"

	"github.com/TsubasaBE/go-xlsb/workbook"

	"github.com/shuxinlan/vegsum/pkg/vegsum/models"
)

// openXLSB reads a binary OOXML workbook. The record stream preserves
// native value types, so typing happens through CellFromValue.
func openXLSB(path string) ([]SheetGrid, error) {
	wb, err := workbook.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsb: %w", err)
	}
	defer wb.Close()

	var sheets []SheetGrid
	for i, name := range wb.Sheets() {
		sheet, err := wb.Sheet(i + 1)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}

		var grid [][]models.Cell
		// Dense mode: every row is emitted in order, cells in column order.
		for row := range sheet.Rows(false) {
			cells := make([]models.Cell, len(row))
			for c, cell := range row {
				cells[c] = models.CellFromValue(cell.V)
			}
			grid = append(grid, cells)
		}
		sheets = append(sheets, SheetGrid{Name: name, Grid: grid})
	}

	return sheets, nil
}
