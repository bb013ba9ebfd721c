package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/shuxinlan/vegsum/pkg/vegsum/models"
)

// openXLSX reads an OOXML workbook via excelize. Cell values arrive as
// formatted strings, so typing happens through CellFromString.
func openXLSX(path string) ([]SheetGrid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	var sheets []SheetGrid
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}

		grid := make([][]models.Cell, len(rows))
		for r, row := range rows {
			cells := make([]models.Cell, len(row))
			for c, v := range row {
				cells[c] = models.CellFromString(v)
			}
			grid[r] = cells
		}
		sheets = append(sheets, SheetGrid{Name: name, Grid: grid})
	}

	return sheets, nil
}
