package reader

import (
	"fmt"

	"github.com/extrame/xls"

	"github.com/shuxinlan/vegsum/pkg/vegsum/models"
)

// openXLS reads a legacy BIFF workbook. The codec only exposes formatted
// cell strings, so typing happens through CellFromString.
func openXLS(path string) ([]SheetGrid, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}

	var sheets []SheetGrid
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		sheets = append(sheets, SheetGrid{
			Name: sheet.Name,
			Grid: xlsGrid(sheet),
		})
	}

	return sheets, nil
}

func xlsGrid(sheet *xls.WorkSheet) [][]models.Cell {
	var grid [][]models.Cell
	empty := true

	for r := 0; r <= int(sheet.MaxRow); r++ {
		row := sheet.Row(r)
		if row == nil {
			grid = append(grid, nil)
			continue
		}

		cells := make([]models.Cell, row.LastCol())
		for c := row.FirstCol(); c < row.LastCol(); c++ {
			cells[c] = models.CellFromString(row.Col(c))
			if !cells[c].IsEmpty() {
				empty = false
			}
		}
		grid = append(grid, cells)
	}

	// MaxRow is 0 for a blank sheet too; report a truly empty sheet as a
	// zero-row grid so no sentinel unit is invented for it.
	if empty {
		return nil
	}
	return grid
}
