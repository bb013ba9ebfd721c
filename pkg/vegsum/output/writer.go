// Package output renders the aggregated pivot to a summary workbook.
package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/shuxinlan/vegsum/pkg/vegsum/models"
)

// Writer renders a pivot as a single-sheet workbook: one row per serial,
// one column per unit, summed quantities in the cells.
type Writer struct {
	// SheetTitle is the summary worksheet title.
	SheetTitle string
	// SerialHeader is the first header cell.
	SerialHeader string
	// NameHeader is the second header cell.
	NameHeader string
}

// NewWriter creates a writer.
func NewWriter(sheetTitle, serialHeader, nameHeader string) *Writer {
	return &Writer{
		SheetTitle:   sheetTitle,
		SerialHeader: serialHeader,
		NameHeader:   nameHeader,
	}
}

// Write renders the pivot and saves the workbook at path. A (serial, unit)
// pair with no contribution renders as an empty cell, never as zero.
func (w *Writer) Write(p models.Pivot, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", w.SheetTitle); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}

	if err := w.setCell(f, 1, 1, w.SerialHeader); err != nil {
		return err
	}
	if err := w.setCell(f, 2, 1, w.NameHeader); err != nil {
		return err
	}
	for i, unit := range p.Units {
		if err := w.setCell(f, 3+i, 1, unit); err != nil {
			return err
		}
	}

	for r, serial := range p.Serials {
		row := r + 2
		if err := w.setCell(f, 1, row, serial); err != nil {
			return err
		}
		if err := w.setCell(f, 2, row, p.Names[serial]); err != nil {
			return err
		}
		for i, unit := range p.Units {
			qty, ok := p.Cells[models.PivotKey{Serial: serial, Unit: unit}]
			if !ok {
				continue
			}
			if err := w.setCell(f, 3+i, row, quantityValue(qty)); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (w *Writer) setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(w.SheetTitle, cell, value); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}

// quantityValue keeps integral sums free of a decimal point in the output.
func quantityValue(qty float64) interface{} {
	if qty == float64(int64(qty)) {
		return int64(qty)
	}
	return qty
}
