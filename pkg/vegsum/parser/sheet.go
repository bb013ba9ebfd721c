package parser

import (
	"strings"

	"github.com/shuxinlan/vegsum/pkg/vegsum/models"
)

// ReadSheet extracts the unit and the shipment lines from one worksheet
// grid. A grid with zero rows yields a zero UnitSheet. When no header row is
// found the unit is still reported, with no items. Rows after the header are
// kept only when the name cell is non-blank and the quantity is positive,
// which filters header echoes, subtotal footers and zero-ship lines.
func ReadSheet(grid [][]models.Cell, labels Labels) models.UnitSheet {
	if len(grid) == 0 {
		return models.UnitSheet{}
	}

	sheet := models.UnitSheet{Unit: unitFromRow(grid[0])}

	loc, ok := FindHeaderRow(grid, labels)
	if !ok {
		return sheet
	}

	for r := loc.Row + 1; r < len(grid); r++ {
		row := grid[r]

		name := cellAt(row, loc.NameCol).TrimmedString()
		if name == "" {
			continue
		}

		serial := ""
		if loc.SerialCol >= 0 {
			serial = serialString(cellAt(row, loc.SerialCol))
		}

		if qty := quantityValue(cellAt(row, loc.QuantityCol)); qty > 0 {
			sheet.Items = append(sheet.Items, models.Item{
				Serial:   serial,
				Name:     name,
				Quantity: qty,
			})
		}
	}

	return sheet
}

// unitFromRow concatenates all non-empty cells of the first row. A sheet
// without a filled first row gets the sentinel unit.
func unitFromRow(row []models.Cell) string {
	var b strings.Builder
	for _, cell := range row {
		b.WriteString(cell.TrimmedString())
	}
	unit := strings.TrimSpace(b.String())
	if unit == "" {
		return UnitUnspecified
	}
	return unit
}

// cellAt absorbs out-of-range column access as an empty cell.
func cellAt(row []models.Cell, c int) models.Cell {
	if c < 0 || c >= len(row) {
		return models.Cell{}
	}
	return row[c]
}

// serialString renders a serial cell. Integral numbers lose the decimal
// point so 3.0 and "3" merge into one pivot row.
func serialString(cell models.Cell) string {
	return cell.TrimmedString()
}

// quantityValue reads a quantity cell. Non-numeric content never
// masquerades as a shipment: text and empty cells count as zero.
func quantityValue(cell models.Cell) float64 {
	if cell.Kind != models.CellNumber {
		return 0
	}
	return cell.Number
}
