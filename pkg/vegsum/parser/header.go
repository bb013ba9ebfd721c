package parser

import (
	"github.com/shuxinlan/vegsum/pkg/vegsum/models"
)

// HeaderLoc describes a located header row.
type HeaderLoc struct {
	// Row is the 0-based row index of the header.
	Row int
	// SerialCol is the serial column index, or -1 when the sheet has none.
	SerialCol int
	// NameCol is the product name column index.
	NameCol int
	// QuantityCol is the ship quantity column index.
	QuantityCol int
}

// FindHeaderRow scans at most the first 15 rows of the grid for a row that
// contains both the name label and one of the quantity labels. The serial
// label is optional. The first qualifying row wins; ok is false when none of
// the scanned rows qualifies.
func FindHeaderRow(grid [][]models.Cell, labels Labels) (loc HeaderLoc, ok bool) {
	limit := len(grid)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}

	for r := 0; r < limit; r++ {
		row := grid[r]

		nameCol := indexOfLabel(row, labels.Name)
		if nameCol < 0 {
			continue
		}

		// First match by column order across all accepted quantity labels.
		quantityCol := -1
		for c, cell := range row {
			if matchesAny(cell.TrimmedString(), labels.Quantity) {
				quantityCol = c
				break
			}
		}
		if quantityCol < 0 {
			continue
		}

		return HeaderLoc{
			Row:         r,
			SerialCol:   indexOfLabel(row, labels.Serial),
			NameCol:     nameCol,
			QuantityCol: quantityCol,
		}, true
	}

	return HeaderLoc{}, false
}

// indexOfLabel returns the first column whose trimmed value equals label,
// or -1.
func indexOfLabel(row []models.Cell, label string) int {
	if label == "" {
		return -1
	}
	for c, cell := range row {
		if cell.TrimmedString() == label {
			return c
		}
	}
	return -1
}

func matchesAny(value string, labels []string) bool {
	for _, l := range labels {
		if value == l {
			return true
		}
	}
	return false
}
