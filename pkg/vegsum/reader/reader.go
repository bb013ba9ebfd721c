// Package reader adapts spreadsheet codecs to the parser's cell grid model.
// Each supported extension maps to one codec; everything downstream of this
// package sees only [][]models.Cell.
package reader

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/shuxinlan/vegsum/pkg/vegsum/models"
)

// ErrUnsupportedFormat indicates a file extension no codec handles.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// SheetGrid is one worksheet as a named cell grid. Grids may be jagged;
// missing trailing cells read as empty.
type SheetGrid struct {
	// Name is the worksheet name.
	Name string
	// Grid holds the cells, indexed by (row, column), 0-based.
	Grid [][]models.Cell
}

// Open reads every worksheet of the file at path, in source-declared order.
// The codec is selected by the file extension, matched case-sensitively.
func Open(path string) ([]SheetGrid, error) {
	switch filepath.Ext(path) {
	case ".xls":
		return openXLS(path)
	case ".xlsx":
		return openXLSX(path)
	case ".xlsb":
		return openXLSB(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}
