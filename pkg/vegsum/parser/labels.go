// Package parser locates header rows and extracts shipment lines from
// worksheet cell grids. It is pure over [][]models.Cell and never touches a
// spreadsheet codec.
package parser

// UnitUnspecified is reported when a sheet's first row has no content.
const UnitUnspecified = "(未填写单位)"

// headerScanLimit bounds the header search to the top of the sheet.
const headerScanLimit = 15

// Labels holds the column header labels the detector matches against.
type Labels struct {
	// Serial is the serial column label. Optional in the source sheets.
	Serial string
	// Name is the product name column label. Required.
	Name string
	// Quantity lists accepted ship quantity labels, tried in the given
	// order against each cell. Required.
	Quantity []string
}

// DefaultLabels returns the labels used by the source shipment sheets.
func DefaultLabels() Labels {
	return Labels{
		Serial:   "序号",
		Name:     "商品名称",
		Quantity: []string{"应发", "应发数量"},
	}
}
