package models

// Item is one extracted shipment line.
type Item struct {
	// Serial is the product serial used as the merge key across sheets.
	// May be empty when the sheet has no serial column or the cell is blank.
	Serial string
	// Name is the product name, trimmed, always non-empty.
	Name string
	// Quantity is the ship quantity, always > 0.
	Quantity float64
}

// UnitSheet is the extraction result for a single worksheet: the unit named
// in the sheet's first row and the shipment lines below the header row.
type UnitSheet struct {
	// Unit is the shipment destination derived from row 0.
	Unit string
	// Items are the extracted lines in source order.
	Items []Item
}

// PivotKey addresses one summed quantity in the cross-tabulation.
type PivotKey struct {
	Serial string
	Unit   string
}

// Pivot is the frozen serial × unit cross-tabulation handed to the writer.
type Pivot struct {
	// Serials holds all distinct serials in output row order:
	// non-empty serials ascending, the empty serial last.
	Serials []string
	// Names maps a serial to its display name, the distinct trimmed names
	// seen for that serial sorted and joined with " / ".
	Names map[string]string
	// Units holds all distinct units in ascending order.
	Units []string
	// Cells maps (serial, unit) to the summed quantity. Absent pairs mean
	// an empty output cell, never zero.
	Cells map[PivotKey]float64
}
