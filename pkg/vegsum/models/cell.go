// Package models defines data structures for shipment sheet aggregation.
package models

import (
	"strconv"
	"strings"
)

// CellKind discriminates the cell variant.
type CellKind int

const (
	// CellEmpty is a cell with no value. The zero Cell is empty.
	CellEmpty CellKind = iota
	// CellText is a cell holding text.
	CellText
	// CellNumber is a cell holding a numeric value.
	CellNumber
)

// Cell is a single worksheet cell at the codec/parser boundary.
// Parsing logic operates on the closed Kind set instead of inspecting
// codec-specific value types.
type Cell struct {
	// Kind is the variant tag.
	Kind CellKind
	// Text is the text content when Kind is CellText.
	Text string
	// Number is the numeric value when Kind is CellNumber.
	Number float64
}

// TextCell returns a text cell.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f}
}

// CellFromString classifies a formatted cell string as returned by codecs
// that only surface display values. Numeric-looking strings become numbers,
// the empty string becomes an empty cell, everything else stays text.
func CellFromString(s string) Cell {
	if s == "" {
		return Cell{}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return NumberCell(f)
	}
	return TextCell(s)
}

// CellFromValue classifies a typed cell value as returned by codecs that
// preserve native types (e.g. the xlsb record stream).
func CellFromValue(v interface{}) Cell {
	switch t := v.(type) {
	case nil:
		return Cell{}
	case float64:
		return NumberCell(t)
	case int:
		return NumberCell(float64(t))
	case int64:
		return NumberCell(float64(t))
	case bool:
		if t {
			return TextCell("TRUE")
		}
		return TextCell("FALSE")
	case string:
		if t == "" {
			return Cell{}
		}
		return TextCell(t)
	default:
		return Cell{}
	}
}

// String renders the cell for display. Numbers with an integral value render
// without a decimal point, so a serial stored as 3.0 compares equal to "3".
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		if c.Number == float64(int64(c.Number)) {
			return strconv.FormatInt(int64(c.Number), 10)
		}
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// TrimmedString is String with surrounding whitespace removed.
func (c Cell) TrimmedString() string {
	return strings.TrimSpace(c.String())
}

// IsEmpty reports whether the cell has no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}
