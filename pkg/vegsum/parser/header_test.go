package parser

import (
	"testing"

	"github.com/shuxinlan/vegsum/pkg/vegsum/models"
)

// grid builds a cell grid from formatted strings, the way the string-based
// codecs do.
func grid(rows ...[]string) [][]models.Cell {
	g := make([][]models.Cell, len(rows))
	for r, row := range rows {
		cells := make([]models.Cell, len(row))
		for c, v := range row {
			cells[c] = models.CellFromString(v)
		}
		g[r] = cells
	}
	return g
}

func TestFindHeaderRow(t *testing.T) {
	labels := DefaultLabels()

	tests := []struct {
		name    string
		grid    [][]models.Cell
		wantOK  bool
		wantLoc HeaderLoc
	}{
		{
			name:    "header at row 0",
			grid:    grid([]string{"序号", "商品名称", "应发"}),
			wantOK:  true,
			wantLoc: HeaderLoc{Row: 0, SerialCol: 0, NameCol: 1, QuantityCol: 2},
		},
		{
			name: "header below title rows",
			grid: grid(
				[]string{"某某配送单"},
				[]string{},
				[]string{"序号", "商品名称", "单位", "应发数量"},
			),
			wantOK:  true,
			wantLoc: HeaderLoc{Row: 2, SerialCol: 0, NameCol: 1, QuantityCol: 3},
		},
		{
			name: "serial column optional",
			grid: grid(
				[]string{"商品名称", "应发"},
			),
			wantOK:  true,
			wantLoc: HeaderLoc{Row: 0, SerialCol: -1, NameCol: 0, QuantityCol: 1},
		},
		{
			name: "labels matched after trimming",
			grid: grid(
				[]string{" 序号 ", " 商品名称 ", " 应发 "},
			),
			wantOK:  true,
			wantLoc: HeaderLoc{Row: 0, SerialCol: 0, NameCol: 1, QuantityCol: 2},
		},
		{
			name: "quantity label first match by column order",
			grid: grid(
				[]string{"商品名称", "应发数量", "应发"},
			),
			wantOK:  true,
			wantLoc: HeaderLoc{Row: 0, SerialCol: -1, NameCol: 0, QuantityCol: 1},
		},
		{
			name:   "name label missing",
			grid:   grid([]string{"序号", "品名", "应发"}),
			wantOK: false,
		},
		{
			name:   "quantity label missing",
			grid:   grid([]string{"序号", "商品名称", "数量"}),
			wantOK: false,
		},
		{
			name:   "no exact label match",
			grid:   grid([]string{"商品名称备注", "应发"}),
			wantOK: false,
		},
		{
			name:   "empty grid",
			grid:   nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, ok := FindHeaderRow(tt.grid, labels)
			if ok != tt.wantOK {
				t.Fatalf("FindHeaderRow ok = %v, expected %v", ok, tt.wantOK)
			}
			if ok && loc != tt.wantLoc {
				t.Errorf("FindHeaderRow loc = %+v, expected %+v", loc, tt.wantLoc)
			}
		})
	}
}

func TestFindHeaderRowScanLimit(t *testing.T) {
	rows := make([][]string, 0, 16)
	for i := 0; i < 15; i++ {
		rows = append(rows, []string{"填报说明"})
	}
	rows = append(rows, []string{"序号", "商品名称", "应发"})

	if _, ok := FindHeaderRow(grid(rows...), DefaultLabels()); ok {
		t.Error("header beyond the first 15 rows must not be found")
	}

	// Row 14 is the last scanned index.
	rows[14] = []string{"商品名称", "应发"}
	loc, ok := FindHeaderRow(grid(rows...), DefaultLabels())
	if !ok {
		t.Fatal("header at row 14 must be found")
	}
	if loc.Row != 14 {
		t.Errorf("loc.Row = %d, expected 14", loc.Row)
	}
}

func TestFindHeaderRowFirstQualifyingWins(t *testing.T) {
	g := grid(
		[]string{"商品名称", "应发"},
		[]string{"序号", "商品名称", "应发"},
	)

	loc, ok := FindHeaderRow(g, DefaultLabels())
	if !ok {
		t.Fatal("expected header")
	}
	if loc.Row != 0 {
		t.Errorf("loc.Row = %d, expected 0 (first qualifying row)", loc.Row)
	}

	// Detection is deterministic and idempotent.
	again, ok2 := FindHeaderRow(g, DefaultLabels())
	if !ok2 || again != loc {
		t.Errorf("second run = (%+v, %v), expected (%+v, true)", again, ok2, loc)
	}
}
