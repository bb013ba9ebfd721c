package parser

import (
	"reflect"
	"testing"

	"github.com/shuxinlan/vegsum/pkg/vegsum/models"
)

func TestReadSheetZeroRows(t *testing.T) {
	sheet := ReadSheet(nil, DefaultLabels())
	if sheet.Unit != "" {
		t.Errorf("unit = %q, expected empty for a zero-row grid", sheet.Unit)
	}
	if len(sheet.Items) != 0 {
		t.Errorf("items = %v, expected none", sheet.Items)
	}
}

func TestReadSheetUnit(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want string
	}{
		{"single cell", []string{"一号门店"}, "一号门店"},
		{"concatenates non-empty cells", []string{"一号", "", "门店 "}, "一号门店"},
		{"blank first row gets sentinel", []string{"", "  "}, UnitUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := ReadSheet(grid(tt.row), DefaultLabels())
			if sheet.Unit != tt.want {
				t.Errorf("unit = %q, expected %q", sheet.Unit, tt.want)
			}
		})
	}
}

func TestReadSheetNoHeader(t *testing.T) {
	g := grid(
		[]string{"一号门店"},
		[]string{"白菜", "10"},
	)

	sheet := ReadSheet(g, DefaultLabels())
	if sheet.Unit != "一号门店" {
		t.Errorf("unit = %q, expected to be reported without a header", sheet.Unit)
	}
	if len(sheet.Items) != 0 {
		t.Errorf("items = %v, expected none without a header", sheet.Items)
	}
}

func TestReadSheetItems(t *testing.T) {
	g := grid(
		[]string{"一号门店"},
		[]string{"序号", "商品名称", "应发"},
		[]string{"1", "白菜", "10"},
		[]string{"2", "", "5"},        // blank name: skipped entirely
		[]string{"3", "萝卜", "0"},     // zero quantity: dropped
		[]string{"4", "土豆", "-2"},    // negative quantity: dropped
		[]string{"5", "青椒", "缺货"},   // text quantity: counts as zero
		[]string{"6", "番茄", ""},      // empty quantity: counts as zero
		[]string{"7", "黄瓜", "2.5"},   // fractional positive passes through
		[]string{"", "合计", "3"},      // footer with quantity keeps empty serial
	)

	sheet := ReadSheet(g, DefaultLabels())
	want := []models.Item{
		{Serial: "1", Name: "白菜", Quantity: 10},
		{Serial: "7", Name: "黄瓜", Quantity: 2.5},
		{Serial: "", Name: "合计", Quantity: 3},
	}
	if !reflect.DeepEqual(sheet.Items, want) {
		t.Errorf("items = %+v, expected %+v", sheet.Items, want)
	}
}

func TestReadSheetSerialNormalization(t *testing.T) {
	// A serial stored as the number 3.0 renders as "3".
	g := [][]models.Cell{
		{models.TextCell("一号门店")},
		{models.TextCell("序号"), models.TextCell("商品名称"), models.TextCell("应发")},
		{models.NumberCell(3.0), models.TextCell("白菜"), models.NumberCell(10)},
		{models.NumberCell(4.5), models.TextCell("萝卜"), models.NumberCell(2)},
	}

	sheet := ReadSheet(g, DefaultLabels())
	if len(sheet.Items) != 2 {
		t.Fatalf("items = %+v, expected 2", sheet.Items)
	}
	if sheet.Items[0].Serial != "3" {
		t.Errorf("serial = %q, expected %q (integral float)", sheet.Items[0].Serial, "3")
	}
	if sheet.Items[1].Serial != "4.5" {
		t.Errorf("serial = %q, expected %q (fractional float)", sheet.Items[1].Serial, "4.5")
	}
}

func TestReadSheetNoSerialColumn(t *testing.T) {
	g := grid(
		[]string{"一号门店"},
		[]string{"商品名称", "应发"},
		[]string{"白菜", "10"},
	)

	sheet := ReadSheet(g, DefaultLabels())
	if len(sheet.Items) != 1 {
		t.Fatalf("items = %+v, expected 1", sheet.Items)
	}
	if sheet.Items[0].Serial != "" {
		t.Errorf("serial = %q, expected empty without a serial column", sheet.Items[0].Serial)
	}
}

func TestReadSheetShortRows(t *testing.T) {
	// Data rows narrower than the header: missing quantity cell reads as
	// zero, so the row is dropped instead of faulting.
	g := grid(
		[]string{"一号门店"},
		[]string{"序号", "商品名称", "应发"},
		[]string{"1", "白菜"},
		[]string{"2", "萝卜", "4"},
	)

	sheet := ReadSheet(g, DefaultLabels())
	want := []models.Item{{Serial: "2", Name: "萝卜", Quantity: 4}}
	if !reflect.DeepEqual(sheet.Items, want) {
		t.Errorf("items = %+v, expected %+v", sheet.Items, want)
	}
}
