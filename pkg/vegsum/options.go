// Package vegsum collects per-unit shipment workbooks from a folder and
// aggregates them into a serial × unit cross-tabulation.
package vegsum

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shuxinlan/vegsum/pkg/vegsum/parser"
)

// Options configures a run. The zero value is not usable; start from
// DefaultOptions or LoadOptions.
type Options struct {
	// InputDirName is the input folder name, resolved under the base dir.
	InputDirName string `yaml:"input_dir"`
	// OutputFileName is the summary workbook name, written to the base dir.
	OutputFileName string `yaml:"output_file"`
	// SheetTitle is the summary worksheet title.
	SheetTitle string `yaml:"sheet_title"`
	// SerialLabel is the serial column header, used for detection and in
	// the summary header row.
	SerialLabel string `yaml:"serial_label"`
	// NameLabel is the product name column header.
	NameLabel string `yaml:"name_label"`
	// QuantityLabels lists accepted ship quantity column headers.
	QuantityLabels []string `yaml:"quantity_labels"`
	// Extensions lists file suffixes picked up by discovery, matched
	// case-sensitively.
	Extensions []string `yaml:"extensions"`
}

// DefaultOptions returns the stock configuration matching the source
// shipment sheets.
func DefaultOptions() Options {
	return Options{
		InputDirName:   "Vegetable",
		OutputFileName: "蔬心兰.xlsx",
		SheetTitle:     "汇总",
		SerialLabel:    "序号",
		NameLabel:      "商品名称",
		QuantityLabels: []string{"应发", "应发数量"},
		Extensions:     []string{".xls", ".xlsx", ".xlsb"},
	}
}

// LoadOptions reads a YAML config file over the defaults. Fields absent from
// the file keep their default values.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	return opts, nil
}

// Labels returns the header labels for the sheet parser.
func (o Options) Labels() parser.Labels {
	return parser.Labels{
		Serial:   o.SerialLabel,
		Name:     o.NameLabel,
		Quantity: o.QuantityLabels,
	}
}
