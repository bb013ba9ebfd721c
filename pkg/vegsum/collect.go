package vegsum

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/shuxinlan/vegsum/pkg/vegsum/models"
	"github.com/shuxinlan/vegsum/pkg/vegsum/parser"
	"github.com/shuxinlan/vegsum/pkg/vegsum/reader"
)

// FileResult is the outcome of reading one input file.
type FileResult struct {
	// Name is the file name within the input folder.
	Name string
	// TraceID tags this file's log records.
	TraceID string
	// Sheets holds the per-worksheet extraction results, in source order.
	// Worksheets with neither a unit nor items are dropped.
	Sheets []models.UnitSheet
	// Err is non-nil when the file could not be read. The file then
	// contributes no sheets.
	Err error
}

// Collector walks an input folder and extracts shipment lines file by file.
type Collector struct {
	logger     *slog.Logger
	labels     parser.Labels
	extensions []string
}

// NewCollector creates a collector.
func NewCollector(logger *slog.Logger, opts Options) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		logger:     logger,
		labels:     opts.Labels(),
		extensions: opts.Extensions,
	}
}

// Discover lists the spreadsheet file names in dir, ascending. Suffixes are
// matched case-sensitively; names starting with "~" are editor lock files
// and are skipped.
func (c *Collector) Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "~") {
			continue
		}
		for _, ext := range c.extensions {
			if strings.HasSuffix(name, ext) {
				files = append(files, name)
				break
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// Collect reads the given files strictly in order. A failed file is logged
// and reported through its FileResult; it never aborts the run.
func (c *Collector) Collect(dir string, files []string) []FileResult {
	results := make([]FileResult, 0, len(files))

	for _, name := range files {
		res := FileResult{
			Name:    name,
			TraceID: uuid.New().String(),
		}

		sheets, err := c.readFile(filepath.Join(dir, name))
		if err != nil {
			res.Err = &FileError{Name: name, Err: err}
			c.logger.Warn("skipping unreadable file",
				"file", name, "trace_id", res.TraceID, "error", err)
		} else {
			res.Sheets = sheets
			c.logger.Debug("collected file",
				"file", name, "trace_id", res.TraceID, "sheets", len(sheets))
		}

		results = append(results, res)
	}

	return results
}

func (c *Collector) readFile(path string) ([]models.UnitSheet, error) {
	grids, err := reader.Open(path)
	if err != nil {
		return nil, err
	}

	var sheets []models.UnitSheet
	for _, sg := range grids {
		sheet := parser.ReadSheet(sg.Grid, c.labels)
		if sheet.Unit == "" && len(sheet.Items) == 0 {
			continue
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

// Flatten gathers the unit sheets that carry items, in collection order.
// Item-less sheets stay visible in FileResult for reporting but contribute
// nothing to the pivot.
func Flatten(results []FileResult) []models.UnitSheet {
	var sheets []models.UnitSheet
	for _, res := range results {
		for _, sheet := range res.Sheets {
			if len(sheet.Items) > 0 {
				sheets = append(sheets, sheet)
			}
		}
	}
	return sheets
}
