package vegsum

import (
	"sort"
	"strings"

	"github.com/shuxinlan/vegsum/pkg/vegsum/models"
)

// BuildPivot folds all unit sheets into the serial × unit cross-tabulation.
// Quantities accumulate per (serial, unit) pair, so the same serial shipped
// to the same unit across several files sums into one cell. Distinct names
// recorded under one serial merge into a single " / "-joined display string.
// The result is order-independent: permuting the input leaves the pivot
// unchanged.
func BuildPivot(sheets []models.UnitSheet) models.Pivot {
	unitSet := make(map[string]struct{})
	nameSets := make(map[string]map[string]struct{})
	cells := make(map[models.PivotKey]float64)

	for _, sheet := range sheets {
		if len(sheet.Items) == 0 {
			continue
		}
		unitSet[sheet.Unit] = struct{}{}

		for _, item := range sheet.Items {
			names, ok := nameSets[item.Serial]
			if !ok {
				names = make(map[string]struct{})
				nameSets[item.Serial] = names
			}
			names[item.Name] = struct{}{}

			cells[models.PivotKey{Serial: item.Serial, Unit: sheet.Unit}] += item.Quantity
		}
	}

	serials := make([]string, 0, len(nameSets))
	for serial := range nameSets {
		serials = append(serials, serial)
	}
	// Serials with a value sort ascending; the empty serial goes last.
	sort.Slice(serials, func(i, j int) bool {
		if (serials[i] == "") != (serials[j] == "") {
			return serials[j] == ""
		}
		return serials[i] < serials[j]
	})

	units := make([]string, 0, len(unitSet))
	for unit := range unitSet {
		units = append(units, unit)
	}
	sort.Strings(units)

	names := make(map[string]string, len(nameSets))
	for serial, set := range nameSets {
		distinct := make([]string, 0, len(set))
		for name := range set {
			distinct = append(distinct, name)
		}
		sort.Strings(distinct)
		names[serial] = strings.Join(distinct, " / ")
	}

	return models.Pivot{
		Serials: serials,
		Names:   names,
		Units:   units,
		Cells:   cells,
	}
}
