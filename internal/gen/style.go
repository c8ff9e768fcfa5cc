package gen

import (
	"strings"

	"lookml-builder/internal/analyze"
	"lookml-builder/internal/common"
	"lookml-builder/internal/plan"
)

// hiddenTimeMarkers hide audit timestamps in the style layer.
var hiddenTimeMarkers = []string{"insert_timestamp", "update_timestamp"}

func (g *Generator) buildStyleData(inv *analyze.Inventory, res *plan.Result) styleData {
	keyFields := append(res.PrimaryKeys(), res.IDs...)

	data := styleData{
		View:        res.ViewName,
		KeyFields:   keyFields,
		MeasureDims: common.Without(inv.Numbers, common.NewSet(keyFields)),
	}

	for _, name := range inv.Times {
		data.Times = append(data.Times, timeData{
			Name:   name,
			Label:  TimeLabel(name),
			Hidden: isAuditTimestamp(name),
		})
	}

	for _, m := range res.Measures {
		data.Measures = append(data.Measures, measureStyle{
			Name:        m.Name,
			ValueFormat: g.config.Formatting.FormatFor(m.Field).ValueFormat(),
		})
	}

	times := common.NewSet(inv.Times)
	for _, name := range res.Filters {
		if times.Has(name) {
			continue
		}

		data.Filters = append(data.Filters, filterData{Name: name, Label: FieldLabel(name)})
	}

	return data
}

func isAuditTimestamp(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range hiddenTimeMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return false
}
