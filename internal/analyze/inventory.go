package analyze

import (
	"lookml-builder/internal/common"
	"lookml-builder/internal/match"
)

// Declared type tags recognised by the inventory.
const (
	TypeString = "string"
	TypeNumber = "number"
	TypeTime   = "time"
	TypeYesNo  = "yesno"
)

// BuildInventory sorts declarations into a new Inventory.
//
// A plain dimension goes to STRING when its type is "string" or when its name
// contains "_id". The name check is case-sensitive and wins over the declared
// type, so a "number" dimension named "account_id" is a STRING. Otherwise
// "number", "time" and "yesno" select NUMBER, TIME and BOOLEAN; any other tag
// (including a missing one) drops the field. A dimension_group is added to
// TIME when its type is "time", after the plain declarations of its own view.
//
// After bucketing, every STRING whose name contains "_date" is moved to the
// end of TIME, keeping STRING order.
//
// Every call returns a fresh inventory, so repeated builds never accumulate.
func BuildInventory(viewName string, decls []Declaration) *Inventory {
	inv := &Inventory{
		ViewName: viewName,
		Strings:  []string{},
		Numbers:  []string{},
		Times:    []string{},
		Booleans: []string{},
	}

	var groups []string

	for i, d := range decls {
		if i > 0 && d.View != decls[i-1].View {
			inv.Times = append(inv.Times, groups...)
			groups = groups[:0]
		}

		if d.IsGroup {
			if d.Type == TypeTime {
				groups = append(groups, d.Name)
			}

			continue
		}

		switch {
		case d.Type == TypeString || match.IDNameRule.Matches(d.Name):
			inv.Strings = append(inv.Strings, d.Name)
		case d.Type == TypeNumber:
			inv.Numbers = append(inv.Numbers, d.Name)
		case d.Type == TypeTime:
			inv.Times = append(inv.Times, d.Name)
		case d.Type == TypeYesNo:
			inv.Booleans = append(inv.Booleans, d.Name)
		}
	}

	inv.Times = append(inv.Times, groups...)

	dated := common.Filter(inv.Strings, match.DateNameRule.Matches)
	inv.Strings = common.Without(inv.Strings, common.NewSet(dated))
	inv.Times = append(inv.Times, dated...)

	return inv
}
