package tables

import (
	"sort"

	"github.com/xavierbriand/dolmenwood-sub001/internal/dice"
	"github.com/xavierbriand/dolmenwood-sub001/internal/entities"
	"github.com/xavierbriand/dolmenwood-sub001/internal/errors"
)

// ValidateCoverage checks a table's integrity: the die notation must
// parse, every row must be a well-formed inclusive range with a known
// result type and a reference, and the rows together must exactly tile
// the die's roll domain. Gaps and overlaps are data defects that would
// otherwise skew selection weights silently.
func ValidateCoverage(table *entities.LookupTable) error {
	vb := errors.NewValidationBuilder()

	if table.Name == "" {
		vb.RequiredField("name")
	}

	expr, err := dice.Parse(table.Die)
	if err != nil {
		vb.InvalidField("die", errors.GetMessage(err))
	}

	if len(table.Rows) == 0 {
		vb.Field("rows", "table has no rows")
	}

	if verr := vb.Build(); verr != nil {
		return errors.WrapWithCodef(verr, errors.CodeFailedPrecondition,
			"table %q failed validation", table.Name)
	}

	rows := make([]entities.RangeEntry, len(table.Rows))
	copy(rows, table.Rows)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Min < rows[j].Min })

	if rows[0].Min < expr.Min() {
		return errors.FailedPreconditionf(
			"table %q row starts at %d, below the die's minimum of %d", table.Name, rows[0].Min, expr.Min())
	}

	next := expr.Min()
	for _, row := range rows {
		if row.Type == "" || row.Ref == "" {
			return errors.FailedPreconditionf(
				"table %q row [%d,%d] is missing its type or reference", table.Name, row.Min, row.Max)
		}
		if row.Max < row.Min {
			return errors.FailedPreconditionf(
				"table %q row [%d,%d] is inverted", table.Name, row.Min, row.Max)
		}
		if row.Min > next {
			return errors.FailedPreconditionf(
				"table %q has a gap: roll %d is not covered", table.Name, next)
		}
		if row.Min < next {
			return errors.FailedPreconditionf(
				"table %q has overlapping rows at roll %d", table.Name, row.Min)
		}
		next = row.Max + 1
	}

	if next != expr.Max()+1 {
		return errors.FailedPreconditionf(
			"table %q rows stop at %d but the die %s rolls up to %d",
			table.Name, next-1, table.Die, expr.Max())
	}

	return nil
}
