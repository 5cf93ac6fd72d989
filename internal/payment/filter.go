package payment

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ListFilter narrows a customer's payment listing. Zero values mean "no
// filter"; any subset may be set. Filters combine with AND in the order
// status, year, month.
type ListFilter struct {
	Status string
	Year   int
	Month  int
}

// predicate pairs the left-hand SQL expression of an equality check with its
// bound value. Values are always bound as parameters, never interpolated
// into the query text.
type predicate struct {
	expr string
	arg  any
}

func (f ListFilter) predicates() []predicate {
	var ps []predicate
	if f.Status != "" {
		ps = append(ps, predicate{"status", f.Status})
	}
	if f.Year != 0 {
		ps = append(ps, predicate{"EXTRACT(YEAR FROM data_vencimento)", f.Year})
	}
	if f.Month != 0 {
		ps = append(ps, predicate{"EXTRACT(MONTH FROM data_vencimento)", f.Month})
	}
	return ps
}

// buildListQuery renders the filtered listing query. The customer id is
// always $1; optional predicates are appended with positional parameters
// assigned in render order.
func buildListQuery(customerID uuid.UUID, f ListFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, cliente_id, valor, data_vencimento, referencia, status, created_at
        FROM pagamentos WHERE cliente_id = $1`)
	args := []any{customerID}

	for _, p := range f.predicates() {
		args = append(args, p.arg)
		fmt.Fprintf(&sb, " AND %s = $%d", p.expr, len(args))
	}

	sb.WriteString(" ORDER BY data_vencimento DESC")
	return sb.String(), args
}
