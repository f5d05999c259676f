// Package eventquery composes the filter, sort and window rules used by the
// event listings into SQL fragments for the events table.
package eventquery

import (
	"fmt"
	"strings"
)

// Sort selects the ordering of a listing.
type Sort int

const (
	SortDateAsc Sort = iota
	SortDateDesc
	SortCreatedDesc
)

// SearchColumns are matched by free-text search. Any one match qualifies.
var SearchColumns = []string{
	"title",
	"description",
	"address",
	"district",
	"city",
	"state",
	"local",
	"category",
}

// Criteria describes which events a listing returns.
// Zero-valued fields add no predicate.
type Criteria struct {
	Category string
	Search   string
	Window   Window
	OwnerID  string
	Sort     Sort
}

// Where renders the predicate as a WHERE clause, numbering placeholders from
// $1. It returns an empty clause when nothing filters.
func (c Criteria) Where() (string, []any) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if c.OwnerID != "" {
		conds = append(conds, "user_id = "+next(c.OwnerID))
	}
	if c.Category != "" {
		conds = append(conds, "category = "+next(c.Category))
	}
	if c.Window.From != nil {
		conds = append(conds, "date >= "+next(*c.Window.From))
	}
	if c.Window.To != nil {
		conds = append(conds, "date <= "+next(*c.Window.To))
	}
	if search := strings.TrimSpace(c.Search); search != "" {
		p := next("%" + EscapeLike(search) + "%")
		ors := make([]string, len(SearchColumns))
		for i, col := range SearchColumns {
			ors[i] = col + " ILIKE " + p
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// OrderBy renders the ORDER BY clause. Ties break on id so paging is stable.
func (c Criteria) OrderBy() string {
	switch c.Sort {
	case SortDateDesc:
		return " ORDER BY date DESC, id"
	case SortCreatedDesc:
		return " ORDER BY created_at DESC, id"
	default:
		return " ORDER BY date ASC, id"
	}
}

// EscapeLike escapes LIKE wildcards so user input matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
