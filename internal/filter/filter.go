// Package filter restricts collections by exact-match equality on a
// whitelisted field set. Fields outside the whitelist are never applied.
package filter

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Whitelist is the ordered set of field names a resource accepts for
// equality filtering.
type Whitelist []string

// Allows reports whether the field is in the whitelist.
func (w Whitelist) Allows(field string) bool {
	for _, f := range w {
		if f == field {
			return true
		}
	}
	return false
}

// Criterion is one requested field=value restriction.
type Criterion struct {
	Field string
	Value string
}

// Params extracts whitelisted criteria from query parameters, in
// whitelist order. Unknown fields are ignored; absent fields impose no
// restriction.
func Params(query url.Values, w Whitelist) []Criterion {
	var criteria []Criterion
	for _, field := range w {
		if !query.Has(field) {
			continue
		}
		criteria = append(criteria, Criterion{Field: field, Value: query.Get(field)})
	}
	return criteria
}

// Apply returns the items matching every criterion, in the same order as
// the input. An empty criteria list returns a copy of the full input; an
// empty result is valid. The input slice is never modified.
func Apply(items []map[string]interface{}, criteria []Criterion) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if matches(item, criteria) {
			out = append(out, item)
		}
	}
	return out
}

func matches(item map[string]interface{}, criteria []Criterion) bool {
	for _, c := range criteria {
		if !equal(item[c.Field], c.Value) {
			return false
		}
	}
	return true
}

// equal compares a field value against the requested string. Numeric
// fields compare numerically so "100" and "100.00" both match a price
// of 100.
func equal(v interface{}, requested string) bool {
	if n, ok := v.(float64); ok {
		if reqN, err := strconv.ParseFloat(requested, 64); err == nil {
			return n == reqN
		}
		return false
	}
	return render(v) == requested
}

// render turns a representation field value into its query-comparable
// string form. Nested owner/posting references compare on their id.
func render(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(time.RFC3339)
	case *time.Time:
		if val == nil {
			return ""
		}
		return val.Format(time.RFC3339)
	case map[string]interface{}:
		return render(val["id"])
	case float64:
		// trim the trailing zeros a client would not type: 100.00 -> "100"
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
