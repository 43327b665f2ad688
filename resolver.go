package tzcity

import "strings"

// Resolver maps free text to a canonical time-zone key. A query matches a
// key when it equals the key itself, the key's city segment with
// underscores read as spaces, or one of the key's aliases.
type Resolver struct {
	table *Table
}

// NewResolver returns a resolver over t.
func NewResolver(t *Table) *Resolver {
	return &Resolver{table: t}
}

// Resolve returns the lowercase key for query, or a *NotFoundError.
func (r *Resolver) Resolve(query string) (string, error) {
	name := canonicalName(query)
	if name != "" {
		if key, ok := r.table.Lookup(name); ok {
			return key, nil
		}
	}
	return "", &NotFoundError{Query: strings.TrimSpace(query)}
}
