// Package alias resolves type-alias names to their underlying expressions
// and expands them through whole type trees, rejecting cyclic alias tables.
package alias

import "typeweld/internal/types"

// Provider looks an alias name up in caller-owned storage. Implementations
// must be read-only for the duration of an expansion session.
type Provider interface {
	Resolve(name string) (types.TypeID, bool)
}

// Table is the plain map-backed Provider. It is populated entirely by the
// caller; the expander only reads it.
type Table map[string]types.TypeID

// Resolve implements Provider.
func (t Table) Resolve(name string) (types.TypeID, bool) {
	id, ok := t[name]
	return id, ok
}
