// Package symbols holds the MemberMap symbol table (component C) and the
// primitive-class seed (component D item 1); externs hydration lives in
// package externs.
package symbols

import "tcdesugar/ast"

// TypeClassData is the per-class metadata stored in a MemberMap entry:
// type arguments, member signatures as (ident, type), superclass
// constraints and functional dependencies (§3).
type TypeClassData struct {
	Args       []string
	Members    []MemberSignature
	Implies    []ast.Constraint
	Deps       []ast.FunctionalDependency
}

type MemberSignature struct {
	Ident Ident
	Type  ast.Type
}

// Ident is a local alias to keep this file self-contained when read on
// its own; it is exactly ast.Ident.
type Ident = ast.Ident

// MemberMap maps (module, class name) to TypeClassData. Insertion order
// is irrelevant per §3, so a plain map is the right shape (the teacher's
// own symbol tables are likewise plain maps, e.g.
// internal/pkg/ast/typed/module.go's Dependencies).
type MemberMap map[Key]TypeClassData

type Key struct {
	Module ast.ModuleName
	Class  ast.ClassName
}

// NewMemberMap creates an empty table.
func NewMemberMap() MemberMap { return make(MemberMap) }

// Lookup fetches a class's data by its fully qualified name.
func (m MemberMap) Lookup(q ast.Qualified[ast.ClassName]) (TypeClassData, bool) {
	module := ast.ModuleName("")
	if q.Module != nil {
		module = *q.Module
	}
	data, ok := m[Key{Module: module, Class: q.Name}]
	return data, ok
}

// Insert records or overwrites a class's data under (module, class).
func (m MemberMap) Insert(module ast.ModuleName, class ast.ClassName, data TypeClassData) {
	m[Key{Module: module, Class: class}] = data
}

// Union returns a new map holding m's and other's entries, with other's
// entries winning on key collisions (a right-biased union); neither input
// is modified. externs.Hydrate gets the same effect by inserting
// externs-derived classes over the seed directly.
func (m MemberMap) Union(other MemberMap) MemberMap {
	out := make(MemberMap, len(m)+len(other))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Len reports the number of classes currently known.
func (m MemberMap) Len() int { return len(m) }
