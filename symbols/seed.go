package symbols

import "tcdesugar/ast"

// Seed returns the hard-coded primitive-class set (§4.C-D item 1), hosted
// under the reserved ast.PrimModuleName the way the teacher reserves
// "Nar.Base.*" names for its own builtins (internal/pkg/common/builtins.go).
// These are classes the externs of no real module ever define, so a
// fresh MemberMap always knows about them regardless of which externs
// were loaded.
func Seed() MemberMap {
	m := NewMemberMap()
	// Partial marks a function as using a partial pattern match; it has
	// no members and no superclasses, matching the zero-argument marker
	// classes real language backends commonly seed (e.g. PureScript's
	// Prim.Partial).
	m.Insert(ast.PrimModuleName, "Partial", TypeClassData{})
	// Fail carries a single type-level message argument and is never
	// meant to be instantiated; included so instance desugaring over an
	// externs-only class (no local declaration) is exercisable without a
	// second hand-built fixture.
	m.Insert(ast.PrimModuleName, "Fail", TypeClassData{Args: []string{"message"}})
	return m
}
