// Package externs hydrates a symbols.MemberMap from previously compiled
// modules' ExternsFile records (component D, §4.C-D).
package externs

import (
	"tcdesugar/ast"
	"tcdesugar/symbols"
)

// Hydrate builds the initial MemberMap for a compilation run: the
// primitive seed, right-biased-unioned with every EDClass entry found
// across files. Non-class declarations are ignored, and no ordering is
// required of files (§4.C-D), so the loop below does not need to sort
// them first.
func Hydrate(files []ast.ExternsFile) symbols.MemberMap {
	table := symbols.Seed()
	for _, f := range files {
		for _, decl := range f.Declarations {
			if decl.Class == nil {
				continue
			}
			table.Insert(f.ModuleName, decl.Class.Name, symbols.TypeClassData{
				Args:    decl.Class.Args,
				Members: toMemberSignatures(decl.Class.Members),
				Implies: decl.Class.Implies,
				Deps:    decl.Class.Deps,
			})
		}
	}
	return table
}

func toMemberSignatures(sigs []ast.TypeSignatureDeclaration) []symbols.MemberSignature {
	out := make([]symbols.MemberSignature, len(sigs))
	for i, s := range sigs {
		out[i] = symbols.MemberSignature{Ident: s.Ident, Type: s.Type}
	}
	return out
}
