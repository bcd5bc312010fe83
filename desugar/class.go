package desugar

import (
	"tcdesugar/ast"
	"tcdesugar/symbols"
)

// desugarClass implements §4.E for one TypeClassDeclaration: records its
// metadata in table (mutating it, the table's only writer per §3's
// ownership note), then emits the dictionary-type synonym and one
// accessor per member. The original class declaration is kept so later
// phases that still expect to see it (there are none in this pass's
// scope, but §3 requires "classes... end up before instances" and keeping
// it is the simplest way to satisfy any downstream consumer) are not
// surprised by its disappearance.
func desugarClass(module ast.ModuleName, decl ast.TypeClassDeclaration, table symbols.MemberMap) []ast.Declaration {
	memberSigs := make([]symbols.MemberSignature, len(decl.Members))
	for i, m := range decl.Members {
		memberSigs[i] = symbols.MemberSignature{Ident: m.Ident, Type: m.Type}
	}
	table.Insert(module, decl.Name, symbols.TypeClassData{
		Args:    decl.Args,
		Members: memberSigs,
		Implies: decl.Implies,
		Deps:    decl.Deps,
	})

	synonym := classDictionarySynonym(decl)
	accessors := make([]ast.Declaration, len(decl.Members))
	for i, m := range decl.Members {
		accessors[i] = classMemberAccessor(module, decl, m)
	}

	out := make([]ast.Declaration, 0, 2+len(accessors))
	out = append(out, decl, synonym)
	out = append(out, accessors...)
	return out
}

// classDictionarySynonym is §4.E step 2: a TypeSynonymDeclaration named
// after the class (reinterpreted as a type name), parameterized by the
// class's own type arguments, whose body is a record row with one label
// per member (named exactly the member identifier) followed by one label
// per superclass constraint (named by superclassName), in that order.
func classDictionarySynonym(decl ast.TypeClassDeclaration) ast.TypeSynonymDeclaration {
	labels := make([]ast.RowExtension, 0, len(decl.Members)+len(decl.Implies))
	for _, m := range decl.Members {
		labels = append(labels, ast.RowExtension{Label: string(m.Ident), Head: m.Type})
	}
	for i, c := range decl.Implies {
		thunk := ast.FunctionType{Arg: ast.UnitType(), Result: superclassApplication(c)}
		labels = append(labels, ast.RowExtension{
			Label: superclassName(c.Class, i),
			Head:  thunk,
		})
	}
	return ast.TypeSynonymDeclaration{
		DeclBase: ast.DeclBase{Ann: decl.Ann},
		Name:     decl.Name.AsTypeName(),
		Params:   decl.Args,
		Type:     ast.RecordType{Row: ast.RowFromLabels(labels)},
	}
}

// superclassApplication builds `C τ₁ … τₙ` for a superclass constraint as
// written in the class's `implies` list (no substitution: these are the
// class's own type variables, to be substituted later by instance
// desugaring's own copy of the constraint, §4.F step 7).
func superclassApplication(c ast.Constraint) ast.Type {
	return classApplication(c.Class, c.Args)
}

// classMemberAccessor is §4.E step 3: a Private value declaration whose
// body is a TypeClassDictionaryAccessor, typed at
// `∀α. C α₁ … αₙ => ty` with Checked=false (since there is nothing to
// re-check — the type is asserted, not inferred) so the type checker this
// pass precedes does not wrap it in an extra lambda.
func classMemberAccessor(module ast.ModuleName, decl ast.TypeClassDeclaration, member ast.TypeSignatureDeclaration) ast.ValueDeclaration {
	class := ast.Qualify(module, decl.Name)
	accessorType := quantify(class, decl.Args, member.Type)
	return ast.ValueDeclaration{
		DeclBase:   ast.DeclBase{Ann: decl.Ann},
		Ident:      member.Ident,
		Visibility: ast.Private,
		Guarded: []ast.GuardedExpr{{
			Result: ast.TypedValue{
				Checked: false,
				Value:   ast.TypeClassDictionaryAccessor{Class: class, Member: member.Ident},
				Type:    accessorType,
			},
		}},
	}
}
