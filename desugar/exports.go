package desugar

import "tcdesugar/ast"

// classLocallyVisible and typeLocallyVisible implement §4.F's "Export
// reference computation" helper:
// a reference to class/type Q is locally visible when its module differs
// from the current module (externally owned, always visible) or the
// current module's export list already contains the matching
// TypeClassRef/TypeRef entry.
func classLocallyVisible(module ast.ModuleName, m *ast.Module, class ast.Qualified[ast.ClassName]) bool {
	if class.Module != nil && *class.Module != module {
		return true
	}
	return m.ExportsTypeClass(class.Name)
}

func typeLocallyVisible(module ast.ModuleName, m *ast.Module, ty ast.Qualified[ast.TypeName]) bool {
	if ty.Module != nil && *ty.Module != module {
		return true
	}
	return m.ExportsType(ty.Name)
}

// instanceExportRef computes the additional export §4.F describes:
// `TypeInstanceRef(<generated>, name)` is emitted iff the class and every
// type constructor mentioned in tys are locally visible. It returns
// (ref, true) when the export should be added.
func instanceExportRef(module ast.ModuleName, m *ast.Module, name ast.Ident, class ast.Qualified[ast.ClassName], tys []ast.Type) (ast.TypeInstanceRef, bool) {
	if !classLocallyVisible(module, m, class) {
		return ast.TypeInstanceRef{}, false
	}
	for _, ty := range tys {
		for _, tc := range typeConstructorsIn(ty) {
			if !typeLocallyVisible(module, m, tc) {
				return ast.TypeInstanceRef{}, false
			}
		}
	}
	return ast.TypeInstanceRef{Ann: ast.GeneratedSourceAnn, Name: name}, true
}

// typeConstructorsIn collects every TypeConstructor reference reachable
// from a type, used to decide whether every type mentioned by an
// instance head is locally visible.
func typeConstructorsIn(t ast.Type) []ast.Qualified[ast.TypeName] {
	var out []ast.Qualified[ast.TypeName]
	var walk func(ast.Type)
	walk = func(t ast.Type) {
		switch v := t.(type) {
		case ast.TypeConstructor:
			out = append(out, v.Name)
		case ast.TypeApp:
			walk(v.Func)
			walk(v.Arg)
		case ast.ConstrainedType:
			for _, a := range v.Constraint.Args {
				walk(a)
			}
			walk(v.Type)
		case ast.RowExtension:
			walk(v.Head)
			walk(v.Tail)
		case ast.RecordType:
			walk(v.Row)
		case ast.FunctionType:
			walk(v.Arg)
			walk(v.Result)
		}
	}
	walk(t)
	return out
}
