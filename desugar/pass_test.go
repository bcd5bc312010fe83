package desugar

import (
	"errors"
	"testing"

	"tcdesugar/ast"
	"tcdesugar/symbols"
)

func TestClassesFirst_StablyReordersAndPreservesOthers(t *testing.T) {
	decls := []ast.Declaration{
		ast.ValueDeclaration{Ident: "a"},
		ast.TypeInstanceDeclaration{Name: "inst1"},
		ast.TypeClassDeclaration{Name: "Foo"},
		ast.ValueDeclaration{Ident: "b"},
		ast.TypeInstanceDeclaration{Name: "inst2"},
		ast.TypeClassDeclaration{Name: "Bar"},
	}
	out := classesFirst(decls)

	classNames := func(d ast.Declaration) (string, bool) {
		c, ok := d.(ast.TypeClassDeclaration)
		return string(c.Name), ok
	}
	n0, ok0 := classNames(out[0])
	n1, ok1 := classNames(out[1])
	if !ok0 || !ok1 || n0 != "Foo" || n1 != "Bar" {
		t.Fatalf("expected both classes first, in original relative order, got %#v", out[:2])
	}

	var instances []string
	var others []string
	for _, d := range out[2:] {
		switch v := d.(type) {
		case ast.TypeInstanceDeclaration:
			instances = append(instances, string(v.Name))
		case ast.ValueDeclaration:
			others = append(others, string(v.Ident))
		}
	}
	if len(instances) != 2 || instances[0] != "inst1" || instances[1] != "inst2" {
		t.Fatalf("expected instances to keep their relative order after classes, got %v", instances)
	}
	if len(others) != 2 || others[0] != "a" || others[1] != "b" {
		t.Fatalf("expected non-class/non-instance decls to keep their relative order, got %v", others)
	}
}

func TestPass_FailsInternallyWhenExportsAreImplicitButRequired(t *testing.T) {
	// The class is owned by a different module, so it counts as
	// externally visible regardless of this module's (absent) export
	// list — exercising the case where an export is required even
	// though nothing in this module was ever exported.
	foreignClass := ast.Qualify(ast.ModuleName("Other.Module"), ast.ClassName("Foo"))
	table := symbols.NewMemberMap()
	table.Insert("Other.Module", "Foo", symbols.TypeClassData{
		Args:    []string{"a"},
		Members: []symbols.MemberSignature{{Ident: "foo", Type: ast.TypeVar{Name: "a"}}},
	})

	instance := ast.TypeInstanceDeclaration{
		Name:  "fooInt",
		Class: foreignClass,
		Types: []ast.Type{ast.TypeConstructor{Name: ast.Qualify(ast.PrimModuleName, ast.TypeName("Int"))}},
		Body: ast.ExplicitInstance{Members: []ast.Declaration{
			ast.ValueDeclaration{Ident: "foo", Guarded: []ast.GuardedExpr{{Result: qualifiedVar("intFoo")}}},
		}},
	}
	m := &ast.Module{Name: testModule, Decls: []ast.Declaration{instance}}

	_, err := Pass(m, table)
	if err == nil {
		t.Fatalf("expected Pass to fail when a synthesized export has no export list to land in")
	}
	var internal *InternalError
	if !errors.As(err, &internal) {
		t.Fatalf("expected an InternalError, got %T: %v", err, err)
	}
}

func TestPass_AddsSynthesizedExportWhenListIsExplicit(t *testing.T) {
	class := ast.TypeClassDeclaration{
		Name: "Foo",
		Args: []string{"a"},
		Members: []ast.TypeSignatureDeclaration{
			{Ident: "foo", Type: ast.TypeVar{Name: "a"}},
		},
	}
	instance := ast.TypeInstanceDeclaration{
		Name:  "fooInt",
		Class: ast.Qualify(testModule, ast.ClassName("Foo")),
		Types: []ast.Type{ast.TypeConstructor{Name: ast.Qualify(ast.PrimModuleName, ast.TypeName("Int"))}},
		Body: ast.ExplicitInstance{Members: []ast.Declaration{
			ast.ValueDeclaration{Ident: "foo", Guarded: []ast.GuardedExpr{{Result: qualifiedVar("intFoo")}}},
		}},
	}
	exports := []ast.ExportRef{ast.TypeClassRef{Name: "Foo"}}
	m := &ast.Module{Name: testModule, Decls: []ast.Declaration{class, instance}, Exports: &exports}

	out, err := Pass(m, symbols.NewMemberMap())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, e := range *out.Exports {
		if ref, ok := e.(ast.TypeInstanceRef); ok && ref.Name == "fooInt" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the synthesized instance export to be appended, got %+v", *out.Exports)
	}
}
