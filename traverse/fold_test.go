package traverse

import (
	"testing"

	"tcdesugar/ast"
)

func TestAccumTypes_ValueDeclarationAndSynonym(t *testing.T) {
	synonym := ast.TypeSynonymDeclaration{
		Name: "Pair",
		Type: ast.FunctionType{Arg: ast.TypeVar{Name: "a"}, Result: ast.TypeVar{Name: "a"}},
	}
	types := AccumTypes(synonym)
	if len(types) != 1 {
		t.Fatalf("expected exactly the synonym's own type, got %d: %v", len(types), types)
	}

	valueDecl := ast.ValueDeclaration{
		Ident: "f",
		Guarded: []ast.GuardedExpr{{
			Result: ast.TypedValue{Value: ast.Var{Name: ast.Unqualified[ast.Ident]("x")}, Type: ast.TypeVar{Name: "t"}},
		}},
	}
	types = AccumTypes(valueDecl)
	if len(types) != 1 {
		t.Fatalf("expected one type from the TypedValue wrapper, got %d: %v", len(types), types)
	}
}

func TestFoldExpr_CombinesLeftToRight(t *testing.T) {
	var order []string
	f := Folder[[]string]{
		Zero:    nil,
		Combine: func(a, b []string) []string { return append(a, b...) },
		OnExpr: func(e ast.Expr) []string {
			if v, ok := e.(ast.Var); ok {
				return []string{string(v.Name.Name)}
			}
			return nil
		},
	}
	tree := ast.App{
		Func: ast.App{Func: ast.Var{Name: ast.Unqualified[ast.Ident]("f")}, Arg: ast.Var{Name: ast.Unqualified[ast.Ident]("x")}},
		Arg:  ast.Var{Name: ast.Unqualified[ast.Ident]("y")},
	}
	order = f.FoldExpr(tree)
	want := []string{"f", "x", "y"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}
