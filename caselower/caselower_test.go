package caselower

import (
	"testing"

	"tcdesugar/ast"
)

func varExpr(name ast.Ident) ast.Expr { return ast.Var{Name: ast.Unqualified(name)} }

func TestDesugar_SingleUnguardedClausePassesThrough(t *testing.T) {
	decls := []ast.Declaration{
		ast.ValueDeclaration{
			Ident:   "answer",
			Guarded: []ast.GuardedExpr{{Result: varExpr("fortyTwo")}},
		},
	}
	out, err := Desugar(decls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected exactly one declaration, got %d", len(out))
	}
	vd := out[0].(ast.ValueDeclaration)
	if len(vd.Binders) != 0 || len(vd.Guarded) != 1 {
		t.Fatalf("expected a single binder-free clause to pass through unchanged, got %+v", vd)
	}
}

func TestDesugar_MultiClauseMergesIntoCase(t *testing.T) {
	decls := []ast.Declaration{
		ast.ValueDeclaration{
			Ident:   "describe",
			Binders: []ast.Binder{ast.ConstructorBinder{Constructor: ast.Unqualified[ast.ConstructorName]("Zero")}},
			Guarded: []ast.GuardedExpr{{Result: varExpr("zeroCase")}},
		},
		ast.ValueDeclaration{
			Ident:   "describe",
			Binders: []ast.Binder{ast.VarBinder{Name: "n"}},
			Guarded: []ast.GuardedExpr{{Result: varExpr("otherCase")}},
		},
	}
	out, err := Desugar(decls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected the two clauses to merge into one declaration, got %d", len(out))
	}
	vd := out[0].(ast.ValueDeclaration)
	if len(vd.Binders) != 0 {
		t.Fatalf("expected the merged declaration to have no binders of its own, got %+v", vd.Binders)
	}
	if len(vd.Guarded) != 1 {
		t.Fatalf("expected exactly one (lambda-wrapped case) result, got %d", len(vd.Guarded))
	}
	lambda, ok := vd.Guarded[0].Result.(ast.Lambda)
	if !ok {
		t.Fatalf("expected the merged body to be a lambda over the fresh scrutinee parameter, got %T", vd.Guarded[0].Result)
	}
	caseExpr, ok := lambda.Body.(ast.Case)
	if !ok {
		t.Fatalf("expected the lambda body to be a case expression, got %T", lambda.Body)
	}
	if len(caseExpr.Alternatives) != 2 {
		t.Fatalf("expected both original clauses to become case alternatives, got %d", len(caseExpr.Alternatives))
	}
}

func TestDesugar_MismatchedArityErrors(t *testing.T) {
	decls := []ast.Declaration{
		ast.ValueDeclaration{
			Ident:   "f",
			Binders: []ast.Binder{ast.VarBinder{Name: "x"}},
			Guarded: []ast.GuardedExpr{{Result: varExpr("a")}},
		},
		ast.ValueDeclaration{
			Ident:   "f",
			Binders: []ast.Binder{ast.VarBinder{Name: "x"}, ast.VarBinder{Name: "y"}},
			Guarded: []ast.GuardedExpr{{Result: varExpr("b")}},
		},
	}
	if _, err := Desugar(decls); err == nil {
		t.Fatalf("expected an arity-mismatch error")
	}
}

func TestDesugar_GuardChainFoldsIntoIfThenElse(t *testing.T) {
	decls := []ast.Declaration{
		ast.ValueDeclaration{
			Ident: "sign",
			Guarded: []ast.GuardedExpr{
				{Guard: varExpr("isNegative"), Result: varExpr("negResult")},
				{Result: varExpr("defaultResult")},
			},
		},
	}
	out, err := Desugar(decls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vd := out[0].(ast.ValueDeclaration)
	if len(vd.Guarded) != 1 {
		t.Fatalf("expected the guard chain to collapse to a single clause, got %d", len(vd.Guarded))
	}
	ite, ok := vd.Guarded[0].Result.(ast.IfThenElse)
	if !ok {
		t.Fatalf("expected the folded guard chain to be an IfThenElse, got %T", vd.Guarded[0].Result)
	}
	if _, ok := ite.Cond.(ast.Var); !ok {
		t.Fatalf("expected the guard condition to be preserved, got %T", ite.Cond)
	}
}

func TestDesugar_NonValueDeclarationPassesThrough(t *testing.T) {
	decls := []ast.Declaration{
		ast.TypeSignatureDeclaration{Ident: "describe", Type: ast.TypeVar{Name: "a"}},
	}
	out, err := Desugar(decls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected the signature declaration to pass through untouched, got %d", len(out))
	}
}
