// Package caselower is a stand-in for the case-declaration desugarer that
// §1 names as an out-of-scope external collaborator, "consumed as a pure
// function desugarCases". Instance desugaring (§4.F step 1) calls into
// it to turn a group of multi-clause, possibly guarded member equations
// into plain value declarations with no binders and a single unguarded
// right-hand side, which is the shape §4.F step 6 requires before it can
// extract a member's expression.
package caselower

import (
	"fmt"

	"tcdesugar/ast"
)

// Desugar lowers equational/guarded member declarations to plain value
// declarations. Declarations that are not value declarations (e.g. a
// TypeSignatureDeclaration accompanying a member) pass through
// unchanged and are placed after all merged clause groups, in their
// original relative order.
func Desugar(decls []ast.Declaration) ([]ast.Declaration, error) {
	order := make([]ast.Ident, 0, len(decls))
	groups := make(map[ast.Ident][]ast.ValueDeclaration, len(decls))
	var rest []ast.Declaration

	for _, d := range decls {
		vd, ok := ast.Unwrap(d).(ast.ValueDeclaration)
		if !ok {
			rest = append(rest, d)
			continue
		}
		if _, seen := groups[vd.Ident]; !seen {
			order = append(order, vd.Ident)
		}
		groups[vd.Ident] = append(groups[vd.Ident], vd)
	}

	out := make([]ast.Declaration, 0, len(order)+len(rest))
	for _, ident := range order {
		merged, err := mergeClauses(ident, groups[ident])
		if err != nil {
			return nil, err
		}
		out = append(out, merged)
	}
	out = append(out, rest...)
	return out, nil
}

// mergeClauses folds one or more equations for the same member name into
// a single ValueDeclaration. A single, binder-free clause is just
// guard-folded; multiple clauses (or any clause with binders) are lowered
// to a case expression scrutinizing freshly named parameters, with the
// original binders and guards becoming that case's alternatives.
func mergeClauses(ident ast.Ident, clauses []ast.ValueDeclaration) (ast.Declaration, error) {
	if len(clauses) == 1 && len(clauses[0].Binders) == 0 {
		return foldGuards(clauses[0]), nil
	}

	arity := len(clauses[0].Binders)
	for _, c := range clauses {
		if len(c.Binders) != arity {
			return nil, fmt.Errorf("member %q: equations have mismatched arity", ident)
		}
	}

	params := make([]ast.Ident, arity)
	scrutinees := make([]ast.Expr, arity)
	for i := range params {
		params[i] = ast.Ident(fmt.Sprintf("$%s_arg%d", ident, i))
		scrutinees[i] = ast.Var{Name: ast.Unqualified(params[i])}
	}

	var alts []ast.CaseAlternative
	for _, c := range clauses {
		for _, g := range c.Guarded {
			alts = append(alts, ast.CaseAlternative{Binders: c.Binders, Guard: g.Guard, Result: g.Result})
		}
	}

	var body ast.Expr = ast.Case{Scrutinees: scrutinees, Alternatives: alts}
	for i := arity - 1; i >= 0; i-- {
		body = ast.Lambda{Param: params[i], Body: body}
	}

	merged := clauses[0]
	merged.Binders = nil
	merged.Guarded = []ast.GuardedExpr{{Result: body}}
	return merged, nil
}

// foldGuards collapses `| guard1 = r1 | guard2 = r2 | otherwise = r3`
// style guard chains, right to left, into nested if/then/else.
func foldGuards(vd ast.ValueDeclaration) ast.ValueDeclaration {
	if len(vd.Guarded) <= 1 {
		return vd
	}
	var body ast.Expr
	for i := len(vd.Guarded) - 1; i >= 0; i-- {
		g := vd.Guarded[i]
		if g.Guard == nil || body == nil {
			body = g.Result
			continue
		}
		body = ast.IfThenElse{Cond: g.Guard, Then: g.Result, Else: body}
	}
	vd.Guarded = []ast.GuardedExpr{{Result: body}}
	return vd
}
