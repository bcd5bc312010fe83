// Package traverse provides the generic top-down/bottom-up rewrite and
// fold combinators §4.A requires over the mutually recursive
// declaration/expression/binder/case-alternative/do-element family in
// package ast. Grounded on the teacher's Fold-style traversal
// (internal/pkg/ast/typed/fold.go, internal/pkg/ast/parsed/utils_fold.go):
// a switch over concrete variants that recurses into every sub-node
// reachable from a declaration, generalized here from a single
// fold accumulator into three combinators (rewrite, monadic top-down
// rewrite, fold) as §4.A specifies.
package traverse

import "tcdesugar/ast"

// Rewriter holds one optional per-node function per AST family. A nil
// field behaves as identity for that family, so callers only need to
// set the handful of functions a given pass actually cares about —
// exactly how the teacher's Fold calls pass no-op combinators for
// families a given traversal ignores.
type Rewriter struct {
	OnDecl    func(ast.Declaration) ast.Declaration
	OnExpr    func(ast.Expr) ast.Expr
	OnBinder  func(ast.Binder) ast.Binder
	OnCaseAlt func(ast.CaseAlternative) ast.CaseAlternative
	OnDo      func(ast.DoNotationElement) ast.DoNotationElement
}

func (r Rewriter) decl(d ast.Declaration) ast.Declaration {
	if r.OnDecl == nil {
		return d
	}
	return r.OnDecl(d)
}

func (r Rewriter) expr(e ast.Expr) ast.Expr {
	if r.OnExpr == nil {
		return e
	}
	return r.OnExpr(e)
}

func (r Rewriter) binder(b ast.Binder) ast.Binder {
	if r.OnBinder == nil {
		return b
	}
	return r.OnBinder(b)
}

func (r Rewriter) caseAlt(c ast.CaseAlternative) ast.CaseAlternative {
	if r.OnCaseAlt == nil {
		return c
	}
	return r.OnCaseAlt(c)
}

func (r Rewriter) do(e ast.DoNotationElement) ast.DoNotationElement {
	if r.OnDo == nil {
		return e
	}
	return r.OnDo(e)
}

// EverywhereOnValues is the bottom-up total rewrite of §4.A.1: descend
// into every sub-node, rewrite it, then apply the per-node function to
// the rebuilt node. The elements of array and object literals (in
// expressions and in literal binders) and the record inside a
// TypeClassDictionaryConstructorApp are not descended into.
func EverywhereOnValues(r Rewriter, d ast.Declaration) ast.Declaration {
	return r.decl(rewriteDeclChildren(r, d))
}

func EverywhereOnValuesExpr(r Rewriter, e ast.Expr) ast.Expr {
	return r.expr(rewriteExprChildren(r, e))
}

func EverywhereOnValuesBinder(r Rewriter, b ast.Binder) ast.Binder {
	return r.binder(rewriteBinderChildren(r, b))
}

func rewriteDeclChildren(r Rewriter, d ast.Declaration) ast.Declaration {
	switch v := d.(type) {
	case ast.DataBindingGroupDeclaration:
		decls := make([]ast.DataDeclaration, len(v.Decls))
		for i, dd := range v.Decls {
			decls[i] = dd
		}
		v.Decls = decls
		return v
	case ast.ValueDeclaration:
		binders := make([]ast.Binder, len(v.Binders))
		for i, b := range v.Binders {
			binders[i] = EverywhereOnValuesBinder(r, b)
		}
		v.Binders = binders
		guarded := make([]ast.GuardedExpr, len(v.Guarded))
		for i, g := range v.Guarded {
			ng := g
			if g.Guard != nil {
				ng.Guard = EverywhereOnValuesExpr(r, g.Guard)
			}
			ng.Result = EverywhereOnValuesExpr(r, g.Result)
			guarded[i] = ng
		}
		v.Guarded = guarded
		return v
	case ast.BindingGroupDeclaration:
		decls := make([]ast.ValueDeclaration, len(v.Decls))
		for i, vd := range v.Decls {
			rewritten := EverywhereOnValues(r, vd)
			decls[i] = rewritten.(ast.ValueDeclaration)
		}
		v.Decls = decls
		return v
	case ast.TypeClassDeclaration:
		return v
	case ast.TypeInstanceDeclaration:
		switch body := v.Body.(type) {
		case ast.ExplicitInstance:
			members := make([]ast.Declaration, len(body.Members))
			for i, m := range body.Members {
				members[i] = EverywhereOnValues(r, m)
			}
			v.Body = ast.ExplicitInstance{Members: members}
		case ast.NewtypeInstanceWithDictionary:
			v.Body = ast.NewtypeInstanceWithDictionary{Dictionary: EverywhereOnValuesExpr(r, body.Dictionary)}
		}
		return v
	case ast.PositionedDeclaration:
		v.Inner = EverywhereOnValues(r, v.Inner)
		return v
	default:
		return d
	}
}

func rewriteExprChildren(r Rewriter, e ast.Expr) ast.Expr {
	switch v := e.(type) {
	case ast.UnaryMinus:
		v.Value = EverywhereOnValuesExpr(r, v.Value)
		return v
	case ast.BinaryNoParens:
		v.Op = EverywhereOnValuesExpr(r, v.Op)
		v.Left = EverywhereOnValuesExpr(r, v.Left)
		v.Right = EverywhereOnValuesExpr(r, v.Right)
		return v
	case ast.Parens:
		v.Value = EverywhereOnValuesExpr(r, v.Value)
		return v
	case ast.Accessor:
		v.Value = EverywhereOnValuesExpr(r, v.Value)
		return v
	case ast.ObjectUpdate:
		v.Value = EverywhereOnValuesExpr(r, v.Value)
		fields := make([]ast.UpdateField, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = ast.UpdateField{Label: f.Label, Value: EverywhereOnValuesExpr(r, f.Value)}
		}
		v.Fields = fields
		return v
	case ast.Lambda:
		v.Body = EverywhereOnValuesExpr(r, v.Body)
		return v
	case ast.App:
		v.Func = EverywhereOnValuesExpr(r, v.Func)
		v.Arg = EverywhereOnValuesExpr(r, v.Arg)
		return v
	case ast.IfThenElse:
		v.Cond = EverywhereOnValuesExpr(r, v.Cond)
		v.Then = EverywhereOnValuesExpr(r, v.Then)
		v.Else = EverywhereOnValuesExpr(r, v.Else)
		return v
	case ast.Case:
		scrutinees := make([]ast.Expr, len(v.Scrutinees))
		for i, s := range v.Scrutinees {
			scrutinees[i] = EverywhereOnValuesExpr(r, s)
		}
		v.Scrutinees = scrutinees
		alts := make([]ast.CaseAlternative, len(v.Alternatives))
		for i, a := range v.Alternatives {
			alts[i] = rewriteCaseAlternative(r, a)
		}
		v.Alternatives = alts
		return v
	case ast.TypedValue:
		v.Value = EverywhereOnValuesExpr(r, v.Value)
		return v
	case ast.Let:
		decls := make([]ast.Declaration, len(v.Decls))
		for i, d := range v.Decls {
			decls[i] = EverywhereOnValues(r, d)
		}
		v.Decls = decls
		v.Body = EverywhereOnValuesExpr(r, v.Body)
		return v
	case ast.Do:
		elems := make([]ast.DoNotationElement, len(v.Elements))
		for i, el := range v.Elements {
			elems[i] = rewriteDoElement(r, el)
		}
		v.Elements = elems
		return v
	case ast.PositionedExpr:
		v.Value = EverywhereOnValuesExpr(r, v.Value)
		return v
	default:
		return e
	}
}

func rewriteBinderChildren(r Rewriter, b ast.Binder) ast.Binder {
	switch v := b.(type) {
	case ast.ConstructorBinder:
		args := make([]ast.Binder, len(v.Args))
		for i, a := range v.Args {
			args[i] = EverywhereOnValuesBinder(r, a)
		}
		v.Args = args
		return v
	case ast.ObjectBinder:
		fields := make([]ast.ObjectBinderField, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = ast.ObjectBinderField{Label: f.Label, Binder: EverywhereOnValuesBinder(r, f.Binder)}
		}
		v.Fields = fields
		return v
	case ast.ArrayBinder:
		items := make([]ast.Binder, len(v.Items))
		for i, it := range v.Items {
			items[i] = EverywhereOnValuesBinder(r, it)
		}
		v.Items = items
		return v
	case ast.ConsBinder:
		v.Head = EverywhereOnValuesBinder(r, v.Head)
		v.Tail = EverywhereOnValuesBinder(r, v.Tail)
		return v
	case ast.NamedBinder:
		v.Nested = EverywhereOnValuesBinder(r, v.Nested)
		return v
	case ast.PositionedBinder:
		v.Binder = EverywhereOnValuesBinder(r, v.Binder)
		return v
	default:
		return b
	}
}

func rewriteCaseAlternative(r Rewriter, a ast.CaseAlternative) ast.CaseAlternative {
	binders := make([]ast.Binder, len(a.Binders))
	for i, b := range a.Binders {
		binders[i] = EverywhereOnValuesBinder(r, b)
	}
	a.Binders = binders
	if a.Guard != nil {
		a.Guard = EverywhereOnValuesExpr(r, a.Guard)
	}
	a.Result = EverywhereOnValuesExpr(r, a.Result)
	return r.caseAlt(a)
}

func rewriteDoElement(r Rewriter, e ast.DoNotationElement) ast.DoNotationElement {
	switch e.Kind {
	case ast.DoValue:
		e.Value = EverywhereOnValuesExpr(r, e.Value)
	case ast.DoBind:
		e.Binder = EverywhereOnValuesBinder(r, e.Binder)
		e.Value = EverywhereOnValuesExpr(r, e.Value)
	case ast.DoLet:
		decls := make([]ast.Declaration, len(e.LetDecl))
		for i, d := range e.LetDecl {
			decls[i] = EverywhereOnValues(r, d)
		}
		e.LetDecl = decls
	}
	return r.do(e)
}
