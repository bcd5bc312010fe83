package traverse

import "tcdesugar/ast"

// RewriterM is the monadic counterpart of Rewriter used by
// EverywhereOnValuesTopDownM (§4.A.2). Go has no first-class monad
// abstraction, so the "arbitrary effect" is the one Go actually uses for
// fallible computation throughout this codebase: an error return. Each
// function is applied to a node *before* descending into its (possibly
// already-transformed) children, and the first error aborts the walk.
type RewriterM struct {
	OnDecl    func(ast.Declaration) (ast.Declaration, error)
	OnExpr    func(ast.Expr) (ast.Expr, error)
	OnBinder  func(ast.Binder) (ast.Binder, error)
	OnCaseAlt func(ast.CaseAlternative) (ast.CaseAlternative, error)
	OnDo      func(ast.DoNotationElement) (ast.DoNotationElement, error)
}

func (r RewriterM) decl(d ast.Declaration) (ast.Declaration, error) {
	if r.OnDecl == nil {
		return d, nil
	}
	return r.OnDecl(d)
}

func (r RewriterM) expr(e ast.Expr) (ast.Expr, error) {
	if r.OnExpr == nil {
		return e, nil
	}
	return r.OnExpr(e)
}

func (r RewriterM) binder(b ast.Binder) (ast.Binder, error) {
	if r.OnBinder == nil {
		return b, nil
	}
	return r.OnBinder(b)
}

// EverywhereOnValuesTopDownM applies f to d, then recurses into the
// (already-rewritten) result's children in source order. Visitation order
// is deterministic: binders, then guards before results, then
// left-to-right within applications and other sub-expression lists.
// It covers fewer variants than EverywhereOnValues: it does not descend
// into BinaryNoParens, Case, Do, literal elements or the record inside a
// TypeClassDictionaryConstructorApp, nor into object, array or cons
// binders, and OnCaseAlt and OnDo are never called.
func EverywhereOnValuesTopDownM(r RewriterM, d ast.Declaration) (ast.Declaration, error) {
	d, err := r.decl(d)
	if err != nil {
		return nil, err
	}
	return topDownDeclChildren(r, d)
}

func EverywhereOnValuesTopDownMExpr(r RewriterM, e ast.Expr) (ast.Expr, error) {
	e, err := r.expr(e)
	if err != nil {
		return nil, err
	}
	return topDownExprChildren(r, e)
}

func topDownDeclChildren(r RewriterM, d ast.Declaration) (ast.Declaration, error) {
	var err error
	switch v := d.(type) {
	case ast.ValueDeclaration:
		binders := make([]ast.Binder, len(v.Binders))
		for i, b := range v.Binders {
			if binders[i], err = topDownBinder(r, b); err != nil {
				return nil, err
			}
		}
		v.Binders = binders
		guarded := make([]ast.GuardedExpr, len(v.Guarded))
		for i, g := range v.Guarded {
			ng := g
			if g.Guard != nil {
				if ng.Guard, err = EverywhereOnValuesTopDownMExpr(r, g.Guard); err != nil {
					return nil, err
				}
			}
			if ng.Result, err = EverywhereOnValuesTopDownMExpr(r, g.Result); err != nil {
				return nil, err
			}
			guarded[i] = ng
		}
		v.Guarded = guarded
		return v, nil
	case ast.BindingGroupDeclaration:
		decls := make([]ast.ValueDeclaration, len(v.Decls))
		for i, vd := range v.Decls {
			rewritten, err := EverywhereOnValuesTopDownM(r, vd)
			if err != nil {
				return nil, err
			}
			decls[i] = rewritten.(ast.ValueDeclaration)
		}
		v.Decls = decls
		return v, nil
	case ast.TypeInstanceDeclaration:
		switch body := v.Body.(type) {
		case ast.ExplicitInstance:
			members := make([]ast.Declaration, len(body.Members))
			for i, m := range body.Members {
				if members[i], err = EverywhereOnValuesTopDownM(r, m); err != nil {
					return nil, err
				}
			}
			v.Body = ast.ExplicitInstance{Members: members}
		case ast.NewtypeInstanceWithDictionary:
			var dict ast.Expr
			if dict, err = EverywhereOnValuesTopDownMExpr(r, body.Dictionary); err != nil {
				return nil, err
			}
			v.Body = ast.NewtypeInstanceWithDictionary{Dictionary: dict}
		}
		return v, nil
	case ast.PositionedDeclaration:
		if v.Inner, err = EverywhereOnValuesTopDownM(r, v.Inner); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return d, nil
	}
}

func topDownExprChildren(r RewriterM, e ast.Expr) (ast.Expr, error) {
	var err error
	switch v := e.(type) {
	case ast.UnaryMinus:
		if v.Value, err = EverywhereOnValuesTopDownMExpr(r, v.Value); err != nil {
			return nil, err
		}
		return v, nil
	case ast.Parens:
		if v.Value, err = EverywhereOnValuesTopDownMExpr(r, v.Value); err != nil {
			return nil, err
		}
		return v, nil
	case ast.Accessor:
		if v.Value, err = EverywhereOnValuesTopDownMExpr(r, v.Value); err != nil {
			return nil, err
		}
		return v, nil
	case ast.ObjectUpdate:
		if v.Value, err = EverywhereOnValuesTopDownMExpr(r, v.Value); err != nil {
			return nil, err
		}
		fields := make([]ast.UpdateField, len(v.Fields))
		for i, f := range v.Fields {
			fv, err := EverywhereOnValuesTopDownMExpr(r, f.Value)
			if err != nil {
				return nil, err
			}
			fields[i] = ast.UpdateField{Label: f.Label, Value: fv}
		}
		v.Fields = fields
		return v, nil
	case ast.Lambda:
		if v.Body, err = EverywhereOnValuesTopDownMExpr(r, v.Body); err != nil {
			return nil, err
		}
		return v, nil
	case ast.App:
		if v.Func, err = EverywhereOnValuesTopDownMExpr(r, v.Func); err != nil {
			return nil, err
		}
		if v.Arg, err = EverywhereOnValuesTopDownMExpr(r, v.Arg); err != nil {
			return nil, err
		}
		return v, nil
	case ast.IfThenElse:
		if v.Cond, err = EverywhereOnValuesTopDownMExpr(r, v.Cond); err != nil {
			return nil, err
		}
		if v.Then, err = EverywhereOnValuesTopDownMExpr(r, v.Then); err != nil {
			return nil, err
		}
		if v.Else, err = EverywhereOnValuesTopDownMExpr(r, v.Else); err != nil {
			return nil, err
		}
		return v, nil
	case ast.TypedValue:
		if v.Value, err = EverywhereOnValuesTopDownMExpr(r, v.Value); err != nil {
			return nil, err
		}
		return v, nil
	case ast.Let:
		decls := make([]ast.Declaration, len(v.Decls))
		for i, d := range v.Decls {
			if decls[i], err = EverywhereOnValuesTopDownM(r, d); err != nil {
				return nil, err
			}
		}
		v.Decls = decls
		if v.Body, err = EverywhereOnValuesTopDownMExpr(r, v.Body); err != nil {
			return nil, err
		}
		return v, nil
	case ast.PositionedExpr:
		if v.Value, err = EverywhereOnValuesTopDownMExpr(r, v.Value); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return e, nil
	}
}

func topDownBinder(r RewriterM, b ast.Binder) (ast.Binder, error) {
	b, err := r.binder(b)
	if err != nil {
		return nil, err
	}
	switch v := b.(type) {
	case ast.ConstructorBinder:
		args := make([]ast.Binder, len(v.Args))
		for i, a := range v.Args {
			if args[i], err = topDownBinder(r, a); err != nil {
				return nil, err
			}
		}
		v.Args = args
		return v, nil
	case ast.NamedBinder:
		if v.Nested, err = topDownBinder(r, v.Nested); err != nil {
			return nil, err
		}
		return v, nil
	case ast.PositionedBinder:
		if v.Binder, err = topDownBinder(r, v.Binder); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return b, nil
	}
}
