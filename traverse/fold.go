package traverse

import "tcdesugar/ast"

// Folder is §4.A.3's everythingOnValues: a monoidal summary built by
// combining a per-node extractor's result with the (already-combined)
// results of every sub-node, left to right in source order. Combine
// plays the role of the semigroup operator `(<>)`; Zero is its identity,
// returned for nodes none of the extractors fire on. The elements of
// array and object literals (in expressions and in literal binders) are
// not folded.
type Folder[T any] struct {
	Zero      T
	Combine   func(a, b T) T
	OnDecl    func(ast.Declaration) T
	OnExpr    func(ast.Expr) T
	OnBinder  func(ast.Binder) T
	OnCaseAlt func(ast.CaseAlternative) T
	OnDo      func(ast.DoNotationElement) T
	OnType    func(ast.Type) T
}

func (f Folder[T]) extractDecl(d ast.Declaration) T {
	if f.OnDecl == nil {
		return f.Zero
	}
	return f.OnDecl(d)
}

func (f Folder[T]) extractExpr(e ast.Expr) T {
	if f.OnExpr == nil {
		return f.Zero
	}
	return f.OnExpr(e)
}

func (f Folder[T]) extractBinder(b ast.Binder) T {
	if f.OnBinder == nil {
		return f.Zero
	}
	return f.OnBinder(b)
}

func (f Folder[T]) extractType(t ast.Type) T {
	if f.OnType == nil || t == nil {
		return f.Zero
	}
	return f.OnType(t)
}

func (f Folder[T]) FoldDeclaration(d ast.Declaration) T {
	acc := f.extractDecl(d)
	switch v := d.(type) {
	case ast.DataDeclaration:
		for _, c := range v.Constructors {
			for _, t := range c.Fields {
				acc = f.Combine(acc, f.extractType(t))
			}
		}
	case ast.DataBindingGroupDeclaration:
		for _, dd := range v.Decls {
			acc = f.Combine(acc, f.FoldDeclaration(dd))
		}
	case ast.TypeSynonymDeclaration:
		acc = f.Combine(acc, f.extractType(v.Type))
	case ast.TypeSignatureDeclaration:
		acc = f.Combine(acc, f.extractType(v.Type))
	case ast.ValueDeclaration:
		for _, b := range v.Binders {
			acc = f.Combine(acc, f.FoldBinder(b))
		}
		for _, g := range v.Guarded {
			if g.Guard != nil {
				acc = f.Combine(acc, f.FoldExpr(g.Guard))
			}
			acc = f.Combine(acc, f.FoldExpr(g.Result))
		}
	case ast.BindingGroupDeclaration:
		for _, vd := range v.Decls {
			acc = f.Combine(acc, f.FoldDeclaration(vd))
		}
	case ast.ForeignValueDeclaration:
		acc = f.Combine(acc, f.extractType(v.Type))
	case ast.ForeignInstanceDeclaration:
		for _, t := range v.Types {
			acc = f.Combine(acc, f.extractType(t))
		}
		for _, c := range v.Deps {
			for _, t := range c.Args {
				acc = f.Combine(acc, f.extractType(t))
			}
		}
	case ast.TypeClassDeclaration:
		for _, m := range v.Members {
			acc = f.Combine(acc, f.FoldDeclaration(m))
		}
		for _, c := range v.Implies {
			for _, t := range c.Args {
				acc = f.Combine(acc, f.extractType(t))
			}
		}
	case ast.TypeInstanceDeclaration:
		for _, t := range v.Types {
			acc = f.Combine(acc, f.extractType(t))
		}
		for _, c := range v.Deps {
			for _, t := range c.Args {
				acc = f.Combine(acc, f.extractType(t))
			}
		}
		switch body := v.Body.(type) {
		case ast.ExplicitInstance:
			for _, m := range body.Members {
				acc = f.Combine(acc, f.FoldDeclaration(m))
			}
		case ast.NewtypeInstanceWithDictionary:
			acc = f.Combine(acc, f.FoldExpr(body.Dictionary))
		}
	case ast.PositionedDeclaration:
		acc = f.Combine(acc, f.FoldDeclaration(v.Inner))
	}
	return acc
}

func (f Folder[T]) FoldExpr(e ast.Expr) T {
	acc := f.extractExpr(e)
	switch v := e.(type) {
	case ast.UnaryMinus:
		acc = f.Combine(acc, f.FoldExpr(v.Value))
	case ast.BinaryNoParens:
		acc = f.Combine(acc, f.FoldExpr(v.Op))
		acc = f.Combine(acc, f.FoldExpr(v.Left))
		acc = f.Combine(acc, f.FoldExpr(v.Right))
	case ast.Parens:
		acc = f.Combine(acc, f.FoldExpr(v.Value))
	case ast.Accessor:
		acc = f.Combine(acc, f.FoldExpr(v.Value))
	case ast.ObjectUpdate:
		acc = f.Combine(acc, f.FoldExpr(v.Value))
		for _, fl := range v.Fields {
			acc = f.Combine(acc, f.FoldExpr(fl.Value))
		}
	case ast.Lambda:
		acc = f.Combine(acc, f.FoldExpr(v.Body))
	case ast.App:
		acc = f.Combine(acc, f.FoldExpr(v.Func))
		acc = f.Combine(acc, f.FoldExpr(v.Arg))
	case ast.IfThenElse:
		acc = f.Combine(acc, f.FoldExpr(v.Cond))
		acc = f.Combine(acc, f.FoldExpr(v.Then))
		acc = f.Combine(acc, f.FoldExpr(v.Else))
	case ast.Case:
		for _, s := range v.Scrutinees {
			acc = f.Combine(acc, f.FoldExpr(s))
		}
		for _, a := range v.Alternatives {
			acc = f.Combine(acc, f.FoldCaseAlternative(a))
		}
	case ast.TypedValue:
		acc = f.Combine(acc, f.extractType(v.Type))
		acc = f.Combine(acc, f.FoldExpr(v.Value))
	case ast.Let:
		for _, d := range v.Decls {
			acc = f.Combine(acc, f.FoldDeclaration(d))
		}
		acc = f.Combine(acc, f.FoldExpr(v.Body))
	case ast.Do:
		for _, el := range v.Elements {
			acc = f.Combine(acc, f.FoldDoElement(el))
		}
	case ast.PositionedExpr:
		acc = f.Combine(acc, f.FoldExpr(v.Value))
	case ast.TypeClassDictionaryPlaceholder:
		for _, t := range v.Constraint.Args {
			acc = f.Combine(acc, f.extractType(t))
		}
	case ast.SuperclassDictionaryPlaceholder:
		for _, t := range v.Args {
			acc = f.Combine(acc, f.extractType(t))
		}
	case ast.DeferredDictionary:
		for _, t := range v.Args {
			acc = f.Combine(acc, f.extractType(t))
		}
	case ast.TypeClassDictionaryConstructorApp:
		acc = f.Combine(acc, f.FoldExpr(v.Value))
	}
	return acc
}

func (f Folder[T]) FoldBinder(b ast.Binder) T {
	acc := f.extractBinder(b)
	switch v := b.(type) {
	case ast.ConstructorBinder:
		for _, a := range v.Args {
			acc = f.Combine(acc, f.FoldBinder(a))
		}
	case ast.ObjectBinder:
		for _, fl := range v.Fields {
			acc = f.Combine(acc, f.FoldBinder(fl.Binder))
		}
	case ast.ArrayBinder:
		for _, it := range v.Items {
			acc = f.Combine(acc, f.FoldBinder(it))
		}
	case ast.ConsBinder:
		acc = f.Combine(acc, f.FoldBinder(v.Head))
		acc = f.Combine(acc, f.FoldBinder(v.Tail))
	case ast.NamedBinder:
		acc = f.Combine(acc, f.FoldBinder(v.Nested))
	case ast.PositionedBinder:
		acc = f.Combine(acc, f.FoldBinder(v.Binder))
	}
	return acc
}

func (f Folder[T]) FoldCaseAlternative(a ast.CaseAlternative) T {
	acc := f.Zero
	if f.OnCaseAlt != nil {
		acc = f.OnCaseAlt(a)
	}
	for _, b := range a.Binders {
		acc = f.Combine(acc, f.FoldBinder(b))
	}
	if a.Guard != nil {
		acc = f.Combine(acc, f.FoldExpr(a.Guard))
	}
	acc = f.Combine(acc, f.FoldExpr(a.Result))
	return acc
}

func (f Folder[T]) FoldDoElement(e ast.DoNotationElement) T {
	acc := f.Zero
	if f.OnDo != nil {
		acc = f.OnDo(e)
	}
	switch e.Kind {
	case ast.DoValue:
		acc = f.Combine(acc, f.FoldExpr(e.Value))
	case ast.DoBind:
		acc = f.Combine(acc, f.FoldBinder(e.Binder))
		acc = f.Combine(acc, f.FoldExpr(e.Value))
	case ast.DoLet:
		for _, d := range e.LetDecl {
			acc = f.Combine(acc, f.FoldDeclaration(d))
		}
	}
	return acc
}

// AccumTypes harvests every Type mentioned in a declaration, per §4.A's
// required accumTypes helper: inside constraints, synonyms, data
// constructor argument types, foreign signatures, typed values and
// dictionary placeholders.
func AccumTypes(d ast.Declaration) []ast.Type {
	f := Folder[[]ast.Type]{
		Zero:    nil,
		Combine: func(a, b []ast.Type) []ast.Type { return append(a, b...) },
		OnType:  func(t ast.Type) []ast.Type { return []ast.Type{t} },
	}
	return f.FoldDeclaration(d)
}

// AccumTypesExpr is AccumTypes's counterpart entered at an expression.
func AccumTypesExpr(e ast.Expr) []ast.Type {
	f := Folder[[]ast.Type]{
		Zero:    nil,
		Combine: func(a, b []ast.Type) []ast.Type { return append(a, b...) },
		OnType:  func(t ast.Type) []ast.Type { return []ast.Type{t} },
	}
	return f.FoldExpr(e)
}
