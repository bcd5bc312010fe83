package desugar

import (
	"tcdesugar/ast"
	"tcdesugar/caselower"
	"tcdesugar/symbols"
)

// desugarInstance implements §4.F for one TypeInstanceDeclaration. It
// returns the replacement declarations for the instance (always including
// the original, per the worked scenarios in §8) and, when applicable, the
// export ref component G must fold into the module's export list.
func desugarInstance(
	module ast.ModuleName,
	decl ast.TypeInstanceDeclaration,
	table symbols.MemberMap,
	m *ast.Module,
) (decls []ast.Declaration, export *ast.TypeInstanceRef, err error) {
	switch body := decl.Body.(type) {
	case ast.DerivedInstance:
		return nil, nil, internalErrorf("DerivedInstance must be pre-desugared before this pass: %s", decl.Name)

	case ast.NewtypeInstanceWithDictionary:
		dictType := quantifyWithDeps(decl.Deps, decl.Class, decl.Types)
		dictDecl := ast.ValueDeclaration{
			DeclBase:   ast.DeclBase{Ann: decl.Ann},
			Ident:      decl.Name,
			Visibility: ast.Private,
			Guarded: []ast.GuardedExpr{{
				Result: ast.TypedValue{Checked: true, Value: body.Dictionary, Type: dictType},
			}},
		}
		ref, ok := instanceExportRef(module, m, decl.Name, decl.Class, decl.Types)
		out := []ast.Declaration{decl, dictDecl}
		if ok {
			return out, &ref, nil
		}
		return out, nil, nil

	case ast.ExplicitInstance:
		out, err := desugarExplicitInstance(module, decl, body, table)
		if err != nil {
			return nil, nil, rethrow(decl.Class, decl.Types, err)
		}
		ref, ok := instanceExportRef(module, m, decl.Name, decl.Class, decl.Types)
		if ok {
			return out, &ref, nil
		}
		return out, nil, nil

	default:
		return nil, nil, internalErrorf("unknown instance body variant for %s", decl.Name)
	}
}

func desugarExplicitInstance(
	module ast.ModuleName,
	decl ast.TypeInstanceDeclaration,
	body ast.ExplicitInstance,
	table symbols.MemberMap,
) ([]ast.Declaration, error) {
	// Step 1: pre-desugar cases.
	members, err := caselower.Desugar(body.Members)
	if err != nil {
		return nil, err
	}

	// Step 2: look up class metadata.
	if !decl.Class.IsQualified() {
		return nil, internalErrorf("unqualified class %s in instance %s", decl.Class, decl.Name)
	}
	classData, ok := table.Lookup(decl.Class)
	if !ok {
		return nil, &UnknownNameError{Class: decl.Class}
	}

	memberIdents := make(map[ast.Ident]bool, len(classData.Members))
	for _, m := range classData.Members {
		memberIdents[m.Ident] = true
	}

	instanceValues := make(map[ast.Ident]ast.ValueDeclaration, len(members))
	var instanceOrder []ast.Ident
	for _, d := range members {
		vd, ok := ast.Unwrap(d).(ast.ValueDeclaration)
		if !ok {
			return nil, internalErrorf("non-value declaration inside instance %s", decl.Name)
		}
		instanceValues[vd.Ident] = vd
		instanceOrder = append(instanceOrder, vd.Ident)
	}

	// Step 3: completeness check.
	for _, m := range classData.Members {
		if _, ok := instanceValues[m.Ident]; !ok {
			return nil, &MissingClassMemberError{Ident: m.Ident}
		}
	}

	// Step 4: extraneous check.
	for _, ident := range instanceOrder {
		if !memberIdents[ident] {
			return nil, &ExtraneousClassMemberError{Ident: ident}
		}
	}

	// Step 5: specialize member types (computed for completeness /
	// future type-checking consumers; this pass itself does not need the
	// specialized types to build the dictionary expression, only the
	// member values).
	sub := newSubstitution(classData.Args, decl.Types)
	memberTypes := make(map[ast.Ident]ast.Type, len(classData.Members))
	for _, m := range classData.Members {
		memberTypes[m.Ident] = substituteType(sub, m.Type)
	}
	_ = memberTypes

	// Step 6: extract member expressions.
	memberExprs := make(map[ast.Ident]ast.Expr, len(classData.Members))
	for _, m := range classData.Members {
		vd := instanceValues[m.Ident]
		expr, ok := vd.SingleExpr()
		if !ok {
			return nil, internalErrorf("instance member %q is not a single unguarded, binder-free value declaration", m.Ident)
		}
		memberExprs[m.Ident] = expr
	}

	// Step 7: superclass placeholders.
	superclassFields := make([]ast.UpdateField, len(classData.Implies))
	for i, c := range classData.Implies {
		specialized := substituteConstraint(sub, c)
		superclassFields[i] = ast.UpdateField{
			Label: superclassName(c.Class, i),
			Value: ast.Lambda{
				Param: unusedParam,
				Body:  ast.DeferredDictionary{Class: specialized.Class, Args: specialized.Args},
			},
		}
	}

	// Steps 8-9: dependency scheduling and topological dictionary build.
	memberNames := make([]ast.Ident, len(classData.Members))
	for i, m := range classData.Members {
		memberNames[i] = m.Ident
	}
	deps := make(map[ast.Ident]map[ast.Ident]bool, len(memberNames))
	for _, name := range memberNames {
		deps[name] = memberDependencies(decl.Class, memberNames, memberExprs[name])
	}

	dict, err := scheduleDictionary(memberNames, memberExprs, deps, superclassFields)
	if err != nil {
		return nil, err
	}

	// Step 10: wrap.
	dictExpr := ast.TypeClassDictionaryConstructorApp{Class: decl.Class, Value: dict}
	dictType := quantifyWithDeps(decl.Deps, decl.Class, decl.Types)
	dictDecl := ast.ValueDeclaration{
		DeclBase:   ast.DeclBase{Ann: decl.Ann},
		Ident:      decl.Name,
		Visibility: ast.Private,
		Guarded: []ast.GuardedExpr{{
			Result: ast.TypedValue{Checked: true, Value: dictExpr, Type: dictType},
		}},
	}

	return []ast.Declaration{decl, dictDecl}, nil
}

// memberDependencies is §4.F step 8: a scoped fold over value that
// collects the identifiers of other members this value references at
// immediate dictionary scope. inScope starts true; entering a lambda
// turns it off for that lambda's body (N-2: this deliberately
// underestimates dependencies for code that defers member use until the
// dictionary is built — that deferral is exactly what makes mutual
// recursion between members terminate via DeferredDictionary-style
// thunking at the value level, not this scheduler's concern).
func memberDependencies(class ast.Qualified[ast.ClassName], memberNames []ast.Ident, value ast.Expr) map[ast.Ident]bool {
	isMember := make(map[ast.Ident]bool, len(memberNames))
	for _, n := range memberNames {
		isMember[n] = true
	}
	deps := map[ast.Ident]bool{}
	var walk func(ast.Expr, bool)
	walk = func(e ast.Expr, inScope bool) {
		switch v := e.(type) {
		case ast.Var:
			if inScope && v.Name.Module != nil && *v.Name.Module == classModule(class) && isMember[ast.Ident(v.Name.Name)] {
				deps[ast.Ident(v.Name.Name)] = true
			}
		case ast.UnaryMinus:
			walk(v.Value, inScope)
		case ast.BinaryNoParens:
			walk(v.Op, inScope)
			walk(v.Left, inScope)
			walk(v.Right, inScope)
		case ast.Parens:
			walk(v.Value, inScope)
		case ast.Accessor:
			walk(v.Value, inScope)
		case ast.ObjectUpdate:
			walk(v.Value, inScope)
			for _, f := range v.Fields {
				walk(f.Value, inScope)
			}
		case ast.Lambda:
			walk(v.Body, false)
		case ast.App:
			walk(v.Func, inScope)
			walk(v.Arg, inScope)
		case ast.IfThenElse:
			walk(v.Cond, inScope)
			walk(v.Then, inScope)
			walk(v.Else, inScope)
		case ast.Case:
			for _, s := range v.Scrutinees {
				walk(s, inScope)
			}
			for _, a := range v.Alternatives {
				if a.Guard != nil {
					walk(a.Guard, inScope)
				}
				walk(a.Result, inScope)
			}
		case ast.TypedValue:
			walk(v.Value, inScope)
		case ast.Let:
			walk(v.Body, inScope)
		case ast.Do:
			for _, el := range v.Elements {
				if el.Value != nil {
					walk(el.Value, inScope)
				}
			}
		case ast.PositionedExpr:
			walk(v.Value, inScope)
		}
	}
	walk(value, true)
	return deps
}

func classModule(class ast.Qualified[ast.ClassName]) ast.ModuleName {
	if class.Module == nil {
		return ""
	}
	return *class.Module
}

// scheduleDictionary is §4.F step 9's topological build. It returns the
// record-literal-or-ObjectUpdate-chain expression described there.
func scheduleDictionary(
	memberNames []ast.Ident,
	memberExprs map[ast.Ident]ast.Expr,
	deps map[ast.Ident]map[ast.Ident]bool,
	superclassFields []ast.UpdateField,
) (ast.Expr, error) {
	remaining := append([]ast.Ident(nil), memberNames...)
	provided := map[ast.Ident]bool{}

	ready, notReady := addLayer(remaining, deps, provided)
	if len(ready) == 0 && len(remaining) > 0 {
		return nil, &OverlappingNamesInLetError{Idents: remaining}
	}

	fields := make([]ast.ObjectField[ast.Expr], 0, len(ready)+len(superclassFields)+len(notReady))
	for _, name := range ready {
		fields = append(fields, ast.ObjectField[ast.Expr]{Label: string(name), Value: memberExprs[name]})
	}
	for _, f := range superclassFields {
		fields = append(fields, ast.ObjectField[ast.Expr]{Label: f.Label, Value: f.Value})
	}
	for _, name := range notReady {
		fields = append(fields, ast.ObjectField[ast.Expr]{Label: string(name), Value: ast.Var{Name: ast.Unqualified(ast.UndefinedIdent)}})
	}

	var result ast.Expr = ast.LiteralExpr{Literal: ast.ObjectLiteral[ast.Expr]{Fields: fields}}
	for _, name := range ready {
		provided[name] = true
	}
	remaining = notReady

	for len(remaining) > 0 {
		layerReady, layerNotReady := addLayer(remaining, deps, provided)
		if len(layerReady) == 0 {
			return nil, &OverlappingNamesInLetError{Idents: remaining}
		}
		updateFields := make([]ast.UpdateField, len(layerReady))
		for i, name := range layerReady {
			updateFields[i] = ast.UpdateField{Label: string(name), Value: memberExprs[name]}
		}
		result = ast.ObjectUpdate{Value: result, Fields: updateFields}
		for _, name := range layerReady {
			provided[name] = true
		}
		remaining = layerNotReady
	}

	return result, nil
}

// addLayer partitions remaining into entries whose dependency set is a
// subset of provided ("ready") and entries with unmet dependencies,
// preserving the input order within each partition.
func addLayer(remaining []ast.Ident, deps map[ast.Ident]map[ast.Ident]bool, provided map[ast.Ident]bool) (ready, notReady []ast.Ident) {
	for _, name := range remaining {
		ok := true
		for dep := range deps[name] {
			if !provided[dep] {
				ok = false
				break
			}
		}
		if ok {
			ready = append(ready, name)
		} else {
			notReady = append(notReady, name)
		}
	}
	return ready, notReady
}
