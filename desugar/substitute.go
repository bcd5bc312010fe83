package desugar

import "tcdesugar/ast"

// substitution maps a class's own type-variable names to the concrete
// type arguments an instance or a member-type specialization provides.
type substitution map[string]ast.Type

func newSubstitution(params []string, args []ast.Type) substitution {
	s := make(substitution, len(params))
	for i, p := range params {
		if i < len(args) {
			s[p] = args[i]
		}
	}
	return s
}

// substituteType substitutes s into t, recursing structurally. Used by
// §4.F step 5 (member type specialization) and step 7 (superclass
// argument specialization).
func substituteType(s substitution, t ast.Type) ast.Type {
	if t == nil {
		return nil
	}
	switch v := t.(type) {
	case ast.TypeVar:
		if r, ok := s[v.Name]; ok {
			return r
		}
		return v
	case ast.TypeConstructor:
		return v
	case ast.TypeApp:
		return ast.TypeApp{Func: substituteType(s, v.Func), Arg: substituteType(s, v.Arg)}
	case ast.ConstrainedType:
		return ast.ConstrainedType{
			Constraint: substituteConstraint(s, v.Constraint),
			Type:       substituteType(s, v.Type),
		}
	case ast.RowExtension:
		return ast.RowExtension{Label: v.Label, Head: substituteType(s, v.Head), Tail: substituteType(s, v.Tail)}
	case ast.EmptyRow:
		return v
	case ast.RecordType:
		return ast.RecordType{Row: substituteType(s, v.Row)}
	case ast.ForAll:
		if _, shadowed := s[v.Var]; shadowed {
			return v
		}
		return ast.ForAll{Var: v.Var, Body: substituteType(s, v.Body)}
	case ast.FunctionType:
		return ast.FunctionType{Arg: substituteType(s, v.Arg), Result: substituteType(s, v.Result)}
	default:
		return t
	}
}

func substituteConstraint(s substitution, c ast.Constraint) ast.Constraint {
	args := make([]ast.Type, len(c.Args))
	for i, a := range c.Args {
		args[i] = substituteType(s, a)
	}
	return ast.Constraint{Class: c.Class, Args: args, Data: c.Data}
}

func substituteTypes(s substitution, ts []ast.Type) []ast.Type {
	out := make([]ast.Type, len(ts))
	for i, t := range ts {
		out[i] = substituteType(s, t)
	}
	return out
}

// quantify wraps ty in a ForAll per class type argument and prepends the
// class's own constraint applied to those arguments, producing
// `∀α. C α₁ … αₙ => ty` as §4.E step 3 and §4.F steps 2/10 require.
func quantify(class ast.Qualified[ast.ClassName], args []string, ty ast.Type) ast.Type {
	classArgs := make([]ast.Type, len(args))
	for i, a := range args {
		classArgs[i] = ast.TypeVar{Name: a}
	}
	result := ast.Type(ast.ConstrainedType{
		Constraint: ast.Constraint{Class: class, Args: classArgs},
		Type:       ty,
	})
	for i := len(args) - 1; i >= 0; i-- {
		result = ast.ForAll{Var: args[i], Body: result}
	}
	return result
}

// quantifyWithDeps is quantify's counterpart for instance dictionaries:
// `∀α. deps => C τ₁ … τₙ`, where α ranges over every free type variable
// mentioned in deps or tys (§4.F steps "Wrap" for both ExplicitInstance
// and NewtypeInstanceWithDictionary).
func quantifyWithDeps(deps []ast.Constraint, class ast.Qualified[ast.ClassName], tys []ast.Type) ast.Type {
	vars := collectTypeVars(nil, tys)
	for _, d := range deps {
		vars = collectTypeVars(vars, d.Args)
	}
	result := classApplication(class, tys)
	for i := len(deps) - 1; i >= 0; i-- {
		result = ast.ConstrainedType{Constraint: deps[i], Type: result}
	}
	for i := len(vars) - 1; i >= 0; i-- {
		result = ast.ForAll{Var: vars[i], Body: result}
	}
	return result
}

// classApplication builds the type `C τ₁ … τₙ` as nested TypeApp over the
// class reinterpreted as its dictionary-type-synonym name.
func classApplication(class ast.Qualified[ast.ClassName], tys []ast.Type) ast.Type {
	var result ast.Type = ast.TypeConstructor{Name: ast.ReQualifyClassAsType(class)}
	for _, t := range tys {
		result = ast.TypeApp{Func: result, Arg: t}
	}
	return result
}

func collectTypeVars(seen []string, ts []ast.Type) []string {
	for _, t := range ts {
		seen = collectTypeVarsOne(seen, t)
	}
	return seen
}

func collectTypeVarsOne(seen []string, t ast.Type) []string {
	switch v := t.(type) {
	case ast.TypeVar:
		for _, s := range seen {
			if s == v.Name {
				return seen
			}
		}
		return append(seen, v.Name)
	case ast.TypeApp:
		seen = collectTypeVarsOne(seen, v.Func)
		return collectTypeVarsOne(seen, v.Arg)
	case ast.ConstrainedType:
		seen = collectTypeVars(seen, v.Constraint.Args)
		return collectTypeVarsOne(seen, v.Type)
	case ast.RowExtension:
		seen = collectTypeVarsOne(seen, v.Head)
		return collectTypeVarsOne(seen, v.Tail)
	case ast.RecordType:
		return collectTypeVarsOne(seen, v.Row)
	case ast.FunctionType:
		seen = collectTypeVarsOne(seen, v.Arg)
		return collectTypeVarsOne(seen, v.Result)
	default:
		return seen
	}
}
