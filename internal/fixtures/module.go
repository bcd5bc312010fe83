package fixtures

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"tcdesugar/ast"
)

// This file covers the declaration/expression/binder shapes the worked
// scenarios need for hand-written test fixtures: class and instance
// declarations, plain value declarations, variable binders (as params),
// and the handful of expression forms that appear in them (variables,
// application, lambdas, numeric and string literals). Any other
// declaration is written as its String() form under "raw", which
// UnmarshalModule rejects; any other expression is written as an empty
// entry and read back as the numeric literal 0.

type moduleDTO struct {
	Name    string     `yaml:"name"`
	Exports *[]string  `yaml:"exports,omitempty"`
	Decls   []declDTO  `yaml:"decls"`
}

type declDTO struct {
	Class    *classDTO    `yaml:"class,omitempty"`
	Instance *instanceDTO `yaml:"instance,omitempty"`
	Value    *valueDTO    `yaml:"value,omitempty"`
	Raw      string       `yaml:"raw,omitempty"`
}

type classDTO struct {
	Name    string          `yaml:"name"`
	Args    []string        `yaml:"args,omitempty"`
	Implies []constraintDTO `yaml:"implies,omitempty"`
	Members []memberSigDTO  `yaml:"members"`
}

type instanceDTO struct {
	Name    string          `yaml:"name"`
	Deps    []constraintDTO `yaml:"deps,omitempty"`
	Class   string          `yaml:"class"`
	ClassModule string      `yaml:"classModule,omitempty"`
	Types   []typeDTO       `yaml:"types"`
	Newtype *exprDTO        `yaml:"newtype,omitempty"`
	Derived bool            `yaml:"derived,omitempty"`
	Members []valueDTO      `yaml:"members,omitempty"`
}

type valueDTO struct {
	Ident   string    `yaml:"ident"`
	Params  []string  `yaml:"params,omitempty"`
	Body    exprDTO   `yaml:"body"`
}

type exprDTO struct {
	Var     string   `yaml:"var,omitempty"`
	VarMod  string   `yaml:"varModule,omitempty"`
	Number  *float64 `yaml:"number,omitempty"`
	Str     *string  `yaml:"string,omitempty"`
	App     *struct {
		Func exprDTO `yaml:"func"`
		Arg  exprDTO `yaml:"arg"`
	} `yaml:"app,omitempty"`
	Lambda *struct {
		Param string  `yaml:"param"`
		Body  exprDTO `yaml:"body"`
	} `yaml:"lambda,omitempty"`
}

// MarshalModule renders m as the fixture YAML shape documented above.
func MarshalModule(m *ast.Module) ([]byte, error) {
	dto := moduleDTO{Name: string(m.Name)}
	if m.Exports != nil {
		names := make([]string, 0, len(*m.Exports))
		for _, e := range *m.Exports {
			names = append(names, exportRefLabel(e))
		}
		dto.Exports = &names
	}
	for _, d := range m.Decls {
		dd, err := declToDTO(ast.Unwrap(d))
		if err != nil {
			return nil, err
		}
		dto.Decls = append(dto.Decls, dd)
	}
	return yaml.Marshal(dto)
}

func exportRefLabel(e ast.ExportRef) string {
	switch v := e.(type) {
	case ast.TypeRef:
		return "type:" + string(v.Name)
	case ast.TypeClassRef:
		return "class:" + string(v.Name)
	case ast.TypeInstanceRef:
		return "instance:" + string(v.Name)
	default:
		return "other"
	}
}

func declToDTO(d ast.Declaration) (declDTO, error) {
	switch v := d.(type) {
	case ast.TypeClassDeclaration:
		members := make([]memberSigDTO, len(v.Members))
		for i, m := range v.Members {
			members[i] = memberSigDTO{Ident: string(m.Ident), Type: typeToDTO(m.Type)}
		}
		implies := make([]constraintDTO, len(v.Implies))
		for i, c := range v.Implies {
			implies[i] = constraintToDTO(c)
		}
		return declDTO{Class: &classDTO{Name: string(v.Name), Args: v.Args, Implies: implies, Members: members}}, nil

	case ast.TypeInstanceDeclaration:
		types := make([]typeDTO, len(v.Types))
		for i, t := range v.Types {
			types[i] = typeToDTO(t)
		}
		deps := make([]constraintDTO, len(v.Deps))
		for i, c := range v.Deps {
			deps[i] = constraintToDTO(c)
		}
		inst := instanceDTO{Name: string(v.Name), Deps: deps, Class: string(v.Class.Name), Types: types}
		if v.Class.Module != nil {
			inst.ClassModule = string(*v.Class.Module)
		}
		switch b := v.Body.(type) {
		case ast.DerivedInstance:
			inst.Derived = true
		case ast.NewtypeInstanceWithDictionary:
			e := exprToDTO(b.Dictionary)
			inst.Newtype = &e
		case ast.ExplicitInstance:
			for _, md := range b.Members {
				vd, ok := ast.Unwrap(md).(ast.ValueDeclaration)
				if !ok {
					return declDTO{}, fmt.Errorf("non-value declaration in instance %s fixture", v.Name)
				}
				inst.Members = append(inst.Members, valueToDTO(vd))
			}
		}
		return declDTO{Instance: &inst}, nil

	case ast.ValueDeclaration:
		return declDTO{Value: ptr(valueToDTO(v))}, nil

	default:
		return declDTO{Raw: d.String()}, nil
	}
}

func ptr[T any](v T) *T { return &v }

func valueToDTO(vd ast.ValueDeclaration) valueDTO {
	params := make([]string, len(vd.Binders))
	for i, b := range vd.Binders {
		if vb, ok := b.(ast.VarBinder); ok {
			params[i] = string(vb.Name)
		}
	}
	var body ast.Expr
	if e, ok := vd.SingleExpr(); ok {
		body = e
	}
	return valueDTO{Ident: string(vd.Ident), Params: params, Body: exprToDTO(body)}
}

func exprToDTO(e ast.Expr) exprDTO {
	switch v := e.(type) {
	case ast.Var:
		d := exprDTO{Var: string(v.Name.Name)}
		if v.Name.Module != nil {
			d.VarMod = string(*v.Name.Module)
		}
		return d
	case ast.LiteralExpr:
		switch lit := v.Literal.(type) {
		case ast.NumericLiteral[ast.Expr]:
			n := lit.Value
			return exprDTO{Number: &n}
		case ast.StringLiteral[ast.Expr]:
			s := lit.Value
			return exprDTO{Str: &s}
		}
		return exprDTO{}
	case ast.App:
		f, a := exprToDTO(v.Func), exprToDTO(v.Arg)
		return exprDTO{App: &struct {
			Func exprDTO `yaml:"func"`
			Arg  exprDTO `yaml:"arg"`
		}{Func: f, Arg: a}}
	case ast.Lambda:
		b := exprToDTO(v.Body)
		return exprDTO{Lambda: &struct {
			Param string  `yaml:"param"`
			Body  exprDTO `yaml:"body"`
		}{Param: string(v.Param), Body: b}}
	default:
		return exprDTO{}
	}
}

// UnmarshalModule parses the YAML fixture shape MarshalModule produces.
// Exports, if present, are re-synthesized as an empty explicit export
// list (fixtures name exports for readability only; the pass computes
// its own additions, it does not need the original ExportRef payloads
// back) unless names were given, in which case TypeClassRef/TypeRef
// entries are reconstructed so classLocallyVisible has something to see.
func UnmarshalModule(data []byte) (*ast.Module, error) {
	var dto moduleDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("parsing module fixture: %w", err)
	}
	m := &ast.Module{Name: ast.ModuleName(dto.Name)}
	if dto.Exports != nil {
		refs := make([]ast.ExportRef, 0, len(*dto.Exports))
		for _, label := range *dto.Exports {
			refs = append(refs, parseExportLabel(label))
		}
		m.Exports = &refs
	}
	for _, d := range dto.Decls {
		decl, err := declFromDTO(d)
		if err != nil {
			return nil, err
		}
		m.Decls = append(m.Decls, decl)
	}
	return m, nil
}

func parseExportLabel(label string) ast.ExportRef {
	for _, prefix := range []string{"type:", "class:", "instance:"} {
		if len(label) > len(prefix) && label[:len(prefix)] == prefix {
			name := label[len(prefix):]
			switch prefix {
			case "type:":
				return ast.TypeRef{Name: ast.TypeName(name)}
			case "class:":
				return ast.TypeClassRef{Name: ast.ClassName(name)}
			case "instance:":
				return ast.TypeInstanceRef{Name: ast.Ident(name)}
			}
		}
	}
	return ast.OtherExportRef{Kind: label}
}

func declFromDTO(d declDTO) (ast.Declaration, error) {
	switch {
	case d.Class != nil:
		members := make([]ast.TypeSignatureDeclaration, len(d.Class.Members))
		for i, m := range d.Class.Members {
			members[i] = ast.TypeSignatureDeclaration{Ident: ast.Ident(m.Ident), Type: typeFromDTO(m.Type)}
		}
		implies := make([]ast.Constraint, len(d.Class.Implies))
		for i, c := range d.Class.Implies {
			implies[i] = constraintFromDTO(c)
		}
		return ast.TypeClassDeclaration{Name: ast.ClassName(d.Class.Name), Args: d.Class.Args, Implies: implies, Members: members}, nil

	case d.Instance != nil:
		inst := d.Instance
		types := make([]ast.Type, len(inst.Types))
		for i, t := range inst.Types {
			types[i] = typeFromDTO(t)
		}
		deps := make([]ast.Constraint, len(inst.Deps))
		for i, c := range inst.Deps {
			deps[i] = constraintFromDTO(c)
		}
		class := ast.Unqualified(ast.ClassName(inst.Class))
		if inst.ClassModule != "" {
			class = ast.Qualify(ast.ModuleName(inst.ClassModule), ast.ClassName(inst.Class))
		}
		var body ast.TypeInstanceBody
		switch {
		case inst.Derived:
			body = ast.DerivedInstance{}
		case inst.Newtype != nil:
			body = ast.NewtypeInstanceWithDictionary{Dictionary: exprFromDTO(*inst.Newtype)}
		default:
			members := make([]ast.Declaration, len(inst.Members))
			for i, vd := range inst.Members {
				members[i] = valueFromDTO(vd)
			}
			body = ast.ExplicitInstance{Members: members}
		}
		return ast.TypeInstanceDeclaration{Name: ast.Ident(inst.Name), Deps: deps, Class: class, Types: types, Body: body}, nil

	case d.Value != nil:
		return valueFromDTO(*d.Value), nil

	default:
		return nil, fmt.Errorf("fixture declaration has no recognized shape: %q", d.Raw)
	}
}

func valueFromDTO(v valueDTO) ast.ValueDeclaration {
	binders := make([]ast.Binder, len(v.Params))
	for i, p := range v.Params {
		binders[i] = ast.VarBinder{Name: ast.Ident(p)}
	}
	return ast.ValueDeclaration{
		Ident:   ast.Ident(v.Ident),
		Binders: binders,
		Guarded: []ast.GuardedExpr{{Result: exprFromDTO(v.Body)}},
	}
}

func exprFromDTO(d exprDTO) ast.Expr {
	switch {
	case d.Var != "":
		name := ast.Unqualified(ast.Ident(d.Var))
		if d.VarMod != "" {
			name = ast.Qualify(ast.ModuleName(d.VarMod), ast.Ident(d.Var))
		}
		return ast.Var{Name: name}
	case d.Number != nil:
		return ast.LiteralExpr{Literal: ast.NumericLiteral[ast.Expr]{Value: *d.Number}}
	case d.Str != nil:
		return ast.LiteralExpr{Literal: ast.StringLiteral[ast.Expr]{Value: *d.Str}}
	case d.App != nil:
		return ast.App{Func: exprFromDTO(d.App.Func), Arg: exprFromDTO(d.App.Arg)}
	case d.Lambda != nil:
		return ast.Lambda{Param: ast.Ident(d.Lambda.Param), Body: exprFromDTO(d.Lambda.Body)}
	default:
		return ast.LiteralExpr{Literal: ast.NumericLiteral[ast.Expr]{Value: 0}}
	}
}
