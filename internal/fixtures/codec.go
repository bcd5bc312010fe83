// Package fixtures is a YAML codec for the pass's inputs, used only by
// the CLI driver and by tests that want to express a module or an
// externs file as readable test data instead of constructing the ast
// tree by hand in Go. It is deliberately scoped to the declaration,
// expression and type shapes the worked scenarios in the specification
// actually need: it is convenience plumbing, never consulted by the pass
// itself.
package fixtures

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"tcdesugar/ast"
)

// --- Type ---

// typeDTO is a tagged union over ast.Type: exactly one field is set,
// named after the Go variant it represents.
type typeDTO struct {
	Var         string          `yaml:"var,omitempty"`
	Con         string          `yaml:"con,omitempty"`
	ConModule   string          `yaml:"conModule,omitempty"`
	App         *appDTO         `yaml:"app,omitempty"`
	Constrained *constrainedDTO `yaml:"constrained,omitempty"`
	Row         *rowDTO         `yaml:"row,omitempty"`
	EmptyRow    bool            `yaml:"emptyRow,omitempty"`
	Record      *typeDTO        `yaml:"record,omitempty"`
	Forall      *forallDTO      `yaml:"forall,omitempty"`
	Fun         *funDTO         `yaml:"fun,omitempty"`
}

type appDTO struct {
	Func typeDTO `yaml:"func"`
	Arg  typeDTO `yaml:"arg"`
}

type constrainedDTO struct {
	Constraint constraintDTO `yaml:"constraint"`
	Type       typeDTO       `yaml:"type"`
}

type rowDTO struct {
	Label string  `yaml:"label"`
	Head  typeDTO `yaml:"head"`
	Tail  typeDTO `yaml:"tail"`
}

type forallDTO struct {
	Var  string  `yaml:"var"`
	Body typeDTO `yaml:"body"`
}

type funDTO struct {
	Arg    typeDTO `yaml:"arg"`
	Result typeDTO `yaml:"result"`
}

type constraintDTO struct {
	ClassModule string    `yaml:"classModule,omitempty"`
	Class       string    `yaml:"class"`
	Args        []typeDTO `yaml:"args,omitempty"`
}

func typeToDTO(t ast.Type) typeDTO {
	switch v := t.(type) {
	case ast.TypeVar:
		return typeDTO{Var: v.Name}
	case ast.TypeConstructor:
		d := typeDTO{Con: string(v.Name.Name)}
		if v.Name.Module != nil {
			d.ConModule = string(*v.Name.Module)
		}
		return d
	case ast.TypeApp:
		f, a := typeToDTO(v.Func), typeToDTO(v.Arg)
		return typeDTO{App: &appDTO{Func: f, Arg: a}}
	case ast.ConstrainedType:
		return typeDTO{Constrained: &constrainedDTO{Constraint: constraintToDTO(v.Constraint), Type: typeToDTO(v.Type)}}
	case ast.RowExtension:
		return typeDTO{Row: &rowDTO{Label: v.Label, Head: typeToDTO(v.Head), Tail: typeToDTO(v.Tail)}}
	case ast.EmptyRow:
		return typeDTO{EmptyRow: true}
	case ast.RecordType:
		row := typeToDTO(v.Row)
		return typeDTO{Record: &row}
	case ast.ForAll:
		return typeDTO{Forall: &forallDTO{Var: v.Var, Body: typeToDTO(v.Body)}}
	case ast.FunctionType:
		return typeDTO{Fun: &funDTO{Arg: typeToDTO(v.Arg), Result: typeToDTO(v.Result)}}
	default:
		return typeDTO{}
	}
}

func typeFromDTO(d typeDTO) ast.Type {
	switch {
	case d.Var != "":
		return ast.TypeVar{Name: d.Var}
	case d.Con != "":
		name := ast.Unqualified(ast.TypeName(d.Con))
		if d.ConModule != "" {
			name = ast.Qualify(ast.ModuleName(d.ConModule), ast.TypeName(d.Con))
		}
		return ast.TypeConstructor{Name: name}
	case d.App != nil:
		return ast.TypeApp{Func: typeFromDTO(d.App.Func), Arg: typeFromDTO(d.App.Arg)}
	case d.Constrained != nil:
		return ast.ConstrainedType{Constraint: constraintFromDTO(d.Constrained.Constraint), Type: typeFromDTO(d.Constrained.Type)}
	case d.Row != nil:
		return ast.RowExtension{Label: d.Row.Label, Head: typeFromDTO(d.Row.Head), Tail: typeFromDTO(d.Row.Tail)}
	case d.EmptyRow:
		return ast.EmptyRow{}
	case d.Record != nil:
		return ast.RecordType{Row: typeFromDTO(*d.Record)}
	case d.Forall != nil:
		return ast.ForAll{Var: d.Forall.Var, Body: typeFromDTO(d.Forall.Body)}
	case d.Fun != nil:
		return ast.FunctionType{Arg: typeFromDTO(d.Fun.Arg), Result: typeFromDTO(d.Fun.Result)}
	default:
		return nil
	}
}

func constraintToDTO(c ast.Constraint) constraintDTO {
	args := make([]typeDTO, len(c.Args))
	for i, a := range c.Args {
		args[i] = typeToDTO(a)
	}
	d := constraintDTO{Class: string(c.Class.Name), Args: args}
	if c.Class.Module != nil {
		d.ClassModule = string(*c.Class.Module)
	}
	return d
}

func constraintFromDTO(d constraintDTO) ast.Constraint {
	args := make([]ast.Type, len(d.Args))
	for i, a := range d.Args {
		args[i] = typeFromDTO(a)
	}
	class := ast.Unqualified(ast.ClassName(d.Class))
	if d.ClassModule != "" {
		class = ast.Qualify(ast.ModuleName(d.ClassModule), ast.ClassName(d.Class))
	}
	return ast.Constraint{Class: class, Args: args}
}

// --- Kind ---

type kindDTO struct {
	Star bool     `yaml:"star,omitempty"`
	Row  *kindDTO `yaml:"row,omitempty"`
	Fun  *struct {
		Arg    kindDTO `yaml:"arg"`
		Result kindDTO `yaml:"result"`
	} `yaml:"fun,omitempty"`
	Var string `yaml:"var,omitempty"`
}

func kindToDTO(k ast.Kind) kindDTO {
	switch v := k.(type) {
	case ast.Star:
		return kindDTO{Star: true}
	case ast.Row:
		of := kindToDTO(v.Of)
		return kindDTO{Row: &of}
	case ast.FunKind:
		arg, res := kindToDTO(v.Arg), kindToDTO(v.Result)
		return kindDTO{Fun: &struct {
			Arg    kindDTO `yaml:"arg"`
			Result kindDTO `yaml:"result"`
		}{Arg: arg, Result: res}}
	case ast.KindVar:
		return kindDTO{Var: v.Name}
	default:
		return kindDTO{Star: true}
	}
}

func kindFromDTO(d kindDTO) ast.Kind {
	switch {
	case d.Row != nil:
		return ast.Row{Of: kindFromDTO(*d.Row)}
	case d.Fun != nil:
		return ast.FunKind{Arg: kindFromDTO(d.Fun.Arg), Result: kindFromDTO(d.Fun.Result)}
	case d.Var != "":
		return ast.KindVar{Name: d.Var}
	default:
		return ast.Star{}
	}
}

// --- Externs ---

type memberSigDTO struct {
	Ident string  `yaml:"ident"`
	Type  typeDTO `yaml:"type"`
}

type funDepDTO struct {
	Determiners []int `yaml:"determiners"`
	Determined  []int `yaml:"determined"`
}

type externsClassDTO struct {
	Name    string         `yaml:"name"`
	Args    []string       `yaml:"args,omitempty"`
	Members []memberSigDTO `yaml:"members,omitempty"`
	Implies []constraintDTO `yaml:"implies,omitempty"`
	Deps    []funDepDTO    `yaml:"deps,omitempty"`
}

type externsDeclDTO struct {
	Class *externsClassDTO `yaml:"class,omitempty"`
}

type externsFileDTO struct {
	ModuleName   string           `yaml:"moduleName"`
	Declarations []externsDeclDTO `yaml:"declarations"`
}

// MarshalExternsFile renders f as YAML, carrying only the class entries
// this pass cares about; other externs-decl kinds are dropped rather
// than round-tripped, since no fixture needs them.
func MarshalExternsFile(f ast.ExternsFile) ([]byte, error) {
	dto := externsFileDTO{ModuleName: string(f.ModuleName)}
	for _, d := range f.Declarations {
		if d.Class == nil {
			continue
		}
		members := make([]memberSigDTO, len(d.Class.Members))
		for i, m := range d.Class.Members {
			members[i] = memberSigDTO{Ident: string(m.Ident), Type: typeToDTO(m.Type)}
		}
		implies := make([]constraintDTO, len(d.Class.Implies))
		for i, c := range d.Class.Implies {
			implies[i] = constraintToDTO(c)
		}
		deps := make([]funDepDTO, len(d.Class.Deps))
		for i, dep := range d.Class.Deps {
			deps[i] = funDepDTO{Determiners: dep.Determiners, Determined: dep.Determined}
		}
		dto.Declarations = append(dto.Declarations, externsDeclDTO{Class: &externsClassDTO{
			Name: string(d.Class.Name), Args: d.Class.Args, Members: members, Implies: implies, Deps: deps,
		}})
	}
	return yaml.Marshal(dto)
}

// UnmarshalExternsFile parses the YAML fixtures produced by
// MarshalExternsFile (or hand-written in the same shape).
func UnmarshalExternsFile(data []byte) (ast.ExternsFile, error) {
	var dto externsFileDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return ast.ExternsFile{}, fmt.Errorf("parsing externs fixture: %w", err)
	}
	out := ast.ExternsFile{ModuleName: ast.ModuleName(dto.ModuleName)}
	for _, d := range dto.Declarations {
		if d.Class == nil {
			continue
		}
		members := make([]ast.TypeSignatureDeclaration, len(d.Class.Members))
		for i, m := range d.Class.Members {
			members[i] = ast.TypeSignatureDeclaration{Ident: ast.Ident(m.Ident), Type: typeFromDTO(m.Type)}
		}
		implies := make([]ast.Constraint, len(d.Class.Implies))
		for i, c := range d.Class.Implies {
			implies[i] = constraintFromDTO(c)
		}
		deps := make([]ast.FunctionalDependency, len(d.Class.Deps))
		for i, dep := range d.Class.Deps {
			deps[i] = ast.FunctionalDependency{Determiners: dep.Determiners, Determined: dep.Determined}
		}
		out.Declarations = append(out.Declarations, ast.ExternsDecl{Class: &ast.ExternsClass{
			Name: ast.ClassName(d.Class.Name), Args: d.Class.Args, Members: members, Implies: implies, Deps: deps,
		}})
	}
	return out, nil
}
