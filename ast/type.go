package ast

import (
	"fmt"
	"strings"
)

// Type is the algebraic datatype of §3: type variable, type constructor,
// type application, constrained type, row extension, empty row, record of
// a row, and forall. Mirrors the teacher's Type interface shape
// (internal/pkg/ast/parsed/type.go: an unexported marker method plus one
// struct per variant) generalized to the variants this pass needs.
type Type interface {
	fmt.Stringer
	isType()
}

type TypeBase struct{}

func (TypeBase) isType() {}

// TypeVar is a (rigid or bound) type variable referenced by name.
type TypeVar struct {
	TypeBase
	Name string
}

func (t TypeVar) String() string { return t.Name }

// TypeConstructor refers to a named type, qualified by module.
type TypeConstructor struct {
	TypeBase
	Name Qualified[TypeName]
}

func (t TypeConstructor) String() string { return t.Name.String() }

// TypeApp applies one type to another; curried, left-associative, matching
// how `C a b` is represented as `TypeApp(TypeApp(C, a), b)`.
type TypeApp struct {
	TypeBase
	Func Type
	Arg  Type
}

func (t TypeApp) String() string { return fmt.Sprintf("(%s %s)", t.Func, t.Arg) }

// Constraint is `(class, type arguments, optional data to solve with)`.
// Data is an opaque payload (e.g. a partially solved dictionary
// expression) carried for constraints PureScript-style instance chains
// resolve eagerly; this pass never inspects it, only threads it through.
type Constraint struct {
	Class Qualified[ClassName]
	Args  []Type
	Data  any
}

func (c Constraint) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s %s", c.Class, strings.Join(parts, " "))
}

// WithArgs returns a copy of the constraint with its type arguments
// replaced by args.
func (c Constraint) WithArgs(args []Type) Constraint {
	return Constraint{Class: c.Class, Args: args, Data: c.Data}
}

// ConstrainedType is `Constraint => Type`.
type ConstrainedType struct {
	TypeBase
	Constraint Constraint
	Type       Type
}

func (t ConstrainedType) String() string { return fmt.Sprintf("%s => %s", t.Constraint, t.Type) }

// RowExtension is `label :: Type | Tail` in a row.
type RowExtension struct {
	TypeBase
	Label string
	Head  Type
	Tail  Type
}

func (t RowExtension) String() string { return fmt.Sprintf("(%s :: %s | %s)", t.Label, t.Head, t.Tail) }

// EmptyRow is the empty row, "()".
type EmptyRow struct{ TypeBase }

func (EmptyRow) String() string { return "()" }

// RecordType is a record of a row, "{ Row }".
type RecordType struct {
	TypeBase
	Row Type
}

func (t RecordType) String() string { return fmt.Sprintf("{ %s }", t.Row) }

// ForAll is a quantifier binding Var in Body.
type ForAll struct {
	TypeBase
	Var  string
	Body Type
}

func (t ForAll) String() string { return fmt.Sprintf("forall %s. %s", t.Var, t.Body) }

// UnitType is the nullary record type `{}`, used as the domain of
// superclass thunks (§4.E step 2).
func UnitType() Type { return RecordType{Row: EmptyRow{}} }

// FunctionType is sugar for the two-argument application of the (hidden)
// function type constructor; kept as a distinct variant since arrow types
// are pervasive here (member signatures, accessor types) and spelling them
// out as TypeApp chains everywhere would bury the one transformation
// (§4.E step 3) that needs to find "the" function type and wrap it.
type FunctionType struct {
	TypeBase
	Arg    Type
	Result Type
}

func (t FunctionType) String() string { return fmt.Sprintf("(%s -> %s)", t.Arg, t.Result) }

// RowLabels collects the row's labels and their types in row order,
// stopping at EmptyRow or an unresolved tail. The pass itself only builds
// rows (class-synonym construction uses RowFromLabels); RowLabels is what
// the tests use to inspect a generated dictionary type's fields.
func RowLabels(row Type) []RowExtension {
	var out []RowExtension
	for {
		ext, ok := row.(RowExtension)
		if !ok {
			return out
		}
		out = append(out, ext)
		row = ext.Tail
	}
}

// RowFromLabels is the inverse of RowLabels: builds a row terminated by
// EmptyRow from a label list in order.
func RowFromLabels(labels []RowExtension) Type {
	var row Type = EmptyRow{}
	for i := len(labels) - 1; i >= 0; i-- {
		row = RowExtension{Label: labels[i].Label, Head: labels[i].Head, Tail: row}
	}
	return row
}
