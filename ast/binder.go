package ast

import "fmt"

// Binder is the pattern sublanguage of §3: wildcard, the three literal
// binders, variable, constructor application, object, array, cons and
// named (as-patterns), plus a position-annotated wrapper. Shaped exactly
// like Type/Expr above: a marker interface plus one struct per variant.
type Binder interface {
	fmt.Stringer
	isBinder()
}

type BinderBase struct{}

func (BinderBase) isBinder() {}

// NullBinder is the wildcard pattern `_`.
type NullBinder struct{ BinderBase }

func (NullBinder) String() string { return "_" }

type LiteralBinder struct {
	BinderBase
	Literal Literal[Binder]
}

func (b LiteralBinder) String() string { return b.Literal.String() }

type VarBinder struct {
	BinderBase
	Name Ident
}

func (b VarBinder) String() string { return string(b.Name) }

type ConstructorBinder struct {
	BinderBase
	Constructor Qualified[ConstructorName]
	Args        []Binder
}

func (b ConstructorBinder) String() string { return fmt.Sprintf("%s(...)", b.Constructor) }

type ObjectBinderField struct {
	Label  string
	Binder Binder
}

type ObjectBinder struct {
	BinderBase
	Fields []ObjectBinderField
}

func (ObjectBinder) String() string { return "{...}" }

type ArrayBinder struct {
	BinderBase
	Items []Binder
}

func (ArrayBinder) String() string { return "[...]" }

type ConsBinder struct {
	BinderBase
	Head Binder
	Tail Binder
}

func (b ConsBinder) String() string { return fmt.Sprintf("%s : %s", b.Head, b.Tail) }

// NamedBinder is an as-pattern, `ident @ sub`.
type NamedBinder struct {
	BinderBase
	Name   Ident
	Nested Binder
}

func (b NamedBinder) String() string { return fmt.Sprintf("%s@%s", b.Name, b.Nested) }

// PositionedBinder attaches a source annotation to an otherwise-bare
// binder, matching PositionedDeclaration/PositionedExpr.
type PositionedBinder struct {
	BinderBase
	Ann    SourceAnn
	Binder Binder
}

func (b PositionedBinder) String() string { return b.Binder.String() }
