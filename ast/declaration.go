package ast

import "fmt"

// Visibility controls whether a declaration may be referenced from outside
// its module. Dictionary accessors and instance-dictionary values are
// always synthesized Private (§4.E step 3, §4.F step 10): they are reached
// through the export list's TypeInstanceRef/TypeClassRef, not by direct
// name.
type Visibility int

const (
	Public Visibility = iota
	Private
)

// Declaration is the sum type of §3. As with the other families, a marker
// interface plus one struct per variant; every declaration carries a
// SourceAnn directly (not wrapped), except where a bare PositionedDeclaration
// appears in input from an external tool and needs passing through.
type Declaration interface {
	fmt.Stringer
	Annotation() SourceAnn
	isDecl()
}

type DeclBase struct {
	Ann SourceAnn
}

func (DeclBase) isDecl() {}
func (d DeclBase) Annotation() SourceAnn { return d.Ann }

// DataConstructor is one constructor of a DataDeclaration.
type DataConstructor struct {
	Name   ConstructorName
	Fields []Type
}

type DataDeclaration struct {
	DeclBase
	Name         TypeName
	Params       []string
	Constructors []DataConstructor
}

func (d DataDeclaration) String() string { return fmt.Sprintf("data %s", d.Name) }

// DataBindingGroupDeclaration bundles mutually recursive data declarations.
type DataBindingGroupDeclaration struct {
	DeclBase
	Decls []DataDeclaration
}

func (d DataBindingGroupDeclaration) String() string { return "data binding group" }

type TypeSynonymDeclaration struct {
	DeclBase
	Name   TypeName
	Params []string
	Type   Type
}

func (d TypeSynonymDeclaration) String() string { return fmt.Sprintf("type %s = %s", d.Name, d.Type) }

// TypeSignatureDeclaration is a standalone type signature for a value,
// `ident :: Type`. Class members are represented this way inside a
// TypeClassDeclaration's Members list (§4.E step 1).
type TypeSignatureDeclaration struct {
	DeclBase
	Ident Ident
	Type  Type
}

func (d TypeSignatureDeclaration) String() string { return fmt.Sprintf("%s :: %s", d.Ident, d.Type) }

// GuardedExpr is one right-hand side of a ValueDeclaration: an optional
// guard and the result.
type GuardedExpr struct {
	Guard  Expr // nil when unconditional
	Result Expr
}

// ValueDeclaration is `(ident, visibility, binders, guarded right-hand
// sides)`.
type ValueDeclaration struct {
	DeclBase
	Ident      Ident
	Visibility Visibility
	Binders    []Binder
	Guarded    []GuardedExpr
}

func (d ValueDeclaration) String() string { return fmt.Sprintf("%s = ...", d.Ident) }

// SingleExpr returns the sole unguarded right-hand side of a value
// declaration that has exactly one, used by §4.F step 6 to extract a
// member body.
func (d ValueDeclaration) SingleExpr() (Expr, bool) {
	if len(d.Guarded) != 1 || d.Guarded[0].Guard != nil || len(d.Binders) != 0 {
		return nil, false
	}
	return d.Guarded[0].Result, true
}

// BindingGroupDeclaration bundles mutually recursive value declarations
// that were not produced by instance desugaring (contrast with the
// dictionary-construction scheduling in §4.F step 9, which builds its own
// ObjectUpdate chain rather than a BindingGroupDeclaration).
type BindingGroupDeclaration struct {
	DeclBase
	Decls []ValueDeclaration
}

func (d BindingGroupDeclaration) String() string { return "binding group" }

type ForeignValueDeclaration struct {
	DeclBase
	Ident Ident
	Type  Type
}

func (d ForeignValueDeclaration) String() string { return fmt.Sprintf("foreign import %s", d.Ident) }

type ForeignDataDeclaration struct {
	DeclBase
	Name TypeName
	Kind Kind
}

func (d ForeignDataDeclaration) String() string { return fmt.Sprintf("foreign import data %s", d.Name) }

// ForeignInstanceDeclaration imports an instance dictionary wholesale from
// a foreign module without synthesizing it; it is still subject to export
// rewriting (§4.F "Export reference computation"), just not to §4.F's
// scheduling steps.
type ForeignInstanceDeclaration struct {
	DeclBase
	Name      Ident
	Deps      []Constraint
	Class     Qualified[ClassName]
	Types     []Type
}

func (d ForeignInstanceDeclaration) String() string { return fmt.Sprintf("foreign import instance %s", d.Name) }

type FixityDeclaration struct {
	DeclBase
	Operator   string
	Precedence int
	Alias      Ident
}

func (d FixityDeclaration) String() string { return fmt.Sprintf("infix %s", d.Operator) }

type ImportDeclaration struct {
	DeclBase
	Module   ModuleName
	Alias    *ModuleName
	Explicit []string
}

func (d ImportDeclaration) String() string { return fmt.Sprintf("import %s", d.Module) }

// FunctionalDependency is `determiners -> determined`, both given as
// positional indices into the class's type argument list.
type FunctionalDependency struct {
	Determiners []int
	Determined  []int
}

// TypeClassDeclaration is `(name, type arguments, superclass constraints,
// functional dependencies, member signatures)`.
type TypeClassDeclaration struct {
	DeclBase
	Name       ClassName
	Args       []string
	Implies    []Constraint
	Deps       []FunctionalDependency
	Members    []TypeSignatureDeclaration
}

func (d TypeClassDeclaration) String() string { return fmt.Sprintf("class %s", d.Name) }

// TypeInstanceBody is the tagged union of §3: DerivedInstance (must never
// reach this pass), ExplicitInstance (a list of member declarations) or
// NewtypeInstanceWithDictionary (an opaque pre-built dictionary
// expression).
type TypeInstanceBody interface {
	isInstanceBody()
}

type DerivedInstance struct{}

func (DerivedInstance) isInstanceBody() {}

type ExplicitInstance struct {
	Members []Declaration
}

func (ExplicitInstance) isInstanceBody() {}

type NewtypeInstanceWithDictionary struct {
	Dictionary Expr
}

func (NewtypeInstanceWithDictionary) isInstanceBody() {}

// TypeInstanceDeclaration is `(name, local constraints, class, instance
// type arguments, body)`.
type TypeInstanceDeclaration struct {
	DeclBase
	Name      Ident
	Deps      []Constraint
	Class     Qualified[ClassName]
	Types     []Type
	Body      TypeInstanceBody
}

func (d TypeInstanceDeclaration) String() string {
	return fmt.Sprintf("instance %s :: %s", d.Name, d.Class)
}

// PositionedDeclaration re-attaches a source annotation to a declaration
// read from an external representation that did not carry one inline.
type PositionedDeclaration struct {
	Ann   SourceAnn
	Inner Declaration
}

func (PositionedDeclaration) isDecl() {}
func (d PositionedDeclaration) Annotation() SourceAnn { return d.Ann }
func (d PositionedDeclaration) String() string        { return d.Inner.String() }

// Unwrap strips any number of PositionedDeclaration wrappers.
func Unwrap(d Declaration) Declaration {
	for {
		p, ok := d.(PositionedDeclaration)
		if !ok {
			return d
		}
		d = p.Inner
	}
}
