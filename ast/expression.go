package ast

import "fmt"

// Expr is the expression sublanguage of §3. As with Type and Binder, a
// marker interface plus one struct per variant, following the teacher's
// Expression shape (internal/pkg/ast/parsed/expression.go).
type Expr interface {
	fmt.Stringer
	isExpr()
}

type ExprBase struct{}

func (ExprBase) isExpr() {}

type LiteralExpr struct {
	ExprBase
	Literal Literal[Expr]
}

func (e LiteralExpr) String() string { return e.Literal.String() }

// UnaryMinus is unary negation, kept distinct from a general operator
// application since it is the one prefix operator in the surface syntax.
type UnaryMinus struct {
	ExprBase
	Value Expr
}

func (e UnaryMinus) String() string { return fmt.Sprintf("-%s", e.Value) }

// BinaryNoParens is an unparenthesized infix application as produced by
// the parser, before fixity resolution; this pass never needs to resolve
// it, only traverse through it.
type BinaryNoParens struct {
	ExprBase
	Op    Expr
	Left  Expr
	Right Expr
}

func (e BinaryNoParens) String() string { return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right) }

type Parens struct {
	ExprBase
	Value Expr
}

func (e Parens) String() string { return fmt.Sprintf("(%s)", e.Value) }

// Accessor is `value.field`.
type Accessor struct {
	ExprBase
	Label string
	Value Expr
}

func (e Accessor) String() string { return fmt.Sprintf("%s.%s", e.Value, e.Label) }

type UpdateField struct {
	Label string
	Value Expr
}

// ObjectUpdate is `value { label = newValue, ... }`. Instance-dictionary
// scheduling (§4.F step 9) builds a chain of these to layer in
// dependency-resolved members on top of an initial record literal.
type ObjectUpdate struct {
	ExprBase
	Value  Expr
	Fields []UpdateField
}

func (e ObjectUpdate) String() string { return fmt.Sprintf("%s{...}", e.Value) }

type Lambda struct {
	ExprBase
	Param Ident
	Body  Expr
}

func (e Lambda) String() string { return fmt.Sprintf("\\%s -> %s", e.Param, e.Body) }

type App struct {
	ExprBase
	Func Expr
	Arg  Expr
}

func (e App) String() string { return fmt.Sprintf("(%s %s)", e.Func, e.Arg) }

type Var struct {
	ExprBase
	Name Qualified[Ident]
}

func (e Var) String() string { return e.Name.String() }

type Constructor struct {
	ExprBase
	Name Qualified[ConstructorName]
}

func (e Constructor) String() string { return e.Name.String() }

type IfThenElse struct {
	ExprBase
	Cond, Then, Else Expr
}

func (e IfThenElse) String() string { return fmt.Sprintf("if %s then %s else %s", e.Cond, e.Then, e.Else) }

// CaseAlternative is `(binders, optional guard, result expression)`.
type CaseAlternative struct {
	Binders []Binder
	Guard   Expr // nil when absent
	Result  Expr
}

type Case struct {
	ExprBase
	Scrutinees   []Expr
	Alternatives []CaseAlternative
}

func (e Case) String() string { return "case ... of ..." }

// TypedValue is `(checked?, value, type)`. Checked false marks a value
// that has already been given a type and should not be re-checked by the
// type checker; §4.E step 3 and §4.F step 10 both rely on this flag.
type TypedValue struct {
	ExprBase
	Checked bool
	Value   Expr
	Type    Type
}

func (e TypedValue) String() string { return fmt.Sprintf("(%s :: %s)", e.Value, e.Type) }

// DoElementKind distinguishes the three forms a do-notation line can take.
type DoElementKind int

const (
	DoValue DoElementKind = iota
	DoBind
	DoLet
)

type DoNotationElement struct {
	Kind    DoElementKind
	Binder  Binder    // DoBind only
	Value   Expr       // DoValue, DoBind
	LetDecl []Declaration // DoLet only
	Ann     SourceAnn
}

type Let struct {
	ExprBase
	Decls []Declaration
	Body  Expr
}

func (e Let) String() string { return "let ... in ..." }

type Do struct {
	ExprBase
	Elements []DoNotationElement
}

func (e Do) String() string { return "do ..." }

// PositionedExpr attaches a source annotation to an expression.
type PositionedExpr struct {
	ExprBase
	Ann   SourceAnn
	Value Expr
}

func (e PositionedExpr) String() string { return e.Value.String() }

// --- type-class-desugaring-specific expression forms (§3) ---

// TypeClassDictionaryPlaceholder stands in for "the dictionary implied by
// this constraint", to be resolved by a later phase (type checking) this
// pass never runs; it is produced only by callers outside this pass and
// passed through untouched.
type TypeClassDictionaryPlaceholder struct {
	ExprBase
	Constraint Constraint
}

func (e TypeClassDictionaryPlaceholder) String() string {
	return fmt.Sprintf("#dict(%s)", e.Constraint)
}

// SuperclassDictionaryPlaceholder stands in for "the superclass dictionary
// reachable from this constraint", similarly left for a later phase.
type SuperclassDictionaryPlaceholder struct {
	ExprBase
	Class Qualified[ClassName]
	Args  []Type
}

func (e SuperclassDictionaryPlaceholder) String() string {
	return fmt.Sprintf("#superdict(%s)", e.Class)
}

// TypeClassDictionaryAccessor is the body of an accessor function emitted
// by §4.E step 3: projects Member out of any dictionary for Class.
type TypeClassDictionaryAccessor struct {
	ExprBase
	Class  Qualified[ClassName]
	Member Ident
}

func (e TypeClassDictionaryAccessor) String() string {
	return fmt.Sprintf("#accessor(%s.%s)", e.Class, e.Member)
}

// TypeClassDictionaryConstructorApp wraps the record literal built by
// §4.F step 9 to mark it as "this record is a dictionary for Class",
// information later phases use to know the record was not hand-written.
type TypeClassDictionaryConstructorApp struct {
	ExprBase
	Class Qualified[ClassName]
	Value Expr
}

func (e TypeClassDictionaryConstructorApp) String() string {
	return fmt.Sprintf("#dictCtor(%s, %s)", e.Class, e.Value)
}

// DeferredDictionary is the one-argument thunk body used by superclass
// slots (§4.F step 7): "when forced, produce the dictionary for Class
// applied to Args".
type DeferredDictionary struct {
	ExprBase
	Class Qualified[ClassName]
	Args  []Type
}

func (e DeferredDictionary) String() string {
	return fmt.Sprintf("#deferred(%s)", e.Class)
}
