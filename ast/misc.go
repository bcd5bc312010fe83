// Package ast is the data model shared by every phase of the type-class
// desugaring pass: names, types, kinds, declarations, expressions, binders
// and the externs record used to hydrate cross-module symbol information.
package ast

import "strings"

// ModuleName is a non-empty dot-joined sequence of proper-name segments,
// e.g. "Data.Either" or the reserved "Prim" module seeded with primitive
// classes.
type ModuleName string

func NewModuleName(segments ...string) ModuleName {
	return ModuleName(strings.Join(segments, "."))
}

func (m ModuleName) String() string { return string(m) }

// PrimModuleName is the reserved module under which the primitive class
// set is hosted (see symbols.Seed).
const PrimModuleName ModuleName = "Prim"

// Ident names an ordinary value, distinct from proper names.
type Ident string

func (i Ident) String() string { return string(i) }

// UndefinedIdent is the placeholder identifier used by instance-dictionary
// scheduling for members that have not yet been placed (design note N-1).
const UndefinedIdent Ident = "undefined"

// properName is the constraint satisfied by every phantom-tagged proper
// name wrapper. Go has no first-class phantom type tags, so §3's
// "an implementation may use separate wrapper types per kind" is taken
// literally: ClassName, TypeName and ConstructorName are distinct
// ~string types the compiler cannot confuse, unified here only for
// generic code (Qualified[N], traversal helpers).
type properName interface {
	~string
}

// ClassName, TypeName and ConstructorName are the three proper-name
// categories. A class name can be cheaply reinterpreted as a type name
// (see AsTypeName) for dictionary-type-synonym generation, per N-5.
type (
	ClassName       string
	TypeName        string
	ConstructorName string
)

func (n ClassName) String() string       { return string(n) }
func (n TypeName) String() string        { return string(n) }
func (n ConstructorName) String() string { return string(n) }

// AsTypeName reinterprets a class proper name as a type proper name. This
// is the operation §4.E step 2 relies on to turn a class "Foo" into the
// type synonym name "Foo".
func (n ClassName) AsTypeName() TypeName { return TypeName(n) }

// Qualified pairs an optional module with a proper name or identifier.
// A nil Module means the name is unqualified.
type Qualified[N properName] struct {
	Module *ModuleName
	Name   N
}

func Unqualified[N properName](name N) Qualified[N] {
	return Qualified[N]{Name: name}
}

func Qualify[N properName](module ModuleName, name N) Qualified[N] {
	m := module
	return Qualified[N]{Module: &m, Name: name}
}

// IsQualified reports whether a module was attached.
func (q Qualified[N]) IsQualified() bool { return q.Module != nil }

func (q Qualified[N]) String() string {
	if q.Module == nil {
		return string(q.Name)
	}
	return string(*q.Module) + "." + string(q.Name)
}

// QualifiedIn reinterprets q as qualified by module when it is not already
// qualified; classes are required to be fully qualified before this pass
// runs (§3 invariants), but helper code building synthetic references
// sometimes starts from an unqualified name known to live in the current
// module.
func QualifiedIn[N properName](module ModuleName, q Qualified[N]) Qualified[N] {
	if q.Module != nil {
		return q
	}
	return Qualify(module, q.Name)
}

// ReQualifyClassAsType changes the proper-name category of a qualified
// class name into a qualified type name.
func ReQualifyClassAsType(q Qualified[ClassName]) Qualified[TypeName] {
	return Qualified[TypeName]{Module: q.Module, Name: q.Name.AsTypeName()}
}
