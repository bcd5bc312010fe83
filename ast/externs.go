package ast

// ExternsFile is the persisted summary of a previously compiled module,
// `(moduleName, declarations)` from §6. Field naming mirrors the real
// PureScript shape sketched in the retrieved reference file
// other_examples/metaleap-gonad-coreimp__ps-externs.go (EDClass,
// edClassMembers, edClassConstraints, ...) since this spec is the same
// pass; only EDClass entries are consumed, the rest are carried in memory
// but not interpreted.
type ExternsFile struct {
	ModuleName   ModuleName
	Declarations []ExternsDecl
}

// ExternsDecl is one entry of an externs file. Only the Class field is
// populated by anything this pass produces or reads; the rest mirror the
// shape of a real externs record (type, type-synonym, value, instance,
// data-constructor). The fixture codec (internal/fixtures) writes and
// reads only the Class entries and drops the rest.
type ExternsDecl struct {
	Class         *ExternsClass         `yaml:"edClass,omitempty"`
	Type          *ExternsType          `yaml:"edType,omitempty"`
	TypeSynonym   *ExternsTypeSynonym   `yaml:"edTypeSynonym,omitempty"`
	Value         *ExternsValue         `yaml:"edValue,omitempty"`
	Instance      *ExternsInstance      `yaml:"edInstance,omitempty"`
	DataConstructor *ExternsDataConstructor `yaml:"edDataConstructor,omitempty"`
}

// ExternsClass is the externs-carried shape of a class declaration,
// matching §4.C-D: type arguments, member signatures as (ident, type),
// superclass constraints, functional dependencies.
type ExternsClass struct {
	Name       ClassName
	Args       []string
	Members    []TypeSignatureDeclaration
	Implies    []Constraint
	Deps       []FunctionalDependency
}

type ExternsType struct {
	Name TypeName
	Kind Kind
}

type ExternsTypeSynonym struct {
	Name   TypeName
	Params []string
	Type   Type
}

type ExternsValue struct {
	Ident Ident
	Type  Type
}

type ExternsInstance struct {
	Name  Ident
	Class Qualified[ClassName]
	Types []Type
	Deps  []Constraint
}

type ExternsDataConstructor struct {
	Name   ConstructorName
	Fields []Type
}
