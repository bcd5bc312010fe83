package ast

// ExportRef is one entry of a module's export list. Only the variants
// this pass reads or writes are modeled: type, type-class and
// type-instance references; value and other export kinds are carried as
// OtherExportRef so round-tripping a module never drops entries the pass
// does not care about.
type ExportRef interface {
	isExportRef()
}

type TypeRef struct {
	Ann  SourceAnn
	Name TypeName
}

func (TypeRef) isExportRef() {}

type TypeClassRef struct {
	Ann  SourceAnn
	Name ClassName
}

func (TypeClassRef) isExportRef() {}

// TypeInstanceRef is the export entry synthesized by §4.F's "Export
// reference computation" and collected by component G.
type TypeInstanceRef struct {
	Ann  SourceAnn
	Name Ident
}

func (TypeInstanceRef) isExportRef() {}

// OtherExportRef carries any export-list entry this pass does not inspect
// (value refs, operator refs, re-exports) so the export list can be
// round-tripped losslessly.
type OtherExportRef struct {
	Ann     SourceAnn
	Kind    string
	Payload any
}

func (OtherExportRef) isExportRef() {}

// Module is `Module(sourceSpan, comments, name, decls, exports)` from §6.
// Exports is a pointer so "no explicit export list" (§4.G: "If the module
// lacks an explicit export list, the pass fails") is distinguishable from
// "explicit, empty export list".
type Module struct {
	Span     SourceSpan
	Comments []Comment
	Name     ModuleName
	Decls    []Declaration
	Exports  *[]ExportRef
}

// HasExplicitExports reports whether the module carries an export list at
// all, independent of whether that list is empty.
func (m *Module) HasExplicitExports() bool { return m.Exports != nil }

// ExportsTypeClass reports whether ref names a TypeClassRef for class in
// m's export list, used by §4.F's local-visibility test.
func (m *Module) ExportsTypeClass(class ClassName) bool {
	if m.Exports == nil {
		return false
	}
	for _, e := range *m.Exports {
		if r, ok := e.(TypeClassRef); ok && r.Name == class {
			return true
		}
	}
	return false
}

// ExportsType reports whether m's export list contains a TypeRef for name.
func (m *Module) ExportsType(name TypeName) bool {
	if m.Exports == nil {
		return false
	}
	for _, e := range *m.Exports {
		if r, ok := e.(TypeRef); ok && r.Name == name {
			return true
		}
	}
	return false
}

// AddExports appends refs to m's export list. The caller (component G)
// must ensure m.Exports is non-nil first.
func (m *Module) AddExports(refs ...ExportRef) {
	*m.Exports = append(*m.Exports, refs...)
}
