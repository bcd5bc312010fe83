package desugar

import (
	"sort"

	"tcdesugar/ast"
	"tcdesugar/externs"
	"tcdesugar/symbols"
)

// Run is the pass's single entry point (§4's overall shape, mirroring the
// teacher's processors.Compiler top-level Compile loop in
// processors/compiler.go: externs are hydrated once, then every module is
// desugared independently and errors are collected rather than aborting
// the whole run on the first module that fails).
func Run(externsFiles []ast.ExternsFile, modules []*ast.Module) ([]*ast.Module, error) {
	table := externs.Hydrate(externsFiles)
	agg := &MultipleErrors{}

	out := make([]*ast.Module, 0, len(modules))
	for _, m := range modules {
		desugared, err := Pass(m, table)
		if err != nil {
			agg.Add(m.Name, err)
			continue
		}
		out = append(out, desugared)
	}

	if agg.HasErrors() {
		return out, agg
	}
	return out, nil
}

// Pass desugars one module in place (returning the same *ast.Module,
// mutated): classes are processed before instances (§4's ordering
// requirement, since an instance must find its class already recorded in
// table), accumulating replacement declarations and any new export refs.
func Pass(m *ast.Module, table symbols.MemberMap) (*ast.Module, error) {
	if !m.HasExplicitExports() {
		return nil, internalErrorf("module %s has no explicit export list", m.Name)
	}
	decls := classesFirst(m.Decls)

	var newDecls []ast.Declaration
	var newExports []ast.ExportRef

	for _, d := range decls {
		switch v := ast.Unwrap(d).(type) {
		case ast.TypeClassDeclaration:
			newDecls = append(newDecls, desugarClass(m.Name, v, table)...)

		case ast.TypeInstanceDeclaration:
			replacement, ref, err := desugarInstance(m.Name, v, table, m)
			if err != nil {
				return nil, err
			}
			newDecls = append(newDecls, replacement...)
			if ref != nil {
				newExports = append(newExports, *ref)
			}

		case ast.ForeignInstanceDeclaration:
			newDecls = append(newDecls, d)
			if ref, ok := instanceExportRef(m.Name, m, v.Name, v.Class, v.Types); ok {
				newExports = append(newExports, ref)
			}

		default:
			newDecls = append(newDecls, d)
		}
	}

	if len(newExports) > 0 {
		m.AddExports(newExports...)
	}

	m.Decls = newDecls
	return m, nil
}

// classesFirst stably reorders decls so every TypeClassDeclaration
// precedes every TypeInstanceDeclaration, preserving relative order
// within each group and leaving every other declaration kind where it
// already was relative to its neighbors of the same priority.
func classesFirst(decls []ast.Declaration) []ast.Declaration {
	out := append([]ast.Declaration(nil), decls...)
	priority := func(d ast.Declaration) int {
		switch ast.Unwrap(d).(type) {
		case ast.TypeClassDeclaration:
			return 0
		case ast.TypeInstanceDeclaration:
			return 2
		default:
			return 1
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return priority(out[i]) < priority(out[j])
	})
	return out
}
