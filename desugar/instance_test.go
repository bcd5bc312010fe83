package desugar

import (
	"errors"
	"testing"

	"tcdesugar/ast"
	"tcdesugar/symbols"
)

const testModule ast.ModuleName = "Test.Module"

func strType(name string) ast.Type {
	return ast.TypeConstructor{Name: ast.Unqualified(ast.TypeName(name))}
}

func qualifiedVar(member ast.Ident) ast.Expr {
	return ast.Var{Name: ast.Qualify(testModule, member)}
}

// scenario 1: class + instance, no superclasses.
func TestDesugarInstance_NoSuperclass(t *testing.T) {
	class := ast.TypeClassDeclaration{
		Name: "Foo",
		Args: []string{"a"},
		Members: []ast.TypeSignatureDeclaration{
			{Ident: "foo", Type: ast.FunctionType{Arg: ast.TypeVar{Name: "a"}, Result: ast.TypeVar{Name: "a"}}},
		},
	}
	table := symbols.NewMemberMap()
	classDecls := desugarClass(testModule, class, table)
	if len(classDecls) != 3 {
		t.Fatalf("expected 3 declarations (class, synonym, 1 accessor), got %d", len(classDecls))
	}
	synonym, ok := classDecls[1].(ast.TypeSynonymDeclaration)
	if !ok {
		t.Fatalf("expected synonym at index 1, got %T", classDecls[1])
	}
	labels := ast.RowLabels(synonym.Type.(ast.RecordType).Row)
	if len(labels) != 1 || labels[0].Label != "foo" {
		t.Fatalf("unexpected synonym labels: %+v", labels)
	}

	instance := ast.TypeInstanceDeclaration{
		Name:  "fooString",
		Class: ast.Qualify(testModule, ast.ClassName("Foo")),
		Types: []ast.Type{strType("String")},
		Body: ast.ExplicitInstance{Members: []ast.Declaration{
			ast.ValueDeclaration{
				Ident: "foo",
				Binders: []ast.Binder{ast.VarBinder{Name: "s"}},
				Guarded: []ast.GuardedExpr{{Result: ast.App{
					Func: ast.App{Func: ast.Var{Name: ast.Unqualified[ast.Ident]("++")}, Arg: ast.Var{Name: ast.Unqualified[ast.Ident]("s")}},
					Arg:  ast.Var{Name: ast.Unqualified[ast.Ident]("s")},
				}}},
			},
		}},
	}

	m := &ast.Module{Name: testModule, Exports: &[]ast.ExportRef{ast.TypeClassRef{Name: "Foo"}, ast.TypeRef{Name: "String"}}}
	decls, ref, err := desugarInstance(testModule, instance, table, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref == nil || ref.Name != "fooString" {
		t.Fatalf("expected export ref for fooString, got %+v", ref)
	}
	if len(decls) != 2 {
		t.Fatalf("expected [original, dictValue], got %d decls", len(decls))
	}
	dictDecl, ok := decls[1].(ast.ValueDeclaration)
	if !ok {
		t.Fatalf("expected ValueDeclaration, got %T", decls[1])
	}
	if dictDecl.Visibility != ast.Private {
		t.Fatalf("dictionary value must be private")
	}
	typed, ok := dictDecl.Guarded[0].Result.(ast.TypedValue)
	if !ok || !typed.Checked {
		t.Fatalf("expected a checked TypedValue, got %+v", dictDecl.Guarded[0].Result)
	}
	if _, ok := typed.Value.(ast.TypeClassDictionaryConstructorApp); !ok {
		t.Fatalf("expected TypeClassDictionaryConstructorApp, got %T", typed.Value)
	}
}

// scenario 2: class with superclass.
func TestClassDesugaring_SuperclassLabel(t *testing.T) {
	decl := ast.TypeClassDeclaration{
		Name: "Sub",
		Args: []string{"a"},
		Implies: []ast.Constraint{
			{Class: ast.Unqualified(ast.ClassName("Foo")), Args: []ast.Type{ast.TypeVar{Name: "a"}}},
		},
		Members: []ast.TypeSignatureDeclaration{
			{Ident: "sub", Type: ast.TypeVar{Name: "a"}},
		},
	}
	synonym := classDictionarySynonym(decl)
	labels := ast.RowLabels(synonym.Type.(ast.RecordType).Row)
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}
	if labels[0].Label != "sub" {
		t.Fatalf("expected member label first, got %q", labels[0].Label)
	}
	if labels[1].Label != "Foo0" {
		t.Fatalf("expected superclass label Foo0, got %q", labels[1].Label)
	}
	thunk, ok := labels[1].Head.(ast.FunctionType)
	if !ok {
		t.Fatalf("expected superclass field to be a thunk, got %T", labels[1].Head)
	}
	if _, ok := thunk.Arg.(ast.RecordType); !ok {
		t.Fatalf("expected thunk argument to be Unit, got %T", thunk.Arg)
	}
}

func TestDesugarInstance_SuperclassDictionary(t *testing.T) {
	table := symbols.NewMemberMap()
	table.Insert(testModule, "Foo", symbols.TypeClassData{Args: []string{"a"}})
	table.Insert(testModule, "Sub", symbols.TypeClassData{
		Args:    []string{"a"},
		Implies: []ast.Constraint{{Class: ast.Qualify(testModule, ast.ClassName("Foo")), Args: []ast.Type{ast.TypeVar{Name: "a"}}}},
		Members: []symbols.MemberSignature{{Ident: "sub", Type: ast.TypeVar{Name: "a"}}},
	})

	instance := ast.TypeInstanceDeclaration{
		Name:  "subString",
		Class: ast.Qualify(testModule, ast.ClassName("Sub")),
		Types: []ast.Type{strType("String")},
		Body: ast.ExplicitInstance{Members: []ast.Declaration{
			ast.ValueDeclaration{Ident: "sub", Guarded: []ast.GuardedExpr{{Result: ast.LiteralExpr{Literal: ast.StringLiteral[ast.Expr]{Value: ""}}}}},
		}},
	}

	m := &ast.Module{Name: testModule, Exports: &[]ast.ExportRef{}}
	decls, _, err := desugarInstance(testModule, instance, table, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dictDecl := decls[1].(ast.ValueDeclaration)
	typed := dictDecl.Guarded[0].Result.(ast.TypedValue)
	ctor := typed.Value.(ast.TypeClassDictionaryConstructorApp)
	obj := ctor.Value.(ast.LiteralExpr).Literal.(ast.ObjectLiteral[ast.Expr])

	var foundSuper, foundSub bool
	for _, f := range obj.Fields {
		if f.Label == "Foo0" {
			foundSuper = true
			lambda, ok := f.Value.(ast.Lambda)
			if !ok || lambda.Param != unusedParam {
				t.Fatalf("expected superclass thunk lambda with param %q, got %+v", unusedParam, f.Value)
			}
			dd, ok := lambda.Body.(ast.DeferredDictionary)
			if !ok || dd.Class.Name != "Foo" {
				t.Fatalf("expected DeferredDictionary(Foo, ...), got %+v", lambda.Body)
			}
		}
		if f.Label == "sub" {
			foundSub = true
		}
	}
	if !foundSuper || !foundSub {
		t.Fatalf("expected both sub and Foo0 fields, got %+v", obj.Fields)
	}
}

// scenario 3: missing member.
func TestDesugarInstance_MissingMember(t *testing.T) {
	table := symbols.NewMemberMap()
	table.Insert(testModule, "Bar", symbols.TypeClassData{
		Members: []symbols.MemberSignature{
			{Ident: "x", Type: strType("Int")},
			{Ident: "y", Type: strType("Int")},
		},
	})
	instance := ast.TypeInstanceDeclaration{
		Name:  "barInt",
		Class: ast.Qualify(testModule, ast.ClassName("Bar")),
		Types: []ast.Type{strType("Int")},
		Body: ast.ExplicitInstance{Members: []ast.Declaration{
			ast.ValueDeclaration{Ident: "x", Guarded: []ast.GuardedExpr{{Result: ast.LiteralExpr{Literal: ast.NumericLiteral[ast.Expr]{Value: 0}}}}},
		}},
	}
	m := &ast.Module{Name: testModule, Exports: &[]ast.ExportRef{}}
	_, _, err := desugarInstance(testModule, instance, table, m)
	if err == nil {
		t.Fatalf("expected an error")
	}
	var hint *ErrorInInstanceError
	if !errors.As(err, &hint) {
		t.Fatalf("expected ErrorInInstanceError wrapper, got %T: %v", err, err)
	}
	var missing *MissingClassMemberError
	if !errors.As(err, &missing) || missing.Ident != "y" {
		t.Fatalf("expected MissingClassMemberError(y), got %v", hint.Cause)
	}
}

// scenario 4: extraneous member.
func TestDesugarInstance_ExtraneousMember(t *testing.T) {
	table := symbols.NewMemberMap()
	table.Insert(testModule, "Bar", symbols.TypeClassData{
		Members: []symbols.MemberSignature{{Ident: "x", Type: strType("Int")}},
	})
	instance := ast.TypeInstanceDeclaration{
		Name:  "barInt",
		Class: ast.Qualify(testModule, ast.ClassName("Bar")),
		Types: []ast.Type{strType("Int")},
		Body: ast.ExplicitInstance{Members: []ast.Declaration{
			ast.ValueDeclaration{Ident: "x", Guarded: []ast.GuardedExpr{{Result: ast.LiteralExpr{Literal: ast.NumericLiteral[ast.Expr]{Value: 0}}}}},
			ast.ValueDeclaration{Ident: "z", Guarded: []ast.GuardedExpr{{Result: ast.LiteralExpr{Literal: ast.NumericLiteral[ast.Expr]{Value: 1}}}}},
		}},
	}
	m := &ast.Module{Name: testModule, Exports: &[]ast.ExportRef{}}
	_, _, err := desugarInstance(testModule, instance, table, m)
	var extraneous *ExtraneousClassMemberError
	if !errors.As(err, &extraneous) || extraneous.Ident != "z" {
		t.Fatalf("expected ExtraneousClassMemberError(z), got %v", err)
	}
}

// scenario 5: member dependency chain a -> b -> c.
func TestScheduleDictionary_DependencyChain(t *testing.T) {
	table := symbols.NewMemberMap()
	table.Insert(testModule, "Baz", symbols.TypeClassData{
		Members: []symbols.MemberSignature{
			{Ident: "a", Type: strType("Int")},
			{Ident: "b", Type: strType("Int")},
			{Ident: "c", Type: strType("Int")},
		},
	})
	plus := func(l, r ast.Expr) ast.Expr {
		return ast.BinaryNoParens{Op: ast.Var{Name: ast.Unqualified[ast.Ident]("+")}, Left: l, Right: r}
	}
	instance := ast.TypeInstanceDeclaration{
		Name:  "bazInt",
		Class: ast.Qualify(testModule, ast.ClassName("Baz")),
		Types: []ast.Type{strType("Int")},
		Body: ast.ExplicitInstance{Members: []ast.Declaration{
			ast.ValueDeclaration{Ident: "a", Guarded: []ast.GuardedExpr{{Result: ast.LiteralExpr{Literal: ast.NumericLiteral[ast.Expr]{Value: 1}}}}},
			ast.ValueDeclaration{Ident: "b", Guarded: []ast.GuardedExpr{{Result: plus(qualifiedVar("a"), ast.LiteralExpr{Literal: ast.NumericLiteral[ast.Expr]{Value: 1}})}}},
			ast.ValueDeclaration{Ident: "c", Guarded: []ast.GuardedExpr{{Result: plus(qualifiedVar("b"), qualifiedVar("a"))}}},
		}},
	}
	m := &ast.Module{Name: testModule, Exports: &[]ast.ExportRef{}}
	decls, _, err := desugarInstance(testModule, instance, table, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dictDecl := decls[1].(ast.ValueDeclaration)
	typed := dictDecl.Guarded[0].Result.(ast.TypedValue)
	ctor := typed.Value.(ast.TypeClassDictionaryConstructorApp)

	// innermost: the initial record literal carries only "a" ready.
	update2, ok := ctor.Value.(ast.ObjectUpdate) // adds "c"
	if !ok {
		t.Fatalf("expected outer ObjectUpdate, got %T", ctor.Value)
	}
	if len(update2.Fields) != 1 || update2.Fields[0].Label != "c" {
		t.Fatalf("expected outer layer to add c, got %+v", update2.Fields)
	}
	update1, ok := update2.Value.(ast.ObjectUpdate) // adds "b"
	if !ok {
		t.Fatalf("expected inner ObjectUpdate, got %T", update2.Value)
	}
	if len(update1.Fields) != 1 || update1.Fields[0].Label != "b" {
		t.Fatalf("expected inner layer to add b, got %+v", update1.Fields)
	}
	initial, ok := update1.Value.(ast.LiteralExpr)
	if !ok {
		t.Fatalf("expected initial record literal, got %T", update1.Value)
	}
	obj := initial.Literal.(ast.ObjectLiteral[ast.Expr])
	var hasA bool
	for _, f := range obj.Fields {
		if f.Label == "a" {
			hasA = true
		}
	}
	if !hasA {
		t.Fatalf("expected initial layer to contain a, got %+v", obj.Fields)
	}
}

// scenario 6: mutual dependency a = b; b = a.
func TestScheduleDictionary_MutualDependency(t *testing.T) {
	table := symbols.NewMemberMap()
	table.Insert(testModule, "Baz", symbols.TypeClassData{
		Members: []symbols.MemberSignature{
			{Ident: "a", Type: strType("Int")},
			{Ident: "b", Type: strType("Int")},
		},
	})
	instance := ast.TypeInstanceDeclaration{
		Name:  "bazInt",
		Class: ast.Qualify(testModule, ast.ClassName("Baz")),
		Types: []ast.Type{strType("Int")},
		Body: ast.ExplicitInstance{Members: []ast.Declaration{
			ast.ValueDeclaration{Ident: "a", Guarded: []ast.GuardedExpr{{Result: qualifiedVar("b")}}},
			ast.ValueDeclaration{Ident: "b", Guarded: []ast.GuardedExpr{{Result: qualifiedVar("a")}}},
		}},
	}
	m := &ast.Module{Name: testModule, Exports: &[]ast.ExportRef{}}
	_, _, err := desugarInstance(testModule, instance, table, m)
	var overlap *OverlappingNamesInLetError
	if !errors.As(err, &overlap) {
		t.Fatalf("expected OverlappingNamesInLetError, got %v", err)
	}
}

// P4: export augmentation only when class/types are locally visible.
func TestInstanceExportRef_LocalVisibility(t *testing.T) {
	class := ast.Qualify(testModule, ast.ClassName("Foo"))
	m := &ast.Module{Name: testModule, Exports: &[]ast.ExportRef{}}
	if _, ok := instanceExportRef(testModule, m, "i", class, []ast.Type{strType("String")}); ok {
		t.Fatalf("expected no export ref when class is not locally visible")
	}
	m.Exports = &[]ast.ExportRef{ast.TypeClassRef{Name: "Foo"}}
	if _, ok := instanceExportRef(testModule, m, "i", class, []ast.Type{strType("String")}); ok {
		t.Fatalf("expected no export ref until type is also visible")
	}
	m.Exports = &[]ast.ExportRef{ast.TypeClassRef{Name: "Foo"}, ast.TypeRef{Name: "String"}}
	ref, ok := instanceExportRef(testModule, m, "i", class, []ast.Type{strType("String")})
	if !ok || ref.Name != "i" {
		t.Fatalf("expected export ref once class and type are both visible, got %+v, %v", ref, ok)
	}

	foreignClass := ast.Qualify(ast.ModuleName("Other.Module"), ast.ClassName("Foo"))
	if _, ok := instanceExportRef(testModule, m, "i", foreignClass, nil); !ok {
		t.Fatalf("expected foreign-module class to be always visible")
	}
}
