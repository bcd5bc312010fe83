package symbols

import (
	"testing"

	"tcdesugar/ast"
)

func TestMemberMap_InsertLookup(t *testing.T) {
	m := NewMemberMap()
	m.Insert("Test.Module", "Show", TypeClassData{Args: []string{"a"}})

	data, ok := m.Lookup(ast.Qualify[ast.ClassName]("Test.Module", "Show"))
	if !ok {
		t.Fatalf("expected Show to be found")
	}
	if len(data.Args) != 1 || data.Args[0] != "a" {
		t.Fatalf("unexpected class data: %+v", data)
	}

	if _, ok := m.Lookup(ast.Unqualified[ast.ClassName]("Show")); ok {
		t.Fatalf("did not expect an unqualified lookup to find a class inserted under a module")
	}
	if m.Len() != 1 {
		t.Fatalf("expected Len() == 1, got %d", m.Len())
	}
}

func TestMemberMap_UnionIsRightBiased(t *testing.T) {
	left := NewMemberMap()
	left.Insert("Test.Module", "Eq", TypeClassData{Args: []string{"a"}})
	left.Insert("Test.Module", "Ord", TypeClassData{Args: []string{"a"}})

	right := NewMemberMap()
	right.Insert("Test.Module", "Eq", TypeClassData{Args: []string{"a", "b"}})

	merged := left.Union(right)
	if merged.Len() != 2 {
		t.Fatalf("expected both classes to survive the union, got %d", merged.Len())
	}

	eq, ok := merged.Lookup(ast.Qualify[ast.ClassName]("Test.Module", "Eq"))
	if !ok {
		t.Fatalf("expected Eq to be present")
	}
	if len(eq.Args) != 2 {
		t.Fatalf("expected right side's Eq to win the collision, got %+v", eq)
	}

	if _, ok := merged.Lookup(ast.Qualify[ast.ClassName]("Test.Module", "Ord")); !ok {
		t.Fatalf("expected Ord from the left side to survive untouched")
	}

	if left.Len() != 2 || right.Len() != 1 {
		t.Fatalf("Union must not mutate either input map")
	}
}

func TestSeed_KnowsPrimitiveClasses(t *testing.T) {
	seed := Seed()
	if _, ok := seed.Lookup(ast.Qualify[ast.ClassName](ast.PrimModuleName, "Partial")); !ok {
		t.Fatalf("expected Prim.Partial to be seeded")
	}
	fail, ok := seed.Lookup(ast.Qualify[ast.ClassName](ast.PrimModuleName, "Fail"))
	if !ok {
		t.Fatalf("expected Prim.Fail to be seeded")
	}
	if len(fail.Args) != 1 || fail.Args[0] != "message" {
		t.Fatalf("unexpected Fail class data: %+v", fail)
	}
}
