package desugar

import (
	"fmt"

	"tcdesugar/ast"
)

// superclassName is the deterministic scheme §6 requires: a stable
// function of the superclass's qualified name and its positional index,
// used both as the record label in the dictionary-type synonym (§4.E
// step 2) and as the field name of the superclass thunk synthesized by
// instance desugaring (§4.F step 7). Scenario 2 of §8 pins the exact
// shape: the first (index 0) superclass Foo produces the label "Foo0".
func superclassName(class ast.Qualified[ast.ClassName], index int) string {
	return fmt.Sprintf("%s%d", class.Name, index)
}

// unusedParam is the reserved identifier labeling the ignored parameter
// of a superclass thunk (§6): `λ__unused. DeferredDictionary(...)`.
const unusedParam ast.Ident = "__unused"
