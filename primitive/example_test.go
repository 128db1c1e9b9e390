package primitive_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eqsearch/primitive"
)

// ExampleKind_Eval demonstrates strict-mode evaluation of a partial function:
// sqrt succeeds on its natural domain and fails loudly outside it.
func ExampleKind_Eval() {
	k, _ := primitive.Lookup("sqrt")

	v, err := k.Eval(primitive.StrictDomain, 0, 4)
	fmt.Println(v, err)

	_, err = k.Eval(primitive.StrictDomain, 0, -1)
	fmt.Println(errors.Is(err, primitive.ErrNumericDomain))
	// Output:
	// 2 <nil>
	// true
}

// ExampleKinds enumerates the binary slice of the catalogue, the way a tree
// builder would when proposing a new internal node.
func ExampleKinds() {
	for _, k := range primitive.BinaryKinds() {
		fmt.Printf("%s/%d ", k, k.Arity())
	}
	fmt.Println()
	// Output:
	// +/2 -/2 */2 //2 **/2
}
