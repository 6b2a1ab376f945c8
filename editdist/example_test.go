package editdist_test

import (
	"fmt"

	"github.com/katalvlaran/seqdist/editdist"
)

// ExampleDistance demonstrates the canonical trace-clustering scenario:
// two traces differing in a single token, and a fully disjoint one.
//
// Scenario:
//
//	a = [a b c]
//	b = [a b d]   → one substitution / max(3,3)
//	c = [x y z]   → three substitutions / max(3,3)
//
// Complexity: O(m·n) time per pair.
func ExampleDistance() {
	a := []string{"a", "b", "c"}
	b := []string{"a", "b", "d"}
	c := []string{"x", "y", "z"}

	opts := editdist.DefaultOptions()
	fmt.Printf("d(a,b)=%.3f\n", editdist.Distance(a, b, &opts))
	fmt.Printf("d(a,c)=%.3f\n", editdist.Distance(a, c, &opts))
	fmt.Printf("d(a,a)=%.3f\n", editdist.Distance(a, a, &opts))
	// Output:
	// d(a,b)=0.333
	// d(a,c)=1.000
	// d(a,a)=0.000
}

// ExampleRaw demonstrates the unnormalized edit count.
func ExampleRaw() {
	fmt.Println(editdist.Raw(
		[]string{"open", "read", "close"},
		[]string{"open", "write", "flush", "close"},
	))
	// Output:
	// 2
}
