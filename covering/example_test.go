package covering_test

import (
	"fmt"

	"github.com/katalvlaran/covlath/covering"
	"github.com/katalvlaran/covlath/perm"
	"github.com/katalvlaran/covlath/symbolic"
)

// ExampleNewCovering models z ↦ z⁴ on the Riemann sphere: C4 acting with
// two totally ramified points (0 and ∞) over a genus-0 quotient.
func ExampleNewCovering() {
	r, _ := perm.FromCycles(4, [][]int{{1, 2, 3, 4}})
	g, _ := perm.NewGroup(4, r)

	cov, _ := covering.NewCovering(g,
		covering.WithQuotientGenus(symbolic.Int(0)),
		covering.WithSignature(symbolic.Int(0), symbolic.Int(2)))

	total, _ := cov.QuotientTotalRamification()
	genus, _ := cov.Genus(covering.ByIndex(0)) // the covering surface X

	fmt.Println("total ramification:", total)
	fmt.Println("genus of X:", genus)
	// Output:
	// total ramification: 6
	// genus of X: 0
}

// ExampleCovering_Intermediate walks one step of the lattice of an S3
// covering: the non-normal degree-3 quotient by a reflection.
func ExampleCovering_Intermediate() {
	rot, _ := perm.FromCycles(3, [][]int{{1, 2, 3}})
	refl, _ := perm.FromCycles(3, [][]int{{1, 2}})
	g, _ := perm.NewGroup(3, rot, refl)

	cov, _ := covering.NewCovering(g,
		covering.WithQuotientGenus(symbolic.Int(0)),
		covering.WithSignature(symbolic.Int(2), symbolic.Int(2)))

	node, _ := cov.Intermediate(covering.ByIndex(1)) // the reflection class
	genus, _ := node.Genus()
	degree, _ := cov.InducedDegree(covering.ByIndex(1))
	galois, _ := cov.InducedIsGalois(covering.ByIndex(1))

	fmt.Println("degree:", degree)
	fmt.Println("genus:", genus)
	fmt.Println("galois:", galois)
	// Output:
	// degree: 3
	// genus: 1
	// galois: false
}
