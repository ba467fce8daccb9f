package covering

import (
	"github.com/katalvlaran/covlath/perm"
)

// RamificationTypes enumerates the conjugacy classes of subgroups of g that
// can occur as point stabilizers of a group acting on a Riemann surface:
// exactly the classes of cyclic subgroups, in the toolkit's canonical order.
// The trivial class (order 1, always first) denotes unramified points and is
// dropped unless includeTrivial is set.
//
// Deterministic for a given group; returns an empty slice only when g is
// trivial and includeTrivial is false.
func RamificationTypes(g *perm.Group, includeTrivial bool) ([]RamificationType, error) {
	if g == nil {
		return nil, ErrInvalidGroup
	}
	var types []RamificationType
	for _, cls := range g.SubgroupClasses() {
		if !cls.Representative().IsCyclic() {
			continue
		}
		if cls.Order() == 1 && !includeTrivial {
			continue
		}
		types = append(types, cls)
	}

	return types, nil
}
