// Package perm_test validates group construction, the subgroup lattice and
// its conjugacy classes on small benchmark groups: C4, V4, S3, D4 (order 8).
package perm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/covlath/perm"
)

// cyclic returns the cyclic group of order n acting on n points.
func cyclic(t *testing.T, n int) *perm.Group {
	t.Helper()
	cyc := make([]int, n)
	for i := range cyc {
		cyc[i] = i + 1
	}
	g, err := perm.NewGroup(n, mustCycles(t, n, cyc))
	require.NoError(t, err)

	return g
}

// sym3 returns S3 = ⟨(1 2 3), (1 2)⟩.
func sym3(t *testing.T) *perm.Group {
	t.Helper()
	g, err := perm.NewGroup(3, mustCycles(t, 3, []int{1, 2, 3}), mustCycles(t, 3, []int{1, 2}))
	require.NoError(t, err)

	return g
}

// dih4 returns the dihedral group of order 8 acting on the square 1-2-3-4.
func dih4(t *testing.T) *perm.Group {
	t.Helper()
	g, err := perm.NewGroup(4, mustCycles(t, 4, []int{1, 2, 3, 4}), mustCycles(t, 4, []int{1, 3}))
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Construction and element enumeration.
// ------------------------------------------------------------------------

func TestNewGroup_Validation(t *testing.T) {
	_, err := perm.NewGroup(0)
	assert.ErrorIs(t, err, perm.ErrBadDegree)

	_, err = perm.NewGroup(3, perm.Identity(4))
	assert.ErrorIs(t, err, perm.ErrDegreeMismatch)
}

func TestGroup_TrivialGroup(t *testing.T) {
	g, err := perm.NewGroup(1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Order())
	assert.True(t, g.IsTrivial())
	require.Len(t, g.SubgroupClasses(), 1)
	assert.Equal(t, 1, g.SubgroupClasses()[0].Size())
}

func TestGroup_Orders(t *testing.T) {
	assert.Equal(t, 4, cyclic(t, 4).Order())
	assert.Equal(t, 6, sym3(t).Order())
	assert.Equal(t, 8, dih4(t).Order())
}

func TestGroup_Membership(t *testing.T) {
	g := sym3(t)
	assert.True(t, g.Contains(mustCycles(t, 3, []int{1, 3, 2})))
	assert.False(t, g.Contains(perm.Identity(4)), "degree mismatch is not membership")
}

// ------------------------------------------------------------------------
// 2. Subgroup lattice and conjugacy classes.
// ------------------------------------------------------------------------

func TestSubgroupClasses_C4(t *testing.T) {
	classes := cyclic(t, 4).SubgroupClasses()
	require.Len(t, classes, 3)

	// Canonical order: trivial first, whole group last; abelian ⇒ all normal.
	orders := []int{1, 2, 4}
	for i, cls := range classes {
		assert.Equal(t, orders[i], cls.Order())
		assert.Equal(t, 1, cls.Size())
		assert.Equal(t, i, cls.Pos())
	}
}

func TestSubgroupClasses_S3(t *testing.T) {
	g := sym3(t)
	classes := g.SubgroupClasses()
	require.Len(t, classes, 4)

	assert.Equal(t, 1, classes[0].Order(), "trivial class first")
	assert.Equal(t, 2, classes[1].Order())
	assert.Equal(t, 3, classes[1].Size(), "three conjugate reflections")
	assert.Equal(t, 3, classes[2].Order())
	assert.Equal(t, 1, classes[2].Size(), "rotation subgroup is normal")
	assert.Equal(t, 6, classes[3].Order(), "whole group last")
}

func TestSubgroupClasses_D4(t *testing.T) {
	g := dih4(t)
	classes := g.SubgroupClasses()
	require.Len(t, classes, 8)
	require.Len(t, g.Subgroups(), 10)

	total := 0
	for _, cls := range classes {
		total += cls.Size()
	}
	assert.Equal(t, 10, total, "classes partition the subgroups")
}

func TestClassOf(t *testing.T) {
	g := sym3(t)
	refl := g.Elements()[1] // some non-identity element; find a transposition
	for _, e := range g.Elements() {
		if e.Order() == 2 {
			refl = e
			break
		}
	}
	sub, err := perm.NewGroup(3, refl)
	require.NoError(t, err)
	cls, err := g.ClassOf(sub)
	require.NoError(t, err)
	assert.Equal(t, 2, cls.Order())
	assert.Equal(t, 3, cls.Size())

	// A subgroup of a different degree is not a subgroup of g.
	other := cyclic(t, 4)
	_, err = g.ClassOf(other)
	assert.ErrorIs(t, err, perm.ErrNotSubgroup)
}

// ------------------------------------------------------------------------
// 3. Normalizer, index, intersection.
// ------------------------------------------------------------------------

func TestNormalizerAndIndex_S3(t *testing.T) {
	g := sym3(t)
	classes := g.SubgroupClasses()

	refl := classes[1].Representative()
	n, err := g.Normalizer(refl)
	require.NoError(t, err)
	assert.Equal(t, 2, n.Order(), "a reflection is self-normalizing in S3")

	rot := classes[2].Representative()
	n, err = g.Normalizer(rot)
	require.NoError(t, err)
	assert.Equal(t, 6, n.Order(), "the rotation subgroup is normal")

	idx, err := g.Index(rot)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	_, err = g.Index(cyclic(t, 4))
	assert.ErrorIs(t, err, perm.ErrNotSubgroup)
}

func TestIntersection(t *testing.T) {
	g := dih4(t)
	classes := g.SubgroupClasses()
	var c4, v4 *perm.Group
	for _, cls := range classes {
		if cls.Order() != 4 {
			continue
		}
		if cls.Representative().IsCyclic() {
			c4 = cls.Representative()
		} else if v4 == nil {
			v4 = cls.Representative()
		}
	}
	require.NotNil(t, c4)
	require.NotNil(t, v4)

	inter, err := g.Intersection(c4, v4)
	require.NoError(t, err)
	assert.Equal(t, 2, inter.Order(), "C4 ∩ V4 is the center of D4")
}

// ------------------------------------------------------------------------
// 4. Factor groups via the coset action.
// ------------------------------------------------------------------------

func TestFactorGroup_S3(t *testing.T) {
	g := sym3(t)
	classes := g.SubgroupClasses()

	rot := classes[2].Representative()
	q, err := g.FactorGroup(rot)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Order())
	assert.True(t, q.IsCyclic())

	refl := classes[1].Representative()
	_, err = g.FactorGroup(refl)
	assert.ErrorIs(t, err, perm.ErrNotNormal)
}

func TestFactorGroup_ByWholeGroup(t *testing.T) {
	g := cyclic(t, 4)
	q, err := g.FactorGroup(g)
	require.NoError(t, err)
	assert.True(t, q.IsTrivial())
}

func TestFactorGroup_C4ByC2(t *testing.T) {
	g := cyclic(t, 4)
	c2 := g.SubgroupClasses()[1].Representative()
	q, err := g.FactorGroup(c2)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Order())
	assert.True(t, q.IsCyclic())
}

func TestIsNormal(t *testing.T) {
	g := sym3(t)
	assert.True(t, g.IsNormal(g.SubgroupClasses()[2].Representative()))
	assert.False(t, g.IsNormal(g.SubgroupClasses()[1].Representative()))
}
