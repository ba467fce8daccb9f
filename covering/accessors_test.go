package covering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/covlath/covering"
)

// ------------------------------------------------------------------------
// 1. Galois and deck-group queries.
// ------------------------------------------------------------------------

func TestInducedIsGalois(t *testing.T) {
	cov := s3Covering(t)

	galois, err := cov.InducedIsGalois(covering.ByIndex(1))
	require.NoError(t, err)
	assert.False(t, galois, "the reflection class has three conjugates")

	galois, err = cov.InducedIsGalois(covering.ByIndex(2))
	require.NoError(t, err)
	assert.True(t, galois, "the rotation subgroup is normal")

	_, err = cov.InducedIsGalois()
	assert.Error(t, err, "the query needs a class reference")
}

func TestInducedIsCyclic(t *testing.T) {
	cov := s3Covering(t)

	cyc, err := cov.InducedIsCyclic(covering.ByIndex(2))
	require.NoError(t, err)
	assert.True(t, cyc, "S3/C3 has order 2")

	cyc, err = cov.InducedIsCyclic(covering.ByIndex(1))
	require.NoError(t, err)
	assert.False(t, cyc, "non-Galois steps are never cyclic")

	// Cyclic implies Galois, across the whole lattice.
	for pos := range cov.Overview() {
		cyc, err := cov.InducedIsCyclic(covering.ByIndex(pos))
		require.NoError(t, err)
		if !cyc {
			continue
		}
		galois, err := cov.InducedIsGalois(covering.ByIndex(pos))
		require.NoError(t, err)
		assert.True(t, galois, "class %d", pos)
	}
}

func TestInducedAutomorphisms(t *testing.T) {
	cov := s3Covering(t)

	// A reflection is self-normalizing: no deck transformations.
	deck, err := cov.InducedAutomorphisms(covering.ByIndex(1))
	require.NoError(t, err)
	assert.Equal(t, 1, deck.Order())

	// The normal C3 gives deck group S3/C3 of order [N(H):H] = 2.
	deck, err = cov.InducedAutomorphisms(covering.ByIndex(2))
	require.NoError(t, err)
	assert.Equal(t, 2, deck.Order())
	assert.True(t, deck.IsCyclic())
}

// ------------------------------------------------------------------------
// 2. Relative references (K, H).
// ------------------------------------------------------------------------

func TestRelativeReference_NoContainment(t *testing.T) {
	cov := s3Covering(t)

	// No conjugate of C3 fits inside an order-2 subgroup.
	_, err := cov.Genus(covering.ByIndex(2), covering.ByIndex(1))
	assert.ErrorIs(t, err, covering.ErrNoContainment)
}

func TestRelativeReference_TrivialInsideRotation(t *testing.T) {
	cov := s3Covering(t)

	// X relative to X_{C3}: a degree-2 step with genus 2 upstairs.
	deg, err := cov.InducedDegree(covering.ByIndex(0), covering.ByIndex(2))
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	genus, err := cov.Genus(covering.ByIndex(0), covering.ByIndex(2))
	require.NoError(t, err)
	assertValue(t, 2, genus, "matches the direct degree-6 computation")
}

func TestAccessors_TooManyRefs(t *testing.T) {
	cov := c4Covering(t)
	refs := []covering.ClassRef{
		covering.ByIndex(0), covering.ByIndex(1), covering.ByIndex(2),
	}

	_, err := cov.Genus(refs...)
	assert.ErrorIs(t, err, covering.ErrTooManyRefs)
	_, err = cov.Ramifications(refs...)
	assert.ErrorIs(t, err, covering.ErrTooManyRefs)
	_, err = cov.TotalRamifications(refs...)
	assert.ErrorIs(t, err, covering.ErrTooManyRefs)
	_, err = cov.InducedIsGalois(refs...)
	assert.ErrorIs(t, err, covering.ErrTooManyRefs)
}

// ------------------------------------------------------------------------
// 3. Bundled ramification views.
// ------------------------------------------------------------------------

func TestRamifications_Bundles(t *testing.T) {
	cov := c4Covering(t)

	// (K): [ramification of X over X_K, ramification of X_K over Y].
	rams, err := cov.Ramifications(covering.ByIndex(1))
	require.NoError(t, err)
	require.Len(t, rams, 2)
	assertValue(t, 2, rams[0][2], "two order-2 points of X over X_{C2}")
	assertValue(t, 2, rams[1][2], "two index-2 points of X_{C2} over Y")

	// (K, H): [quotient of K, step K over H, induced of H].
	rams, err = cov.Ramifications(covering.ByIndex(0), covering.ByIndex(1))
	require.NoError(t, err)
	require.Len(t, rams, 3)
	assert.Empty(t, rams[0], "X ramifies over nothing")
	assertValue(t, 2, rams[1][2])
	assertValue(t, 2, rams[2][2])
}

func TestTotalRamifications_Bundles(t *testing.T) {
	cov := c4Covering(t)

	totals, err := cov.TotalRamifications(covering.ByIndex(1))
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assertValue(t, 2, totals[0])
	assertValue(t, 2, totals[1])

	totals, err = cov.TotalRamifications(covering.ByIndex(0), covering.ByIndex(1))
	require.NoError(t, err)
	require.Len(t, totals, 3)
	assertValue(t, 0, totals[0])
	assertValue(t, 2, totals[1])
	assertValue(t, 2, totals[2])
}

// ------------------------------------------------------------------------
// 4. Accessor results are detached copies.
// ------------------------------------------------------------------------

func TestAccessors_ReturnCopies(t *testing.T) {
	cov := c4Covering(t)

	ram, err := cov.QuotientRamification()
	require.NoError(t, err)
	delete(ram, 4)

	again, err := cov.QuotientRamification()
	require.NoError(t, err)
	assertValue(t, 2, again[4], "mutating a returned map must not leak inward")
}
