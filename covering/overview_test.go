package covering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/covlath/covering"
)

func TestOverview_PlaceholdersBeforeMaterialization(t *testing.T) {
	cov := c4Covering(t)
	rows := cov.Overview()
	require.Len(t, rows, 3)

	// Static columns are available immediately.
	assert.Equal(t, []int{4, 2, 1}, []int{rows[0].Degree, rows[1].Degree, rows[2].Degree})
	assert.Equal(t, []int{1, 2, 4},
		[]int{rows[0].SubgroupOrder, rows[1].SubgroupOrder, rows[2].SubgroupOrder})
	assert.Equal(t, "1", rows[0].Structure)
	assert.Equal(t, "C2", rows[1].Structure)
	assert.Equal(t, "C4", rows[2].Structure)

	// Only the whole-group class is materialized up front: it is the node
	// itself.
	assert.False(t, rows[0].Materialized)
	assert.False(t, rows[1].Materialized)
	assert.True(t, rows[2].Materialized)
	assertValue(t, 0, rows[2].Genus)
	assertValue(t, 6, rows[2].QuotientTotal)
}

func TestOverview_TracksLazyConstruction(t *testing.T) {
	cov := c4Covering(t)

	_, err := cov.Intermediate(covering.ByIndex(1))
	require.NoError(t, err)

	rows := cov.Overview()
	assert.False(t, rows[0].Materialized, "untouched classes stay placeholders")
	assert.True(t, rows[1].Materialized)
	assertValue(t, 0, rows[1].Genus)
	assertValue(t, 2, rows[1].InducedTotal)
}

func TestMaterializeAll(t *testing.T) {
	cov := s3Covering(t)
	require.NoError(t, cov.MaterializeAll())

	rows := cov.Overview()
	require.Len(t, rows, 4)
	for _, row := range rows {
		assert.True(t, row.Materialized, "class %d", row.Pos)
	}
	assert.Equal(t, "1", rows[0].Structure)
	assert.Equal(t, "C2", rows[1].Structure)
	assert.Equal(t, 3, rows[1].ClassSize)
	assert.Equal(t, "C3", rows[2].Structure)
	assert.Equal(t, "S3", rows[3].Structure)

	// Hand-checked genus column: X, X_{C2}, X_{C3}, Y.
	assertValue(t, 2, rows[0].Genus)
	assertValue(t, 1, rows[1].Genus)
	assertValue(t, 0, rows[2].Genus)
	assertValue(t, 0, rows[3].Genus)

	// Subsequent lookups are cache hits returning the very same nodes.
	for pos := range rows {
		first, err := cov.Intermediate(covering.ByIndex(pos))
		require.NoError(t, err)
		second, err := cov.Intermediate(covering.ByIndex(pos))
		require.NoError(t, err)
		assert.Same(t, first, second)
	}
}
