package cultural

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	assert.NotEmpty(t, catalog.Sayings)
	assert.NotEmpty(t, catalog.Periods)
	assert.NotEmpty(t, catalog.Occupations)
}

func TestSayingsForHeritage(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	for _, heritage := range []string{"hakka", "hokkien", "cantonese"} {
		sayings := catalog.SayingsForHeritage(heritage)
		require.NotEmpty(t, sayings, heritage)
		for _, s := range sayings {
			assert.Equal(t, heritage, s.Heritage)
			assert.NotEmpty(t, s.Chinese)
			assert.NotEmpty(t, s.English)
		}
	}

	assert.Empty(t, catalog.SayingsForHeritage("teochew"))
}

func TestPeriodForYear(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	period, ok := catalog.PeriodForYear(1900)
	require.True(t, ok)
	assert.LessOrEqual(t, period.StartYear, 1900)
	assert.GreaterOrEqual(t, period.EndYear, 1900)

	_, ok = catalog.PeriodForYear(2525)
	assert.False(t, ok)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	results := catalog.Search("HAKKA")
	assert.NotEmpty(t, results.Sayings)

	empty := catalog.Search("xyzzy-nothing-matches")
	assert.Empty(t, empty.Sayings)
	assert.Empty(t, empty.Periods)
	assert.Empty(t, empty.Occupations)
}

func TestSearchBlankQueryReturnsEverything(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	results := catalog.Search("   ")
	assert.Len(t, results.Sayings, len(catalog.Sayings))
	assert.Len(t, results.Periods, len(catalog.Periods))
	assert.Len(t, results.Occupations, len(catalog.Occupations))
}
