package heritage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSelection() Selection {
	return Selection{
		Ethnicity:    "hokkien",
		Region:       "Quanzhou",
		TimePeriod:   "1920s-1940s",
		Relationship: "grandmother",
		Occupation:   "Tea Merchant",
		Traits:       "gentle and sharp-witted",
	}
}

func TestNewPersonaDerivesNameFromRelationship(t *testing.T) {
	persona := NewPersona(validSelection())

	assert.Equal(t, "Your grandmother", persona.Name)
	assert.Equal(t, "hokkien", persona.Ethnicity)
	assert.Equal(t, "Quanzhou", persona.Region)
	assert.Equal(t, "1920s-1940s", persona.TimePeriod)
	assert.Equal(t, "Tea Merchant", persona.Occupation)
	assert.Equal(t, "gentle and sharp-witted", persona.Traits)
}

func TestValidateAcceptsCatalogSelection(t *testing.T) {
	require.NoError(t, Validate(validSelection()))
}

func TestValidateAcceptsEmptyOptionalFields(t *testing.T) {
	sel := validSelection()
	sel.Region = ""
	sel.TimePeriod = ""
	sel.Occupation = ""
	sel.Traits = ""
	require.NoError(t, Validate(sel))
}

func TestValidateRejectsUnknownFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Selection)
		field  string
	}{
		{"empty ethnicity", func(s *Selection) { s.Ethnicity = "" }, "ethnicity"},
		{"unknown ethnicity", func(s *Selection) { s.Ethnicity = "teochew" }, "ethnicity"},
		{"foreign region", func(s *Selection) { s.Region = "Meizhou" }, "region"},
		{"unknown time period", func(s *Selection) { s.TimePeriod = "1980s-2000s" }, "timePeriod"},
		{"empty relationship", func(s *Selection) { s.Relationship = "" }, "relationship"},
		{"unknown relationship", func(s *Selection) { s.Relationship = "uncle" }, "relationship"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sel := validSelection()
			tc.mutate(&sel)

			err := Validate(sel)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestRelationshipLabelsCoverAllRelationships(t *testing.T) {
	for _, rel := range []string{"great-grandfather", "great-grandmother", "grandfather", "grandmother"} {
		label, ok := RelationshipLabels[rel]
		require.True(t, ok, rel)
		assert.NotEmpty(t, label.Chars)
		assert.NotEmpty(t, label.Mandarin)
		assert.NotEmpty(t, label.Cantonese)
		assert.NotEmpty(t, label.Hokkien)
		assert.NotEmpty(t, label.Hakka)
	}
}

func TestEthnicityLookup(t *testing.T) {
	opt, ok := EthnicityBySlug("cantonese")
	require.True(t, ok)
	assert.True(t, opt.HasRegion("Taishan"))
	assert.False(t, opt.HasRegion("Meizhou"))

	_, ok = EthnicityBySlug("teochew")
	assert.False(t, ok)
}
