package personalization

import (
	"testing"

	"coachly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testDefaults() models.AgencyConfig {
	return models.AgencyConfig{
		AgencyName:     "Coachly",
		PrimaryColor:   "#2ff40a",
		SecondaryColor: "#25d408",
		LegalInfo: models.LegalInfo{
			CompanyName: "Coachly SAS",
			Siret:       "000 000 000 00000",
			Address:     "12 rue des Lilas, 75011 Paris",
		},
		HomeSections: []models.HomeSection{
			{ID: "hero", Label: "Accueil", Enabled: true, Locked: true},
			{ID: "services", Label: "Nos services", Enabled: true},
			{ID: "footer", Label: "Pied de page", Enabled: true, Locked: true},
		},
	}
}

func TestMergeNilPatchReturnsDefaults(t *testing.T) {
	d := testDefaults()
	merged := Merge(d, nil)
	assert.Equal(t, d, merged)
}

func TestMergeScalarOverride(t *testing.T) {
	d := testDefaults()
	merged := Merge(d, &models.AgencyConfigPatch{
		PrimaryColor: strPtr("#ff0000"),
	})

	assert.Equal(t, "#ff0000", merged.PrimaryColor)
	assert.Equal(t, "#25d408", merged.SecondaryColor)
}

func TestMergeExplicitEmptyStringWins(t *testing.T) {
	// Presence means "key exists remotely", so an explicit empty value
	// overrides the default.
	d := testDefaults()
	merged := Merge(d, &models.AgencyConfigPatch{
		AgencyName: strPtr(""),
	})
	assert.Equal(t, "", merged.AgencyName)
}

func TestMergeLegalInfoPartial(t *testing.T) {
	d := testDefaults()
	merged := Merge(d, &models.AgencyConfigPatch{
		LegalInfo: &models.LegalInfoPatch{
			Siret: strPtr("123"),
		},
	})

	assert.Equal(t, "123", merged.LegalInfo.Siret)
	assert.Equal(t, "Coachly SAS", merged.LegalInfo.CompanyName)
	assert.Equal(t, "12 rue des Lilas, 75011 Paris", merged.LegalInfo.Address)
}

func TestMergeSectionListIsAtomic(t *testing.T) {
	d := testDefaults()
	remote := []models.HomeSection{
		{ID: "services", Label: "Services", Enabled: false},
		{ID: "blog", Label: "Blog", Enabled: true},
	}
	merged := Merge(d, &models.AgencyConfigPatch{HomeSections: remote})

	// The remote list replaces the default list in full; no pointwise
	// merge with the defaults.
	assert.Equal(t, remote, merged.HomeSections)
}

func TestMergeEmptySectionListKeepsDefaults(t *testing.T) {
	d := testDefaults()
	merged := Merge(d, &models.AgencyConfigPatch{HomeSections: []models.HomeSection{}})
	assert.Equal(t, d.HomeSections, merged.HomeSections)
}

func TestMergeLockedSectionsCannotBeDisabled(t *testing.T) {
	d := testDefaults()
	merged := Merge(d, &models.AgencyConfigPatch{
		HomeSections: []models.HomeSection{
			{ID: "hero", Label: "Accueil", Enabled: false},
			{ID: "services", Label: "Services", Enabled: false},
		},
	})

	require.Len(t, merged.HomeSections, 2)
	assert.True(t, merged.HomeSections[0].Enabled, "hero is locked by the defaults table")
	assert.True(t, merged.HomeSections[0].Locked)
	assert.False(t, merged.HomeSections[1].Enabled)
}

func TestMergeIsIdempotent(t *testing.T) {
	d := testDefaults()
	patch := &models.AgencyConfigPatch{
		PrimaryColor: strPtr("#ff0000"),
		LegalInfo:    &models.LegalInfoPatch{Siret: strPtr("123")},
		HomeSections: []models.HomeSection{{ID: "services", Label: "Services", Enabled: true}},
	}

	once := Merge(d, patch)
	twice := Merge(once, patch)
	assert.Equal(t, once, twice)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	d := testDefaults()
	patch := &models.AgencyConfigPatch{
		HomeSections: []models.HomeSection{{ID: "hero", Label: "Accueil", Enabled: false}},
	}

	merged := Merge(d, patch)

	assert.False(t, patch.HomeSections[0].Enabled, "patch slice must not be written through")
	assert.Equal(t, testDefaults(), d)

	// The merged value owns its own slice.
	merged.HomeSections[0].Label = "changed"
	assert.Equal(t, "Accueil", patch.HomeSections[0].Label)
}

func TestDefaultsReturnsFreshCopy(t *testing.T) {
	a := Defaults()
	a.HomeSections[0].Enabled = false
	b := Defaults()
	assert.True(t, b.HomeSections[0].Enabled)
}

func TestDefaultsDocumentedColors(t *testing.T) {
	d := Defaults()
	assert.Equal(t, "#2ff40a", d.PrimaryColor)
	assert.Equal(t, "#25d408", d.SecondaryColor)
}
