package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProd_Defaults(t *testing.T) {
	spec := Spec{Domain: MainDomain, Stage: StageProd}
	assert.Equal(t, "naturism.is", *spec.ApexFQDN())
	assert.Equal(t, "www.naturism.is", *spec.SiteFQDN())
}

func TestSiteName_AlwaysWwwOfApex(t *testing.T) {
	for _, d := range []string{"example.com", "naturism.is", "deep.sub.example.org"} {
		spec := Spec{Domain: d, Stage: StageProd}
		assert.Equal(t, d, *spec.ApexFQDN())
		assert.Equal(t, "www."+d, *spec.SiteFQDN())
	}
}

func TestDev_MustPrefix(t *testing.T) {
	// Panic if no DevPrefix for dev
	assert.Panics(t, func() { _ = Spec{Domain: MainDomain, Stage: StageDev}.ApexFQDN() })
	// OK when DevPrefix provided
	spec := Spec{Domain: MainDomain, Stage: StageDev, DevPrefix: "preview"}
	assert.Equal(t, "preview.naturism.is", *spec.ApexFQDN())
	assert.Equal(t, "www.preview.naturism.is", *spec.SiteFQDN())
}

func TestProd_RejectsPrefix(t *testing.T) {
	assert.Panics(t, func() { _ = Spec{Domain: MainDomain, Stage: StageProd, DevPrefix: "x"}.ApexFQDN() })
}

func TestZoneDomain_IgnoresStage(t *testing.T) {
	spec := Spec{Domain: MainDomain, Stage: StageDev, DevPrefix: "preview"}
	assert.Equal(t, "naturism.is", *spec.ZoneDomain())
}

func TestParseStage(t *testing.T) {
	got, err := ParseStage("dev")
	assert.NoError(t, err)
	assert.Equal(t, StageDev, got)

	_, err = ParseStage("staging")
	assert.Error(t, err)
	assert.ErrorContains(t, err, "invalid stage")
}
