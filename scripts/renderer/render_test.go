//go:generate go test -run . -update
package renderer_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/JuniperCamp/naturism.is/scripts/renderer"
)

func TestRenderErrorPage(t *testing.T) {
	got, err := renderer.Render(renderer.TplErrorPage, renderer.ErrorPageData{
		SiteTitle: "naturism.is",
		SiteFQDN:  "www.naturism.is",
	})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "error_page", []byte(got))
}

func TestRenderDeployManifest(t *testing.T) {
	got, err := renderer.Render(renderer.TplDeployManifest, renderer.DeployManifestData{
		SiteFQDN:      "www.naturism.is",
		ApexFQDN:      "naturism.is",
		IndexDocument: "index.html",
		ErrorDocument: "404.html",
		Aliases:       []string{"beta.naturism.is"},
	})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "deploy_manifest", []byte(got))
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := renderer.Render(renderer.TemplateName("nope.tmpl"), nil)
	require.Error(t, err)
	require.ErrorContains(t, err, "unknown template")
}
