package siteasset_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuniperCamp/naturism.is/lib/siteasset"
	"github.com/JuniperCamp/naturism.is/tests/testutil"
)

func baseOptions(srcPath string) siteasset.Options {
	return siteasset.Options{
		SrcPath:       srcPath,
		IndexDocument: "index.html",
		ErrorDocument: "404.html",
		SiteTitle:     "naturism.is",
		SiteFQDN:      "www.naturism.is",
		ApexFQDN:      "naturism.is",
	}
}

func TestSources_MissingDir(t *testing.T) {
	opt := baseOptions(filepath.Join(t.TempDir(), "absent"))
	_, err := siteasset.Sources(opt)
	require.Error(t, err)
	require.ErrorIs(t, err, siteasset.ErrSrcNotExist)
}

func TestSources_SrcIsFile(t *testing.T) {
	dir := testutil.SiteDir(t, map[string]string{"index.html": "x"})
	opt := baseOptions(filepath.Join(dir, "index.html"))
	_, err := siteasset.Sources(opt)
	require.ErrorIs(t, err, siteasset.ErrSrcNotDir)
}

func TestSources_MissingIndexDocument(t *testing.T) {
	dir := testutil.SiteDir(t, map[string]string{"about.html": "x"})
	_, err := siteasset.Sources(baseOptions(dir))
	require.ErrorIs(t, err, siteasset.ErrNoIndex)
}

func TestSources_RejectsBadOptions(t *testing.T) {
	opt := baseOptions(testutil.MinimalSite(t))
	opt.SiteFQDN = "not a domain"
	_, err := siteasset.Sources(opt)
	require.Error(t, err)
	require.ErrorContains(t, err, "invalid site asset options")
}

func TestSources_RendersFallbackErrorPage(t *testing.T) {
	// Index present, error document absent: directory + error page + manifest.
	sources, err := siteasset.Sources(baseOptions(testutil.MinimalSite(t)))
	require.NoError(t, err)
	assert.Len(t, sources, 3)
}

func TestSources_KeepsProvidedErrorPage(t *testing.T) {
	dir := testutil.SiteDir(t, map[string]string{
		"index.html": "x",
		"404.html":   "custom error page",
	})
	sources, err := siteasset.Sources(baseOptions(dir))
	require.NoError(t, err)
	// Directory + manifest only; the provided 404 is part of the directory.
	assert.Len(t, sources, 2)
}
