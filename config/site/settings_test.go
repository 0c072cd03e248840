package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	got, err := LoadSettings(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)
}

func TestLoadSettings_OverridesDefaults(t *testing.T) {
	path := writeSettings(t, `
index_document = "home.html"
price_class = "all"
default_ttl_seconds = 300
`)
	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "home.html", got.IndexDocument)
	// Untouched keys keep their defaults
	assert.Equal(t, "404.html", got.ErrorDocument)
	assert.Equal(t, awscloudfront.PriceClass_PRICE_CLASS_ALL, got.CloudFrontPriceClass())
	assert.Equal(t, 300, got.DefaultTTLSeconds)
}

func TestLoadSettings_RejectsUnknownKeys(t *testing.T) {
	path := writeSettings(t, `index_doc = "typo.html"`)
	_, err := LoadSettings(path)
	require.Error(t, err)
	require.ErrorContains(t, err, "unknown keys")
}

func TestLoadSettings_RejectsBadPriceClass(t *testing.T) {
	path := writeSettings(t, `price_class = "300"`)
	_, err := LoadSettings(path)
	require.Error(t, err)
	require.ErrorContains(t, err, "invalid site settings")
}

func TestLoadSettings_RejectsNegativeTTL(t *testing.T) {
	path := writeSettings(t, `default_ttl_seconds = -1`)
	_, err := LoadSettings(path)
	require.Error(t, err)
}
