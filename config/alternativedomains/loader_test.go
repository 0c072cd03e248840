package alternativedomains

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileIsNil(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_ParsesSuffixes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alternative_domains.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
preview:
  aliases:
    beta.naturism.is: {}
    external.example.org:
      createRecord: false
      requiresTlsSan: false
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	suffixCfg, ok := (*cfg)["preview"]
	require.True(t, ok)
	assert.Equal(t, []string{"beta.naturism.is", "external.example.org"}, suffixCfg.SortedAliasNames())
	// Only aliases that keep the SAN default land on the certificate
	assert.Equal(t, []string{"beta.naturism.is"}, suffixCfg.SANNames())
	assert.False(t, suffixCfg.Aliases["external.example.org"].CreateRecordOrDefault())
	assert.True(t, suffixCfg.Aliases["beta.naturism.is"].CreateRecordOrDefault())
}

func TestLoadConfig_BadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alternative_domains.yaml")
	require.NoError(t, os.WriteFile(path, []byte("\t: not yaml"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	require.ErrorContains(t, err, "unmarshalling")
}

func TestGetConfigForStack_NilConfig(t *testing.T) {
	assert.Nil(t, GetConfigForStack(nil, nil))
}
