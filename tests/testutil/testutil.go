package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SiteDir materializes a fake built site in a temp directory and returns its
// path. Keys are file names relative to the site root, values their content.
func SiteDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("site-fixture-mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("site-fixture-write: %v", err)
		}
	}
	return dir
}

// MinimalSite returns a site fixture holding just an index document.
func MinimalSite(t *testing.T) string {
	t.Helper()
	return SiteDir(t, map[string]string{
		"index.html": "<!DOCTYPE html><title>fixture</title>",
	})
}
