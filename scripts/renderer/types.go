// Package renderer loads the embedded site templates under
// scripts/renderer/templates/ and renders them with sprig functions.
//
// It exists so that the fallback error page and the deploy manifest live as
// separate, easily readable `.tmpl` files instead of Go string literals.
package renderer

// TemplateName represents a known template filename.
type TemplateName string

// Constants for known template filenames.
const (
	TplErrorPage      TemplateName = "error_page.html.tmpl"
	TplDeployManifest TemplateName = "deploy_manifest.json.tmpl"
)

// ErrorPageData feeds TplErrorPage.
type ErrorPageData struct {
	SiteTitle string
	SiteFQDN  string
}

// DeployManifestData feeds TplDeployManifest. The manifest is uploaded next
// to the site content so operators can see what a bucket currently serves.
type DeployManifestData struct {
	SiteFQDN      string
	ApexFQDN      string
	IndexDocument string
	ErrorDocument string
	Aliases       []string
}
