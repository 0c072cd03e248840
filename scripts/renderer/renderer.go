package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var tplFS embed.FS

// templates holds every embedded template, parsed once with the sprig
// function map. A bad template is a programmer error, so init panics.
var templates = template.Must(
	template.New("site").Funcs(sprig.TxtFuncMap()).ParseFS(tplFS, "templates/*.tmpl"),
)

// Render merges the named template with data.
func Render(name TemplateName, data any) (string, error) {
	t := templates.Lookup(string(name))
	if t == nil {
		return "", fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %q: %w", name, err)
	}
	return buf.String(), nil
}
