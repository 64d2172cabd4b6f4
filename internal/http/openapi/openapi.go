// Package openapi renders the OpenAPI YAML document of a service.
package openapi

import (
	"bytes"
	_ "embed"
	"text/template"
)

// Version is reported in every generated document.
const Version = "0.1.0"

//go:embed openapi.yaml.tmpl
var tmplText string

var tmpl = template.Must(template.New("openapi").Parse(tmplText))

// Document parameterises the template.
type Document struct {
	Title   string
	Version string
	Catalog bool
}

// Render returns the YAML document for one service.
func Render(title string, catalog bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, Document{Title: title, Version: Version, Catalog: catalog}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
