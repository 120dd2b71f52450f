// Where: cli/internal/manifest/render.go
// What: Starter manifest rendering.
// Why: Give `navbox init` a templated, commented manifest to write.
package manifest

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/navbox.yaml.tmpl
var starterTemplate string

// StarterInput parameterizes the starter manifest.
type StarterInput struct {
	Autopilot string
	Scenarios []string
}

// RenderStarter renders the starter manifest for the given input.
// The output parses and validates against the manifest schema.
func RenderStarter(input StarterInput) ([]byte, error) {
	tmpl, err := template.New("navbox.yaml").Funcs(sprig.FuncMap()).Parse(starterTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, input); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
