// Where: cli/internal/manifest/manifest.go
// What: Deployment manifest parsing and validation.
// Why: Let a repo pin its autopilot default and extra compose overrides.
package manifest

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

//go:embed schema/navbox.schema.json
var schemaJSON string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// Manifest is the parsed navbox.yaml deployment manifest.
type Manifest struct {
	Version   int                         `json:"version"`
	Autopilot string                      `json:"autopilot,omitempty"`
	Scenarios map[string]ScenarioManifest `json:"scenarios,omitempty"`
}

// ScenarioManifest holds per-scenario manifest entries.
type ScenarioManifest struct {
	Overrides []string `json:"overrides,omitempty"`
}

// ExtraOverrides returns the manifest's extra override files for a scenario.
func (m Manifest) ExtraOverrides(scenarioName string) []string {
	entry, ok := m.Scenarios[scenarioName]
	if !ok {
		return nil
	}
	return entry.Overrides
}

// Load reads, schema-validates, and parses a manifest file.
// A missing file is not an error: it yields a zero manifest and ok=false.
func Load(path string) (Manifest, bool, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Manifest{}, false, nil
		}
		return Manifest{}, false, err
	}

	manifest, err := Parse(payload)
	if err != nil {
		return Manifest{}, false, fmt.Errorf("%s: %w", path, err)
	}
	return manifest, true, nil
}

// Parse validates manifest YAML against the embedded schema and decodes it.
func Parse(payload []byte) (Manifest, error) {
	sch, err := loadSchema()
	if err != nil {
		return Manifest{}, err
	}

	jsonData, err := yaml.YAMLToJSON(payload)
	if err != nil {
		return Manifest{}, fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return Manifest{}, fmt.Errorf("decode json: %w", err)
	}
	if err := sch.Validate(document); err != nil {
		return Manifest{}, fmt.Errorf("manifest does not match schema: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(jsonData, &manifest); err != nil {
		return Manifest{}, err
	}
	return manifest, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("navbox.schema.json", strings.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("navbox.schema.json")
	})
	return compiledSchema, schemaErr
}
