// Where: cli/internal/manifest/manifest_test.go
// What: Tests for manifest parsing, validation, and rendering.
// Why: Ensure schema enforcement and init output stay in sync.
package manifest

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseValidManifest(t *testing.T) {
	payload := []byte(`
version: 1
autopilot: ardupilot
scenarios:
  offboard-sitl-dev:
    overrides:
      - docker-compose.local.yaml
`)

	m, err := Parse(payload)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if m.Autopilot != "ardupilot" {
		t.Fatalf("unexpected autopilot: %s", m.Autopilot)
	}
	extra := m.ExtraOverrides("offboard-sitl-dev")
	if !reflect.DeepEqual(extra, []string{"docker-compose.local.yaml"}) {
		t.Fatalf("unexpected overrides: %v", extra)
	}
	if m.ExtraOverrides("demo") != nil {
		t.Fatalf("expected no overrides for unlisted scenario")
	}
}

func TestParseRejectsUnknownAutopilot(t *testing.T) {
	payload := []byte("version: 1\nautopilot: betaflight\n")

	if _, err := Parse(payload); err == nil {
		t.Fatalf("expected schema violation for unknown autopilot")
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	payload := []byte("version: 1\nflightplan: waypoints.json\n")

	if _, err := Parse(payload); err == nil {
		t.Fatalf("expected schema violation for unknown key")
	}
}

func TestParseRequiresVersion(t *testing.T) {
	payload := []byte("autopilot: px4\n")

	if _, err := Parse(payload); err == nil {
		t.Fatalf("expected schema violation for missing version")
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	_, found, err := Load(filepath.Join(t.TempDir(), "navbox.yaml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found {
		t.Fatalf("expected found=false for missing manifest")
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navbox.yaml")
	if err := os.WriteFile(path, []byte("version: 1\nautopilot: px4\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, found, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !found || m.Autopilot != "px4" {
		t.Fatalf("unexpected manifest: found=%v %+v", found, m)
	}
}

func TestRenderStarterValidates(t *testing.T) {
	payload, err := RenderStarter(StarterInput{
		Autopilot: "",
		Scenarios: []string{"onboard-sitl", "demo"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	m, err := Parse(payload)
	if err != nil {
		t.Fatalf("rendered starter does not validate: %v\n%s", err, payload)
	}
	if m.Autopilot != "px4" {
		t.Fatalf("expected default autopilot px4, got %s", m.Autopilot)
	}
	if _, ok := m.Scenarios["demo"]; !ok {
		t.Fatalf("rendered starter missing demo scenario: %+v", m.Scenarios)
	}
}
