// Where: cli/internal/app/app_test.go
// What: Command dispatch and handler behavior tests.
// Why: Pin the compose invocation sequences each command produces.
package app

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/skyfield-robotics/navbox/cli/internal/compose"
	"github.com/skyfield-robotics/navbox/cli/internal/meta"
)

func TestUpRunsChainInOrder(t *testing.T) {
	env := newTestEnv(t)

	code := Run([]string{"up", "offboard-sitl"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d, output:\n%s", code, env.out.String())
	}

	want := []string{
		"create files=docker-compose.yaml,docker-compose.sitl.yaml services=px4,gazebo,mavlink-router,micro-ros-agent",
		"create files=docker-compose.yaml,docker-compose.offboard.yaml services=navcore,mapserver,rviz",
		"expose project=" + meta.ComposeProject,
		"up files=docker-compose.yaml,docker-compose.sitl.yaml services=px4,gazebo,mavlink-router,micro-ros-agent",
		"up files=docker-compose.yaml,docker-compose.offboard.yaml services=navcore,mapserver,rviz",
	}
	if !reflect.DeepEqual(env.journal.entries, want) {
		t.Errorf("journal = %#v, want %#v", env.journal.entries, want)
	}
}

func TestUpArduPilotMiddleware(t *testing.T) {
	env := newTestEnv(t)

	code := Run([]string{"-a", "ardupilot", "up", "onboard-sitl"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d, output:\n%s", code, env.out.String())
	}

	want := []string{
		"create files=docker-compose.yaml,docker-compose.sitl.yaml services=ardupilot,gazebo,mavlink-router",
		"expose project=" + meta.ComposeProject,
		"up files=docker-compose.yaml,docker-compose.sitl.yaml services=ardupilot,gazebo,mavlink-router",
	}
	if !reflect.DeepEqual(env.journal.entries, want) {
		t.Errorf("journal = %#v, want %#v", env.journal.entries, want)
	}
}

func TestUpUnsupportedAutopilotIsPrintedNoOp(t *testing.T) {
	env := newTestEnv(t)

	code := Run([]string{"-a", "betaflight", "up", "onboard-sitl"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if len(env.journal.entries) != 0 {
		t.Errorf("no compose calls expected, got %#v", env.journal.entries)
	}
	output := env.out.String()
	if !strings.Contains(output, "unsupported autopilot: betaflight") {
		t.Errorf("missing diagnostic in output:\n%s", output)
	}
	if strings.Count(output, "unsupported autopilot") != 1 {
		t.Errorf("diagnostic printed more than once:\n%s", output)
	}
}

func TestUpWithBuildBuildsChainFirst(t *testing.T) {
	env := newTestEnv(t)

	code := Run([]string{"up", "demo", "--build"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d, output:\n%s", code, env.out.String())
	}

	want := []string{
		"build files=docker-compose.yaml,docker-compose.sitl.yaml services=px4,gazebo,mavlink-router,micro-ros-agent",
		"build files=docker-compose.yaml services=navcore,mapserver,qgc",
		"create files=docker-compose.yaml,docker-compose.sitl.yaml services=px4,gazebo,mavlink-router,micro-ros-agent",
		"create files=docker-compose.yaml services=navcore,mapserver,qgc",
		"expose project=" + meta.ComposeProject,
		"up files=docker-compose.yaml,docker-compose.sitl.yaml services=px4,gazebo,mavlink-router,micro-ros-agent",
		"up files=docker-compose.yaml services=navcore,mapserver,qgc",
	}
	if !reflect.DeepEqual(env.journal.entries, want) {
		t.Errorf("journal = %#v, want %#v", env.journal.entries, want)
	}
}

func TestDemoIsUpDemo(t *testing.T) {
	env := newTestEnv(t)

	code := Run([]string{"demo"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d, output:\n%s", code, env.out.String())
	}

	want := []string{
		"create files=docker-compose.yaml,docker-compose.sitl.yaml services=px4,gazebo,mavlink-router,micro-ros-agent",
		"create files=docker-compose.yaml services=navcore,mapserver,qgc",
		"expose project=" + meta.ComposeProject,
		"up files=docker-compose.yaml,docker-compose.sitl.yaml services=px4,gazebo,mavlink-router,micro-ros-agent",
		"up files=docker-compose.yaml services=navcore,mapserver,qgc",
	}
	if !reflect.DeepEqual(env.journal.entries, want) {
		t.Errorf("journal = %#v, want %#v", env.journal.entries, want)
	}
}

func TestCreateUnknownScenario(t *testing.T) {
	env := newTestEnv(t)

	code := Run([]string{"create", "orbital"}, env.deps)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(env.out.String(), "unknown scenario: orbital") {
		t.Errorf("missing error in output:\n%s", env.out.String())
	}
}

func TestBareBuildUsesBaseFileOnly(t *testing.T) {
	env := newTestEnv(t)

	code := Run([]string{"build"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d, output:\n%s", code, env.out.String())
	}

	want := []string{"build files=docker-compose.yaml services="}
	if !reflect.DeepEqual(env.journal.entries, want) {
		t.Errorf("journal = %#v, want %#v", env.journal.entries, want)
	}
}

func TestBuildScenarioNoCache(t *testing.T) {
	env := newTestEnv(t)

	code := Run([]string{"build", "onboard-hil", "--no-cache"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d, output:\n%s", code, env.out.String())
	}

	want := []string{
		"build-no-cache files=docker-compose.yaml,docker-compose.hil.yaml services=px4,qgc,mavlink-router,micro-ros-agent",
	}
	if !reflect.DeepEqual(env.journal.entries, want) {
		t.Errorf("journal = %#v, want %#v", env.journal.entries, want)
	}
}

func TestDownVolumesAsksForConfirmation(t *testing.T) {
	env := newTestEnv(t)
	env.prompter.answer = false

	code := Run([]string{"down", "--volumes"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if env.prompter.asked != 1 {
		t.Errorf("prompter asked %d times, want 1", env.prompter.asked)
	}
	if len(env.journal.entries) != 0 {
		t.Errorf("declined confirmation must not tear down, got %#v", env.journal.entries)
	}
}

func TestDownVolumesConfirmed(t *testing.T) {
	env := newTestEnv(t)
	env.prompter.answer = true

	code := Run([]string{"down", "--volumes"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}

	want := []string{"down project=" + meta.ComposeProject + " volumes=true"}
	if !reflect.DeepEqual(env.journal.entries, want) {
		t.Errorf("journal = %#v, want %#v", env.journal.entries, want)
	}
}

func TestDownYesSkipsPrompt(t *testing.T) {
	env := newTestEnv(t)

	code := Run([]string{"down", "--volumes", "--yes"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if env.prompter.asked != 0 {
		t.Errorf("prompter asked %d times, want 0", env.prompter.asked)
	}

	want := []string{"down project=" + meta.ComposeProject + " volumes=true"}
	if !reflect.DeepEqual(env.journal.entries, want) {
		t.Errorf("journal = %#v, want %#v", env.journal.entries, want)
	}
}

func TestDownWithoutVolumesSkipsPrompt(t *testing.T) {
	env := newTestEnv(t)

	code := Run([]string{"down"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if env.prompter.asked != 0 {
		t.Errorf("prompter asked %d times, want 0", env.prompter.asked)
	}

	want := []string{"down project=" + meta.ComposeProject + " volumes=false"}
	if !reflect.DeepEqual(env.journal.entries, want) {
		t.Errorf("journal = %#v, want %#v", env.journal.entries, want)
	}
}

func TestStartStopAddressWholeProject(t *testing.T) {
	env := newTestEnv(t)

	if code := Run([]string{"start"}, env.deps); code != 0 {
		t.Fatalf("start exit code = %d", code)
	}
	if code := Run([]string{"stop"}, env.deps); code != 0 {
		t.Fatalf("stop exit code = %d", code)
	}

	want := []string{
		"start files=docker-compose.yaml services=",
		"stop files=docker-compose.yaml services=",
	}
	if !reflect.DeepEqual(env.journal.entries, want) {
		t.Errorf("journal = %#v, want %#v", env.journal.entries, want)
	}
}

func TestStatusListsContainers(t *testing.T) {
	env := newTestEnv(t)
	env.lister.containers = []compose.ContainerInfo{
		{ID: "aaa", Name: "navbox-px4-1", Service: "px4", State: "running"},
		{ID: "bbb", Name: "navbox-gazebo-1", Service: "gazebo", State: "exited"},
	}

	code := Run([]string{"status"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}

	output := env.out.String()
	for _, fragment := range []string{"px4", "running", "gazebo", "exited"} {
		if !strings.Contains(output, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, output)
		}
	}
}

func TestScenariosListsCatalog(t *testing.T) {
	env := newTestEnv(t)

	code := Run([]string{"scenarios"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}

	output := env.out.String()
	for _, name := range []string{"onboard-hil", "onboard-sitl", "offboard-sitl", "demo"} {
		if !strings.Contains(output, name) {
			t.Errorf("output missing scenario %q:\n%s", name, output)
		}
	}
}

func TestValidateReportsMissingServices(t *testing.T) {
	env := newTestEnv(t)
	env.checker.missing = []string{"mapserver"}

	code := Run([]string{"validate"}, env.deps)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(env.out.String(), "missing services: mapserver") {
		t.Errorf("missing warning in output:\n%s", env.out.String())
	}
}

func TestValidateAllPresent(t *testing.T) {
	env := newTestEnv(t)

	code := Run([]string{"validate"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d, output:\n%s", code, env.out.String())
	}
}

func TestValidateUnsupportedAutopilotSingleDiagnostic(t *testing.T) {
	env := newTestEnv(t)

	code := Run([]string{"-a", "inav", "validate"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0, output:\n%s", code, env.out.String())
	}
	if got := strings.Count(env.out.String(), "unsupported autopilot"); got != 1 {
		t.Errorf("diagnostic count = %d, want 1:\n%s", got, env.out.String())
	}
}

func TestExposeReportsGrantCount(t *testing.T) {
	env := newTestEnv(t)
	env.exposer.granted = 2

	code := Run([]string{"expose"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(env.out.String(), "2 container(s)") {
		t.Errorf("missing grant count in output:\n%s", env.out.String())
	}
}

func TestAssetsPullWritesBundle(t *testing.T) {
	env := newTestEnv(t)

	code := Run([]string{"assets", "pull"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d, output:\n%s", code, env.out.String())
	}

	destDir, err := env.deps.Assets.DestDir()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"orthoimagery.tif", "elevation.tif", "flightplan.yaml"} {
		if _, err := os.Stat(filepath.Join(destDir, name)); err != nil {
			t.Errorf("expected asset %s: %v", name, err)
		}
	}
}

func TestInitWritesManifestAndRefusesOverwrite(t *testing.T) {
	env := newTestEnv(t)

	if code := Run([]string{"init"}, env.deps); code != 0 {
		t.Fatalf("init exit code = %d, output:\n%s", code, env.out.String())
	}

	manifestPath := filepath.Join(env.repoDir, meta.ManifestName)
	payload, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(payload), "autopilot: px4") {
		t.Errorf("starter manifest missing autopilot default:\n%s", payload)
	}

	env.out.Reset()
	if code := Run([]string{"init"}, env.deps); code != 1 {
		t.Fatalf("second init exit code = %d, want 1", code)
	}
	if !strings.Contains(env.out.String(), "--force") {
		t.Errorf("overwrite refusal should mention --force:\n%s", env.out.String())
	}

	if code := Run([]string{"init", "--force"}, env.deps); code != 0 {
		t.Fatalf("forced init exit code = %d", code)
	}
}

func TestInitUnsupportedAutopilotWritesNothing(t *testing.T) {
	env := newTestEnv(t)

	code := Run([]string{"-a", "betaflight", "init"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if got := strings.Count(env.out.String(), "unsupported autopilot"); got != 1 {
		t.Errorf("diagnostic count = %d, want 1:\n%s", got, env.out.String())
	}

	manifestPath := filepath.Join(env.repoDir, meta.ManifestName)
	if _, err := os.Stat(manifestPath); !os.IsNotExist(err) {
		t.Fatalf("manifest must not be written for an unsupported autopilot: %v", err)
	}

	// The repo stays usable: the next command runs with the default autopilot.
	env.out.Reset()
	if code := Run([]string{"up", "onboard-hil"}, env.deps); code != 0 {
		t.Fatalf("follow-up up exit code = %d, output:\n%s", code, env.out.String())
	}
	if len(env.journal.entries) == 0 {
		t.Error("follow-up up issued no compose calls")
	}
}

func TestNoArgsShowsInfo(t *testing.T) {
	env := newTestEnv(t)

	code := Run(nil, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(env.out.String(), meta.AppName) {
		t.Errorf("info output missing app name:\n%s", env.out.String())
	}
}

func TestVersionCommand(t *testing.T) {
	env := newTestEnv(t)

	code := Run([]string{"version"}, env.deps)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if strings.TrimSpace(env.out.String()) == "" {
		t.Error("version output is empty")
	}
}

func TestCompletionScriptsMentionScenarios(t *testing.T) {
	env := newTestEnv(t)

	for _, shell := range []string{"bash", "zsh", "fish"} {
		env.out.Reset()
		if code := Run([]string{"completion", shell}, env.deps); code != 0 {
			t.Fatalf("completion %s exit code = %d", shell, code)
		}
		if !strings.Contains(env.out.String(), "onboard-sitl") {
			t.Errorf("%s completion missing scenario names:\n%s", shell, env.out.String())
		}
	}
}
