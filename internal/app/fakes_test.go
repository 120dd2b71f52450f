// Where: cli/internal/app/fakes_test.go
// What: Fake port implementations recording calls.
// Why: Exercise command handlers without docker or compose.
package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skyfield-robotics/navbox/cli/internal/assets"
	"github.com/skyfield-robotics/navbox/cli/internal/compose"
)

type journal struct {
	entries []string
}

func (j *journal) add(format string, args ...any) {
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

type fakeComposer struct {
	journal *journal
	err     error
}

func (c *fakeComposer) record(verb string, req ComposeRequest) error {
	files := make([]string, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, filepath.Base(f))
	}
	c.journal.add("%s files=%s services=%s", verb,
		strings.Join(files, ","), strings.Join(req.Services, ","))
	return c.err
}

func (c *fakeComposer) Create(_ context.Context, req ComposeRequest) error {
	return c.record("create", req)
}

func (c *fakeComposer) Build(_ context.Context, req ComposeRequest, noCache bool) error {
	verb := "build"
	if noCache {
		verb = "build-no-cache"
	}
	return c.record(verb, req)
}

func (c *fakeComposer) Up(_ context.Context, req ComposeRequest, _ UpParams) error {
	return c.record("up", req)
}

func (c *fakeComposer) Start(_ context.Context, req ComposeRequest) error {
	return c.record("start", req)
}

func (c *fakeComposer) Stop(_ context.Context, req ComposeRequest) error {
	return c.record("stop", req)
}

func (c *fakeComposer) Logs(_ context.Context, req ComposeRequest, _ LogParams) error {
	return c.record("logs", req)
}

type fakeDowner struct {
	journal *journal
	err     error
}

func (d *fakeDowner) Down(_ context.Context, project string, removeVolumes bool) error {
	d.journal.add("down project=%s volumes=%t", project, removeVolumes)
	return d.err
}

type fakeExposer struct {
	journal *journal
	granted int
	err     error
}

func (e *fakeExposer) Expose(_ context.Context, project string) (int, error) {
	e.journal.add("expose project=%s", project)
	return e.granted, e.err
}

type fakeLister struct {
	containers []compose.ContainerInfo
	err        error
}

func (l *fakeLister) List(_ context.Context, _ string) ([]compose.ContainerInfo, error) {
	return l.containers, l.err
}

type fakeChecker struct {
	missing []string
	err     error
}

func (c *fakeChecker) Check(_ context.Context, _ string, _, services []string) ([]string, error) {
	if c.err != nil {
		return nil, c.err
	}
	var missing []string
	for _, service := range services {
		for _, m := range c.missing {
			if m == service {
				missing = append(missing, service)
			}
		}
	}
	return missing, nil
}

type fakePrompter struct {
	answer bool
	err    error
	asked  int
}

func (p *fakePrompter) Confirm(_ string) (bool, error) {
	p.asked++
	return p.answer, p.err
}

type fakeObjectFetcher struct {
	objects map[string]string
}

func (f *fakeObjectFetcher) Fetch(_ context.Context, _ string, key string) (io.ReadCloser, error) {
	payload, ok := f.objects[key]
	if !ok {
		return nil, fmt.Errorf("no such key: %s", key)
	}
	return io.NopCloser(strings.NewReader(payload)), nil
}

// newTestRepo writes the base compose file and every scenario override into
// a temp dir.
func newTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	names := []string{
		"docker-compose.yaml",
		"docker-compose.hil.yaml",
		"docker-compose.sitl.yaml",
		"docker-compose.offboard.yaml",
		"docker-compose.test.yaml",
		"docker-compose.dev.yaml",
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("services: {}\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

type testEnv struct {
	repoDir  string
	out      *bytes.Buffer
	journal  *journal
	composer *fakeComposer
	downer   *fakeDowner
	exposer  *fakeExposer
	lister   *fakeLister
	checker  *fakeChecker
	prompter *fakePrompter
	deps     Dependencies
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("NAVBOX_CONFIG_HOME", t.TempDir())
	t.Setenv("NAVBOX_AUTOPILOT", "")
	t.Setenv("NAVBOX_REPO", "")

	env := &testEnv{
		repoDir: newTestRepo(t),
		out:     &bytes.Buffer{},
		journal: &journal{},
	}
	env.composer = &fakeComposer{journal: env.journal}
	env.downer = &fakeDowner{journal: env.journal}
	env.exposer = &fakeExposer{journal: env.journal}
	env.lister = &fakeLister{}
	env.checker = &fakeChecker{}
	env.prompter = &fakePrompter{}

	assetsDir := filepath.Join(t.TempDir(), "assets")
	fetcher := &fakeObjectFetcher{objects: map[string]string{}}
	for _, key := range assets.DefaultKeys {
		fetcher.objects[key] = "payload:" + key
	}

	env.deps = Dependencies{
		WorkDir:      env.repoDir,
		Out:          env.out,
		RepoResolver: func(string) (string, error) { return env.repoDir, nil },
		Prompter:     env.prompter,
		Composer:     env.composer,
		Downer:       env.downer,
		Exposer:      env.exposer,
		Lister:       env.lister,
		Checker:      env.checker,
		Assets: AssetsDeps{
			NewFetcher: func(context.Context, string, string, string) (assets.ObjectFetcher, error) {
				return fetcher, nil
			},
			DestDir: func() (string, error) { return assetsDir, nil },
		},
	}
	return env
}
