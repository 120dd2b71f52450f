// Where: cli/internal/app/plan.go
// What: Target planning for scenario commands.
// Why: Turn (scenario, autopilot) pairs into concrete compose requests.
package app

import (
	"github.com/skyfield-robotics/navbox/cli/internal/compose"
	"github.com/skyfield-robotics/navbox/cli/internal/scenario"
)

// target pairs a scenario with its fully resolved compose request.
type target struct {
	Scenario scenario.Scenario
	Request  ComposeRequest
}

// planTarget expands one scenario for the given context.
// Returns *scenario.UnsupportedAutopilotError (wrapped) for identifiers
// outside the supported set.
func planTarget(ctxInfo commandContext, sc scenario.Scenario) (target, error) {
	services, err := sc.ExpandServices(ctxInfo.Autopilot)
	if err != nil {
		return target{}, err
	}

	files, err := compose.ResolveComposeFiles(
		ctxInfo.Context.RepoDir,
		sc.Overrides,
		ctxInfo.Context.ExtraOverrides(sc.Name),
	)
	if err != nil {
		return target{}, err
	}

	return target{
		Scenario: sc,
		Request: ComposeRequest{
			RepoDir:  ctxInfo.Context.RepoDir,
			Project:  ctxInfo.Context.ComposeProject,
			Files:    files,
			Services: services,
		},
	}, nil
}

// planChain expands a scenario's dependency chain in execution order:
// the prerequisite first (when present), then the scenario itself.
func planChain(ctxInfo commandContext, sc scenario.Scenario) ([]target, error) {
	chain, err := sc.Chain()
	if err != nil {
		return nil, err
	}

	targets := make([]target, 0, len(chain))
	for _, s := range chain {
		t, err := planTarget(ctxInfo, s)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// projectRequest builds a request addressing the whole project through the
// base compose file only (start, stop, logs, bare build).
func projectRequest(ctxInfo commandContext) (ComposeRequest, error) {
	files, err := compose.ResolveComposeFiles(ctxInfo.Context.RepoDir, nil, nil)
	if err != nil {
		return ComposeRequest{}, err
	}
	return ComposeRequest{
		RepoDir: ctxInfo.Context.RepoDir,
		Project: ctxInfo.Context.ComposeProject,
		Files:   files,
	}, nil
}
