// Where: cli/internal/scenario/scenario.go
// What: Static deployment scenario catalog.
// Why: Expand (scenario, autopilot) pairs into compose files and service lists.
package scenario

import (
	"fmt"
	"strings"
)

// Supported autopilot identifiers.
const (
	AutopilotPX4       = "px4"
	AutopilotArduPilot = "ardupilot"
)

// AutopilotService marks the slot in a scenario service list that is
// replaced by the autopilot identifier at expansion time.
const AutopilotService = "{autopilot}"

// Scenario describes one deployment configuration. Requires names at most
// one prerequisite scenario whose services must be created and started
// first; a prerequisite never has a prerequisite of its own.
type Scenario struct {
	Name      string
	Requires  string
	Overrides []string
	Services  []string
}

// HasAutopilot reports whether the scenario runs an autopilot service.
func (s Scenario) HasAutopilot() bool {
	for _, service := range s.Services {
		if service == AutopilotService {
			return true
		}
	}
	return false
}

// ExpandServices returns the concrete service list for the given autopilot:
// the placeholder is substituted in place and the autopilot's middleware
// services are appended. Scenarios without an autopilot slot are returned
// as-is regardless of the identifier.
func (s Scenario) ExpandServices(autopilot string) ([]string, error) {
	if !s.HasAutopilot() {
		return append([]string{}, s.Services...), nil
	}

	middleware, ok := Middleware(autopilot)
	if !ok {
		return nil, &UnsupportedAutopilotError{Autopilot: autopilot}
	}

	expanded := make([]string, 0, len(s.Services)+len(middleware))
	for _, service := range s.Services {
		if service == AutopilotService {
			expanded = append(expanded, autopilot)
			continue
		}
		expanded = append(expanded, service)
	}
	return append(expanded, middleware...), nil
}

// UnsupportedAutopilotError reports an autopilot identifier outside the
// supported set. Callers treat it as a printed no-op, not a failure.
type UnsupportedAutopilotError struct {
	Autopilot string
}

func (e *UnsupportedAutopilotError) Error() string {
	return fmt.Sprintf("unsupported autopilot: %s (supported: %s)",
		e.Autopilot, strings.Join(Autopilots(), ", "))
}

// Middleware returns the flight-controller middleware services required by
// the autopilot. PX4 needs both a MAVLink router and a micro-ROS agent for
// its uXRCE-DDS bridge; ArduPilot talks plain MAVLink only.
func Middleware(autopilot string) ([]string, bool) {
	switch autopilot {
	case AutopilotPX4:
		return []string{"mavlink-router", "micro-ros-agent"}, true
	case AutopilotArduPilot:
		return []string{"mavlink-router"}, true
	}
	return nil, false
}

// Autopilots returns the supported autopilot identifiers.
func Autopilots() []string {
	return []string{AutopilotPX4, AutopilotArduPilot}
}

// Supported reports whether the identifier is a supported autopilot.
func Supported(autopilot string) bool {
	_, ok := Middleware(autopilot)
	return ok
}

// catalog is the full scenario table. Order is the listing order.
var catalog = []Scenario{
	{
		Name:      "onboard-hil",
		Overrides: []string{"docker-compose.hil.yaml"},
		Services:  []string{AutopilotService, "qgc"},
	},
	{
		Name:      "onboard-sitl",
		Overrides: []string{"docker-compose.sitl.yaml"},
		Services:  []string{AutopilotService, "gazebo"},
	},
	{
		Name:      "offboard-sitl",
		Requires:  "onboard-sitl",
		Overrides: []string{"docker-compose.offboard.yaml"},
		Services:  []string{"navcore", "mapserver", "rviz"},
	},
	{
		Name:      "offboard-sitl-test",
		Requires:  "onboard-sitl",
		Overrides: []string{"docker-compose.offboard.yaml", "docker-compose.test.yaml"},
		Services:  []string{"navcore", "mapserver"},
	},
	{
		Name:      "offboard-sitl-dev",
		Requires:  "onboard-sitl",
		Overrides: []string{"docker-compose.offboard.yaml", "docker-compose.dev.yaml"},
		Services:  []string{"navcore", "mapserver", "rviz"},
	},
	{
		Name:     "demo",
		Requires: "onboard-sitl",
		Services: []string{"navcore", "mapserver", "qgc"},
	},
}

// Lookup returns the scenario with the given name.
func Lookup(name string) (Scenario, bool) {
	for _, s := range catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// Names returns scenario names in catalog order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, s := range catalog {
		names = append(names, s.Name)
	}
	return names
}

// All returns a copy of the catalog.
func All() []Scenario {
	return append([]Scenario{}, catalog...)
}

// Chain returns the scenario's execution chain in dependency order:
// prerequisite first (when present), then the scenario itself.
func (s Scenario) Chain() ([]Scenario, error) {
	if s.Requires == "" {
		return []Scenario{s}, nil
	}
	prereq, ok := Lookup(s.Requires)
	if !ok {
		return nil, fmt.Errorf("scenario %s requires unknown scenario %s", s.Name, s.Requires)
	}
	if prereq.Requires != "" {
		return nil, fmt.Errorf("scenario %s requires %s which has its own prerequisite", s.Name, s.Requires)
	}
	return []Scenario{prereq, s}, nil
}
