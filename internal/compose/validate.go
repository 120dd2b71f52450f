// Where: cli/internal/compose/validate.go
// What: Compose model loading for scenario validation.
// Why: Verify scenario service lists against the merged compose model.
package compose

import (
	"context"
	"fmt"
	"os"

	"github.com/compose-spec/compose-go/v2/loader"
	"github.com/compose-spec/compose-go/v2/types"
	"gopkg.in/yaml.v3"
)

// LoadModel parses and merges the given compose files into a single project
// model. Interpolation runs against the current process environment so that
// overlays referencing host variables still load.
func LoadModel(ctx context.Context, project string, files []string) (*types.Project, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("at least one compose file is required")
	}

	configFiles := make([]types.ConfigFile, 0, len(files))
	for _, file := range files {
		payload, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read compose file: %w", err)
		}
		var dict map[string]interface{}
		if err := yaml.Unmarshal(payload, &dict); err != nil {
			return nil, fmt.Errorf("%s: invalid YAML syntax", file)
		}
		configFiles = append(configFiles, types.ConfigFile{
			Filename: file,
			Content:  payload,
			Config:   dict,
		})
	}

	model, err := loader.LoadWithContext(ctx, types.ConfigDetails{
		ConfigFiles: configFiles,
		Environment: types.NewMapping(os.Environ()),
	}, func(opts *loader.Options) {
		opts.SetProjectName(project, true)
		opts.SkipValidation = false
		opts.SkipInterpolation = false
		opts.SkipNormalization = true
		opts.SkipExtends = true
	})
	if err != nil {
		return nil, fmt.Errorf("load compose model: %w", err)
	}
	return model, nil
}

// MissingServices returns the subset of services absent from the model.
func MissingServices(model *types.Project, services []string) []string {
	var missing []string
	for _, service := range services {
		if _, ok := model.Services[service]; !ok {
			missing = append(missing, service)
		}
	}
	return missing
}
