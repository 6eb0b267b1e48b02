package config

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pipesched/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

// LoadRunFile reads an invocation event from a YAML file. The keys are the
// same as the JSON event accepted by the serve mode.
//
//	repositories: [svc-a, svc-b]
//	override: ["^legacy-"]
//	dry_run: true
func LoadRunFile(path string) (*model.Event, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read run file", goerr.V("path", path))
	}

	var event model.Event
	if err := yaml.Unmarshal(raw, &event); err != nil {
		return nil, goerr.Wrap(err, "failed to parse run file", goerr.V("path", path))
	}
	return &event, nil
}
