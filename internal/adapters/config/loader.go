// Package config provides the manifest loader for rig.
package config

import (
	"os"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultTask is the task name substituted when a manifest declares no
// default of its own.
const DefaultTask = "help"

// FileLoader implements ports.ConfigLoader using a YAML manifest file.
type FileLoader struct{}

// Load reads the manifest at the given path.
func (l *FileLoader) Load(path string) (*domain.Manifest, error) {
	return Load(path)
}

// Load reads a manifest file and returns the declared tasks and variables.
// Dangling prerequisite references are declaration errors and fail here,
// before anything runs.
func Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest")
	}

	vars := domain.NewVarSet()
	for _, decl := range file.Vars {
		vars.Declare(domain.Variable{
			Name:  domain.NewInternedString(decl.Name),
			Value: decl.Value,
			Shell: decl.Shell,
		})
	}

	registry := domain.NewRegistry()
	for _, decl := range file.Tasks {
		registry.Declare(&domain.Task{
			Name: domain.NewInternedString(decl.Name),
			Desc: decl.Task.Desc,
			Deps: internStrings(decl.Task.Deps),
			Cmds: decl.Task.Cmds,
		})
	}

	for task := range registry.Tasks() {
		for _, dep := range task.Deps {
			if _, err := registry.Lookup(dep); err != nil {
				return nil, zerr.With(err, "required_by", task.Name.String())
			}
		}
	}

	def := file.Default
	if def == "" {
		def = DefaultTask
	}

	return &domain.Manifest{
		Registry: registry,
		Vars:     vars,
		Default:  domain.NewInternedString(def),
	}, nil
}

func internStrings(strs []string) []domain.InternedString {
	if len(strs) == 0 {
		return nil
	}
	res := make([]domain.InternedString, len(strs))
	for i, s := range strs {
		res[i] = domain.NewInternedString(s)
	}
	return res
}
