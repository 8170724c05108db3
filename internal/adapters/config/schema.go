package config

import (
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// File mirrors the textual structure of a rig.yaml manifest.
type File struct {
	Version string   `yaml:"version"`
	Default string   `yaml:"default"`
	Vars    VarList  `yaml:"vars"`
	Tasks   TaskList `yaml:"tasks"`
}

// VarDecl is one variable declaration: a literal scalar, or a mapping with
// an sh key marking a shell extraction.
type VarDecl struct {
	Name  string
	Value string
	Shell bool
}

// VarList preserves the declaration order of the vars mapping. Decoding into
// a Go map would destroy the order, and declaration order is observable
// behavior (last-declaration-wins, deterministic resolution reporting).
type VarList []VarDecl

// UnmarshalYAML implements yaml.Unmarshaler by walking the mapping node's
// key/value pairs in document order.
func (l *VarList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return zerr.New("vars must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		value := node.Content[i+1]

		decl := VarDecl{Name: key.Value}
		switch value.Kind {
		case yaml.ScalarNode:
			decl.Value = value.Value
		case yaml.MappingNode:
			var ext struct {
				Sh string `yaml:"sh"`
			}
			if err := value.Decode(&ext); err != nil {
				return err
			}
			if ext.Sh == "" {
				return zerr.With(zerr.New("variable mapping requires an sh command"), "variable", key.Value)
			}
			decl.Value = ext.Sh
			decl.Shell = true
		default:
			return zerr.With(zerr.New("invalid variable value"), "variable", key.Value)
		}
		*l = append(*l, decl)
	}
	return nil
}

// TaskDTO is the body of one task declaration.
type TaskDTO struct {
	Desc string   `yaml:"desc"`
	Deps []string `yaml:"deps"`
	Cmds []string `yaml:"cmds"`
}

// TaskDecl pairs a task name with its body.
type TaskDecl struct {
	Name string
	Task TaskDTO
}

// TaskList preserves the declaration order of the tasks mapping, for the
// same reasons as VarList. Duplicate keys survive the node walk as separate
// entries, which is what lets the registry apply its overwrite policy.
type TaskList []TaskDecl

// UnmarshalYAML implements yaml.Unmarshaler by walking the mapping node's
// key/value pairs in document order.
func (l *TaskList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return zerr.New("tasks must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		value := node.Content[i+1]

		var dto TaskDTO
		// A null body declares a bare no-op placeholder task.
		if value.Kind != yaml.ScalarNode || value.Tag != "!!null" {
			if err := value.Decode(&dto); err != nil {
				return zerr.With(zerr.Wrap(err, "invalid task declaration"), "task", key.Value)
			}
		}
		*l = append(*l, TaskDecl{Name: key.Value, Task: dto})
	}
	return nil
}
