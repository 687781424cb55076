package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config for writing. Durations render as strings
// ("2s", not nanosecond integers) so the file stays hand-editable.
type fileConfig struct {
	Version         int            `yaml:"version"`
	DefaultInterval int            `yaml:"default_interval"`
	ProbeTimeout    string         `yaml:"probe_timeout"`
	TempDir         string         `yaml:"temp_dir,omitempty"`
	Targets         []TargetConfig `yaml:"targets"`
}

// Write marshals the config to path, creating parent directories as needed.
func Write(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	out := fileConfig{
		Version:         cfg.Version,
		DefaultInterval: cfg.DefaultInterval,
		ProbeTimeout:    cfg.ProbeTimeout.String(),
		TempDir:         cfg.TempDir,
		Targets:         cfg.Targets,
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// AddTarget appends a target to an existing config file.
// It edits the YAML node tree directly so comments and key order in the
// rest of the file survive the rewrite.
func AddTarget(configPath string, target TargetConfig) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return fmt.Errorf("invalid YAML document structure")
	}

	docNode := root.Content[0]
	if docNode.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping at document root")
	}

	targetsNode := findMapValue(docNode, "targets")
	if targetsNode == nil {
		targetsNode = &yaml.Node{
			Kind:    yaml.SequenceNode,
			Tag:     "!!seq",
			Content: []*yaml.Node{},
		}
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: "targets",
		}
		docNode.Content = append(docNode.Content, keyNode, targetsNode)
	}

	var entry yaml.Node
	if err := entry.Encode(target); err != nil {
		return fmt.Errorf("failed to encode target: %w", err)
	}
	targetsNode.Content = append(targetsNode.Content, &entry)

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	if err := os.WriteFile(configPath, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return valueNode
		}
	}

	return nil
}
