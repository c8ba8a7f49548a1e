package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader loads movement and arena configuration using fs.FS interface.
// Files ending in .yaml/.yml are parsed as YAML, everything else as JSON.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadMovement loads a movement config file. Fields the file omits keep their Default() value.
func (l *Loader) LoadMovement(name string) (*MovementConfig, error) {
	cfg := Default()
	if err := l.decode(name, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return &cfg, nil
}

// LoadArena loads an arena geometry file
func (l *Loader) LoadArena(name string) (*ArenaConfig, error) {
	var cfg ArenaConfig
	if err := l.decode(name, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Boxes) == 0 && len(cfg.Planes) == 0 {
		return nil, fmt.Errorf("arena %s has no colliders", name)
	}
	return &cfg, nil
}

func (l *Loader) decode(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if isYAML(name) {
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse %s: %w", name, err)
		}
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
