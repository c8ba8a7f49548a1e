package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadMovement(t *testing.T) {
	loader := NewLoader("../../../cmd/sandbox/configs")

	cfg, err := loader.LoadMovement("movement.json")
	require.NoError(t, err)

	assert.Equal(t, 20.0, cfg.Physics.Gravity)
	assert.Equal(t, 50.0, cfg.Physics.TerminalVelocity)
	assert.Equal(t, 8.0, cfg.Jump.Speed)
	assert.Equal(t, 0.15, cfg.Jump.CoyoteTime)
	assert.Equal(t, 45.0, cfg.Ground.MaxWalkableSlope)
	assert.True(t, cfg.Mantle.AutoMantle)
	assert.Equal(t, 2.5, cfg.FallDamage.Multiplier)
	assert.Equal(t, 5.0, cfg.Locomotion.WalkSpeed)

	// The shipped file documents the defaults
	if diff := cmp.Diff(Default(), *cfg); diff != "" {
		t.Errorf("movement.json drifted from Default() (-default +file):\n%s", diff)
	}
}

func TestLoader_LoadArena(t *testing.T) {
	loader := NewLoader("../../../cmd/sandbox/configs")

	cfg, err := loader.LoadArena("arena.yaml")
	require.NoError(t, err)

	assert.Equal(t, "proving_ground", cfg.ID)
	assert.Equal(t, [3]float64{0, 0.9, 0}, cfg.Spawn)
	require.NotEmpty(t, cfg.Boxes)
	assert.Equal(t, "hangar_floor", cfg.Boxes[0].Name)
	assert.Equal(t, [3]float64{-20, -1, -5}, cfg.Boxes[0].Min)
	assert.Equal(t, "default", cfg.Boxes[1].Surface)
}

func TestLoader_YAMLOverlaysDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"movement.yaml": &fstest.MapFile{Data: []byte("jump:\n  speed: 10\nmantle:\n  autoMantle: false\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadMovement("movement.yaml")
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, 10.0, cfg.Jump.Speed)
	assert.False(t, cfg.Mantle.AutoMantle)
	assert.Equal(t, def.Physics.Gravity, cfg.Physics.Gravity)
	assert.Equal(t, def.Jump.CoyoteTime, cfg.Jump.CoyoteTime)
	assert.Equal(t, "mem", loader.BasePath())
}

func TestLoader_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.json":  &fstest.MapFile{Data: []byte("{ not json")},
		"invalid.json": &fstest.MapFile{Data: []byte(`{"mantle": {"maxHeight": 2.0}}`)},
		"empty.json":   &fstest.MapFile{Data: []byte(`{"id": "void"}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	tests := []struct {
		name string
		load func() error
	}{
		{"missing file", func() error { _, err := loader.LoadMovement("nope.json"); return err }},
		{"malformed json", func() error { _, err := loader.LoadMovement("broken.json"); return err }},
		{"overlapping ranges", func() error { _, err := loader.LoadMovement("invalid.json"); return err }},
		{"arena without colliders", func() error { _, err := loader.LoadArena("empty.json"); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.load())
		})
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 0.9, cfg.Ground.FeetOffset())
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Physics.Gravity = 0
	cfg.Mantle.Duration = -1
	cfg.Ground.MaxWalkableSlope = 120

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "physics.gravity")
	assert.Contains(t, err.Error(), "mantle.duration")
	assert.Contains(t, err.Error(), "maxWalkableSlope")
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "movement.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"jump": {"speed": 8}}`), 0o644))

	w, err := NewWatcher(dir, "movement.json")
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	require.NoError(t, os.WriteFile(file, []byte(`{"jump": {"speed": 12}}`), 0o644))

	select {
	case cfg := <-w.Updates:
		require.NotNil(t, cfg)
		assert.Equal(t, 12.0, cfg.Jump.Speed)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload received")
	}
}
