package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/vfh/systems"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 800.0, cfg.Derived.WorldW)
	assert.Equal(t, 600.0, cfg.Derived.WorldH)
	assert.Len(t, cfg.Obstacles, 13)
	assert.Equal(t, systems.DefaultParams(), cfg.NavParams())
	assert.Equal(t, systems.Pose{X: 100, Y: 100}, cfg.StartPose())

	scene := cfg.Scene()
	assert.Equal(t, systems.Vec2{X: 700, Y: 500}, scene.Target)
	assert.Equal(t, systems.Rect{X: 50, Y: 50, W: 800, H: 20}, scene.Obstacles[0])
}

func TestLoadOverlaysUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
selector:
  safety_threshold: 0.25
obstacles:
  - {x: 10, y: 20, width: 30, height: 40}
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.25, cfg.Selector.SafetyThreshold)
	assert.Equal(t, -5, cfg.Selector.WindowBefore, "unset fields keep defaults")
	assert.Equal(t, []ObstacleConfig{{X: 10, Y: 20, Width: 30, Height: 40}}, cfg.Obstacles)
}

func TestLoadRejectsZeroSectors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sensor:\n  num_sectors: 0\n"), 0644))

	_, err := Load(path)

	assert.ErrorIs(t, err, systems.ErrInvalidParams)
}

func TestLoadRejectsStartOutsideWorld(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("robot:\n  start: {x: 900, y: 100}\n"), 0644))

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := MustLoad("")
	cfg.Selector.SafetyThreshold = 0.33
	path := filepath.Join(t.TempDir(), "out.yaml")

	require.NoError(t, cfg.WriteYAML(path))
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.NavParams(), loaded.NavParams())
	assert.Equal(t, cfg.Obstacles, loaded.Obstacles)
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := MustLoad("")
	clone := cfg.Clone()
	clone.Obstacles[0].X = 999
	clone.Robot.Radius = 1

	assert.Equal(t, 50.0, cfg.Obstacles[0].X)
	assert.Equal(t, 15.0, cfg.Robot.Radius)
}
