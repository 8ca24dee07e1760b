// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "MPC", cfg.Run.Protocol)
	assert.Equal(t, 3, cfg.Topology.Rows)
	require.NotNil(t, cfg.Links.P)
	assert.Equal(t, 1.0, *cfg.Links.P)
}

func TestLoadFromFile_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "exp.yaml", `
topology:
  file: net.json
  rows: 0
  cols: 0
links:
  p: 0.4
  loss_db: 0.2
run:
  protocol: SP
  users: [a, b, c]
  timesteps: 50
  reps: 10
  seed: 42
  workers: 4
  count_fusion: true
output:
  metrics_file: out.prom
  db_path: runs.db
logging:
  level: debug
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "net.json", cfg.Topology.File)
	assert.Equal(t, 0.4, *cfg.Links.P)
	require.NotNil(t, cfg.Links.LossDB)
	assert.Equal(t, 0.2, *cfg.Links.LossDB)
	// qc was not in the file and keeps its default.
	require.NotNil(t, cfg.Links.Qc)
	assert.Equal(t, 1, *cfg.Links.Qc)
	assert.Equal(t, "SP", cfg.Run.Protocol)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Run.Users)
	assert.Equal(t, int64(42), cfg.Run.Seed)
	assert.Equal(t, 4, cfg.Run.Workers)
	assert.True(t, cfg.Run.CountFusion)
	assert.Equal(t, "runs.db", cfg.Output.DBPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := writeFile(t, "bad.yaml", "run: [not, a, map")
	_, err = LoadFromFile(path)
	require.Error(t, err)
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Experiment)
	}{
		{"unknown protocol", func(c *Experiment) { c.Run.Protocol = "XYZ" }},
		{"one user", func(c *Experiment) { c.Run.Users = []string{"a"} }},
		{"duplicate users", func(c *Experiment) { c.Run.Users = []string{"a", "a"} }},
		{"empty user", func(c *Experiment) { c.Run.Users = []string{"a", ""} }},
		{"zero timesteps", func(c *Experiment) { c.Run.Timesteps = 0 }},
		{"negative reps", func(c *Experiment) { c.Run.Reps = -1 }},
		{"negative workers", func(c *Experiment) { c.Run.Workers = -2 }},
		{"p above one", func(c *Experiment) { p := 1.5; c.Links.P = &p }},
		{"zero qc", func(c *Experiment) { qc := 0; c.Links.Qc = &qc }},
		{"negative loss", func(c *Experiment) { l := -0.1; c.Links.LossDB = &l }},
		{"loss without p", func(c *Experiment) { l := 0.2; c.Links.P = nil; c.Links.LossDB = &l }},
		{"bad log level", func(c *Experiment) { c.Logging.Level = "loud" }},
		{"bad log format", func(c *Experiment) { c.Logging.Format = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidate_NoTopology(t *testing.T) {
	cfg := Default()
	cfg.Topology = TopologyConfig{Rows: 3}
	require.ErrorIs(t, cfg.Validate(), ErrNoTopology)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvWorkers, "3")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnvOverrides())
	assert.Equal(t, int64(99), cfg.Run.Seed)
	assert.Equal(t, 3, cfg.Run.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestApplyEnvOverrides_Malformed(t *testing.T) {
	t.Setenv(EnvSeed, "not-a-number")
	require.ErrorIs(t, Default().ApplyEnvOverrides(), ErrInvalidConfig)
}

func TestLoad_FileEnvAndValidation(t *testing.T) {
	t.Setenv(EnvWorkers, "2")
	path := writeFile(t, "exp.yaml", "run:\n  protocol: MPG\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "MPG", cfg.Run.Protocol)
	assert.Equal(t, 2, cfg.Run.Workers)

	bad := writeFile(t, "bad.yaml", "run:\n  reps: 0\n")
	_, err = Load(bad)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadDotEnv(t *testing.T) {
	// Register cleanup for the variable godotenv will set.
	t.Setenv(EnvLogLevel, "")
	require.NoError(t, os.Unsetenv(EnvLogLevel))

	path := writeFile(t, ".env", EnvLogLevel+"=warn\n")
	require.NoError(t, LoadDotEnv(path, filepath.Join(t.TempDir(), "absent.env")))
	assert.Equal(t, "warn", os.Getenv(EnvLogLevel))
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	t.Setenv(EnvSeed, "7")
	path := writeFile(t, ".env", EnvSeed+"=8\n")
	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "7", os.Getenv(EnvSeed))
}
