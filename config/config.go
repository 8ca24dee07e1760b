// SPDX-License-Identifier: MIT
// Package config loads experiment descriptions for qnetsim.
//
// An Experiment names the topology, the link parameters applied to it, the
// protocol with its users and trial budget, and the output sinks. Values
// are layered: Default() -> YAML file -> QNETSIM_* environment variables.
//
// Errors:
//
//	ErrInvalidConfig  - a field failed validation.
//	ErrNoTopology     - neither a topology file nor a grid size was given.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration loading.
var (
	// ErrInvalidConfig indicates a field outside its allowed range.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrNoTopology indicates that no topology source was configured.
	ErrNoTopology = errors.New("config: no topology configured")
)

// Environment variables consulted by ApplyEnvOverrides.
const (
	EnvSeed     = "QNETSIM_SEED"
	EnvWorkers  = "QNETSIM_WORKERS"
	EnvLogLevel = "QNETSIM_LOG_LEVEL"
)

// validate is the shared validator instance; it caches struct metadata.
var validate = validator.New()

// Experiment describes one simulation.
type Experiment struct {
	Topology TopologyConfig `yaml:"topology"`
	Links    LinkConfig     `yaml:"links"`
	Run      RunConfig      `yaml:"run"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// TopologyConfig selects the network: a node-link file, or a Rows×Cols grid
// when File is empty.
type TopologyConfig struct {
	File string `yaml:"file"`
	Rows int    `yaml:"rows" validate:"gte=0"`
	Cols int    `yaml:"cols" validate:"gte=0"`
}

// LinkConfig holds the link parameters applied to every edge. Nil fields
// keep whatever the topology already carries. When LossDB is set, PEdge is
// derived from each edge length with the fibre attenuation model and P is
// used as the operational success probability.
type LinkConfig struct {
	P      *float64 `yaml:"p" validate:"omitempty,gte=0,lte=1"`
	Qc     *int     `yaml:"qc" validate:"omitempty,gt=0"`
	LossDB *float64 `yaml:"loss_db" validate:"omitempty,gte=0"`
	Length *float64 `yaml:"length" validate:"omitempty,gte=0"`
}

// RunConfig is the protocol invocation.
type RunConfig struct {
	Protocol    string   `yaml:"protocol" validate:"required,oneof=SP MPG MPC"`
	Users       []string `yaml:"users" validate:"min=2,unique,dive,required"`
	Timesteps   int      `yaml:"timesteps" validate:"gt=0"`
	Reps        int      `yaml:"reps" validate:"gt=0"`
	Seed        int64    `yaml:"seed"`
	Workers     int      `yaml:"workers" validate:"gte=0"`
	CountFusion bool     `yaml:"count_fusion"`
}

// OutputConfig names optional result sinks. Empty paths disable them.
type OutputConfig struct {
	MetricsFile string `yaml:"metrics_file"`
	DBPath      string `yaml:"db_path"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn warning error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// Default returns an Experiment on a 3×3 grid with corner users, uniform
// p=1 and Qc=1, 100 trials of 100 timesteps, seed 1.
func Default() *Experiment {
	p, qc := 1.0, 1
	return &Experiment{
		Topology: TopologyConfig{Rows: 3, Cols: 3},
		Links:    LinkConfig{P: &p, Qc: &qc},
		Run: RunConfig{
			Protocol:  "MPC",
			Users:     []string{"0,0", "0,2", "2,0", "2,2"},
			Timesteps: 100,
			Reps:      100,
			Seed:      1,
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// LoadFromFile reads an Experiment from a YAML file on top of Default().
// The result is not validated; call Validate.
func LoadFromFile(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Load returns Default(), or the file at path when path is non-empty, with
// environment overrides applied and the result validated.
func Load(path string) (*Experiment, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field ranges and that a topology source is configured.
func (c *Experiment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if c.Topology.File == "" && (c.Topology.Rows == 0 || c.Topology.Cols == 0) {
		return ErrNoTopology
	}
	if c.Links.LossDB != nil && c.Links.P == nil {
		return fmt.Errorf("links.loss_db requires links.p: %w", ErrInvalidConfig)
	}

	return nil
}

// ApplyEnvOverrides applies QNETSIM_SEED, QNETSIM_WORKERS and
// QNETSIM_LOG_LEVEL. Malformed numbers are reported, not ignored.
func (c *Experiment) ApplyEnvOverrides() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrInvalidConfig)
		}
		c.Run.Seed = seed
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, ErrInvalidConfig)
		}
		c.Run.Workers = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}

	return nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}

	return nil
}

// formatValidationError converts the first validator failure into an
// ErrInvalidConfig carrying the field path and the failed rule.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	fe := verrs[0]
	field := strings.TrimPrefix(fe.Namespace(), "Experiment.")
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrInvalidConfig, field)
	case "oneof":
		return fmt.Errorf("%w: %s must be one of [%s], got %v", ErrInvalidConfig, field, fe.Param(), fe.Value())
	case "min":
		return fmt.Errorf("%w: %s needs at least %s entries", ErrInvalidConfig, field, fe.Param())
	case "unique":
		return fmt.Errorf("%w: %s must not contain duplicates", ErrInvalidConfig, field)
	default:
		return fmt.Errorf("%w: %s failed %s=%s (got %v)", ErrInvalidConfig, field, fe.Tag(), fe.Param(), fe.Value())
	}
}
