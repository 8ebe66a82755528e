// Package config loads run settings from a YAML file and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/tigsg/Cellular-Automata-Simulation/sirs"
)

// ErrUnknownPreset is returned for a preset name that is not defined.
var ErrUnknownPreset = errors.New("unknown preset")

// Config is the complete description of one run.
type Config struct {
	Preset string `yaml:"preset"`
	Seed   int64  `yaml:"seed"`

	GridSize        int     `yaml:"grid_size"`
	Steps           int     `yaml:"steps"`
	Refractory      int     `yaml:"refractory"`
	InfectionProb   float64 `yaml:"infection_prob"`
	SpontaneousProb float64 `yaml:"spontaneous_prob"`
	InitialInfected float64 `yaml:"initial_infected"`

	Vaccination Vaccination `yaml:"vaccination"`
	Output      Output      `yaml:"output"`
}

// Vaccination configures the campaign.
type Vaccination struct {
	Enabled bool    `yaml:"enabled"`
	Start   int     `yaml:"start"`
	Rate    float64 `yaml:"rate"`
	Ceiling float64 `yaml:"ceiling"`
}

// Output configures what the driver writes.
type Output struct {
	Dir         string `yaml:"dir"`
	Video       bool   `yaml:"video"`
	Chart       bool   `yaml:"chart"`
	CellSize    int    `yaml:"cell_size"`
	FrameRate   int    `yaml:"frame_rate"`
	JPEGQuality int    `yaml:"jpeg_quality"`
	// SnapshotEvery saves every n-th frame for the combined snapshot strip,
	// 0 disables it.
	SnapshotEvery int  `yaml:"snapshot_every"`
	LogEvery      int  `yaml:"log_every"`
	Progress      bool `yaml:"progress"`
}

// Preset names.
const (
	PresetEndemic  = "endemic"
	PresetCampaign = "campaign"
)

func defaultOutput() Output {
	return Output{
		Dir:           "runs",
		Video:         true,
		Chart:         true,
		CellSize:      5,
		FrameRate:     20,
		JPEGQuality:   90,
		SnapshotEvery: 0,
		LogEvery:      100,
		Progress:      true,
	}
}

var presets = map[string]Config{
	// Self-sustaining spiral waves: short immunity, rare re-ignition.
	PresetEndemic: {
		Preset:          PresetEndemic,
		Seed:            42,
		GridSize:        100,
		Steps:           1000,
		Refractory:      8,
		InfectionProb:   1.0,
		SpontaneousProb: 0.0005,
		InitialInfected: 0.05,
		Output:          defaultOutput(),
	},
	// The campaign arrives at step 300, once the epidemic is established.
	PresetCampaign: {
		Preset:          PresetCampaign,
		Seed:            42,
		GridSize:        100,
		Steps:           1000,
		Refractory:      20,
		InfectionProb:   1.0,
		SpontaneousProb: 0.001,
		InitialInfected: 0.01,
		Vaccination: Vaccination{
			Enabled: true,
			Start:   300,
			Rate:    0.005,
			Ceiling: 0.85,
		},
		Output: defaultOutput(),
	},
}

// Presets lists the preset names in order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a copy of the named preset.
func Preset(name string) (Config, error) {
	cfg, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w %q, want one of %v", ErrUnknownPreset, name, Presets())
	}
	return cfg, nil
}

// Load reads a YAML file. Keys missing from the file keep the values of the
// preset named in the file, or of fallback when the file names none.
func Load(path, fallback string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, fallback)
}

// Parse is Load on an in-memory document.
func Parse(data []byte, fallback string) (Config, error) {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	name := head.Preset
	if name == "" {
		name = fallback
	}
	cfg, err := Preset(name)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Params converts the simulation part of the config.
func (c Config) Params() sirs.Params {
	p := sirs.Params{
		Size:            c.GridSize,
		Steps:           c.Steps,
		Refractory:      c.Refractory,
		InfectionProb:   c.InfectionProb,
		SpontaneousProb: c.SpontaneousProb,
		InitialInfected: c.InitialInfected,
	}
	if c.Vaccination.Enabled {
		p.Campaign = &sirs.Campaign{
			Start:   c.Vaccination.Start,
			Rate:    c.Vaccination.Rate,
			Ceiling: c.Vaccination.Ceiling,
		}
	}
	return p
}

// Validate checks the simulation parameters and the output settings.
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	o := c.Output
	switch {
	case o.Dir == "":
		return errors.New("output dir must not be empty")
	case o.CellSize <= 0:
		return fmt.Errorf("output cell_size must be positive, got %d", o.CellSize)
	case o.FrameRate <= 0:
		return fmt.Errorf("output frame_rate must be positive, got %d", o.FrameRate)
	case o.JPEGQuality < 1 || o.JPEGQuality > 100:
		return fmt.Errorf("output jpeg_quality must be in [1,100], got %d", o.JPEGQuality)
	case o.SnapshotEvery < 0:
		return fmt.Errorf("output snapshot_every must not be negative, got %d", o.SnapshotEvery)
	case o.LogEvery < 0:
		return fmt.Errorf("output log_every must not be negative, got %d", o.LogEvery)
	}
	return nil
}
