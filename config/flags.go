package config

import (
	"flag"
	"fmt"
	"io"
)

// FromArgs builds the run config from command-line arguments.
//
// The base is the -preset (default "campaign"), replaced by the -config file
// when given; any other flag set explicitly overrides the value from either.
func FromArgs(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("sirs", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		path   = fs.String("config", "", "YAML config file")
		preset = fs.String("preset", PresetCampaign, fmt.Sprintf("base preset, one of %v", Presets()))

		seed     = fs.Int64("seed", 0, "random seed")
		size     = fs.Int("size", 0, "lattice side N")
		steps    = fs.Int("steps", 0, "number of steps T")
		k        = fs.Int("refractory", 0, "refractory length K")
		pInf     = fs.Float64("p-inf", 0, "infection probability with an infected neighbor")
		pSpont   = fs.Float64("p-spont", 0, "spontaneous infection probability")
		f0       = fs.Float64("f0", 0, "initial infected fraction")
		vaccine  = fs.Bool("vaccination", false, "enable the vaccination campaign")
		vacStart = fs.Int("vac-start", 0, "campaign start step")
		vacRate  = fs.Float64("vac-rate", 0, "fraction of cells drawn per campaign step")
		vacMax   = fs.Float64("vac-max", 0, "coverage ceiling")

		out      = fs.String("out", "", "output base directory")
		video    = fs.Bool("video", true, "write the AVI animation")
		chart    = fs.Bool("chart", true, "draw the population curve next to the lattice")
		cellSize = fs.Int("cell-size", 0, "pixels per cell")
		fps      = fs.Int("fps", 0, "video frame rate")
		snapshot = fs.Int("snapshot-every", 0, "save every n-th frame to the snapshot strip, 0 disables")
		logEvery = fs.Int("log-every", 0, "log statistics every n steps, 0 disables")
		progress = fs.Bool("progress", true, "show a progress bar")
	)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	var (
		cfg Config
		err error
	)
	if *path != "" {
		cfg, err = Load(*path, *preset)
	} else {
		cfg, err = Preset(*preset)
	}
	if err != nil {
		return Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "size":
			cfg.GridSize = *size
		case "steps":
			cfg.Steps = *steps
		case "refractory":
			cfg.Refractory = *k
		case "p-inf":
			cfg.InfectionProb = *pInf
		case "p-spont":
			cfg.SpontaneousProb = *pSpont
		case "f0":
			cfg.InitialInfected = *f0
		case "vaccination":
			cfg.Vaccination.Enabled = *vaccine
		case "vac-start":
			cfg.Vaccination.Start = *vacStart
		case "vac-rate":
			cfg.Vaccination.Rate = *vacRate
		case "vac-max":
			cfg.Vaccination.Ceiling = *vacMax
		case "out":
			cfg.Output.Dir = *out
		case "video":
			cfg.Output.Video = *video
		case "chart":
			cfg.Output.Chart = *chart
		case "cell-size":
			cfg.Output.CellSize = *cellSize
		case "fps":
			cfg.Output.FrameRate = *fps
		case "snapshot-every":
			cfg.Output.SnapshotEvery = *snapshot
		case "log-every":
			cfg.Output.LogEvery = *logEvery
		case "progress":
			cfg.Output.Progress = *progress
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
