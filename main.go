// Command sirs runs the stochastic SIRS lattice automaton and records every
// step as CSV, as an AVI animation and as end-of-run figures.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/cheggaaa/pb/v3"

	"github.com/tigsg/Cellular-Automata-Simulation/config"
	"github.com/tigsg/Cellular-Automata-Simulation/render"
	"github.com/tigsg/Cellular-Automata-Simulation/report"
	"github.com/tigsg/Cellular-Automata-Simulation/sirs"
)

const (
	csvFileName      = "simulation_data.csv"
	videoFileName    = "simulation.avi"
	plotFileName     = "population.png"
	snapshotFileName = "snapshots.png"
	summaryFileName  = "summary.yaml"
)

func main() {
	cfg, err := config.FromArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dir, err := run(ctx, cfg, os.Stderr)
	if errors.Is(err, context.Canceled) {
		log.Printf("Interrupted, partial results saved in %s", dir)
		return
	}
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
	log.Printf("Results saved in %s", dir)
}

// run executes one simulation described by cfg and writes its outputs into a
// fresh folder under cfg.Output.Dir, returning that folder. When ctx is
// cancelled the steps completed so far are still summarized and the
// context error is returned.
func run(ctx context.Context, cfg config.Config, progress io.Writer) (string, error) {
	params := cfg.Params()

	no, err := report.NextRunNumber(cfg.Output.Dir)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(cfg.Output.Dir, report.RunFolderName(no, params))
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create output folder: %w", err)
	}
	log.Printf("Run %d: %s preset, seed %d, output %s", no, cfg.Preset, cfg.Seed, dir)

	sim, err := sirs.New(params, sirs.WithSeed(cfg.Seed))
	if err != nil {
		return dir, err
	}

	rec, err := newRecorder(dir, cfg, params, progress)
	if err != nil {
		return dir, err
	}
	runErr := sim.Run(ctx, rec)
	if err := rec.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return dir, runErr
	}

	series := sim.Series()
	if err := finish(dir, params, series, rec.snapshots); err != nil {
		return dir, err
	}
	return dir, runErr
}

// finish writes the end-of-run figures and summary.
func finish(dir string, params sirs.Params, series *sirs.Series, snapshots []*image.RGBA) error {
	sum := report.Summarize(series)
	if err := report.WriteSummary(filepath.Join(dir, summaryFileName), sum); err != nil {
		return err
	}
	log.Printf("Completed %d steps: peak infected %.2f%% at step %d, final S=%.2f%% I=%.2f%% R=%.2f%%",
		sum.Steps, sum.PeakInfected*100, sum.PeakStep,
		sum.FinalSusceptible*100, sum.FinalInfected*100, sum.FinalRecovered*100)
	if params.Campaign != nil {
		log.Printf("Final vaccinated %.2f%%", sum.FinalVaccinated*100)
	}

	if series.Len() > 0 {
		start := -1
		if params.Campaign != nil {
			start = params.Campaign.Start
		}
		if err := report.SavePopulationPlot(filepath.Join(dir, plotFileName), series, start); err != nil {
			return err
		}
	}

	if len(snapshots) > 0 {
		strip := render.CombineHorizontally(snapshots)
		if err := report.SavePNG(strip, filepath.Join(dir, snapshotFileName)); err != nil {
			return err
		}
		log.Printf("Saved %d snapshots", len(snapshots))
	}
	return nil
}

// recorder is the observer that turns frames into files.
type recorder struct {
	csv      *report.CSVWriter
	video    *render.VideoWriter
	composer *render.Composer
	bar      *pb.ProgressBar

	snapshotEvery int
	logEvery      int
	snapshots     []*image.RGBA
}

func newRecorder(dir string, cfg config.Config, params sirs.Params, progress io.Writer) (*recorder, error) {
	out := cfg.Output
	r := &recorder{
		composer:      render.NewComposer(params, out.CellSize, out.Chart),
		snapshotEvery: out.SnapshotEvery,
		logEvery:      out.LogEvery,
	}

	var err error
	r.csv, err = report.NewCSVWriter(filepath.Join(dir, csvFileName), params)
	if err != nil {
		return nil, err
	}

	if out.Video {
		b := r.composer.Bounds(params.Size)
		r.video, err = render.NewVideoWriter(filepath.Join(dir, videoFileName), b.Dx(), b.Dy(), out.FrameRate, out.JPEGQuality)
		if err != nil {
			r.csv.Close()
			return nil, err
		}
	}

	if out.Progress {
		r.bar = pb.New(params.Steps)
		r.bar.SetWriter(progress)
		r.bar.Start()
	}
	return r, nil
}

func (r *recorder) Observe(f sirs.Frame) error {
	if err := r.csv.Write(f); err != nil {
		return err
	}

	snapshot := r.snapshotEvery > 0 && f.Step%r.snapshotEvery == 0
	if r.video != nil || snapshot {
		img, err := r.composer.Compose(f)
		if err != nil {
			return fmt.Errorf("render frame %d: %w", f.Step, err)
		}
		if r.video != nil {
			if err := r.video.AddFrame(img); err != nil {
				return err
			}
		}
		if snapshot {
			r.snapshots = append(r.snapshots, img)
		}
	}

	if r.logEvery > 0 && f.Step%r.logEvery == 0 {
		log.Printf("Step %d: S=%.2f%% I=%.2f%% R=%.2f%% V=%.2f%%", f.Step,
			f.Fractions[sirs.CategorySusceptible]*100,
			f.Fractions[sirs.CategoryInfected]*100,
			f.Fractions[sirs.CategoryRecovered]*100,
			f.Fractions[sirs.CategoryVaccinated]*100)
	}
	if r.bar != nil {
		r.bar.Increment()
	}
	return nil
}

// Close flushes the CSV and finalizes the video. It is safe to call after a
// failed or interrupted run.
func (r *recorder) Close() error {
	if r.bar != nil {
		r.bar.Finish()
	}
	var errs []error
	if err := r.csv.Close(); err != nil {
		errs = append(errs, err)
	}
	if r.video != nil {
		if err := r.video.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
