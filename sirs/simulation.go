package sirs

import (
	"context"
	"fmt"
	"time"
)

// Frame is what the simulation hands to its consumer after each step.
type Frame struct {
	Step        int       // index of the step just completed, 0-based
	Lattice     *Lattice  // committed state after the step, owned by the receiver
	Counts      Counts    // cells per category in Lattice
	Fractions   Fractions // Counts over N*N
	Series      Series    // history up to and including Step; entries never change
	Vaccinated  int       // cells vaccinated by the campaign during this step
	CampaignRun bool      // the campaign drew a batch during this step
}

// Observer receives every frame of a run, in order.
type Observer interface {
	Observe(Frame) error
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Frame) error

func (f ObserverFunc) Observe(fr Frame) error { return f(fr) }

// Option customises a Simulation.
type Option func(*Simulation)

// WithSeed seeds the random source.
func WithSeed(seed int64) Option {
	return func(s *Simulation) { s.rng = NewSource(seed) }
}

// WithSource injects the random source directly.
func WithSource(rng Source) Option {
	return func(s *Simulation) { s.rng = rng }
}

// WithLattice starts from a copy of l instead of the random f0 mask.
func WithLattice(l *Lattice) Option {
	return func(s *Simulation) { s.initial = l }
}

// Simulation is a finite, non-restartable sequence of Params.Steps frames.
//
// Use it like a scanner:
//
//	for sim.Next() {
//		f := sim.Frame()
//		...
//	}
//	if err := sim.Err(); err != nil { ... }
type Simulation struct {
	params  Params
	rng     Source
	initial *Lattice

	grid   *Lattice
	series *Series
	step   int // next step to run
	frame  Frame
	err    error
}

// New validates p and seeds the lattice. Without WithLattice each cell is
// Infected with probability p.InitialInfected, drawn in row-major order.
func New(p Params, opts ...Option) (*Simulation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{params: p}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewSource(time.Now().UnixNano())
	}

	if s.initial != nil {
		if s.initial.Size() != p.Size {
			return nil, fmt.Errorf("%w: initial lattice is %dx%d, want %dx%d",
				ErrInvalidParameter, s.initial.Size(), s.initial.Size(), p.Size, p.Size)
		}
		if err := s.initial.check(p.Refractory); err != nil {
			return nil, fmt.Errorf("%w: initial lattice: %v", ErrInvalidParameter, err)
		}
		s.grid = s.initial.Clone()
	} else {
		s.grid = Seed(p, s.rng)
	}
	// a preset lattice may already hold vaccinated cells without a campaign
	withVaccinated := p.Campaign != nil || s.grid.Count()[CategoryVaccinated] > 0
	s.series = NewSeries(p.Steps, withVaccinated)
	return s, nil
}

// Seed returns a lattice where each cell is Infected with probability
// p.InitialInfected and Susceptible otherwise.
func Seed(p Params, rng Source) *Lattice {
	l := NewLattice(p.Size)
	for idx := range l.cells {
		if rng.Float64() < p.InitialInfected {
			l.cells[idx] = Infected
		}
	}
	return l
}

// Params returns the parameters of the run.
func (s *Simulation) Params() Params { return s.params }

// Lattice returns a copy of the current lattice. Before the first call to
// Next this is the seeded state.
func (s *Simulation) Lattice() *Lattice { return s.grid.Clone() }

// Next runs one step. It returns false once Params.Steps steps have run or
// after an error; the run cannot be restarted.
func (s *Simulation) Next() bool {
	if s.err != nil || s.step >= s.params.Steps {
		return false
	}
	t := s.step

	// vaccinate against the snapshot the transition pass reads
	vaccinated := 0
	campaignRun := false
	if c := s.params.Campaign; c != nil {
		campaignRun = c.Active(t, Coverage(s.grid))
		vaccinated = Vaccinate(s.grid, t, c, s.rng)
	}

	next := Step(s.grid, s.params, s.rng)
	if err := next.check(s.params.Refractory); err != nil {
		s.err = fmt.Errorf("step %d: %w", t, err)
		return false
	}
	s.grid = next

	counts := s.grid.Count()
	fractions := counts.Fractions()
	s.series.Append(fractions)

	s.frame = Frame{
		Step:        t,
		Lattice:     s.grid.Clone(),
		Counts:      counts,
		Fractions:   fractions,
		Series:      s.series.view(),
		Vaccinated:  vaccinated,
		CampaignRun: campaignRun,
	}
	s.step++
	return true
}

// Frame returns the frame produced by the last successful Next.
func (s *Simulation) Frame() Frame { return s.frame }

// Err returns the error that stopped the run, if any.
func (s *Simulation) Err() error { return s.err }

// Done reports whether all steps have run.
func (s *Simulation) Done() bool { return s.step >= s.params.Steps }

// Series returns a copy of the full history recorded so far.
func (s *Simulation) Series() *Series { return s.series.Clone() }

// Run drives the simulation to completion, handing every frame to obs. The
// context is checked between steps only; a step in progress always completes.
func (s *Simulation) Run(ctx context.Context, obs Observer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.Next() {
			return s.Err()
		}
		if err := obs.Observe(s.frame); err != nil {
			return fmt.Errorf("observe step %d: %w", s.frame.Step, err)
		}
	}
}

// view returns the series with capacity capped at length, so a consumer
// appending to it cannot clobber later entries.
func (s *Series) view() Series {
	v := Series{
		Susceptible:    s.Susceptible[:len(s.Susceptible):len(s.Susceptible)],
		Infected:       s.Infected[:len(s.Infected):len(s.Infected)],
		Recovered:      s.Recovered[:len(s.Recovered):len(s.Recovered)],
		withVaccinated: s.withVaccinated,
	}
	if s.withVaccinated {
		v.Vaccinated = s.Vaccinated[:len(s.Vaccinated):len(s.Vaccinated)]
	}
	return v
}
