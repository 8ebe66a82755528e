package sirs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaccinateSkipsInfectedAndVaccinated(t *testing.T) {
	l := NewLattice(4)
	l.Set(0, 0, Infected)
	l.Set(0, 1, Vaccinated)
	l.Set(2, 3, State(5))

	c := &Campaign{Start: 0, Rate: 0.25, Ceiling: 0.5} // 4 draws on 16 cells
	rng := &scriptedSource{ints: []int{
		0, 0, // infected, skipped
		0, 1, // already vaccinated
		1, 1, // susceptible, vaccinated
		1, 1, // duplicate, wasted
	}}

	got := Vaccinate(l, 0, c, rng)
	assert.Equal(t, 1, got)
	assert.Equal(t, Infected, l.At(0, 0))
	assert.Equal(t, Vaccinated, l.At(1, 1))
	assert.Equal(t, State(5), l.At(2, 3))
	assert.Empty(t, rng.ints)
}

func TestVaccinateRefractoryCellsAreEligible(t *testing.T) {
	l := NewLattice(2)
	l.Set(1, 0, State(4))
	c := &Campaign{Start: 0, Rate: 0.25, Ceiling: 1}
	got := Vaccinate(l, 7, c, &scriptedSource{ints: []int{1, 0}})
	assert.Equal(t, 1, got)
	assert.Equal(t, Vaccinated, l.At(1, 0))
}

func TestVaccinateGating(t *testing.T) {
	c := &Campaign{Start: 10, Rate: 0.5, Ceiling: 0.25}

	t.Run("before start", func(t *testing.T) {
		l := NewLattice(4)
		rng := &constSource{}
		assert.Zero(t, Vaccinate(l, 9, c, rng))
		assert.Zero(t, rng.ints, "no coordinates drawn before the campaign starts")
	})

	t.Run("ceiling reached", func(t *testing.T) {
		l := NewLattice(4)
		for j := 0; j < 4; j++ {
			l.Set(0, j, Vaccinated)
		}
		require.InDelta(t, 0.25, Coverage(l), 1e-12)
		rng := &constSource{}
		assert.Zero(t, Vaccinate(l, 50, c, rng))
		assert.Zero(t, rng.ints)
	})

	t.Run("nil campaign", func(t *testing.T) {
		assert.Zero(t, Vaccinate(NewLattice(4), 50, nil, &constSource{}))
	})
}

func TestVaccinateMayOvershootCeiling(t *testing.T) {
	l := NewLattice(4)
	c := &Campaign{Start: 0, Rate: 0.5, Ceiling: 0.1} // 8 draws, ceiling below one draw
	ints := make([]int, 0, 16)
	for k := 0; k < 8; k++ {
		ints = append(ints, k/4, k%4)
	}
	got := Vaccinate(l, 0, c, &scriptedSource{ints: ints})
	assert.Equal(t, 8, got)
	assert.InDelta(t, 0.5, Coverage(l), 1e-12)
}
