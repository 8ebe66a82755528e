package sirs

// scriptedSource replays fixed draws and fails the test run if it runs dry.
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		panic("scriptedSource: out of float draws")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		panic("scriptedSource: out of int draws")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

// constSource always returns the same draw and counts how often it was asked.
type constSource struct {
	f      float64
	floats int
	ints   int
}

func (c *constSource) Float64() float64 {
	c.floats++
	return c.f
}

func (c *constSource) Intn(n int) int {
	c.ints++
	return 0
}
