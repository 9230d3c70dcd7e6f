package indicator

// Series is an indicator output aligned index-for-index with its source
// price series. Warm-up positions (and positions a kernel cannot compute,
// like a momentum over a zero base) are undefined rather than carrying a
// sentinel value — 0 is a legitimate output for several indicators.
type Series struct {
	values  []float64
	defined []bool
}

func newSeries(n int) *Series {
	return &Series{
		values:  make([]float64, n),
		defined: make([]bool, n),
	}
}

func (s *Series) set(i int, v float64) {
	s.values[i] = v
	s.defined[i] = true
}

// Len returns the series length (always the source series length).
func (s *Series) Len() int { return len(s.values) }

// At returns the value at i and whether it is defined. Out-of-range
// indexes are undefined.
func (s *Series) At(i int) (float64, bool) {
	if i < 0 || i >= len(s.values) {
		return 0, false
	}
	return s.values[i], s.defined[i]
}

// Value returns the value at i, or 0 when undefined. Use At when 0 is a
// meaningful output.
func (s *Series) Value(i int) float64 {
	v, ok := s.At(i)
	if !ok {
		return 0
	}
	return v
}

// FirstDefined returns the index of the first defined value, or -1 when
// the whole series is undefined.
func (s *Series) FirstDefined() int {
	for i, ok := range s.defined {
		if ok {
			return i
		}
	}
	return -1
}
