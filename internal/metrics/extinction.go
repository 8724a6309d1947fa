package metrics

type Extinction struct {
	name      string
	threshold float64
	below     int
	samples   int
}

// NewExtinction tracks the fraction of steps the population spends below
// threshold.
func NewExtinction(threshold float64) *Extinction {
	return &Extinction{
		name:      "extinction_fraction",
		threshold: threshold,
	}
}

func (e *Extinction) Name() string {
	return e.name
}

func (e *Extinction) Observe(n float64, t int) {
	e.samples++
	if n < e.threshold {
		e.below++
	}
}

func (e *Extinction) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return float64(e.below) / float64(e.samples)
}

func (e *Extinction) Reset() {
	e.below = 0
	e.samples = 0
}
