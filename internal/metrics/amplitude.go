package metrics

type Amplitude struct {
	name    string
	min     float64
	max     float64
	samples int
}

// NewAmplitude tracks max minus min population over the run, a cheap
// oscillation indicator.
func NewAmplitude() *Amplitude {
	return &Amplitude{name: "amplitude"}
}

func (a *Amplitude) Name() string {
	return a.name
}

func (a *Amplitude) Observe(n float64, t int) {
	if a.samples == 0 {
		a.min, a.max = n, n
	} else {
		if n < a.min {
			a.min = n
		}
		if n > a.max {
			a.max = n
		}
	}
	a.samples++
}

func (a *Amplitude) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.max - a.min
}

func (a *Amplitude) Reset() {
	a.min = 0
	a.max = 0
	a.samples = 0
}
