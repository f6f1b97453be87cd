package metrics

// PercentileEstimator is a streaming multi-quantile estimator using the
// P-Square algorithm (Jain & Chlamtac, 1985): O(1) per-observation updates
// and O(1) quantile retrieval, without storing observations. Ported from
// the teacher's pSquareQuantile/pSquareMultiQuantile, renamed for this
// package's own latency-tracking use (scheduler dispatch-to-run timing)
// rather than the teacher's event-loop timer/task instrumentation.
//
// Not safe for concurrent use; callers needing that guard it themselves
// (see BasicHistogram).
type PercentileEstimator struct {
	estimators []*quantileMarker
	sum        float64
	count      int
	max        float64
}

// NewPercentileEstimator creates an estimator tracking each of percentiles
// (each in [0, 1]).
func NewPercentileEstimator(percentiles ...float64) *PercentileEstimator {
	e := &PercentileEstimator{
		estimators: make([]*quantileMarker, len(percentiles)),
		max:        0,
	}
	for i, p := range percentiles {
		e.estimators[i] = newQuantileMarker(p)
	}
	return e
}

// Update adds a new observation to every tracked quantile.
func (e *PercentileEstimator) Update(x float64) {
	e.count++
	e.sum += x
	if e.count == 1 || x > e.max {
		e.max = x
	}
	for _, m := range e.estimators {
		m.update(x)
	}
}

// Quantile returns the current estimate for the i-th percentile passed to
// NewPercentileEstimator, or 0 if i is out of range.
func (e *PercentileEstimator) Quantile(i int) float64 {
	if i < 0 || i >= len(e.estimators) {
		return 0
	}
	return e.estimators[i].quantile()
}

// Count returns the total number of observations.
func (e *PercentileEstimator) Count() int { return e.count }

// Sum returns the sum of all observations.
func (e *PercentileEstimator) Sum() float64 { return e.sum }

// Max returns the maximum observed value.
func (e *PercentileEstimator) Max() float64 { return e.max }

// Mean returns the arithmetic mean of all observations.
func (e *PercentileEstimator) Mean() float64 {
	if e.count == 0 {
		return 0
	}
	return e.sum / float64(e.count)
}

// quantileMarker tracks a single target quantile via the five-marker
// P-Square scheme.
type quantileMarker struct {
	p  float64
	q  [5]float64
	n  [5]int
	np [5]float64
	dn [5]float64

	count      int
	initBuffer [5]float64
}

func newQuantileMarker(p float64) *quantileMarker {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return &quantileMarker{
		p:  p,
		dn: [5]float64{0, p / 2, p, (1 + p) / 2, 1},
	}
}

func (m *quantileMarker) update(x float64) {
	m.count++

	if m.count <= 5 {
		m.initBuffer[m.count-1] = x
		if m.count == 5 {
			m.initialize()
		}
		return
	}

	var k int
	if x < m.q[0] {
		m.q[0] = x
		k = 0
	} else if x >= m.q[4] {
		m.q[4] = x
		k = 3
	} else {
		for k = 0; k < 4; k++ {
			if m.q[k] <= x && x < m.q[k+1] {
				break
			}
		}
	}

	for i := k + 1; i < 5; i++ {
		m.n[i]++
	}
	for i := 0; i < 5; i++ {
		m.np[i] += m.dn[i]
	}

	for i := 1; i < 4; i++ {
		d := m.np[i] - float64(m.n[i])
		if (d >= 1 && m.n[i+1]-m.n[i] > 1) || (d <= -1 && m.n[i-1]-m.n[i] < -1) {
			sign := 1
			if d < 0 {
				sign = -1
			}
			qPrime := m.parabolic(i, sign)
			if m.q[i-1] < qPrime && qPrime < m.q[i+1] {
				m.q[i] = qPrime
			} else {
				m.q[i] = m.linear(i, sign)
			}
			m.n[i] += sign
		}
	}
}

func (m *quantileMarker) initialize() {
	for i := 1; i < 5; i++ {
		key := m.initBuffer[i]
		j := i - 1
		for j >= 0 && m.initBuffer[j] > key {
			m.initBuffer[j+1] = m.initBuffer[j]
			j--
		}
		m.initBuffer[j+1] = key
	}
	for i := 0; i < 5; i++ {
		m.q[i] = m.initBuffer[i]
		m.n[i] = i
	}
	m.np = [5]float64{0, 2 * m.p, 4 * m.p, 2 + 2*m.p, 4}
}

func (m *quantileMarker) parabolic(i, d int) float64 {
	df := float64(d)
	ni := float64(m.n[i])
	niPrev := float64(m.n[i-1])
	niNext := float64(m.n[i+1])

	term1 := df / (niNext - niPrev)
	term2 := (ni - niPrev + df) * (m.q[i+1] - m.q[i]) / (niNext - ni)
	term3 := (niNext - ni - df) * (m.q[i] - m.q[i-1]) / (ni - niPrev)

	return m.q[i] + term1*(term2+term3)
}

func (m *quantileMarker) linear(i, d int) float64 {
	if d == 1 {
		return m.q[i] + (m.q[i+1]-m.q[i])/float64(m.n[i+1]-m.n[i])
	}
	return m.q[i] - (m.q[i]-m.q[i-1])/float64(m.n[i]-m.n[i-1])
}

func (m *quantileMarker) quantile() float64 {
	if m.count == 0 {
		return 0
	}
	if m.count < 5 {
		sorted := make([]float64, m.count)
		copy(sorted, m.initBuffer[:m.count])
		for i := 1; i < m.count; i++ {
			key := sorted[i]
			j := i - 1
			for j >= 0 && sorted[j] > key {
				sorted[j+1] = sorted[j]
				j--
			}
			sorted[j+1] = key
		}
		index := int(float64(m.count-1) * m.p)
		if index >= m.count {
			index = m.count - 1
		}
		return sorted[index]
	}
	return m.q[2]
}
