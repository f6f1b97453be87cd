package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicProvider_CounterAccumulates(t *testing.T) {
	p := NewBasicProvider()
	c := p.Counter("requests").(*BasicCounter)
	c.Add(1)
	c.Add(2)
	assert.Equal(t, int64(3), c.Snapshot())
}

func TestBasicProvider_ReusesInstrumentByName(t *testing.T) {
	p := NewBasicProvider()
	a := p.Counter("x")
	b := p.Counter("x")
	a.Add(5)
	assert.Equal(t, int64(5), b.(*BasicCounter).Snapshot())
}

func TestBasicProvider_UpDownCounter(t *testing.T) {
	p := NewBasicProvider()
	u := p.UpDownCounter("in_flight").(*BasicUpDownCounter)
	u.Add(3)
	u.Add(-1)
	assert.Equal(t, int64(2), u.Snapshot())
}

func TestBasicHistogram_Snapshot(t *testing.T) {
	h := NewBasicHistogram()
	for _, v := range []float64{1, 2, 3, 4, 5} {
		h.Record(v)
	}

	snap := h.Snapshot()
	assert.Equal(t, 5, snap.Count)
	assert.Equal(t, 15.0, snap.Sum)
	assert.Equal(t, 5.0, snap.Max)
	assert.Equal(t, 3.0, snap.Mean)
}

func TestBasicProvider_ConcurrentAccess(t *testing.T) {
	p := NewBasicProvider()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Counter("shared").Add(1)
			p.Histogram("latency").Record(1.0)
		}()
	}
	wg.Wait()

	c, ok := p.Counter("shared").(*BasicCounter)
	require.True(t, ok)
	assert.Equal(t, int64(100), c.Snapshot())
}
