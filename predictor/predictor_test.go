package predictor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFCMPredictsRepeatedValue(t *testing.T) {
	p := NewFCM(Size)
	require.Equal(t, uint64(0), p.PredictNext())

	p.Update(42)
	require.Equal(t, uint64(42), p.PredictNext(), "same hash slot should repeat last value")
}

func TestFCMDeterministic(t *testing.T) {
	seq := []uint64{1, 2, 3, 4, 1 << 50, 7}

	p1 := NewFCM(Size)
	p2 := NewFCM(Size)

	for _, v := range seq {
		require.Equal(t, p1.PredictNext(), p2.PredictNext())
		p1.Update(v)
		p2.Update(v)
	}
}

func TestFCMPanicsOnNonPowerOfTwo(t *testing.T) {
	require.Panics(t, func() { NewFCM(100) })
}

func TestDFCMTracksConstantDelta(t *testing.T) {
	p := NewDFCM(Size)
	values := []uint64{100, 110, 120, 130, 140}

	for i, v := range values {
		if i > 1 {
			// After the first two updates, prediction should match exactly: the deltas are
			// too small to move the hash (delta>>40 is 0), so slot 0 holds the last delta.
			got := p.PredictNext()
			p.Update(v)
			require.Equal(t, v, got, "constant-delta sequence should predict exactly after warm-up")
		} else {
			p.Update(v)
		}
	}
}

func TestDFCMDeterministic(t *testing.T) {
	seq := []uint64{5, 9, 2, 100, 1 << 45}

	p1 := NewDFCM(Size)
	p2 := NewDFCM(Size)

	for _, v := range seq {
		require.Equal(t, p1.PredictNext(), p2.PredictNext())
		p1.Update(v)
		p2.Update(v)
	}
}

func TestDFCMPanicsOnNonPowerOfTwo(t *testing.T) {
	require.Panics(t, func() { NewDFCM(3) })
}
