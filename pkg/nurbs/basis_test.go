package nurbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasisPartitionOfUnity(t *testing.T) {
	for k := 0; k <= 100; k++ {
		tt := float32(k) / 100
		var sum float32
		for i := 0; i < Size; i++ {
			sum += Basis(i, tt)
		}
		assert.InDelta(t, 1.0, sum, 1e-5, "t=%v", tt)
	}
}

func TestBasisKnownValues(t *testing.T) {
	tests := []struct {
		t    float32
		want [Size]float32
	}{
		{0, [Size]float32{1.0 / 6, 4.0 / 6, 1.0 / 6, 0}},
		{1, [Size]float32{0, 1.0 / 6, 4.0 / 6, 1.0 / 6}},
		{0.5, [Size]float32{1.0 / 48, 23.0 / 48, 23.0 / 48, 1.0 / 48}},
	}
	for _, tc := range tests {
		got := BasisVector(tc.t)
		for i := range got {
			assert.InDelta(t, tc.want[i], got[i], 1e-6, "B%d(%v)", i, tc.t)
		}
	}
}

func TestBasisOutOfRangeIndex(t *testing.T) {
	assert.Zero(t, Basis(-1, 0.5))
	assert.Zero(t, Basis(4, 0.5))
}
