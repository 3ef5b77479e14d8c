package telemetry

import (
	"math"
	"testing"
)

func TestComputeHPStats(t *testing.T) {
	tests := []struct {
		name                string
		values              []float64
		mean, p10, p50, p90 float64
	}{
		{"empty", nil, 0, 0, 0, 0},
		{"single", []float64{50}, 50, 50, 50, 50},
		{"unsorted ten", []float64{10, 2, 9, 1, 8, 3, 7, 4, 6, 5}, 5.5, 1, 5, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, p10, p50, p90 := ComputeHPStats(tt.values)
			got := []float64{mean, p10, p50, p90}
			want := []float64{tt.mean, tt.p10, tt.p50, tt.p90}
			for i := range got {
				if math.Abs(got[i]-want[i]) > 1e-9 {
					t.Errorf("stat %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestComputeHPStatsKeepsInput(t *testing.T) {
	values := []float64{3, 1, 2}
	ComputeHPStats(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered: %v", values)
	}
}
