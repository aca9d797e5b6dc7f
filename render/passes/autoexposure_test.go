package passes

import (
	"math"
	"testing"
)

func TestDefaultAutoExposureParams(t *testing.T) {
	p := DefaultAutoExposureParams()
	if p.MinLogLuminance != -10 {
		t.Fatalf("MinLogLuminance = %v, want -10", p.MinLogLuminance)
	}
	if p.LuminanceRange != 12 {
		t.Fatalf("LuminanceRange = %v, want 12", p.LuminanceRange)
	}
	if p.Tau != 1.1 {
		t.Fatalf("Tau = %v, want 1.1", p.Tau)
	}
}

func TestBuildHistogramClampsOutOfRangeSamples(t *testing.T) {
	p := NewAutoExposure()
	p.BuildHistogram([]float32{1e-9, 1e9})

	if p.histo[0] == 0 {
		t.Fatalf("expected very dark sample to land in bin 0")
	}
	if p.histo[HistogramBins-1] == 0 {
		t.Fatalf("expected very bright sample to land in the last bin")
	}
}

func TestWeightedAverageLogLuminanceEmptyHistogram(t *testing.T) {
	p := NewAutoExposure()
	if got := p.WeightedAverageLogLuminance(0); got != 0 {
		t.Fatalf("WeightedAverageLogLuminance(0) = %v, want 0", got)
	}
}

func TestWeightedAverageLogLuminanceSingleBin(t *testing.T) {
	p := NewAutoExposure()
	p.BuildHistogram([]float32{1.0})
	bin := p.logLuminanceBin(1.0)

	avg := p.WeightedAverageLogLuminance(1)
	want := p.params.MinLogLuminance + (float32(bin)+0.5)/float32(HistogramBins)*p.params.LuminanceRange
	if math.Abs(float64(avg-want)) > 1e-4 {
		t.Fatalf("WeightedAverageLogLuminance = %v, want %v", avg, want)
	}
}

func TestConvergeMovesTowardTarget(t *testing.T) {
	p := NewAutoExposure()
	p.luminance = 0

	got := p.Converge(1.0, 1.0)
	if got <= 0 || got >= 1.0 {
		t.Fatalf("Converge(1.0, 1.0) = %v, want strictly between 0 and 1", got)
	}
	if p.Luminance() != got {
		t.Fatalf("Luminance() = %v, want %v", p.Luminance(), got)
	}
}

func TestConvergeIsIdempotentAtTarget(t *testing.T) {
	p := NewAutoExposure()
	p.luminance = 2.0

	got := p.Converge(2.0, 1.0)
	if got != 2.0 {
		t.Fatalf("Converge at target = %v, want 2.0 unchanged", got)
	}
}
