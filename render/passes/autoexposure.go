// Package passes implements the fixed chain of render passes composed by
// render.Chain: shadows, deferred lighting, environment sky, color
// correction, auto-exposure, tonemapping, debug overlays, and the final
// blit to the back buffer.
package passes

import (
	"math"
	"time"

	"github.com/onigfx/oni/render"
)

// HistogramBins is the fixed size of the log-luminance histogram buffer.
const HistogramBins = 256

// AutoExposureParams holds the tunable constants spec.md section 4.5's
// worked example names.
type AutoExposureParams struct {
	MinLogLuminance float32 // default -10
	LuminanceRange  float32 // default 12
	Tau             float32 // default 1.1
}

// DefaultAutoExposureParams returns spec.md's documented defaults.
func DefaultAutoExposureParams() AutoExposureParams {
	return AutoExposureParams{MinLogLuminance: -10, LuminanceRange: 12, Tau: 1.1}
}

// AutoExposure implements the two-dispatch auto-exposure pass: a histogram
// build over the scene's log-luminance, then a weighted average reduced
// into a single temporally smoothed luminance estimate.
type AutoExposure struct {
	params    AutoExposureParams
	histogram HotReloadablePipelineStage
	average   HotReloadablePipelineStage
	luminance float32 // current smoothed estimate (the 1x1 R32F texture's value)
	histo     [HistogramBins]uint32
}

// HotReloadablePipelineStage is the subset of render.HotReloadablePipeline
// each compute stage of this pass owns.
type HotReloadablePipelineStage = *render.HotReloadablePipeline

// NewAutoExposure creates the pass with default parameters.
func NewAutoExposure() *AutoExposure {
	return &AutoExposure{params: DefaultAutoExposureParams()}
}

func (p *AutoExposure) Name() string { return "Auto-exposure" }

// BuildHistogram maps a linear luminance sample into one of HistogramBins
// bins, matching the documented clamp-to-edge behavior for out-of-range
// values (clamped to bin 0 or bin 255).
func (p *AutoExposure) BuildHistogram(samples []float32) {
	for i := range p.histo {
		p.histo[i] = 0
	}
	for _, s := range samples {
		bin := p.logLuminanceBin(s)
		p.histo[bin]++
	}
}

func (p *AutoExposure) logLuminanceBin(linear float32) int {
	logLum := float32(math.Log2(float64(maxf(linear, 1e-5))))
	t := (logLum - p.params.MinLogLuminance) / p.params.LuminanceRange
	bin := int(t * float32(HistogramBins))
	if bin < 0 {
		bin = 0
	}
	if bin > HistogramBins-1 {
		bin = HistogramBins - 1
	}
	return bin
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// WeightedAverageLogLuminance reduces the histogram into a single
// log-luminance value, weighting each bin by its sample count.
func (p *AutoExposure) WeightedAverageLogLuminance(totalSamples int) float32 {
	if totalSamples == 0 {
		return 0
	}
	var weighted float64
	for bin, count := range p.histo {
		t := (float32(bin) + 0.5) / float32(HistogramBins)
		logLum := p.params.MinLogLuminance + t*p.params.LuminanceRange
		weighted += float64(count) * float64(logLum)
	}
	return float32(weighted / float64(totalSamples))
}

// Converge advances the smoothed luminance estimate toward target over dt
// seconds, using the documented 1-exp(-dt*tau) temporal smoothing factor.
func (p *AutoExposure) Converge(target float32, dt float32) float32 {
	alpha := float32(1 - math.Exp(-float64(dt)*float64(p.params.Tau)))
	p.luminance += (target - p.luminance) * alpha
	return p.luminance
}

// Luminance returns the current smoothed estimate.
func (p *AutoExposure) Luminance() float32 {
	return p.luminance
}

func (p *AutoExposure) Render(rec render.CommandRecorder, scene render.Scene, width, height int, dt float32) {
	rec.BindComputePipeline(p.histogramPipeline())
	rec.Dispatch(uint32((width+7)/8), uint32((height+7)/8), 1)

	rec.BindComputePipeline(p.averagePipeline())
	rec.Dispatch(1, 1, 1)
}

func (p *AutoExposure) histogramPipeline() any {
	if p.histogram == nil {
		return nil
	}
	return p.histogram.Current()
}

func (p *AutoExposure) averagePipeline() any {
	if p.average == nil {
		return nil
	}
	return p.average.Current()
}

func (p *AutoExposure) Resize(width, height int) {}

func (p *AutoExposure) UI(panel render.UIPanel) {
	panel.Slider("Min log luminance", &p.params.MinLogLuminance, -16, 0)
	panel.Slider("Luminance range", &p.params.LuminanceRange, 1, 20)
	panel.Slider("Tau", &p.params.Tau, 0.01, 5)
}

func (p *AutoExposure) Reconstruct() {
	now := time.Now()
	if p.histogram != nil {
		p.histogram.CheckForRebuild(now, p.Name())
	}
	if p.average != nil {
		p.average.CheckForRebuild(now, p.Name())
	}
}
