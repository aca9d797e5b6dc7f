package passes

import (
	"time"

	"github.com/onigfx/oni/hal"
	"github.com/onigfx/oni/render"
)

// ColorCorrectionParams holds the grading controls exposed to the UI.
type ColorCorrectionParams struct {
	Exposure   float32
	Contrast   float32
	Saturation float32
}

// DefaultColorCorrectionParams returns neutral grading values.
func DefaultColorCorrectionParams() ColorCorrectionParams {
	return ColorCorrectionParams{Exposure: 0, Contrast: 1, Saturation: 1}
}

// ColorCorrection applies exposure/contrast/saturation grading to the scene
// color buffer in place, as a full-screen compute pass.
type ColorCorrection struct {
	params   ColorCorrectionParams
	pipeline HotReloadablePipelineStage
	colorUAV hal.DescriptorIndex
	colorTex any
}

func NewColorCorrection() *ColorCorrection {
	return &ColorCorrection{params: DefaultColorCorrectionParams()}
}

func (p *ColorCorrection) Name() string { return "Color correction" }

// SetColorTarget wires the scene-color texture this pass grades in place.
func (p *ColorCorrection) SetColorTarget(tex any, uav hal.DescriptorIndex) {
	p.colorTex = tex
	p.colorUAV = uav
}

func (p *ColorCorrection) Render(rec render.CommandRecorder, scene render.Scene, width, height int, dt float32) {
	if p.colorTex == nil {
		return
	}

	rec.ImageBarrier(p.colorTex, hal.ResourceStateUnorderedAccess, hal.AllSubresources)

	if pipeline := p.currentPipeline(); pipeline != nil {
		rec.BindComputePipeline(pipeline)
		rec.PushConstantsCompute([]uint32{
			uint32(p.colorUAV),
			floatBits(p.params.Exposure),
			floatBits(p.params.Contrast),
			floatBits(p.params.Saturation),
		}, 0)
		rec.Dispatch(uint32((width+7)/8), uint32((height+7)/8), 1)
	}
}

func (p *ColorCorrection) currentPipeline() any {
	if p.pipeline == nil {
		return nil
	}
	return p.pipeline.Current()
}

func (p *ColorCorrection) Resize(width, height int) {}

func (p *ColorCorrection) UI(panel render.UIPanel) {
	panel.Slider("Exposure", &p.params.Exposure, -4, 4)
	panel.Slider("Contrast", &p.params.Contrast, 0, 2)
	panel.Slider("Saturation", &p.params.Saturation, 0, 2)
}

func (p *ColorCorrection) Reconstruct() {
	if p.pipeline != nil {
		p.pipeline.CheckForRebuild(time.Now(), p.Name())
	}
}
