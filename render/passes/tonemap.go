package passes

import (
	"time"

	"github.com/onigfx/oni/hal"
	"github.com/onigfx/oni/render"
)

// Tonemap resolves the HDR scene color buffer into the LDR back-buffer
// format, consuming the auto-exposure pass's smoothed luminance estimate.
type Tonemap struct {
	pipeline   HotReloadablePipelineStage
	hdrSRV     hal.DescriptorIndex
	ldrUAV     hal.DescriptorIndex
	ldrTex     any
	autoExpose *AutoExposure
}

// NewTonemap creates the pass, reading exposure from the given auto-exposure
// pass instance.
func NewTonemap(autoExpose *AutoExposure) *Tonemap {
	return &Tonemap{autoExpose: autoExpose}
}

func (p *Tonemap) Name() string { return "Tonemapping" }

// SetTargets wires the HDR scene-color SRV read from, and the LDR texture
// and UAV written to.
func (p *Tonemap) SetTargets(hdrSRV hal.DescriptorIndex, ldrTex any, ldrUAV hal.DescriptorIndex) {
	p.hdrSRV = hdrSRV
	p.ldrTex = ldrTex
	p.ldrUAV = ldrUAV
}

func (p *Tonemap) Render(rec render.CommandRecorder, scene render.Scene, width, height int, dt float32) {
	if p.ldrTex == nil {
		return
	}

	rec.ImageBarrier(p.ldrTex, hal.ResourceStateUnorderedAccess, hal.AllSubresources)

	if pipeline := p.currentPipeline(); pipeline != nil {
		rec.BindComputePipeline(pipeline)
		exposure := float32(1)
		if p.autoExpose != nil {
			exposure = p.autoExpose.Luminance()
		}
		rec.PushConstantsCompute([]uint32{
			uint32(p.hdrSRV),
			uint32(p.ldrUAV),
			floatBits(exposure),
		}, 0)
		rec.Dispatch(uint32((width+7)/8), uint32((height+7)/8), 1)
	}
}

func (p *Tonemap) currentPipeline() any {
	if p.pipeline == nil {
		return nil
	}
	return p.pipeline.Current()
}

func (p *Tonemap) Resize(width, height int) {}

func (p *Tonemap) UI(panel render.UIPanel) {}

func (p *Tonemap) Reconstruct() {
	if p.pipeline != nil {
		p.pipeline.CheckForRebuild(time.Now(), p.Name())
	}
}
