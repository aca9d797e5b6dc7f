package passes

import (
	"time"

	"github.com/onigfx/oni/hal"
	"github.com/onigfx/oni/render"
)

// EnvironmentSky draws the precomputed IBL environment-map cube texture
// into the regions of the frame the G-buffer depth leaves at far plane.
type EnvironmentSky struct {
	pipeline HotReloadablePipelineStage
	cubeSRV  hal.DescriptorIndex
	colorRTV hal.DescriptorIndex
	colorTex any
}

// NewEnvironmentSky creates the pass with no environment cube bound yet.
func NewEnvironmentSky() *EnvironmentSky {
	return &EnvironmentSky{}
}

func (p *EnvironmentSky) Name() string { return "Environment sky" }

// SetEnvironmentMap wires in the static IBL cube texture's SRV, loaded once
// at startup rather than per frame.
func (p *EnvironmentSky) SetEnvironmentMap(srv hal.DescriptorIndex) {
	p.cubeSRV = srv
}

// SetColorTarget wires the shared scene-color texture this pass draws into.
func (p *EnvironmentSky) SetColorTarget(tex any, rtv hal.DescriptorIndex) {
	p.colorTex = tex
	p.colorRTV = rtv
}

func (p *EnvironmentSky) Render(rec render.CommandRecorder, scene render.Scene, width, height int, dt float32) {
	if p.colorTex == nil {
		return
	}

	rec.ImageBarrier(p.colorTex, hal.ResourceStateRenderTarget, hal.AllSubresources)
	rec.SetViewport(0, 0, float32(width), float32(height))
	rec.BindRenderTargets([]hal.DescriptorIndex{p.colorRTV}, hal.InvalidDescriptorIndex)

	if pipeline := p.currentPipeline(); pipeline != nil {
		rec.BindGraphicsPipeline(pipeline)
		rec.PushConstantsGraphics([]uint32{uint32(p.cubeSRV)}, 0)
		rec.Draw(3) // full-screen triangle
	}
}

func (p *EnvironmentSky) currentPipeline() any {
	if p.pipeline == nil {
		return nil
	}
	return p.pipeline.Current()
}

func (p *EnvironmentSky) Resize(width, height int) {}

func (p *EnvironmentSky) UI(panel render.UIPanel) {}

func (p *EnvironmentSky) Reconstruct() {
	if p.pipeline != nil {
		p.pipeline.CheckForRebuild(time.Now(), p.Name())
	}
}
