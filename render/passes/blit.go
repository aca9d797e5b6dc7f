package passes

import (
	"github.com/onigfx/oni/hal"
	"github.com/onigfx/oni/render"
)

// Blit copies the tonemapped LDR color texture into the swap chain's
// current back buffer, the final step of the fixed composition order.
type Blit struct {
	srcSRV     hal.DescriptorIndex
	backbuffer any
	backRTV    hal.DescriptorIndex
	pipeline   HotReloadablePipelineStage
}

func NewBlit() *Blit {
	return &Blit{}
}

func (p *Blit) Name() string { return "Copy to back buffer" }

// SetSource wires the LDR texture's SRV to sample from.
func (p *Blit) SetSource(srv hal.DescriptorIndex) {
	p.srcSRV = srv
}

// SetBackBuffer wires the swap chain's current back-buffer texture and RTV;
// called once per frame after acquisition, since the back buffer rotates.
func (p *Blit) SetBackBuffer(tex any, rtv hal.DescriptorIndex) {
	p.backbuffer = tex
	p.backRTV = rtv
}

func (p *Blit) Render(rec render.CommandRecorder, scene render.Scene, width, height int, dt float32) {
	if p.backbuffer == nil {
		return
	}

	rec.ImageBarrier(p.backbuffer, hal.ResourceStateRenderTarget, hal.AllSubresources)
	rec.SetViewport(0, 0, float32(width), float32(height))
	rec.BindRenderTargets([]hal.DescriptorIndex{p.backRTV}, hal.InvalidDescriptorIndex)

	if pipeline := p.currentPipeline(); pipeline != nil {
		rec.BindGraphicsPipeline(pipeline)
		rec.PushConstantsGraphics([]uint32{uint32(p.srcSRV)}, 0)
		rec.Draw(3)
	}

	rec.ImageBarrier(p.backbuffer, hal.ResourceStatePresent, hal.AllSubresources)
}

func (p *Blit) currentPipeline() any {
	if p.pipeline == nil {
		return nil
	}
	return p.pipeline.Current()
}

func (p *Blit) Resize(width, height int) {}

func (p *Blit) UI(panel render.UIPanel) {}

func (p *Blit) Reconstruct() {}
