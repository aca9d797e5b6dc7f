package passes

import (
	"time"

	"github.com/onigfx/oni/hal"
	"github.com/onigfx/oni/render"
)

// DebugOverlay draws debug lines, AABBs, and motion vectors over the
// tonemapped frame. Each category can be toggled independently from the
// inspector panel.
type DebugOverlay struct {
	ShowLines  bool
	ShowAABBs  bool
	ShowMotion bool

	linePipeline HotReloadablePipelineStage
	colorRTV     hal.DescriptorIndex
	colorTex     any

	lineVertexCount int
}

func NewDebugOverlay() *DebugOverlay {
	return &DebugOverlay{}
}

func (p *DebugOverlay) Name() string { return "Debug overlays" }

// SetColorTarget wires the back-buffer-bound color texture this pass draws
// directly on top of.
func (p *DebugOverlay) SetColorTarget(tex any, rtv hal.DescriptorIndex) {
	p.colorTex = tex
	p.colorRTV = rtv
}

// SetLineVertexCount records how many line-list vertices the current
// frame's debug geometry (from scene queries, not this pass) produced.
func (p *DebugOverlay) SetLineVertexCount(count int) {
	p.lineVertexCount = count
}

func (p *DebugOverlay) Render(rec render.CommandRecorder, scene render.Scene, width, height int, dt float32) {
	if p.colorTex == nil {
		return
	}
	if !p.ShowLines && !p.ShowAABBs && !p.ShowMotion {
		return
	}

	rec.ImageBarrier(p.colorTex, hal.ResourceStateRenderTarget, hal.AllSubresources)
	rec.SetViewport(0, 0, float32(width), float32(height))
	rec.BindRenderTargets([]hal.DescriptorIndex{p.colorRTV}, hal.InvalidDescriptorIndex)
	rec.SetTopology(render.TopologyLineList)

	if pipeline := p.currentLinePipeline(); pipeline != nil && p.lineVertexCount > 0 {
		rec.BindGraphicsPipeline(pipeline)
		rec.Draw(uint32(p.lineVertexCount))
	}
}

func (p *DebugOverlay) currentLinePipeline() any {
	if p.linePipeline == nil {
		return nil
	}
	return p.linePipeline.Current()
}

func (p *DebugOverlay) Resize(width, height int) {}

func (p *DebugOverlay) UI(panel render.UIPanel) {
	panel.Checkbox("Lines", &p.ShowLines)
	panel.Checkbox("AABBs", &p.ShowAABBs)
	panel.Checkbox("Motion vectors", &p.ShowMotion)
}

func (p *DebugOverlay) Reconstruct() {
	if p.linePipeline != nil {
		p.linePipeline.CheckForRebuild(time.Now(), p.Name())
	}
}
