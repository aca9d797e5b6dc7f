package passes

import (
	"time"

	"github.com/onigfx/oni/hal"
	"github.com/onigfx/oni/render"
)

// ShadowMapSize is the default resolution of the sun shadow map.
const ShadowMapSize = 4096

// ShadowOrthoParams holds the orthographic projection bounds spec.md
// section 4.5 documents for the sun's directional view-projection.
type ShadowOrthoParams struct {
	Left, Right float32
	Bottom, Top float32
	Near, Far   float32
}

// DefaultShadowOrthoParams returns the documented defaults: -25..25 on X/Y,
// 0.05..50 on Z.
func DefaultShadowOrthoParams() ShadowOrthoParams {
	return ShadowOrthoParams{
		Left: -25, Right: 25,
		Bottom: -25, Top: 25,
		Near: 0.05, Far: 50,
	}
}

// Shadow renders every opaque primitive into a single depth texture from
// the sun's directional view-projection.
type Shadow struct {
	ortho    ShadowOrthoParams
	size     int
	pipeline HotReloadablePipelineStage
	depthDSV hal.DescriptorIndex
	depthSRV hal.DescriptorIndex
	depthTex any
}

// NewShadow creates the pass at the default map size and ortho bounds.
func NewShadow() *Shadow {
	return &Shadow{ortho: DefaultShadowOrthoParams(), size: ShadowMapSize}
}

func (p *Shadow) Name() string { return "Shadow" }

// SetDepthTarget wires in the backend-allocated depth texture and its two
// views; the texture itself is owned by the caller, since allocation and
// lifetime belong to the resource layer, not the pass.
func (p *Shadow) SetDepthTarget(tex any, dsv, srv hal.DescriptorIndex) {
	p.depthTex = tex
	p.depthDSV = dsv
	p.depthSRV = srv
}

// DepthView returns the shader-resource view other passes sample the
// completed shadow map through.
func (p *Shadow) DepthView() hal.DescriptorIndex {
	return p.depthSRV
}

func (p *Shadow) Render(rec render.CommandRecorder, scene render.Scene, width, height int, dt float32) {
	if p.depthTex == nil {
		return
	}

	rec.ImageBarrier(p.depthTex, hal.ResourceStateDepthWrite, hal.AllSubresources)
	rec.SetViewport(0, 0, float32(p.size), float32(p.size))
	rec.BindRenderTargets(nil, p.depthDSV)
	rec.ClearDepthTarget(p.depthDSV)

	if pipeline := p.graphicsPipeline(); pipeline != nil {
		rec.BindGraphicsPipeline(pipeline)
		vp := scene.SunViewProjection()
		rec.PushConstantsGraphics(packFloats(vp[:]), 0)
		rec.DrawIndexed(uint32(scene.OpaqueDrawCount()))
	}

	rec.ImageBarrier(p.depthTex, hal.ResourceStateShaderResource, hal.AllSubresources)
}

func (p *Shadow) graphicsPipeline() any {
	if p.pipeline == nil {
		return nil
	}
	return p.pipeline.Current()
}

func packFloats(f []float32) []uint32 {
	out := make([]uint32, len(f))
	for i, v := range f {
		out[i] = floatBits(v)
	}
	return out
}

func (p *Shadow) Resize(width, height int) {}

func (p *Shadow) UI(panel render.UIPanel) {
	panel.Slider("Ortho left", &p.ortho.Left, -100, 0)
	panel.Slider("Ortho right", &p.ortho.Right, 0, 100)
	panel.Slider("Ortho bottom", &p.ortho.Bottom, -100, 0)
	panel.Slider("Ortho top", &p.ortho.Top, 0, 100)
	panel.Slider("Ortho near", &p.ortho.Near, 0.01, 1)
	panel.Slider("Ortho far", &p.ortho.Far, 1, 200)
}

func (p *Shadow) Reconstruct() {
	if p.pipeline != nil {
		p.pipeline.CheckForRebuild(time.Now(), p.Name())
	}
}
