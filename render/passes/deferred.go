package passes

import (
	"time"

	"github.com/onigfx/oni/hal"
	"github.com/onigfx/oni/render"
)

// GBufferAttachment identifies one slot of the deferred pass's G-buffer.
type GBufferAttachment int

const (
	GBufferAlbedo GBufferAttachment = iota
	GBufferNormal
	GBufferMaterial
	GBufferDepth
)

// Deferred renders the opaque scene into a G-buffer, then resolves it
// against the shadow map and light list in a second, full-screen pass.
type Deferred struct {
	geometryPipeline HotReloadablePipelineStage
	lightingPipeline HotReloadablePipelineStage

	rtv [3]hal.DescriptorIndex // albedo, normal, material
	dsv hal.DescriptorIndex
	srv [4]hal.DescriptorIndex // albedo, normal, material, depth

	gbufferTex [3]any
	depthTex   any

	shadowSRV hal.DescriptorIndex
}

// NewDeferred creates the pass with no G-buffer bound yet; SetTargets must
// be called after the owning chain allocates its render targets.
func NewDeferred() *Deferred {
	return &Deferred{}
}

func (p *Deferred) Name() string { return "Deferred" }

// SetTargets wires the G-buffer textures, their RTV/SRV pairs, and the
// depth target, matching the backend-allocated resources to this pass.
func (p *Deferred) SetTargets(albedo, normal, material, depth any, rtv [3]hal.DescriptorIndex, dsv hal.DescriptorIndex, srv [4]hal.DescriptorIndex) {
	p.gbufferTex[GBufferAlbedo] = albedo
	p.gbufferTex[GBufferNormal] = normal
	p.gbufferTex[GBufferMaterial] = material
	p.depthTex = depth
	p.rtv = rtv
	p.dsv = dsv
	p.srv = srv
}

// SetShadowView wires in the shadow pass's shader-resource view, so the
// lighting resolve can sample it.
func (p *Deferred) SetShadowView(srv hal.DescriptorIndex) {
	p.shadowSRV = srv
}

func (p *Deferred) Render(rec render.CommandRecorder, scene render.Scene, width, height int, dt float32) {
	if p.depthTex == nil {
		return
	}

	rec.BeginEvent("G-buffer", 0x80, 0x40, 0x40)
	for _, tex := range p.gbufferTex {
		rec.ImageBarrier(tex, hal.ResourceStateRenderTarget, hal.AllSubresources)
	}
	rec.ImageBarrier(p.depthTex, hal.ResourceStateDepthWrite, hal.AllSubresources)

	rec.SetViewport(0, 0, float32(width), float32(height))
	rec.BindRenderTargets(p.rtv[:], p.dsv)
	for _, rtv := range p.rtv {
		rec.ClearRenderTarget(rtv, 0, 0, 0, 0)
	}
	rec.ClearDepthTarget(p.dsv)

	if pipeline := p.currentGeometryPipeline(); pipeline != nil {
		rec.BindGraphicsPipeline(pipeline)
		rec.DrawIndexed(uint32(scene.OpaqueDrawCount()))
	}
	rec.EndEvent()

	rec.BeginEvent("Lighting resolve", 0x40, 0x80, 0x40)
	for _, tex := range p.gbufferTex {
		rec.ImageBarrier(tex, hal.ResourceStateShaderResource, hal.AllSubresources)
	}
	rec.ImageBarrier(p.depthTex, hal.ResourceStateDepthRead, hal.AllSubresources)

	if pipeline := p.currentLightingPipeline(); pipeline != nil {
		rec.BindComputePipeline(pipeline)
		indices := []uint32{
			uint32(p.srv[GBufferAlbedo]),
			uint32(p.srv[GBufferNormal]),
			uint32(p.srv[GBufferMaterial]),
			uint32(p.srv[GBufferDepth]),
			uint32(p.shadowSRV),
		}
		rec.PushConstantsCompute(indices, 0)
		rec.Dispatch(uint32((width+7)/8), uint32((height+7)/8), 1)
	}
	rec.EndEvent()
}

func (p *Deferred) currentGeometryPipeline() any {
	if p.geometryPipeline == nil {
		return nil
	}
	return p.geometryPipeline.Current()
}

func (p *Deferred) currentLightingPipeline() any {
	if p.lightingPipeline == nil {
		return nil
	}
	return p.lightingPipeline.Current()
}

func (p *Deferred) Resize(width, height int) {}

func (p *Deferred) UI(panel render.UIPanel) {
	panel.Text("G-buffer", "albedo, normal, material, depth")
}

func (p *Deferred) Reconstruct() {
	now := time.Now()
	if p.geometryPipeline != nil {
		p.geometryPipeline.CheckForRebuild(now, p.Name())
	}
	if p.lightingPipeline != nil {
		p.lightingPipeline.CheckForRebuild(now, p.Name())
	}
}
