package render

import "github.com/onigfx/oni/hal"

// CommandRecorder is the bindless command-recording contract spec.md
// section 4.2 describes: passes push heap indices as constants rather than
// binding resources to fixed slots, and declare every barrier themselves.
// A D3D12-class backend command buffer implements this directly; it is
// deliberately narrower than hal.CommandEncoder (which models a WebGPU-style
// bind-group API) because the two binding models are not shaped the same
// way.
type CommandRecorder interface {
	SetViewport(x, y, w, h float32)
	SetTopology(topology Topology)
	BindRenderTargets(rtv []hal.DescriptorIndex, dsv hal.DescriptorIndex)
	BindVertexBuffer(slot uint32, heapIndex hal.DescriptorIndex)
	BindIndexBuffer(heapIndex hal.DescriptorIndex)

	BindGraphicsPipeline(pipeline any)
	BindComputePipeline(pipeline any)

	PushConstantsGraphics(data []uint32, rootIndex uint32)
	PushConstantsCompute(data []uint32, rootIndex uint32)
	BindComputeAccelerationStructure(tlas hal.DescriptorIndex, rootIndex uint32)

	Draw(count uint32)
	DrawIndexed(count uint32)
	Dispatch(x, y, z uint32)
	DispatchMesh(x, y, z uint32)
	TraceRays(width, height uint32)

	ClearRenderTarget(rtv hal.DescriptorIndex, r, g, b, a float32)
	ClearDepthTarget(dsv hal.DescriptorIndex)
	ClearUAV(heapIndex hal.DescriptorIndex, r, g, b, a float32, subresource uint32)

	ImageBarrier(texture any, newState hal.ResourceState, subresource uint32)
	ImageBarrierBatch(barriers []hal.Barrier)

	BeginEvent(name string, r, g, b byte)
	EndEvent()
	InsertMarker(name string)
}

// Topology enumerates primitive topologies a graphics pipeline draws.
type Topology int

const (
	TopologyTriangleList Topology = iota
	TopologyTriangleStrip
	TopologyLineList
	TopologyPointList
)

// Scene is the minimal read-only view a pass needs of the world being
// rendered. The real scene-import frontend (glTF parser) is outside this
// module's scope; passes depend only on this boundary contract.
type Scene interface {
	OpaqueDrawCount() int
	SunViewProjection() [16]float32
}

// Pass is the contract every render-pass value type implements, per
// spec.md section 4.5: four operations, executed in the fixed composition
// order by Chain.
type Pass interface {
	Name() string
	Render(rec CommandRecorder, scene Scene, width, height int, dt float32)
	Resize(width, height int)
	UI(panel UIPanel)
	Reconstruct()
}

// UIPanel is the declarative checkbox/slider list contract spec.md section
// 4.5 describes for each pass's inspector panel.
type UIPanel interface {
	Checkbox(label string, value *bool)
	Slider(label string, value *float32, min, max float32)
	Text(label, value string)
}

// Chain composes passes in a fixed order and drives them each frame.
type Chain struct {
	passes []Pass
}

// NewChain builds a chain from passes in the order they should execute.
// spec.md section 4.5's default composition is:
// Shadows -> Forward/Deferred -> Environment sky -> Color correction ->
// Auto-exposure -> Tonemapping -> Debug overlays -> Copy to back buffer.
func NewChain(passes ...Pass) *Chain {
	return &Chain{passes: passes}
}

// Render records every pass, in order, into rec.
func (c *Chain) Render(rec CommandRecorder, scene Scene, width, height int, dt float32) {
	for _, p := range c.passes {
		rec.BeginEvent(p.Name(), 0x40, 0x80, 0xC0)
		p.Render(rec, scene, width, height, dt)
		rec.EndEvent()
	}
}

// Resize reallocates every pass's owned textures.
func (c *Chain) Resize(width, height int) {
	for _, p := range c.passes {
		p.Resize(width, height)
	}
}

// Reconstruct polls every pass's shader watches and rebuilds stale pipelines.
func (c *Chain) Reconstruct() {
	for _, p := range c.passes {
		p.Reconstruct()
	}
}

// Passes returns the ordered pass list, e.g. for building an inspector UI.
func (c *Chain) Passes() []Pass {
	return c.passes
}
