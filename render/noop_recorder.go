package render

import "github.com/onigfx/oni/hal"

// NoopRecorder is a CommandRecorder that performs no GPU work and only
// logs what was recorded, the same role hal/noop plays for hal.Device: a
// deterministic, dependency-free target for driving the pass chain in
// tests and examples without a real backend.
type NoopRecorder struct {
	Events []string
}

func NewNoopRecorder() *NoopRecorder {
	return &NoopRecorder{}
}

func (r *NoopRecorder) record(event string) {
	r.Events = append(r.Events, event)
}

func (r *NoopRecorder) SetViewport(x, y, w, h float32)          { r.record("SetViewport") }
func (r *NoopRecorder) SetTopology(topology Topology)           { r.record("SetTopology") }
func (r *NoopRecorder) BindRenderTargets(rtv []hal.DescriptorIndex, dsv hal.DescriptorIndex) {
	r.record("BindRenderTargets")
}
func (r *NoopRecorder) BindVertexBuffer(slot uint32, heapIndex hal.DescriptorIndex) {
	r.record("BindVertexBuffer")
}
func (r *NoopRecorder) BindIndexBuffer(heapIndex hal.DescriptorIndex) { r.record("BindIndexBuffer") }

func (r *NoopRecorder) BindGraphicsPipeline(pipeline any) { r.record("BindGraphicsPipeline") }
func (r *NoopRecorder) BindComputePipeline(pipeline any)  { r.record("BindComputePipeline") }

func (r *NoopRecorder) PushConstantsGraphics(data []uint32, rootIndex uint32) {
	r.record("PushConstantsGraphics")
}
func (r *NoopRecorder) PushConstantsCompute(data []uint32, rootIndex uint32) {
	r.record("PushConstantsCompute")
}
func (r *NoopRecorder) BindComputeAccelerationStructure(tlas hal.DescriptorIndex, rootIndex uint32) {
	r.record("BindComputeAccelerationStructure")
}

func (r *NoopRecorder) Draw(count uint32)        { r.record("Draw") }
func (r *NoopRecorder) DrawIndexed(count uint32) { r.record("DrawIndexed") }
func (r *NoopRecorder) Dispatch(x, y, z uint32)  { r.record("Dispatch") }
func (r *NoopRecorder) DispatchMesh(x, y, z uint32) { r.record("DispatchMesh") }
func (r *NoopRecorder) TraceRays(width, height uint32) { r.record("TraceRays") }

func (r *NoopRecorder) ClearRenderTarget(rtv hal.DescriptorIndex, red, g, b, a float32) {
	r.record("ClearRenderTarget")
}
func (r *NoopRecorder) ClearDepthTarget(dsv hal.DescriptorIndex) { r.record("ClearDepthTarget") }
func (r *NoopRecorder) ClearUAV(heapIndex hal.DescriptorIndex, red, g, b, a float32, subresource uint32) {
	r.record("ClearUAV")
}

func (r *NoopRecorder) ImageBarrier(texture any, newState hal.ResourceState, subresource uint32) {
	r.record("ImageBarrier:" + newState.String())
}
func (r *NoopRecorder) ImageBarrierBatch(barriers []hal.Barrier) { r.record("ImageBarrierBatch") }

func (r *NoopRecorder) BeginEvent(name string, red, g, b byte) { r.record("BeginEvent:" + name) }
func (r *NoopRecorder) EndEvent()                              { r.record("EndEvent") }
func (r *NoopRecorder) InsertMarker(name string)                { r.record("InsertMarker:" + name) }

// NoopScene is a Scene with a fixed draw count and an identity
// view-projection, enough to drive the pass chain without a real
// glTF-imported scene.
type NoopScene struct {
	DrawCount int
}

func (s *NoopScene) OpaqueDrawCount() int { return s.DrawCount }

func (s *NoopScene) SunViewProjection() [16]float32 {
	var m [16]float32
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}
