// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"unsafe"

	"github.com/onigfx/oni/hal"
	"github.com/onigfx/oni/hal/dx12/d3d12"
	"github.com/onigfx/oni/render"
)

// Recorder implements render.CommandRecorder directly against a D3D12
// graphics command list. Unlike CommandEncoder (which models the
// bind-group-oriented hal.CommandEncoder surface), Recorder never binds
// resources to fixed slots: passes push heap indices as 32-bit root
// constants and index ResourceDescriptorHeap themselves in HLSL. Recorder
// only needs to set the pipeline, the root signature's constants, and the
// render targets/barriers passes declare explicitly.
type Recorder struct {
	device  *Device
	cmdList *d3d12.ID3D12GraphicsCommandList

	// computeBound records whether the last bound pipeline was a compute
	// pipeline. No method reads it: PushConstantsGraphics and
	// PushConstantsCompute each target their own root signature, and
	// BindComputeAccelerationStructure always targets the compute one.
	computeBound bool
}

// NewRecorder wraps a command list that has already been opened for
// recording (via CommandEncoder.BeginEncoding) in a render.CommandRecorder.
func NewRecorder(device *Device, cmdList *d3d12.ID3D12GraphicsCommandList) *Recorder {
	return &Recorder{device: device, cmdList: cmdList}
}

// SetViewport sets both the viewport and a matching scissor rect — passes
// never need a scissor narrower than the viewport, so one call configures
// both rasterizer stages.
func (r *Recorder) SetViewport(x, y, w, h float32) {
	viewport := d3d12.D3D12_VIEWPORT{
		TopLeftX: x,
		TopLeftY: y,
		Width:    w,
		Height:   h,
		MinDepth: 0,
		MaxDepth: 1,
	}
	r.cmdList.RSSetViewports(1, &viewport)

	scissor := d3d12.D3D12_RECT{
		Left:   int32(x),
		Top:    int32(y),
		Right:  int32(x + w),
		Bottom: int32(y + h),
	}
	r.cmdList.RSSetScissorRects(1, &scissor)
}

// topologyToD3D12 converts render.Topology to the D3D input-assembler
// enum. Patch-list topologies (tessellation) are outside render.Topology's
// vocabulary and are not produced by any pass.
func topologyToD3D12(t render.Topology) d3d12.D3D_PRIMITIVE_TOPOLOGY {
	switch t {
	case render.TopologyTriangleStrip:
		return d3d12.D3D_PRIMITIVE_TOPOLOGY_TRIANGLESTRIP
	case render.TopologyLineList:
		return d3d12.D3D_PRIMITIVE_TOPOLOGY_LINELIST
	case render.TopologyPointList:
		return d3d12.D3D_PRIMITIVE_TOPOLOGY_POINTLIST
	default:
		return d3d12.D3D_PRIMITIVE_TOPOLOGY_TRIANGLELIST
	}
}

// SetTopology sets the input-assembler's primitive topology independently
// of the bound pipeline, so the same PSO can be reused to draw wireframe
// debug lines and solid triangles (debug.go switches topology this way).
func (r *Recorder) SetTopology(topology render.Topology) {
	r.cmdList.IASetPrimitiveTopology(topologyToD3D12(topology))
}

// BindRenderTargets resolves bindless heap indices to CPU descriptor
// handles and binds them as the active render targets. hal.InvalidDescriptorIndex
// in dsv means no depth/stencil attachment is bound.
func (r *Recorder) BindRenderTargets(rtv []hal.DescriptorIndex, dsv hal.DescriptorIndex) {
	var rtvHandles []d3d12.D3D12_CPU_DESCRIPTOR_HANDLE
	if len(rtv) > 0 {
		rtvHandles = make([]d3d12.D3D12_CPU_DESCRIPTOR_HANDLE, len(rtv))
		for i, idx := range rtv {
			rtvHandles[i] = r.device.rtvHeap.CPUHandle(idx)
		}
	}

	var dsvHandle *d3d12.D3D12_CPU_DESCRIPTOR_HANDLE
	if dsv.IsValid() {
		h := r.device.dsvHeap.CPUHandle(dsv)
		dsvHandle = &h
	}

	var rtvPtr *d3d12.D3D12_CPU_DESCRIPTOR_HANDLE
	if len(rtvHandles) > 0 {
		rtvPtr = &rtvHandles[0]
	}
	r.cmdList.OMSetRenderTargets(uint32(len(rtvHandles)), rtvPtr, 0, dsvHandle)
}

// BindVertexBuffer is a documented no-op: every pass in this renderer pulls
// vertices by SV_VertexID out of a bindless structured buffer pushed as a
// root constant (see Draw/DrawIndexed), rather than through the
// fixed-function input-assembler vertex stage.
func (r *Recorder) BindVertexBuffer(slot uint32, heapIndex hal.DescriptorIndex) {}

// BindIndexBuffer is a documented no-op for the same reason as
// BindVertexBuffer — index data is fetched through ResourceDescriptorHeap
// in the shader, not bound to the IA stage.
func (r *Recorder) BindIndexBuffer(heapIndex hal.DescriptorIndex) {}

// BindGraphicsPipeline binds the pipeline state object and its root
// signature together — D3D12 requires both to be set before any root
// constant or draw call against that pipeline.
func (r *Recorder) BindGraphicsPipeline(pipeline any) {
	p, ok := pipeline.(*RenderPipeline)
	if !ok || p == nil {
		return
	}
	r.computeBound = false
	r.cmdList.SetGraphicsRootSignature(p.rootSignature)
	r.cmdList.SetPipelineState(p.pso)
	r.cmdList.IASetPrimitiveTopology(p.topology)
}

// BindComputePipeline binds a compute pipeline state object and root
// signature, and marks subsequent PushConstants*/BindComputeAccelerationStructure
// calls as targeting the compute root signature.
func (r *Recorder) BindComputePipeline(pipeline any) {
	p, ok := pipeline.(*ComputePipeline)
	if !ok || p == nil {
		return
	}
	r.computeBound = true
	r.cmdList.SetComputeRootSignature(p.rootSignature)
	r.cmdList.SetPipelineState(p.pso)
}

// PushConstantsGraphics uploads data as 32-bit root constants at rootIndex
// in the currently bound graphics root signature.
func (r *Recorder) PushConstantsGraphics(data []uint32, rootIndex uint32) {
	if len(data) == 0 {
		return
	}
	r.cmdList.SetGraphicsRoot32BitConstants(rootIndex, uint32(len(data)), unsafe.Pointer(&data[0]), 0)
}

// PushConstantsCompute uploads data as 32-bit root constants at rootIndex
// in the currently bound compute root signature.
func (r *Recorder) PushConstantsCompute(data []uint32, rootIndex uint32) {
	if len(data) == 0 {
		return
	}
	r.cmdList.SetComputeRoot32BitConstants(rootIndex, uint32(len(data)), unsafe.Pointer(&data[0]), 0)
}

// BindComputeAccelerationStructure pushes the TLAS's bindless heap index as
// a single 32-bit root constant. No DXR pipeline state exists yet (TraceRays
// is a stub below), but the binding itself is real: compute shaders can
// already read a bindless raytracing-adjacent resource through this slot.
func (r *Recorder) BindComputeAccelerationStructure(tlas hal.DescriptorIndex, rootIndex uint32) {
	index := uint32(tlas)
	r.cmdList.SetComputeRoot32BitConstants(rootIndex, 1, unsafe.Pointer(&index), 0)
}

// Draw issues a non-indexed draw of count vertices, one instance.
func (r *Recorder) Draw(count uint32) {
	r.cmdList.DrawInstanced(count, 1, 0, 0)
}

// DrawIndexed issues an indexed draw of count indices, one instance. Index
// data is fetched bindlessly in the shader (see BindIndexBuffer), so no
// index buffer view needs to be set here.
func (r *Recorder) DrawIndexed(count uint32) {
	r.cmdList.DrawIndexedInstanced(count, 1, 0, 0, 0)
}

// Dispatch issues a compute dispatch of x*y*z thread groups.
func (r *Recorder) Dispatch(x, y, z uint32) {
	r.cmdList.Dispatch(x, y, z)
}

// DispatchMesh is a documented stub: no mesh-shader pipeline state or
// vtable entry exists yet. No pass calls it.
func (r *Recorder) DispatchMesh(x, y, z uint32) {}

// TraceRays is a documented stub: no DXR state object or vtable entry
// exists yet. No pass calls it.
func (r *Recorder) TraceRays(width, height uint32) {}

// ClearRenderTarget clears the render target at the given heap index to a
// solid color.
func (r *Recorder) ClearRenderTarget(rtv hal.DescriptorIndex, red, g, b, a float32) {
	handle := r.device.rtvHeap.CPUHandle(rtv)
	color := [4]float32{red, g, b, a}
	r.cmdList.ClearRenderTargetView(handle, &color, 0, nil)
}

// ClearDepthTarget clears the depth/stencil view at the given heap index to
// its standard reversed-Z far value (0.0) with stencil 0.
func (r *Recorder) ClearDepthTarget(dsv hal.DescriptorIndex) {
	handle := r.device.dsvHeap.CPUHandle(dsv)
	r.cmdList.ClearDepthStencilView(handle, d3d12.D3D12_CLEAR_FLAG_DEPTH|d3d12.D3D12_CLEAR_FLAG_STENCIL, 0.0, 0, 0, nil)
}

// ClearUAV is a documented stub: clearing a UAV by heap index alone
// requires both the GPU-visible and a CPU-visible (non-shader-visible)
// handle for the same view, which the current view-heap allocator does not
// track per bindless index. No pass calls ClearUAV yet; when one needs to,
// the view heap's bindless allocation path should also stash a
// non-shader-visible CPU handle per index so this can call
// ClearUnorderedAccessViewFloat correctly.
func (r *Recorder) ClearUAV(heapIndex hal.DescriptorIndex, red, g, b, a float32, subresource uint32) {}

// resourceStateToD3D12 maps the RHI's portable resource-state vocabulary
// onto the D3D12 states this backend actually transitions into.
func resourceStateToD3D12(s hal.ResourceState) d3d12.D3D12_RESOURCE_STATES {
	switch s {
	case hal.ResourceStateRenderTarget:
		return d3d12.D3D12_RESOURCE_STATE_RENDER_TARGET
	case hal.ResourceStateDepthWrite:
		return d3d12.D3D12_RESOURCE_STATE_DEPTH_WRITE
	case hal.ResourceStateDepthRead:
		return d3d12.D3D12_RESOURCE_STATE_DEPTH_READ
	case hal.ResourceStateShaderResource:
		return d3d12.D3D12_RESOURCE_STATE_PIXEL_SHADER_RESOURCE | d3d12.D3D12_RESOURCE_STATE_NON_PIXEL_SHADER_RESOURCE
	case hal.ResourceStateUnorderedAccess:
		return d3d12.D3D12_RESOURCE_STATE_UNORDERED_ACCESS
	case hal.ResourceStateCopySrc:
		return d3d12.D3D12_RESOURCE_STATE_COPY_SOURCE
	case hal.ResourceStateCopyDst:
		return d3d12.D3D12_RESOURCE_STATE_COPY_DEST
	case hal.ResourceStateVertexConstant:
		return d3d12.D3D12_RESOURCE_STATE_VERTEX_AND_CONSTANT_BUFFER
	case hal.ResourceStateIndex:
		return d3d12.D3D12_RESOURCE_STATE_INDEX_BUFFER
	case hal.ResourceStateIndirectArgument:
		return d3d12.D3D12_RESOURCE_STATE_INDIRECT_ARGUMENT
	case hal.ResourceStatePresent:
		return d3d12.D3D12_RESOURCE_STATE_PRESENT
	case hal.ResourceStateAccelerationStructure:
		return d3d12.D3D12_RESOURCE_STATE_RAYTRACING_ACCELERATION_STRUCTURE
	case hal.ResourceStateDataRead:
		return d3d12.D3D12_RESOURCE_STATE_GENERIC_READ
	default:
		return d3d12.D3D12_RESOURCE_STATE_COMMON
	}
}

// ImageBarrier transitions a single texture to newState. The texture's
// current state is tracked on the Texture value itself (not on the
// Recorder, which is rebuilt every frame) so a transition recorded in frame
// F is still honored as the "before" state in frame F+1.
func (r *Recorder) ImageBarrier(texture any, newState hal.ResourceState, subresource uint32) {
	tex, ok := texture.(*Texture)
	if !ok || tex == nil || tex.raw == nil {
		return
	}
	after := resourceStateToD3D12(newState)
	if tex.state == after {
		return
	}
	sub := d3d12.D3D12_RESOURCE_BARRIER_ALL_SUBRESOURCES
	if subresource != hal.AllSubresources {
		sub = subresource
	}
	barrier := d3d12.NewTransitionBarrier(tex.raw, tex.state, after, sub)
	r.cmdList.ResourceBarrier(1, &barrier)
	tex.state = after
}

// ImageBarrierBatch coalesces several transitions into one ResourceBarrier
// call, skipping any barrier.Resource that isn't a *Texture or is already
// in the requested state.
func (r *Recorder) ImageBarrierBatch(barriers []hal.Barrier) {
	if len(barriers) == 0 {
		return
	}
	d3dBarriers := make([]d3d12.D3D12_RESOURCE_BARRIER, 0, len(barriers))
	for _, b := range barriers {
		tex, ok := b.Resource.(*Texture)
		if !ok || tex == nil || tex.raw == nil {
			continue
		}
		after := resourceStateToD3D12(b.NewState)
		if tex.state == after {
			continue
		}
		sub := d3d12.D3D12_RESOURCE_BARRIER_ALL_SUBRESOURCES
		if b.Subresource != hal.AllSubresources {
			sub = b.Subresource
		}
		d3dBarriers = append(d3dBarriers, d3d12.NewTransitionBarrier(tex.raw, tex.state, after, sub))
		tex.state = after
	}
	if len(d3dBarriers) > 0 {
		r.cmdList.ResourceBarrier(uint32(len(d3dBarriers)), &d3dBarriers[0])
	}
}

// BeginEvent opens a PIX capture event. The RGB color is folded into the
// simplified ANSI marker encoding's name rather than the richer color-coded
// PIX3 blob format, which this backend's vtable does not wrap.
func (r *Recorder) BeginEvent(name string, red, g, b byte) {
	r.cmdList.BeginEvent(name)
}

// EndEvent closes the most recently opened PIX capture event.
func (r *Recorder) EndEvent() {
	r.cmdList.EndEvent()
}

// InsertMarker inserts a single, non-nested PIX marker.
func (r *Recorder) InsertMarker(name string) {
	r.cmdList.SetMarker(name)
}

// Compile-time interface assertion.
var _ render.CommandRecorder = (*Recorder)(nil)
