package hal

// DescriptorIndex is the 32-bit index of a view's slot in a descriptor heap
// (hal.Device's view-creation calls return view objects; the dx12 backend
// exposes the slot of a view's RTV/DSV through TextureView.RTVHeapIndex/
// DSVHeapIndex). Shaders fetch the view by indexing the bindless
// descriptor heap directly (ResourceDescriptorHeap[index] in HLSL); pipelines
// never bind resources to fixed slots.
type DescriptorIndex uint32

// InvalidDescriptorIndex marks a view that has not been allocated a slot.
const InvalidDescriptorIndex DescriptorIndex = 0xFFFFFFFF

// IsValid reports whether the index refers to an allocated slot.
func (d DescriptorIndex) IsValid() bool {
	return d != InvalidDescriptorIndex
}

// ResourceState enumerates the transition states a GPUResource (or one of a
// texture's mips) can be barriered into. The set mirrors the subset of
// D3D12_RESOURCE_STATES this RHI actually uses.
type ResourceState uint32

const (
	ResourceStateCommon ResourceState = iota
	ResourceStateRenderTarget
	ResourceStateDepthWrite
	ResourceStateDepthRead
	ResourceStateShaderResource
	ResourceStateUnorderedAccess
	ResourceStateCopySrc
	ResourceStateCopyDst
	ResourceStateVertexConstant
	ResourceStateIndex
	ResourceStateIndirectArgument
	ResourceStatePresent
	ResourceStateAccelerationStructure
	ResourceStateDataRead
)

// String implements fmt.Stringer for debug logging.
func (s ResourceState) String() string {
	switch s {
	case ResourceStateCommon:
		return "Common"
	case ResourceStateRenderTarget:
		return "RenderTarget"
	case ResourceStateDepthWrite:
		return "DepthWrite"
	case ResourceStateDepthRead:
		return "DepthRead"
	case ResourceStateShaderResource:
		return "ShaderResource"
	case ResourceStateUnorderedAccess:
		return "UnorderedAccess"
	case ResourceStateCopySrc:
		return "CopySrc"
	case ResourceStateCopyDst:
		return "CopyDst"
	case ResourceStateVertexConstant:
		return "VertexConstant"
	case ResourceStateIndex:
		return "Index"
	case ResourceStateIndirectArgument:
		return "IndirectArgument"
	case ResourceStatePresent:
		return "Present"
	case ResourceStateAccelerationStructure:
		return "AccelerationStructure"
	case ResourceStateDataRead:
		return "DataRead"
	default:
		return "Unknown"
	}
}

// AllSubresources is passed to ImageBarrier when the caller wants the
// transition applied to every mip at once, as opposed to one specific
// subresource index.
const AllSubresources uint32 = 0xFFFFFFFF

// Barrier is a single transition record. ImageBarrierBatch coalesces a slice
// of these into one native call.
type Barrier struct {
	Resource    any
	NewState    ResourceState
	Subresource uint32 // AllSubresources or a specific mip index
}
