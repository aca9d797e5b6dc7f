package hal

// UploadOp identifies one deferred upload command queued by Uploader,
// mirroring the command types of the asynchronous upload engine named in
// spec.md section 1's RHI core bullet.
type UploadOp int

const (
	UploadHostToDeviceShared UploadOp = iota
	UploadHostToDeviceLocal
	UploadHostToDeviceLocalTexture
	UploadHostToDeviceCompressedTexture
	UploadBufferToBuffer
	UploadTextureToTexture
	UploadBufferToTexture
	UploadTextureToBuffer
	UploadBuildBLAS
	UploadBuildTLAS
)

// UploadCommand is one queued, not-yet-recorded upload operation.
type UploadCommand struct {
	Op   UploadOp
	Data []byte
	Size uint64

	// MipBuffers holds one already-populated staging buffer per mip
	// level, used only by UploadHostToDeviceCompressedTexture.
	MipBuffers []any

	SourceTexture any
	DestTexture   any
	SourceBuffer  any
	DestBuffer    any

	BLAS any
	TLAS any
}

// UploadRecorder is the subset of command-list primitives the upload
// engine needs: a host-visible write, buffer/texture copies, and
// acceleration-structure builds. A D3D12-class backend's copy command
// list implements this.
type UploadRecorder interface {
	MapAndCopy(dest any, offset uint64, data []byte) error
	CopyBufferRegion(dest any, destOffset uint64, source any, sourceOffset uint64, size uint64)
	CopyTextureRegion(dest any, destMip uint32, source any, sourceMip uint32)
	CopyBufferToTexture(dest any, destMip uint32, source any, sourceOffset uint64)
	CopyTextureToBuffer(dest any, destOffset uint64, source any, sourceMip uint32)
	BuildBLAS(blas any)
	BuildTLAS(tlas any)
}

// Uploader batches deferred host-to-device and device-to-device copies,
// recording them into a single command list on Flush rather than issuing
// one submission per call.
type Uploader struct {
	commands              []UploadCommand
	allocateStagingBuffer func(size uint64) (any, error)
}

// NewUploader creates an Uploader that allocates CPU-visible staging
// buffers through alloc.
func NewUploader(alloc func(size uint64) (any, error)) *Uploader {
	return &Uploader{allocateStagingBuffer: alloc}
}

// Pending returns the number of commands queued since the last Flush.
func (u *Uploader) Pending() int {
	return len(u.commands)
}

// CopyHostToDeviceShared queues a direct host write into dest, assuming
// dest is already CPU-visible (an upload-heap buffer).
func (u *Uploader) CopyHostToDeviceShared(data []byte, dest any) {
	u.commands = append(u.commands, UploadCommand{Op: UploadHostToDeviceShared, Data: data, Size: uint64(len(data)), DestBuffer: dest})
}

// CopyHostToDeviceLocal queues a write into a fresh staging buffer
// followed by a GPU copy into dest, a GPU-local (not CPU-visible) buffer.
func (u *Uploader) CopyHostToDeviceLocal(data []byte, dest any) error {
	staging, err := u.allocateStagingBuffer(uint64(len(data)))
	if err != nil {
		return NewError(ErrorResourceAllocation, "uploader: staging buffer", err)
	}
	u.CopyHostToDeviceShared(data, staging)
	u.commands = append(u.commands, UploadCommand{Op: UploadHostToDeviceLocal, SourceBuffer: staging, DestBuffer: dest, Size: uint64(len(data))})
	return nil
}

// CopyHostToDeviceTexture queues a write into a fresh staging buffer
// followed by a buffer-to-texture copy into destTexture.
func (u *Uploader) CopyHostToDeviceTexture(data []byte, destTexture any) error {
	staging, err := u.allocateStagingBuffer(uint64(len(data)))
	if err != nil {
		return NewError(ErrorResourceAllocation, "uploader: staging texture buffer", err)
	}
	u.CopyHostToDeviceShared(data, staging)
	u.commands = append(u.commands, UploadCommand{Op: UploadHostToDeviceLocalTexture, SourceBuffer: staging, DestTexture: destTexture})
	return nil
}

// CopyHostToDeviceCompressedTexture stages every mip level of a
// block-compressed texture (cache/texturec.File's Mips) into its own
// staging buffer, then queues one command that copies each into its
// matching mip of destTexture.
func (u *Uploader) CopyHostToDeviceCompressedTexture(mips [][]byte, destTexture any) error {
	buffers := make([]any, len(mips))
	for i, mip := range mips {
		staging, err := u.allocateStagingBuffer(uint64(len(mip)))
		if err != nil {
			return NewError(ErrorResourceAllocation, "uploader: staging mip buffer", err)
		}
		u.CopyHostToDeviceShared(mip, staging)
		buffers[i] = staging
	}
	u.commands = append(u.commands, UploadCommand{Op: UploadHostToDeviceCompressedTexture, MipBuffers: buffers, DestTexture: destTexture})
	return nil
}

// CopyBufferToBuffer queues a device-to-device buffer copy.
func (u *Uploader) CopyBufferToBuffer(source, dest any, size uint64) {
	u.commands = append(u.commands, UploadCommand{Op: UploadBufferToBuffer, SourceBuffer: source, DestBuffer: dest, Size: size})
}

// CopyTextureToTexture queues a device-to-device texture copy.
func (u *Uploader) CopyTextureToTexture(source, dest any) {
	u.commands = append(u.commands, UploadCommand{Op: UploadTextureToTexture, SourceTexture: source, DestTexture: dest})
}

// CopyBufferToTexture queues a device-local buffer-to-texture copy.
func (u *Uploader) CopyBufferToTexture(source, dest any) {
	u.commands = append(u.commands, UploadCommand{Op: UploadBufferToTexture, SourceBuffer: source, DestTexture: dest})
}

// CopyTextureToBuffer queues a device-local texture-to-buffer copy.
func (u *Uploader) CopyTextureToBuffer(source, dest any) {
	u.commands = append(u.commands, UploadCommand{Op: UploadTextureToBuffer, SourceTexture: source, DestBuffer: dest})
}

// BuildBLAS queues a bottom-level acceleration-structure build.
func (u *Uploader) BuildBLAS(blas any) {
	u.commands = append(u.commands, UploadCommand{Op: UploadBuildBLAS, BLAS: blas})
}

// BuildTLAS queues a top-level acceleration-structure build.
func (u *Uploader) BuildTLAS(tlas any) {
	u.commands = append(u.commands, UploadCommand{Op: UploadBuildTLAS, TLAS: tlas})
}

// Flush records every queued command into rec, in FIFO order, then clears
// the queue. The caller submits rec's resulting command list and waits
// for the fence that gates reuse of any staging buffers before this
// Uploader (or its backing allocator) frees them.
func (u *Uploader) Flush(rec UploadRecorder) error {
	for _, cmd := range u.commands {
		switch cmd.Op {
		case UploadHostToDeviceShared:
			if err := rec.MapAndCopy(cmd.DestBuffer, 0, cmd.Data); err != nil {
				return NewError(ErrorResourceAllocation, "uploader: map and copy", err)
			}
		case UploadHostToDeviceLocal, UploadBufferToBuffer:
			rec.CopyBufferRegion(cmd.DestBuffer, 0, cmd.SourceBuffer, 0, cmd.Size)
		case UploadHostToDeviceLocalTexture, UploadBufferToTexture:
			rec.CopyBufferToTexture(cmd.DestTexture, 0, cmd.SourceBuffer, 0)
		case UploadHostToDeviceCompressedTexture:
			for level, mipBuffer := range cmd.MipBuffers {
				rec.CopyBufferToTexture(cmd.DestTexture, uint32(level), mipBuffer, 0)
			}
		case UploadTextureToTexture:
			rec.CopyTextureRegion(cmd.DestTexture, 0, cmd.SourceTexture, 0)
		case UploadTextureToBuffer:
			rec.CopyTextureToBuffer(cmd.DestBuffer, 0, cmd.SourceTexture, 0)
		case UploadBuildBLAS:
			rec.BuildBLAS(cmd.BLAS)
		case UploadBuildTLAS:
			rec.BuildTLAS(cmd.TLAS)
		}
	}
	u.commands = u.commands[:0]
	return nil
}
