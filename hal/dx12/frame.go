// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"

	"github.com/onigfx/oni/hal"
	"github.com/onigfx/oni/render"
)

// FramePacer drives render.Chain through the DX12 backend with real
// fence-based, N-buffered frame pacing: frame F's command buffer is not
// reused until the device's timeline fence reaches the value frame F was
// signaled with, exactly FramesInFlight frames after it was submitted.
// Device.acquireAllocator (invoked by CommandEncoder.BeginEncoding) is what
// actually blocks on that invariant; FramePacer only has to keep feeding it
// increasing fence values and calling Device.advanceFrame once each frame
// is submitted.
type FramePacer struct {
	device *Device
	queue  *Queue
}

// NewFramePacer builds a pacer around an already-opened device and queue.
func NewFramePacer(device *Device, queue *Queue) *FramePacer {
	return &FramePacer{device: device, queue: queue}
}

// RenderFrame records one frame of chain through a fresh CommandEncoder,
// submits it signaling the device's own timeline fence, and — when surface
// and texture are non-nil — presents the frame. Passing a nil surface renders without
// presenting, e.g. for a headless smoke test of the recorder itself.
func (p *FramePacer) RenderFrame(chain *render.Chain, scene render.Scene, width, height int, dt float32, surface hal.Surface, texture hal.SurfaceTexture) error {
	encoderIface, err := p.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "frame"})
	if err != nil {
		return fmt.Errorf("dx12: create frame command encoder: %w", err)
	}
	encoder := encoderIface.(*CommandEncoder)

	if err := encoder.BeginEncoding("frame"); err != nil {
		return fmt.Errorf("dx12: begin frame encoding: %w", err)
	}

	rec := NewRecorder(p.device, encoder.cmdList)
	chain.Render(rec, scene, width, height, dt)

	cmdBuffer, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("dx12: end frame encoding: %w", err)
	}

	value := p.device.nextFenceValue()
	if err := p.queue.Submit([]hal.CommandBuffer{cmdBuffer}, p.device.frameFence(), value); err != nil {
		return fmt.Errorf("dx12: submit frame: %w", err)
	}

	if surface != nil && texture != nil {
		if err := p.queue.Present(surface, texture); err != nil {
			p.device.advanceFrame(value)
			return fmt.Errorf("dx12: present frame: %w", err)
		}
	}

	p.device.advanceFrame(value)
	return nil
}
