// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

// Command dx12-test is an integration test for the DX12 backend.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/gputypes"
	"github.com/onigfx/oni/hal"
	"github.com/onigfx/oni/hal/dx12"
	"github.com/onigfx/oni/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("SUCCESS: DX12 backend works!")
}

func run() error {
	fmt.Println("=== DX12 Backend Integration Test ===")
	fmt.Println()

	// Step 1: Create backend
	fmt.Print("1. Creating DX12 backend... ")
	backend := dx12.Backend{}
	fmt.Println("OK")

	// Step 2: Create instance
	fmt.Print("2. Creating DX12 instance... ")
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	defer instance.Destroy()
	fmt.Println("OK")

	// Step 3: Enumerate adapters
	fmt.Print("3. Enumerating adapters... ")
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("no adapters found")
	}
	fmt.Printf("OK (found %d)\n", len(adapters))

	// Print adapter info
	for i := range adapters {
		exposed := &adapters[i]
		fmt.Printf("   - Adapter %d: %s (%s)\n",
			i, exposed.Info.Name, exposed.Info.DriverInfo)
	}

	// Step 4: Open device
	fmt.Print("4. Opening device... ")
	openDev, err := adapters[0].Adapter.Open(0, adapters[0].Capabilities.Limits)
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	device := openDev.Device
	defer device.Destroy()
	fmt.Println("OK")

	// Step 5: Create empty pipeline layout directly after device
	fmt.Print("5. Creating empty pipeline layout... ")
	pipelineLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "Empty Pipeline Layout",
		BindGroupLayouts: nil,
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	device.DestroyPipelineLayout(pipelineLayout)
	fmt.Println("OK")

	// Step 6: Record and submit one frame through FramePacer/Recorder
	// against an offscreen render target, exercising the real bindless
	// command recorder and N-buffered frame-pacing path end to end.
	fmt.Print("6. Recording a frame through the bindless recorder... ")
	if err := runOneFrame(device, openDev.Queue); err != nil {
		return fmt.Errorf("record frame: %w", err)
	}
	fmt.Println("OK")

	fmt.Println()
	fmt.Println("=== DX12 Backend Test PASSED ===")

	return nil
}

// runOneFrame allocates an offscreen render target and clears it through
// Recorder via FramePacer for FramesInFlight+1 frames, so the last frame
// waits on the first frame's fence before reusing its allocator. It does not
// wait for the final frame to finish on the GPU. This exercises the
// CommandRecorder/frame-pacing wiring, which records and submits real D3D12
// work.
func runOneFrame(device hal.Device, queue hal.Queue) error {
	dxDevice, ok := device.(*dx12.Device)
	if !ok {
		return fmt.Errorf("device is not a dx12 device")
	}
	dxQueue, ok := queue.(*dx12.Queue)
	if !ok {
		return fmt.Errorf("queue is not a dx12 queue")
	}

	target, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "frame-target",
		Size:          hal.Extent3D{Width: 64, Height: 64, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create offscreen target: %w", err)
	}
	defer device.DestroyTexture(target)

	view, err := device.CreateTextureView(target, &hal.TextureViewDescriptor{})
	if err != nil {
		return fmt.Errorf("create offscreen target view: %w", err)
	}
	dxView, ok := view.(*dx12.TextureView)
	if !ok || !dxView.HasRTV() {
		return fmt.Errorf("offscreen target view has no RTV")
	}

	rtv := hal.DescriptorIndex(dxView.RTVHeapIndex())

	pacer := dx12.NewFramePacer(dxDevice, dxQueue)
	chain := render.NewChain(oneFrameClearPass{rtv: rtv})
	scene := &render.NoopScene{DrawCount: 0}

	for i := 0; i < dx12.FramesInFlight+1; i++ {
		if err := pacer.RenderFrame(chain, scene, 64, 64, 1.0/60.0, nil, nil); err != nil {
			return fmt.Errorf("render frame %d: %w", i, err)
		}
	}
	return nil
}

// oneFrameClearPass is a minimal render.Pass that clears its render target,
// just enough to exercise BindRenderTargets/ClearRenderTarget through a
// real command list without needing a compiled pipeline.
type oneFrameClearPass struct {
	rtv hal.DescriptorIndex
}

func (p oneFrameClearPass) Name() string { return "clear" }

func (p oneFrameClearPass) Render(rec render.CommandRecorder, scene render.Scene, width, height int, dt float32) {
	rec.BindRenderTargets([]hal.DescriptorIndex{p.rtv}, hal.InvalidDescriptorIndex)
	rec.ClearRenderTarget(p.rtv, 0, 0, 0, 1)
}

func (p oneFrameClearPass) Resize(width, height int) {}
func (p oneFrameClearPass) UI(panel render.UIPanel)   {}
func (p oneFrameClearPass) Reconstruct()              {}
