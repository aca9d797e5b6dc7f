// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package allbackends imports all HAL backend implementations.
//
// Import this package for side effects to register all available backends:
//
//	import (
//		_ "github.com/onigfx/oni/hal/allbackends"
//	)
//
// This will register:
//   - DX12 backend (Windows)
//   - No-op backend (all platforms, for testing)
//
// After importing, use hal.GetBackend or hal.SelectBestBackend to access backends.
//
// Build tags control which backends are available:
//   - Windows: the DX12 backend is registered in addition to the no-op backend.
//   - Other platforms: only the no-op backend is registered.
//
// Example usage:
//
//	import (
//		_ "github.com/onigfx/oni/hal/allbackends"
//		"github.com/onigfx/oni/hal"
//		"github.com/gogpu/gputypes"
//	)
//
//	func main() {
//		backend, ok := hal.GetBackend(gputypes.BackendDX12)
//		if !ok {
//			backend, _ = hal.GetBackend(gputypes.BackendEmpty)
//		}
//		instance, err := backend.CreateInstance(&hal.InstanceDescriptor{})
//		...
//	}
package allbackends
