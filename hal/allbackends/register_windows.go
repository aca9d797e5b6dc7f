// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package allbackends

import (
	// Windows-specific HAL backend imports.

	// DX12 backend - the only hardware backend this module targets.
	_ "github.com/onigfx/oni/hal/dx12"
)
