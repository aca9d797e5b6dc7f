package hal_test

import (
	"errors"
	"testing"

	"github.com/onigfx/oni/hal"
)

func TestErrorKindString(t *testing.T) {
	err := hal.NewError(hal.ErrorShaderCompilation, "shaders/Foo/FooVert.hlsl", errors.New("syntax error"))
	if got, want := err.Error(), "ShaderCompilation: shaders/Foo/FooVert.hlsl: syntax error"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if !hal.IsKind(err, hal.ErrorShaderCompilation) {
		t.Fatalf("expected IsKind to match ErrorShaderCompilation")
	}
	if hal.IsKind(err, hal.ErrorFileIO) {
		t.Fatalf("expected IsKind not to match ErrorFileIO")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := hal.NewError(hal.ErrorFileIO, ".cache/shaders/deadbeef.oni", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find the wrapped cause")
	}
}
