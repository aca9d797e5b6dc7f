package shaderc

import "testing"

func TestTypeFromPath(t *testing.T) {
	cases := []struct {
		path string
		want Type
	}{
		{"shaders/Foo/FooVert.hlsl", TypeVertex},
		{"shaders/Foo/FooFrag.hlsl", TypeFragment},
		{"shaders/Foo/FooCompute.hlsl", TypeCompute},
		{`shaders\Foo\FooCompute.hlsl`, TypeCompute},
		{"shaders/Common/Compute.hlsl", TypeNone},
		{"shaders/Foo/Foo.hlsl", TypeNone},
	}
	for _, c := range cases {
		if got := TypeFromPath(c.path); got != c.want {
			t.Errorf("TypeFromPath(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	h := header{Type: uint32(TypeCompute), LowFileTime: 0x1A2B3C4D, HighFileTime: 0x01D7A000, BytecodeU32Count: 3}
	buf := encodeHeader(h)
	got := decodeHeader(buf)
	if got != h {
		t.Fatalf("round-trip mismatch: got %+v want %+v", got, h)
	}
}

func TestCachedPathIsStablePerSource(t *testing.T) {
	c := New("shaders", ".cache/shaders")
	a := c.cachedPath("shaders/Foo/FooCompute.hlsl")
	b := c.cachedPath("shaders/Foo/FooCompute.hlsl")
	if a != b {
		t.Fatalf("expected stable cache path, got %s != %s", a, b)
	}
}
