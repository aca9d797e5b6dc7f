package texturec

import (
	"image"
	"image/color"
)

// compressBlock compresses mip into 4x4 blocks in row-major order using the
// requested mode, returning the tightly packed stream MipByteSize expects.
func compressBlock(mode Mode, mip *image.NRGBA) []byte {
	b := mip.Bounds()
	w, h := b.Dx(), b.Dy()
	blocksX, blocksY := ceilDiv4(uint32(w)), ceilDiv4(uint32(h))

	out := make([]byte, 0, blocksX*blocksY*mode.BlockSize())
	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			px := sampleBlock(mip, bx*4, by*4)
			if mode == ModeBC1 {
				out = append(out, encodeBC1(px)...)
			} else {
				out = append(out, encodeBC7(px)...)
			}
		}
	}
	return out
}

// sampleBlock reads a 4x4 pixel block starting at (x0, y0), clamping to the
// image edge for partial blocks at the right/bottom border.
func sampleBlock(img *image.NRGBA, x0, y0 int) [16]color.NRGBA {
	b := img.Bounds()
	var px [16]color.NRGBA
	for y := 0; y < 4; y++ {
		sy := clampInt(y0+y, b.Min.Y, b.Max.Y-1)
		for x := 0; x < 4; x++ {
			sx := clampInt(x0+x, b.Min.X, b.Max.X-1)
			px[y*4+x] = img.NRGBAAt(sx, sy)
		}
	}
	return px
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// encodeBC1 produces one 8-byte BC1 block: two RGB565 endpoints (the
// darkest and brightest pixels of the block by luminance) followed by sixteen
// 2-bit indices into the 4-color palette they define.
func encodeBC1(px [16]color.NRGBA) []byte {
	c0, c1 := minMaxEndpoints(px)
	e0 := to565(c0)
	e1 := to565(c1)

	// BC1 requires e0 > e1 numerically to select the opaque 4-color mode
	// rather than the punch-through-alpha 3-color mode.
	if e0 <= e1 {
		e0, e1 = e1, e0
		c0, c1 = c1, c0
	}

	palette := bc1Palette(c0, c1)

	out := make([]byte, 8)
	out[0] = byte(e0)
	out[1] = byte(e0 >> 8)
	out[2] = byte(e1)
	out[3] = byte(e1 >> 8)

	var indices uint32
	for i, p := range px {
		idx := nearestPaletteIndex(p, palette)
		indices |= uint32(idx) << uint(i*2)
	}
	out[4] = byte(indices)
	out[5] = byte(indices >> 8)
	out[6] = byte(indices >> 16)
	out[7] = byte(indices >> 24)
	return out
}

func minMaxEndpoints(px [16]color.NRGBA) (lo, hi color.NRGBA) {
	lo = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	hi = color.NRGBA{}
	for _, p := range px {
		if luminance(p) < luminance(lo) {
			lo = p
		}
		if luminance(p) > luminance(hi) {
			hi = p
		}
	}
	return lo, hi
}

func luminance(c color.NRGBA) int {
	return int(c.R)*299 + int(c.G)*587 + int(c.B)*114
}

func to565(c color.NRGBA) uint16 {
	r := uint16(c.R) >> 3
	g := uint16(c.G) >> 2
	b := uint16(c.B) >> 3
	return (r << 11) | (g << 5) | b
}

func from565(v uint16) color.NRGBA {
	r := uint8((v >> 11) & 0x1F)
	g := uint8((v >> 5) & 0x3F)
	b := uint8(v & 0x1F)
	return color.NRGBA{
		R: (r << 3) | (r >> 2),
		G: (g << 2) | (g >> 4),
		B: (b << 3) | (b >> 2),
		A: 255,
	}
}

func bc1Palette(c0, c1 color.NRGBA) [4]color.NRGBA {
	e0 := from565(to565(c0))
	e1 := from565(to565(c1))
	return [4]color.NRGBA{
		e0,
		e1,
		lerpColor(e0, e1, 1, 3),
		lerpColor(e0, e1, 2, 3),
	}
}

func lerpColor(a, b color.NRGBA, num, den int) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8((int(x)*(den-num) + int(y)*num) / den)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}

func nearestPaletteIndex(p color.NRGBA, palette [4]color.NRGBA) int {
	best, bestDist := 0, -1
	for i, c := range palette {
		d := colorDistSq(p, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func colorDistSq(a, b color.NRGBA) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// encodeBC7 produces one 16-byte BC7 block using mode 6 (one subset, 7-bit
// RGBA endpoints plus a shared p-bit per endpoint, 4-bit indices). Mode 6
// is the simplest BC7 mode with full alpha support, which is why it is used
// here instead of a partitioned mode: this cache values correct on-disk
// layout and round-trip, not maximum compressed quality.
func encodeBC7(px [16]color.NRGBA) []byte {
	lo, hi := minMaxEndpointsRGBA(px)

	palette := bc7Palette16(expand7(lo), expand7(hi))
	var indices [16]int
	for i, p := range px {
		indices[i] = nearestPaletteIndex16(p, palette)
	}
	// The anchor index is stored without its top bit; swapping the endpoints
	// mirrors every index (i becomes 15-i), which clears that bit.
	if indices[0] >= 8 {
		lo, hi = hi, lo
		for i := range indices {
			indices[i] = 15 - indices[i]
		}
	}

	bits := newBitWriter(128)
	bits.write(1<<6, 7) // mode 6: six zero bits then a one bit, LSB first

	// Endpoint fields are grouped by channel: R0 R1 G0 G1 B0 B1 A0 A1.
	loC := [4]uint8{lo.R, lo.G, lo.B, lo.A}
	hiC := [4]uint8{hi.R, hi.G, hi.B, hi.A}
	for ch := 0; ch < 4; ch++ {
		bits.write(uint64(loC[ch]>>1), 7)
		bits.write(uint64(hiC[ch]>>1), 7)
	}

	bits.write(uint64(lo.R&1), 1)
	bits.write(uint64(hi.R&1), 1)

	for i, idx := range indices {
		if i == 0 {
			bits.write(uint64(idx), 3) // anchor index: implicit top bit is 0
		} else {
			bits.write(uint64(idx), 4)
		}
	}

	return bits.bytes
}

func minMaxEndpointsRGBA(px [16]color.NRGBA) (lo, hi color.NRGBA) {
	lo = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	hi = color.NRGBA{}
	for _, p := range px {
		if luminance(p) < luminance(lo) {
			lo = p
		}
		if luminance(p) > luminance(hi) {
			hi = p
		}
	}
	return lo, hi
}

// expand7 reconstructs an 8-bit color from the 7-bit-plus-pbit endpoint
// representation mode 6 stores (value = (v7<<1)|pbit), where the endpoint's
// shared p-bit is the red channel's low bit, as encodeBC7 writes it.
func expand7(c color.NRGBA) color.NRGBA {
	pbit := c.R & 1
	expand := func(v uint8) uint8 {
		return (v>>1)<<1 | pbit
	}
	return color.NRGBA{R: expand(c.R), G: expand(c.G), B: expand(c.B), A: expand(c.A)}
}

func bc7Palette16(e0, e1 color.NRGBA) [16]color.NRGBA {
	var pal [16]color.NRGBA
	for i := 0; i < 16; i++ {
		pal[i] = lerpColorA(e0, e1, i, 15)
	}
	return pal
}

func lerpColorA(a, b color.NRGBA, num, den int) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8((int(x)*(den-num) + int(y)*num) / den)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

func nearestPaletteIndex16(p color.NRGBA, palette [16]color.NRGBA) int {
	best, bestDist := 0, -1
	for i, c := range palette {
		d := colorDistSq(p, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// bitWriter packs bits LSB-first into a fixed-size byte buffer, matching
// BC7's bitstream convention.
type bitWriter struct {
	bytes  []byte
	cursor int // bit offset
}

func newBitWriter(totalBits int) *bitWriter {
	return &bitWriter{bytes: make([]byte, totalBits/8)}
}

func (w *bitWriter) write(v uint64, nbits int) {
	for i := 0; i < nbits; i++ {
		bit := (v >> uint(i)) & 1
		byteIdx := w.cursor / 8
		bitIdx := w.cursor % 8
		if byteIdx < len(w.bytes) {
			w.bytes[byteIdx] |= byte(bit << uint(bitIdx))
		}
		w.cursor++
	}
}
