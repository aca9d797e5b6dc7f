// Package texturec implements the content-addressed, block-compressed
// texture cache: directory traversal over image sources, mip-chain
// generation by iterated box-filter downsampling, BC1/BC7 block encoding,
// and the on-disk .oni texture cache file format.
//
// Unlike the shader cache, entries here are never invalidated by source
// mtime (spec.md section 4.4's documented, deliberately unextended
// behavior): once cached, a texture persists until its .oni file is deleted
// by hand.
package texturec

import (
	"encoding/binary"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"github.com/onigfx/oni/hal"
	"github.com/onigfx/oni/internal/hash"
)

// Mode selects the block-compressed format, matching the on-disk header.
type Mode uint32

const (
	ModeBC1 Mode = 1
	ModeBC7 Mode = 7
)

// BlockSize returns the compressed block size in bytes for the mode: 8 for
// BC1, 16 for BC7.
func (m Mode) BlockSize() int {
	if m == ModeBC1 {
		return 8
	}
	return 16
}

// header is the 16-byte on-disk prefix of a cached texture file.
type header struct {
	Width    uint32
	Height   uint32
	MipCount uint32
	Mode     uint32
}

const headerSize = 16

// MipByteSize returns the compressed size of mip level i of a width x height
// texture in the given mode, per the block-size formula: blockSize *
// ceil(max(1, w>>i)/4) * ceil(max(1, h>>i)/4).
func MipByteSize(mode Mode, width, height uint32, i int) int {
	w := maxu(1, width>>uint(i))
	h := maxu(1, height>>uint(i))
	blocksX := ceilDiv4(w)
	blocksY := ceilDiv4(h)
	return mode.BlockSize() * blocksX * blocksY
}

func maxu(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func ceilDiv4(v uint32) int {
	return int((v + 3) / 4)
}

// Cache manages the .cache/textures/ directory for a tree of source images.
type Cache struct {
	Root     string // image source tree, e.g. "assets"
	CacheDir string // cache output directory, e.g. ".cache/textures"
	Mode     Mode   // compression format to use for newly cached textures
}

// New creates a Cache rooted at root, caching under cacheDir in the given
// block-compressed mode.
func New(root, cacheDir string, mode Mode) *Cache {
	return &Cache{Root: root, CacheDir: cacheDir, Mode: mode}
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

func (c *Cache) cachedPath(sourcePath string) string {
	key := hash.CacheKey(sourcePath)
	return filepath.Join(c.CacheDir, key+".oni")
}

// TraverseDirectory walks Root, compressing every image under it that is
// not already cached. Already-cached textures are left untouched even if
// their source has since changed.
func (c *Cache) TraverseDirectory() error {
	if err := os.MkdirAll(c.CacheDir, 0o755); err != nil {
		return hal.NewError(hal.ErrorFileIO, c.CacheDir, err)
	}

	return filepath.WalkDir(c.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !imageExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if c.ExistsInCache(path) {
			hal.Logger().Info("texture cache: already cached, skipping", "path", path)
			return nil
		}
		if err := c.CacheTexture(path); err != nil {
			hal.Logger().Error("texture cache: compression failed", "path", path, "error", err)
		}
		return nil
	})
}

// ExistsInCache reports whether sourcePath has a cache entry on disk.
func (c *Cache) ExistsInCache(sourcePath string) bool {
	_, err := os.Stat(c.cachedPath(sourcePath))
	return err == nil
}

// CacheTexture decodes sourcePath, builds its mip chain by iterated
// box-filter downsampling, block-compresses every level, and writes the
// .oni cache file.
func (c *Cache) CacheTexture(sourcePath string) error {
	f, err := os.Open(sourcePath)
	if err != nil {
		return hal.NewError(hal.ErrorFileIO, sourcePath, err)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return hal.NewError(hal.ErrorAssetLoad, sourcePath, err)
	}

	mips := BuildMipChain(img)
	payload := make([][]byte, len(mips))
	for i, m := range mips {
		payload[i] = compressBlock(c.Mode, m)
	}

	bounds := img.Bounds()
	h := header{
		Width:    uint32(bounds.Dx()),
		Height:   uint32(bounds.Dy()),
		MipCount: uint32(len(mips)),
		Mode:     uint32(c.Mode),
	}

	out := c.cachedPath(sourcePath)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return hal.NewError(hal.ErrorFileIO, out, err)
	}
	if err := writeTextureFile(out, h, payload); err != nil {
		return hal.NewError(hal.ErrorFileIO, out, err)
	}

	hal.Logger().Info("texture cache: cached", "source", sourcePath, "cache", out, "mips", len(mips))
	return nil
}

// File is a texture read back from the cache.
type File struct {
	Width    uint32
	Height   uint32
	MipCount uint32
	Mode     Mode
	Mips     [][]byte // one block-compressed payload per mip level
}

// Load reads a cached texture file from disk.
func Load(cachedPath string) (File, error) {
	f, err := os.Open(cachedPath)
	if err != nil {
		return File{}, hal.NewError(hal.ErrorAssetLoad, cachedPath, err)
	}
	defer f.Close()

	buf := make([]byte, headerSize)
	if _, err := readFull(f, buf); err != nil {
		return File{}, hal.NewError(hal.ErrorAssetLoad, cachedPath, err)
	}
	h := decodeHeader(buf)
	mode := Mode(h.Mode)

	mips := make([][]byte, h.MipCount)
	for i := range mips {
		size := MipByteSize(mode, h.Width, h.Height, i)
		mips[i] = make([]byte, size)
		if _, err := readFull(f, mips[i]); err != nil {
			return File{}, hal.NewError(hal.ErrorAssetLoad, cachedPath, err)
		}
	}

	return File{Width: h.Width, Height: h.Height, MipCount: h.MipCount, Mode: mode, Mips: mips}, nil
}

func readFull(f *os.File, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := f.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, fmt.Errorf("texturec: unexpected EOF")
		}
	}
	return total, nil
}

func decodeHeader(buf []byte) header {
	return header{
		Width:    binary.LittleEndian.Uint32(buf[0:4]),
		Height:   binary.LittleEndian.Uint32(buf[4:8]),
		MipCount: binary.LittleEndian.Uint32(buf[8:12]),
		Mode:     binary.LittleEndian.Uint32(buf[12:16]),
	}
}

func encodeHeader(h header) []byte {
	buf := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.Width)
	binary.LittleEndian.PutUint32(buf[4:8], h.Height)
	binary.LittleEndian.PutUint32(buf[8:12], h.MipCount)
	binary.LittleEndian.PutUint32(buf[12:16], h.Mode)
	return buf
}

func writeTextureFile(path string, h header, mips [][]byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(encodeHeader(h)); err != nil {
		return err
	}
	for _, mip := range mips {
		if _, err := f.Write(mip); err != nil {
			return err
		}
	}
	return nil
}

// BuildMipChain downsamples img by repeated 2x box filtering until a 1x1
// mip is produced, returning level 0 (full resolution) through the final
// 1x1 level, inclusive.
func BuildMipChain(img image.Image) []*image.NRGBA {
	base := toNRGBA(img)
	mips := []*image.NRGBA{base}

	w, h := base.Bounds().Dx(), base.Bounds().Dy()
	for w > 1 || h > 1 {
		nw, nh := maxInt(1, w/2), maxInt(1, h/2)
		prev := mips[len(mips)-1]
		o := prev.Bounds().Min
		next := image.NewNRGBA(image.Rect(0, 0, nw, nh))
		for y := 0; y < nh; y++ {
			y0, y1 := o.Y+2*y, o.Y+min(2*y+1, h-1)
			for x := 0; x < nw; x++ {
				x0, x1 := o.X+2*x, o.X+min(2*x+1, w-1)
				d := next.PixOffset(x, y)
				for c := 0; c < 4; c++ {
					sum := int(prev.Pix[prev.PixOffset(x0, y0)+c]) + int(prev.Pix[prev.PixOffset(x1, y0)+c]) +
						int(prev.Pix[prev.PixOffset(x0, y1)+c]) + int(prev.Pix[prev.PixOffset(x1, y1)+c])
					next.Pix[d+c] = uint8((sum + 2) / 4)
				}
			}
		}
		mips = append(mips, next)
		w, h = nw, nh
	}
	return mips
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)
	return out
}
