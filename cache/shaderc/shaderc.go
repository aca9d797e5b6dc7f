// Package shaderc implements the content-addressed shader bytecode cache:
// traversal of a shader source tree, staleness detection by source mtime,
// compilation via naga, and the on-disk .oni shader cache file format.
package shaderc

import (
	"encoding/binary"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/naga"

	"github.com/onigfx/oni/hal"
	"github.com/onigfx/oni/internal/hash"
)

// Type identifies the shader stage, matching the on-disk header's type
// field.
type Type uint32

const (
	TypeNone Type = iota
	TypeVertex
	TypeFragment
	TypeCompute
	TypeMesh
	TypeAmplification
	TypeRaytracing
)

// Bytecode is a compiled shader: its stage and native IL as 32-bit words.
type Bytecode struct {
	Type     Type
	Bytecode []uint32
}

// header is the 16-byte on-disk prefix of a cached shader file.
type header struct {
	Type             uint32
	LowFileTime      uint32
	HighFileTime     uint32
	BytecodeU32Count uint32
}

const headerSize = 16

// excludedPath is the one source file the traversal skips unconditionally,
// the shared compute header that is never itself a compilable shader.
const excludedPath = "shaders/Common/Compute.hlsl"

// Cache manages the .cache/shaders/ directory next to a shaders/ source
// tree rooted at Root.
type Cache struct {
	Root     string // shader source tree, e.g. "shaders"
	CacheDir string // cache output directory, e.g. ".cache/shaders"
}

// New creates a Cache rooted at root, caching under cacheDir.
func New(root, cacheDir string) *Cache {
	return &Cache{Root: root, CacheDir: cacheDir}
}

// TypeFromPath infers a shader's stage from its file name, following the
// substring rules of the reference shader loader: *Vert* -> vertex, *Frag*
// -> fragment, *Compute* -> compute, with the shared compute header
// excluded whenever the path contains excludedPath.
func TypeFromPath(path string) Type {
	norm := normalizeSlashes(path)
	if strings.Contains(norm, excludedPath) {
		return TypeNone
	}
	switch {
	case strings.Contains(norm, "Vert"):
		return TypeVertex
	case strings.Contains(norm, "Frag"):
		return TypeFragment
	case strings.Contains(norm, "Compute"):
		return TypeCompute
	default:
		return TypeNone
	}
}

func normalizeSlashes(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// cachedPath returns the .oni file path for a given source path.
func (c *Cache) cachedPath(sourcePath string) string {
	key := hash.CacheKey(sourcePath)
	return filepath.Join(c.CacheDir, key+".oni")
}

// TraverseDirectory walks Root recursively, compiling every candidate shader
// that is missing from the cache or whose source has changed since it was
// cached.
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
		norm := normalizeSlashes(path)
		if TypeFromPath(norm) == TypeNone {
			return nil
		}

		stale, err := c.shouldRecache(norm)
		if err != nil {
			hal.Logger().Warn("shader cache: stat failed, recompiling", "path", norm, "error", err)
			stale = true
		}
		if !stale {
			hal.Logger().Info("shader cache: already cached, skipping", "path", norm)
			return nil
		}

		if err := c.CacheShader(norm); err != nil {
			hal.Logger().Error("shader cache: compile failed", "path", norm, "error", err)
		}
		return nil
	})
}

// ExistsInCache reports whether sourcePath has a cache entry on disk.
func (c *Cache) ExistsInCache(sourcePath string) bool {
	_, err := os.Stat(c.cachedPath(sourcePath))
	return err == nil
}

func (c *Cache) shouldRecache(sourcePath string) (bool, error) {
	if !c.ExistsInCache(sourcePath) {
		return true, nil
	}

	low, high, err := fileTime(sourcePath)
	if err != nil {
		return true, err
	}

	h, err := c.readHeader(sourcePath)
	if err != nil {
		return true, err
	}

	return h.LowFileTime != low || h.HighFileTime != high, nil
}

func (c *Cache) readHeader(sourcePath string) (header, error) {
	f, err := os.Open(c.cachedPath(sourcePath))
	if err != nil {
		return header{}, err
	}
	defer f.Close()

	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(f, buf); err != nil {
		return header{}, err
	}
	return decodeHeader(buf), nil
}

// CacheShader compiles sourcePath via naga and writes the cache file,
// leaving any existing cache entry untouched on compile failure.
func (c *Cache) CacheShader(sourcePath string) error {
	stageType := TypeFromPath(sourcePath)

	src, err := os.ReadFile(sourcePath)
	if err != nil {
		return hal.NewError(hal.ErrorFileIO, sourcePath, err)
	}

	compiled, err := naga.Compile(string(src))
	if err != nil {
		return hal.NewError(hal.ErrorShaderCompilation, sourcePath, err)
	}

	low, high, err := fileTime(sourcePath)
	if err != nil {
		return hal.NewError(hal.ErrorFileIO, sourcePath, err)
	}

	words := packLittleEndian(compiled)
	h := header{
		Type:             uint32(stageType),
		LowFileTime:      low,
		HighFileTime:     high,
		BytecodeU32Count: uint32(len(words)),
	}

	out := c.cachedPath(sourcePath)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return hal.NewError(hal.ErrorFileIO, out, err)
	}
	if err := writeFile(out, h, words); err != nil {
		return hal.NewError(hal.ErrorFileIO, out, err)
	}

	hal.Logger().Info("shader cache: cached", "source", sourcePath, "cache", out)
	return nil
}

// CacheShaderAndGet forces recompilation of sourcePath (used by the hot
// reload poll, which already knows the source changed) and returns the
// freshly compiled bytecode.
func (c *Cache) CacheShaderAndGet(sourcePath string) (Bytecode, error) {
	if err := c.CacheShader(sourcePath); err != nil {
		return Bytecode{}, err
	}
	return c.GetFromCache(sourcePath)
}

// GetFromCache returns the bytecode for sourcePath, compiling it on demand
// if it is not already in the cache.
func (c *Cache) GetFromCache(sourcePath string) (Bytecode, error) {
	if !c.ExistsInCache(sourcePath) {
		if err := c.CacheShader(sourcePath); err != nil {
			return Bytecode{}, err
		}
	}

	f, err := os.Open(c.cachedPath(sourcePath))
	if err != nil {
		return Bytecode{}, hal.NewError(hal.ErrorFileIO, sourcePath, err)
	}
	defer f.Close()

	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(f, buf); err != nil {
		return Bytecode{}, hal.NewError(hal.ErrorAssetLoad, sourcePath, err)
	}
	h := decodeHeader(buf)

	words := make([]uint32, h.BytecodeU32Count)
	raw := make([]byte, len(words)*4)
	if _, err := io.ReadFull(f, raw); err != nil {
		return Bytecode{}, hal.NewError(hal.ErrorAssetLoad, sourcePath, err)
	}
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(raw[i*4 : i*4+4])
	}

	return Bytecode{Type: Type(h.Type), Bytecode: words}, nil
}

func fileTime(path string) (low, high uint32, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, 0, err
	}
	return windowsFileTime(info.ModTime())
}

// windowsFileTime converts a Go time to the low/high 32-bit halves of a
// Win32 FILETIME (100ns intervals since 1601-01-01), matching the reference
// loader's header fields regardless of the host OS.
func windowsFileTime(t time.Time) (low, high uint32, err error) {
	const epochDiff = 116444736000000000 // 1601-01-01 to 1970-01-01, in 100ns units
	ticks := uint64(t.UnixNano()/100) + epochDiff
	return uint32(ticks & 0xFFFFFFFF), uint32(ticks >> 32), nil
}

func decodeHeader(buf []byte) header {
	return header{
		Type:             binary.LittleEndian.Uint32(buf[0:4]),
		LowFileTime:      binary.LittleEndian.Uint32(buf[4:8]),
		HighFileTime:     binary.LittleEndian.Uint32(buf[8:12]),
		BytecodeU32Count: binary.LittleEndian.Uint32(buf[12:16]),
	}
}

func encodeHeader(h header) []byte {
	buf := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.Type)
	binary.LittleEndian.PutUint32(buf[4:8], h.LowFileTime)
	binary.LittleEndian.PutUint32(buf[8:12], h.HighFileTime)
	binary.LittleEndian.PutUint32(buf[12:16], h.BytecodeU32Count)
	return buf
}

func writeFile(path string, h header, words []uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(encodeHeader(h)); err != nil {
		return err
	}
	raw := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(raw[i*4:i*4+4], w)
	}
	_, err = f.Write(raw)
	return err
}

// packLittleEndian packs a compiled bytecode byte stream into 32-bit words,
// the same idiom gogpu-gg's shader helper uses for SPIR-V.
func packLittleEndian(b []byte) []uint32 {
	out := make([]uint32, len(b)/4)
	for i := range out {
		out[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return out
}

