// Package render implements the frame graph orchestration: the fixed chain
// of render passes, each owning a hot-reloadable pipeline, composed each
// frame by Chain.Render.
package render

import (
	"os"
	"time"

	"github.com/onigfx/oni/cache/shaderc"
	"github.com/onigfx/oni/hal"
)

// debounceInterval is the fixed 500ms rate limiter on FileWatch.Check.
const debounceInterval = 500 * time.Millisecond

// FileWatch polls a single source file's modification time, reporting a
// change no more often than once per debounceInterval.
type FileWatch struct {
	path      string
	lastCheck time.Time
	lastModNs int64
	started   bool
}

// NewFileWatch creates a watch on path, recording its current mtime. The
// first debounce window starts at creation.
func NewFileWatch(path string) *FileWatch {
	w := &FileWatch{path: path, lastCheck: time.Now()}
	w.reload()
	return w
}

func (w *FileWatch) reload() {
	info, err := os.Stat(w.path)
	if err != nil {
		hal.Logger().Error("hot reload: failed to stat watched file", "path", w.path, "error", err)
		return
	}
	w.lastModNs = info.ModTime().UnixNano()
	w.started = true
}

// Check returns true if the file's mtime has changed since the last
// detected change, subject to the 500ms debounce: calls within the
// debounce window always return false without touching the filesystem.
func (w *FileWatch) Check(now time.Time) bool {
	if now.Sub(w.lastCheck) < debounceInterval {
		return false
	}
	w.lastCheck = now

	info, err := os.Stat(w.path)
	if err != nil {
		return false
	}
	mod := info.ModTime().UnixNano()
	if !w.started || mod != w.lastModNs {
		w.lastModNs = mod
		w.started = true
		return true
	}
	return false
}

// PipelineType mirrors the polymorphic Pipeline handle spec.md section 3
// describes: a hot-reloadable pipeline is built for exactly one of these
// kinds.
type PipelineType int

const (
	PipelineGraphics PipelineType = iota
	PipelineCompute
	PipelineMesh
	PipelineRaytracing
)

// shaderWatch pairs one shader stage's source with its file watch and last
// compiled bytecode.
type shaderWatch struct {
	watch      *FileWatch
	path       string
	entryPoint string
	stage      shaderc.Type
	bytecode   shaderc.Bytecode
}

// BuildFunc compiles the shader stages tracked by a HotReloadablePipeline
// into a concrete backend pipeline object. It is supplied by the owning
// pass, since only the pass knows its root signature and target formats.
type BuildFunc func(stages map[shaderc.Type]shaderc.Bytecode) (any, error)

// HotReloadablePipeline pairs a pipeline with one ShaderWatch per stage. It
// is polled once per frame; on a detected source change it recompiles that
// stage and rebuilds the whole pipeline object, keeping the previous
// pipeline if the rebuild fails.
type HotReloadablePipeline struct {
	Type    PipelineType
	cache   *shaderc.Cache
	shaders map[shaderc.Type]*shaderWatch
	build   BuildFunc
	current any
}

// NewHotReloadablePipeline creates an empty pipeline of the given type,
// compiling shaders through cache and assembling the final pipeline object
// with build.
func NewHotReloadablePipeline(kind PipelineType, cache *shaderc.Cache, build BuildFunc) *HotReloadablePipeline {
	return &HotReloadablePipeline{
		Type:    kind,
		cache:   cache,
		shaders: make(map[shaderc.Type]*shaderWatch),
		build:   build,
	}
}

// AddShaderWatch registers a shader stage to track and compile.
func (p *HotReloadablePipeline) AddShaderWatch(path, entryPoint string, stage shaderc.Type) {
	p.shaders[stage] = &shaderWatch{
		watch:      NewFileWatch(path),
		path:       path,
		entryPoint: entryPoint,
		stage:      stage,
	}
}

// Bytecode returns the last-compiled bytecode for a stage.
func (p *HotReloadablePipeline) Bytecode(stage shaderc.Type) shaderc.Bytecode {
	if w, ok := p.shaders[stage]; ok {
		return w.bytecode
	}
	return shaderc.Bytecode{}
}

// Build compiles every tracked stage and constructs the pipeline object for
// the first time.
func (p *HotReloadablePipeline) Build() error {
	for stage, w := range p.shaders {
		bc, err := p.cache.GetFromCache(w.path)
		if err != nil {
			return hal.NewError(hal.ErrorShaderCompilation, w.path, err)
		}
		w.bytecode = bc
		_ = stage
	}
	return p.rebuild()
}

func (p *HotReloadablePipeline) rebuild() error {
	stages := make(map[shaderc.Type]shaderc.Bytecode, len(p.shaders))
	for stage, w := range p.shaders {
		stages[stage] = w.bytecode
	}
	pipeline, err := p.build(stages)
	if err != nil {
		return err
	}
	p.current = pipeline
	return nil
}

// CheckForRebuild polls every tracked shader's watch; on any detected
// change it recompiles that stage and rebuilds the pipeline object. If
// recompilation or the rebuild fails, the previously built pipeline (if
// any) is kept and the error is logged, not returned, so the render loop
// keeps drawing with the stale pipeline.
func (p *HotReloadablePipeline) CheckForRebuild(now time.Time, name string) {
	changed := false
	for _, w := range p.shaders {
		if !w.watch.Check(now) {
			continue
		}
		bc, err := p.cache.CacheShaderAndGet(w.path)
		if err != nil {
			hal.Logger().Warn("hot reload: shader recompile failed, keeping stale pipeline",
				"pass", name, "path", w.path, "error", err)
			continue
		}
		w.bytecode = bc
		changed = true
	}
	if !changed {
		return
	}
	if err := p.rebuild(); err != nil {
		hal.Logger().Warn("hot reload: pipeline rebuild failed, keeping stale pipeline", "pass", name, "error", err)
	}
}

// Current returns the currently built backend pipeline object, or nil if
// Build has not yet succeeded.
func (p *HotReloadablePipeline) Current() any {
	return p.current
}
