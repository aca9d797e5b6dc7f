package passes

// The original engine's renderer/techniques/ directory also implements
// bloom, chromatic aberration, film grain, motion blur, and SSAO. None of
// the top-level scene scripts instantiate them, so they are not wired into
// the default Chain (render.NewChain in cmd/onirun only composes Shadow,
// Deferred, EnvironmentSky, ColorCorrection, AutoExposure, Tonemap,
// DebugOverlay, Blit). These names are kept as a record of what exists
// upstream but is intentionally unimplemented here.
const (
	TechniqueBloom               = "bloom"
	TechniqueChromaticAberration = "chromatic_aberration"
	TechniqueFilmGrain           = "film_grain"
	TechniqueMotionBlur          = "motion_blur"
	TechniqueSSAO                = "ssao"
)
