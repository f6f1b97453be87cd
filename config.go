package promise2

import "sync/atomic"

// Config exposes the three compile-time knobs spec §6 describes (enable
// deferred stages, enable nested stages, enable the void-rejection
// implicit-resolve adapter) as a runtime-checked configuration, since Go
// has no template-instantiation gate to hook them into. Spawn/Then/Catch
// consult the active Config once, at construction time, via CurrentConfig.
type Config struct {
	// EnableDeferredStages gates Spawn/Then overloads taking a *Defer[T]
	// handle. Default: true.
	EnableDeferredStages bool

	// EnableNestedStages gates Spawn/Then overloads returning
	// *Promise[T]. Default: true.
	EnableNestedStages bool

	// AdaptVoidRejection allows a rejection handler with no return value
	// (func(error)) to be adapted into an implicitly-resolved handler
	// that produces the zero value of Ret (spec §4.8 last paragraph).
	// Without it, every rejection handler must yield a Promise. Default:
	// false.
	AdaptVoidRejection bool
}

// DefaultConfig returns the library's default configuration: deferred and
// nested stages enabled, void-rejection adaptation disabled.
func DefaultConfig() Config {
	return Config{
		EnableDeferredStages: true,
		EnableNestedStages:   true,
		AdaptVoidRejection:   false,
	}
}

var globalConfig atomic.Pointer[Config]

func init() {
	cfg := DefaultConfig()
	globalConfig.Store(&cfg)
}

// SetConfig installs cfg as the active, package-global configuration.
// Intended to be called once during program initialization, before any
// Spawn/Then/Catch/Iterate call — matching the teacher's
// SetStructuredLogger global-configuration pattern.
func SetConfig(cfg Config) {
	c := cfg
	globalConfig.Store(&c)
}

// CurrentConfig returns the active configuration.
func CurrentConfig() Config {
	return *globalConfig.Load()
}
