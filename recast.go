package recast

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/aretw0/recast/internal/logging"
	"github.com/aretw0/recast/internal/runtime"
	"github.com/aretw0/recast/pkg/domain"
	"github.com/aretw0/recast/pkg/pattern"
	"github.com/aretw0/recast/pkg/schema"
)

// Version is the library version, reported by the CLI.
const Version = "0.3.0"

// Engine is the entry point for decoding. It owns a pattern cache, a logger,
// and optional lifecycle hooks, and is safe for concurrent use.
type Engine struct {
	cache  *pattern.Cache
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	driver *runtime.Driver
}

// Option configures an Engine.
type Option func(*Engine)

// WithCache injects a pattern cache. The default is the process-wide shared
// cache; tests and isolated pipelines pass pattern.NewCache().
func WithCache(c *pattern.Cache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithLogger sets a structured logger for decode diagnostics. The default
// logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// New initializes an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.cache == nil {
		e.cache = pattern.Shared()
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	e.driver = runtime.NewDriver(e.cache, e.logger, e.hooks)
	return e
}

// Decode matches patternText against input and fills target, a non-nil
// pointer to a struct. Field specs are derived from the struct's fields and
// `recast` tags (see schema.FieldsOf).
//
// Fields whose optional group did not participate are left untouched, so a
// pre-filled target keeps its values as defaults.
func (e *Engine) Decode(patternText, input string, target any) error {
	t := reflect.TypeOf(target)
	if t == nil || t.Kind() != reflect.Pointer || reflect.ValueOf(target).IsNil() {
		return fmt.Errorf("target must be a non-nil pointer to a struct, got %T", target)
	}
	fields, err := schema.FieldsOf(t)
	if err != nil {
		return err
	}
	return e.driver.Decode(patternText, fields, input, target)
}

// DecodeFields matches patternText against input and coerces the given field
// specs, returning the record keyed by field name. This is the dynamic-shape
// path; Decode is the struct path over the same pipeline.
func (e *Engine) DecodeFields(patternText string, fields []domain.FieldSpec, input string) (domain.Record, error) {
	return e.driver.DecodeFields(patternText, fields, input)
}

// DecodeDescriptor decodes input against a prepared descriptor.
func (e *Engine) DecodeDescriptor(desc schema.Descriptor, input string) (domain.Record, error) {
	return e.driver.DecodeFields(desc.Pattern, desc.Fields, input)
}

// defaultEngine backs the package-level API. It shares the process-wide
// pattern cache, so every caller of Parse benefits from every other caller's
// compilations.
var defaultEngine = New()

// Parse decodes input into a fresh T using the default engine.
func Parse[T any](patternText, input string) (T, error) {
	var v T
	err := defaultEngine.Decode(patternText, input, &v)
	return v, err
}

// Decode decodes input into target using the default engine.
func Decode(patternText, input string, target any) error {
	return defaultEngine.Decode(patternText, input, target)
}
