package compiler

import (
	"context"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	configpkg "github.com/fnasraoui/logicaldecoding/internal/compiler/config"
	errspkg "github.com/fnasraoui/logicaldecoding/internal/compiler/errors"
	"github.com/fnasraoui/logicaldecoding/internal/compiler/gen"
	"github.com/fnasraoui/logicaldecoding/internal/compiler/ids"
	"github.com/fnasraoui/logicaldecoding/internal/compiler/loader"
	loggingpkg "github.com/fnasraoui/logicaldecoding/internal/compiler/logging"
	"github.com/fnasraoui/logicaldecoding/internal/compiler/output"
)

const tracerName = "github.com/fnasraoui/logicaldecoding/compiler"

// Result is the output of a successful compilation.
type Result struct {
	// Schemas are the import names of the compiled schemas, sorted.
	Schemas []string
	// Files are the generated sources, sorted by name. Imported schemas are
	// generated as well.
	Files   []gen.File
	Summary gen.Summary
}

// Compile reads the configured schemas and returns the generated sources.
// Nothing is written.
func Compile(ctx context.Context, conf configpkg.Config) (Result, error) {
	includes := conf.IncludePaths
	if len(includes) == 0 {
		includes = []string{"."}
	}
	return newRunner(ids.NewRunID().String(), Hooks{}).compile(ctx, loader.IncludePaths(includes), conf)
}

// CompileSources compiles schemas held in memory, keyed by import name. When
// conf names no schemas, every source is compiled.
func CompileSources(ctx context.Context, sources map[string]string, conf configpkg.Config) (Result, error) {
	src := make(loader.MapSources, len(sources))
	for name, text := range sources {
		src[strings.TrimPrefix(path.Clean(name), "./")] = text
	}
	if len(conf.SchemaPaths) == 0 {
		conf.SchemaPaths = src.Names()
	}
	return newRunner(ids.NewRunID().String(), Hooks{}).compile(ctx, src, conf)
}

type runner struct {
	runID  string
	hooks  Hooks
	tracer trace.Tracer
}

func newRunner(runID string, hooks Hooks) runner {
	return runner{runID: runID, hooks: hooks, tracer: otel.Tracer(tracerName)}
}

// phase runs fn inside a span and between the phase hooks.
func (r runner) phase(ctx context.Context, p Phase, fn func(context.Context) error) error {
	ctx, span := r.tracer.Start(ctx, "ldpb."+string(p),
		trace.WithAttributes(attribute.String("ldpb.run_id", r.runID)))
	defer span.End()

	err := r.hooks.runPhase(ctx, p, r.runID, fn)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r runner) compile(ctx context.Context, src loader.Sources, conf configpkg.Config) (Result, error) {
	if err := conf.Validate(); err != nil {
		return Result{}, errspkg.NewSchemaCompilationError(errspkg.KindInput, "", errspkg.NewConfigValidationError(err))
	}

	var loaded *loader.Result
	err := r.phase(ctx, PhaseLoad, func(ctx context.Context) error {
		l := loader.New(src)
		names, err := l.ImportNames(conf.SchemaPaths)
		if err != nil {
			return err
		}
		loaded, err = l.Load(ctx, names)
		return err
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{Schemas: loaded.Roots}
	err = r.phase(ctx, PhaseGenerate, func(context.Context) error {
		opts := gen.Options{
			OrderedMaps:      gen.Selectors(conf.OrderedMaps),
			StructuredFormat: gen.Selectors(conf.StructuredFormat),
		}
		var err error
		res.Files, res.Summary, err = gen.Run(loaded.Files, conf.GoImportPrefix, opts)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// State is the lifecycle position of a Driver.
type State int

const (
	StatePending State = iota
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DriverDependencies holds the collaborators of a Driver. Logger is required;
// the rest may be left zero.
type DriverDependencies struct {
	Logger  loggingpkg.Logger
	Metrics *Metrics
	Hooks   Hooks
	// Sources overrides where schemas are read from. Defaults to the
	// configured include paths.
	Sources loader.Sources
}

// Driver compiles the configured schemas and writes the result, once.
type Driver struct {
	conf    configpkg.Config
	logger  loggingpkg.Logger
	metrics *Metrics
	hooks   Hooks
	src     loader.Sources

	mu      sync.Mutex
	started bool
	state   State
	result  Result
}

// NewDriver validates conf and returns a pending Driver.
func NewDriver(conf configpkg.Config, deps DriverDependencies) (*Driver, error) {
	if deps.Logger == nil {
		return nil, errspkg.ErrLoggerRequired
	}
	if err := conf.Validate(); err != nil {
		return nil, errspkg.NewConfigValidationError(err)
	}
	if conf.OutputDir == "" {
		return nil, errspkg.NewConfigValidationError(errspkg.ErrOutputRequired)
	}
	if len(conf.IncludePaths) == 0 {
		conf.IncludePaths = []string{"."}
	}

	d := &Driver{
		conf:    conf,
		logger:  deps.Logger,
		metrics: deps.Metrics,
		hooks:   deps.Hooks,
		src:     deps.Sources,
	}
	if d.src == nil {
		d.src = loader.IncludePaths(conf.IncludePaths)
	}
	if d.metrics != nil {
		if err := d.metrics.Register(); err != nil {
			return nil, err
		}
		d.hooks = d.hooks.Merge(d.metrics.Hooks())
	}
	return d, nil
}

// State reports whether the driver has run and how it ended.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Result returns the compilation result of a successful Run.
func (d *Driver) Result() Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.result
}

// Run compiles the schemas and writes the generated files, or compares them
// with the output directory in verify mode. A Driver runs at most once; later
// calls return ErrAlreadyRun.
func (d *Driver) Run(ctx context.Context) error {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		return errspkg.ErrAlreadyRun
	}
	d.started = true
	d.mu.Unlock()

	runID := ids.NewRunID().String()
	log := d.logger.With(loggingpkg.LogFields{"run_id": runID})
	r := newRunner(runID, d.hooks.Merge(LoggingHooks(log)))

	ctx, span := r.tracer.Start(ctx, "ldpb.Run", trace.WithAttributes(
		attribute.String("ldpb.run_id", runID),
		attribute.StringSlice("ldpb.schemas", d.conf.SchemaPaths),
		attribute.Bool("ldpb.verify", d.conf.Verify),
	))
	defer span.End()

	start := time.Now()
	log.Info("Compiling schemas", loggingpkg.LogFields{
		"schemas": d.conf.SchemaPaths,
		"output":  d.conf.OutputDir,
		"verify":  d.conf.Verify,
	})

	if !slices.Contains(d.conf.OrderedMaps, configpkg.AllPaths) {
		log.Info("Warning: map fields outside the ordered-map selectors use builtin maps, whose wire encoding is not deterministic", loggingpkg.LogFields{
			"ordered_maps": d.conf.OrderedMaps,
		})
	}
	if !slices.Contains(d.conf.StructuredFormat, configpkg.AllPaths) {
		log.Info("Warning: types outside the structured-format selectors get no JSON methods", loggingpkg.LogFields{
			"structured_format": d.conf.StructuredFormat,
		})
	}

	res, err := r.compile(ctx, d.src, d.conf)
	if err == nil {
		if d.conf.Verify {
			err = r.phase(ctx, PhaseVerify, func(context.Context) error {
				return output.Verify(d.conf.OutputDir, res.Files)
			})
		} else {
			err = r.phase(ctx, PhaseWrite, func(context.Context) error {
				return output.Write(d.conf.OutputDir, res.Files)
			})
		}
	}

	d.mu.Lock()
	if err != nil {
		d.state = StateFailed
	} else {
		d.state = StateSucceeded
		d.result = res
	}
	d.mu.Unlock()

	if d.metrics != nil {
		d.metrics.RecordRun(err)
		if err == nil {
			d.metrics.RecordSummary(res.Summary)
		}
	}

	fields := loggingpkg.LogFields{"duration_ms": time.Since(start).Milliseconds()}
	if err != nil {
		if kind, ok := errspkg.KindOf(err); ok {
			fields["kind"] = kind.String()
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("Schema compilation failed", err, fields)
		return err
	}
	fields["files"] = res.Summary.Files
	fields["messages"] = res.Summary.Messages
	fields["enums"] = res.Summary.Enums
	fields["ordered_maps"] = res.Summary.OrderedMaps
	fields["structured_types"] = res.Summary.StructuredTypes
	log.Info("Schema compilation finished", fields)
	return nil
}

// LoggingHooks returns hooks that log phase lifecycle events at debug level
// and phase failures at error level.
func LoggingHooks(log loggingpkg.Logger) Hooks {
	return Hooks{
		OnPhaseStart: func(ctx PhaseContext) {
			log.Debug("Phase started", loggingpkg.LogFields{"phase": string(ctx.Phase)})
		},
		OnPhaseDone: func(ctx PhaseContext) {
			log.Debug("Phase completed", loggingpkg.LogFields{
				"phase":       string(ctx.Phase),
				"duration_ms": ctx.Duration.Milliseconds(),
			})
		},
		OnPhaseError: func(ctx PhaseContext, err error) {
			log.Error("Phase failed", err, loggingpkg.LogFields{
				"phase":       string(ctx.Phase),
				"duration_ms": ctx.Duration.Milliseconds(),
			})
		},
	}
}
