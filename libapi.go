package logicaldecoding

import (
	compilerpkg "github.com/fnasraoui/logicaldecoding/internal/compiler"
	configpkg "github.com/fnasraoui/logicaldecoding/internal/compiler/config"
	errspkg "github.com/fnasraoui/logicaldecoding/internal/compiler/errors"
	"github.com/fnasraoui/logicaldecoding/internal/compiler/gen"
	idspkg "github.com/fnasraoui/logicaldecoding/internal/compiler/ids"
	loggingpkg "github.com/fnasraoui/logicaldecoding/internal/compiler/logging"
)

type (
	Config             = configpkg.Config
	Driver             = compilerpkg.Driver
	DriverDependencies = compilerpkg.DriverDependencies
	DriverState        = compilerpkg.State
	Result             = compilerpkg.Result
	Metrics            = compilerpkg.Metrics
	GeneratedFile      = gen.File
	Summary            = gen.Summary
	Selectors          = gen.Selectors
	RunID              = idspkg.RunID

	// Phase hooks
	Phase        = compilerpkg.Phase
	PhaseContext = compilerpkg.PhaseContext
	Hooks        = compilerpkg.Hooks

	LogFields = loggingpkg.LogFields
	Logger    = loggingpkg.Logger

	SchemaCompilationError = errspkg.SchemaCompilationError
	ErrorKind              = errspkg.Kind
	ConfigValidationError  = errspkg.ConfigValidationError
)

var (
	Default        = configpkg.Default
	LoadConfig     = configpkg.Load
	ValidateConfig = configpkg.ValidateConfig

	Compile        = compilerpkg.Compile
	CompileSources = compilerpkg.CompileSources
	NewDriver      = compilerpkg.NewDriver
	NewMetrics     = compilerpkg.NewMetrics
	LoggingHooks   = compilerpkg.LoggingHooks
	ParseSelectors = gen.ParseSelectors

	NewSlogLogger      = loggingpkg.NewSlogLogger
	NewWatermillLogger = loggingpkg.NewWatermillLogger
	DiscardLogger      = loggingpkg.Discard
	ParseLogLevel      = loggingpkg.ParseLevel

	NewRunID   = idspkg.NewRunID
	ParseRunID = idspkg.ParseRunID

	KindOf = errspkg.KindOf

	ErrConfigRequired  = errspkg.ErrConfigRequired
	ErrLoggerRequired  = errspkg.ErrLoggerRequired
	ErrSchemaRequired  = errspkg.ErrSchemaRequired
	ErrOutputRequired  = errspkg.ErrOutputRequired
	ErrAlreadyRun      = errspkg.ErrAlreadyRun
	ErrOutOfDate       = errspkg.ErrOutOfDate
	ErrImportCycle     = errspkg.ErrImportCycle
	ErrImportNotFound  = errspkg.ErrImportNotFound
	ErrSchemaNotFound  = errspkg.ErrSchemaNotFound
	ErrNoGoImportPath  = errspkg.ErrNoGoImportPath
	ErrUnsupportedKind = errspkg.ErrUnsupportedKind
	ErrNameConflict    = errspkg.ErrNameConflict
)

const (
	KindInput      = errspkg.KindInput
	KindGrammar    = errspkg.KindGrammar
	KindResolution = errspkg.KindResolution
	KindOutput     = errspkg.KindOutput
)

// Driver lifecycle states.
const (
	StatePending   = compilerpkg.StatePending
	StateSucceeded = compilerpkg.StateSucceeded
	StateFailed    = compilerpkg.StateFailed
)

const (
	PhaseLoad     = compilerpkg.PhaseLoad
	PhaseGenerate = compilerpkg.PhaseGenerate
	PhaseWrite    = compilerpkg.PhaseWrite
	PhaseVerify   = compilerpkg.PhaseVerify
)

// AllPaths selects every schema element.
const AllPaths = configpkg.AllPaths

// FileSuffix is appended to a schema's base name to form its generated file.
const FileSuffix = gen.FileSuffix
