package errors

import (
	sterrors "errors"
	"fmt"
	"strconv"
)

var (
	ErrConfigRequired  = sterrors.New("ldpb: configuration is required")
	ErrLoggerRequired  = sterrors.New("ldpb: logger is required")
	ErrSchemaRequired  = sterrors.New("ldpb: at least one schema path is required")
	ErrOutputRequired  = sterrors.New("ldpb: output directory is required")
	ErrAlreadyRun      = sterrors.New("ldpb: driver has already run")
	ErrOutOfDate       = sterrors.New("ldpb: generated output is out of date")
	ErrImportCycle     = sterrors.New("ldpb: import cycle")
	ErrImportNotFound  = sterrors.New("ldpb: import not found")
	ErrSchemaNotFound  = sterrors.New("ldpb: schema not found")
	ErrNoGoImportPath  = sterrors.New("ldpb: no Go import path")
	ErrUnsupportedKind = sterrors.New("ldpb: unsupported field kind")
	ErrNameConflict    = sterrors.New("ldpb: field name collides with a generated method")
)

// Kind classifies a SchemaCompilationError.
type Kind int

const (
	// KindInput: a schema path does not exist or cannot be read.
	KindInput Kind = iota + 1
	// KindGrammar: schema text violates the IDL grammar.
	KindGrammar
	// KindResolution: a referenced type or import cannot be found, or an
	// import cycle exists.
	KindResolution
	// KindOutput: generated source cannot be produced or written.
	KindOutput
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindGrammar:
		return "grammar"
	case KindResolution:
		return "resolution"
	case KindOutput:
		return "output"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// SchemaCompilationError is the single failure type of a compilation. File,
// Line and Column are set when the failure can be located in a schema.
type SchemaCompilationError struct {
	Kind   Kind
	File   string
	Line   int
	Column int
	Err    error
}

// NewSchemaCompilationError builds an error of the given kind for file.
func NewSchemaCompilationError(kind Kind, file string, err error) *SchemaCompilationError {
	return &SchemaCompilationError{Kind: kind, File: file, Err: err}
}

// Location renders file[:line[:column]], or "" when no file is known.
func (e *SchemaCompilationError) Location() string {
	if e.File == "" {
		return ""
	}
	loc := e.File
	if e.Line > 0 {
		loc += ":" + strconv.Itoa(e.Line)
		if e.Column > 0 {
			loc += ":" + strconv.Itoa(e.Column)
		}
	}
	return loc
}

func (e *SchemaCompilationError) Error() string {
	if loc := e.Location(); loc != "" {
		return fmt.Sprintf("ldpb: %s error: %s: %v", e.Kind, loc, e.Err)
	}
	return fmt.Sprintf("ldpb: %s error: %v", e.Kind, e.Err)
}

func (e *SchemaCompilationError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the SchemaCompilationError in err's chain.
func KindOf(err error) (Kind, bool) {
	var sce *SchemaCompilationError
	if sterrors.As(err, &sce) {
		return sce.Kind, true
	}
	return 0, false
}

// ConfigValidationError wraps every problem found while validating a Config.
type ConfigValidationError struct {
	Err error
}

func (e ConfigValidationError) Error() string {
	return "ldpb: invalid configuration: " + e.Err.Error()
}

func (e ConfigValidationError) Unwrap() error {
	return e.Err
}

// NewConfigValidationError wraps err, returning nil for a nil err.
func NewConfigValidationError(err error) error {
	if err == nil {
		return nil
	}
	return ConfigValidationError{Err: err}
}
