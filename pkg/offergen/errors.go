package offergen

import (
	"errors"
	"fmt"

	"github.com/ukaji3/offergen-go/pkg/offergen/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoTemplate indicates a generation request without templates.
var ErrNoTemplate = errors.New("no template selected")

// ErrSelectionRequired indicates a tabular generation request without selected records.
var ErrSelectionRequired = errors.New("no record selected")

// ErrUnknownRecord indicates a selected row that holds no record.
var ErrUnknownRecord = errors.New("selected row holds no record")

// ResourceError reports a workbook that cannot be opened or read.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("cannot read workbook %q: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// SheetNotFoundError reports a requested sheet missing from the workbook.
type SheetNotFoundError struct {
	Sheet string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found", e.Sheet)
}

func (e *SheetNotFoundError) Unwrap() error {
	return parser.ErrSheetNotFound
}

// RenderError represents a failure to render one template for one record.
type RenderError struct {
	Template string
	Record   int // 0 for key/value generation
	Err      error
}

func (e *RenderError) Error() string {
	if e.Record > 0 {
		return fmt.Sprintf("render error for template %q (row %d): %v", e.Template, e.Record, e.Err)
	}
	return fmt.Sprintf("render error for template %q: %v", e.Template, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(template string, record int, err error) *RenderError {
	return &RenderError{
		Template: template,
		Record:   record,
		Err:      err,
	}
}
