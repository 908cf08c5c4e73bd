// Package offergen extracts procedure data from workbooks and merges it into
// offer-request letter templates.
package offergen

import (
	"go.uber.org/zap"

	"github.com/ukaji3/offergen-go/pkg/offergen/config"
	"github.com/ukaji3/offergen-go/pkg/offergen/models"
)

// Options configures extraction behavior.
type Options struct {
	// Sheets lists the sheets to read. If empty, the procedure and offers sheets are read.
	Sheets []string
	// ProcedureSheet is the name of the key/value sheet.
	// If empty, config.ProcedureSheet is used.
	ProcedureSheet string
	// OffersSheet is the name of the tabular sheet.
	// If empty, config.OffersSheet is used.
	OffersSheet string
	// Logger receives diagnostics. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		ProcedureSheet: config.ProcedureSheet,
		OffersSheet:    config.OffersSheet,
	}
}

// OptionsFromConfig returns extraction options for a configuration.
func OptionsFromConfig(cfg *config.Config, logger *zap.Logger) Options {
	return Options{
		ProcedureSheet: cfg.ProcedureSheet,
		OffersSheet:    cfg.OffersSheet,
		Logger:         logger,
	}
}

// SheetNames returns the sheets to read.
func (o Options) SheetNames() []string {
	if len(o.Sheets) > 0 {
		return o.Sheets
	}
	return []string{o.procedureSheet(), o.offersSheet()}
}

// ShapeOf returns the layout convention a sheet is read with.
func (o Options) ShapeOf(sheet string) models.Shape {
	switch sheet {
	case o.procedureSheet():
		return models.ShapeKeyValue
	case o.offersSheet():
		return models.ShapeTabular
	default:
		return models.ShapeGeneric
	}
}

func (o Options) procedureSheet() string {
	if o.ProcedureSheet != "" {
		return o.ProcedureSheet
	}
	return config.ProcedureSheet
}

func (o Options) offersSheet() string {
	if o.OffersSheet != "" {
		return o.OffersSheet
	}
	return config.OffersSheet
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
