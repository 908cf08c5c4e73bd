package offergen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ukaji3/offergen-go/pkg/offergen/config"
	"github.com/ukaji3/offergen-go/pkg/offergen/dates"
	"github.com/ukaji3/offergen-go/pkg/offergen/docx"
	"github.com/ukaji3/offergen-go/pkg/offergen/models"
)

// Mode selects which sheet drives generation.
type Mode string

const (
	// ModeProcedure renders one document per template from the procedure sheet.
	ModeProcedure Mode = "procedura"
	// ModeOffers renders one document per template and selected offers row.
	ModeOffers Mode = "offerte"
)

// Renderer fills one template with context values and saves the result.
type Renderer interface {
	Render(templatePath, outPath string, values map[string]string) error
}

// Request is one generation request.
type Request struct {
	Workbook  string
	Templates []string
	// OutputDir is created if absent; blank means the configured default.
	OutputDir string
	Mode      Mode
	// Rows are the 1-based sheet rows of the selected offers records (ModeOffers only).
	Rows []int
}

// Job is one context to render with every template.
type Job struct {
	// Record is the sheet row the context was built from; 0 for the procedure sheet.
	Record  int
	Context models.Context
}

// Generator turns workbooks into filled documents.
type Generator struct {
	Config   *config.Config
	Renderer Renderer
	Logger   *zap.Logger
	Now      func() time.Time
}

// NewGenerator returns a Generator rendering .docx templates.
func NewGenerator(cfg *config.Config, logger *zap.Logger) *Generator {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		Config: cfg,
		Renderer: docx.Renderer{OnMissing: func(template string, names []string) {
			logger.Warn("placeholders without value", zap.String("template", template), zap.Strings("names", names))
		}},
		Logger: logger,
		Now:    time.Now,
	}
}

// Builder returns the context builder for the generator's configuration.
func (g *Generator) Builder() ContextBuilder {
	return ContextBuilder{
		Dates:      dates.New(g.Config.DateFields),
		TodayField: g.Config.TodayField,
	}
}

// Generate reads the workbook and renders every template for every context
// of the request. Request-level problems (no template, no selection,
// unreadable workbook) are returned as errors; per-document failures are
// recorded in the report and do not stop the batch.
func (g *Generator) Generate(req Request, sess *Session) (*models.Report, error) {
	if len(req.Templates) == 0 {
		return nil, ErrNoTemplate
	}
	if req.Mode == "" {
		req.Mode = ModeProcedure
	}
	if req.Mode == ModeOffers && len(req.Rows) == 0 {
		return nil, ErrSelectionRequired
	}
	if sess == nil {
		sess = NewSession(nil)
	}

	wb, err := Extract(req.Workbook, OptionsFromConfig(g.Config, g.Logger))
	if err != nil {
		return nil, err
	}
	sess.RememberSource(req.Workbook)
	sess.RememberTemplates(req.Templates)

	report := &models.Report{
		RunID:     uuid.NewString(),
		OutputDir: g.outputDir(req.OutputDir),
	}
	for _, name := range wb.Missing {
		report.Warnings = append(report.Warnings, (&SheetNotFoundError{Sheet: name}).Error())
	}

	procedure, _ := wb.Sheet(g.Config.ProcedureSheet)
	kv := procedure.Scalars()
	for _, fill := range sess.Fill(g.Config.Bindings, kv) {
		g.Logger.Debug("field filled from workbook",
			zap.String("field", fill.Field), zap.String("variable", fill.Variable))
	}

	jobs, err := g.Jobs(wb, req, kv, sess)
	if err != nil {
		return nil, err
	}

	log := g.Logger.With(zap.String("run", report.RunID))
	log.Info("generating documents",
		zap.String("workbook", wb.BookName),
		zap.Int("templates", len(req.Templates)),
		zap.Int("contexts", len(jobs)))

	report.Outcomes = g.GenerateAll(req.Templates, jobs, report.OutputDir)
	log.Info("generation finished",
		zap.Int("succeeded", report.Succeeded()),
		zap.Int("failed", len(report.Failures())))
	return report, nil
}

// Jobs builds the contexts of a request: exactly one for the procedure sheet,
// one per selected row for the offers sheet.
func (g *Generator) Jobs(wb *models.WorkbookData, req Request, kv []models.Variable, sess *Session) ([]Job, error) {
	b := g.Builder()
	static := b.StaticFields(g.now())
	user := sess.Values()

	if req.Mode != ModeOffers {
		return []Job{{Context: b.Build(static, user, kv, nil)}}, nil
	}

	if len(req.Rows) == 0 {
		return nil, ErrSelectionRequired
	}
	offers, ok := wb.Sheet(g.Config.OffersSheet)
	if !ok {
		return nil, &SheetNotFoundError{Sheet: g.Config.OffersSheet}
	}
	jobs := make([]Job, 0, len(req.Rows))
	for _, row := range req.Rows {
		rec, ok := offers.Record(row)
		if !ok {
			return nil, fmt.Errorf("%w: row %d of %q", ErrUnknownRecord, row, offers.Name)
		}
		jobs = append(jobs, Job{Record: row, Context: b.Build(static, user, kv, rec.Data)})
	}
	return jobs, nil
}

// GenerateAll renders every template for every job, templates first.
// Each pair is attempted independently and gets its own outcome.
func (g *Generator) GenerateAll(templates []string, jobs []Job, outDir string) []models.Outcome {
	outDir = g.outputDir(outDir)
	dirErr := os.MkdirAll(outDir, 0o755)

	outcomes := make([]models.Outcome, 0, len(templates)*len(jobs))
	for _, tpl := range templates {
		for _, job := range jobs {
			o := models.Outcome{Template: tpl, Record: job.Record}
			if dirErr != nil {
				o.Err = NewRenderError(tpl, job.Record, dirErr)
			} else if path, err := g.Render(tpl, job, outDir); err != nil {
				o.Err = err
			} else {
				o.Path = path
			}

			if o.Err != nil {
				o.Error = o.Err.Error()
				g.Logger.Warn("document not generated",
					zap.String("template", tpl), zap.Int("record", job.Record), zap.Error(o.Err))
			} else {
				g.Logger.Info("document generated", zap.String("path", o.Path))
			}
			outcomes = append(outcomes, o)
		}
	}
	return outcomes
}

// Render fills one template with one job's context and returns the written path.
func (g *Generator) Render(templatePath string, job Job, outDir string) (string, error) {
	name := OutputName(templatePath,
		job.Context.String(g.Config.NameField),
		job.Context.String(g.Config.AcronymField),
		job.Record, g.now())
	path := filepath.Join(outDir, name)
	if err := g.Renderer.Render(templatePath, path, job.Context.Strings()); err != nil {
		return "", NewRenderError(templatePath, job.Record, err)
	}
	return path, nil
}

func (g *Generator) outputDir(dir string) string {
	if strings.TrimSpace(dir) != "" {
		return dir
	}
	if g.Config.OutputDir != "" {
		return g.Config.OutputDir
	}
	return config.DefaultOutputDir
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}
