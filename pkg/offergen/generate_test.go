package offergen

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/offergen-go/pkg/offergen/config"
	"github.com/ukaji3/offergen-go/pkg/offergen/docx"
	"github.com/ukaji3/offergen-go/pkg/offergen/docx/docxtest"
	"github.com/ukaji3/offergen-go/pkg/offergen/models"
)

var testNow = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

func newTestGenerator() *Generator {
	g := NewGenerator(config.DefaultConfig(), nil)
	g.Now = func() time.Time { return testNow }
	return g
}

func TestGenerateEndToEnd(t *testing.T) {
	workbook := writeWorkbook(t, map[string]map[string]any{
		"dati_generali_procedura": {
			"C2": "Mario Rossi", "D2": "", "E2": "nome_cognome_richiedente",
		},
	})
	dir := t.TempDir()
	tpl := filepath.Join(dir, "RichiestaOfferta.docx")
	docxtest.WriteTemplate(t, tpl, []string{
		docxtest.Paragraph("Richiedente: {{ nome_cognome_richiedente }}"),
		docxtest.Paragraph("Firmato {{nome_cognome_", "richiedente}} il {{ data_corrente }}"),
	}, nil)
	out := filepath.Join(dir, "out", "nested")

	g := newTestGenerator()
	sess := NewSession(nil)
	report, err := g.Generate(Request{Workbook: workbook, Templates: []string{tpl}, OutputDir: out}, sess)
	require.NoError(t, err)

	assert.Equal(t, []string{"sheet \"generazioni_offerte\" not found"}, report.Warnings)
	require.Equal(t, 1, report.Succeeded())
	assert.Empty(t, report.Failures())

	files, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "RichiestaOfferta_Rossi_20261019.docx", files[0].Name())
	assert.Equal(t, filepath.Join(out, files[0].Name()), report.Files()[0])

	text, err := docx.Text(report.Files()[0])
	require.NoError(t, err)
	assert.Equal(t, "Richiedente: Mario Rossi\nFirmato Mario Rossi il 19/10/2026", text)

	assert.Equal(t, "Mario Rossi", sess.Get("nome_cognome"))
	assert.NotContains(t, sess.Fields, "nome_cognome", "typed fields stay untouched")
	assert.Equal(t, filepath.Dir(workbook), sess.SourceDir)
	assert.Equal(t, dir, sess.TemplateDir)
}

func TestGenerateRereadsWorkbookOnSameSession(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "T.docx")
	docxtest.WriteTemplate(t, tpl, []string{docxtest.Paragraph("{{ nome_cognome }} ({{ mail_contatto }})")}, nil)

	first := writeWorkbook(t, map[string]map[string]any{
		"dati_generali_procedura": {
			"C2": "Mario Rossi", "E2": "nome_cognome_richiedente",
			"C3": "mario@example.org", "E3": "email_richiedente",
		},
	})
	second := writeWorkbook(t, map[string]map[string]any{
		"dati_generali_procedura": {
			"C2": "Luigi Bianchi", "E2": "nome_cognome_richiedente",
			"C3": "luigi@example.org", "E3": "email_richiedente",
		},
	})

	g := newTestGenerator()
	sess := NewSession(nil)
	sess.Set("mail_contatto", "rup@example.org")

	var texts []string
	for _, wb := range []string{first, second} {
		report, err := g.Generate(Request{Workbook: wb, Templates: []string{tpl}, OutputDir: filepath.Join(dir, "out")}, sess)
		require.NoError(t, err)
		require.Equal(t, 1, report.Succeeded())
		text, err := docx.Text(report.Files()[0])
		require.NoError(t, err)
		texts = append(texts, filepath.Base(report.Files()[0])+" "+text)
	}

	assert.Equal(t, []string{
		"T_Rossi_20261019.docx Mario Rossi (rup@example.org)",
		"T_Bianchi_20261019.docx Luigi Bianchi (rup@example.org)",
	}, texts)
	assert.Equal(t, "Luigi Bianchi", sess.Get("nome_cognome"))
	assert.Equal(t, "rup@example.org", sess.Get("mail_contatto"))
}

func TestGenerateAllPartialFailure(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "Broken.docx")
	require.NoError(t, os.WriteFile(broken, []byte("garbage"), 0o644))
	valid := filepath.Join(dir, "Valid.docx")
	docxtest.WriteTemplate(t, valid, []string{docxtest.Paragraph("{{ x }}")}, nil)

	g := newTestGenerator()
	out := filepath.Join(dir, "out")
	outcomes := g.GenerateAll([]string{broken, valid}, []Job{{Context: models.Context{"x": "1"}}}, out)

	require.Len(t, outcomes, 2)
	report := &models.Report{Outcomes: outcomes}
	assert.Equal(t, 1, report.Succeeded())
	require.Len(t, report.Failures(), 1)

	failure := report.Failures()[0]
	assert.Equal(t, broken, failure.Template)
	var rerr *RenderError
	require.ErrorAs(t, failure.Err, &rerr)
	assert.Equal(t, broken, rerr.Template)
	assert.NotEmpty(t, failure.Error)

	assert.FileExists(t, outcomes[1].Path)
}

func TestGenerateAllOrder(t *testing.T) {
	rec := &recordingRenderer{}
	g := newTestGenerator()
	g.Renderer = rec

	jobs := []Job{
		{Record: 2, Context: models.Context{"nome_cognome": "A Uno"}},
		{Record: 5, Context: models.Context{"nome_cognome": "B Due"}},
	}
	outcomes := g.GenerateAll([]string{"T1.docx", "T2.docx"}, jobs, t.TempDir())

	require.Len(t, outcomes, 4)
	assert.Equal(t, []string{
		"T1_Uno_2_20261019.docx", "T1_Due_5_20261019.docx",
		"T2_Uno_2_20261019.docx", "T2_Due_5_20261019.docx",
	}, rec.names)
}

func TestGenerateOffers(t *testing.T) {
	workbook := writeWorkbook(t, map[string]map[string]any{
		"dati_generali_procedura": {
			"C2": "Alfonso Crisci", "E2": "nome_cognome",
			"C3": "CLIMANIMAL", "E3": "acronimo_progetto",
			"C4": "Ditta da procedura", "E4": "nome_ditta",
		},
		"generazioni_offerte": {
			"A1": "nome_ditta", "B1": "pec_ditta",
			"A2": "BASSO SRL", "B2": "basso@pec.it",
			"A3": "ROSSI SPA", "B3": "rossi@pec.it",
		},
	})
	dir := t.TempDir()
	tpl := filepath.Join(dir, "Richiesta.docx")
	docxtest.WriteTemplate(t, tpl, []string{docxtest.Paragraph("{{ nome_ditta }} - {{ pec_ditta }}")}, nil)

	g := newTestGenerator()
	report, err := g.Generate(Request{
		Workbook:  workbook,
		Templates: []string{tpl},
		OutputDir: filepath.Join(dir, "out"),
		Mode:      ModeOffers,
		Rows:      []int{3},
	}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, report.Succeeded())

	path := report.Files()[0]
	assert.Equal(t, "Richiesta_Crisci_CLIMANIMAL_3_20261019.docx", filepath.Base(path))
	text, err := docx.Text(path)
	require.NoError(t, err)
	assert.Equal(t, "ROSSI SPA - rossi@pec.it", text, "the selected record overrides the procedure sheet")
}

func TestGenerateRequestErrors(t *testing.T) {
	workbook := writeWorkbook(t, map[string]map[string]any{
		"dati_generali_procedura": {"C2": "v", "E2": "n"},
		"generazioni_offerte":     {"A1": "h", "A2": "r"},
	})
	g := newTestGenerator()

	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"no template", Request{Workbook: workbook}, ErrNoTemplate},
		{"no selection", Request{Workbook: workbook, Templates: []string{"t.docx"}, Mode: ModeOffers}, ErrSelectionRequired},
		{"unknown row", Request{Workbook: workbook, Templates: []string{"t.docx"}, Mode: ModeOffers, Rows: []int{9}}, ErrUnknownRecord},
		{"missing workbook", Request{Workbook: filepath.Join(t.TempDir(), "x.xlsx"), Templates: []string{"t.docx"}}, ErrFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Generate(tt.req, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGenerateOffersWithoutOffersSheet(t *testing.T) {
	workbook := writeWorkbook(t, map[string]map[string]any{
		"dati_generali_procedura": {"C2": "v", "E2": "n"},
	})

	_, err := newTestGenerator().Generate(Request{
		Workbook: workbook, Templates: []string{"t.docx"}, Mode: ModeOffers, Rows: []int{2},
	}, nil)
	var missing *SheetNotFoundError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "generazioni_offerte", missing.Sheet)
}

func TestGenerateAllOutputDirFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	g := newTestGenerator()
	g.Renderer = &recordingRenderer{}
	outcomes := g.GenerateAll([]string{"a.docx", "b.docx"}, []Job{{}}, filepath.Join(blocker, "sub"))

	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.False(t, o.OK())
	}
}

func TestDefaultOutputDir(t *testing.T) {
	g := newTestGenerator()
	assert.Equal(t, config.DefaultOutputDir, g.outputDir("  "))
	assert.Equal(t, "x", g.outputDir("x"))
}

type recordingRenderer struct {
	names []string
}

func (r *recordingRenderer) Render(templatePath, outPath string, values map[string]string) error {
	r.names = append(r.names, filepath.Base(outPath))
	if strings.Contains(templatePath, "fail") {
		return errors.New("boom")
	}
	return nil
}
