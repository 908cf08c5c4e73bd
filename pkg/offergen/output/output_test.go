package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/offergen-go/pkg/offergen/models"
)

func TestToJSON(t *testing.T) {
	wb := &models.WorkbookData{
		BookName: "procedura.xlsx",
		Sheets: map[string]models.SheetData{
			"dati_generali_procedura": {
				Name:  "dati_generali_procedura",
				Shape: models.ShapeKeyValue,
				Variables: []models.Variable{
					models.NewValue("nome_cognome", "C2", 2, "Mario Rossi"),
				},
			},
		},
		Missing: []string{"generazioni_offerte"},
	}

	compact, err := ToJSON(wb, false)
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n")

	pretty, err := ToJSON(wb, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  ")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(pretty, &decoded))
	assert.Equal(t, "procedura.xlsx", decoded["book_name"])
}

func TestReportToJSONOmitsErrorValue(t *testing.T) {
	report := &models.Report{Outcomes: []models.Outcome{
		{Template: "a.docx", Err: errors.New("boom"), Error: "boom"},
	}}

	data, err := ReportToJSON(report, false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"boom"`)
	assert.Equal(t, 1, strings.Count(string(data), "boom"))
}

func TestRenderReport(t *testing.T) {
	report := &models.Report{
		RunID:     "run-1",
		OutputDir: "A_preventivo",
		Outcomes: []models.Outcome{
			{Template: "/t/Lettera.docx", Path: "A_preventivo/Lettera_Rossi_20261019.docx"},
			{Template: "/t/Rotto.docx", Record: 3, Err: errors.New("zip: not a valid zip file"), Error: "zip: not a valid zip file"},
		},
		Warnings: []string{`sheet "generazioni_offerte" not found`},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, report))
	out := buf.String()

	assert.Contains(t, out, "A_preventivo")
	assert.Contains(t, out, "Lettera_Rossi_20261019.docx")
	assert.Contains(t, out, "Rotto.docx (riga 3)")
	assert.Contains(t, out, "zip: not a valid zip file")
	assert.Contains(t, out, "generazioni_offerte")
	assert.Contains(t, out, "1 generati, 1 falliti")
}

func TestRenderVariables(t *testing.T) {
	sheet := &models.SheetData{
		Name:    "generazioni_offerte",
		Range:   "A1:B2",
		Headers: []string{"nome_ditta", "pec_ditta"},
		Variables: []models.Variable{
			models.NewRow(2, map[string]any{"nome_ditta": "BASSO SRL", "pec_ditta": nil}),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderVariables(&buf, sheet))
	assert.Contains(t, buf.String(), "nome_ditta=BASSO SRL, pec_ditta=")
	assert.Contains(t, buf.String(), "riga 2")
}

func TestRenderVariablesScan(t *testing.T) {
	sheet := &models.SheetData{
		Name:      "Sheet1",
		Variables: []models.Variable{models.NewValue("B2", "B2", 2, "ciao")},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderVariables(&buf, sheet))
	assert.Contains(t, buf.String(), "  B2: ciao\n")
}
