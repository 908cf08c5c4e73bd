package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/offergen-go/pkg/offergen/models"
)

func TestTableMatch(t *testing.T) {
	tests := []struct {
		name  string
		field string
		ok    bool
	}{
		{"nome_cognome_richiedente", "nome_cognome", true},
		{"NOME_COGNOME", "nome_cognome", true},
		{"prestazione_servizio_fornitura", "prestazione_servizio_fornitura", true},
		{"tipo_servizio_fornitura", "servizio_fornitura", true},
		{"codice_CUP_progetto", "numero_CUP", true},
		{"Email del RUP", "mail_contatto", true},
		{"importo_stimato", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, ok := Default.Match(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.field, field)
		})
	}
}

func TestTableMatchDeclarationOrderWins(t *testing.T) {
	table := Table{
		{Field: "first", Match: []string{"zzz", "ditta"}},
		{Field: "second", Match: []string{"nome_ditta"}},
	}

	field, ok := table.Match("nome_ditta")
	require.True(t, ok)
	assert.Equal(t, "first", field)
}

func TestAutoFill(t *testing.T) {
	vars := []models.Variable{
		models.NewValue("nome_cognome_richiedente", "C2", 2, "Mario Rossi"),
		models.NewValue("nome_cognome_rup", "C3", 3, "Anna Bianchi"),
		models.NewValue("acronimo_progetto", "C4", 4, "CLIMANIMAL"),
		models.NewValue("numero_CUP", "C5", 5, int64(38900)),
		models.NewRow(6, map[string]any{"nome_ditta": "BASSO SRL"}),
	}
	values := map[string]string{"acronimo_progetto": "MANUALE"}

	fills := Default.AutoFill(vars, values)

	assert.Equal(t, "Mario Rossi", values["nome_cognome"], "first bound variable wins")
	assert.Equal(t, "MANUALE", values["acronimo_progetto"], "user value is kept")
	assert.Equal(t, "38900", values["numero_CUP"])
	assert.NotContains(t, values, "nome_ditta", "row variables are not auto-filled")
	assert.Len(t, fills, 2)
}
