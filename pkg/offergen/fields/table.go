// Package fields binds spreadsheet variable names to the form fields a
// letter is filled from.
package fields

import (
	"strings"

	"github.com/ukaji3/offergen-go/pkg/offergen/models"
	"golang.org/x/text/cases"
)

// Binding maps one field identifier to the name substrings it accepts, in priority order.
type Binding struct {
	Field string   `yaml:"field" json:"field" validate:"required"`
	Match []string `yaml:"match" json:"match" validate:"required,min=1,dive,required"`
}

// Table is an ordered list of bindings. Earlier bindings win.
type Table []Binding

// Default is the binding table for the offer-request templates.
// Identifiers contained in a longer identifier come after it.
var Default = Table{
	{Field: "prestazione_servizio_fornitura", Match: []string{"prestazione_servizio_fornitura"}},
	{Field: "oggetto_fornitura_servizio", Match: []string{"oggetto_fornitura_servizio", "oggetto_fornitura"}},
	{Field: "servizio_fornitura", Match: []string{"servizio_fornitura"}},
	{Field: "numero_CUP", Match: []string{"numero_cup", "_cup", "cup_"}},
	{Field: "nome_cognome", Match: []string{"nome_cognome"}},
	{Field: "mail_contatto", Match: []string{"mail_contatto", "email"}},
	{Field: "acronimo_progetto", Match: []string{"acronimo_progetto", "acronimo"}},
	{Field: "nome_ditta", Match: []string{"nome_ditta"}},
	{Field: "indirizzo_ditta", Match: []string{"indirizzo_ditta"}},
	{Field: "cap_ditta", Match: []string{"cap_ditta"}},
	{Field: "pec_ditta", Match: []string{"pec_ditta"}},
}

// Match returns the field a variable name binds to.
func (t Table) Match(name string) (string, bool) {
	folder := cases.Fold()
	name = folder.String(name)
	for _, b := range t {
		for _, m := range b.Match {
			if m != "" && strings.Contains(name, folder.String(m)) {
				return b.Field, true
			}
		}
	}
	return "", false
}

// Fill records one auto-filled field.
type Fill struct {
	Field    string
	Variable string
	Value    string
}

// AutoFill copies the value of every bound variable into its field when the
// field is still blank. Variables are visited in order, so the first variable
// bound to a field fills it.
func (t Table) AutoFill(vars []models.Variable, values map[string]string) []Fill {
	var fills []Fill
	for _, v := range vars {
		if !v.Scalar() {
			continue
		}
		field, ok := t.Match(v.Name)
		if !ok || strings.TrimSpace(values[field]) != "" {
			continue
		}
		value := models.Display(v.Value)
		values[field] = value
		fills = append(fills, Fill{Field: field, Variable: v.Name, Value: value})
	}
	return fills
}
