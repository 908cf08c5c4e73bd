package offergen

import (
	"path/filepath"
	"strings"

	"github.com/ukaji3/offergen-go/pkg/offergen/fields"
	"github.com/ukaji3/offergen-go/pkg/offergen/models"
)

// Session holds what the user has entered in one sitting: the free-text
// field values and the directories last used for workbooks and templates.
// Nothing in a Session is persisted.
type Session struct {
	// Fields are the values typed by the user.
	Fields map[string]string
	// Filled are the fields completed from the last workbook read.
	// They are replaced on every Fill and never shadow a typed value.
	Filled      map[string]string
	SourceDir   string
	TemplateDir string
}

// NewSession returns a session seeded with preset field values.
func NewSession(preset map[string]string) *Session {
	s := &Session{Fields: make(map[string]string, len(preset))}
	for k, v := range preset {
		s.Fields[k] = v
	}
	return s
}

// Set stores a typed field value.
func (s *Session) Set(field, value string) {
	if s.Fields == nil {
		s.Fields = make(map[string]string)
	}
	s.Fields[field] = value
}

// Get returns a field value trimmed of surrounding whitespace: the typed
// value when there is one, the auto-filled one otherwise.
func (s *Session) Get(field string) string {
	if v := strings.TrimSpace(s.Fields[field]); v != "" {
		return v
	}
	return strings.TrimSpace(s.Filled[field])
}

// Fill completes the blank fields from workbook variables, dropping
// whatever an earlier workbook filled in.
func (s *Session) Fill(t fields.Table, vars []models.Variable) []fields.Fill {
	typed := make(map[string]string, len(s.Fields))
	for k, v := range s.Fields {
		typed[k] = v
	}
	fills := t.AutoFill(vars, typed)

	s.Filled = make(map[string]string, len(fills))
	for _, f := range fills {
		s.Filled[f.Field] = f.Value
	}
	return fills
}

// Values returns the user layer of a document context: typed fields
// completed with the auto-filled ones.
func (s *Session) Values() map[string]string {
	out := make(map[string]string, len(s.Fields)+len(s.Filled))
	for k, v := range s.Fields {
		out[k] = v
	}
	for k := range s.Filled {
		out[k] = s.Get(k)
	}
	return out
}

// RememberSource records the directory of the last opened workbook.
func (s *Session) RememberSource(path string) {
	s.SourceDir = filepath.Dir(path)
}

// RememberTemplates records the directory of the last selected templates.
func (s *Session) RememberTemplates(paths []string) {
	if len(paths) > 0 {
		s.TemplateDir = filepath.Dir(paths[len(paths)-1])
	}
}
