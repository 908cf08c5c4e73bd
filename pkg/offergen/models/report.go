package models

// Outcome is the result of rendering one template for one context.
type Outcome struct {
	// Template is the template path.
	Template string `json:"template"`
	// Record is the 1-based tabular row the context came from (0 for key/value generation).
	Record int `json:"record,omitempty"`
	// Path is the written output file on success.
	Path string `json:"path,omitempty"`
	// Err is the failure cause; nil on success.
	Err error `json:"-"`
	// Error mirrors Err for serialization.
	Error string `json:"error,omitempty"`
}

// OK reports whether the pair rendered successfully.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Report aggregates the outcomes of one generation request.
type Report struct {
	// RunID identifies the generation request in logs.
	RunID string `json:"run_id"`
	// OutputDir is the directory outputs were written to.
	OutputDir string `json:"output_dir"`
	// Outcomes lists every template/record pair in generation order.
	Outcomes []Outcome `json:"outcomes"`
	// Warnings lists non-fatal problems such as missing sheets.
	Warnings []string `json:"warnings,omitempty"`
}

// Succeeded returns the number of pairs written successfully.
func (r *Report) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.OK() {
			n++
		}
	}
	return n
}

// Failures returns the failed outcomes.
func (r *Report) Failures() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.OK() {
			out = append(out, o)
		}
	}
	return out
}

// Files returns the paths written successfully.
func (r *Report) Files() []string {
	var out []string
	for _, o := range r.Outcomes {
		if o.OK() {
			out = append(out, o.Path)
		}
	}
	return out
}
