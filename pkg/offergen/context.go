package offergen

import (
	"time"

	"github.com/ukaji3/offergen-go/pkg/offergen/dates"
	"github.com/ukaji3/offergen-go/pkg/offergen/models"
)

// ContextBuilder merges the layers a document context is made of.
type ContextBuilder struct {
	// Dates formats date values; nil formats native dates only.
	Dates *dates.Normalizer
	// TodayField names the static field holding the current date.
	TodayField string
}

// StaticFields returns the fields that do not depend on any input.
func (b ContextBuilder) StaticFields(now time.Time) map[string]string {
	if b.TodayField == "" {
		return map[string]string{}
	}
	return map[string]string{b.TodayField: now.Format(dates.Layout)}
}

// Build layers static fields, user fields, key/value variables and the
// selected record, in that order; later layers overwrite earlier keys.
// record may be nil.
func (b ContextBuilder) Build(static, user map[string]string, kv []models.Variable, record map[string]any) models.Context {
	ctx := make(models.Context, len(static)+len(user)+len(kv)+len(record))
	for k, v := range static {
		ctx[k] = v
	}
	for k, v := range user {
		ctx[k] = v
	}
	for _, v := range kv {
		if !v.Scalar() {
			continue
		}
		ctx[v.Name] = b.Dates.Apply(v.Name, v.Value)
	}
	for k, v := range record {
		ctx[k] = b.Dates.Apply(k, v)
	}
	return ctx
}
