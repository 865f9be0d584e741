package domain

// Budget is the per-trip cost breakdown. Activities is derived from the
// stop list (see ActivitiesTotal); Total equals the sum of the four
// category fields whenever the stop-replace operation recomputes it.
// A manual budget edit merges fields without touching Total, so Total can
// drift from the category sum until the next recompute — that asymmetry
// is intentional and documented on BudgetPatch.
type Budget struct {
	Total         float64 `json:"total"`
	Transport     float64 `json:"transport"`
	Accommodation float64 `json:"accommodation"`
	Activities    float64 `json:"activities"`
	Meals         float64 `json:"meals"`
}

// BudgetPatch carries an explicit subset of budget fields for a manual
// edit. Nil fields are left untouched by Merge. Total is only ever
// resynced with the categories by a stop replacement or by supplying an
// explicit Total here — Merge never recomputes it.
type BudgetPatch struct {
	Total         *float64
	Transport     *float64
	Accommodation *float64
	Activities    *float64
	Meals         *float64
}

// IsEmpty reports whether the patch supplies no fields at all.
func (p BudgetPatch) IsEmpty() bool {
	return p.Total == nil && p.Transport == nil && p.Accommodation == nil &&
		p.Activities == nil && p.Meals == nil
}

// ActivitiesTotal sums cost overrides across every activity reference in
// every stop. References without an override contribute zero.
func ActivitiesTotal(stops []Stop) float64 {
	var total float64
	for _, s := range stops {
		for _, a := range s.Activities {
			if a.CostOverride != nil {
				total += *a.CostOverride
			}
		}
	}
	return total
}

// Recompute returns b with Activities set to activitiesTotal and Total
// rederived as the sum of all four categories, overwriting whatever Total
// held before.
func (b Budget) Recompute(activitiesTotal float64) Budget {
	b.Activities = activitiesTotal
	b.Total = b.Transport + b.Accommodation + b.Activities + b.Meals
	return b
}

// Merge overlays the supplied patch fields onto b. Fields absent from the
// patch keep their current values, including Total.
func (b Budget) Merge(p BudgetPatch) Budget {
	if p.Total != nil {
		b.Total = *p.Total
	}
	if p.Transport != nil {
		b.Transport = *p.Transport
	}
	if p.Accommodation != nil {
		b.Accommodation = *p.Accommodation
	}
	if p.Activities != nil {
		b.Activities = *p.Activities
	}
	if p.Meals != nil {
		b.Meals = *p.Meals
	}
	return b
}
