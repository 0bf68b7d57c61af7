package appraisal

// Criterion describes one rating dimension for display. Weights are equal and
// documentation-only; the averaging formula is an unweighted mean.
type Criterion struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Weight int    `json:"weight"`
}

var CriteriaSchema = []Criterion{
	{Key: "skills", Label: "Technical Proficiency", Weight: 20},
	{Key: "personality", Label: "Interpersonal Dynamics", Weight: 20},
	{Key: "communication", Label: "Communication Flow", Weight: 20},
	{Key: "teamwork", Label: "Collaborative Impact", Weight: 20},
	{Key: "performance", Label: "KPI Fulfillment", Weight: 20},
}
