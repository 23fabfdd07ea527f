package stats

import "time"

// Rule decides which side of a threshold gets flagged
type Rule int

const (
	// RuleCeiling flags values above the threshold (total, overlap)
	RuleCeiling Rule = iota
	// RuleFloor flags values below the threshold (gap, shortfall)
	RuleFloor
)

// String returns the comparison the rule applies
func (r Rule) String() string {
	if r == RuleFloor {
		return "<"
	}
	return ">"
}

// Flag is the display classification of one metric
type Flag struct {
	Value     time.Duration
	Threshold time.Duration
	Rule      Rule
	Flagged   bool
}

// Classify compares value against threshold using rule
func Classify(value, threshold time.Duration, rule Rule) Flag {
	f := Flag{Value: value, Threshold: threshold, Rule: rule}
	switch rule {
	case RuleFloor:
		f.Flagged = value < threshold
	default:
		f.Flagged = value > threshold
	}
	return f
}

// Thresholds holds the caller-supplied limits used to label results.
// They never change how metrics are computed.
type Thresholds struct {
	Workday time.Duration
	Gap     time.Duration
	Overlap time.Duration
}

// Evaluation is the classification of one group's metrics
type Evaluation struct {
	Total   Flag
	Gap     Flag
	Overlap Flag
}

// Any reports whether at least one metric is flagged
func (e Evaluation) Any() bool {
	return e.Total.Flagged || e.Gap.Flagged || e.Overlap.Flagged
}

// Evaluate classifies m: total and overlap against ceilings, gap against a floor
func (t Thresholds) Evaluate(m Metrics) Evaluation {
	return Evaluation{
		Total:   Classify(m.Total, t.Workday, RuleCeiling),
		Gap:     Classify(m.Gap, t.Gap, RuleFloor),
		Overlap: Classify(m.Overlap, t.Overlap, RuleCeiling),
	}
}
