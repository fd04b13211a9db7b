package models

// BoundedText is the result of applying a size bound to a transcript or
// derived text. Text never exceeds the bound the producing filter was given;
// Truncated is true iff content was removed.
type BoundedText struct {
	Text      string
	Truncated bool
}

// ResourceChangeSet holds resource addresses parsed from a plan transcript,
// grouped by change kind. A resource address appears in at most one category;
// order within a category is first-seen order in the transcript.
type ResourceChangeSet struct {
	Created  []string
	Updated  []string
	Deleted  []string
	Replaced []string
}

// IsEmpty reports whether no resource changes were extracted.
func (c ResourceChangeSet) IsEmpty() bool {
	return len(c.Created) == 0 && len(c.Updated) == 0 && len(c.Deleted) == 0 && len(c.Replaced) == 0
}

// StageOutcome is the externally supplied result of one pipeline stage.
// The commenter only renders outcomes, it never computes them.
type StageOutcome string

const (
	OutcomeSuccess StageOutcome = "success"
	OutcomeFailure StageOutcome = "failure"
	OutcomeSkipped StageOutcome = "skipped"
)

// Glyph returns the status-table symbol for the outcome.
func (o StageOutcome) Glyph() string {
	switch o {
	case OutcomeSuccess:
		return "✅"
	case OutcomeFailure:
		return "❌"
	default:
		return "⏭️"
	}
}

// StageOutcomes groups the per-stage outcomes of one CI run.
type StageOutcomes struct {
	Format   StageOutcome
	Init     StageOutcome
	Validate StageOutcome
	Plan     StageOutcome
}
