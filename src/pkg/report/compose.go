// Package report assembles the final pull-request comment body from filtered
// stage outputs, the resource-change summary, and per-stage outcomes.
package report

import (
	"strings"

	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/changes"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/filter"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/models"
)

// Input carries everything the assembler composes into one comment.
type Input struct {
	Marker      string
	Environment string

	// PlanSummary is the externally supplied header annotation. When empty
	// it is derived from the plan transcript.
	PlanSummary     string
	LockFileChanged bool
	ToolVersion     string
	LogsURL         string

	Outcomes models.StageOutcomes

	Format   models.BoundedText
	Init     models.BoundedText
	Validate models.BoundedText
	Plan     models.BoundedText
	Cost     models.BoundedText

	Changes models.ResourceChangeSet
}

// Section is one collapsible detail block of the rendered comment.
type Section struct {
	Title     string
	Body      string
	Open      bool
	truncated bool
}

// Stage is one cell of the status table.
type Stage struct {
	Name  string
	Glyph string
}

// Data is the template-facing view of an assembled report.
type Data struct {
	Marker           string
	Environment      string
	Header           string
	LockFileChanged  bool
	ResourceSummary  string
	Stages           []Stage
	Sections         []Section
	TruncationNotice bool
	LogsURL          string
	ToolVersion      string
}

// Compose applies the report shape rules: which detail sections are rendered
// for the given outcomes, whether they start open, and whether the
// truncation notice fires. Only sections actually rendered contribute to the
// notice; a truncated transcript whose section is skipped must not trigger
// it.
func Compose(in Input) Data {
	d := Data{
		Marker:          in.Marker,
		Environment:     in.Environment,
		Header:          headerAnnotation(in),
		LockFileChanged: in.LockFileChanged,
		ResourceSummary: changes.BuildSummary(in.Changes),
		LogsURL:         in.LogsURL,
		ToolVersion:     in.ToolVersion,
		Stages: []Stage{
			{"Fmt", in.Outcomes.Format.Glyph()},
			{"Init", in.Outcomes.Init.Glyph()},
			{"Validate", in.Outcomes.Validate.Glyph()},
			{"Plan", in.Outcomes.Plan.Glyph()},
		},
	}

	if in.Outcomes.Format == models.OutcomeFailure {
		d.Sections = append(d.Sections, Section{
			Title: "Format check output", Body: in.Format.Text,
			Open: true, truncated: in.Format.Truncated,
		})
	}

	if in.Outcomes.Init == models.OutcomeFailure {
		// Nothing downstream of a failed init is worth rendering.
		d.Sections = append(d.Sections, Section{
			Title: "Init output", Body: in.Init.Text,
			Open: true, truncated: in.Init.Truncated,
		})
		d.TruncationNotice = anyTruncated(d.Sections)
		return d
	}

	if in.Outcomes.Validate != models.OutcomeSkipped {
		d.Sections = append(d.Sections, Section{
			Title: "Validation output", Body: in.Validate.Text,
			Open:      in.Outcomes.Validate == models.OutcomeFailure,
			truncated: in.Validate.Truncated,
		})
	}

	if in.Outcomes.Plan != models.OutcomeSkipped && in.Outcomes.Validate != models.OutcomeFailure {
		d.Sections = append(d.Sections, Section{
			Title: "Plan output", Body: in.Plan.Text,
			Open:      in.Outcomes.Plan == models.OutcomeFailure || !in.Changes.IsEmpty(),
			truncated: in.Plan.Truncated,
		})
		if strings.TrimSpace(in.Cost.Text) != "" && in.Cost.Text != filter.NoOutputSentinel {
			d.Sections = append(d.Sections, Section{
				Title: "Cost estimate", Body: in.Cost.Text,
				truncated: in.Cost.Truncated,
			})
		}
	}

	d.TruncationNotice = anyTruncated(d.Sections)
	return d
}

func anyTruncated(sections []Section) bool {
	for _, s := range sections {
		if s.truncated {
			return true
		}
	}
	return false
}

// headerAnnotation picks the header suffix: the supplied plan summary wins,
// otherwise the plan transcript is scanned for its own summary line.
func headerAnnotation(in Input) string {
	if s := strings.TrimSpace(in.PlanSummary); s != "" {
		return s
	}
	return DerivePlanSummary(in.Plan.Text)
}

// DerivePlanSummary extracts the add/change/destroy summary from a plan
// transcript, or "No changes" when the plan reported none. Empty when
// neither is present.
func DerivePlanSummary(planText string) string {
	for _, line := range strings.Split(planText, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Plan:") {
			return trimmed
		}
		if strings.HasPrefix(trimmed, "No changes.") {
			return "No changes"
		}
	}
	return ""
}
