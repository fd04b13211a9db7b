package report

import (
	"testing"

	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/models"
)

func allSuccess() models.StageOutcomes {
	return models.StageOutcomes{
		Format:   models.OutcomeSuccess,
		Init:     models.OutcomeSuccess,
		Validate: models.OutcomeSuccess,
		Plan:     models.OutcomeSuccess,
	}
}

func sectionTitles(d Data) []string {
	var titles []string
	for _, s := range d.Sections {
		titles = append(titles, s.Title)
	}
	return titles
}

func hasSection(d Data, title string) bool {
	for _, s := range d.Sections {
		if s.Title == title {
			return true
		}
	}
	return false
}

// TestCompose_Shape tests which sections render for each outcome combination
func TestCompose_Shape(t *testing.T) {
	t.Run("green run renders validate and plan only", func(t *testing.T) {
		d := Compose(Input{Outcomes: allSuccess(), Plan: models.BoundedText{Text: "No changes."}})
		if hasSection(d, "Format check output") || hasSection(d, "Init output") {
			t.Errorf("unexpected sections: %v", sectionTitles(d))
		}
		if !hasSection(d, "Validation output") || !hasSection(d, "Plan output") {
			t.Errorf("missing sections: %v", sectionTitles(d))
		}
	})

	t.Run("init failure suppresses downstream sections", func(t *testing.T) {
		out := allSuccess()
		out.Init = models.OutcomeFailure
		out.Validate = models.OutcomeSkipped
		out.Plan = models.OutcomeSkipped
		d := Compose(Input{Outcomes: out, Init: models.BoundedText{Text: "Error: no provider"}})
		if got := sectionTitles(d); len(got) != 1 || got[0] != "Init output" {
			t.Errorf("sections = %v, want only init", got)
		}
		if !d.Sections[0].Open {
			t.Error("init section should be open on failure")
		}
	})

	t.Run("validate failure suppresses the plan section", func(t *testing.T) {
		out := allSuccess()
		out.Validate = models.OutcomeFailure
		out.Plan = models.OutcomeSkipped
		d := Compose(Input{Outcomes: out, Validate: models.BoundedText{Text: "Error: bad config"}})
		if hasSection(d, "Plan output") {
			t.Errorf("plan section rendered after validate failure: %v", sectionTitles(d))
		}
	})

	t.Run("format failure adds an open format section", func(t *testing.T) {
		out := allSuccess()
		out.Format = models.OutcomeFailure
		d := Compose(Input{Outcomes: out, Format: models.BoundedText{Text: "main.tf"}})
		if !hasSection(d, "Format check output") {
			t.Errorf("missing format section: %v", sectionTitles(d))
		}
		if !d.Sections[0].Open {
			t.Error("format section should be open on failure")
		}
	})

	t.Run("plan section opens when changes exist", func(t *testing.T) {
		d := Compose(Input{
			Outcomes: allSuccess(),
			Plan:     models.BoundedText{Text: "Plan: 1 to add, 0 to change, 0 to destroy."},
			Changes:  models.ResourceChangeSet{Created: []string{"aws_instance.web"}},
		})
		for _, s := range d.Sections {
			if s.Title == "Plan output" && !s.Open {
				t.Error("plan section should be open when the change set is non-empty")
			}
		}
	})

	t.Run("cost section renders only with content", func(t *testing.T) {
		d := Compose(Input{Outcomes: allSuccess(), Cost: models.BoundedText{Text: "Monthly cost: $42"}})
		if !hasSection(d, "Cost estimate") {
			t.Errorf("missing cost section: %v", sectionTitles(d))
		}
		d = Compose(Input{Outcomes: allSuccess()})
		if hasSection(d, "Cost estimate") {
			t.Errorf("cost section rendered without content: %v", sectionTitles(d))
		}
	})
}

// TestCompose_TruncationNotice verifies only rendered sections trigger the
// notice.
func TestCompose_TruncationNotice(t *testing.T) {
	t.Run("truncated rendered section fires the notice", func(t *testing.T) {
		d := Compose(Input{
			Outcomes: allSuccess(),
			Plan:     models.BoundedText{Text: "Plan: ...", Truncated: true},
		})
		if !d.TruncationNotice {
			t.Error("expected truncation notice")
		}
	})

	t.Run("truncated skipped section does not fire the notice", func(t *testing.T) {
		out := allSuccess()
		out.Init = models.OutcomeFailure
		d := Compose(Input{
			Outcomes: out,
			Init:     models.BoundedText{Text: "Error: x"},
			Plan:     models.BoundedText{Text: "huge plan", Truncated: true},
			Validate: models.BoundedText{Text: "noise", Truncated: true},
		})
		if d.TruncationNotice {
			t.Error("notice fired for sections that are not rendered")
		}
	})
}

// TestCompose_Header tests the header annotation
func TestCompose_Header(t *testing.T) {
	t.Run("supplied summary wins", func(t *testing.T) {
		d := Compose(Input{Outcomes: allSuccess(), PlanSummary: "Plan: 9 to add"})
		if d.Header != "Plan: 9 to add" {
			t.Errorf("Header = %q", d.Header)
		}
	})

	t.Run("summary derived from the plan line", func(t *testing.T) {
		d := Compose(Input{
			Outcomes: allSuccess(),
			Plan:     models.BoundedText{Text: "stuff\nPlan: 2 to add, 1 to change, 0 to destroy.\nmore"},
		})
		if d.Header != "Plan: 2 to add, 1 to change, 0 to destroy." {
			t.Errorf("Header = %q", d.Header)
		}
	})

	t.Run("no changes message maps to a short header", func(t *testing.T) {
		d := Compose(Input{
			Outcomes: allSuccess(),
			Plan:     models.BoundedText{Text: "No changes. Your infrastructure matches the configuration."},
		})
		if d.Header != "No changes" {
			t.Errorf("Header = %q", d.Header)
		}
	})
}

// TestDerivePlanSummary covers the standalone derivation helper.
func TestDerivePlanSummary(t *testing.T) {
	if got := DerivePlanSummary("nothing relevant"); got != "" {
		t.Errorf("DerivePlanSummary() = %q, want empty", got)
	}
	if got := DerivePlanSummary("  Plan: 1 to add, 0 to change, 2 to destroy.  "); got != "Plan: 1 to add, 0 to change, 2 to destroy." {
		t.Errorf("DerivePlanSummary() = %q", got)
	}
}
