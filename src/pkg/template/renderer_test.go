package template

import (
	"strings"
	"testing"

	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/models"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/report"
)

// TestRenderDefaultTemplate renders a composed report through the default
// comment template.
func TestRenderDefaultTemplate(t *testing.T) {
	data := report.Compose(report.Input{
		Marker:      "<!-- tf-pr-commenter: workflow=\"wf.yml\" env=\"prod\" dir=\".\" -->",
		Environment: "prod",
		ToolVersion: "v1.7.5",
		LogsURL:     "https://github.com/acme/infra/actions/runs/42",
		Outcomes: models.StageOutcomes{
			Format:   models.OutcomeSuccess,
			Init:     models.OutcomeSuccess,
			Validate: models.OutcomeSuccess,
			Plan:     models.OutcomeSuccess,
		},
		Validate: models.BoundedText{Text: "Success! The configuration is valid."},
		Plan:     models.BoundedText{Text: "Plan: 1 to add, 0 to change, 0 to destroy.", Truncated: true},
		Changes:  models.ResourceChangeSet{Created: []string{"aws_instance.web"}},
	})

	r := NewRenderer()
	body, err := r.RenderString(r.GetDefaultCommentTemplate(), data)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(body, data.Marker) {
		t.Errorf("body does not start with the marker:\n%s", body)
	}
	for _, want := range []string{
		"## Terraform plan for `prod` — Plan: 1 to add, 0 to change, 0 to destroy.",
		"| Fmt | Init | Validate | Plan |",
		"| ✅ | ✅ | ✅ | ✅ |",
		"<summary>Plan output</summary>",
		"To create (1)",
		"full logs](https://github.com/acme/infra/actions/runs/42)",
		"_Terraform v1.7.5",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

// TestRenderString_ParseError verifies malformed templates surface errors.
func TestRenderString_ParseError(t *testing.T) {
	r := NewRenderer()
	if _, err := r.RenderString("{{.Broken", nil); err == nil {
		t.Error("expected parse error")
	}
}
