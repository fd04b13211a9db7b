package filter

import (
	"strings"
	"testing"
)

// TestExtractPlan tests the plan transcript extraction
func TestExtractPlan(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		limit    int
		wantText string
	}{
		{
			name:     "empty input",
			content:  "",
			limit:    100,
			wantText: NoOutputSentinel,
		},
		{
			name:     "literal null string",
			content:  "null",
			limit:    100,
			wantText: NoOutputSentinel,
		},
		{
			name:     "preamble before the actions header is dropped",
			content:  "Refreshing state...\naws_instance.web: Refreshing...\n\nTerraform will perform the following actions:\n\n  # aws_instance.web will be created",
			limit:    100,
			wantText: "Terraform will perform the following actions:\n\n  # aws_instance.web will be created",
		},
		{
			name:     "no changes message is an indicator",
			content:  "Refreshing state...\n\nNo changes. Your infrastructure matches the configuration.",
			limit:    100,
			wantText: "No changes. Your infrastructure matches the configuration.",
		},
		{
			name:     "error line is an indicator",
			content:  "Refreshing state...\nError: Invalid provider configuration\ndetail",
			limit:    100,
			wantText: "Error: Invalid provider configuration\ndetail",
		},
		{
			name:     "outside changes note wins when it comes first",
			content:  "preamble\nNote: Objects have changed outside of Terraform\n\nTerraform will perform the following actions:",
			limit:    100,
			wantText: "Note: Objects have changed outside of Terraform\n\nTerraform will perform the following actions:",
		},
		{
			name:     "no indicator keeps everything",
			content:  "line one\nline two\nline three",
			limit:    100,
			wantText: "line one\nline two\nline three",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPlan(tt.content, tt.limit)
			if got.Text != tt.wantText {
				t.Errorf("ExtractPlan() = %q, want %q", got.Text, tt.wantText)
			}
		})
	}
}

// TestExtractPlan_Bounded verifies the extracted slice still goes through the
// truncator.
func TestExtractPlan_Bounded(t *testing.T) {
	var b strings.Builder
	b.WriteString("Terraform will perform the following actions:\n")
	for i := 0; i < 50; i++ {
		b.WriteString("  # resource line\n")
	}

	got := ExtractPlan(b.String(), 10)
	if !got.Truncated {
		t.Fatal("expected truncation")
	}
	if n := len(strings.Split(got.Text, "\n")); n > 11 {
		t.Errorf("got %d lines, want at most limit plus banner", n)
	}
}

// TestExtractPlanChars verifies the character-budget variant.
func TestExtractPlanChars(t *testing.T) {
	content := "Terraform will perform the following actions:\n" + strings.Repeat("  # some resource change line\n", 100)
	got := ExtractPlanChars(content, 300)
	if !got.Truncated {
		t.Fatal("expected truncation")
	}
	parts := strings.SplitN(got.Text, "\n", 2)
	if len(parts) == 2 && len(parts[1]) > 300 {
		t.Errorf("kept %d chars, want at most 300", len(parts[1]))
	}
}
