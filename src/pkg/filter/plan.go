package filter

import (
	"strings"

	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/models"
)

// Indicator phrases that mark the start of the semantically relevant portion
// of a plan transcript. The first line containing any of them wins; the
// preamble before it (provider refresh chatter) is discarded.
var planIndicators = []string{
	"Note: Objects have changed outside of Terraform",
	"Terraform will perform the following actions",
	"No changes.",
	"Planning failed.",
	"Plan:",
	"Changes to Outputs:",
	"Error:",
}

// ExtractPlan locates the relevant section of a plan transcript and bounds it
// to limit lines. When no indicator is found there is no safe cut point, so
// the whole content is kept.
func ExtractPlan(content string, limit int) models.BoundedText {
	return extractPlan(content, func(s string) models.BoundedText {
		return TruncateLines(s, limit)
	})
}

// ExtractPlanChars is ExtractPlan with a character budget instead of a line
// budget, for long-form comments where the byte limit of the comment body is
// the binding constraint.
func ExtractPlanChars(content string, limit int) models.BoundedText {
	return extractPlan(content, func(s string) models.BoundedText {
		return TruncateChars(s, limit)
	})
}

func extractPlan(content string, bound func(string) models.BoundedText) models.BoundedText {
	if strings.TrimSpace(content) == "" || content == "null" {
		return models.BoundedText{Text: NoOutputSentinel}
	}

	lines := strings.Split(content, "\n")
	start := 0
	found := false
	for i, line := range lines {
		if containsAnyIndicator(line) {
			start = i
			found = true
			break
		}
	}
	if !found {
		return bound(content)
	}
	return bound(strings.Join(lines[start:], "\n"))
}

func containsAnyIndicator(line string) bool {
	for _, ind := range planIndicators {
		if strings.Contains(line, ind) {
			return true
		}
	}
	return false
}
