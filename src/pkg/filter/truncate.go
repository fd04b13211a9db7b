package filter

import (
	"fmt"
	"strings"

	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/models"
)

// NoOutputSentinel replaces empty or missing transcript content so the report
// never renders an empty code block.
const NoOutputSentinel = "No output available"

// TruncateLines bounds content to at most limit lines, keeping the tail.
// The most recent output is the most relevant for CI failures, so content is
// dropped from the front and a banner line states how much was removed.
func TruncateLines(content string, limit int) models.BoundedText {
	if strings.TrimSpace(content) == "" {
		return models.BoundedText{Text: NoOutputSentinel}
	}

	lines := strings.Split(content, "\n")
	if len(lines) <= limit {
		return models.BoundedText{Text: content}
	}

	dropped := len(lines) - limit
	kept := lines[dropped:]
	banner := fmt.Sprintf("... (%d lines truncated) ...", dropped)
	return models.BoundedText{
		Text:      banner + "\n" + strings.Join(kept, "\n"),
		Truncated: true,
	}
}

// TruncateChars bounds content to at most limit characters, keeping the tail.
// The cut always lands on a line boundary: walk back limit characters from
// the end, then advance to the next newline so the kept portion starts at a
// full line.
func TruncateChars(content string, limit int) models.BoundedText {
	if strings.TrimSpace(content) == "" {
		return models.BoundedText{Text: NoOutputSentinel}
	}

	if len(content) <= limit {
		return models.BoundedText{Text: content}
	}

	cut := len(content) - limit
	kept := content[cut:]
	if nl := strings.IndexByte(kept, '\n'); nl >= 0 {
		kept = kept[nl+1:]
	}
	dropped := len(content) - len(kept)
	banner := fmt.Sprintf("... (%d characters truncated) ...", dropped)
	return models.BoundedText{
		Text:      banner + "\n" + kept,
		Truncated: true,
	}
}
