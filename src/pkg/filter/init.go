package filter

import "strings"

// InitRetrySeparator is emitted by the pipeline between a failed first init
// attempt and the retry with -upgrade. Only output after the separator is
// current; everything before it belongs to the discarded attempt.
const InitRetrySeparator = "--- First attempt failed, trying with -upgrade ---"

// FilterInit reduces an init transcript to its actionable error segment.
// When the transcript contains the retry separator, only the last retry's
// output is considered. Within that segment the first line containing
// "Error:" starts the returned text. When no error line exists at all, the
// untouched original input is returned so nothing is hidden.
func FilterInit(content string) string {
	if content == "" {
		return content
	}

	segment := content
	if idx := strings.LastIndex(segment, InitRetrySeparator); idx >= 0 {
		segment = segment[idx+len(InitRetrySeparator):]
	}

	lines := strings.Split(segment, "\n")
	for i, line := range lines {
		if strings.Contains(line, "Error:") {
			return strings.TrimSpace(strings.Join(lines[i:], "\n"))
		}
	}

	return content
}
