package filter

import (
	"regexp"
	"strings"
)

// Structured log line: timestamp followed by a bracketed severity tag, as
// produced by TF_LOG output at line start.
var structuredLogRe = regexp.MustCompile(`^\s*\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:?\d{2})?\s+\[(?:TRACE|DEBUG|INFO|WARN|ERROR)\]`)

// Diagnostic key=value metadata emitted by the provider SDK. Lines carrying
// any of these are low-level telemetry, not user-facing messages.
var diagnosticFields = []string{
	"diagnostic_severity=",
	"diagnostic_summary=",
	"diagnostic_detail=",
	"diagnostic_attribute=",
	"tf_provider_addr=",
	"tf_resource_type=",
	"tf_rpc=",
	"tf_req_id=",
	"tf_proto_version=",
	"@caller=",
	"@module=",
}

// Lines the filter must never drop: these are the human-actionable payload.
var keepPrefixes = []string{
	"Warning:",
	"Error:",
	"Success!",
}

var contextLineRe = regexp.MustCompile(`^\s+(?:on .+ line \d+|with .+)`)

// FilterValidate strips structured diagnostic noise from a validate
// transcript, keeping human-readable warnings and errors. Blank-line runs
// left behind by removed blocks collapse to a single blank line. The filter
// is idempotent: a second pass finds nothing more to remove.
func FilterValidate(content string) string {
	if content == "" {
		return content
	}

	var out []string
	prevDropped := false
	for _, line := range strings.Split(content, "\n") {
		switch {
		case mustKeepLine(line):
			out = append(out, line)
			prevDropped = false
		case structuredLogRe.MatchString(line), hasDiagnosticField(line):
			prevDropped = true
		case prevDropped && strings.HasPrefix(strings.TrimLeft(line, " \t"), "| "):
			// continuation of a dropped diagnostic block
		default:
			out = append(out, line)
			prevDropped = false
		}
	}

	return strings.TrimSpace(collapseBlankRuns(out))
}

func mustKeepLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, p := range keepPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return contextLineRe.MatchString(line)
}

func hasDiagnosticField(line string) bool {
	for _, f := range diagnosticFields {
		if strings.Contains(line, f) {
			return true
		}
	}
	return false
}

func collapseBlankRuns(lines []string) string {
	var out []string
	blank := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if blank {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
