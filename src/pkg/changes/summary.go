package changes

import (
	"fmt"
	"strings"

	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/models"
)

// MaxResourcesPerSection caps how many resource addresses a summary section
// lists before collapsing the remainder into a single overflow bullet.
const MaxResourcesPerSection = 20

type section struct {
	icon  string
	label string
	items func(models.ResourceChangeSet) []string
}

// Section order is fixed: created, updated, deleted, replaced.
var sections = []section{
	{"🟢", "To create", func(c models.ResourceChangeSet) []string { return c.Created }},
	{"🟡", "To update", func(c models.ResourceChangeSet) []string { return c.Updated }},
	{"🔴", "To destroy", func(c models.ResourceChangeSet) []string { return c.Deleted }},
	{"♻️", "To replace", func(c models.ResourceChangeSet) []string { return c.Replaced }},
}

// BuildSummary renders the categorized change set as a bounded markdown
// summary. An all-empty set yields an empty string so the caller can omit the
// section entirely.
func BuildSummary(set models.ResourceChangeSet) string {
	if set.IsEmpty() {
		return ""
	}

	var b strings.Builder
	for _, s := range sections {
		items := s.items(set)
		if len(items) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "**%s %s (%d):**\n", s.icon, s.label, len(items))
		shown := items
		if len(shown) > MaxResourcesPerSection {
			shown = shown[:MaxResourcesPerSection]
		}
		for _, addr := range shown {
			fmt.Fprintf(&b, "- `%s`\n", addr)
		}
		if overflow := len(items) - len(shown); overflow > 0 {
			fmt.Fprintf(&b, "- ...and %d more\n", overflow)
		}
	}

	return b.String()
}
