package changes

import (
	"regexp"
	"strings"

	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/models"
)

// Matches the per-resource announcement lines of a plan transcript:
//
//	# aws_instance.web will be created
//	# aws_instance.old must be replaced
//
// Group 1 is the resource address, group 2 the action phrase.
var resourceLineRe = regexp.MustCompile(`^\s*#\s+(\S+(?:\s\S+)*?)\s+(?:will|must) be\s+(.+?)\s*$`)

// Extract parses a plan transcript into categorized resource addresses.
// Lines not matching the announcement pattern (summary lines, attribute
// diffs, headers) are ignored. Categorization is mutually exclusive by
// construction and order within a category is first-seen order.
func Extract(content string) models.ResourceChangeSet {
	var set models.ResourceChangeSet
	if content == "" {
		return set
	}

	for _, line := range strings.Split(content, "\n") {
		m := resourceLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		address, action := m[1], m[2]
		switch {
		case strings.Contains(action, "replaced"):
			set.Replaced = append(set.Replaced, address)
		case strings.HasPrefix(action, "created"):
			set.Created = append(set.Created, address)
		case strings.HasPrefix(action, "updated in-place"):
			set.Updated = append(set.Updated, address)
		case strings.HasPrefix(action, "destroyed"):
			set.Deleted = append(set.Deleted, address)
		}
	}

	return set
}
