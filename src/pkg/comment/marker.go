// Package comment derives the hidden identity marker embedded in published
// report comments and matches it against existing thread comments, deciding
// update-vs-create.
package comment

import (
	"fmt"
	"strings"

	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/models"
)

// MarkerPrefix opens every identity marker. A comment containing any token
// with this prefix was produced by this tool, for some (workflow, env, dir)
// triple.
const MarkerPrefix = "<!-- tf-pr-commenter:"

// BuildMarker derives the hidden marker for a (environment, workingDir,
// workflowRef) triple. The same triple always yields the same marker, and two
// distinct triples never yield markers where one is a substring of the other:
// every field is quoted and the token is terminated, so adjacent prefixes
// like "prod"/"prod-eu" or "./infra/a"/"./infra/ab" cannot collide.
//
// workflowRef has the form "owner/repo/path/to/workflow.yml@ref"; a missing
// or malformed ref degrades to an empty workflow-path component.
func BuildMarker(environment, workingDir, workflowRef string) string {
	return fmt.Sprintf("%s workflow=%q env=%q dir=%q -->",
		MarkerPrefix, workflowPath(workflowRef), environment, workingDir)
}

// workflowPath reduces a workflow ref to its repo-relative workflow file
// path: strip the git ref after "@", then the leading owner and repo
// segments.
func workflowPath(workflowRef string) string {
	ref := workflowRef
	if at := strings.Index(ref, "@"); at >= 0 {
		ref = ref[:at]
	}
	parts := strings.Split(ref, "/")
	if len(parts) > 2 {
		parts = parts[2:]
	}
	return strings.Join(parts, "/")
}

// legacyHeading is the report heading older releases used as the only
// comment-matching key. Kept solely as a one-way upgrade path.
func legacyHeading(environment string) string {
	return fmt.Sprintf("## Terraform plan for `%s`", environment)
}

// FindExisting locates the previously published report comment. The exact
// marker substring is the authoritative match. When no comment carries the
// marker, a comment containing the legacy environment heading and no marker
// token at all may be claimed and upgraded; a comment with a different
// marker is never re-matched even if its heading names the same environment.
// Returns nil when neither pass matches.
func FindExisting(comments []*models.Comment, marker, environment string) *models.Comment {
	for _, c := range comments {
		if strings.Contains(c.Body, marker) {
			return c
		}
	}

	heading := legacyHeading(environment)
	for _, c := range comments {
		if strings.Contains(c.Body, heading) && !strings.Contains(c.Body, MarkerPrefix) {
			return c
		}
	}

	return nil
}
