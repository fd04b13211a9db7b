package runner

import (
	"context"
	"fmt"

	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/comment"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/config"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/github"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/models"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/template"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/transcript"
)

type RunnerGitHub struct {
	RunnerBase

	ghclient github.GitHubClient
	comments []*models.Comment
}

// make RunnerGitHub implement RunnerInterface
var _ RunnerInterface = (*RunnerGitHub)(nil)

func NewRunnerGitHub(
	ctx context.Context,
	options *Options,
	cfg *config.Config,
	store *transcript.Store,
	renderer *template.Renderer,
	ghclient github.GitHubClient,
) (*RunnerGitHub, error) {
	if ghclient == nil {
		return nil, fmt.Errorf("GitHub client is not initialized")
	}
	base, err := NewRunnerBase(ctx, options, cfg, store, renderer)
	if err != nil {
		return nil, err
	}
	r := &RunnerGitHub{
		RunnerBase: *base,
		ghclient:   ghclient,
	}
	r.Instance = r
	return r, nil
}

// Initialize drains the PR comment thread so the publish step can match the
// existing report comment without a second listing call.
func (r *RunnerGitHub) Initialize() error {
	comments, err := r.ghclient.GetComments(r.Context, r.Options.GhRepo, r.Options.GhPrNumber)
	if err != nil {
		return fmt.Errorf("failed to get PR comments: %w", err)
	}
	r.comments = comments
	logger.WithField("count", len(comments)).Info("Fetched PR comments")
	return nil
}

// Publish updates the previously published report comment when one matches
// the marker (or the legacy heading), otherwise creates a new one. Exactly
// one create-or-update call is made per run.
func (r *RunnerGitHub) Publish(body string) error {
	marker := comment.BuildMarker(r.Options.Environment, r.Options.WorkingDir, r.Options.WorkflowRef)

	existing := comment.FindExisting(r.comments, marker, r.Options.Environment)
	if existing != nil {
		logger.WithField("commentID", existing.ID).Info("Updating existing report comment")
		if err := r.ghclient.UpdateComment(r.Context, r.Options.GhRepo, existing.ID, body); err != nil {
			return fmt.Errorf("failed to update comment: %w", err)
		}
		return nil
	}

	logger.Info("No existing report comment found, creating a new one")
	created, err := r.ghclient.CreateComment(r.Context, r.Options.GhRepo, r.Options.GhPrNumber, body)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	logger.WithField("commentID", created.ID).Info("Created report comment")
	return nil
}

func (r *RunnerGitHub) Process() error {
	return r.RunnerBase.Process()
}
