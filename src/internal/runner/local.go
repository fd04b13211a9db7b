package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/config"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/template"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/transcript"
)

type RunnerLocal struct {
	RunnerBase
}

// make RunnerLocal implement RunnerInterface
var _ RunnerInterface = (*RunnerLocal)(nil)

func NewRunnerLocal(
	ctx context.Context,
	options *Options,
	cfg *config.Config,
	store *transcript.Store,
	renderer *template.Renderer,
) (*RunnerLocal, error) {
	base, err := NewRunnerBase(ctx, options, cfg, store, renderer)
	if err != nil {
		return nil, err
	}
	r := &RunnerLocal{RunnerBase: *base}
	r.Instance = r
	return r, nil
}

// Publish writes the report to the local output directory instead of a PR.
func (r *RunnerLocal) Publish(body string) error {
	if err := os.MkdirAll(r.Options.LcOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outputFile := filepath.Join(r.Options.LcOutputDir, fmt.Sprintf("%s-report.md", r.Options.Environment))
	if err := os.WriteFile(outputFile, []byte(body), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.WithField("path", outputFile).Info("Report written")
	return nil
}

func (r *RunnerLocal) Process() error {
	return r.RunnerBase.Process()
}
