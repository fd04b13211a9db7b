package main

import (
	"context"
	"fmt"

	"github.com/tf-ci-tools/terraform-pr-commenter/src/internal/runner"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/config"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/github"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/models"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/template"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/trace"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/transcript"
)

const (
	RUN_MODE_GITHUB = "github"
	RUN_MODE_LOCAL  = "local"
)

// Do all initialization steps here:
// 1. Load the truncation-limit config (defaults when no file is given)
// 2. Initialize the transcript store and the renderer
// 3. Initialize the runner instance for the selected mode
// // a. GitHub mode additionally fetches the PR comment thread
// 4. Return the runner instance
func initialize(ctx context.Context, opts *runner.Options) (runner.RunnerInterface, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.NewLoader().Load(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	store := transcript.NewStore(opts.TranscriptsDir)
	renderer := template.NewRenderer()

	var instance runner.RunnerInterface
	var err error
	switch opts.RunMode {
	case RUN_MODE_GITHUB:
		var ghClient *github.Client
		ghClient, err = github.NewClient()
		if err != nil {
			return nil, fmt.Errorf("GitHub authentication failed: %w", err)
		}
		instance, err = runner.NewRunnerGitHub(ctx, opts, cfg, store, renderer, ghClient)
	case RUN_MODE_LOCAL:
		instance, err = runner.NewRunnerLocal(ctx, opts, cfg, store, renderer)
	default:
		return nil, fmt.Errorf("invalid run mode: %s", opts.RunMode)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	if err := instance.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize runner: %w", err)
	}

	return instance, nil
}

func run(ctx context.Context, opts *runner.Options) error {
	if err := validateOptions(opts); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	shutdown, err := trace.Init("tf-pr-commenter", opts.EnableTiming, opts.LcOutputDir)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer shutdown()

	instance, err := initialize(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	if err := instance.Process(); err != nil {
		return err
	}

	fmt.Println("✅ Report published")
	return nil
}

func validateOptions(opts *runner.Options) error {
	if opts.Environment == "" {
		return fmt.Errorf("environment is required")
	}

	if opts.RunMode != RUN_MODE_GITHUB && opts.RunMode != RUN_MODE_LOCAL {
		return fmt.Errorf("run-mode must be 'github' or 'local', got: %s", opts.RunMode)
	}

	for _, o := range []models.StageOutcome{
		opts.Outcomes.Format, opts.Outcomes.Init, opts.Outcomes.Validate, opts.Outcomes.Plan,
	} {
		switch o {
		case models.OutcomeSuccess, models.OutcomeFailure, models.OutcomeSkipped:
		default:
			return fmt.Errorf("stage outcomes must be success, failure or skipped, got: %s", o)
		}
	}

	if opts.RunMode == RUN_MODE_GITHUB {
		if opts.GhRepo == "" {
			return fmt.Errorf("github mode requires --gh-repo")
		}
		if opts.GhPrNumber == 0 {
			return fmt.Errorf("github mode requires --gh-pr-number")
		}
	}

	return nil
}
