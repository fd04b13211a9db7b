package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tf-ci-tools/terraform-pr-commenter/src/internal/runner"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/models"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &runner.Options{}
	var fmtOutcome, initOutcome, validateOutcome, planOutcome string

	cmd := &cobra.Command{
		Use:   "tf-pr-commenter",
		Short: "Terraform CI transcript summarizer and PR commenter",
		Long: `tf-pr-commenter reads the transcripts of a Terraform CI pipeline (fmt, init,
validate, plan, cost), reduces them to one bounded markdown report, and
updates or creates a single comment on the pull request.`,
		Version: fmt.Sprintf("%s (built: %s)", Version, BuildTime),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Outcomes = models.StageOutcomes{
				Format:   models.StageOutcome(fmtOutcome),
				Init:     models.StageOutcome(initOutcome),
				Validate: models.StageOutcome(validateOutcome),
				Plan:     models.StageOutcome(planOutcome),
			}
			return run(cmd.Context(), opts)
		},
	}

	// Run mode
	cmd.Flags().StringVar(&opts.RunMode, "run-mode", "github", "Run mode: github or local")

	// Common flags
	cmd.Flags().StringVar(&opts.Environment, "environment", "", "Environment name (required)")
	cmd.Flags().StringVar(&opts.WorkingDir, "working-dir", ".", "Terraform working directory the run covered")
	cmd.Flags().StringVar(&opts.WorkflowRef, "workflow-ref", "", "Workflow reference (owner/repo/path/to/workflow.yml@ref)")
	cmd.Flags().StringVar(&opts.TranscriptsDir, "transcripts-dir", "./transcripts", "Directory holding the staged stage transcripts")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Path to optional YAML config with truncation limits")
	cmd.Flags().StringVar(&opts.TemplatePath, "templates-path", "", "Path to a custom comment template file")

	// Contextual parameters
	cmd.Flags().StringVar(&opts.PlanSummary, "plan-summary", "", "Plan summary string for the report header")
	cmd.Flags().BoolVar(&opts.LockFileChanged, "lock-file-changed", false, "Whether .terraform.lock.hcl changed in this run")
	cmd.Flags().StringVar(&opts.ToolVersion, "tool-version", "", "Terraform version string for the report footer")
	cmd.Flags().StringVar(&opts.ServerURL, "server-url", "", "CI server URL used to build the full-logs link")
	cmd.Flags().Int64Var(&opts.RunID, "run-id", 0, "CI run id used to build the full-logs link")
	cmd.Flags().StringVar(&fmtOutcome, "fmt-outcome", "skipped", "Format stage outcome: success, failure or skipped")
	cmd.Flags().StringVar(&initOutcome, "init-outcome", "skipped", "Init stage outcome: success, failure or skipped")
	cmd.Flags().StringVar(&validateOutcome, "validate-outcome", "skipped", "Validate stage outcome: success, failure or skipped")
	cmd.Flags().StringVar(&planOutcome, "plan-outcome", "skipped", "Plan stage outcome: success, failure or skipped")

	// GitHub mode flags
	cmd.Flags().StringVar(&opts.GhRepo, "gh-repo", "", "GitHub repository (e.g., org/repo) [github mode]")
	cmd.Flags().IntVar(&opts.GhPrNumber, "gh-pr-number", 0, "GitHub PR number [github mode]")

	// Local mode flags
	cmd.Flags().StringVar(&opts.LcOutputDir, "lc-output-dir", "./output", "Local mode output directory [local mode]")

	// Timing export
	cmd.Flags().BoolVar(&opts.EnableTiming, "enable-timing", false, "Export a JSON timing report of the run phases")

	_ = cmd.MarkFlagRequired("environment")

	return cmd
}
