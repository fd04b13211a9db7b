package runner

import "github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/models"

type Options struct {
	// Run mode
	RunMode string // "github" or "local"

	// Common options
	Environment    string
	WorkingDir     string
	WorkflowRef    string
	TranscriptsDir string
	ConfigPath     string
	TemplatePath   string

	// Contextual parameters supplied by the orchestrating workflow
	PlanSummary     string
	LockFileChanged bool
	ToolVersion     string
	ServerURL       string
	RunID           int64
	Outcomes        models.StageOutcomes

	// GitHub mode options
	GhRepo     string
	GhPrNumber int

	// Local mode options
	LcOutputDir string

	// Timing export
	EnableTiming bool
}
