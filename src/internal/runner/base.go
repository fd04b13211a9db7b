package runner

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/changes"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/comment"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/config"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/filter"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/models"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/report"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/template"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/trace"
	"github.com/tf-ci-tools/terraform-pr-commenter/src/pkg/transcript"
)

var logger *log.Entry = log.New().WithFields(log.Fields{
	"package": "runner",
})

type RunnerBase struct {
	Context context.Context
	Options *Options
	Config  *config.Config

	Store    *transcript.Store
	Renderer *template.Renderer

	Instance RunnerInterface
}

func NewRunnerBase(
	ctx context.Context,
	options *Options,
	cfg *config.Config,
	store *transcript.Store,
	renderer *template.Renderer,
) (*RunnerBase, error) {
	if store == nil || renderer == nil {
		return nil, fmt.Errorf("store and renderer are required")
	}
	return &RunnerBase{
		Context:  ctx,
		Options:  options,
		Config:   cfg,
		Store:    store,
		Renderer: renderer,
	}, nil
}

func (r *RunnerBase) Initialize() error {
	return nil
}

// BuildReport runs the reduction pipeline: read transcripts, filter them,
// extract resource changes, and render the comment body.
func (r *RunnerBase) BuildReport() (string, error) {
	logger.Info("BuildReport: starting...")

	_, span := trace.StartPhase(r.Context, "build-report")
	defer span.End()

	limits := r.Config.Limits

	rawInit := r.Store.Read(transcript.StageInit)
	rawValidate := r.Store.Read(transcript.StageValidate)
	rawPlan := r.Store.Read(transcript.StagePlan)
	rawCost := r.Store.Read(transcript.StageCost)

	in := report.Input{
		Marker:          comment.BuildMarker(r.Options.Environment, r.Options.WorkingDir, r.Options.WorkflowRef),
		Environment:     r.Options.Environment,
		PlanSummary:     r.Options.PlanSummary,
		LockFileChanged: r.Options.LockFileChanged,
		ToolVersion:     r.Options.ToolVersion,
		LogsURL:         r.logsURL(),
		Outcomes:        r.Options.Outcomes,
		Format:          filter.TruncateLines(r.Store.Read(transcript.StageFormat), limits.FormatLines),
		Init:            filter.TruncateLines(filter.FilterInit(rawInit), limits.InitLines),
		Validate:        filter.TruncateLines(filter.FilterValidate(rawValidate), limits.ValidateLines),
		Plan:            r.boundPlan(rawPlan),
		Changes:         changes.Extract(rawPlan),
	}
	if strings.TrimSpace(rawCost) != "" {
		in.Cost = filter.TruncateLines(rawCost, limits.CostLines)
	}

	data := report.Compose(in)
	logger.WithField("sections", len(data.Sections)).Debug("Composed report")

	var body string
	var err error
	if r.Options.TemplatePath != "" {
		body, err = r.Renderer.Render(r.Options.TemplatePath, data)
	} else {
		body, err = r.Renderer.RenderString(r.Renderer.GetDefaultCommentTemplate(), data)
	}
	if err != nil {
		return "", fmt.Errorf("failed to render comment: %w", err)
	}

	logger.Info("BuildReport: done.")
	return body, nil
}

// boundPlan applies the configured plan bound: a character budget when
// planChars is set, a line budget otherwise.
func (r *RunnerBase) boundPlan(rawPlan string) models.BoundedText {
	if r.Config.Limits.PlanChars > 0 {
		return filter.ExtractPlanChars(rawPlan, r.Config.Limits.PlanChars)
	}
	return filter.ExtractPlan(rawPlan, r.Config.Limits.PlanLines)
}

func (r *RunnerBase) logsURL() string {
	if r.Options.ServerURL == "" || r.Options.GhRepo == "" || r.Options.RunID == 0 {
		return ""
	}
	return fmt.Sprintf("%s/%s/actions/runs/%d",
		strings.TrimRight(r.Options.ServerURL, "/"), r.Options.GhRepo, r.Options.RunID)
}

func (r *RunnerBase) Process() error {
	logger.Info("Process: starting...")

	body, err := r.Instance.BuildReport()
	if err != nil {
		return err
	}

	_, span := trace.StartPhase(r.Context, "publish")
	defer span.End()

	if err := r.Instance.Publish(body); err != nil {
		return err
	}

	logger.Info("Process: done.")
	return nil
}
