// Package trace times the pipeline phases of a run and exports a small JSON
// timing report next to the generated comment, for debugging slow CI steps.
package trace

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer   trace.Tracer
	recorder *phaseRecorder
	exportTo string
)

type phaseRecorder struct {
	mu     sync.Mutex
	phases []PhaseTiming
}

// PhaseTiming is one timed phase of a run.
type PhaseTiming struct {
	Name       string  `json:"name"`
	DurationMs float64 `json:"durationMs"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
}

// TimingReport is the exported timing summary for one run.
type TimingReport struct {
	Phases    []PhaseTiming `json:"phases"`
	TotalMs   float64       `json:"totalMs"`
	Timestamp string        `json:"timestamp"`
}

// Init initializes tracing. When disabled a no-op shutdown is returned. The
// shutdown function flushes the provider and writes the timing report.
func Init(serviceName string, enabled bool, outDir string) (func(), error) {
	if !enabled {
		return func() {}, nil
	}

	recorder = &phaseRecorder{}
	exportTo = outDir

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(&recordingProcessor{recorder: recorder}),
	)
	otel.SetTracerProvider(tp)
	tracer = tp.Tracer(serviceName)

	shutdown := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(ctx)
		_ = exportReport()
	}
	return shutdown, nil
}

// StartPhase starts a span for one pipeline phase.
func StartPhase(ctx context.Context, name string) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, name)
}

type recordingProcessor struct {
	recorder *phaseRecorder
}

func (p *recordingProcessor) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {}

func (p *recordingProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	p.recorder.mu.Lock()
	defer p.recorder.mu.Unlock()
	p.recorder.phases = append(p.recorder.phases, PhaseTiming{
		Name:       s.Name(),
		DurationMs: float64(s.EndTime().Sub(s.StartTime()).Microseconds()) / 1000.0,
		Start:      s.StartTime().Format(time.RFC3339Nano),
		End:        s.EndTime().Format(time.RFC3339Nano),
	})
}

func (p *recordingProcessor) Shutdown(ctx context.Context) error   { return nil }
func (p *recordingProcessor) ForceFlush(ctx context.Context) error { return nil }

func exportReport() error {
	if recorder == nil || len(recorder.phases) == 0 || exportTo == "" {
		return nil
	}

	total := 0.0
	for _, ph := range recorder.phases {
		total += ph.DurationMs
	}
	report := TimingReport{
		Phases:    recorder.phases,
		TotalMs:   total,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}

	if err := os.MkdirAll(exportTo, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal timing report: %w", err)
	}
	return os.WriteFile(filepath.Join(exportTo, "timing-report.json"), data, 0644)
}
