// Package runner wires one audit pass: collect, detect, format, deliver.
package runner

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mikkoval/alarmgap/internal/audit"
	"github.com/mikkoval/alarmgap/internal/report"
	"github.com/mikkoval/alarmgap/internal/telemetry"
	"github.com/mikkoval/alarmgap/pkg/model"
)

// Collector provides the resource and alarm snapshots for one run.
type Collector interface {
	CollectResources(ctx context.Context) (model.Snapshot, error)
	CollectAlarms(ctx context.Context) ([]model.Alarm, error)
}

// Uploader stores the HTML report and returns its location.
type Uploader interface {
	Upload(ctx context.Context, html string) (string, error)
}

// Messenger sends the text report to a notification channel.
type Messenger interface {
	Send(ctx context.Context, message string) error
}

// Publisher publishes the text report to a pub/sub topic.
type Publisher interface {
	Publish(ctx context.Context, message string) error
}

// Result is the structured outcome of one audit run.
type Result struct {
	Status    string            `json:"status"`
	GapsFound int               `json:"gaps_found"`
	Gaps      []model.GapRecord `json:"gaps,omitempty"`
	Report    string            `json:"report"`
	S3Report  string            `json:"s3_report,omitempty"`
}

// Runner performs audit passes with a fixed set of collaborators.
type Runner struct {
	collector Collector
	detector  *audit.Detector
	uploader  Uploader
	slack     Messenger
	sns       Publisher
	metrics   *telemetry.Metrics
}

// New creates a runner. metrics may be nil for one-shot use.
func New(collector Collector, detector *audit.Detector, uploader Uploader, slack Messenger, sns Publisher, metrics *telemetry.Metrics) *Runner {
	return &Runner{
		collector: collector,
		detector:  detector,
		uploader:  uploader,
		slack:     slack,
		sns:       sns,
		metrics:   metrics,
	}
}

// Run performs one audit pass. A collection failure aborts the run and
// returns an error; delivery failures are logged, counted, and do not
// affect the returned result.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	alarms, err := r.collector.CollectAlarms(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect alarms: %w", err)
	}
	log.Info().Int("alarms", len(alarms)).Msg("alarm snapshot collected")

	snapshot, err := r.collector.CollectResources(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect resources: %w", err)
	}

	gaps := r.detector.Detect(snapshot, alarms)
	log.Info().Int("gaps", len(gaps)).Msg("gap detection complete")

	text := report.FormatText(gaps)
	html, err := report.FormatHTML(gaps)
	if err != nil {
		return nil, err
	}

	s3Location := r.deliver(ctx, html)
	if s3Location != "" {
		text += "\nHTML report: " + s3Location
	}

	r.notify(ctx, text)

	return &Result{
		Status:    "ok",
		GapsFound: len(gaps),
		Gaps:      gaps,
		Report:    text,
		S3Report:  s3Location,
	}, nil
}

// deliver uploads the HTML report, tolerating failure.
func (r *Runner) deliver(ctx context.Context, html string) string {
	location, err := r.uploader.Upload(ctx, html)
	if err != nil {
		log.Error().Err(err).Msg("report upload failed")
		r.recordDeliveryFailure(ctx, "s3")
		return ""
	}
	return location
}

// notify sends the text report to the chat and pub/sub channels,
// tolerating failure in each.
func (r *Runner) notify(ctx context.Context, text string) {
	if err := r.slack.Send(ctx, text); err != nil {
		log.Error().Err(err).Msg("slack notification failed")
		r.recordDeliveryFailure(ctx, "slack")
	}

	if err := r.sns.Publish(ctx, text); err != nil {
		log.Error().Err(err).Msg("sns publish failed")
		r.recordDeliveryFailure(ctx, "sns")
	}
}

func (r *Runner) recordDeliveryFailure(ctx context.Context, sink string) {
	if r.metrics != nil {
		r.metrics.RecordDeliveryFailure(ctx, sink)
	}
}
