// Package telemetry exposes operational metrics for the audit loop.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds audit metrics using OTEL semantic conventions.
type Metrics struct {
	audits        metric.Int64Counter
	auditDuration metric.Float64Histogram
	gapsFound     metric.Int64Gauge
	deliveryFails metric.Int64Counter
}

// NewMetrics creates audit metrics on the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("alarmgap")

	audits, err := meter.Int64Counter(
		"alarmgap.audits",
		metric.WithDescription("Number of audit runs"),
		metric.WithUnit("{audit}"),
	)
	if err != nil {
		return nil, err
	}

	auditDuration, err := meter.Float64Histogram(
		"alarmgap.audit.duration",
		metric.WithDescription("Duration of audit runs"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	gapsFound, err := meter.Int64Gauge(
		"alarmgap.gaps",
		metric.WithDescription("Number of alarm gaps found by the last audit"),
		metric.WithUnit("{gap}"),
	)
	if err != nil {
		return nil, err
	}

	deliveryFails, err := meter.Int64Counter(
		"alarmgap.delivery.failures",
		metric.WithDescription("Number of failed report deliveries"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		audits:        audits,
		auditDuration: auditDuration,
		gapsFound:     gapsFound,
		deliveryFails: deliveryFails,
	}, nil
}

// RecordAudit records one audit run with its status and duration.
func (m *Metrics) RecordAudit(ctx context.Context, status string, durationSeconds float64) {
	attrs := metric.WithAttributes(attribute.String("status", status))
	m.audits.Add(ctx, 1, attrs)
	m.auditDuration.Record(ctx, durationSeconds, attrs)
}

// RecordGapsFound records the gap count of the last audit.
func (m *Metrics) RecordGapsFound(ctx context.Context, count int64) {
	m.gapsFound.Record(ctx, count)
}

// RecordDeliveryFailure records a failed delivery for one sink.
func (m *Metrics) RecordDeliveryFailure(ctx context.Context, sink string) {
	m.deliveryFails.Add(ctx, 1, metric.WithAttributes(attribute.String("sink", sink)))
}
