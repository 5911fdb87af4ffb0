package metrics

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "private_endpoint_dns"

	kindLabel      = "kind"
	outcomeLabel   = "outcome"
	codeLabel      = "code"
	operationLabel = "operation"
	zoneLabel      = "zone"
)

// Outcomes of handling an event.
const (
	OutcomeSuccess = "success"
	OutcomeSkipped = "skipped"
	OutcomeFailure = "failure"
)

// Record operations.
const (
	OperationUpsert = "upsert"
	OperationDelete = "delete"
)

// Interface represents metrics interface
type Interface interface {
	EmitEvent(kind, outcome, code string)
	EmitReconcileDuration(kind string, d time.Duration)
	EmitRecordChange(operation, zone string)
}

type client struct {
	events   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	records  *prometheus.CounterVec
}

// NewClient creates the collectors and registers them with registerer.
func NewClient(registerer prometheus.Registerer) (Interface, error) {
	c := &client{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Events handled, by kind and outcome",
		}, []string{kindLabel, outcomeLabel, codeLabel}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reconcile_duration_seconds",
			Help:      "Time taken to reconcile an event",
			Buckets:   prometheus.DefBuckets,
		}, []string{kindLabel}),
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "record_changes_total",
			Help:      "A record sets written or deleted, by zone",
		}, []string{operationLabel, zoneLabel}),
	}

	for _, collector := range []prometheus.Collector{c.events, c.duration, c.records} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *client) EmitEvent(kind, outcome, code string) {
	c.events.
		With(prometheus.Labels{
			kindLabel:    kind,
			outcomeLabel: outcome,
			codeLabel:    code,
		}).
		Inc()
}

func (c *client) EmitReconcileDuration(kind string, d time.Duration) {
	c.duration.
		With(prometheus.Labels{
			kindLabel: kind,
		}).
		Observe(d.Seconds())
}

func (c *client) EmitRecordChange(operation, zone string) {
	c.records.
		With(prometheus.Labels{
			operationLabel: operation,
			zoneLabel:      zone,
		}).
		Inc()
}
