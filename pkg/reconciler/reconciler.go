package reconciler

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Azure/private-endpoint-dns/pkg/api"
	"github.com/Azure/private-endpoint-dns/pkg/authenticator"
	"github.com/Azure/private-endpoint-dns/pkg/env"
	"github.com/Azure/private-endpoint-dns/pkg/event"
	"github.com/Azure/private-endpoint-dns/pkg/metrics"
	utillog "github.com/Azure/private-endpoint-dns/pkg/util/log"
)

// Interface handles a single Event Grid event.
type Interface interface {
	Handle(ctx context.Context, e *event.Envelope) error
}

type handlerFunc func(*reconcileManager, context.Context) error

var handlers = map[event.Kind]handlerFunc{
	event.KindCreated: (*reconcileManager).reconcileCreated,
	event.KindDeleted: (*reconcileManager).reconcileDeleted,
}

type reconciler struct {
	log           *logrus.Entry
	config        *env.Config
	authenticator authenticator.Interface
	metrics       metrics.Interface
}

// reconcileManager is an instance of the manager instantiated per event
type reconcileManager struct {
	log           *logrus.Entry
	config        *env.Config
	authenticator authenticator.Interface
	metrics       metrics.Interface

	mode  authenticator.CredentialMode
	event *event.ValidatedEvent
}

// NewReconciler returns an Interface which keeps the private DNS zones in
// config.ResourceGroup in step with private endpoint network interfaces.
func NewReconciler(log *logrus.Entry, config *env.Config, authenticator authenticator.Interface, metrics metrics.Interface) Interface {
	return &reconciler{
		log:           log,
		config:        config,
		authenticator: authenticator,
		metrics:       metrics,
	}
}

// Handle validates e and runs the reconciler for its kind.  Events of an
// unrecognized type are skipped without error.  Failures are logged with the
// event attached and returned unchanged.
func (r *reconciler) Handle(ctx context.Context, e *event.Envelope) error {
	log := r.log
	if e != nil {
		log = utillog.EnrichWithEvent(log, e.ID, e.EventType)

		if strings.TrimSpace(e.EventType) != "" && event.KindOf(e.EventType) == event.KindUnknown {
			log.Debugf("skipping event of type %q", e.EventType)
			r.metrics.EmitEvent(event.KindUnknown.String(), metrics.OutcomeSkipped, "")
			return nil
		}
	}

	ve, err := event.Validate(e)
	if err != nil {
		utillog.Error(log, err, e)
		r.metrics.EmitEvent(event.KindUnknown.String(), metrics.OutcomeFailure, string(api.CodeOf(err)))
		return err
	}

	m := &reconcileManager{
		log:           utillog.EnrichWithResourceID(log, ve.Payload.ResourceURI),
		config:        r.config,
		authenticator: r.authenticator,
		metrics:       r.metrics,
		mode:          authenticator.CredentialModeFromConfig(r.config),
		event:         ve,
	}

	start := time.Now()
	err = handlers[ve.Kind](m, ctx)
	r.metrics.EmitReconcileDuration(ve.Kind.String(), time.Since(start))

	if err != nil {
		utillog.Error(m.log, err, e)
		r.metrics.EmitEvent(ve.Kind.String(), metrics.OutcomeFailure, string(api.CodeOf(err)))
		return err
	}

	r.metrics.EmitEvent(ve.Kind.String(), metrics.OutcomeSuccess, "")
	return nil
}
