package frontend

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Azure/private-endpoint-dns/pkg/api"
	"github.com/Azure/private-endpoint-dns/pkg/event"
	"github.com/Azure/private-endpoint-dns/pkg/frontend/middleware"
)

// postEvents handles an Event Grid delivery.  A subscription validation
// event is answered with its validation code; otherwise each event is
// reconciled in order and any failure fails the whole delivery so that Event
// Grid redelivers it.
func (f *frontend) postEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := ctx.Value(middleware.ContextKeyLog).(*logrus.Entry)
	body := ctx.Value(middleware.ContextKeyBody).([]byte)

	events, err := event.Unmarshal(body)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CloudErrorCodeInvalidRequestContent, "", "The request content was invalid and could not be deserialized: %q.", err)
		return
	}

	for _, e := range events {
		if e != nil && e.EventType == event.SubscriptionValidationEvent {
			f.validateSubscription(w, log, e)
			return
		}
	}

	var failed int
	for _, e := range events {
		if e == nil {
			continue
		}
		if err := f.reconciler.Handle(ctx, e); err != nil {
			failed++
		}
	}

	if failed > 0 {
		api.WriteError(w, http.StatusInternalServerError, api.CloudErrorCodeEventFailed, "", "%d of %d events failed.", failed, len(events))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (f *frontend) validateSubscription(w http.ResponseWriter, log *logrus.Entry, e *event.Envelope) {
	var payload event.ValidationPayload
	if err := json.Unmarshal(e.Data, &payload); err != nil || payload.ValidationCode == "" {
		api.WriteError(w, http.StatusBadRequest, api.CloudErrorCodeInvalidRequestContent, "", "The subscription validation event has no validation code.")
		return
	}

	log.WithField("topic", e.Topic).Info("validated event subscription")

	b, err := json.Marshal(&event.ValidationResponse{ValidationResponse: payload.ValidationCode})
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, api.CloudErrorCodeInternalServerError, "", "Internal server error.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}
