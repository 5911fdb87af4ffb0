package handle

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/Azure/private-endpoint-dns/pkg/event"
	"github.com/Azure/private-endpoint-dns/pkg/reconciler"
)

// handle reconciles every event of a delivery in order.  Subscription
// validation events are ignored.  All failures are returned.
func handle(ctx context.Context, log *logrus.Entry, r reconciler.Interface, b []byte) error {
	events, err := event.Unmarshal(b)
	if err != nil {
		return fmt.Errorf("decoding delivery: %w", err)
	}

	var errs *multierror.Error
	for i, e := range events {
		if e == nil {
			continue
		}

		if e.EventType == event.SubscriptionValidationEvent {
			log.Infof("ignoring subscription validation event %q", e.ID)
			continue
		}

		if err := r.Handle(ctx, e); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("event %d (%s): %w", i, e.ID, err))
		}
	}

	return errs.ErrorOrNil()
}
