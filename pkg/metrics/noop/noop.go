package noop

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"time"

	"github.com/Azure/private-endpoint-dns/pkg/metrics"
)

// Noop discards all metrics.
type Noop struct{}

var _ metrics.Interface = &Noop{}

func (c *Noop) EmitEvent(kind, outcome, code string) {}

func (c *Noop) EmitReconcileDuration(kind string, d time.Duration) {}

func (c *Noop) EmitRecordChange(operation, zone string) {}
