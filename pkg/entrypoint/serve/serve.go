package serve

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Azure/private-endpoint-dns/pkg/authenticator"
	"github.com/Azure/private-endpoint-dns/pkg/env"
	"github.com/Azure/private-endpoint-dns/pkg/frontend"
	"github.com/Azure/private-endpoint-dns/pkg/metrics"
	"github.com/Azure/private-endpoint-dns/pkg/reconciler"
	"github.com/Azure/private-endpoint-dns/pkg/util/azureclient"
)

func start(ctx context.Context, log *logrus.Entry, cfg *env.Config) error {
	log.WithFields(logrus.Fields{
		"subscription_id":   cfg.SubscriptionID,
		"resource_group":    cfg.ResourceGroup,
		"azure_environment": cfg.Environment.Name,
		"credential_mode":   string(authenticator.CredentialModeFromConfig(cfg)),
	}).Print("starting")

	azureclient.SetSDKLogListener(log.WithField("component", "azure-sdk"))

	l, err := net.Listen("tcp", cfg.ListenAddress)
	if err != nil {
		return err
	}

	return run(ctx, log, cfg, l, authenticator.NewAuthenticator(log.WithField("component", "authenticator"), cfg))
}

func run(ctx context.Context, log *logrus.Entry, cfg *env.Config, l net.Listener, auth authenticator.Interface) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m, err := metrics.NewClient(registry)
	if err != nil {
		return err
	}

	r := reconciler.NewReconciler(log.WithField("component", "reconciler"), cfg, auth, m)
	f := frontend.NewFrontend(log.WithField("component", "frontend"), l, r, registry)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return f.Run(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Print("stopping")
		return nil
	})

	return g.Wait()
}
