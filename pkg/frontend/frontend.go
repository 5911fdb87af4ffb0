package frontend

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/Azure/private-endpoint-dns/pkg/frontend/middleware"
	"github.com/Azure/private-endpoint-dns/pkg/reconciler"
	"github.com/Azure/private-endpoint-dns/pkg/util/recover"
)

const shutdownTimeout = 30 * time.Second

type Runnable interface {
	Run(context.Context) error
}

type frontend struct {
	baseLog    *logrus.Entry
	reconciler reconciler.Interface
	gatherer   prometheus.Gatherer

	l net.Listener
	s *http.Server

	ready atomic.Bool
}

// NewFrontend returns a new Runnable serving Event Grid deliveries on l.
func NewFrontend(log *logrus.Entry, l net.Listener, reconciler reconciler.Interface, gatherer prometheus.Gatherer) Runnable {
	f := &frontend{
		baseLog:    log,
		reconciler: reconciler,
		gatherer:   gatherer,
		l:          l,
	}

	f.s = &http.Server{
		Handler:           f.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
		IdleTimeout:       2 * time.Minute,
		ErrorLog:          newServerErrorLog(log),
	}

	return f
}

func newServerErrorLog(entry *logrus.Entry) *log.Logger {
	return log.New(entry.WriterLevel(logrus.WarnLevel), "", 0)
}

func (f *frontend) setupRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.LogMiddleware{BaseLog: f.baseLog}.Log)
	r.Use(middleware.Panic)

	r.Methods(http.MethodGet).Path("/healthz/ready").HandlerFunc(f.getReady)
	r.Methods(http.MethodGet).Path("/metrics").Handler(promhttp.HandlerFor(f.gatherer, promhttp.HandlerOpts{
		ErrorLog: f.baseLog,
	}))

	s := r.PathPrefix("/api").Subrouter()
	s.Use(middleware.Body)
	s.Methods(http.MethodPost).Path("/events").HandlerFunc(f.postEvents)

	return r
}

// Run serves until ctx is cancelled, then stops reporting ready and drains
// in-flight deliveries.
func (f *frontend) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		defer recover.Panic(f.baseLog)

		errCh <- f.s.Serve(f.l)
	}()

	f.ready.Store(true)
	f.baseLog.Printf("listening on %s", f.l.Addr())

	select {
	case err := <-errCh:
		f.ready.Store(false)
		return err
	case <-ctx.Done():
	}

	f.ready.Store(false)
	f.baseLog.Print("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := f.s.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
