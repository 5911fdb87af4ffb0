package frontend

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_reconciler "github.com/Azure/private-endpoint-dns/pkg/util/mocks/reconciler"
	testlog "github.com/Azure/private-endpoint-dns/test/util/log"
)

func TestGetReady(t *testing.T) {
	for _, tt := range []struct {
		name           string
		ready          bool
		wantStatusCode int
	}{
		{
			name:           "ready",
			ready:          true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "not ready",
			wantStatusCode: http.StatusInternalServerError,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			f := newTestFrontend(t, mock_reconciler.NewMockInterface(controller))
			f.ready.Store(tt.ready)

			w := httptest.NewRecorder()
			f.setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz/ready", nil))

			assert.Equal(t, tt.wantStatusCode, w.Code)
		})
	}
}

func TestGetMetrics(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_total",
		Help: "test counter",
	})
	registry.MustRegister(counter)
	counter.Inc()

	f := newTestFrontend(t, mock_reconciler.NewMockInterface(controller))
	f.gatherer = registry

	w := httptest.NewRecorder()
	f.setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test_total 1")
}

func TestRun(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	_, log := testlog.NewCapturingLogger()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	f := NewFrontend(log, l, mock_reconciler.NewMockInterface(controller), prometheus.NewRegistry())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- f.Run(ctx)
	}()

	url := "http://" + l.Addr().String() + "/healthz/ready"
	assert.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	assert.False(t, f.(*frontend).ready.Load())
}

func TestServerErrorLog(t *testing.T) {
	h, log := testlog.NewCapturingLogger()

	newServerErrorLog(log).Print("http: TLS handshake error")

	assert.Eventually(t, func() bool {
		for _, e := range h.AllEntries() {
			if e.Level == logrus.WarnLevel && e.Message == "http: TLS handshake error" {
				return true
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)
}
