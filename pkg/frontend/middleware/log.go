package middleware

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	utillog "github.com/Azure/private-endpoint-dns/pkg/util/log"
	"github.com/Azure/private-endpoint-dns/pkg/util/uuid"
)

type logResponseWriter struct {
	http.ResponseWriter

	statusCode int
	bytes      int
}

func (w *logResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *logResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.statusCode = statusCode
}

type logReadCloser struct {
	io.ReadCloser

	bytes int
}

func (rc *logReadCloser) Read(b []byte) (int, error) {
	n, err := rc.ReadCloser.Read(b)
	rc.bytes += n
	return n, err
}

type LogMiddleware struct {
	BaseLog *logrus.Entry
}

// Log assigns each request an id, stores a request-scoped log entry in the
// request context and logs the request and response.  Readiness probes are
// logged at debug level.
func (l LogMiddleware) Log(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := time.Now()

		r.Body = &logReadCloser{ReadCloser: r.Body}
		w = &logResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		requestID := uuid.DefaultGenerator.Generate()
		w.Header().Set("X-Ms-Request-Id", requestID)

		log := l.BaseLog
		log = utillog.EnrichWithPath(log, r.URL.Path)
		log = log.WithField("request_id", requestID)

		ctx := r.Context()
		ctx = context.WithValue(ctx, ContextKeyLog, log)
		ctx = context.WithValue(ctx, ContextKeyRequestID, requestID)

		r = r.WithContext(ctx)

		level := logrus.InfoLevel
		if r.URL.Path == "/healthz/ready" || r.URL.Path == "/metrics" {
			level = logrus.DebugLevel
		}

		log = log.WithFields(logrus.Fields{
			"request_method":      r.Method,
			"request_path":        r.URL.Path,
			"request_proto":       r.Proto,
			"request_remote_addr": r.RemoteAddr,
			"request_user_agent":  r.UserAgent(),
		})
		if deliveryCount := r.Header.Get("Aeg-Delivery-Count"); deliveryCount != "" {
			log = log.WithField("delivery_count", deliveryCount)
		}
		log.Log(level, "read request")

		defer func() {
			log.WithFields(logrus.Fields{
				"body_read_bytes":      r.Body.(*logReadCloser).bytes,
				"body_written_bytes":   w.(*logResponseWriter).bytes,
				"duration":             time.Since(t).Seconds(),
				"response_status_code": w.(*logResponseWriter).statusCode,
			}).Log(level, "sent response")
		}()

		h.ServeHTTP(w, r)
	})
}
