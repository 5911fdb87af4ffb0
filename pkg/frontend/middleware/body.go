package middleware

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/Azure/private-endpoint-dns/pkg/api"
)

// MaxBodyBytes bounds an event delivery.  Event Grid batches are at most 1MB.
const MaxBodyBytes = 1048576

// Body reads the body of a POST request into the request context.  Only
// application/json content is accepted.
func Body(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if strings.TrimSpace(strings.SplitN(r.Header.Get("Content-Type"), ";", 2)[0]) != "application/json" {
				api.WriteError(w, http.StatusUnsupportedMediaType, api.CloudErrorCodeUnsupportedMediaType, "", "The content media type '%s' is not supported. Only 'application/json' is supported.", r.Header.Get("Content-Type"))
				return
			}

			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
			if err != nil {
				var maxBytesError *http.MaxBytesError
				if errors.As(err, &maxBytesError) {
					api.WriteError(w, http.StatusRequestEntityTooLarge, api.CloudErrorCodeRequestTooLarge, "", "The request content exceeds %d bytes.", MaxBodyBytes)
					return
				}

				api.WriteError(w, http.StatusBadRequest, api.CloudErrorCodeInvalidRequestContent, "", "The request content could not be read.")
				return
			}

			r = r.WithContext(context.WithValue(r.Context(), ContextKeyBody, body))
		}

		h.ServeHTTP(w, r)
	})
}
