package frontend

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"

	"github.com/Azure/private-endpoint-dns/pkg/api"
)

func (f *frontend) getReady(w http.ResponseWriter, r *http.Request) {
	if f.ready.Load() {
		api.WriteCloudError(w, &api.CloudError{StatusCode: http.StatusOK})
	} else {
		api.WriteError(w, http.StatusInternalServerError, api.CloudErrorCodeNotReady, "", "Not ready.")
	}
}
