package fqdn

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/Azure/private-endpoint-dns/pkg/api"
	utilerror "github.com/Azure/private-endpoint-dns/test/util/error"
)

func TestSplit(t *testing.T) {
	for _, tt := range []struct {
		name          string
		fqdn          string
		wantRecord    string
		wantZone      string
		wantErrorCode api.Code
	}{
		{
			name:       "sql",
			fqdn:       "myhost.privatelink.database.windows.net",
			wantRecord: "myhost",
			wantZone:   "privatelink.privatelink.database.windows.net",
		},
		{
			name:       "blob",
			fqdn:       "account.blob.core.windows.net",
			wantRecord: "account",
			wantZone:   "privatelink.blob.core.windows.net",
		},
		{
			name:       "trailing dot",
			fqdn:       "host.",
			wantRecord: "host",
			wantZone:   "privatelink.",
		},
		{
			name:          "no dot",
			fqdn:          "localhost",
			wantErrorCode: api.CodeFormatError,
		},
		{
			name:          "empty",
			wantErrorCode: api.CodeFormatError,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			record, zone, err := Split(tt.fqdn)
			utilerror.AssertErrorCode(t, err, tt.wantErrorCode)
			if record != tt.wantRecord {
				t.Errorf("record: got %q, want %q", record, tt.wantRecord)
			}
			if zone != tt.wantZone {
				t.Errorf("zone: got %q, want %q", zone, tt.wantZone)
			}
		})
	}
}

func TestSplitErrorMessage(t *testing.T) {
	_, _, err := Split("nodots")
	utilerror.AssertErrorMessage(t, err, `FormatError: fqdn "nodots" has no domain separator`)
}
