package error

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"testing"

	"github.com/Azure/private-endpoint-dns/pkg/api"
)

// AssertErrorMessage asserts that err.Error() is equal to wantMsg.  An empty
// wantMsg asserts that err is nil.
func AssertErrorMessage(t *testing.T, err error, wantMsg string) {
	t.Helper()
	if err == nil && wantMsg != "" {
		t.Errorf("did not get an error, but wanted error '%v'", wantMsg)
	}

	if err != nil && err.Error() != wantMsg {
		t.Errorf("got error '%v', but wanted error '%v'", err, wantMsg)
	}
}

// AssertErrorCode asserts that err is an *api.Error carrying wantCode.  An
// empty wantCode asserts that err is nil.
func AssertErrorCode(t *testing.T, err error, wantCode api.Code) {
	t.Helper()
	if wantCode == "" {
		if err != nil {
			t.Errorf("got error '%v', but wanted no error", err)
		}
		return
	}

	if !errors.Is(err, &api.Error{Code: wantCode}) {
		t.Errorf("got error '%v', but wanted error with code '%s'", err, wantCode)
	}
}
