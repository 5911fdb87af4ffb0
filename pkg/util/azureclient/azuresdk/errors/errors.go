package errors

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// IsNotFoundError checks if the error is an error from azure SDK and 404 NotFound error.
func IsNotFoundError(err error) bool {
	return hasStatusCode(err, http.StatusNotFound)
}

// IsUnauthorizedError checks if the error is an error from azure SDK and a
// 401 Unauthorized or 403 Forbidden error.
func IsUnauthorizedError(err error) bool {
	return hasStatusCode(err, http.StatusUnauthorized) || hasStatusCode(err, http.StatusForbidden)
}

func hasStatusCode(err error, statusCode int) bool {
	var azErr *azcore.ResponseError
	return errors.As(err, &azErr) && azErr.StatusCode == statusCode
}
