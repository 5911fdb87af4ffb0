package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// CloudError is the error body returned by the HTTP frontend.
type CloudError struct {
	StatusCode      int `json:"-"`
	*CloudErrorBody `json:"error,omitempty"`
}

// CloudErrorBody is the inner error of a CloudError.
type CloudErrorBody struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Target  string `json:"target,omitempty"`
}

func (err *CloudError) Error() string {
	if err.CloudErrorBody == nil {
		return fmt.Sprintf("%d", err.StatusCode)
	}
	return fmt.Sprintf("%d: %s: %s: %s", err.StatusCode, err.Code, err.Target, err.Message)
}

// CloudError codes
const (
	CloudErrorCodeInternalServerError   = "InternalServerError"
	CloudErrorCodeInvalidRequestContent = "InvalidRequestContent"
	CloudErrorCodeUnsupportedMediaType  = "UnsupportedMediaType"
	CloudErrorCodeRequestTooLarge       = "RequestTooLarge"
	CloudErrorCodeNotReady              = "NotReady"
	CloudErrorCodeEventFailed           = "EventFailed"
)

// NewCloudError returns a new CloudError
func NewCloudError(statusCode int, code, target, message string, a ...interface{}) *CloudError {
	return &CloudError{
		StatusCode: statusCode,
		CloudErrorBody: &CloudErrorBody{
			Code:    code,
			Message: fmt.Sprintf(message, a...),
			Target:  target,
		},
	}
}

// WriteError constructs and writes a CloudError to the given ResponseWriter
func WriteError(w http.ResponseWriter, statusCode int, code, target, message string, a ...interface{}) {
	WriteCloudError(w, NewCloudError(statusCode, code, target, message, a...))
}

// WriteCloudError writes a CloudError to the given ResponseWriter
func WriteCloudError(w http.ResponseWriter, err *CloudError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	e := json.NewEncoder(w)
	e.SetIndent("", "    ")
	_ = e.Encode(err)
}
