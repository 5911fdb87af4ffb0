package api

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"fmt"
)

// Code classifies a reconciliation failure.
type Code string

// Error codes
const (
	CodeMissingField    Code = "MissingField"
	CodeMissingAddress  Code = "MissingAddress"
	CodeMissingFqdn     Code = "MissingFqdn"
	CodeMalformedID     Code = "MalformedId"
	CodeFormatError     Code = "FormatError"
	CodeNotFound        Code = "NotFound"
	CodeNotAnEndpoint   Code = "NotAnEndpoint"
	CodeZoneNotFound    Code = "ZoneNotFound"
	CodeNoZones         Code = "NoZones"
	CodeAuthError       Code = "AuthError"
	CodeUnsupportedType Code = "UnsupportedType"
)

// Sentinels for use with errors.Is.  They match any *Error with the same Code.
var (
	ErrMissingField    = &Error{Code: CodeMissingField}
	ErrMissingAddress  = &Error{Code: CodeMissingAddress}
	ErrMissingFqdn     = &Error{Code: CodeMissingFqdn}
	ErrMalformedID     = &Error{Code: CodeMalformedID}
	ErrFormatError     = &Error{Code: CodeFormatError}
	ErrNotFound        = &Error{Code: CodeNotFound}
	ErrNotAnEndpoint   = &Error{Code: CodeNotAnEndpoint}
	ErrZoneNotFound    = &Error{Code: CodeZoneNotFound}
	ErrNoZones         = &Error{Code: CodeNoZones}
	ErrAuthError       = &Error{Code: CodeAuthError}
	ErrUnsupportedType = &Error{Code: CodeUnsupportedType}
)

// Error is the error type returned by the reconcilers and their
// collaborators.  Err, if set, is the underlying cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error carrying the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewError returns a new *Error with a formatted message.
func NewError(code Code, format string, a ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
	}
}

// WrapError returns a new *Error wrapping err.
func WrapError(err error, code Code, format string, a ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
		Err:     err,
	}
}

// CodeOf returns the Code of the first *Error in err's chain, or "" if there
// is none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
