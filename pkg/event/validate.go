package event

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/Azure/private-endpoint-dns/pkg/api"
)

// ValidatedEvent is an envelope whose payload has passed Validate.
type ValidatedEvent struct {
	Kind     Kind
	Envelope *Envelope
	Payload  Payload
}

// Validate checks that e carries a recognized event type and a payload with a
// resource URI and a subscription id.  It makes no network calls.
func Validate(e *Envelope) (*ValidatedEvent, error) {
	if e == nil {
		return nil, api.NewError(api.CodeMissingField, "event cannot be nil")
	}

	if isBlank(e.EventType) {
		return nil, api.NewError(api.CodeMissingField, "the type of the event cannot be null or empty")
	}

	kind := KindOf(e.EventType)
	if kind == KindUnknown {
		return nil, api.NewError(api.CodeUnsupportedType, "event type %q is not supported", e.EventType)
	}

	data := bytes.TrimSpace(e.Data)
	if len(data) == 0 || data[0] != '{' {
		return nil, api.NewError(api.CodeMissingField, "the data of the event must be an object")
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, api.WrapError(err, api.CodeMissingField, "the data of the event could not be decoded")
	}

	if isBlank(p.ResourceURI) {
		return nil, api.NewError(api.CodeMissingField, "resourceUri cannot be null or empty")
	}

	if isBlank(p.SubscriptionID) {
		return nil, api.NewError(api.CodeMissingField, "subscriptionId cannot be null or empty")
	}

	return &ValidatedEvent{
		Kind:     kind,
		Envelope: e,
		Payload:  p,
	}, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
