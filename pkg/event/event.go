package event

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// Event types
const (
	ResourceWriteSuccess        = "Microsoft.Resources.ResourceWriteSuccess"
	ResourceDeleteSuccess       = "Microsoft.Resources.ResourceDeleteSuccess"
	SubscriptionValidationEvent = "Microsoft.EventGrid.SubscriptionValidationEvent"
)

// Envelope is an Event Grid schema event.  It is not modified after it is
// received.
type Envelope struct {
	ID              string          `json:"id,omitempty"`
	Topic           string          `json:"topic,omitempty"`
	Subject         string          `json:"subject,omitempty"`
	EventType       string          `json:"eventType,omitempty"`
	EventTime       time.Time       `json:"eventTime"`
	Data            json.RawMessage `json:"data,omitempty"`
	DataVersion     string          `json:"dataVersion,omitempty"`
	MetadataVersion string          `json:"metadataVersion,omitempty"`
}

// Payload is the data of a ResourceWriteSuccess or ResourceDeleteSuccess
// event.  Only ResourceURI and SubscriptionID are used.
type Payload struct {
	ResourceURI      string `json:"resourceUri,omitempty"`
	SubscriptionID   string `json:"subscriptionId,omitempty"`
	TenantID         string `json:"tenantId,omitempty"`
	ResourceProvider string `json:"resourceProvider,omitempty"`
	OperationName    string `json:"operationName,omitempty"`
	Status           string `json:"status,omitempty"`
	CorrelationID    string `json:"correlationId,omitempty"`
}

// ValidationPayload is the data of a SubscriptionValidationEvent.
type ValidationPayload struct {
	ValidationCode string `json:"validationCode,omitempty"`
	ValidationURL  string `json:"validationUrl,omitempty"`
}

// ValidationResponse answers a SubscriptionValidationEvent.
type ValidationResponse struct {
	ValidationResponse string `json:"validationResponse"`
}

// Kind selects the reconciler for an event.
type Kind int

const (
	KindUnknown Kind = iota
	KindCreated
	KindDeleted
)

func (k Kind) String() string {
	switch k {
	case KindCreated:
		return "Created"
	case KindDeleted:
		return "Deleted"
	}
	return "Unknown"
}

// KindOf returns the Kind handling eventType, or KindUnknown.
func KindOf(eventType string) Kind {
	switch eventType {
	case ResourceWriteSuccess:
		return KindCreated
	case ResourceDeleteSuccess:
		return KindDeleted
	}
	return KindUnknown
}

// Unmarshal decodes an Event Grid delivery.  Event Grid posts a JSON array of
// events; a single JSON object is also accepted.
func Unmarshal(b []byte) ([]*Envelope, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, errors.New("empty event delivery")
	}

	if b[0] == '{' {
		var e Envelope
		if err := json.Unmarshal(b, &e); err != nil {
			return nil, err
		}
		return []*Envelope{&e}, nil
	}

	var es []*Envelope
	if err := json.Unmarshal(b, &es); err != nil {
		return nil, err
	}

	return es, nil
}
