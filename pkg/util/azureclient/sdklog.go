package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	azlog "github.com/Azure/azure-sdk-for-go/sdk/azcore/log"
	"github.com/sirupsen/logrus"
)

// SetSDKLogListener forwards the Azure SDK's internal diagnostics to log at
// debug level.  It is a no-op unless log is at debug level or lower.
func SetSDKLogListener(log *logrus.Entry) {
	if !log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		azlog.SetListener(nil)
		return
	}

	azlog.SetEvents(azlog.EventRequest, azlog.EventResponse, azlog.EventRetryPolicy, azlog.EventLRO)
	azlog.SetListener(func(event azlog.Event, message string) {
		log.WithField("sdk_event", string(event)).Debug(message)
	})
}
