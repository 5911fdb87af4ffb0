package recover

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

// Panic recovers a panic and logs it with its stack.  It must be deferred
// directly.
func Panic(log *logrus.Entry) {
	if e := recover(); e != nil {
		log.Error(e)
		log.Info(string(debug.Stack()))
	}
}
