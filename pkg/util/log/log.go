package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Azure/private-endpoint-dns/pkg/util/resourceid"
)

var (
	_, thisfile, _, _ = runtime.Caller(0)
	repopath          = strings.Replace(thisfile, "pkg/util/log/log.go", "", -1)
)

// GetLogger returns a consistently configured log entry.  level is parsed with
// logrus.ParseLevel; an invalid level falls back to info.
func GetLogger(level string) *logrus.Entry {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		l = logrus.InfoLevel
	}

	log := logrus.New()
	log.SetLevel(l)
	log.SetReportCaller(true)
	log.Formatter = &logrus.TextFormatter{
		FullTimestamp:    true,
		CallerPrettyfier: RelativeFilePathPrettier,
	}

	return logrus.NewEntry(log)
}

// RelativeFilePathPrettier changes absolute paths with relative paths
func RelativeFilePathPrettier(f *runtime.Frame) (string, string) {
	file := strings.TrimPrefix(f.File, repopath)
	function := f.Function[strings.LastIndexByte(f.Function, '/')+1:]
	return fmt.Sprintf("%s()", function), fmt.Sprintf(" %s:%d", file, f.Line)
}

// EnrichWithPath sets the request path on the log entry.
func EnrichWithPath(log *logrus.Entry, path string) *logrus.Entry {
	return log.WithField("request_path", path)
}

// EnrichWithEvent sets the Event Grid event id and type on the log entry.
func EnrichWithEvent(log *logrus.Entry, id, eventType string) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"event_id":   id,
		"event_type": eventType,
	})
}

// EnrichWithResourceID sets the resource id and its decoded parts on the log
// entry.  Ids which cannot be decoded are logged as-is.
func EnrichWithResourceID(log *logrus.Entry, resourceID string) *logrus.Entry {
	log = log.WithField("resource_id", resourceID)

	r, err := resourceid.Parse(resourceID)
	if err != nil {
		return log
	}

	return log.WithFields(logrus.Fields{
		"subscription_id":   r.SubscriptionID,
		"resource_group":    r.ResourceGroup,
		"resource_name":     r.ResourceName,
		"resource_type":     r.ResourceType,
		"resource_provider": r.ResourceProvider,
	})
}

// Info logs message at info level with the JSON form of context attached
// under the "event" field.  It never panics: failures to serialize context, or
// to write the entry, are ignored.
func Info(log *logrus.Entry, message string, context interface{}) {
	write(log, logrus.InfoLevel, message, context)
}

// Error logs err at error level with the JSON form of context attached, with
// the same guarantees as Info.
func Error(log *logrus.Entry, err error, context interface{}) {
	message := "<nil>"
	if err != nil {
		message = err.Error()
	}
	write(log, logrus.ErrorLevel, message, context)
}

func write(log *logrus.Entry, level logrus.Level, message string, context interface{}) {
	defer func() {
		_ = recover()
	}()

	if s, ok := marshalContext(context); ok {
		log = log.WithField("event", s)
	}

	log.Log(level, message)
}

func marshalContext(context interface{}) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()

	if context == nil {
		return "", false
	}

	b, err := json.MarshalIndent(context, "", "  ")
	if err != nil || string(b) == "null" {
		return "", false
	}

	return string(b), true
}
