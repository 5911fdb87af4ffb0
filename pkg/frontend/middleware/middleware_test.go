package middleware

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handler is responsible for defining a HTTP corresponding handler.
type Handler struct {
	Func http.HandlerFunc
}

// AddRoute adds the handler's route the to the router.
func (h Handler) AddRoute(r *mux.Router, path, method string) {
	r.NewRoute().Path(path).Methods(method).
		HandlerFunc(h.Func)
}

func GetTestHandler() Handler {
	return Handler{
		Func: func(rw http.ResponseWriter, req *http.Request) {
			_, _ = rw.Write([]byte("ack"))
		},
	}
}
