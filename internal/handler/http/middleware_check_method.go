// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
)

// CheckHTTPMethod answers requests chi would reject with 405.
//
// The storefront replies 404 with the usual JSON error body instead, so that
// unsupported methods do not reveal which paths exist. The request has
// already passed the router middleware stack and is not dispatched again.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, fmt.Errorf("%w: %s %s", errRouteNotFound, r.Method, r.URL.Path), "CheckHTTPMethod")
}
