// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// storefront server handlers and middleware.
//
// The Msg* constants are the messages written into error response bodies
// in place of server-side error details.
package app

const (
	// MsgInternalServerError replaces the details of any 5xx failure.
	MsgInternalServerError = "An unknown error occurred."

	// MsgUpstreamError is returned when the search engine fails or answers
	// with something the server cannot use.
	MsgUpstreamError = "The search engine could not process the request."

	// MsgRequestTimedOut is the body of requests cut off by the server
	// request timeout.
	MsgRequestTimedOut = `{"type":"unknown_error","code":"request_timeout","message":"The request timed out."}`
)
