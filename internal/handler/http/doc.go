// Package http implements the storefront HTTP API.
//
// It wires the /store/products routes, resolves the query shape of each
// request (TransformQuery), enforces publishable API key scopes when the
// publishable_api_keys flag is on, and projects products to the requested
// fields and relations. Tracing, access logging, metrics and response
// compression are handled here before requests reach the service layer.
package http
