// Package query resolves the shape of a read request.
//
// A route declares a [Config]: which attributes a caller may project, which
// attributes and relations are used when the caller says nothing, and
// whether the route returns a list. [Resolve] validates the raw URL query
// against that declaration and produces an immutable [Descriptor] that the
// store layer turns into SELECT columns, eager-loaded relations, ordering
// and pagination.
//
// Resolution is a pure function of its inputs and is safe for concurrent use.
package query
