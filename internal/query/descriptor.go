package query

import (
	"context"
	"slices"
	"strings"
)

// Pagination is the resolved window of a list request.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Order is the resolved sort key of a list request.
type Order struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc"`
}

// Descriptor is the validated, normalized shape of a single request.
//
// A Descriptor is immutable: all state is unexported and accessors return
// copies, so it can be shared between middleware, handler and store
// without defensive copying by callers. The zero value describes a
// single-entity request with no projection and no relations.
type Descriptor struct {
	fields     []string
	relations  []string
	isList     bool
	pagination Pagination
	order      Order
	hasOrder   bool
}

// Fields returns the projected attributes in request order. A nil result
// means no projection was requested or configured: all attributes.
func (d Descriptor) Fields() []string {
	return slices.Clone(d.fields)
}

// Relations returns the relation paths to eager-load, in request order.
func (d Descriptor) Relations() []string {
	return slices.Clone(d.relations)
}

// IsList reports whether the descriptor was resolved for a list route.
func (d Descriptor) IsList() bool {
	return d.isList
}

// Pagination returns the resolved window. ok is false for single-entity
// descriptors.
func (d Descriptor) Pagination() (p Pagination, ok bool) {
	return d.pagination, d.isList
}

// Order returns the resolved sort key. ok is false when no ordering applies.
func (d Descriptor) Order() (o Order, ok bool) {
	return d.order, d.hasOrder
}

// HasField reports whether name is projected. It is true for every name
// when no projection is set.
func (d Descriptor) HasField(name string) bool {
	if d.fields == nil {
		return true
	}
	return slices.Contains(d.fields, name)
}

// Includes reports whether path must be loaded: it was requested directly
// or it is an ancestor of a requested nested path ("variants" for
// "variants.prices").
func (d Descriptor) Includes(path string) bool {
	for _, r := range d.relations {
		if r == path || strings.HasPrefix(r, path+".") {
			return true
		}
	}
	return false
}

type descriptorCtxKey struct{}

// WithDescriptor returns a copy of ctx carrying d.
func WithDescriptor(ctx context.Context, d Descriptor) context.Context {
	return context.WithValue(ctx, descriptorCtxKey{}, d)
}

// FromContext returns the descriptor stored by [WithDescriptor].
func FromContext(ctx context.Context) (Descriptor, bool) {
	d, ok := ctx.Value(descriptorCtxKey{}).(Descriptor)
	return d, ok
}
