// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with [errors.Is]. Every error returned by
// [Resolve] matches exactly one of them.
var (
	// ErrInvalidField is matched by [*InvalidFieldError].
	ErrInvalidField = errors.New("invalid field")

	// ErrInvalidRelation is matched by [*InvalidRelationError].
	ErrInvalidRelation = errors.New("invalid relation")

	// ErrInvalidPagination is matched by [*InvalidPaginationError].
	ErrInvalidPagination = errors.New("invalid pagination")
)

// Schema configuration errors returned by [Config.Validate] and [LoadSchemas].
var (
	ErrInvalidConfig   = errors.New("invalid query schema configuration")
	ErrEmptySchemaFile = errors.New("empty query schema file")
)

// InvalidFieldError reports a requested attribute that is outside the
// route's allow-list, or is not a valid attribute name at all.
type InvalidFieldError struct {
	// Param is the query parameter that carried the field ("fields" or "order").
	Param string
	// Field is the offending attribute name.
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("requested %s [%s] is not valid", e.Param, e.Field)
}

func (e *InvalidFieldError) Is(target error) bool { return target == ErrInvalidField }

// Code returns the machine-readable error code.
func (e *InvalidFieldError) Code() string { return "invalid_field" }

// InvalidRelationError reports a malformed or disallowed relation path.
type InvalidRelationError struct {
	Relation string
	// Reason is "malformed" or "not allowed".
	Reason string
}

func (e *InvalidRelationError) Error() string {
	return fmt.Sprintf("requested relation [%s] is %s", e.Relation, e.Reason)
}

func (e *InvalidRelationError) Is(target error) bool { return target == ErrInvalidRelation }

func (e *InvalidRelationError) Code() string { return "invalid_relation" }

// InvalidPaginationError reports a non-numeric or negative limit/offset.
type InvalidPaginationError struct {
	Param string
	Value string
}

func (e *InvalidPaginationError) Error() string {
	return fmt.Sprintf("%s must be a non-negative integer, got %q", e.Param, e.Value)
}

func (e *InvalidPaginationError) Is(target error) bool { return target == ErrInvalidPagination }

func (e *InvalidPaginationError) Code() string { return "invalid_pagination" }
