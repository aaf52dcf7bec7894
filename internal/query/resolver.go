// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Query parameter names understood by [Resolve].
const (
	ParamFields = "fields"
	ParamExpand = "expand"
	ParamLimit  = "limit"
	ParamOffset = "offset"
	ParamOrder  = "order"
)

const (
	// DefaultLimit is used when a list route does not configure one.
	DefaultLimit = 100
	// MaxLimit bounds the page size when a list route does not configure one.
	MaxLimit = 1000
	// DefaultOrder is applied to list routes without an explicit order.
	DefaultOrder = "-created_at"

	listSeparator = ","
)

var (
	identifierPattern   = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
	relationPathPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*(\.[a-z_][a-z0-9_]*)*$`)
)

// Config declares the query shape of one route.
type Config struct {
	// DefaultRelations are loaded when the request has no `expand` parameter.
	DefaultRelations []string `yaml:"default_relations" json:"default_relations"`

	// DefaultFields are projected when the request has no `fields` parameter.
	// Nil means every attribute.
	DefaultFields []string `yaml:"default_fields" json:"default_fields"`

	// AllowedFields is the closed set of attributes a caller may request.
	// Empty disables the check.
	AllowedFields []string `yaml:"allowed_fields" json:"allowed_fields"`

	// AllowedRelations is the closed set of relation paths a caller may
	// expand. Empty disables the check; syntax is always validated.
	AllowedRelations []string `yaml:"allowed_relations" json:"allowed_relations"`

	// IsList enables pagination and ordering.
	IsList bool `yaml:"is_list" json:"is_list"`

	DefaultLimit int    `yaml:"default_limit" json:"default_limit"`
	MaxLimit     int    `yaml:"max_limit" json:"max_limit"`
	DefaultOrder string `yaml:"default_order" json:"default_order"`
}

// Validate checks that the declaration is self-consistent: defaults are
// within the allow-lists, relation paths are well formed and limits are
// sane. Routes call it once when the router is built.
func (c Config) Validate() error {
	for _, f := range c.DefaultFields {
		if !identifierPattern.MatchString(f) {
			return fmt.Errorf("%w: default field %q is not an attribute name", ErrInvalidConfig, f)
		}
		if len(c.AllowedFields) > 0 && !slices.Contains(c.AllowedFields, f) {
			return fmt.Errorf("%w: default field %q is not allowed", ErrInvalidConfig, f)
		}
	}

	for _, r := range c.DefaultRelations {
		if !relationPathPattern.MatchString(r) {
			return fmt.Errorf("%w: default relation %q is malformed", ErrInvalidConfig, r)
		}
		if len(c.AllowedRelations) > 0 && !slices.Contains(c.AllowedRelations, r) {
			return fmt.Errorf("%w: default relation %q is not allowed", ErrInvalidConfig, r)
		}
	}

	if c.DefaultLimit < 0 || c.MaxLimit < 0 {
		return fmt.Errorf("%w: limits must be non-negative", ErrInvalidConfig)
	}
	if c.MaxLimit > 0 && c.DefaultLimit > c.MaxLimit {
		return fmt.Errorf("%w: default limit %d exceeds max limit %d", ErrInvalidConfig, c.DefaultLimit, c.MaxLimit)
	}

	if c.DefaultOrder != "" {
		if _, err := parseOrder(c.DefaultOrder, c.AllowedFields); err != nil {
			return fmt.Errorf("%w: default order: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}

// Resolve validates rawQuery against cfg and builds a [Descriptor].
//
// Errors are [*InvalidFieldError], [*InvalidRelationError] or
// [*InvalidPaginationError]; no descriptor is produced on error.
func Resolve(rawQuery url.Values, cfg Config) (Descriptor, error) {
	d := Descriptor{isList: cfg.IsList}

	fields, err := resolveFields(rawQuery, cfg)
	if err != nil {
		return Descriptor{}, err
	}
	d.fields = fields

	relations, err := resolveRelations(rawQuery, cfg)
	if err != nil {
		return Descriptor{}, err
	}
	d.relations = relations

	if !cfg.IsList {
		return d, nil
	}

	pagination, err := resolvePagination(rawQuery, cfg)
	if err != nil {
		return Descriptor{}, err
	}
	d.pagination = pagination

	order, err := resolveOrder(rawQuery, cfg)
	if err != nil {
		return Descriptor{}, err
	}
	d.order = order
	d.hasOrder = true

	return d, nil
}

func resolveFields(rawQuery url.Values, cfg Config) ([]string, error) {
	candidates, ok := splitParam(rawQuery, ParamFields)
	if !ok || len(candidates) == 0 {
		if cfg.DefaultFields == nil {
			return nil, nil
		}
		return slices.Clone(cfg.DefaultFields), nil
	}

	for _, field := range candidates {
		if !identifierPattern.MatchString(field) {
			return nil, &InvalidFieldError{Param: ParamFields, Field: field}
		}
		if len(cfg.AllowedFields) > 0 && !slices.Contains(cfg.AllowedFields, field) {
			return nil, &InvalidFieldError{Param: ParamFields, Field: field}
		}
	}

	return candidates, nil
}

// resolveRelations treats a present-but-empty `expand` as "no relations",
// which is how callers opt out of the route defaults.
func resolveRelations(rawQuery url.Values, cfg Config) ([]string, error) {
	candidates, ok := splitParam(rawQuery, ParamExpand)
	if !ok {
		return slices.Clone(cfg.DefaultRelations), nil
	}

	for _, relation := range candidates {
		if !relationPathPattern.MatchString(relation) {
			return nil, &InvalidRelationError{Relation: relation, Reason: "malformed"}
		}
		if len(cfg.AllowedRelations) > 0 && !slices.Contains(cfg.AllowedRelations, relation) {
			return nil, &InvalidRelationError{Relation: relation, Reason: "not allowed"}
		}
	}

	return candidates, nil
}

func resolvePagination(rawQuery url.Values, cfg Config) (Pagination, error) {
	defaultLimit := cfg.DefaultLimit
	if defaultLimit == 0 {
		defaultLimit = DefaultLimit
	}
	maxLimit := cfg.MaxLimit
	if maxLimit == 0 {
		maxLimit = MaxLimit
	}

	limit, err := parseNonNegative(rawQuery, ParamLimit, defaultLimit)
	if err != nil {
		return Pagination{}, err
	}
	offset, err := parseNonNegative(rawQuery, ParamOffset, 0)
	if err != nil {
		return Pagination{}, err
	}

	return Pagination{Limit: min(limit, maxLimit), Offset: offset}, nil
}

func resolveOrder(rawQuery url.Values, cfg Config) (Order, error) {
	raw := strings.TrimSpace(rawQuery.Get(ParamOrder))
	if raw == "" {
		raw = cfg.DefaultOrder
	}
	if raw == "" {
		raw = DefaultOrder
	}

	return parseOrder(raw, cfg.AllowedFields)
}

func parseOrder(raw string, allowed []string) (Order, error) {
	order := Order{Field: raw}
	if strings.HasPrefix(raw, "-") {
		order = Order{Field: raw[1:], Desc: true}
	}

	if !identifierPattern.MatchString(order.Field) {
		return Order{}, &InvalidFieldError{Param: ParamOrder, Field: order.Field}
	}
	if len(allowed) > 0 && !slices.Contains(allowed, order.Field) {
		return Order{}, &InvalidFieldError{Param: ParamOrder, Field: order.Field}
	}

	return order, nil
}

func parseNonNegative(rawQuery url.Values, param string, fallback int) (int, error) {
	if !rawQuery.Has(param) {
		return fallback, nil
	}

	raw := strings.TrimSpace(rawQuery.Get(param))
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, &InvalidPaginationError{Param: param, Value: raw}
	}

	return value, nil
}

// splitParam joins every value of param and splits it on commas. Segments
// are trimmed, empty segments dropped and duplicates collapsed keeping the
// first occurrence. ok reports whether the parameter was present at all.
func splitParam(rawQuery url.Values, param string) (parts []string, ok bool) {
	values, ok := rawQuery[param]
	if !ok {
		return nil, false
	}

	parts = make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, listSeparator) {
			part = strings.TrimSpace(part)
			if part == "" || slices.Contains(parts, part) {
				continue
			}
			parts = append(parts, part)
		}
	}

	return parts, true
}
