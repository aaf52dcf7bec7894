// Package featureflag holds the named boolean switches that gate optional
// storefront behaviour.
//
// Flags are resolved once at startup from configuration. The HTTP layer
// consults a [Router] while building its routes, so a flag change requires
// a restart.
package featureflag

import (
	"sort"
	"strings"
)

// Flag describes a known feature flag.
type Flag struct {
	// Key is the name used in configuration ("publishable_api_keys").
	Key string
	// Default is used when configuration does not mention the flag.
	Default bool
	// Description is shown in startup logs.
	Description string
}

// Known flags.
var (
	PublishableAPIKeys = Flag{
		Key:         "publishable_api_keys",
		Default:     false,
		Description: "scope storefront requests to the sales channels of a publishable API key",
	}

	SalesChannels = Flag{
		Key:         "sales_channels",
		Default:     false,
		Description: "expose and filter products by sales channel",
	}
)

// Registry is the list of flags the application knows about.
var Registry = []Flag{PublishableAPIKeys, SalesChannels}

// Router answers whether a flag is enabled. It is read-only after
// construction and safe for concurrent use.
type Router struct {
	flags map[string]bool
}

// NewRouter resolves every flag in known against overrides. Override keys
// are matched case-insensitively; keys of unknown flags are kept so that
// [Router.IsFeatureEnabled] still answers for them.
func NewRouter(known []Flag, overrides map[string]bool) *Router {
	flags := make(map[string]bool, len(known)+len(overrides))
	for _, f := range known {
		flags[normalizeKey(f.Key)] = f.Default
	}
	for key, enabled := range overrides {
		flags[normalizeKey(key)] = enabled
	}

	return &Router{flags: flags}
}

// IsFeatureEnabled reports whether the flag named key is enabled. Unknown
// keys are disabled.
func (r *Router) IsFeatureEnabled(key string) bool {
	if r == nil {
		return false
	}
	return r.flags[normalizeKey(key)]
}

// Enabled returns the keys of all enabled flags, sorted.
func (r *Router) Enabled() []string {
	if r == nil {
		return nil
	}

	keys := make([]string, 0, len(r.flags))
	for key, enabled := range r.flags {
		if enabled {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	return keys
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
