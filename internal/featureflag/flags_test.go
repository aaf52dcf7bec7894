package featureflag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_IsFeatureEnabled(t *testing.T) {
	known := []Flag{
		{Key: "on_by_default", Default: true},
		{Key: "off_by_default"},
	}

	tests := []struct {
		name      string
		overrides map[string]bool
		key       string
		want      bool
	}{
		{name: "default on", key: "on_by_default", want: true},
		{name: "default off", key: "off_by_default", want: false},
		{name: "override enables", overrides: map[string]bool{"off_by_default": true}, key: "off_by_default", want: true},
		{name: "override disables", overrides: map[string]bool{"on_by_default": false}, key: "on_by_default", want: false},
		{name: "override keys are case-insensitive", overrides: map[string]bool{" OFF_BY_DEFAULT ": true}, key: "off_by_default", want: true},
		{name: "lookup keys are case-insensitive", key: "ON_BY_DEFAULT", want: true},
		{name: "unknown flag is disabled", key: "nope", want: false},
		{name: "unknown flag from config", overrides: map[string]bool{"extra": true}, key: "extra", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter(known, tt.overrides)
			assert.Equal(t, tt.want, r.IsFeatureEnabled(tt.key))
		})
	}
}

func TestRouter_Enabled(t *testing.T) {
	r := NewRouter(Registry, map[string]bool{PublishableAPIKeys.Key: true, "b_flag": true, "c_flag": false})
	assert.Equal(t, []string{"b_flag", PublishableAPIKeys.Key}, r.Enabled())
}

func TestRouter_Nil(t *testing.T) {
	var r *Router
	assert.False(t, r.IsFeatureEnabled(PublishableAPIKeys.Key))
	assert.Nil(t, r.Enabled())
}
