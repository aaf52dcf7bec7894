package query

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSchemaYAML = `
schemas:
  store_products_list:
    default_relations: [variants, images]
    is_list: true
    max_limit: 200
  store_products_retrieve:
    default_fields: [id, title]
    allowed_fields: [id, title, handle]
`

func TestDecodeSchemas(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		check   func(t *testing.T, s Schemas)
	}{
		{
			name:  "valid file",
			input: validSchemaYAML,
			check: func(t *testing.T, s Schemas) {
				require.Len(t, s, 2)

				list := s["store_products_list"]
				assert.True(t, list.IsList)
				assert.Equal(t, 200, list.MaxLimit)
				assert.Equal(t, []string{"variants", "images"}, list.DefaultRelations)

				retrieve := s["store_products_retrieve"]
				assert.False(t, retrieve.IsList)
				assert.Equal(t, []string{"id", "title"}, retrieve.DefaultFields)
			},
		},
		{
			name:    "empty file",
			input:   "",
			wantErr: ErrEmptySchemaFile,
		},
		{
			name: "invalid declaration",
			input: `
schemas:
  broken:
    default_fields: [secret]
    allowed_fields: [id]
`,
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := DecodeSchemas(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestDecodeSchemas_UnknownKeyIsRejected(t *testing.T) {
	_, err := DecodeSchemas(strings.NewReader(`
schemas:
  store_products_list:
    default_relation: [variants]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_relation")
}

func TestLoadSchemas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemas.yml")
	require.NoError(t, os.WriteFile(path, []byte(validSchemaYAML), 0o600))

	s, err := LoadSchemas(path)
	require.NoError(t, err)
	assert.Len(t, s, 2)

	_, err = LoadSchemas(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestSchemas_Lookup(t *testing.T) {
	s := Schemas{"known": {IsList: true}}
	fallback := Config{DefaultLimit: 5}

	assert.True(t, s.Lookup("known", fallback).IsList)
	assert.Equal(t, fallback, s.Lookup("other", fallback))

	var empty Schemas
	assert.Equal(t, fallback, empty.Lookup("known", fallback))
}

func TestDescriptorContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	d, err := Resolve(nil, listConfig())
	require.NoError(t, err)

	got, ok := FromContext(WithDescriptor(context.Background(), d))
	require.True(t, ok)
	assert.Equal(t, d, got)
}
