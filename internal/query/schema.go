package query

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Schemas maps a route's schema name to its declaration.
type Schemas map[string]Config

type schemaFile struct {
	Schemas Schemas `yaml:"schemas"`
}

// LoadSchemas reads query schema declarations from a YAML file of the form
//
//	schemas:
//	  store_products_list:
//	    default_relations: [variants, images]
//	    is_list: true
//	    max_limit: 200
//
// Unknown keys are rejected and every declaration must pass [Config.Validate].
func LoadSchemas(path string) (Schemas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading query schema file: %w", err)
	}
	defer f.Close()

	return DecodeSchemas(f)
}

// DecodeSchemas is [LoadSchemas] over an arbitrary reader.
func DecodeSchemas(r io.Reader) (Schemas, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file schemaFile
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySchemaFile
		}
		return nil, fmt.Errorf("error decoding query schema file: %w", err)
	}

	for name, cfg := range file.Schemas {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("schema %q: %w", name, err)
		}
	}

	return file.Schemas, nil
}

// Lookup returns the declaration registered under name, or fallback when
// the schemas do not override it.
func (s Schemas) Lookup(name string, fallback Config) Config {
	if cfg, ok := s[name]; ok {
		return cfg
	}
	return fallback
}
