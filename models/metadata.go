// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Metadata is a free-form key/value bag stored as jsonb.
// It implements [sql.Scanner] and [driver.Valuer] so repositories can scan
// the column directly into it.
type Metadata map[string]any

// Scan implements [sql.Scanner]. NULL is scanned as a nil map.
func (m *Metadata) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported metadata source type %T", src)
	}

	if len(raw) == 0 {
		*m = nil
		return nil
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("error decoding metadata: %w", err)
	}
	*m = decoded
	return nil
}

// Value implements [driver.Valuer].
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(map[string]any(m))
}
