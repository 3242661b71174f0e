// validation.go
//
// A scalable, high performance drop-in replacement for the realty-dash nodejs data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of realtydash.
// realtydash is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// realtydash is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with realtydash.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package validation holds the per-entity insert schemas: required fields,
// type checks, label sets, defaults, and unknown-field rejection. Each
// validator returns the typed payload plus an itemized list of field errors,
// mirroring the zod error list the browser client renders.
package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/localnerve/realtydash/internal/types"
)

// FieldError is a single validation issue tied to one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations collects field errors while a validator walks the payload.
type Violations []FieldError

func (v *Violations) add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// Empty reports whether no violations were collected.
func (v Violations) Empty() bool { return len(v) == 0 }

// parseObject decodes body into a raw field map, or records a single
// top-level violation when the body is not a JSON object.
func parseObject(body []byte) (map[string]json.RawMessage, Violations) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, Violations{{Field: "", Message: "expected a JSON object"}}
	}
	return raw, nil
}

// checkUnknown records a violation for every field not in the schema.
func checkUnknown(raw map[string]json.RawMessage, allowed []string, v *Violations) {
	for field := range raw {
		known := false
		for _, name := range allowed {
			if field == name {
				known = true
				break
			}
		}
		if !known {
			v.add(field, "unknown field")
		}
	}
}

func isNull(data json.RawMessage) bool {
	return string(data) == "null"
}

// requireString decodes a required string field.
func requireString(raw map[string]json.RawMessage, field string, v *Violations) string {
	data, ok := raw[field]
	if !ok || isNull(data) {
		v.add(field, "required")
		return ""
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		v.add(field, "must be a string")
		return ""
	}
	return value
}

// requireInt decodes a required integer field, rejecting fractional numbers.
func requireInt(raw map[string]json.RawMessage, field string, v *Violations) int {
	data, ok := raw[field]
	if !ok || isNull(data) {
		v.add(field, "required")
		return 0
	}
	return decodeInt(data, field, v)
}

// requireDecimal decodes a required fixed-point decimal field, accepting
// either a JSON number or a numeric string.
func requireDecimal(raw map[string]json.RawMessage, field string, v *Violations) types.FlexDecimal {
	data, ok := raw[field]
	if !ok || isNull(data) {
		v.add(field, "required")
		return 0
	}

	var value types.FlexDecimal
	if err := json.Unmarshal(data, &value); err != nil {
		v.add(field, "must be a decimal number")
		return 0
	}
	return value
}

// optionalString decodes an optional string field; absent and null both map
// to nil.
func optionalString(raw map[string]json.RawMessage, field string, v *Violations) *string {
	data, ok := raw[field]
	if !ok || isNull(data) {
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		v.add(field, "must be a string")
		return nil
	}
	return &value
}

// stringWithDefault decodes an optional string field with a default.
func stringWithDefault(raw map[string]json.RawMessage, field, defaultValue string, v *Violations) string {
	data, ok := raw[field]
	if !ok || isNull(data) {
		return defaultValue
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		v.add(field, "must be a string")
		return defaultValue
	}
	return value
}

// intWithDefault decodes an optional integer field with a default.
func intWithDefault(raw map[string]json.RawMessage, field string, defaultValue int, v *Violations) int {
	data, ok := raw[field]
	if !ok || isNull(data) {
		return defaultValue
	}
	return decodeInt(data, field, v)
}

func decodeInt(data json.RawMessage, field string, v *Violations) int {
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		v.add(field, "must be an integer")
		return 0
	}
	if value != math.Trunc(value) {
		v.add(field, "must be an integer")
		return 0
	}
	return int(value)
}

// checkLabel records a violation when value is not one of the allowed labels.
func checkLabel(field, value string, allowed []string, v *Violations) {
	for _, label := range allowed {
		if value == label {
			return
		}
	}
	v.add(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
}
