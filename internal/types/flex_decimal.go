// flex_decimal.go
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

package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexDecimal is a fixed-point decimal with one fractional digit that can be
// unmarshaled from either a JSON number or a JSON string. The nodejs service
// stored these as postgres decimal(3,1) columns, which serialize as strings
// ("2.5"), while client forms may submit plain numbers. Marshals as a string
// to keep the wire format the browser client already parses.
type FlexDecimal float64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexDecimal) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	// Try unmarshaling as a number first
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexDecimal(n)
		return nil
	}

	// Try unmarshaling as a string
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		val, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("FlexDecimal: invalid decimal string %q: %w", s, err)
		}
		*f = FlexDecimal(val)
		return nil
	}

	return fmt.Errorf("FlexDecimal: unexpected type, expected number or string")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexDecimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatFloat(float64(f), 'f', 1, 64))
}

// Float64 converts FlexDecimal back to float64.
func (f FlexDecimal) Float64() float64 {
	return float64(f)
}
