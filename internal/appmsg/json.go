// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package appmsg

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"

	linkerrors "github.com/sirseerhq/weather-link/internal/errors"
)

// MarshalJSON writes d as a JSON object with one member per tuple, in
// order. Integers become numbers, strings stay strings and byte arrays are
// base64 encoded.
func (d Dictionary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, t := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(t.Key.String())
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')

		var v any
		switch t.Value.typ {
		case TypeInt, TypeUint:
			v = t.Value.num
		case TypeCString:
			v = t.Value.str
		default:
			v = base64.StdEncoding.EncodeToString(t.Value.raw)
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a flat JSON object into d, keeping member order.
// Member names are key names or decimal key numbers. Numbers decode as
// int32, booleans as a uint8 of 0 or 1 and strings as cstrings.
func (d *Dictionary) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", linkerrors.ErrMalformedMessage, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: dictionary must be a JSON object", linkerrors.ErrMalformedMessage)
	}

	out := Dictionary{}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", linkerrors.ErrMalformedMessage, err)
		}
		name, _ := tok.(string)
		key, err := ParseKey(name)
		if err != nil {
			return err
		}

		tok, err = dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", linkerrors.ErrMalformedMessage, err)
		}
		v, err := valueFromToken(tok)
		if err != nil {
			return fmt.Errorf("key %s: %w", key, err)
		}
		out = append(out, Tuple{Key: key, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", linkerrors.ErrMalformedMessage, err)
	}

	*d = out
	return nil
}

func valueFromToken(tok json.Token) (Value, error) {
	switch v := tok.(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil || n < math.MinInt32 || n > math.MaxInt32 {
			return Value{}, fmt.Errorf("%w: %s is not a 32-bit integer", linkerrors.ErrMalformedMessage, v)
		}
		return Int32(int32(n)), nil
	case bool:
		return Bool(v), nil
	case string:
		return CString(v), nil
	default:
		return Value{}, fmt.Errorf("%w: unsupported value %v", linkerrors.ErrMalformedMessage, tok)
	}
}
