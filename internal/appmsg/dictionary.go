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

import "fmt"

// Type is the wire type of a tuple value.
type Type uint8

const (
	TypeByteArray Type = 0
	TypeCString   Type = 1
	TypeUint      Type = 2
	TypeInt       Type = 3
)

func (t Type) String() string {
	switch t {
	case TypeByteArray:
		return "bytes"
	case TypeCString:
		return "cstring"
	case TypeUint:
		return "uint"
	case TypeInt:
		return "int"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// Value is a typed tuple value. Integer values keep their wire width so a
// dictionary can be re-encoded byte for byte.
type Value struct {
	typ   Type
	width int
	num   int64
	str   string
	raw   []byte
}

// Int32 returns a signed 32-bit value.
func Int32(v int32) Value {
	return Value{typ: TypeInt, width: 4, num: int64(v)}
}

// Uint8 returns an unsigned byte value.
func Uint8(v uint8) Value {
	return Value{typ: TypeUint, width: 1, num: int64(v)}
}

// Bool returns an unsigned byte value of 1 or 0.
func Bool(v bool) Value {
	if v {
		return Uint8(1)
	}
	return Uint8(0)
}

// CString returns a text value.
func CString(s string) Value {
	return Value{typ: TypeCString, str: s}
}

// Bytes returns a raw byte array value.
func Bytes(b []byte) Value {
	return Value{typ: TypeByteArray, raw: append([]byte(nil), b...)}
}

// Type returns the wire type.
func (v Value) Type() Type { return v.typ }

// IsInteger reports whether v holds a signed or unsigned integer.
func (v Value) IsInteger() bool {
	return v.typ == TypeInt || v.typ == TypeUint
}

// AsInt32 returns the value as an int32. Narrower integers widen; ok is
// false for non-integer values.
func (v Value) AsInt32() (int32, bool) {
	if !v.IsInteger() {
		return 0, false
	}
	return int32(v.num), true
}

// AsBool treats any non-zero integer as true.
func (v Value) AsBool() (bool, bool) {
	if !v.IsInteger() {
		return false, false
	}
	return v.num != 0, true
}

// AsString returns the text of a cstring value.
func (v Value) AsString() (string, bool) {
	if v.typ != TypeCString {
		return "", false
	}
	return v.str, true
}

func (v Value) String() string {
	switch v.typ {
	case TypeCString:
		return fmt.Sprintf("%q", v.str)
	case TypeInt, TypeUint:
		return fmt.Sprintf("%d", v.num)
	default:
		return fmt.Sprintf("%x", v.raw)
	}
}

// Tuple is one key/value pair of a dictionary.
type Tuple struct {
	Key   Key
	Value Value
}

// Dictionary is an ordered sequence of tuples. Order is significant: it is
// the order the host iterates them in.
type Dictionary []Tuple

// Add appends a tuple and returns the extended dictionary.
func (d Dictionary) Add(key Key, v Value) Dictionary {
	return append(d, Tuple{Key: key, Value: v})
}

// Get returns the first value stored under key.
func (d Dictionary) Get(key Key) (Value, bool) {
	for _, t := range d {
		if t.Key == key {
			return t.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the tuple keys in order.
func (d Dictionary) Keys() []Key {
	keys := make([]Key, len(d))
	for i, t := range d {
		keys[i] = t.Key
	}
	return keys
}
