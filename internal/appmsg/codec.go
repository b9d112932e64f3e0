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
	"encoding/binary"
	"fmt"
	"math"

	linkerrors "github.com/sirseerhq/weather-link/internal/errors"
)

// Buffer sizes negotiated when the message channel is opened.
const (
	DefaultInboxSize  = 1200
	DefaultOutboxSize = 500
)

const tupleHeaderSize = 4 + 1 + 2

// Encode serializes d in the host wire format: a one-byte tuple count
// followed by each tuple as a little-endian uint32 key, a type byte, a
// little-endian uint16 length and the value bytes. Strings carry their
// NUL terminator.
func Encode(d Dictionary) ([]byte, error) {
	if len(d) > math.MaxUint8 {
		return nil, fmt.Errorf("%w: %d tuples", linkerrors.ErrMessageTooLarge, len(d))
	}

	var buf bytes.Buffer
	buf.WriteByte(uint8(len(d)))
	for _, t := range d {
		data, err := valueBytes(t.Value)
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", t.Key, err)
		}
		if len(data) > math.MaxUint16 {
			return nil, fmt.Errorf("key %s: %w", t.Key, linkerrors.ErrMessageTooLarge)
		}
		_ = binary.Write(&buf, binary.LittleEndian, uint32(t.Key))
		buf.WriteByte(uint8(t.Value.typ))
		_ = binary.Write(&buf, binary.LittleEndian, uint16(len(data)))
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

// EncodeLimit encodes d and fails when the result does not fit in size bytes.
func EncodeLimit(d Dictionary, size int) ([]byte, error) {
	data, err := Encode(d)
	if err != nil {
		return nil, err
	}
	if len(data) > size {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", linkerrors.ErrMessageTooLarge, len(data), size)
	}
	return data, nil
}

// Decode parses the host wire format.
func Decode(data []byte) (Dictionary, error) {
	r := bytes.NewReader(data)

	count, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: missing tuple count", linkerrors.ErrMalformedMessage)
	}

	d := make(Dictionary, 0, count)
	for i := 0; i < int(count); i++ {
		var hdr struct {
			Key    uint32
			Type   uint8
			Length uint16
		}
		if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
			return nil, fmt.Errorf("%w: tuple %d header: %v", linkerrors.ErrMalformedMessage, i, err)
		}
		if int(hdr.Length) > r.Len() {
			return nil, fmt.Errorf("%w: tuple %d length %d exceeds remaining %d bytes",
				linkerrors.ErrMalformedMessage, i, hdr.Length, r.Len())
		}
		raw := make([]byte, hdr.Length)
		if _, err := r.Read(raw); err != nil && hdr.Length > 0 {
			return nil, fmt.Errorf("%w: tuple %d value: %v", linkerrors.ErrMalformedMessage, i, err)
		}
		v, err := parseValue(Type(hdr.Type), raw)
		if err != nil {
			return nil, fmt.Errorf("tuple %d (key %s): %w", i, Key(hdr.Key), err)
		}
		d = append(d, Tuple{Key: Key(hdr.Key), Value: v})
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", linkerrors.ErrMalformedMessage, r.Len())
	}
	return d, nil
}

func valueBytes(v Value) ([]byte, error) {
	switch v.typ {
	case TypeCString:
		return append([]byte(v.str), 0), nil
	case TypeByteArray:
		return v.raw, nil
	case TypeInt, TypeUint:
		buf := make([]byte, v.width)
		switch v.width {
		case 1:
			buf[0] = uint8(v.num)
		case 2:
			binary.LittleEndian.PutUint16(buf, uint16(v.num))
		case 4:
			binary.LittleEndian.PutUint32(buf, uint32(v.num))
		default:
			return nil, fmt.Errorf("%w: integer width %d", linkerrors.ErrMalformedMessage, v.width)
		}
		return buf, nil
	default:
		return nil, fmt.Errorf("%w: %s", linkerrors.ErrMalformedMessage, v.typ)
	}
}

func parseValue(typ Type, raw []byte) (Value, error) {
	switch typ {
	case TypeCString:
		if i := bytes.IndexByte(raw, 0); i >= 0 {
			raw = raw[:i]
		}
		return CString(string(raw)), nil
	case TypeByteArray:
		return Bytes(raw), nil
	case TypeInt, TypeUint:
		v := Value{typ: typ, width: len(raw)}
		switch len(raw) {
		case 1:
			if typ == TypeInt {
				v.num = int64(int8(raw[0]))
			} else {
				v.num = int64(raw[0])
			}
		case 2:
			u := binary.LittleEndian.Uint16(raw)
			if typ == TypeInt {
				v.num = int64(int16(u))
			} else {
				v.num = int64(u)
			}
		case 4:
			u := binary.LittleEndian.Uint32(raw)
			if typ == TypeInt {
				v.num = int64(int32(u))
			} else {
				v.num = int64(u)
			}
		default:
			return Value{}, fmt.Errorf("%w: integer width %d", linkerrors.ErrMalformedMessage, len(raw))
		}
		return v, nil
	default:
		return Value{}, fmt.Errorf("%w: %s", linkerrors.ErrMalformedMessage, typ)
	}
}
