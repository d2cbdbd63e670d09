package abi

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"
)

// The codec operates in two modes. Top-level encoding is used when a value is
// itself one positional argument: variable-size values are written in their
// minimal raw form, the argument boundary delimiting them. Nested encoding is
// used when a value is embedded inside a composite: variable-size values are
// prefixed with a 4-byte big-endian byte-length header so the containing
// decoder knows how much to consume.

const lengthHeaderSize = 4

// EncodeTopLevel encodes a standalone positional argument.
func EncodeTopLevel(value TypedValue) ([]byte, error) {
	t := value.typ
	switch t.kind {
	case KindU8, KindU16, KindU32, KindU64:
		return minimalUnsignedBytes(value.unsigned), nil
	case KindI8, KindI16, KindI32, KindI64:
		return signedBytes(big.NewInt(value.signed)), nil
	case KindBigUint:
		if value.big.Sign() < 0 {
			return nil, fmt.Errorf("%w: negative BigUint", ErrCodec)
		}
		return value.big.Bytes(), nil
	case KindBigInt:
		return signedBytes(value.big), nil
	case KindBool:
		if value.boolean {
			return []byte{0x01}, nil
		}
		return []byte{}, nil
	case KindAddress:
		return encodeAddressPayload(value)
	case KindBytes, KindString, KindTokenIdentifier:
		return value.raw, nil
	case KindOption:
		if !value.set {
			return []byte{}, nil
		}
		var buf bytes.Buffer
		buf.WriteByte(0x01)
		if err := encodeNested(&buf, value.items[0]); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case KindOptional:
		if !value.set {
			return []byte{}, nil
		}
		return EncodeTopLevel(value.items[0])
	case KindList:
		var buf bytes.Buffer
		for _, item := range value.items {
			if err := encodeNested(&buf, item); err != nil {
				return nil, err
			}
		}
		return buf.Bytes(), nil
	case KindArray:
		if len(value.items) != t.ArrayLength() {
			return nil, fmt.Errorf("%w: array of %d items, type declares %d", ErrCodec, len(value.items), t.ArrayLength())
		}
		var buf bytes.Buffer
		for _, item := range value.items {
			if err := encodeNested(&buf, item); err != nil {
				return nil, err
			}
		}
		return buf.Bytes(), nil
	case KindTuple:
		var buf bytes.Buffer
		for _, member := range value.items {
			if err := encodeNested(&buf, member); err != nil {
				return nil, err
			}
		}
		return buf.Bytes(), nil
	case KindVariadic, KindMulti:
		return nil, fmt.Errorf("%w: %s is not a single value; it expands into separate arguments", ErrCodec, t)
	}
	panic("unknown Kind")
}

// EncodeNested encodes a value as it appears embedded inside a composite.
func EncodeNested(value TypedValue) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeNested(&buf, value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeNested(buf *bytes.Buffer, value TypedValue) error {
	t := value.typ
	switch t.kind {
	case KindU8, KindU16, KindU32, KindU64:
		writeFixedWidthUnsigned(buf, value.unsigned, t.numericWidth())
		return nil
	case KindI8, KindI16, KindI32, KindI64:
		// Two's complement: reinterpreting as unsigned keeps the low bytes.
		writeFixedWidthUnsigned(buf, uint64(value.signed), t.numericWidth())
		return nil
	case KindBigUint:
		if value.big.Sign() < 0 {
			return fmt.Errorf("%w: negative BigUint", ErrCodec)
		}
		return writeLengthPrefixed(buf, value.big.Bytes())
	case KindBigInt:
		return writeLengthPrefixed(buf, signedBytes(value.big))
	case KindBool:
		if value.boolean {
			buf.WriteByte(0x01)
		} else {
			buf.WriteByte(0x00)
		}
		return nil
	case KindAddress:
		payload, err := encodeAddressPayload(value)
		if err != nil {
			return err
		}
		buf.Write(payload)
		return nil
	case KindBytes, KindString, KindTokenIdentifier:
		return writeLengthPrefixed(buf, value.raw)
	case KindOption:
		// The presence marker makes nested Options self-delimiting,
		// so no length header is needed.
		if !value.set {
			buf.WriteByte(0x00)
			return nil
		}
		buf.WriteByte(0x01)
		return encodeNested(buf, value.items[0])
	case KindList:
		var inner bytes.Buffer
		for _, item := range value.items {
			if err := encodeNested(&inner, item); err != nil {
				return err
			}
		}
		return writeLengthPrefixed(buf, inner.Bytes())
	case KindArray:
		if len(value.items) != t.ArrayLength() {
			return fmt.Errorf("%w: array of %d items, type declares %d", ErrCodec, len(value.items), t.ArrayLength())
		}
		for _, item := range value.items {
			if err := encodeNested(buf, item); err != nil {
				return err
			}
		}
		return nil
	case KindTuple:
		for _, member := range value.items {
			if err := encodeNested(buf, member); err != nil {
				return err
			}
		}
		return nil
	case KindOptional, KindVariadic, KindMulti:
		return fmt.Errorf("%w: %s has no nested encoding", ErrCodec, t)
	}
	panic("unknown Kind")
}

// DecodeTopLevel reconstructs a standalone positional argument of type t from
// its raw bytes. The whole buffer must be consumed.
func DecodeTopLevel(t *Type, data []byte) (TypedValue, error) {
	switch t.kind {
	case KindU8, KindU16, KindU32, KindU64:
		if len(data) > t.numericWidth() {
			return TypedValue{}, fmt.Errorf("%w: %d bytes exceed %s width", ErrCodec, len(data), t)
		}
		return TypedValue{typ: t, unsigned: new(big.Int).SetBytes(data).Uint64()}, nil
	case KindI8, KindI16, KindI32, KindI64:
		if len(data) > t.numericWidth() {
			return TypedValue{}, fmt.Errorf("%w: %d bytes exceed %s width", ErrCodec, len(data), t)
		}
		return TypedValue{typ: t, signed: signedFromBytes(data).Int64()}, nil
	case KindBigUint:
		return TypedValue{typ: t, big: new(big.Int).SetBytes(data)}, nil
	case KindBigInt:
		return TypedValue{typ: t, big: signedFromBytes(data)}, nil
	case KindBool:
		return decodeTopLevelBool(data)
	case KindAddress:
		if len(data) != addressPayloadSize {
			return TypedValue{}, fmt.Errorf("%w: address payload must be %d bytes, got %d", ErrCodec, addressPayloadSize, len(data))
		}
		return TypedValue{typ: t, raw: data}, nil
	case KindBytes, KindString, KindTokenIdentifier:
		return TypedValue{typ: t, raw: data}, nil
	case KindOption:
		if len(data) == 0 {
			return TypedValue{typ: t}, nil
		}
		if data[0] != 0x01 {
			return TypedValue{}, fmt.Errorf("%w: invalid option marker 0x%02x", ErrCodec, data[0])
		}
		payload, err := DecodeNested(t.ElemType(), data[1:])
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{typ: t, items: []TypedValue{payload}, set: true}, nil
	case KindOptional:
		payload, err := DecodeTopLevel(t.ElemType(), data)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{typ: t, items: []TypedValue{payload}, set: true}, nil
	case KindList:
		r := newByteReader(data)
		var items []TypedValue
		for !r.empty() {
			item, err := decodeNested(r, t.ElemType())
			if err != nil {
				return TypedValue{}, err
			}
			items = append(items, item)
		}
		return TypedValue{typ: t, items: items}, nil
	case KindArray, KindTuple:
		r := newByteReader(data)
		value, err := decodeNested(r, t)
		if err != nil {
			return TypedValue{}, err
		}
		if !r.empty() {
			return TypedValue{}, fmt.Errorf("%w: %d trailing bytes after %s", ErrCodec, r.remaining(), t)
		}
		return value, nil
	case KindVariadic, KindMulti:
		return TypedValue{}, fmt.Errorf("%w: %s is not a single value; decode it through the serializer", ErrCodec, t)
	}
	panic("unknown Kind")
}

// DecodeNested reconstructs a value of type t from its nested encoding,
// requiring the whole buffer to be consumed.
func DecodeNested(t *Type, data []byte) (TypedValue, error) {
	r := newByteReader(data)
	value, err := decodeNested(r, t)
	if err != nil {
		return TypedValue{}, err
	}
	if !r.empty() {
		return TypedValue{}, fmt.Errorf("%w: %d trailing bytes after %s", ErrCodec, r.remaining(), t)
	}
	return value, nil
}

func decodeNested(r *byteReader, t *Type) (TypedValue, error) {
	switch t.kind {
	case KindU8, KindU16, KindU32, KindU64:
		data, err := r.readN(t.numericWidth())
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{typ: t, unsigned: new(big.Int).SetBytes(data).Uint64()}, nil
	case KindI8, KindI16, KindI32, KindI64:
		data, err := r.readN(t.numericWidth())
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{typ: t, signed: signedFromBytes(data).Int64()}, nil
	case KindBigUint:
		data, err := r.readLengthPrefixed()
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{typ: t, big: new(big.Int).SetBytes(data)}, nil
	case KindBigInt:
		data, err := r.readLengthPrefixed()
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{typ: t, big: signedFromBytes(data)}, nil
	case KindBool:
		data, err := r.readN(1)
		if err != nil {
			return TypedValue{}, err
		}
		if data[0] > 0x01 {
			return TypedValue{}, fmt.Errorf("%w: invalid boolean byte 0x%02x", ErrCodec, data[0])
		}
		return TypedValue{typ: t, boolean: data[0] == 0x01}, nil
	case KindAddress:
		data, err := r.readN(addressPayloadSize)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{typ: t, raw: data}, nil
	case KindBytes, KindString, KindTokenIdentifier:
		data, err := r.readLengthPrefixed()
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{typ: t, raw: data}, nil
	case KindOption:
		marker, err := r.readN(1)
		if err != nil {
			return TypedValue{}, err
		}
		switch marker[0] {
		case 0x00:
			return TypedValue{typ: t}, nil
		case 0x01:
			payload, err := decodeNested(r, t.ElemType())
			if err != nil {
				return TypedValue{}, err
			}
			return TypedValue{typ: t, items: []TypedValue{payload}, set: true}, nil
		default:
			return TypedValue{}, fmt.Errorf("%w: invalid option marker 0x%02x", ErrCodec, marker[0])
		}
	case KindList:
		payload, err := r.readLengthPrefixed()
		if err != nil {
			return TypedValue{}, err
		}
		inner := newByteReader(payload)
		var items []TypedValue
		for !inner.empty() {
			item, err := decodeNested(inner, t.ElemType())
			if err != nil {
				return TypedValue{}, err
			}
			items = append(items, item)
		}
		return TypedValue{typ: t, items: items}, nil
	case KindArray:
		items := make([]TypedValue, t.ArrayLength())
		for i := range items {
			item, err := decodeNested(r, t.ElemType())
			if err != nil {
				return TypedValue{}, err
			}
			items[i] = item
		}
		return TypedValue{typ: t, items: items}, nil
	case KindTuple:
		items := make([]TypedValue, len(t.typeParameters))
		for i, memberType := range t.typeParameters {
			member, err := decodeNested(r, memberType)
			if err != nil {
				return TypedValue{}, err
			}
			items[i] = member
		}
		return TypedValue{typ: t, items: items}, nil
	case KindOptional, KindVariadic, KindMulti:
		return TypedValue{}, fmt.Errorf("%w: %s has no nested encoding", ErrCodec, t)
	}
	panic("unknown Kind")
}

const addressPayloadSize = 32

func encodeAddressPayload(value TypedValue) ([]byte, error) {
	if len(value.raw) != addressPayloadSize {
		return nil, fmt.Errorf("%w: address payload must be %d bytes, got %d", ErrCodec, addressPayloadSize, len(value.raw))
	}
	return value.raw, nil
}

func decodeTopLevelBool(data []byte) (TypedValue, error) {
	switch {
	case len(data) == 0:
		return TypedValue{typ: TypeBool}, nil
	case len(data) == 1 && data[0] <= 0x01:
		return TypedValue{typ: TypeBool, boolean: data[0] == 0x01}, nil
	default:
		return TypedValue{}, fmt.Errorf("%w: invalid boolean payload", ErrCodec)
	}
}

// minimalUnsignedBytes strips leading zero bytes; zero becomes empty.
func minimalUnsignedBytes(value uint64) []byte {
	var scratch [8]byte
	binary.BigEndian.PutUint64(scratch[:], value)
	i := 0
	for i < 8 && scratch[i] == 0 {
		i++
	}
	return bytes.Clone(scratch[i:])
}

func writeFixedWidthUnsigned(buf *bytes.Buffer, value uint64, width int) {
	var scratch [8]byte
	binary.BigEndian.PutUint64(scratch[:], value)
	buf.Write(scratch[8-width:])
}

func writeLengthPrefixed(buf *bytes.Buffer, payload []byte) error {
	var header [lengthHeaderSize]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(payload)))
	buf.Write(header[:])
	buf.Write(payload)
	return nil
}

// signedBytes is the minimal big-endian two's complement representation;
// zero becomes empty.
func signedBytes(value *big.Int) []byte {
	switch value.Sign() {
	case 0:
		return []byte{}
	case 1:
		magnitude := value.Bytes()
		if magnitude[0]&0x80 != 0 {
			return append([]byte{0x00}, magnitude...)
		}
		return magnitude
	default:
		// Width: enough bytes to hold ~value, plus the sign bit.
		width := new(big.Int).Not(value).BitLen()/8 + 1
		complement := new(big.Int).Lsh(big.NewInt(1), uint(8*width))
		complement.Add(complement, value)
		payload := complement.Bytes()
		for len(payload) < width {
			payload = append([]byte{0xff}, payload...)
		}
		return payload
	}
}

// signedFromBytes interprets data as big-endian two's complement; empty is zero.
func signedFromBytes(data []byte) *big.Int {
	if len(data) == 0 {
		return new(big.Int)
	}
	value := new(big.Int).SetBytes(data)
	if data[0]&0x80 != 0 {
		offset := new(big.Int).Lsh(big.NewInt(1), uint(8*len(data)))
		value.Sub(value, offset)
	}
	return value
}

type byteReader struct {
	data []byte
	pos  int
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data}
}

func (r *byteReader) empty() bool {
	return r.pos >= len(r.data)
}

func (r *byteReader) remaining() int {
	return len(r.data) - r.pos
}

func (r *byteReader) readN(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, %d remaining", ErrCodec, n, r.remaining())
	}
	out := r.data[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

func (r *byteReader) readLengthPrefixed() ([]byte, error) {
	header, err := r.readN(lengthHeaderSize)
	if err != nil {
		return nil, err
	}
	length := int(binary.BigEndian.Uint32(header))
	return r.readN(length)
}
