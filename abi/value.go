package abi

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/erdkit/erdkit/common/hexutil"
	"github.com/erdkit/erdkit/core"
)

// TypedValue pairs a value with its catalogue Type. Which payload field is
// meaningful depends on the type's Kind; constructors below are the only
// intended way to build one. TypedValues are immutable after construction.
type TypedValue struct {
	typ *Type

	unsigned uint64       // u8..u64
	signed   int64        // i8..i64
	big      *big.Int     // BigUint, BigInt
	raw      []byte       // Address, bytes, string, TokenIdentifier
	boolean  bool         // bool
	items    []TypedValue // Option payload, List/Array/Tuple/Variadic/Multi members
	set      bool         // Option/Optional presence
}

func (v TypedValue) Type() *Type {
	return v.typ
}

func (v TypedValue) Uint64() uint64 {
	return v.unsigned
}

func (v TypedValue) Int64() int64 {
	return v.signed
}

// BigInt returns a copy of the big-integer payload of BigUint/BigInt values.
func (v TypedValue) BigInt() *big.Int {
	if v.big == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v.big)
}

func (v TypedValue) Bool() bool {
	return v.boolean
}

func (v TypedValue) Bytes() []byte {
	return v.raw
}

// Text returns the string payload of string/TokenIdentifier values.
func (v TypedValue) Text() string {
	return string(v.raw)
}

// Address reconstructs the address payload of an Address value.
func (v TypedValue) Address() core.Address {
	addr, err := core.NewAddressFromBytes(v.raw)
	if err != nil {
		return core.EmptyAddress
	}
	return addr
}

// IsSet reports Option/Optional presence.
func (v TypedValue) IsSet() bool {
	return v.set
}

// Items returns the members of container values (and the payload of a set
// Option as a single-element slice).
func (v TypedValue) Items() []TypedValue {
	return v.items
}

func NewU8Value(value uint8) TypedValue {
	return TypedValue{typ: TypeU8, unsigned: uint64(value)}
}

func NewU16Value(value uint16) TypedValue {
	return TypedValue{typ: TypeU16, unsigned: uint64(value)}
}

func NewU32Value(value uint32) TypedValue {
	return TypedValue{typ: TypeU32, unsigned: uint64(value)}
}

func NewU64Value(value uint64) TypedValue {
	return TypedValue{typ: TypeU64, unsigned: value}
}

func NewI8Value(value int8) TypedValue {
	return TypedValue{typ: TypeI8, signed: int64(value)}
}

func NewI16Value(value int16) TypedValue {
	return TypedValue{typ: TypeI16, signed: int64(value)}
}

func NewI32Value(value int32) TypedValue {
	return TypedValue{typ: TypeI32, signed: int64(value)}
}

func NewI64Value(value int64) TypedValue {
	return TypedValue{typ: TypeI64, signed: value}
}

func NewBigUintValue(value *big.Int) TypedValue {
	return TypedValue{typ: TypeBigUint, big: new(big.Int).Set(value)}
}

func NewBigUintFromUint64(value uint64) TypedValue {
	return TypedValue{typ: TypeBigUint, big: new(big.Int).SetUint64(value)}
}

func NewBigIntValue(value *big.Int) TypedValue {
	return TypedValue{typ: TypeBigInt, big: new(big.Int).Set(value)}
}

func NewBoolValue(value bool) TypedValue {
	return TypedValue{typ: TypeBool, boolean: value}
}

func NewAddressValue(value core.Address) TypedValue {
	return TypedValue{typ: TypeAddress, raw: value.Bytes()}
}

func NewBytesValue(value []byte) TypedValue {
	return TypedValue{typ: TypeBytes, raw: value}
}

func NewStringValue(value string) TypedValue {
	return TypedValue{typ: TypeString, raw: []byte(value)}
}

func NewTokenIdentifierValue(value string) TypedValue {
	return TypedValue{typ: TypeTokenIdentifier, raw: []byte(value)}
}

// NewOptionValue wraps a present payload.
func NewOptionValue(payload TypedValue) TypedValue {
	return TypedValue{
		typ:   NewOptionType(payload.typ),
		items: []TypedValue{payload},
		set:   true,
	}
}

// NewNoneValue is an absent Option of the given element type.
func NewNoneValue(elem *Type) TypedValue {
	return TypedValue{typ: NewOptionType(elem)}
}

// NewOptionalValue wraps a supplied optional argument.
func NewOptionalValue(payload TypedValue) TypedValue {
	return TypedValue{
		typ:   NewOptionalType(payload.typ),
		items: []TypedValue{payload},
		set:   true,
	}
}

// NewUnsetOptionalValue is an omitted optional argument of the given type.
func NewUnsetOptionalValue(elem *Type) TypedValue {
	return TypedValue{typ: NewOptionalType(elem)}
}

func NewListValue(elem *Type, items []TypedValue) TypedValue {
	return TypedValue{typ: NewListType(elem), items: items}
}

func NewArrayValue(elem *Type, items []TypedValue) TypedValue {
	return TypedValue{typ: NewArrayType(len(items), elem), items: items}
}

func NewTupleValue(members ...TypedValue) TypedValue {
	memberTypes := make([]*Type, len(members))
	for i, m := range members {
		memberTypes[i] = m.typ
	}
	return TypedValue{typ: NewTupleType(memberTypes...), items: members}
}

// NewVariadicValue groups zero or more values absorbed by a trailing variadic
// parameter. It is not a single encodable value; only the serializer may
// expand it.
func NewVariadicValue(elem *Type, items ...TypedValue) TypedValue {
	return TypedValue{typ: NewVariadicType(elem), items: items}
}

// NewMultiValue groups one occurrence of a composite multi-value: K components
// consumed as K independent top-level arguments.
func NewMultiValue(components ...TypedValue) TypedValue {
	componentTypes := make([]*Type, len(components))
	for i, c := range components {
		componentTypes[i] = c.typ
	}
	return TypedValue{typ: NewMultiType(componentTypes...), items: components}
}

// Equal compares type and payload. Container values compare member-wise.
func (v TypedValue) Equal(other TypedValue) bool {
	if !v.typ.Equal(other.typ) {
		return false
	}
	switch v.typ.kind {
	case KindU8, KindU16, KindU32, KindU64:
		return v.unsigned == other.unsigned
	case KindI8, KindI16, KindI32, KindI64:
		return v.signed == other.signed
	case KindBigUint, KindBigInt:
		return v.BigInt().Cmp(other.BigInt()) == 0
	case KindBool:
		return v.boolean == other.boolean
	case KindAddress, KindBytes, KindString, KindTokenIdentifier:
		return string(v.raw) == string(other.raw)
	case KindOption, KindOptional:
		if v.set != other.set {
			return false
		}
		if !v.set {
			return true
		}
		return v.items[0].Equal(other.items[0])
	case KindList, KindArray, KindTuple, KindVariadic, KindMulti:
		if len(v.items) != len(other.items) {
			return false
		}
		for i, item := range v.items {
			if !item.Equal(other.items[i]) {
				return false
			}
		}
		return true
	}
	panic("unknown Kind")
}

// String renders a debug representation, e.g. `u32(7)` or `List<u64>[1,2]`.
func (v TypedValue) String() string {
	switch v.typ.kind {
	case KindU8, KindU16, KindU32, KindU64:
		return fmt.Sprintf("%s(%d)", v.typ, v.unsigned)
	case KindI8, KindI16, KindI32, KindI64:
		return fmt.Sprintf("%s(%d)", v.typ, v.signed)
	case KindBigUint, KindBigInt:
		return fmt.Sprintf("%s(%s)", v.typ, v.BigInt())
	case KindBool:
		return fmt.Sprintf("bool(%t)", v.boolean)
	case KindAddress:
		return v.Address().Bech32()
	case KindString, KindTokenIdentifier:
		return fmt.Sprintf("%s(%q)", v.typ, v.Text())
	case KindBytes:
		return fmt.Sprintf("bytes(%s)", hexutil.EncodeNo0x(v.raw))
	case KindOption, KindOptional:
		if !v.set {
			return fmt.Sprintf("%s(none)", v.typ)
		}
		return fmt.Sprintf("%s(%s)", v.typ, v.items[0])
	case KindList, KindArray, KindTuple, KindVariadic, KindMulti:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return fmt.Sprintf("%s[%s]", v.typ, strings.Join(parts, ","))
	}
	panic("unknown Kind")
}
