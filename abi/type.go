package abi

import (
	"fmt"
	"strings"
)

// Kind is the closed set of concrete type kinds the codec understands. Every
// switch over Kind in this package is exhaustive; adding a kind requires
// touching them all.
type Kind uint8

const (
	KindU8 Kind = iota
	KindU16
	KindU32
	KindU64
	KindI8
	KindI16
	KindI32
	KindI64
	KindBigUint
	KindBigInt
	KindBool
	KindAddress
	KindBytes
	KindString
	KindTokenIdentifier
	KindOption
	KindOptional
	KindList
	KindArray
	KindTuple
	KindVariadic
	KindMulti
)

func (k Kind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindBigUint:
		return "BigUint"
	case KindBigInt:
		return "BigInt"
	case KindBool:
		return "bool"
	case KindAddress:
		return "Address"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindTokenIdentifier:
		return "TokenIdentifier"
	case KindOption:
		return "Option"
	case KindOptional:
		return "optional"
	case KindList:
		return "List"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindVariadic:
		return "variadic"
	case KindMulti:
		return "multi"
	}
	panic("unknown Kind")
}

// Type is a resolved member of the catalogue: a kind plus, for generics, its
// parameter types. Types are immutable; re-mapping the same descriptor always
// yields an equal Type.
type Type struct {
	kind           Kind
	typeParameters []*Type
	arrayLength    uint32
}

func (t *Type) Kind() Kind {
	return t.kind
}

func (t *Type) TypeParameters() []*Type {
	return t.typeParameters
}

// ElemType returns the single type parameter of Option, Optional, List,
// Array and Variadic types.
func (t *Type) ElemType() *Type {
	return t.typeParameters[0]
}

func (t *Type) ArrayLength() int {
	return int(t.arrayLength)
}

// IsFixedSize reports whether the encoded size of a value of this type is
// statically known. Variable-size values get a length header in nested mode.
func (t *Type) IsFixedSize() bool {
	switch t.kind {
	case KindU8, KindU16, KindU32, KindU64, KindI8, KindI16, KindI32, KindI64, KindBool, KindAddress:
		return true
	case KindBigUint, KindBigInt, KindBytes, KindString, KindTokenIdentifier, KindOption, KindOptional, KindList, KindVariadic, KindMulti:
		return false
	case KindArray:
		return t.ElemType().IsFixedSize()
	case KindTuple:
		for _, member := range t.typeParameters {
			if !member.IsFixedSize() {
				return false
			}
		}
		return true
	}
	panic("unknown Kind")
}

// numericWidth returns the byte width of fixed-width integers and 0 for
// everything else.
func (t *Type) numericWidth() int {
	switch t.kind {
	case KindU8, KindI8:
		return 1
	case KindU16, KindI16:
		return 2
	case KindU32, KindI32:
		return 4
	case KindU64, KindI64:
		return 8
	default:
		return 0
	}
}

func (t *Type) isSigned() bool {
	switch t.kind {
	case KindI8, KindI16, KindI32, KindI64, KindBigInt:
		return true
	default:
		return false
	}
}

// Name renders the canonical type expression, e.g. "List<u64>" or "array8<u8>".
func (t *Type) Name() string {
	switch t.kind {
	case KindArray:
		return fmt.Sprintf("array%d<%s>", t.arrayLength, t.ElemType().Name())
	case KindTuple:
		return fmt.Sprintf("tuple%d<%s>", len(t.typeParameters), joinTypeNames(t.typeParameters))
	case KindOption, KindOptional, KindList, KindVariadic, KindMulti:
		return fmt.Sprintf("%s<%s>", t.kind, joinTypeNames(t.typeParameters))
	default:
		return t.kind.String()
	}
}

func (t *Type) String() string {
	return t.Name()
}

func (t *Type) Equal(other *Type) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if t.kind != other.kind || t.arrayLength != other.arrayLength ||
		len(t.typeParameters) != len(other.typeParameters) {
		return false
	}
	for i, param := range t.typeParameters {
		if !param.Equal(other.typeParameters[i]) {
			return false
		}
	}
	return true
}

func joinTypeNames(types []*Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name()
	}
	return strings.Join(names, ",")
}

// Primitive catalogue members. These are shared immutable instances.
var (
	TypeU8              = &Type{kind: KindU8}
	TypeU16             = &Type{kind: KindU16}
	TypeU32             = &Type{kind: KindU32}
	TypeU64             = &Type{kind: KindU64}
	TypeI8              = &Type{kind: KindI8}
	TypeI16             = &Type{kind: KindI16}
	TypeI32             = &Type{kind: KindI32}
	TypeI64             = &Type{kind: KindI64}
	TypeBigUint         = &Type{kind: KindBigUint}
	TypeBigInt          = &Type{kind: KindBigInt}
	TypeBool            = &Type{kind: KindBool}
	TypeAddress         = &Type{kind: KindAddress}
	TypeBytes           = &Type{kind: KindBytes}
	TypeString          = &Type{kind: KindString}
	TypeTokenIdentifier = &Type{kind: KindTokenIdentifier}
)

func NewOptionType(elem *Type) *Type {
	return &Type{kind: KindOption, typeParameters: []*Type{elem}}
}

func NewOptionalType(elem *Type) *Type {
	return &Type{kind: KindOptional, typeParameters: []*Type{elem}}
}

func NewListType(elem *Type) *Type {
	return &Type{kind: KindList, typeParameters: []*Type{elem}}
}

func NewArrayType(length int, elem *Type) *Type {
	return &Type{kind: KindArray, arrayLength: uint32(length), typeParameters: []*Type{elem}}
}

func NewTupleType(members ...*Type) *Type {
	return &Type{kind: KindTuple, typeParameters: members}
}

func NewVariadicType(elem *Type) *Type {
	return &Type{kind: KindVariadic, typeParameters: []*Type{elem}}
}

func NewMultiType(components ...*Type) *Type {
	return &Type{kind: KindMulti, typeParameters: components}
}
