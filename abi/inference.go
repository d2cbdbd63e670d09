package abi

import (
	"fmt"
	"math/big"

	"github.com/erdkit/erdkit/core"
)

// Native value inference maps loosely-typed call arguments (Go numbers,
// strings, booleans, byte slices, nested slices, nil) onto TypedValues using
// an endpoint's declared parameter types. Inference never guesses: a native
// value whose shape does not match the declared type is an error, not a
// best-effort conversion.

// NativeToTypedValues converts native call arguments against the endpoint's
// declared input types. A trailing variadic parameter absorbs all remaining
// arguments; a trailing optional parameter may be omitted.
func NativeToTypedValues(args []any, endpoint EndpointDefinition) ([]TypedValue, error) {
	types, err := endpoint.InputTypes()
	if err != nil {
		return nil, err
	}

	lastIsVariadic := len(types) > 0 && types[len(types)-1].kind == KindVariadic
	lastIsOptional := len(types) > 0 && types[len(types)-1].kind == KindOptional

	switch {
	case lastIsVariadic:
		if len(args) < len(types)-1 {
			return nil, fmt.Errorf("%w: endpoint %q takes at least %d arguments, got %d",
				ErrInvalidArgumentCount, endpoint.Name, len(types)-1, len(args))
		}
	case lastIsOptional:
		if len(args) < len(types)-1 || len(args) > len(types) {
			return nil, fmt.Errorf("%w: endpoint %q takes %d or %d arguments, got %d",
				ErrInvalidArgumentCount, endpoint.Name, len(types)-1, len(types), len(args))
		}
	default:
		if len(args) != len(types) {
			return nil, fmt.Errorf("%w: endpoint %q takes %d arguments, got %d",
				ErrInvalidArgumentCount, endpoint.Name, len(types), len(args))
		}
	}

	values := make([]TypedValue, 0, len(types))
	fixed := len(types)
	if lastIsVariadic || lastIsOptional {
		fixed--
	}

	for i := 0; i < fixed; i++ {
		value, err := ConvertNative(types[i], args[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		values = append(values, value)
	}

	switch {
	case lastIsVariadic:
		variadic := types[len(types)-1]
		items := make([]TypedValue, 0, len(args)-fixed)
		for i, arg := range args[fixed:] {
			item, err := ConvertNative(variadic.ElemType(), arg)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", fixed+i, err)
			}
			items = append(items, item)
		}
		values = append(values, NewVariadicValue(variadic.ElemType(), items...))
	case lastIsOptional:
		optional := types[len(types)-1]
		if len(args) == fixed {
			values = append(values, NewUnsetOptionalValue(optional.ElemType()))
		} else {
			payload, err := ConvertNative(optional.ElemType(), args[fixed])
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", fixed, err)
			}
			values = append(values, NewOptionalValue(payload))
		}
	}

	return values, nil
}

// ConvertNative infers a single TypedValue of type t from a native value.
func ConvertNative(t *Type, native any) (TypedValue, error) {
	// Already-typed values pass through when the types agree.
	if typed, ok := native.(TypedValue); ok {
		if !typed.typ.Equal(t) {
			return TypedValue{}, fmt.Errorf("%w: typed value is %s, %s declared", ErrCannotInferType, typed.typ, t)
		}
		return typed, nil
	}

	switch t.kind {
	case KindU8, KindU16, KindU32, KindU64:
		return convertNativeUnsigned(t, native)
	case KindI8, KindI16, KindI32, KindI64:
		return convertNativeSigned(t, native)
	case KindBigUint:
		value, err := nativeToBigInt(t, native)
		if err != nil {
			return TypedValue{}, err
		}
		if value.Sign() < 0 {
			return TypedValue{}, fmt.Errorf("%w: negative value %s for BigUint", ErrInvalidArgument, value)
		}
		return TypedValue{typ: t, big: value}, nil
	case KindBigInt:
		value, err := nativeToBigInt(t, native)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{typ: t, big: value}, nil
	case KindBool:
		b, ok := native.(bool)
		if !ok {
			return TypedValue{}, shapeError(t, native)
		}
		return NewBoolValue(b), nil
	case KindAddress:
		return convertNativeAddress(t, native)
	case KindBytes:
		switch v := native.(type) {
		case []byte:
			return NewBytesValue(v), nil
		case string:
			return NewBytesValue([]byte(v)), nil
		default:
			return TypedValue{}, shapeError(t, native)
		}
	case KindString:
		switch v := native.(type) {
		case string:
			return NewStringValue(v), nil
		case []byte:
			return NewStringValue(string(v)), nil
		default:
			return TypedValue{}, shapeError(t, native)
		}
	case KindTokenIdentifier:
		switch v := native.(type) {
		case string:
			return NewTokenIdentifierValue(v), nil
		case []byte:
			return NewTokenIdentifierValue(string(v)), nil
		default:
			return TypedValue{}, shapeError(t, native)
		}
	case KindOption:
		if native == nil {
			return TypedValue{typ: t}, nil
		}
		payload, err := ConvertNative(t.ElemType(), native)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{typ: t, items: []TypedValue{payload}, set: true}, nil
	case KindOptional:
		if native == nil {
			return TypedValue{typ: t}, nil
		}
		payload, err := ConvertNative(t.ElemType(), native)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{typ: t, items: []TypedValue{payload}, set: true}, nil
	case KindList:
		items, err := convertNativeSlice(t, t.ElemType(), native)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{typ: t, items: items}, nil
	case KindArray:
		items, err := convertNativeSlice(t, t.ElemType(), native)
		if err != nil {
			return TypedValue{}, err
		}
		if len(items) != t.ArrayLength() {
			return TypedValue{}, fmt.Errorf("%w: %s requires %d items, got %d",
				ErrInvalidArgument, t, t.ArrayLength(), len(items))
		}
		return TypedValue{typ: t, items: items}, nil
	case KindTuple, KindMulti:
		elements, ok := nativeElements(native)
		if !ok || len(elements) != len(t.typeParameters) {
			return TypedValue{}, shapeError(t, native)
		}
		members := make([]TypedValue, len(elements))
		for i, element := range elements {
			member, err := ConvertNative(t.typeParameters[i], element)
			if err != nil {
				return TypedValue{}, err
			}
			members[i] = member
		}
		return TypedValue{typ: t, items: members}, nil
	case KindVariadic:
		elements, ok := nativeElements(native)
		if !ok {
			return TypedValue{}, shapeError(t, native)
		}
		items := make([]TypedValue, len(elements))
		for i, element := range elements {
			item, err := ConvertNative(t.ElemType(), element)
			if err != nil {
				return TypedValue{}, err
			}
			items[i] = item
		}
		return TypedValue{typ: t, items: items}, nil
	}
	panic("unknown Kind")
}

func convertNativeUnsigned(t *Type, native any) (TypedValue, error) {
	value, err := nativeToBigInt(t, native)
	if err != nil {
		return TypedValue{}, err
	}
	if value.Sign() < 0 {
		return TypedValue{}, fmt.Errorf("%w: negative value %s for %s", ErrInvalidArgument, value, t)
	}
	if value.BitLen() > 8*t.numericWidth() {
		return TypedValue{}, fmt.Errorf("%w: value %s overflows %s", ErrInvalidArgument, value, t)
	}
	return TypedValue{typ: t, unsigned: value.Uint64()}, nil
}

func convertNativeSigned(t *Type, native any) (TypedValue, error) {
	value, err := nativeToBigInt(t, native)
	if err != nil {
		return TypedValue{}, err
	}
	bits := uint(8*t.numericWidth() - 1)
	upper := new(big.Int).Lsh(big.NewInt(1), bits) // exclusive
	lower := new(big.Int).Neg(upper)               // inclusive
	if value.Cmp(lower) < 0 || value.Cmp(upper) >= 0 {
		return TypedValue{}, fmt.Errorf("%w: value %s overflows %s", ErrInvalidArgument, value, t)
	}
	return TypedValue{typ: t, signed: value.Int64()}, nil
}

func convertNativeAddress(t *Type, native any) (TypedValue, error) {
	switch v := native.(type) {
	case core.Address:
		return NewAddressValue(v), nil
	case string:
		addr, err := core.NewAddressFromBech32(v)
		if err != nil {
			return TypedValue{}, fmt.Errorf("%w: %s", ErrInvalidArgument, err)
		}
		return NewAddressValue(addr), nil
	case []byte:
		addr, err := core.NewAddressFromBytes(v)
		if err != nil {
			return TypedValue{}, fmt.Errorf("%w: %s", ErrInvalidArgument, err)
		}
		return NewAddressValue(addr), nil
	default:
		return TypedValue{}, shapeError(t, native)
	}
}

func convertNativeSlice(t, elem *Type, native any) ([]TypedValue, error) {
	elements, ok := nativeElements(native)
	if !ok {
		return nil, shapeError(t, native)
	}
	items := make([]TypedValue, len(elements))
	for i, element := range elements {
		item, err := ConvertNative(elem, element)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

func nativeElements(native any) ([]any, bool) {
	switch v := native.(type) {
	case []any:
		return v, true
	case []TypedValue:
		elements := make([]any, len(v))
		for i, item := range v {
			elements[i] = item
		}
		return elements, true
	default:
		return nil, false
	}
}

// nativeToBigInt widens any native integer representation to a big.Int.
func nativeToBigInt(t *Type, native any) (*big.Int, error) {
	switch v := native.(type) {
	case int:
		return big.NewInt(int64(v)), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case *big.Int:
		return new(big.Int).Set(v), nil
	case string:
		value, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidArgument, v)
		}
		return value, nil
	default:
		return nil, shapeError(t, native)
	}
}

func shapeError(t *Type, native any) error {
	return fmt.Errorf("%w: %T does not match declared type %s", ErrCannotInferType, native, t)
}
