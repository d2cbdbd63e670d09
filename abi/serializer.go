package abi

import (
	"fmt"
	"strings"

	"github.com/erdkit/erdkit/common/hexutil"
	"github.com/erdkit/erdkit/core"
)

// The serializer turns typed values into the wire-level list of hex argument
// strings and back. One value normally yields one string; a trailing Variadic
// or Multi expands into several. The strings are joined with the '@'
// separator to form the transaction data payload; value encoding never
// produces that character, so boundaries stay unambiguous.

// ValuesToStrings encodes each positional argument at top level. A Variadic
// or Multi value must be last; Variadic contributes one string per item (or K
// per repetition for a K-component Multi element), Multi contributes one
// string per component, and an unset Optional contributes nothing.
func ValuesToStrings(values []TypedValue) ([]string, error) {
	var parts []string
	for i, value := range values {
		expanding := value.typ.kind == KindVariadic || value.typ.kind == KindMulti || value.typ.kind == KindOptional
		if expanding && i != len(values)-1 {
			return nil, fmt.Errorf("%w: %s argument must be last, found at position %d", ErrSerializer, value.typ, i)
		}
		expanded, err := appendArgument(parts, value)
		if err != nil {
			return nil, err
		}
		parts = expanded
	}
	if parts == nil {
		parts = []string{}
	}
	return parts, nil
}

func appendArgument(parts []string, value TypedValue) ([]string, error) {
	switch value.typ.kind {
	case KindVariadic:
		for _, item := range value.items {
			expanded, err := appendArgument(parts, item)
			if err != nil {
				return nil, err
			}
			parts = expanded
		}
		return parts, nil
	case KindMulti:
		for _, component := range value.items {
			encoded, err := EncodeTopLevel(component)
			if err != nil {
				return nil, err
			}
			parts = append(parts, hexutil.EncodeNo0x(encoded))
		}
		return parts, nil
	case KindOptional:
		if !value.set {
			return parts, nil
		}
		return appendArgument(parts, value.items[0])
	default:
		encoded, err := EncodeTopLevel(value)
		if err != nil {
			return nil, err
		}
		return append(parts, hexutil.EncodeNo0x(encoded)), nil
	}
}

// ValuesToData joins the encoded arguments into a transaction data payload.
func ValuesToData(values []TypedValue) (string, error) {
	parts, err := ValuesToStrings(values)
	if err != nil {
		return "", err
	}
	return strings.Join(parts, core.ArgsSeparator), nil
}

// FunctionCallData builds the data payload of a contract call: the function
// name followed by the encoded arguments.
func FunctionCallData(function string, args ...TypedValue) (string, error) {
	parts, err := ValuesToStrings(args)
	if err != nil {
		return "", err
	}
	return strings.Join(append([]string{function}, parts...), core.ArgsSeparator), nil
}

// StringsToValues consumes hex argument strings left to right against the
// declared type list. The final declared type may be Variadic (absorbing all
// remaining strings), Multi (consuming its component count) or Optional
// (absorbed only if a string remains).
func StringsToValues(parts []string, types []*Type) ([]TypedValue, error) {
	values := make([]TypedValue, 0, len(types))
	pos := 0

	for i, t := range types {
		trailing := i == len(types)-1
		switch t.kind {
		case KindVariadic:
			if !trailing {
				return nil, fmt.Errorf("%w: %s parameter must be last, declared at position %d", ErrSerializer, t, i)
			}
			value, err := decodeVariadic(parts[pos:], t)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
			pos = len(parts)
		case KindMulti:
			if !trailing {
				return nil, fmt.Errorf("%w: %s parameter must be last, declared at position %d", ErrSerializer, t, i)
			}
			value, consumed, err := decodeMulti(parts[pos:], t)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
			pos += consumed
		case KindOptional:
			if !trailing {
				return nil, fmt.Errorf("%w: %s parameter must be last, declared at position %d", ErrSerializer, t, i)
			}
			if pos == len(parts) {
				values = append(values, NewUnsetOptionalValue(t.ElemType()))
				continue
			}
			payload, err := decodeArgument(parts[pos], t.ElemType())
			if err != nil {
				return nil, err
			}
			values = append(values, NewOptionalValue(payload))
			pos++
		default:
			if pos == len(parts) {
				return nil, fmt.Errorf("%w: %d arguments supplied, more expected", ErrSerializer, len(parts))
			}
			value, err := decodeArgument(parts[pos], t)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
			pos++
		}
	}

	if pos != len(parts) {
		return nil, fmt.Errorf("%w: %d trailing arguments", ErrSerializer, len(parts)-pos)
	}
	return values, nil
}

func decodeVariadic(parts []string, t *Type) (TypedValue, error) {
	elem := t.ElemType()
	if elem.kind == KindMulti {
		arity := len(elem.typeParameters)
		if len(parts)%arity != 0 {
			return TypedValue{}, fmt.Errorf("%w: %d arguments left for %s, not a multiple of %d",
				ErrSerializer, len(parts), t, arity)
		}
		items := make([]TypedValue, 0, len(parts)/arity)
		for len(parts) > 0 {
			item, consumed, err := decodeMulti(parts, elem)
			if err != nil {
				return TypedValue{}, err
			}
			items = append(items, item)
			parts = parts[consumed:]
		}
		return NewVariadicValue(elem, items...), nil
	}

	items := make([]TypedValue, len(parts))
	for i, part := range parts {
		item, err := decodeArgument(part, elem)
		if err != nil {
			return TypedValue{}, err
		}
		items[i] = item
	}
	return NewVariadicValue(elem, items...), nil
}

func decodeMulti(parts []string, t *Type) (TypedValue, int, error) {
	arity := len(t.typeParameters)
	if len(parts) < arity {
		return TypedValue{}, 0, fmt.Errorf("%w: %s consumes %d arguments, %d left",
			ErrSerializer, t, arity, len(parts))
	}
	components := make([]TypedValue, arity)
	for i, componentType := range t.typeParameters {
		component, err := decodeArgument(parts[i], componentType)
		if err != nil {
			return TypedValue{}, 0, err
		}
		components[i] = component
	}
	return NewMultiValue(components...), arity, nil
}

func decodeArgument(part string, t *Type) (TypedValue, error) {
	payload, err := hexutil.DecodeHex(part)
	if err != nil {
		return TypedValue{}, fmt.Errorf("%w: argument %q is not valid hex", ErrSerializer, part)
	}
	return DecodeTopLevel(t, payload)
}
