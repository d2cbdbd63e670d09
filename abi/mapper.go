package abi

import (
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/erdkit/erdkit/common/check"
)

// The catalogue registry. Names are the ones used by contract interface
// descriptions; several aliases map to the same constructor (e.g. VarArgs
// and MultiResultVec are both variadic).
var primitivesByName = map[string]*Type{
	"u8":                        TypeU8,
	"u16":                       TypeU16,
	"u32":                       TypeU32,
	"u64":                       TypeU64,
	"usize":                     TypeU32,
	"i8":                        TypeI8,
	"i16":                       TypeI16,
	"i32":                       TypeI32,
	"i64":                       TypeI64,
	"isize":                     TypeI32,
	"BigUint":                   TypeBigUint,
	"BigInt":                    TypeBigInt,
	"bool":                      TypeBool,
	"Address":                   TypeAddress,
	"bytes":                     TypeBytes,
	"string":                    TypeString,
	"TokenIdentifier":           TypeTokenIdentifier,
	"EgldOrEsdtTokenIdentifier": TypeTokenIdentifier,
}

var genericKindByName = map[string]Kind{
	"Option":         KindOption,
	"optional":       KindOptional,
	"OptionalArg":    KindOptional,
	"OptionalResult": KindOptional,
	"List":           KindList,
	"variadic":       KindVariadic,
	"VarArgs":        KindVariadic,
	"MultiResultVec": KindVariadic,
	"multi":          KindMulti,
	"MultiArg":       KindMulti,
	"MultiResult":    KindMulti,
}

// MapType resolves a parsed descriptor into a concrete catalogue Type,
// recursing depth-first through its type parameters. Mapping is purely
// structural; no value is examined.
func MapType(descriptor TypeDescriptor) (*Type, error) {
	if primitive, ok := primitivesByName[descriptor.Name]; ok {
		if descriptor.IsGeneric() {
			return nil, fmt.Errorf("%w: %s takes no type parameters", ErrInvalidTypeExpression, descriptor.Name)
		}
		return primitive, nil
	}

	if kind, ok := genericKindByName[descriptor.Name]; ok {
		return mapGeneric(kind, descriptor)
	}

	if length, ok := parseSizeSuffix(descriptor.Name, "array"); ok {
		return mapArray(length, descriptor)
	}
	if arity, ok := parseSizeSuffix(descriptor.Name, "tuple"); ok {
		return mapTuple(arity, descriptor)
	}
	if strings.HasPrefix(descriptor.Name, "array") || strings.HasPrefix(descriptor.Name, "tuple") {
		return nil, fmt.Errorf("%w: malformed size suffix in %q", ErrInvalidTypeExpression, descriptor.Name)
	}

	return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, descriptor.Name)
}

// MapExpression parses and maps a type expression in one step. Results are
// memoized by expression string; the cache is safe for concurrent use.
func MapExpression(expression string) (*Type, error) {
	if cached, ok := typeCache.Get(expression); ok {
		return cached, nil
	}
	descriptor, err := ParseTypeExpression(expression)
	if err != nil {
		return nil, err
	}
	resolved, err := MapType(descriptor)
	if err != nil {
		return nil, err
	}
	typeCache.Add(expression, resolved)
	return resolved, nil
}

func MustMapExpression(expression string) *Type {
	t, err := MapExpression(expression)
	check.PanicIfErr(err)
	return t
}

const typeCacheSize = 512

var typeCache = func() *lru.Cache[string, *Type] {
	cache, err := lru.New[string, *Type](typeCacheSize)
	check.PanicIfErr(err)
	return cache
}()

func mapGeneric(kind Kind, descriptor TypeDescriptor) (*Type, error) {
	params, err := mapTypeParameters(descriptor)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindOption, KindOptional, KindList, KindVariadic:
		if len(params) != 1 {
			return nil, fmt.Errorf("%w: %s requires exactly 1 type parameter, got %d",
				ErrInvalidTypeExpression, descriptor.Name, len(params))
		}
	case KindMulti:
		if len(params) == 0 {
			return nil, fmt.Errorf("%w: %s requires at least 1 type parameter",
				ErrInvalidTypeExpression, descriptor.Name)
		}
	default:
		panic("not a generic Kind")
	}

	return &Type{kind: kind, typeParameters: params}, nil
}

func mapArray(length int, descriptor TypeDescriptor) (*Type, error) {
	params, err := mapTypeParameters(descriptor)
	if err != nil {
		return nil, err
	}
	if len(params) != 1 {
		return nil, fmt.Errorf("%w: %s requires exactly 1 type parameter, got %d",
			ErrInvalidTypeExpression, descriptor.Name, len(params))
	}
	return NewArrayType(length, params[0]), nil
}

func mapTuple(arity int, descriptor TypeDescriptor) (*Type, error) {
	params, err := mapTypeParameters(descriptor)
	if err != nil {
		return nil, err
	}
	if len(params) != arity {
		return nil, fmt.Errorf("%w: %s requires exactly %d type parameters, got %d",
			ErrInvalidTypeExpression, descriptor.Name, arity, len(params))
	}
	return NewTupleType(params...), nil
}

func mapTypeParameters(descriptor TypeDescriptor) ([]*Type, error) {
	params := make([]*Type, len(descriptor.TypeParameters))
	for i, nested := range descriptor.TypeParameters {
		resolved, err := MapType(nested)
		if err != nil {
			return nil, err
		}
		params[i] = resolved
	}
	return params, nil
}

// parseSizeSuffix matches names of the form prefixN (e.g. "array8",
// "tuple3") and returns N. The suffix must be all digits and positive.
func parseSizeSuffix(name, prefix string) (int, bool) {
	if !strings.HasPrefix(name, prefix) || len(name) == len(prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(name[len(prefix):])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
