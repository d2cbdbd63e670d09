package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapType_Primitives(t *testing.T) {
	t.Parallel()

	testCases := map[string]*Type{
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

	for expression, expected := range testCases {
		expression, expected := expression, expected
		t.Run(expression, func(t *testing.T) {
			t.Parallel()

			resolved, err := MapExpression(expression)
			require.NoError(t, err)
			assert.Same(t, expected, resolved)
		})
	}
}

func TestMapType_Generics(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		expression string
		expected   *Type
	}{
		{"List<u64>", NewListType(TypeU64)},
		{"Option<BigUint>", NewOptionType(TypeBigUint)},
		{"optional<Address>", NewOptionalType(TypeAddress)},
		{"tuple3<u32,bytes,u64>", NewTupleType(TypeU32, TypeBytes, TypeU64)},
		{"array8<BigUint>", NewArrayType(8, TypeBigUint)},
		{"variadic<u32>", NewVariadicType(TypeU32)},
		{"VarArgs<MultiArg<i32,bytes>>", NewVariadicType(NewMultiType(TypeI32, TypeBytes))},
		{"MultiResultVec<MultiResult<i32,bytes,>>", NewVariadicType(NewMultiType(TypeI32, TypeBytes))},
		{"List<tuple2<u32,List<u8>>>", NewListType(NewTupleType(TypeU32, NewListType(TypeU8)))},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.expression, func(t *testing.T) {
			t.Parallel()

			resolved, err := MapExpression(tc.expression)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(resolved), "got %s", resolved)
		})
	}
}

func TestMapType_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		expression string
		expected   error
	}{
		{"whatever", ErrTypeNotFound},
		{"u32<u8>", ErrInvalidTypeExpression},
		{"Option<u32,u64>", ErrInvalidTypeExpression},
		{"List<u8,u8>", ErrInvalidTypeExpression},
		{"tuple2<u32>", ErrInvalidTypeExpression},
		{"tuple2<u32,u64,u8>", ErrInvalidTypeExpression},
		{"array<u8>", ErrInvalidTypeExpression},
		{"arrayX<u8>", ErrInvalidTypeExpression},
		{"array8<u8,u8>", ErrInvalidTypeExpression},
		{"MultiArg<>", ErrParse},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.expression, func(t *testing.T) {
			t.Parallel()

			_, err := MapExpression(tc.expression)
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestMapExpression_Memoization(t *testing.T) {
	t.Parallel()

	first, err := MapExpression("List<tuple2<u32,bytes>>")
	require.NoError(t, err)

	second, err := MapExpression("List<tuple2<u32,bytes>>")
	require.NoError(t, err)

	// Same expression, same instance: the cache serves repeat lookups.
	assert.Same(t, first, second)

	// Re-parsing from scratch yields a structurally equal type.
	descriptor, err := ParseTypeExpression("List<tuple2<u32,bytes>>")
	require.NoError(t, err)
	remapped, err := MapType(descriptor)
	require.NoError(t, err)
	assert.True(t, first.Equal(remapped))
}

func TestTypeName_Canonical(t *testing.T) {
	t.Parallel()

	resolved, err := MapExpression("VarArgs<MultiArg<i32,bytes>>")
	require.NoError(t, err)
	assert.Equal(t, "variadic<multi<i32,bytes>>", resolved.Name())

	resolved, err = MapExpression("array8<u8>")
	require.NoError(t, err)
	assert.Equal(t, "array8<u8>", resolved.Name())
	assert.Equal(t, 8, resolved.ArrayLength())
}
