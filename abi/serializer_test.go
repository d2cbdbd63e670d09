package abi

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesToStrings(t *testing.T) {
	t.Parallel()

	parts, err := ValuesToStrings([]TypedValue{NewU32Value(1), NewU32Value(2)})
	require.NoError(t, err)
	assert.Equal(t, []string{"01", "02"}, parts)

	parts, err = ValuesToStrings([]TypedValue{NewU32Value(0)})
	require.NoError(t, err)
	assert.Equal(t, []string{""}, parts)

	parts, err = ValuesToStrings(nil)
	require.NoError(t, err)
	assert.Empty(t, parts)
}

func TestValuesToStrings_VariadicExpansion(t *testing.T) {
	t.Parallel()

	// A trailing Variadic<u32> yields one independent string per item,
	// not one combined string.
	variadic := NewVariadicValue(TypeU32, NewU32Value(1), NewU32Value(2), NewU32Value(3))

	parts, err := ValuesToStrings([]TypedValue{variadic})
	require.NoError(t, err)
	assert.Equal(t, []string{"01", "02", "03"}, parts)

	parts, err = ValuesToStrings([]TypedValue{NewU32Value(42), variadic})
	require.NoError(t, err)
	assert.Equal(t, []string{"2a", "01", "02", "03"}, parts)
}

func TestValuesToStrings_MultiExpansion(t *testing.T) {
	t.Parallel()

	// Each occurrence of a 2-component composite contributes 2 strings.
	multiType := NewMultiType(TypeI32, TypeBytes)
	variadic := NewVariadicValue(multiType,
		NewMultiValue(NewI32Value(1), NewBytesValue([]byte{0xaa})),
		NewMultiValue(NewI32Value(-1), NewBytesValue([]byte{0xbb})),
	)

	parts, err := ValuesToStrings([]TypedValue{variadic})
	require.NoError(t, err)
	assert.Equal(t, []string{"01", "aa", "ff", "bb"}, parts)
}

func TestValuesToStrings_NonTrailingVariadic(t *testing.T) {
	t.Parallel()

	variadic := NewVariadicValue(TypeU32, NewU32Value(1))

	_, err := ValuesToStrings([]TypedValue{variadic, NewU32Value(2)})
	require.ErrorIs(t, err, ErrSerializer)
}

func TestValuesToData(t *testing.T) {
	t.Parallel()

	data, err := ValuesToData([]TypedValue{
		NewTokenIdentifierValue("WEGLD-abcdef"),
		NewBigUintValue(big.NewInt(1000)),
	})
	require.NoError(t, err)
	assert.Equal(t, "5745474c442d616263646566@03e8", data)
}

func TestFunctionCallData(t *testing.T) {
	t.Parallel()

	data, err := FunctionCallData("add", NewU32Value(7))
	require.NoError(t, err)
	assert.Equal(t, "add@07", data)

	data, err = FunctionCallData("noArgs")
	require.NoError(t, err)
	assert.Equal(t, "noArgs", data)
}

func TestStringsToValues(t *testing.T) {
	t.Parallel()

	values, err := StringsToValues([]string{"07"}, []*Type{TypeU32})
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.True(t, NewU32Value(7).Equal(values[0]))

	// An empty part is a valid zero.
	values, err = StringsToValues([]string{""}, []*Type{TypeU64})
	require.NoError(t, err)
	assert.True(t, NewU64Value(0).Equal(values[0]))
}

func TestStringsToValues_VariadicAbsorbsRemainder(t *testing.T) {
	t.Parallel()

	types := []*Type{TypeBigUint, NewVariadicType(TypeU32)}

	values, err := StringsToValues([]string{"64", "01", "02", "03"}, types)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.True(t, NewBigUintFromUint64(100).Equal(values[0]))
	assert.True(t, NewVariadicValue(TypeU32, NewU32Value(1), NewU32Value(2), NewU32Value(3)).Equal(values[1]))

	// Zero remaining strings yield an empty variadic.
	values, err = StringsToValues([]string{"64"}, types)
	require.NoError(t, err)
	assert.Empty(t, values[1].Items())
}

func TestStringsToValues_CompositeArity(t *testing.T) {
	t.Parallel()

	variadicOfPairs := NewVariadicType(NewMultiType(TypeI32, TypeBytes))

	values, err := StringsToValues([]string{"01", "aa", "02", "bb"}, []*Type{variadicOfPairs})
	require.NoError(t, err)
	require.Len(t, values[0].Items(), 2)

	// Three strings cannot form repetitions of a 2-component composite.
	_, err = StringsToValues([]string{"01", "aa", "02"}, []*Type{variadicOfPairs})
	require.ErrorIs(t, err, ErrSerializer)
}

func TestStringsToValues_Errors(t *testing.T) {
	t.Parallel()

	// Non-trailing variadic declaration.
	_, err := StringsToValues([]string{"01", "02"}, []*Type{NewVariadicType(TypeU32), TypeU32})
	require.ErrorIs(t, err, ErrSerializer)

	// Too few strings.
	_, err = StringsToValues([]string{"01"}, []*Type{TypeU32, TypeU32})
	require.ErrorIs(t, err, ErrSerializer)

	// Too many strings.
	_, err = StringsToValues([]string{"01", "02"}, []*Type{TypeU32})
	require.ErrorIs(t, err, ErrSerializer)

	// Not hex.
	_, err = StringsToValues([]string{"zz"}, []*Type{TypeU32})
	require.ErrorIs(t, err, ErrSerializer)
}

func TestSerializer_Optional(t *testing.T) {
	t.Parallel()

	optionalType := NewOptionalType(TypeU32)

	// Unset optional contributes no string at all.
	parts, err := ValuesToStrings([]TypedValue{NewU32Value(5), NewUnsetOptionalValue(TypeU32)})
	require.NoError(t, err)
	assert.Equal(t, []string{"05"}, parts)

	// Absent on decode when no strings remain.
	values, err := StringsToValues([]string{"05"}, []*Type{TypeU32, optionalType})
	require.NoError(t, err)
	assert.False(t, values[1].IsSet())

	// Present when a string remains.
	values, err = StringsToValues([]string{"05", "07"}, []*Type{TypeU32, optionalType})
	require.NoError(t, err)
	require.True(t, values[1].IsSet())
	assert.True(t, NewU32Value(7).Equal(values[1].Items()[0]))
}
