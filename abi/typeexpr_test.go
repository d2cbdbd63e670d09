package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeExpression(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		expression string
		expected   TypeDescriptor
	}{
		{
			expression: "u32",
			expected:   TypeDescriptor{Name: "u32"},
		},
		{
			expression: "List<u64>",
			expected: TypeDescriptor{
				Name:           "List",
				TypeParameters: []TypeDescriptor{{Name: "u64"}},
			},
		},
		{
			expression: "Option<List<Address>>",
			expected: TypeDescriptor{
				Name: "Option",
				TypeParameters: []TypeDescriptor{{
					Name:           "List",
					TypeParameters: []TypeDescriptor{{Name: "Address"}},
				}},
			},
		},
		{
			expression: "tuple3<u32, bytes, u64>",
			expected: TypeDescriptor{
				Name: "tuple3",
				TypeParameters: []TypeDescriptor{
					{Name: "u32"}, {Name: "bytes"}, {Name: "u64"},
				},
			},
		},
		{
			expression: "array8<BigUint>",
			expected: TypeDescriptor{
				Name:           "array8",
				TypeParameters: []TypeDescriptor{{Name: "BigUint"}},
			},
		},
		{
			// Trailing commas before '>' appear in real interface
			// descriptions and must not fail.
			expression: "MultiResult<i32,bytes,>",
			expected: TypeDescriptor{
				Name: "MultiResult",
				TypeParameters: []TypeDescriptor{
					{Name: "i32"}, {Name: "bytes"},
				},
			},
		},
		{
			expression: "MultiResultVec<MultiResult<i32,bytes,>>",
			expected: TypeDescriptor{
				Name: "MultiResultVec",
				TypeParameters: []TypeDescriptor{{
					Name: "MultiResult",
					TypeParameters: []TypeDescriptor{
						{Name: "i32"}, {Name: "bytes"},
					},
				}},
			},
		},
		{
			expression: "  VarArgs < MultiArg < i32 , bytes > > ",
			expected: TypeDescriptor{
				Name: "VarArgs",
				TypeParameters: []TypeDescriptor{{
					Name: "MultiArg",
					TypeParameters: []TypeDescriptor{
						{Name: "i32"}, {Name: "bytes"},
					},
				}},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.expression, func(t *testing.T) {
			t.Parallel()

			descriptor, err := ParseTypeExpression(tc.expression)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, descriptor)
		})
	}
}

func TestParseTypeExpression_Errors(t *testing.T) {
	t.Parallel()

	for _, expression := range []string{
		"",
		"List<u32",
		"List<>",
		"<u32>",
		"List<u32>>",
		"List<,u32>",
		"List<u32> trailing",
	} {
		expression := expression
		t.Run(expression, func(t *testing.T) {
			t.Parallel()

			_, err := ParseTypeExpression(expression)
			require.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestTypeDescriptorString(t *testing.T) {
	t.Parallel()

	descriptor, err := ParseTypeExpression("VarArgs<MultiArg<i32, bytes,>>")
	require.NoError(t, err)
	assert.Equal(t, "VarArgs<MultiArg<i32,bytes>>", descriptor.String())
}
