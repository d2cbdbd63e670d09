package core

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueJson(t *testing.T) {
	t.Parallel()

	str, err := json.Marshal(Value{})
	require.NoError(t, err)
	assert.JSONEq(t, `"0"`, string(str))

	str, err = json.Marshal(NewValueFromUint64(12345678))
	require.NoError(t, err)
	assert.JSONEq(t, `"12345678"`, string(str))

	var decoded Value
	require.NoError(t, json.Unmarshal([]byte(`"1000000000000000000"`), &decoded))
	assert.Equal(t, "1000000000000000000", decoded.String())
}

func TestValueFromDecimal(t *testing.T) {
	t.Parallel()

	v, err := NewValueFromDecimal("5000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "5000000000000000000", v.String())

	_, err = NewValueFromDecimal("not-a-number")
	require.Error(t, err)
}

func TestValueFromBig(t *testing.T) {
	t.Parallel()

	v, overflow := NewValueFromBig(big.NewInt(42))
	require.False(t, overflow)
	assert.Equal(t, uint64(42), v.Uint64())

	tooBig := new(big.Int).Lsh(big.NewInt(1), 300)
	_, overflow = NewValueFromBig(tooBig)
	assert.True(t, overflow)
}

func TestValueArithmetic(t *testing.T) {
	t.Parallel()

	a := NewValueFromUint64(100)
	b := NewValueFromUint64(42)

	assert.Equal(t, uint64(142), a.Add(b).Uint64())
	assert.Equal(t, uint64(58), a.Sub(b).Uint64())
	assert.Equal(t, uint64(200), a.Mul64(2).Uint64())
	assert.Equal(t, 1, a.Cmp(b))
	assert.True(t, a.Equal(NewValueFromUint64(100)))
}

func TestValueBytes(t *testing.T) {
	t.Parallel()

	// Minimal big-endian form; zero is empty.
	assert.Empty(t, NewZeroValue().Bytes())
	assert.Equal(t, []byte{0x01, 0x00}, NewValueFromUint64(256).Bytes())
	assert.True(t, Value{}.IsZero())
}
