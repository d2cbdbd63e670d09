package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	aliceBech32 = "erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th"
	aliceHex    = "0139472eff6886771a982f3083da5d421f24c29181e63888228dc81ca60d69e1"
)

func TestAddressBech32RoundTrip(t *testing.T) {
	t.Parallel()

	addr, err := NewAddressFromBech32(aliceBech32)
	require.NoError(t, err)
	assert.Equal(t, aliceHex, addr.Hex())
	assert.Equal(t, aliceBech32, addr.Bech32())

	fromHex, err := NewAddressFromHex(aliceHex)
	require.NoError(t, err)
	assert.True(t, addr.Equal(fromHex))

	fromBytes, err := NewAddressFromBytes(addr.Bytes())
	require.NoError(t, err)
	assert.Equal(t, addr, fromBytes)
}

func TestAddressErrors(t *testing.T) {
	t.Parallel()

	_, err := NewAddressFromBech32("not-an-address")
	require.ErrorIs(t, err, ErrInvalidAddress)

	// Valid bech32 with the wrong prefix.
	_, err = NewAddressFromBech32("bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4")
	require.ErrorIs(t, err, ErrInvalidAddress)

	_, err = NewAddressFromBytes([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidAddress)

	_, err = NewAddressFromHex("zz")
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestAddressJson(t *testing.T) {
	t.Parallel()

	addr := MustNewAddressFromBech32(aliceBech32)

	encoded, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.JSONEq(t, `"`+aliceBech32+`"`, string(encoded))

	var decoded Address
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, addr, decoded)
}

func TestAddressZero(t *testing.T) {
	t.Parallel()

	assert.True(t, EmptyAddress.IsZero())
	assert.False(t, MustNewAddressFromBech32(aliceBech32).IsZero())
}
