package core

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/erdkit/erdkit/common/check"
	"github.com/erdkit/erdkit/common/hexutil"
)

// Address is the 32-byte public key of an account, rendered as a bech32
// string with the "erd" prefix in every user-facing context.
type Address [AddressLen]byte

var EmptyAddress = Address{}

// NewAddressFromBytes returns the address with value b.
func NewAddressFromBytes(b []byte) (Address, error) {
	if len(b) != AddressLen {
		return Address{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidAddress, AddressLen, len(b))
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

// NewAddressFromBech32 parses a bech32-encoded address and validates its prefix.
func NewAddressFromBech32(encoded string) (Address, error) {
	hrp, data, err := bech32.Decode(encoded)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %s", ErrInvalidAddress, err)
	}
	if hrp != AddressHRP {
		return Address{}, fmt.Errorf("%w: expected prefix %q, got %q", ErrInvalidAddress, AddressHRP, hrp)
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %s", ErrInvalidAddress, err)
	}
	return NewAddressFromBytes(decoded)
}

// NewAddressFromHex parses a hex-encoded public key, with or without 0x prefix.
func NewAddressFromHex(s string) (Address, error) {
	decoded, err := hexutil.DecodeHex(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %s", ErrInvalidAddress, err)
	}
	return NewAddressFromBytes(decoded)
}

func MustNewAddressFromBech32(encoded string) Address {
	a, err := NewAddressFromBech32(encoded)
	check.PanicIfErr(err)
	return a
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// Bech32 returns the canonical textual form of the address.
func (a Address) Bech32() string {
	converted, err := bech32.ConvertBits(a[:], 8, 5, true)
	check.PanicIfErr(err)
	encoded, err := bech32.Encode(AddressHRP, converted)
	check.PanicIfErr(err)
	return encoded
}

func (a Address) String() string {
	return a.Bech32()
}

func (a Address) IsZero() bool {
	return a == EmptyAddress
}

func (a Address) Equal(other Address) bool {
	return bytes.Equal(a[:], other[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Bech32()), nil
}

func (a *Address) UnmarshalText(input []byte) error {
	addr, err := NewAddressFromBech32(string(input))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
