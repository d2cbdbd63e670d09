package hexutil

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Bytes marshals/unmarshals as a JSON string with 0x prefix.
// The empty slice marshals as "0x".
type Bytes []byte

const hexPrefix = `0x`

func isString(input []byte) bool {
	return len(input) >= 2 && input[0] == '"' && input[len(input)-1] == '"'
}

// MarshalText implements encoding.TextMarshaler.
func (b Bytes) MarshalText() ([]byte, error) {
	result := make([]byte, len(b)*2+2)
	copy(result, hexPrefix)
	hex.Encode(result[2:], b)
	return result, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bytes) UnmarshalJSON(input []byte) error {
	if !isString(input) {
		return fmt.Errorf("cannot unmarshal non-string into hexutil.Bytes")
	}
	return b.UnmarshalText(input[1 : len(input)-1])
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bytes) UnmarshalText(input []byte) error {
	dec, err := DecodeHex(string(input))
	if err != nil {
		return err
	}
	*b = dec
	return nil
}

// String returns the hex encoding of b.
func (b Bytes) String() string {
	return Encode(b)
}

func (b Bytes) Type() string {
	return "Bytes"
}

func (b *Bytes) Set(val string) error {
	return b.UnmarshalText([]byte(val))
}

var _ json.Unmarshaler = (*Bytes)(nil)
