package core

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/erdkit/erdkit/common/check"
)

var (
	Value0 = NewValueFromUint64(0)
	Value1 = NewValueFromUint64(1)
)

// Value is a native-token or fungible-token amount. The zero Value is usable
// and equals 0. Amounts serialize as decimal strings in JSON, matching the
// gateway's transaction format.
type Value struct{ *uint256.Int }

func NewValue(val *uint256.Int) Value {
	v := *val
	return Value{&v}
}

func NewValueFromUint64(val uint64) Value {
	return Value{uint256.NewInt(val)}
}

func NewValueFromDecimal(str string) (Value, error) {
	v, err := uint256.FromDecimal(str)
	if err != nil {
		return Value{}, err
	}
	return Value{v}, nil
}

func NewValueFromBig(val *big.Int) (Value, bool) {
	res, overflow := uint256.FromBig(val)
	if overflow {
		return Value{}, true
	}
	return Value{res}, false
}

func NewValueFromBigMust(val *big.Int) Value {
	res, overflow := NewValueFromBig(val)
	check.PanicIfNot(!overflow)
	return res
}

func NewZeroValue() Value {
	return Value0
}

func (v Value) safeInt() *uint256.Int {
	if v.Int == nil {
		return uint256.NewInt(0)
	}
	return v.Int
}

func (v Value) IsZero() bool {
	return v.Int == nil || v.Int.IsZero()
}

func (v Value) Uint64() uint64 {
	return v.safeInt().Uint64()
}

func (v Value) ToBig() *big.Int {
	return v.safeInt().ToBig()
}

// Bytes returns the minimal big-endian representation; zero yields an empty slice.
func (v Value) Bytes() []byte {
	return v.safeInt().Bytes()
}

func (v Value) Add(other Value) Value {
	res, overflow := new(uint256.Int).AddOverflow(v.safeInt(), other.safeInt())
	check.PanicIfNot(!overflow)
	return Value{res}
}

func (v Value) Sub(other Value) Value {
	res, underflow := new(uint256.Int).SubOverflow(v.safeInt(), other.safeInt())
	check.PanicIfNot(!underflow)
	return Value{res}
}

func (v Value) Mul64(other uint64) Value {
	res, overflow := new(uint256.Int).MulOverflow(v.safeInt(), uint256.NewInt(other))
	check.PanicIfNot(!overflow)
	return Value{res}
}

func (v Value) Cmp(other Value) int {
	return v.safeInt().Cmp(other.safeInt())
}

func (v Value) Equal(other Value) bool {
	return v.Cmp(other) == 0
}

func (v Value) String() string {
	return v.safeInt().Dec()
}

func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}

func (v *Value) UnmarshalJSON(input []byte) error {
	if len(input) < 2 || input[0] != '"' || input[len(input)-1] != '"' {
		return fmt.Errorf("value must be a decimal string")
	}
	return v.UnmarshalText(input[1 : len(input)-1])
}

func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Value) UnmarshalText(input []byte) error {
	res, err := uint256.FromDecimal(string(input))
	if err != nil {
		return err
	}
	v.Int = res
	return nil
}
