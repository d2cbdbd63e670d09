package core

import "strconv"

type Gas uint64

func (g Gas) Uint64() uint64 {
	return uint64(g)
}

func (g Gas) Add(other Gas) Gas {
	return Gas(g.Uint64() + other.Uint64())
}

func (g Gas) Mul64(n uint64) Gas {
	return Gas(g.Uint64() * n)
}

func (g Gas) Lt(other Gas) bool {
	return g.Uint64() < other.Uint64()
}

// ToValue computes the fee this much gas costs at the given price.
func (g Gas) ToValue(gasPrice uint64) Value {
	return NewValueFromUint64(gasPrice).Mul64(g.Uint64())
}

// Gas intentionally has no TextMarshaler: inside a transaction it must
// serialize as a JSON number, the way the network expects it.
func (g Gas) String() string {
	return strconv.FormatUint(g.Uint64(), 10)
}

// GasSchedule holds the network parameters that drive data-movement gas costs.
// The zero value is not usable; construct with DefaultGasSchedule or from the
// network config returned by the gateway.
type GasSchedule struct {
	MinGasLimit    Gas
	GasPerDataByte Gas
	GasPrice       uint64
}

func DefaultGasSchedule() GasSchedule {
	return GasSchedule{
		MinGasLimit:    MinGasLimit,
		GasPerDataByte: GasPerDataByte,
		GasPrice:       DefaultGasPrice,
	}
}

// GasForTransfer returns the gas limit of a transfer carrying the given data payload.
func (s GasSchedule) GasForTransfer(data []byte) Gas {
	return s.MinGasLimit.Add(s.GasPerDataByte.Mul64(uint64(len(data))))
}
