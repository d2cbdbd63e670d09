package core

// Wire-format and protocol constants. These are process-wide immutable values;
// the argument separator in particular must match what the network's
// transaction processor splits payloads on.
const (
	// ArgsSeparator delimits the function name and the hex-encoded arguments
	// inside a transaction data field. Argument encoding never produces this
	// character, so boundaries are unambiguous.
	ArgsSeparator = "@"

	// AddressLen is the length of a public key / account address in bytes.
	AddressLen = 32

	// AddressHRP is the bech32 human-readable prefix of account addresses.
	AddressHRP = "erd"
)

const (
	MinGasLimit        = Gas(50_000)
	GasPerDataByte     = Gas(1_500)
	DefaultGasPrice    = uint64(1_000_000_000)
	ExtraGasForGuarded = Gas(50_000)
)

const (
	TxVersionDefault = uint32(2)

	// TxOptionHashSign requests signing the blake2b hash of the serialized
	// transaction instead of the serialization itself.
	TxOptionHashSign = uint32(0b0001)
)

const (
	ChainIDMainnet = "1"
	ChainIDTestnet = "T"
	ChainIDDevnet  = "D"
)
