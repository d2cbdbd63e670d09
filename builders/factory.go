// Package builders assembles ready-to-sign transactions for the common
// operation families: native and token transfers, contract calls and
// delegation management. Builders are thin clients of the argument codec;
// all wire-format knowledge lives there.
package builders

import (
	"math/big"

	"github.com/erdkit/erdkit/abi"
	"github.com/erdkit/erdkit/core"
)

// Function names understood by the protocol's built-in handlers.
const (
	functionESDTTransfer    = "ESDTTransfer"
	functionESDTNFTTransfer = "ESDTNFTTransfer"
)

// Config carries the per-network parameters every factory needs. Obtain the
// gas values from the network config endpoint in production code.
type Config struct {
	ChainID     string
	GasSchedule core.GasSchedule

	// Surcharges on top of data-movement gas.
	GasForESDTTransfer    core.Gas
	GasForESDTNFTTransfer core.Gas
}

func NewConfig(chainID string) Config {
	return Config{
		ChainID:               chainID,
		GasSchedule:           core.DefaultGasSchedule(),
		GasForESDTTransfer:    200_000,
		GasForESDTNFTTransfer: 800_000,
	}
}

// TransactionFactory builds unsigned transactions. It holds no mutable state
// and is safe for concurrent use.
type TransactionFactory struct {
	config Config
}

func NewTransactionFactory(config Config) *TransactionFactory {
	return &TransactionFactory{config: config}
}

func (f *TransactionFactory) newTransaction(sender, receiver core.Address, value core.Value, data []byte, extraGas core.Gas) core.Transaction {
	return core.Transaction{
		Value:    value,
		Receiver: receiver,
		Sender:   sender,
		GasPrice: f.config.GasSchedule.GasPrice,
		GasLimit: f.config.GasSchedule.GasForTransfer(data).Add(extraGas),
		Data:     data,
		ChainID:  f.config.ChainID,
		Version:  core.TxVersionDefault,
	}
}

// CreateTransfer builds a native-token transfer, optionally carrying a plain
// text data payload.
func (f *TransactionFactory) CreateTransfer(sender, receiver core.Address, value core.Value, data []byte) core.Transaction {
	return f.newTransaction(sender, receiver, value, data, 0)
}

// CreateESDTTransfer builds a fungible-token transfer. The token and amount
// travel as encoded arguments of the built-in ESDTTransfer function.
func (f *TransactionFactory) CreateESDTTransfer(sender, receiver core.Address, token string, amount *big.Int) (core.Transaction, error) {
	data, err := abi.FunctionCallData(functionESDTTransfer,
		abi.NewTokenIdentifierValue(token),
		abi.NewBigUintValue(amount),
	)
	if err != nil {
		return core.Transaction{}, err
	}
	return f.newTransaction(sender, receiver, core.NewZeroValue(), []byte(data), f.config.GasForESDTTransfer), nil
}

// CreateESDTNFTTransfer builds a transfer of a non-fungible or semi-fungible
// token. The protocol requires it to be self-addressed, with the actual
// destination as the fourth argument.
func (f *TransactionFactory) CreateESDTNFTTransfer(sender, destination core.Address, token string, tokenNonce uint64, quantity *big.Int) (core.Transaction, error) {
	data, err := abi.FunctionCallData(functionESDTNFTTransfer,
		abi.NewTokenIdentifierValue(token),
		abi.NewU64Value(tokenNonce),
		abi.NewBigUintValue(quantity),
		abi.NewAddressValue(destination),
	)
	if err != nil {
		return core.Transaction{}, err
	}
	return f.newTransaction(sender, sender, core.NewZeroValue(), []byte(data), f.config.GasForESDTNFTTransfer), nil
}

// CreateContractCall builds a call to a smart contract endpoint with
// already-typed arguments. gasLimit must cover the contract's execution; data
// movement is not added on top.
func (f *TransactionFactory) CreateContractCall(sender, contract core.Address, value core.Value, function string, gasLimit core.Gas, args ...abi.TypedValue) (core.Transaction, error) {
	data, err := abi.FunctionCallData(function, args...)
	if err != nil {
		return core.Transaction{}, err
	}
	tx := f.newTransaction(sender, contract, value, []byte(data), 0)
	tx.GasLimit = gasLimit
	return tx, nil
}

// CreateInferredContractCall converts native arguments against the
// endpoint's declared parameter types before building the call.
func (f *TransactionFactory) CreateInferredContractCall(sender, contract core.Address, value core.Value, endpoint abi.EndpointDefinition, gasLimit core.Gas, args ...any) (core.Transaction, error) {
	typed, err := abi.NativeToTypedValues(args, endpoint)
	if err != nil {
		return core.Transaction{}, err
	}
	return f.CreateContractCall(sender, contract, value, endpoint.Name, gasLimit, typed...)
}
