package provider

import (
	"github.com/erdkit/erdkit/core"
)

// Response shapes of the gateway REST API. Only the fields the SDK consumes
// are declared; unknown fields are ignored on purpose so gateway upgrades do
// not break parsing.

// NetworkConfig mirrors GET /network/config.
type NetworkConfig struct {
	ChainID        string   `json:"erd_chain_id"`
	MinGasLimit    core.Gas `json:"erd_min_gas_limit"`
	MinGasPrice    uint64   `json:"erd_min_gas_price"`
	GasPerDataByte core.Gas `json:"erd_gas_per_data_byte"`
	MinTxVersion   uint32   `json:"erd_min_transaction_version"`
	RoundDuration  uint64   `json:"erd_round_duration"`
	NumShards      uint32   `json:"erd_num_shards_without_meta"`
}

// GasSchedule converts the on-network parameters into the form the
// transaction factories consume.
func (c *NetworkConfig) GasSchedule() core.GasSchedule {
	return core.GasSchedule{
		MinGasLimit:    c.MinGasLimit,
		GasPerDataByte: c.GasPerDataByte,
		GasPrice:       c.MinGasPrice,
	}
}

// Account mirrors the account part of GET /address/{bech32}.
type Account struct {
	Address  core.Address `json:"address"`
	Nonce    uint64       `json:"nonce"`
	Balance  core.Value   `json:"balance"`
	Username string       `json:"username,omitempty"`
}

// SmartContractResult is one result produced while processing a transaction.
// Its data field carries "@"-separated return values.
type SmartContractResult struct {
	Hash     string       `json:"hash"`
	Nonce    uint64       `json:"nonce"`
	Data     string       `json:"data"`
	Receiver core.Address `json:"receiver"`
	Sender   core.Address `json:"sender"`
}

// TransactionOnNetwork mirrors GET /transaction/{hash}.
type TransactionOnNetwork struct {
	Status               string                `json:"status"`
	Nonce                uint64                `json:"nonce"`
	Data                 []byte                `json:"data,omitempty"`
	SmartContractResults []SmartContractResult `json:"smartContractResults,omitempty"`
}

// Completed reports whether processing finished (successfully or not).
func (t *TransactionOnNetwork) Completed() bool {
	return t.Status == "success" || t.Status == "fail" || t.Status == "invalid"
}

// QueryRequest is the body of POST /vm-values/query: a read-only contract
// call executed against current state.
type QueryRequest struct {
	ScAddress string   `json:"scAddress"`
	FuncName  string   `json:"funcName"`
	Args      []string `json:"args"`
	Value     string   `json:"value,omitempty"`
	Caller    string   `json:"caller,omitempty"`
}

// QueryResponse is the execution result of a QueryRequest. ReturnData holds
// one raw top-level encoding per returned value.
type QueryResponse struct {
	ReturnData    [][]byte `json:"returnData"`
	ReturnCode    string   `json:"returnCode"`
	ReturnMessage string   `json:"returnMessage"`
}
