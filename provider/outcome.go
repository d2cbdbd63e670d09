package provider

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/erdkit/erdkit/abi"
	"github.com/erdkit/erdkit/core"
)

// ReturnCodeOK is the return code of a successful contract execution.
const ReturnCodeOK = "ok"

// CallOutcome is the decoded result of a contract execution: the textual
// return code plus the returned values, typed against the endpoint's
// declared outputs.
type CallOutcome struct {
	ReturnCode    string
	ReturnMessage string
	Values        []abi.TypedValue
}

// Success reports whether execution returned ok.
func (o *CallOutcome) Success() bool {
	return o.ReturnCode == ReturnCodeOK
}

// ParseOutcomeData decodes the data field of a smart contract result, shaped
// "@<return code hex>@<value hex>@...". The leading part before the first
// separator is empty for results; anything else means the data is a call
// payload, not an outcome.
func ParseOutcomeData(data string, outputTypes []*abi.Type) (*CallOutcome, error) {
	parts := strings.Split(data, core.ArgsSeparator)
	if len(parts) < 2 || parts[0] != "" {
		return nil, fmt.Errorf("%w: %q is not a contract result payload", abi.ErrSerializer, data)
	}

	returnCode, err := hex.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: bad return code part %q", abi.ErrSerializer, parts[1])
	}

	outcome := &CallOutcome{ReturnCode: string(returnCode)}
	if !outcome.Success() {
		// On failure the remaining parts carry diagnostics, not values.
		return outcome, nil
	}

	outcome.Values, err = abi.StringsToValues(parts[2:], outputTypes)
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// ParseQueryResponse types the raw return data of a vm-values query against
// the endpoint's declared outputs.
func ParseQueryResponse(response *QueryResponse, outputTypes []*abi.Type) (*CallOutcome, error) {
	outcome := &CallOutcome{
		ReturnCode:    response.ReturnCode,
		ReturnMessage: response.ReturnMessage,
	}
	if !outcome.Success() {
		return outcome, nil
	}

	parts := make([]string, len(response.ReturnData))
	for i, raw := range response.ReturnData {
		parts[i] = hex.EncodeToString(raw)
	}

	values, err := abi.StringsToValues(parts, outputTypes)
	if err != nil {
		return nil, err
	}
	outcome.Values = values
	return outcome, nil
}

// FindResultOutcome scans a processed transaction for the first contract
// result that parses as an outcome and decodes it. Transactions whose
// endpoint returns nothing produce results carrying just "@6f6b".
func FindResultOutcome(tx *TransactionOnNetwork, outputTypes []*abi.Type) (*CallOutcome, error) {
	for i := range tx.SmartContractResults {
		result := &tx.SmartContractResults[i]
		if !strings.HasPrefix(result.Data, core.ArgsSeparator) {
			continue
		}
		return ParseOutcomeData(result.Data, outputTypes)
	}
	return nil, fmt.Errorf("%w: no contract result carries an outcome", abi.ErrSerializer)
}
