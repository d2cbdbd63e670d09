package builders

import (
	"math/big"

	"github.com/erdkit/erdkit/abi"
	"github.com/erdkit/erdkit/core"
)

// Delegation contract function names.
const (
	functionDelegate          = "delegate"
	functionUnDelegate        = "unDelegate"
	functionClaimRewards      = "claimRewards"
	functionReDelegateRewards = "reDelegateRewards"
	functionWithdraw          = "withdraw"
)

// Gas limits for delegation operations, chosen generously: unspent gas is
// refunded, running out is not.
const (
	gasForDelegationOps = core.Gas(12_000_000)
)

// DelegationFactory builds transactions towards a staking-provider
// delegation contract.
type DelegationFactory struct {
	factory *TransactionFactory
}

func NewDelegationFactory(config Config) *DelegationFactory {
	return &DelegationFactory{factory: NewTransactionFactory(config)}
}

// CreateDelegate stakes value with the delegation contract.
func (f *DelegationFactory) CreateDelegate(sender, contract core.Address, value core.Value) (core.Transaction, error) {
	return f.factory.CreateContractCall(sender, contract, value, functionDelegate, gasForDelegationOps)
}

// CreateUnDelegate requests unstaking of the given amount.
func (f *DelegationFactory) CreateUnDelegate(sender, contract core.Address, amount *big.Int) (core.Transaction, error) {
	return f.factory.CreateContractCall(sender, contract, core.NewZeroValue(), functionUnDelegate,
		gasForDelegationOps, abi.NewBigUintValue(amount))
}

// CreateClaimRewards claims the accumulated delegation rewards.
func (f *DelegationFactory) CreateClaimRewards(sender, contract core.Address) (core.Transaction, error) {
	return f.factory.CreateContractCall(sender, contract, core.NewZeroValue(), functionClaimRewards, gasForDelegationOps)
}

// CreateReDelegateRewards claims rewards and immediately stakes them back.
func (f *DelegationFactory) CreateReDelegateRewards(sender, contract core.Address) (core.Transaction, error) {
	return f.factory.CreateContractCall(sender, contract, core.NewZeroValue(), functionReDelegateRewards, gasForDelegationOps)
}

// CreateWithdraw collects funds whose unbonding period has passed.
func (f *DelegationFactory) CreateWithdraw(sender, contract core.Address) (core.Transaction, error) {
	return f.factory.CreateContractCall(sender, contract, core.NewZeroValue(), functionWithdraw, gasForDelegationOps)
}
