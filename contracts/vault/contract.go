package vault

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/vault-contract/common"
	"github.com/nspcc-dev/vault-contract/contracts/vault/vaultconst"
)

const ownerKey = 'o'

// _deploy binds the vault to the sender of the deployment transaction. The
// owner is never changed afterwards.
// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		panic("vault contract can't be updated")
	}

	ctx := storage.GetContext()

	owner := runtime.GetScriptContainer().Sender
	if len(owner) != interop.Hash160Len {
		panic("invalid deployment sender")
	}

	storage.Put(ctx, ownerKey, owner)

	runtime.Log("vault contract initialized")
}

// OnNEP17Payment is a callback for NEP-17 compatible contracts. Vault accepts
// GAS and any NEP-17 token from anyone.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	runtime.Log("vault: deposit accepted")
}

// Owner returns the account the vault is bound to.
func Owner() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getOwner(ctx)
}

// GasBalance returns the amount of GAS held by the vault.
func GasBalance() int {
	return gas.BalanceOf(runtime.GetExecutingScriptHash())
}

// TokenBalance returns the balance of the vault in the specified NEP-17
// token contract.
func TokenBalance(token interop.Hash160) int {
	return tokenBalanceOf(token, runtime.GetExecutingScriptHash())
}

// SendGas transfers GAS from the vault to the specified account. It can be
// invoked only by the vault owner.
//
// If the recipient is a contract refusing the payment, the transaction faults
// with ErrTransferRejected and the vault balance stays intact.
func SendGas(to interop.Hash160, amount int) {
	ctx := storage.GetReadOnlyContext()
	checkOwner(ctx)

	common.CheckTransferArgs(to, amount)

	self := runtime.GetExecutingScriptHash()
	if gas.BalanceOf(self) < amount {
		panic(vaultconst.ErrInsufficientBalance)
	}

	transferGas(self, to, amount)

	runtime.Log("vault: GAS has been sent")
}

// ReceiveNEP17 pulls tokens into the vault from the given account. The
// account must witness the invocation and must have approved at least the
// amount for the vault in the token contract. Anyone can deposit own tokens
// this way.
func ReceiveNEP17(token, from interop.Hash160, amount int) {
	common.CheckWitness(from)
	common.CheckHash(token, "token")
	common.CheckAmount(amount)

	self := runtime.GetExecutingScriptHash()
	allowed := contract.Call(token, "allowance", contract.ReadOnly, from, self).(int)
	if allowed < amount {
		panic(vaultconst.ErrAllowanceInsufficient)
	}

	ok := contract.Call(token, "transferFrom", contract.All, from, self, amount, nil).(bool)
	if !ok {
		panic(vaultconst.ErrLedgerRejected)
	}

	runtime.Log("vault: tokens have been received")
}

// SendNEP17 transfers tokens of the specified NEP-17 contract from the vault
// to the given account. It can be invoked only by the vault owner.
func SendNEP17(token, to interop.Hash160, amount int) {
	ctx := storage.GetReadOnlyContext()
	checkOwner(ctx)

	common.CheckHash(token, "token")
	common.CheckTransferArgs(to, amount)

	self := runtime.GetExecutingScriptHash()
	if tokenBalanceOf(token, self) < amount {
		panic(vaultconst.ErrInsufficientBalance)
	}

	ok := contract.Call(token, "transfer", contract.All, self, to, amount, nil).(bool)
	if !ok {
		panic(vaultconst.ErrLedgerRejected)
	}

	runtime.Log("vault: tokens have been sent")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// transferGas throws ErrTransferRejected if the transfer fails, including
// the case of the recipient contract throwing in onNEP17Payment.
func transferGas(from, to interop.Hash160, amount int) {
	defer func() {
		if r := recover(); r != nil {
			panic(vaultconst.ErrTransferRejected)
		}
	}()

	if !gas.Transfer(from, to, amount, nil) {
		panic(vaultconst.ErrTransferRejected)
	}
}

func getOwner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

// checkOwner panics with ErrUnauthorized if the transaction is not witnessed
// by the vault owner.
func checkOwner(ctx storage.Context) {
	if !runtime.CheckWitness(getOwner(ctx)) {
		panic(vaultconst.ErrUnauthorized)
	}
}

func tokenBalanceOf(token, account interop.Hash160) int {
	return contract.Call(token, "balanceOf", contract.ReadOnly, account).(int)
}
