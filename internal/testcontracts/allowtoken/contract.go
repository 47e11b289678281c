package allowtoken

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/vault-contract/common"
)

const (
	symbol   = "ALW"
	decimals = 8

	supplyKey = 's'
	adminKey  = 'o'

	balancePrefix   = 'b'
	allowancePrefix = 'a'
	frozenPrefix    = 'f'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	ctx := storage.GetContext()

	admin := runtime.GetScriptContainer().Sender
	storage.Put(ctx, adminKey, admin)

	var supply int
	if data != nil {
		supply = data.(int)
	}

	if supply < 0 {
		panic("negative initial supply")
	}

	if supply > 0 {
		var from interop.Hash160

		storage.Put(ctx, supplyKey, supply)
		storage.Put(ctx, balanceKey(admin), supply)
		runtime.Notify("Transfer", from, admin, supply)
	}

	runtime.Log("token contract initialized")
}

// Symbol is a NEP-17 standard method that returns token symbol.
func Symbol() string {
	return symbol
}

// Decimals is a NEP-17 standard method that returns token precision.
func Decimals() int {
	return decimals
}

// TotalSupply is a NEP-17 standard method that returns amount of minted
// tokens.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return getInt(ctx, supplyKey)
}

// BalanceOf is a NEP-17 standard method that returns token balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	common.CheckHash(account, "account")

	ctx := storage.GetReadOnlyContext()
	return getInt(ctx, balanceKey(account))
}

// Transfer is a NEP-17 standard method that transfers tokens from one
// account to another. It returns false if the sender has not witnessed the
// call, has not enough tokens or any party is frozen.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	common.CheckHash(from, "sender")

	common.CheckTransferArgs(to, amount)

	if !runtime.CheckWitness(from) {
		return false
	}

	ctx := storage.GetContext()
	if !move(ctx, from, to, amount) {
		return false
	}

	postTransfer(from, to, amount, data)

	return true
}

// Approve allows spender to transfer up to amount tokens from the owner
// account with TransferFrom. It replaces the previous allowance and can be
// invoked only by the owner.
func Approve(owner, spender interop.Hash160, amount int) bool {
	common.CheckOwnerWitness(owner)

	common.CheckHash(spender, "spender")

	common.CheckAmount(amount)

	ctx := storage.GetContext()
	putInt(ctx, allowanceKey(owner, spender), amount)

	runtime.Notify("Approval", owner, spender, amount)

	return true
}

// Allowance returns the amount spender is still allowed to take from the
// owner account.
func Allowance(owner, spender interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return getInt(ctx, allowanceKey(owner, spender))
}

// TransferFrom transfers tokens from one account to another on behalf of
// the calling contract, spending its allowance. It returns false if the
// allowance or balance is not enough or any party is frozen.
func TransferFrom(from, to interop.Hash160, amount int, data any) bool {
	common.CheckHash(from, "sender")

	common.CheckTransferArgs(to, amount)

	ctx := storage.GetContext()
	spender := runtime.GetCallingScriptHash()
	key := allowanceKey(from, spender)

	allowed := getInt(ctx, key)
	if allowed < amount {
		runtime.Log("allowance exceeded")
		return false
	}

	if !move(ctx, from, to, amount) {
		return false
	}

	putInt(ctx, key, allowed-amount)

	postTransfer(from, to, amount, data)

	return true
}

// Freeze forbids the account to send and receive tokens. It can be invoked
// only by the token administrator.
func Freeze(account interop.Hash160) {
	setFrozen(account, true)
	runtime.Log("account frozen")
}

// Unfreeze lifts the Freeze restriction. It can be invoked only by the token
// administrator.
func Unfreeze(account interop.Hash160) {
	setFrozen(account, false)
	runtime.Log("account unfrozen")
}

// IsFrozen checks whether the account is frozen.
func IsFrozen(account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return isFrozen(ctx, account)
}

func setFrozen(account interop.Hash160, frozen bool) {
	ctx := storage.GetContext()

	common.CheckWitness(storage.Get(ctx, adminKey).(interop.Hash160))

	common.CheckHash(account, "account")

	key := append([]byte{frozenPrefix}, account...)
	if frozen {
		storage.Put(ctx, key, []byte{1})
	} else {
		storage.Delete(ctx, key)
	}
}

// move updates balances and reports whether the transfer is allowed.
func move(ctx storage.Context, from, to interop.Hash160, amount int) bool {
	if isFrozen(ctx, from) || isFrozen(ctx, to) {
		runtime.Log("frozen account")
		return false
	}

	fromKey := balanceKey(from)
	fromBalance := getInt(ctx, fromKey)
	if fromBalance < amount {
		runtime.Log("insufficient funds")
		return false
	}

	putInt(ctx, fromKey, fromBalance-amount)

	toKey := balanceKey(to)
	putInt(ctx, toKey, getInt(ctx, toKey)+amount)

	return true
}

// postTransfer must be called after all storage changes are done, the
// recipient contract can call this one back.
func postTransfer(from, to interop.Hash160, amount int, data any) {
	runtime.Notify("Transfer", from, to, amount)

	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}

func isFrozen(ctx storage.Context, account interop.Hash160) bool {
	return storage.Get(ctx, append([]byte{frozenPrefix}, account...)) != nil
}

func balanceKey(account interop.Hash160) []byte {
	return append([]byte{balancePrefix}, account...)
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	key := append([]byte{allowancePrefix}, owner...)
	return append(key, spender...)
}

func getInt(ctx storage.Context, key any) int {
	v := storage.Get(ctx, key)
	if v != nil {
		return v.(int)
	}

	return 0
}

func putInt(ctx storage.Context, key []byte, v int) {
	if v == 0 {
		storage.Delete(ctx, key)
		return
	}

	storage.Put(ctx, key, v)
}
