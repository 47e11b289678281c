package allowtoken_test

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/vault-contract/common"
)

const (
	tokenPath = "../allowtoken"
	supply    = 1000
)

func newTokenInvoker(t *testing.T, initialSupply any) *neotest.ContractInvoker {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	c := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))
	e.DeployContract(t, c, initialSupply)

	return e.CommitteeInvoker(c.Hash)
}

func TestToken_Deploy(t *testing.T) {
	e := newTokenInvoker(t, supply)

	e.Invoke(t, "ALW", "symbol")
	e.Invoke(t, 8, "decimals")
	e.Invoke(t, supply, "totalSupply")
	e.Invoke(t, supply, "balanceOf", e.CommitteeHash)

	t.Run("empty", func(t *testing.T) {
		e := newTokenInvoker(t, nil)
		e.Invoke(t, 0, "totalSupply")
		e.Invoke(t, 0, "balanceOf", e.CommitteeHash)
	})
}

func TestToken_Transfer(t *testing.T) {
	e := newTokenInvoker(t, supply)
	acc := e.NewAccount(t)
	to := acc.ScriptHash()

	e.Invoke(t, true, "transfer", e.CommitteeHash, to, 100, nil)
	e.Invoke(t, supply-100, "balanceOf", e.CommitteeHash)
	e.Invoke(t, 100, "balanceOf", to)

	// transfer to self keeps the balance
	e.Invoke(t, true, "transfer", e.CommitteeHash, e.CommitteeHash, 10, nil)
	e.Invoke(t, supply-100, "balanceOf", e.CommitteeHash)

	e.Invoke(t, false, "transfer", e.CommitteeHash, to, supply, nil)

	// no witness
	e.WithSigners(acc).Invoke(t, false, "transfer", e.CommitteeHash, to, 1, nil)
	e.Invoke(t, 100, "balanceOf", to)

	e.InvokeFail(t, common.ErrInvalidArgument, "transfer", e.CommitteeHash, to, -1, nil)
	e.InvokeFail(t, common.ErrInvalidArgument, "transfer", e.CommitteeHash, []byte{1}, 1, nil)
}

func TestToken_Approve(t *testing.T) {
	e := newTokenInvoker(t, supply)
	spender := util.Uint160{1, 2, 3}

	e.Invoke(t, 0, "allowance", e.CommitteeHash, spender)
	e.Invoke(t, true, "approve", e.CommitteeHash, spender, 50)
	e.Invoke(t, 50, "allowance", e.CommitteeHash, spender)

	e.Invoke(t, true, "approve", e.CommitteeHash, spender, 20)
	e.Invoke(t, 20, "allowance", e.CommitteeHash, spender)

	e.Invoke(t, true, "approve", e.CommitteeHash, spender, 0)
	e.Invoke(t, 0, "allowance", e.CommitteeHash, spender)

	acc := e.NewAccount(t)
	e.WithSigners(acc).InvokeFail(t, common.ErrOwnerWitnessFailed, "approve", e.CommitteeHash, acc.ScriptHash(), 10)
	e.Invoke(t, 0, "allowance", e.CommitteeHash, acc.ScriptHash())

	e.InvokeFail(t, common.ErrInvalidArgument+": negative amount", "approve", e.CommitteeHash, spender, -1)
	e.InvokeFail(t, common.ErrInvalidArgument+": invalid spender", "approve", e.CommitteeHash, []byte{1}, 1)
}

func TestToken_TransferFromWithoutAllowance(t *testing.T) {
	e := newTokenInvoker(t, supply)
	to := util.Uint160{4, 5, 6}

	// the spender is the entry script here, it has no allowance
	e.Invoke(t, false, "transferFrom", e.CommitteeHash, to, 1, nil)
	e.Invoke(t, supply, "balanceOf", e.CommitteeHash)
	e.Invoke(t, 0, "balanceOf", to)
}

func TestToken_Freeze(t *testing.T) {
	e := newTokenInvoker(t, supply)
	acc := e.NewAccount(t)
	h := acc.ScriptHash()

	e.Invoke(t, true, "transfer", e.CommitteeHash, h, 100, nil)

	e.Invoke(t, false, "isFrozen", h)
	e.Invoke(t, stackitem.Null{}, "freeze", h)
	e.Invoke(t, true, "isFrozen", h)

	// frozen account can neither receive nor send
	e.Invoke(t, false, "transfer", e.CommitteeHash, h, 1, nil)
	e.WithSigners(acc).Invoke(t, false, "transfer", h, e.CommitteeHash, 1, nil)
	e.Invoke(t, 100, "balanceOf", h)

	e.WithSigners(acc).InvokeFail(t, common.ErrWitnessFailed, "unfreeze", h)
	e.WithSigners(acc).InvokeFail(t, common.ErrWitnessFailed, "freeze", e.CommitteeHash)

	e.Invoke(t, stackitem.Null{}, "unfreeze", h)
	e.Invoke(t, false, "isFrozen", h)
	e.WithSigners(acc).Invoke(t, true, "transfer", h, e.CommitteeHash, 1, nil)
	e.Invoke(t, 99, "balanceOf", h)
}
