package main

import (
	"fmt"
	"io"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/vault-contract/rpc/vault"
)

const gasDecimals = 8

// report is a snapshot of the vault state.
type report struct {
	Contract util.Uint160
	Owner    util.Uint160
	Version  *big.Int
	GAS      *big.Int
	Tokens   []tokenBalance
}

type tokenBalance struct {
	Hash     util.Uint160
	Symbol   string
	Decimals int
	Amount   *big.Int
}

// inspect reads the vault state and balances of the given tokens using safe
// methods only.
func inspect(inv vault.Invoker, contract util.Uint160, tokens []util.Uint160) (report, error) {
	var (
		r   = report{Contract: contract}
		v   = vault.NewReader(inv, contract)
		err error
	)

	r.Owner, err = v.Owner()
	if err != nil {
		return r, fmt.Errorf("get vault owner: %w", vault.WrapError(err))
	}

	r.Version, err = v.Version()
	if err != nil {
		return r, fmt.Errorf("get vault version: %w", vault.WrapError(err))
	}

	r.GAS, err = v.GasBalance()
	if err != nil {
		return r, fmt.Errorf("get vault GAS balance: %w", vault.WrapError(err))
	}

	for _, h := range tokens {
		tb := tokenBalance{Hash: h}
		token := nep17.NewReader(inv, h)

		tb.Symbol, err = token.Symbol()
		if err != nil {
			return r, fmt.Errorf("get symbol of token %s: %w", h.StringLE(), err)
		}

		tb.Decimals, err = token.Decimals()
		if err != nil {
			return r, fmt.Errorf("get decimals of token %s: %w", h.StringLE(), err)
		}

		tb.Amount, err = v.TokenBalance(h)
		if err != nil {
			return r, fmt.Errorf("get vault balance of token %s: %w", h.StringLE(), vault.WrapError(err))
		}

		r.Tokens = append(r.Tokens, tb)
	}

	return r, nil
}

func (r report) print(w io.Writer) {
	fmt.Fprintf(w, "Vault:   %s (0x%s)\n", address.Uint160ToString(r.Contract), r.Contract.StringLE())
	fmt.Fprintf(w, "Owner:   %s\n", address.Uint160ToString(r.Owner))
	fmt.Fprintf(w, "Version: %s\n", r.Version)
	fmt.Fprintf(w, "GAS:     %s\n", fixedn.ToString(r.GAS, gasDecimals))

	for _, t := range r.Tokens {
		fmt.Fprintf(w, "%-8s %s (0x%s)\n", t.Symbol+":", fixedn.ToString(t.Amount, t.Decimals), t.Hash.StringLE())
	}
}
